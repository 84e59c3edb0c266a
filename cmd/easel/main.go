package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	pigo "github.com/esimov/pigo/core"

	"github.com/dixieflatline76/Easel/config"
	"github.com/dixieflatline76/Easel/pkg/api"
	"github.com/dixieflatline76/Easel/pkg/fit"
	"github.com/dixieflatline76/Easel/pkg/graph"
	"github.com/dixieflatline76/Easel/pkg/output"
	"github.com/dixieflatline76/Easel/pkg/resolution"
	"github.com/dixieflatline76/Easel/pkg/video"
	"github.com/dixieflatline76/Easel/util"
	"github.com/dixieflatline76/Easel/util/log"
)

func main() {
	cfg := config.GetConfig()

	registerNodes(cfg)

	server := api.NewServer(cfg.ListenAddr)

	go func() {
		result, err := util.CheckForUpdates(http.DefaultClient)
		if err != nil {
			log.Debugf("Update check failed: %v", err)
			return
		}
		if result.UpdateAvailable {
			log.Printf("A newer release is available: %s (running %s)", result.LatestVersion, config.AppVersion)
		}
	}()

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Println("Shutting down")
		if err := server.Stop(); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("%s %s listening on %s", config.AppName, config.AppVersion, cfg.ListenAddr)
	if err := server.Start(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server failed: %v", err)
	}
}

// registerNodes builds the node pack and registers every node with the
// graph registry.
func registerNodes(cfg *config.Config) {
	// Face model is optional; fitting degrades to plain smart crop without it
	var faceModel *pigo.Pigo
	if cfg.FaceModelPath != "" {
		modelData, err := os.ReadFile(cfg.FaceModelPath)
		if err != nil {
			log.Printf("Warning: Failed to load face detection model: %v. Face boost will be disabled.", err)
		} else if faceModel, err = fit.LoadFaceModel(modelData); err != nil {
			log.Printf("Warning: Failed to unpack face detection model: %v. Face boost will be disabled.", err)
			faceModel = nil
		}
	}

	processor := fit.NewProcessor(fit.DefaultTuningConfig(), faceModel)

	if cfg.StrictAlignment {
		graph.Register(resolution.NewStrictSelectorNode())
	} else {
		graph.Register(resolution.NewSelectorNode())
	}
	graph.Register(resolution.NewWanSelectorNode())
	graph.Register(&resolution.AspectRatioNode{})
	graph.Register(&resolution.DimensionsNode{})
	graph.Register(&resolution.MatcherNode{})
	graph.Register(&video.ExtractLastFrame{})
	graph.Register(&video.ImageBatchCombiner{})
	graph.Register(fit.NewNode(processor))
	graph.Register(&output.SeedGeneratorNode{})
	graph.Register(output.NewSaveNode(output.NewSaver(cfg.OutputDir, cfg.PNGCompression)))
}
