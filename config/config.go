package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Package config provides configuration management for the Easel node pack.

// Config struct to hold all configuration data
type Config struct {
	ListenAddr      string `json:"listen_addr"`       // Address for the host-facing API server
	OutputDir       string `json:"output_dir"`        // Where saved images are written
	FaceModelPath   string `json:"face_model_path"`   // Path to the pigo facefinder model; empty disables face boost
	PNGCompression  int    `json:"png_compression"`   // PNG compress level (0-9)
	StrictAlignment bool   `json:"strict_alignment"`  // Use the 32-pixel WAN alignment for manual dimensions
}

var (
	instance *Config
	once     sync.Once
)

// GetConfig returns the singleton instance of Config.
func GetConfig() *Config {
	once.Do(func() {
		instance = &Config{}
		// Load config from file
		if err := instance.loadFromFile(GetFilename()); err != nil {
			// Missing or unreadable config falls back to defaults
			instance.setDefaultValues()
		}
		instance.applyFallbacks()
	})
	return instance
}

// GetFilename returns the path to the user's config file
func GetFilename() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Error getting user home directory: %v", err)
	}
	return filepath.Join(homeDir, "."+strings.ToLower(ServiceName), "config.json")
}

// GetPath returns the path to the user's config directory
func GetPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Error getting user home directory: %v", err)
	}
	return filepath.Join(homeDir, "."+strings.ToLower(ServiceName))
}

// loadFromFile loads configuration from the specified file
func (c *Config) loadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err // Return the error for handling in GetConfig()
	}

	err = json.Unmarshal(data, c)
	if err != nil {
		return err
	}

	return nil
}

// setDefaultValues sets default values for the configuration
func (c *Config) setDefaultValues() {
	c.ListenAddr = DefaultListenAddr
	c.OutputDir = filepath.Join(GetPath(), "output")
	c.FaceModelPath = ""
	c.PNGCompression = 4
	c.StrictAlignment = false
}

// applyFallbacks fills in zero values left by a partial config file.
func (c *Config) applyFallbacks() {
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
	if c.OutputDir == "" {
		c.OutputDir = filepath.Join(GetPath(), "output")
	}
	if c.PNGCompression < 0 || c.PNGCompression > 9 {
		c.PNGCompression = 4
	}
}

// Save saves the current configuration to the user's config file
func (c *Config) Save() {
	cfgFile := GetFilename()
	err := os.MkdirAll(filepath.Dir(cfgFile), 0700) // Ensure the directory exists
	if err != nil {
		log.Fatalf("Error creating config directory: %v", err)
	}

	data, err := json.MarshalIndent(c, "", "  ") // Use indentation for readability
	if err != nil {
		log.Fatalf("Error encoding config data: %v", err)
	}

	err = os.WriteFile(cfgFile, data, 0644) // Use appropriate file permissions
	if err != nil {
		log.Fatalf("Error writing config file: %v", err)
	}
}
