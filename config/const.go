package config

import (
	"strings"
	"time"
)

// AppVersion is the version of the node pack. Set at build time via -ldflags.
var AppVersion string

// AppName is the name of the node pack.
const AppName = "Easel"

// ServiceName is the name used for config and log directories.
const ServiceName = AppName

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"

// DefaultListenAddr is the default address for the host-facing API server.
const DefaultListenAddr = "127.0.0.1:49618"

// HTTP server timeouts for the host-facing API server.
const (
	HTTPReadTimeout     = 30 * time.Second
	HTTPWriteTimeout    = 5 * time.Minute // node invocations can be slow
	HTTPShutdownTimeout = 10 * time.Second
)
