package main

import (
	"os"

	"github.com/tasmanescape/website/internal/config"
	"github.com/tasmanescape/website/internal/logging"
	"github.com/tasmanescape/website/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logging.Configure(&logging.Config{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	})
	logger := logging.GetLogger()
	defer logger.Close()

	logger.Info("Starting server in %s mode", cfg.Environment)

	if !cfg.ContactConfigured() {
		logger.Warn("Contact secrets incomplete; /api/contact will report a configuration error")
	}

	srv := server.NewServer(cfg)
	if err := srv.Init(); err != nil {
		logger.Error("Failed to initialize server: %v", err)
		os.Exit(1)
	}

	logger.Info("Listening on :%s", cfg.Port)
	if err := srv.Start(); err != nil {
		logger.Error("Server stopped: %v", err)
		os.Exit(1)
	}
}
