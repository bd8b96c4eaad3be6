package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/molviewer/molviewd/internal/config"
	"github.com/molviewer/molviewd/internal/pdb"
	"github.com/molviewer/molviewd/internal/server"
	"github.com/molviewer/molviewd/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Create logger
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	zapLogger, err := logger.NewLogger(logLevel, os.Getenv("LOG_FORMAT"))
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Create the PDB read service
	pdbSvc := pdb.NewService(zapLogger)

	// Create API server
	apiServer := server.NewServer(zapLogger, cfg, pdbSvc)

	// Start server in a goroutine
	addr := cfg.Addr()
	go func() {
		zapLogger.Info("Starting viewer server",
			zap.String("addr", addr),
			zap.String("static_dir", cfg.Viewer.StaticDir))
		if err := apiServer.Start(addr); err != nil {
			zapLogger.Fatal("Failed to start viewer server", zap.Error(err))
		}
	}()

	// Wait for interrupt to shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("Shutting down server...")

	zapLogger.Info("Server exited properly")
}
