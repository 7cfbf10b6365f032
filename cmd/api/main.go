package main

import (
	"flag"
	"os"

	"github.com/studenthub/backend/internal/pkg/logger"
	"github.com/studenthub/backend/internal/server"
)

// @title Smart Student Hub API
// @version 1.0
// @description API for tracking, verifying, and showcasing student achievements

// @contact.name API Support
// @contact.email support@studenthub.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	configPath := flag.String("config", "", "path to the configuration file")
	flag.Parse()

	srv, err := server.NewServer(*configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}
}
