package main

import (
	"os"

	"github.com/campushq/studentms/internal/pkg/logger"
	"github.com/campushq/studentms/internal/server"
)

// @title Student Management API
// @version 1.0
// @description Record-management backend for departments, students, courses, enrollments, and fees

// @host localhost:8080
// @BasePath /api
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
