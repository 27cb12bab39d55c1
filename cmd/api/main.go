package main

import (
	"os"

	"github.com/studorg/memtrack/internal/pkg/logger"
	"github.com/studorg/memtrack/internal/server"
)

func main() {
	// NewServer orchestrates config, logging, database, migrations, seeding
	// and routing. A startup failure here aborts the process; request-time
	// errors never do.
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
	os.Exit(0)
}
