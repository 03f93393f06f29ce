// Package main provides the entry point for the tows CLI.
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/mrz1836/tows/internal/cli"
	"github.com/mrz1836/tows/internal/signal"
)

// Build information, set via ldflags.
//
//nolint:gochecknoglobals // Set at build time
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	h := signal.NewHandler(context.Background())
	err := cli.Execute(h.Context(), cli.BuildInfo{Version: version, Commit: commit, Date: date})
	if sig := h.Received(); sig != nil {
		log.Debug().Stringer("signal", sig).Msg("stopped by signal")
	}
	h.Stop()
	os.Exit(h.ExitCode(cli.ExitCodeForError(err)))
}
