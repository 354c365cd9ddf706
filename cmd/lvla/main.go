// SPDX-License-Identifier: MIT

// Command lvla runs lvlinalg operations on matrices stored as text files.
//
//	lvla det a.txt
//	lvla --pivoting adjacent plu a.txt
//	lvla solve c.txt r.txt --out x.txt
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	if err := Execute(ctx, os.Args[1:]); err != nil {
		log.Error().Err(err).Msg("command failed")
		cancel()
		os.Exit(1)
	}
}
