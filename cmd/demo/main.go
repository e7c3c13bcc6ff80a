package main

import (
	"bufio"
	"log/slog"
	"os"

	"oop-pillars/internal/demo"
)

func main() {
	// Stdout carries only the transcript; diagnostics go to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	out := bufio.NewWriter(os.Stdout)
	demo.Run(out)

	if err := out.Flush(); err != nil {
		slog.Warn("Failed to flush transcript", "error", err)
	}
}
