package main

import (
	"io"
	"log/slog"
	"os"
)

var logOutput io.Writer = os.Stderr

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(logOutput, &slog.HandlerOptions{Level: level}))
}
