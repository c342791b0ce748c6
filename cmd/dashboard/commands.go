package main

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"

	"lead_dashboard/internal/domain"
	"lead_dashboard/internal/view"
)

type triggerer interface {
	Trigger() bool
}

type tabSelector interface {
	Select(t view.Tab) error
}

type snapshotRenderer interface {
	Render(snap domain.Snapshot) error
}

func renderSnapshot(r snapshotRenderer, snap domain.Snapshot, logger *slog.Logger) {
	if err := r.Render(snap); err != nil {
		logger.Error("render failed", "error", err)
	}
}

// readCommands handles one command per line until quit, EOF or ctx is done.
func readCommands(ctx context.Context, in io.Reader, p triggerer, tabs tabSelector, quit func(), logger *slog.Logger) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		if !handleCommand(scanner.Text(), p, tabs, logger) {
			quit()
			return
		}
	}
}

// handleCommand returns false when the user asked to quit.
func handleCommand(line string, p triggerer, tabs tabSelector, logger *slog.Logger) bool {
	cmd := strings.ToLower(strings.TrimSpace(line))
	switch cmd {
	case "":
		return true
	case "q", "quit", "exit":
		return false
	case "r", "refresh":
		if !p.Trigger() {
			logger.Warn("refresh ignored, poller is not running")
		}
		return true
	}

	tab, err := view.ParseTab(cmd)
	if err != nil {
		logger.Warn("unknown command", "command", cmd)
		return true
	}
	if err := tabs.Select(tab); err != nil {
		logger.Error("render failed", "error", err)
	}
	return true
}
