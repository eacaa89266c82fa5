// Package applog wires process logging for the interactive commands. With
// debug off everything is discarded; with debug on the std logger and a slog
// text handler both append to logs/parasite.log.
package applog

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	logDir      = "logs"
	logFileName = "parasite.log"
)

// Setup configures the std logger and returns an slog.Logger for the
// simulation. The returned file is nil when debug is false; otherwise the
// caller closes it on exit.
func Setup(debug bool) (*slog.Logger, *os.File, error) {
	return setupIn(logDir, debug)
}

func setupIn(dir string, debug bool) (*slog.Logger, *os.File, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return slog.New(slog.DiscardHandler), nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, f, nil
}

// Main runs a command body and returns its exit code. A returned error is
// written to stderr, and to the std logger for the debug file, since Setup
// may have pointed the std logger at io.Discard.
func Main(name string, stderr io.Writer, run func() error) int {
	err := run()
	if err == nil {
		return 0
	}
	log.Printf("%s: %v", name, err)
	fmt.Fprintf(stderr, "%s: %v\n", name, err)
	return 1
}
