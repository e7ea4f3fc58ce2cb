// v2
// internal/logging/logging.go
package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

type DualLogger struct {
	Logger *slog.Logger
	file   *os.File
}

// New creates a slog logger that writes to both stdout and an append-only
// file. The logfile path comes from STUDYSPACE_LOGFILE and defaults to
// "./studyspace.log"; when the file cannot be opened the logger degrades to
// stdout only. LOG_LEVEL=debug turns on per-reading debug lines.
func New() *DualLogger {
	logPath := os.Getenv("STUDYSPACE_LOGFILE")
	if logPath == "" {
		logPath = "./studyspace.log"
	}

	lvl := slog.LevelInfo
	if strings.EqualFold(os.Getenv("LOG_LEVEL"), "debug") {
		lvl = slog.LevelDebug
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		lg := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
		lg.Error("log file open failed; using stdout only", "error", err)
		return &DualLogger{Logger: lg}
	}

	mw := io.MultiWriter(os.Stdout, file)
	lg := slog.New(slog.NewTextHandler(mw, &slog.HandlerOptions{Level: lvl}))
	log.SetOutput(mw)
	return &DualLogger{Logger: lg, file: file}
}

// Close releases the logfile handle. Safe to call when the logger degraded
// to stdout only.
func (d *DualLogger) Close() {
	if d.file != nil {
		_ = d.file.Close()
	}
}
