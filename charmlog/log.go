// Package charmlog provides an implementation of plando.Logger using charmbracelet/log
package charmlog

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"plando"
)

type Options struct {
	Writer io.Writer
	Level  string
}

func NewLogger(opts Options) plando.Logger {
	var w io.Writer = os.Stderr
	if opts.Writer != nil {
		w = opts.Writer
	}

	lvl, err := log.ParseLevel(opts.Level)
	if err != nil {
		lvl = log.WarnLevel
	}

	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
	})
}

// NewFileLogger opens (or creates) the log file at path and returns a logger
// writing to it. The caller owns closing the returned file. A TUI must log to
// a file rather than the terminal it is drawing on.
func NewFileLogger(path, level string) (plando.Logger, *os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o744); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return nil, nil, err
	}
	return NewLogger(Options{Writer: f, Level: level}), f, nil
}
