package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
	"github.com/zephyrtronium/polish"
)

// newLogger creates a logger writing text to w and, if logname is not empty,
// JSON to the named file. The returned function closes the file.
func newLogger(w io.Writer, logname string, debug bool) (*slog.Logger, func() error, error) {
	level := new(slog.LevelVar)
	if debug {
		level.Set(slog.LevelDebug)
	}
	opts := &slog.HandlerOptions{Level: level}
	handlers := []slog.Handler{slog.NewTextHandler(w, opts)}
	closer := func() error { return nil }
	if logname != "" {
		f, err := os.OpenFile(logname, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, opts))
		closer = f.Close
	}
	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

// stepLogger returns an observer that logs each reduction of src at debug
// level.
func stepLogger(logger *slog.Logger, src string) func(polish.Step) {
	return func(s polish.Step) {
		logger.Debug("reduce",
			slog.String("expression", src),
			slog.Int("index", s.Index),
			slog.String("op", s.Op.String()),
			slog.String("x", s.X.String()),
			slog.String("y", s.Y.String()),
			slog.String("result", s.Result.String()),
			slog.Int("next", s.Next),
			slog.Int("len", s.Len),
		)
	}
}
