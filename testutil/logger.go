package testutil

import (
	"io"
	"log/slog"
)

// DiscardLogger returns a logger that writes nowhere, for constructors that
// require one.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
