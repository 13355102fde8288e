package mtest

import (
	"log/slog"
	"testing"

	"github.com/neilotoole/slogt"
)

// NewLogger returns a logger that routes records through t.Log,
// so that log output is associated with the correct test.
func NewLogger(t *testing.T) *slog.Logger {
	return slogt.New(t)
}
