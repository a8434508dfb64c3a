package testlog

import (
	"testing"

	"github.com/rs/zerolog"
)

// New returns a logger bound to the test's log buffer so scaffolder
// output lands next to the failure that produced it.
func New(t *testing.T) zerolog.Logger {
	t.Helper()
	return zerolog.New(zerolog.NewTestWriter(t)).With().Str("test", t.Name()).Logger()
}
