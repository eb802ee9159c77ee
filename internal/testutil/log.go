// Package testutil holds helpers shared by the package tests.
package testutil

import (
	"bytes"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/phsym/zeroslog"
	"github.com/rs/zerolog"
)

// Logger returns a debug-level slog logger that writes through zerolog into
// the test log.
func Logger(t testing.TB) *slog.Logger {
	t.Helper()
	zl := zerolog.New(zerolog.NewTestWriter(t)).With().Timestamp().Logger()
	return slog.New(zeroslog.NewHandler(zl, &zeroslog.HandlerOptions{Level: slog.LevelDebug}))
}

// Recorder captures log output so tests can assert on it.
type Recorder struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Write implements io.Writer.
func (r *Recorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.Write(p)
}

// String returns everything written so far.
func (r *Recorder) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.String()
}

// RecordingLogger returns a debug-level slog logger that writes JSON lines
// through zerolog into the returned Recorder as well as the test log.
func RecordingLogger(t testing.TB) (*slog.Logger, *Recorder) {
	t.Helper()
	rec := &Recorder{}
	out := io.MultiWriter(rec, zerolog.NewTestWriter(t))
	zl := zerolog.New(out)
	return slog.New(zeroslog.NewHandler(zl, &zeroslog.HandlerOptions{Level: slog.LevelDebug})), rec
}
