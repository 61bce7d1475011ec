package cmd

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// slowServer mimics http.Server: Start returns ErrServerClosed as soon as
// Shutdown begins, while Shutdown itself keeps draining for a while.
type slowServer struct {
	closing  chan struct{}
	drained  atomic.Bool
	drainFor time.Duration
}

func (s *slowServer) Start() error {
	<-s.closing
	return http.ErrServerClosed
}

func (s *slowServer) Shutdown(ctx context.Context) error {
	close(s.closing)
	select {
	case <-time.After(s.drainFor):
		s.drained.Store(true)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func TestRunUntilSignalWaitsForDrain(t *testing.T) {
	srv := &slowServer{closing: make(chan struct{}), drainFor: 200 * time.Millisecond}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := runUntilSignal(ctx, srv, 5*time.Second, zerolog.Nop()); err != nil {
		t.Fatalf("runUntilSignal: %v", err)
	}
	if !srv.drained.Load() {
		t.Error("returned before Shutdown finished draining")
	}
}

type failingServer struct{}

func (failingServer) Start() error { return errors.New("address already in use") }
func (failingServer) Shutdown(context.Context) error { return nil }

func TestRunUntilSignalReturnsStartError(t *testing.T) {
	err := runUntilSignal(context.Background(), failingServer{}, time.Second, zerolog.Nop())
	if err == nil || err.Error() != "address already in use" {
		t.Errorf("got %v", err)
	}
}

func TestDrainTimeout(t *testing.T) {
	if got := drainTimeout(60 * time.Second); got != 65*time.Second {
		t.Errorf("drainTimeout(60s) = %s", got)
	}
	if got := drainTimeout(time.Second); got != 15*time.Second {
		t.Errorf("drainTimeout(1s) = %s", got)
	}
}
