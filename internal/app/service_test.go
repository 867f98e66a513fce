package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/inkwell/internal/config"

	"go.uber.org/zap"
)

type fakeService struct {
	startErr error
	block    bool
	stopped  atomic.Bool
}

func (s *fakeService) Name() string { return "fake" }

func (s *fakeService) Start(ctx context.Context) error {
	if s.block {
		<-ctx.Done()
		return nil
	}
	return s.startErr
}

func (s *fakeService) Stop(ctx context.Context) error {
	s.stopped.Store(true)
	return nil
}

func TestRunnerStopsOnContextCancel(t *testing.T) {
	svc := &fakeService{block: true}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := NewRunner(svc).Run(ctx, time.Second, zap.NewNop().Sugar()); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("unexpected run error: %v", err)
	}
	if !svc.stopped.Load() {
		t.Fatalf("service should be stopped after cancel")
	}
}

func TestRunnerReturnsStartError(t *testing.T) {
	boom := errors.New("listen failed")
	svc := &fakeService{startErr: boom}

	err := NewRunner(svc).Run(context.Background(), time.Second, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("expected start error, got %v", err)
	}
	if !svc.stopped.Load() {
		t.Fatalf("service should be stopped after failure")
	}
}

func TestRunnerWithoutServices(t *testing.T) {
	if err := NewRunner().Run(context.Background(), time.Second, nil); err == nil {
		t.Fatalf("expected error for empty runner")
	}
}

func TestBuildRunnerRequiresDeps(t *testing.T) {
	if _, err := BuildRunner(nil, nil); err == nil {
		t.Fatalf("nil config should fail")
	}
	if _, err := BuildRunner(&config.Config{}, nil); err == nil {
		t.Fatalf("nil database should fail")
	}
}

func TestNormalizeOptionsDefaults(t *testing.T) {
	opts := normalizeOptions(Options{})
	if opts.Logger == nil {
		t.Fatalf("logger should default")
	}
	if opts.ShutdownTimeout != defaultShutdownTimeout {
		t.Fatalf("shutdown timeout want %v got %v", defaultShutdownTimeout, opts.ShutdownTimeout)
	}
}
