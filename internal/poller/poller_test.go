package poller_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"shared-task-tracker/internal/model"
	"shared-task-tracker/internal/poller"
	"shared-task-tracker/internal/tasklist"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockUC struct {
	tasklist.UseCase
	reloads atomic.Int32
	err     error
}

func (m *mockUC) Reload(ctx context.Context, sc model.Scope, input tasklist.ReloadInput) (tasklist.ReloadOutput, error) {
	m.reloads.Add(1)
	if input.Force {
		panic("background refresh must never force")
	}
	return tasklist.ReloadOutput{}, m.err
}

func TestRun(t *testing.T) {
	t.Run("Refreshes immediately and on every tick", func(t *testing.T) {
		uc := &mockUC{}
		p := poller.New(mockLogger{}, uc, 10*time.Millisecond)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			p.Run(ctx)
			close(done)
		}()

		deadline := time.After(2 * time.Second)
		for uc.reloads.Load() < 3 {
			select {
			case <-deadline:
				t.Fatalf("expected at least 3 refreshes, got %d", uc.reloads.Load())
			case <-time.After(5 * time.Millisecond):
			}
		}

		cancel()
		<-done
	})

	t.Run("Keeps ticking through failures", func(t *testing.T) {
		uc := &mockUC{err: tasklist.ErrLocalEdits}
		p := poller.New(mockLogger{}, uc, 10*time.Millisecond)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			p.Run(ctx)
			close(done)
		}()

		deadline := time.After(2 * time.Second)
		for uc.reloads.Load() < 2 {
			select {
			case <-deadline:
				t.Fatalf("expected refreshes to continue, got %d", uc.reloads.Load())
			case <-time.After(5 * time.Millisecond):
			}
		}

		cancel()
		<-done
	})
}
