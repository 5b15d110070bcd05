package poller

import (
	"context"
	"errors"
	"time"

	"shared-task-tracker/internal/model"
	"shared-task-tracker/internal/tasklist"
	pkgLog "shared-task-tracker/pkg/log"
)

const cycleTimeout = 20 * time.Second

// Poller periodically refreshes the task list from the remote source so
// both users see each other's changes without reloading by hand. A
// refresh never forces: while unsaved local edits exist the cycle is
// skipped until they are pushed.
type Poller struct {
	l        pkgLog.Logger
	uc       tasklist.UseCase
	interval time.Duration
}

// New creates a Poller refreshing every interval.
func New(l pkgLog.Logger, uc tasklist.UseCase, interval time.Duration) *Poller {
	return &Poller{
		l:        l,
		uc:       uc,
		interval: interval,
	}
}

// Run blocks until ctx is cancelled, refreshing on every tick. The first
// refresh happens immediately.
func (p *Poller) Run(ctx context.Context) {
	p.l.Infof(ctx, "Poller: refreshing every %s", p.interval)

	p.refresh(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.l.Info(ctx, "Poller: stopped")
			return
		case <-ticker.C:
			p.refresh(ctx)
		}
	}
}

func (p *Poller) refresh(ctx context.Context) {
	cycleCtx, cancel := context.WithTimeout(ctx, cycleTimeout)
	defer cancel()

	sc := model.Scope{Username: "poller"}
	out, err := p.uc.Reload(cycleCtx, sc, tasklist.ReloadInput{})
	if err != nil {
		if errors.Is(err, tasklist.ErrLocalEdits) {
			p.l.Debugf(ctx, "Poller: refresh deferred, unsaved local edits")
			return
		}
		p.l.Warnf(ctx, "Poller: refresh failed: %v", err)
		return
	}

	if out.Fallback {
		p.l.Warnf(ctx, "Poller: remote unavailable, serving local snapshot")
	}
}
