// v0
// internal/publisher/loop.go
package publisher

import (
	"context"
	"log/slog"
	"time"

	"github.com/rohithdvg2005-eng/solar-microgrid/internal/engine"
	"github.com/rohithdvg2005-eng/solar-microgrid/internal/metrics"
)

// Loop re-evaluates the engine at a fixed cadence, updates the Prometheus gauges
// and hands the snapshot to the publisher. Cycles are independent; interrupting
// between cycles cannot corrupt state.
type Loop struct {
	eng      *engine.Engine
	pub      Publisher
	interval time.Duration
	log      *slog.Logger
}

func NewLoop(eng *engine.Engine, pub Publisher, interval time.Duration, log *slog.Logger) *Loop {
	return &Loop{
		eng:      eng,
		pub:      pub,
		interval: interval,
		log:      log.With(slog.String("component", "refresh-loop")),
	}
}

// Run blocks until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) {
	t := time.NewTicker(l.interval)
	defer t.Stop()
	l.log.Info("refresh loop started", "interval", l.interval.String())
	for {
		select {
		case <-t.C:
			l.cycle(ctx)
		case <-ctx.Done():
			l.log.Info("refresh loop stopped")
			return
		}
	}
}

func (l *Loop) cycle(ctx context.Context) {
	s := l.eng.Snapshot()
	metrics.Observe(s)
	if l.pub == nil {
		return
	}
	if err := l.pub.Publish(ctx, s); err != nil {
		// Publishing is best effort; the next cycle recomputes everything anyway.
		l.log.Warn("publish failed", "err", err, "index", s.Index)
	}
}
