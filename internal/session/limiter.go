// v0
// internal/session/limiter.go
package session

import (
	"sync"
	"time"

	"github.com/rohithdvg2005-eng/solar-microgrid/internal/alerts"
)

// Limiter rate-limits alert rules for display purposes. The evaluator itself stays
// stateless and unsuppressed; this sits between it and the presentation surface.
// A zero interval passes everything through.
type Limiter struct {
	interval time.Duration

	mu   sync.Mutex
	last map[string]time.Time // rule key -> last time the rule was shown
}

func NewLimiter(interval time.Duration) *Limiter {
	return &Limiter{interval: interval, last: make(map[string]time.Time)}
}

// Filter returns the alerts whose rule has not been shown within the interval,
// recording the shown ones. Order is preserved.
func (l *Limiter) Filter(in []alerts.Alert, now time.Time) []alerts.Alert {
	if l == nil || l.interval <= 0 {
		return in
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]alerts.Alert, 0, len(in))
	for _, a := range in {
		if t, ok := l.last[a.Rule]; ok && now.Sub(t) < l.interval {
			continue
		}
		l.last[a.Rule] = now
		out = append(out, a)
	}
	return out
}
