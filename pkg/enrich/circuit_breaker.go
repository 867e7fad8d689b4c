package enrich

import (
	"context"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"github.com/rdvelde/showtrip/pkg/config"
)

// BreakerSource wraps a Source with circuit breaking. After repeated
// endpoint failures the breaker opens and lookups fail fast instead of
// hammering a struggling shared endpoint; nothing is retried.
type BreakerSource struct {
	source Source
	cb     *gobreaker.CircuitBreaker
	log    *slog.Logger
}

// NewBreakerSource creates a breaker around source. Returns source
// unchanged when the breaker is disabled.
func NewBreakerSource(source Source, cfg config.CircuitBreakerConfig, log *slog.Logger, name string) Source {
	if !cfg.Enabled {
		return source
	}
	if log == nil {
		log = slog.Default()
	}

	st := gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    time.Duration(cfg.Interval) * time.Second,
		Timeout:     time.Duration(cfg.Timeout) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= cfg.ReadyToTripRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			if to == gobreaker.StateOpen {
				log.Warn("circuit breaker opened", "name", name, "from", from.String())
			}
		},
	}

	return &BreakerSource{source: source, cb: gobreaker.NewCircuitBreaker(st), log: log}
}

// Lookup implements Source.
func (b *BreakerSource) Lookup(ctx context.Context, name string) (*Result, error) {
	res, err := b.cb.Execute(func() (interface{}, error) {
		return b.source.Lookup(ctx, name)
	})
	if err != nil {
		return nil, err
	}
	typed, ok := res.(*Result)
	if !ok {
		return nil, nil
	}
	return typed, nil
}
