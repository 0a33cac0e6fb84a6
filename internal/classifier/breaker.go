package classifier

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

type BreakerSettings struct {
	// ConsecutiveFailures trips the breaker once exceeded.
	ConsecutiveFailures uint32
	// OpenTimeout is how long the breaker stays open before probing.
	OpenTimeout time.Duration
}

func (s BreakerSettings) withDefaults() BreakerSettings {
	if s.ConsecutiveFailures == 0 {
		s.ConsecutiveFailures = 5
	}
	if s.OpenTimeout <= 0 {
		s.OpenTimeout = 30 * time.Second
	}
	return s
}

// BreakerProvider guards a Provider with a circuit breaker. While the breaker
// is open, Complete fails fast with gobreaker.ErrOpenState.
type BreakerProvider struct {
	Provider
	cb *gobreaker.CircuitBreaker
}

func NewBreakerProvider(p Provider, s BreakerSettings, logger *zap.Logger) *BreakerProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	s = s.withDefaults()
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        p.Name(),
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     s.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > s.ConsecutiveFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled) || classifyTransportError(err) == failureClient
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("provider_breaker_state", zap.String("provider", name), zap.String("from", from.String()), zap.String("to", to.String()))
		},
	})
	return &BreakerProvider{Provider: p, cb: cb}
}

func (b *BreakerProvider) Complete(ctx context.Context, prompt string) (string, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.Provider.Complete(ctx, prompt)
	})
	if err != nil {
		return "", err
	}
	return out.(string), nil
}

func (b *BreakerProvider) State() gobreaker.State {
	return b.cb.State()
}
