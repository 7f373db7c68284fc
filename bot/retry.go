package bot

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/giygas/medicamentos-bot/config"
	"github.com/giygas/medicamentos-bot/logging"
)

// RetryPolicy bounds how often connecting to Telegram is retried.
// MaxRetries counts retries after the first attempt; delays double from BaseDelay.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
}

// RetryPolicyFrom reads the policy from the application configuration
func RetryPolicyFrom(cfg *config.Config) RetryPolicy {
	return RetryPolicy{MaxRetries: cfg.BotMaxRetries, BaseDelay: cfg.BotRetryBaseDelay}
}

func (p RetryPolicy) backOff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = p.BaseDelay
	exp.Multiplier = 2
	exp.RandomizationFactor = 0
	exp.MaxInterval = p.BaseDelay << min(max(p.MaxRetries, 0), 10)
	exp.MaxElapsedTime = 0
	exp.Reset()

	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(max(p.MaxRetries, 0))), ctx)
}

// Do runs op until it succeeds, the retry budget is spent or ctx is done
func (p RetryPolicy) Do(ctx context.Context, name string, op func() error) error {
	attempt := 0
	return backoff.RetryNotify(
		func() error {
			attempt++
			return op()
		},
		p.backOff(ctx),
		func(err error, wait time.Duration) {
			logging.Warn("Attempt failed, retrying",
				"operation", name,
				"attempt", attempt,
				"max_attempts", p.MaxRetries+1,
				"retry_in", wait,
				"error", err)
		},
	)
}
