// Package retry wraps single upstream calls with exponential backoff. Only
// rate-limit shaped failures are retried; every other error is returned to
// the caller after the first attempt.
package retry

import (
	"context"
	"errors"
	"strings"
	"time"

	"platina/pkg/logger"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/juju/clock"
	jujuretry "github.com/juju/retry"
)

// ErrRateLimited can be wrapped by callers that already know an upstream
// rejected them for throttling.
var ErrRateLimited = errors.New("rate limited")

// Postgres SQLSTATE codes a hosted pooler returns when it sheds load.
const (
	pgTooManyConnections = "53300"
	pgCannotConnectNow   = "57P03"
)

var retryableMarkers = []string{
	"Too Many Requests",
	"Too Many R",
	"429",
	"rate limit",
	"Unexpected token",
	"is not valid JSON",
	"JSON",
}

type Policy struct {
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		MaxRetries:   3,
		InitialDelay: time.Second,
		MaxDelay:     10 * time.Second,
	}
}

type Retrier struct {
	policy Policy
	clock  clock.Clock
	logger *logger.Logger
}

func New(policy Policy, log *logger.Logger) *Retrier {
	return NewWithClock(policy, clock.WallClock, log)
}

func NewWithClock(policy Policy, clk clock.Clock, log *logger.Logger) *Retrier {
	if policy.InitialDelay <= 0 {
		policy.InitialDelay = DefaultPolicy().InitialDelay
	}
	if policy.MaxDelay < policy.InitialDelay {
		policy.MaxDelay = policy.InitialDelay
	}
	if policy.MaxRetries < 0 {
		policy.MaxRetries = 0
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Retrier{policy: policy, clock: clk, logger: log}
}

func (r *Retrier) Policy() Policy {
	return r.policy
}

// Do runs op until it succeeds, returns a non-retryable error, or the retry
// budget is spent. The error returned is always the one op produced last.
func (r *Retrier) Do(ctx context.Context, name string, op func(ctx context.Context) error) error {
	total := r.policy.MaxRetries + 1
	attempt := 0
	var lastErr error

	stop := make(chan struct{})
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			close(stop)
		case <-done:
		}
	}()

	err := jujuretry.Call(jujuretry.CallArgs{
		Func: func() error {
			attempt++
			r.logger.Infow("upstream call", "operation", name, "attempt", attempt, "of", total)
			lastErr = op(ctx)
			if lastErr == nil {
				if attempt > 1 {
					r.logger.Infow("upstream call succeeded after retry", "operation", name, "attempts", attempt)
				}
				return nil
			}
			r.logger.Warnw("upstream call failed", "operation", name, "attempt", attempt, "error", lastErr.Error())
			return lastErr
		},
		IsFatalError: func(err error) bool {
			if ctx.Err() != nil {
				return true
			}
			if !IsRetryable(err) {
				r.logger.Errorw("non-retryable error, giving up", "operation", name, "attempt", attempt)
				return true
			}
			return false
		},
		BackoffFunc: func(delay time.Duration, n int) time.Duration {
			next := jujuretry.DoubleDelay(delay, n)
			if next > r.policy.MaxDelay {
				next = r.policy.MaxDelay
			}
			r.logger.Infow("waiting before retry", "operation", name, "attempt", n, "wait", next.String())
			return next
		},
		Attempts: total,
		Delay:    r.policy.InitialDelay,
		MaxDelay: r.policy.MaxDelay,
		Clock:    r.clock,
		Stop:     stop,
	})
	if err == nil {
		return nil
	}
	if jujuretry.IsAttemptsExceeded(err) {
		r.logger.Errorw("all attempts failed", "operation", name, "attempts", attempt)
	}
	if ctx.Err() != nil && lastErr == nil {
		return ctx.Err()
	}
	if lastErr != nil {
		return lastErr
	}
	return err
}

// Value is Do for operations that produce a result.
func Value[T any](ctx context.Context, r *Retrier, name string, op func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := r.Do(ctx, name, func(ctx context.Context) error {
		v, err := op(ctx)
		if err != nil {
			return err
		}
		result = v
		return nil
	})
	return result, err
}

// IsRetryable reports whether err looks like throttling or a throttling
// side effect such as a truncated JSON body.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgTooManyConnections || pgErr.Code == pgCannotConnectNow {
			return true
		}
	}
	msg := err.Error()
	for _, marker := range retryableMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
