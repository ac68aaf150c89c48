package backend

import (
	"context"
	"time"

	"github.com/avast/retry-go"
	"github.com/pkg/errors"
)

var errStillRunning = errors.New("job has not reached a terminal state")

// PollConfig bounds the wait for a submitted job. A job that is still running
// after Attempts polls spaced Interval apart, or once Timeout has elapsed,
// is treated as failed.
type PollConfig struct {
	Interval time.Duration
	Timeout  time.Duration
	Attempts uint
}

func DefaultPollConfig() PollConfig {
	return PollConfig{
		Interval: 100 * time.Millisecond,
		Timeout:  30 * time.Second,
		Attempts: 300,
	}
}

// Await polls handle until it reaches a terminal state, with fixed-delay
// backoff and a hard timeout. It returns the measurement counts on success
// and a *JobFailedError when the job fails or the polling budget is spent.
func Await(ctx context.Context, b Backend, handle JobHandle, config PollConfig) (MeasurementOutcome, error) {
	defaults := DefaultPollConfig()
	if config.Interval <= 0 {
		config.Interval = defaults.Interval
	}
	if config.Timeout <= 0 {
		config.Timeout = defaults.Timeout
	}
	if config.Attempts == 0 {
		config.Attempts = defaults.Attempts
	}

	ctx, cancel := context.WithTimeout(ctx, config.Timeout)
	defer cancel()

	var counts MeasurementOutcome
	err := retry.Do(
		func() error {
			state, err := b.Poll(handle)
			if err != nil {
				return retry.Unrecoverable(errors.WithStack(err))
			}
			switch state.Status {
			case StatusDone:
				counts = state.Counts
				return nil
			case StatusFailed:
				return retry.Unrecoverable(&JobFailedError{Handle: handle, Reason: state.Reason})
			default:
				return errStillRunning
			}
		},
		retry.Context(ctx),
		retry.Attempts(config.Attempts),
		retry.Delay(config.Interval),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		var failed *JobFailedError
		if errors.As(err, &failed) {
			return nil, failed
		}
		// Timed out or ran out of attempts while still running.
		return nil, &JobFailedError{Handle: handle, Reason: err.Error()}
	}
	return counts, nil
}
