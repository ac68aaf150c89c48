package challenge

import (
	"context"
	"math/big"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/Jayaudaykmar26589/quantum-factorization-shors-algorithm/internal/circuit"
	"github.com/Jayaudaykmar26589/quantum-factorization-shors-algorithm/internal/common/metrics"
	"github.com/Jayaudaykmar26589/quantum-factorization-shors-algorithm/internal/common/util"
	"github.com/Jayaudaykmar26589/quantum-factorization-shors-algorithm/internal/factor"
	"github.com/Jayaudaykmar26589/quantum-factorization-shors-algorithm/internal/sweep"
)

// Sweeper is the base-sweep contract the orchestrator drives.
type Sweeper interface {
	Sweep(ctx context.Context, N *big.Int) (*sweep.Outcome, error)
}

// Result is the immutable per-entry record of one factorization attempt.
// Factors == nil records a sweep that exhausted its bases without success.
type Result struct {
	BitSize       int
	Modulus       *big.Int
	Factors       *factor.Pair
	WinningBase   *big.Int
	QubitsUsed    int
	GateTally     map[string]int
	BasesTried    int
	ExecutionTime time.Duration
}

// Orchestrator walks the challenge table in ascending bit-size order,
// sweeping each entry. It owns the result list: created at run start,
// append-only, returned even when the run stops early.
type Orchestrator struct {
	sweeper Sweeper
	clock   util.Clock
}

func NewOrchestrator(sweeper Sweeper, clock util.Clock) *Orchestrator {
	if clock == nil {
		clock = &util.DefaultClock{}
	}
	return &Orchestrator{sweeper: sweeper, clock: clock}
}

// Run sweeps every table entry with BitSize >= startBit, in table order.
//
// A *circuit.ResourceExceededError stops the run immediately: the qubit
// requirement grows with N, so every later entry would fail the same way.
// The error is returned alongside the results accumulated so far; callers
// treat it as a graceful partial completion. Results already computed are
// never lost to a later failure.
func (o *Orchestrator) Run(ctx context.Context, table []SemiprimeEntry, startBit int) ([]Result, error) {
	results := make([]Result, 0, len(table))
	for _, entry := range table {
		if entry.BitSize < startBit {
			continue
		}
		logger := log.WithFields(log.Fields{
			"bitSize": entry.BitSize,
			"modulus": entry.Value.String(),
		})
		logger.Info("attempting semiprime")

		started := o.clock.Now()
		outcome, err := o.sweeper.Sweep(ctx, entry.Value)
		if err != nil {
			var exceeded *circuit.ResourceExceededError
			if errors.As(err, &exceeded) {
				logger.WithField("required", exceeded.Required).
					WithField("budget", exceeded.Budget).
					Warn("qubit budget exceeded, stopping challenge")
				return results, err
			}
			return results, err
		}
		elapsed := o.clock.Now().Sub(started)

		result := Result{
			BitSize:       entry.BitSize,
			Modulus:       new(big.Int).Set(entry.Value),
			Factors:       outcome.Factors,
			WinningBase:   outcome.Base,
			QubitsUsed:    outcome.QubitsUsed,
			GateTally:     outcome.GateTally,
			BasesTried:    outcome.BasesTried,
			ExecutionTime: elapsed,
		}
		if result.GateTally == nil {
			result.GateTally = map[string]int{}
		}
		results = append(results, result)

		if outcome.Factored() {
			metrics.Get().RecordFactorization("factored")
			logger.WithField("factors", outcome.Factors.String()).Info("factored semiprime")
		} else {
			metrics.Get().RecordFactorization("unfactored")
			if outcome.BackendErrors != nil {
				logger.WithError(outcome.BackendErrors).Warn("sweep saw backend failures")
			}
			logger.Info("failed to factor, continuing with next entry")
		}
	}
	return results, nil
}
