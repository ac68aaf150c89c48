package sweep

import (
	"context"
	"math/big"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/Jayaudaykmar26589/quantum-factorization-shors-algorithm/internal/circuit"
	"github.com/Jayaudaykmar26589/quantum-factorization-shors-algorithm/internal/common/metrics"
	"github.com/Jayaudaykmar26589/quantum-factorization-shors-algorithm/internal/factor"
	"github.com/Jayaudaykmar26589/quantum-factorization-shors-algorithm/internal/order"
	"github.com/Jayaudaykmar26589/quantum-factorization-shors-algorithm/pkg/backend"
)

var one = big.NewInt(1)

type Config struct {
	// Shots per circuit submission.
	Shots int
	// Maximum number of coprime witness bases to try. Zero tries every
	// candidate base in [2, N), the full witness range.
	MaxBases uint64
	// Polling bounds for submitted jobs.
	Poll backend.PollConfig
}

// Outcome is the result of sweeping one modulus. Factors == nil means the
// sweep exhausted its bases without factoring N, which is a reportable
// result rather than an error. BackendErrors aggregates per-base backend
// failures and is populated only on exhaustion.
type Outcome struct {
	Modulus       *big.Int
	Factors       *factor.Pair
	Base          *big.Int
	QubitsUsed    int
	GateTally     map[string]int
	BasesTried    int
	BackendErrors error
}

func (o *Outcome) Factored() bool {
	return o.Factors != nil
}

// Controller sweeps candidate witness bases for a modulus in strictly
// increasing order from 2, which keeps the winning base reproducible across
// runs. Non-coprime bases are skipped; backend failures advance to the next
// base; only a circuit exceeding the qubit budget aborts the sweep with an
// error, since every later attempt on this modulus would fail identically.
type Controller struct {
	builder   *circuit.Builder
	backend   backend.Backend
	extractor *order.Extractor
	config    Config
}

func NewController(builder *circuit.Builder, b backend.Backend, extractor *order.Extractor, config Config) *Controller {
	return &Controller{
		builder:   builder,
		backend:   b,
		extractor: extractor,
		config:    config,
	}
}

func (c *Controller) Sweep(ctx context.Context, N *big.Int) (*Outcome, error) {
	logger := log.WithField("modulus", N.String())
	outcome := &Outcome{Modulus: new(big.Int).Set(N)}
	var backendErrors *multierror.Error

	for a := big.NewInt(2); a.Cmp(N) < 0; a.Add(a, one) {
		select {
		case <-ctx.Done():
			return nil, errors.WithStack(ctx.Err())
		default:
		}
		if c.config.MaxBases > 0 && uint64(outcome.BasesTried) >= c.config.MaxBases {
			break
		}
		if new(big.Int).GCD(nil, nil, a, N).Cmp(one) != 0 {
			// Not coprime to N, cannot be a valid witness.
			continue
		}
		outcome.BasesTried++
		metrics.Get().RecordBaseTried()

		spec, err := c.builder.Build(N, a)
		if err != nil {
			// Resource exhaustion is fatal for this modulus and all larger ones.
			return nil, err
		}
		outcome.QubitsUsed = spec.TotalQubits

		counts, err := c.execute(ctx, spec)
		if err != nil {
			metrics.Get().RecordJobFailed()
			backendErrors = multierror.Append(backendErrors, errors.Wrapf(err, "base %s", a))
			logger.WithField("base", a.String()).WithError(err).Debug("backend failure, advancing to next base")
			continue
		}

		r := c.extractor.Extract(a, N, counts, spec.CountingWidth)
		if pair := factor.Resolve(a, N, r); pair != nil {
			outcome.Factors = pair
			outcome.Base = new(big.Int).Set(a)
			outcome.GateTally = spec.GateTally()
			logger.WithFields(log.Fields{
				"base":    a.String(),
				"factors": pair.String(),
			}).Info("factored")
			return outcome, nil
		}
	}

	outcome.BackendErrors = backendErrors.ErrorOrNil()
	logger.WithField("basesTried", outcome.BasesTried).Info("sweep exhausted without factors")
	return outcome, nil
}

func (c *Controller) execute(ctx context.Context, spec *circuit.Spec) (backend.MeasurementOutcome, error) {
	handle, err := c.backend.Submit(spec, c.config.Shots)
	if err != nil {
		return nil, err
	}
	metrics.Get().RecordJobSubmitted()
	return backend.Await(ctx, c.backend, handle, c.config.Poll)
}
