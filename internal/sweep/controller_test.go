package sweep

import (
	"context"
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jayaudaykmar26589/quantum-factorization-shors-algorithm/internal/circuit"
	"github.com/Jayaudaykmar26589/quantum-factorization-shors-algorithm/internal/order"
	"github.com/Jayaudaykmar26589/quantum-factorization-shors-algorithm/pkg/backend"
	"github.com/Jayaudaykmar26589/quantum-factorization-shors-algorithm/pkg/backend/fake"
)

func newController(b backend.Backend, budget int, maxBases uint64) *Controller {
	return NewController(
		circuit.NewBuilder(budget, nil),
		b,
		order.NewExtractor(0),
		Config{Shots: 16, MaxBases: maxBases},
	)
}

// A measurement outcome carrying no usable phase information, forcing the
// classical fallback.
func junkOutcome() backend.MeasurementOutcome {
	return backend.MeasurementOutcome{"0000000000000001": 16}
}

func TestSweepFactors143(t *testing.T) {
	stub := fake.NewStubBackend(junkOutcome())
	controller := newController(stub, circuit.DefaultQubitBudget, 0)

	outcome, err := controller.Sweep(context.Background(), big.NewInt(143))
	require.NoError(t, err)
	require.True(t, outcome.Factored())

	assert.Equal(t, int64(2), outcome.Base.Int64())
	assert.Equal(t, int64(11), outcome.Factors.P.Int64())
	assert.Equal(t, int64(13), outcome.Factors.Q.Int64())
	assert.Equal(t, 26, outcome.QubitsUsed)
	assert.Equal(t, 1, outcome.BasesTried)
	assert.NotEmpty(t, outcome.GateTally)
}

func TestSweepFactors899(t *testing.T) {
	stub := fake.NewStubBackend(junkOutcome())
	controller := newController(stub, circuit.DefaultQubitBudget, 0)

	outcome, err := controller.Sweep(context.Background(), big.NewInt(899))
	require.NoError(t, err)
	require.True(t, outcome.Factored())

	product := new(big.Int).Mul(outcome.Factors.P, outcome.Factors.Q)
	assert.Equal(t, int64(899), product.Int64())
	assert.Equal(t, int64(29), new(big.Int).GCD(nil, nil, big.NewInt(899), big.NewInt(29)).Int64())
	assert.Contains(t, []int64{29, 31}, outcome.Factors.P.Int64())
}

func TestSweepDeterministic(t *testing.T) {
	// Identical backend outcomes must produce the identical winning base
	// and factor pair: bases are tried in strictly increasing order.
	first, err := newController(fake.NewStubBackend(junkOutcome()), circuit.DefaultQubitBudget, 0).
		Sweep(context.Background(), big.NewInt(899))
	require.NoError(t, err)
	second, err := newController(fake.NewStubBackend(junkOutcome()), circuit.DefaultQubitBudget, 0).
		Sweep(context.Background(), big.NewInt(899))
	require.NoError(t, err)

	require.True(t, first.Factored())
	require.True(t, second.Factored())
	assert.Equal(t, 0, first.Base.Cmp(second.Base))
	assert.Equal(t, 0, first.Factors.P.Cmp(second.Factors.P))
	assert.Equal(t, 0, first.Factors.Q.Cmp(second.Factors.Q))
}

func TestSweepFailingBackendExhaustsBases(t *testing.T) {
	stub := fake.NewFailingBackend("device offline")
	controller := newController(stub, circuit.DefaultQubitBudget, 0)

	// All 7 bases in [2, 15) coprime to 15 are tried; each backend failure
	// advances to the next base and none reaches order extraction.
	outcome, err := controller.Sweep(context.Background(), big.NewInt(15))
	require.NoError(t, err)

	assert.False(t, outcome.Factored())
	assert.Nil(t, outcome.Factors)
	assert.Equal(t, 7, outcome.BasesTried)
	assert.Equal(t, 7, stub.SubmissionCount())
	assert.Error(t, outcome.BackendErrors)
	assert.Equal(t, 14, outcome.QubitsUsed)
}

func TestSweepMaxBases(t *testing.T) {
	stub := fake.NewFailingBackend("device offline")
	controller := newController(stub, circuit.DefaultQubitBudget, 3)

	outcome, err := controller.Sweep(context.Background(), big.NewInt(143))
	require.NoError(t, err)
	assert.False(t, outcome.Factored())
	assert.Equal(t, 3, outcome.BasesTried)
	assert.Equal(t, 3, stub.SubmissionCount())
}

func TestSweepResourceExceededSubmitsNothing(t *testing.T) {
	stub := fake.NewStubBackend(junkOutcome())
	controller := newController(stub, 10, 0)

	outcome, err := controller.Sweep(context.Background(), big.NewInt(3127))
	assert.Nil(t, outcome)
	require.Error(t, err)

	var exceeded *circuit.ResourceExceededError
	require.True(t, errors.As(err, &exceeded))
	assert.Equal(t, 38, exceeded.Required)
	assert.Equal(t, 0, stub.SubmissionCount())
}

func TestSweepHonoursContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stub := fake.NewFailingBackend("device offline")
	controller := newController(stub, circuit.DefaultQubitBudget, 0)
	outcome, err := controller.Sweep(ctx, big.NewInt(143))
	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, context.Canceled)
}
