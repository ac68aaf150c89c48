package challenge

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jayaudaykmar26589/quantum-factorization-shors-algorithm/internal/circuit"
	"github.com/Jayaudaykmar26589/quantum-factorization-shors-algorithm/internal/common/util"
	"github.com/Jayaudaykmar26589/quantum-factorization-shors-algorithm/internal/order"
	"github.com/Jayaudaykmar26589/quantum-factorization-shors-algorithm/internal/sweep"
	"github.com/Jayaudaykmar26589/quantum-factorization-shors-algorithm/pkg/backend"
	"github.com/Jayaudaykmar26589/quantum-factorization-shors-algorithm/pkg/backend/fake"
)

func testTable() []SemiprimeEntry {
	return []SemiprimeEntry{
		{BitSize: 8, Value: big.NewInt(143)},
		{BitSize: 10, Value: big.NewInt(899)},
		{BitSize: 12, Value: big.NewInt(3127)},
		{BitSize: 14, Value: big.NewInt(11009)},
	}
}

func newTestController(b backend.Backend, budget int) *sweep.Controller {
	return sweep.NewController(
		circuit.NewBuilder(budget, nil),
		b,
		order.NewExtractor(0),
		sweep.Config{Shots: 16},
	)
}

func junkOutcome() backend.MeasurementOutcome {
	return backend.MeasurementOutcome{"0000000000000001": 16}
}

func TestRunFactorsWholeTable(t *testing.T) {
	stub := fake.NewStubBackend(junkOutcome())
	orchestrator := NewOrchestrator(newTestController(stub, circuit.DefaultQubitBudget), &util.SteppingClock{Step: time.Second})

	results, err := orchestrator.Run(context.Background(), testTable()[:2], 8)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, 8, results[0].BitSize)
	require.NotNil(t, results[0].Factors)
	assert.Equal(t, int64(11), results[0].Factors.P.Int64())
	assert.Equal(t, int64(13), results[0].Factors.Q.Int64())
	assert.Equal(t, 26, results[0].QubitsUsed)
	assert.Equal(t, time.Second, results[0].ExecutionTime)

	require.NotNil(t, results[1].Factors)
	product := new(big.Int).Mul(results[1].Factors.P, results[1].Factors.Q)
	assert.Equal(t, int64(899), product.Int64())
}

func TestRunFiltersByStartBit(t *testing.T) {
	stub := fake.NewStubBackend(junkOutcome())
	orchestrator := NewOrchestrator(newTestController(stub, circuit.DefaultQubitBudget), nil)

	results, err := orchestrator.Run(context.Background(), testTable()[:2], 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 10, results[0].BitSize)
}

func TestRunStopsOnResourceExceeded(t *testing.T) {
	// Budget 32 admits the 8- and 10-bit entries (26 and 32 qubits) but not
	// the 12-bit one (38). The run must stop there, keep the two results
	// already computed, and never touch the 14-bit entry.
	stub := fake.NewStubBackend(junkOutcome())
	orchestrator := NewOrchestrator(newTestController(stub, 32), nil)

	results, err := orchestrator.Run(context.Background(), testTable(), 8)
	require.Error(t, err)

	var exceeded *circuit.ResourceExceededError
	require.ErrorAs(t, err, &exceeded)
	assert.Equal(t, 38, exceeded.Required)

	require.Len(t, results, 2)
	assert.Equal(t, 8, results[0].BitSize)
	assert.Equal(t, 10, results[1].BitSize)
	// One submission per factored entry, none for the rejected circuit.
	assert.Equal(t, 2, stub.SubmissionCount())
}

func TestRunContinuesPastFailedToFactor(t *testing.T) {
	// A backend that fails every job makes each sweep exhaust its bases,
	// but the run itself carries on to the next entry.
	stub := fake.NewFailingBackend("device offline")
	controller := sweep.NewController(
		circuit.NewBuilder(circuit.DefaultQubitBudget, nil),
		stub,
		order.NewExtractor(0),
		sweep.Config{Shots: 16, MaxBases: 4},
	)
	orchestrator := NewOrchestrator(controller, nil)

	results, err := orchestrator.Run(context.Background(), testTable()[:2], 8)
	require.NoError(t, err)
	require.Len(t, results, 2)

	for _, r := range results {
		assert.Nil(t, r.Factors)
		assert.NotNil(t, r.GateTally)
		assert.Empty(t, r.GateTally)
		assert.Equal(t, 4, r.BasesTried)
	}
}
