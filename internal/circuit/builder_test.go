package circuit

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQubitLayout(t *testing.T) {
	tests := []struct {
		n              int64
		expectedQubits int
	}{
		{143, 3*8 + 2},
		{899, 3*10 + 2},
		{3127, 3*12 + 2},
		{15, 3*4 + 2},
	}
	builder := NewBuilder(DefaultQubitBudget, nil)
	for _, tc := range tests {
		spec, err := builder.Build(big.NewInt(tc.n), big.NewInt(2))
		require.NoError(t, err)
		assert.Equal(t, tc.expectedQubits, spec.TotalQubits)
		assert.Equal(t, spec.CountingWidth+spec.WorkWidth+spec.AncillaWidth, spec.TotalQubits)
		assert.Equal(t, 2, spec.AncillaWidth)
		assert.Equal(t, 2*spec.CountingWidth, spec.ClassicalBits)
	}
}

func TestBuildRejectsOverBudget(t *testing.T) {
	builder := NewBuilder(10, nil)
	spec, err := builder.Build(big.NewInt(3127), big.NewInt(2))
	assert.Nil(t, spec)
	require.Error(t, err)

	exceeded, ok := err.(*ResourceExceededError)
	require.True(t, ok)
	assert.Equal(t, 38, exceeded.Required)
	assert.Equal(t, 10, exceeded.Budget)
}

func TestBuildGateSequence(t *testing.T) {
	builder := NewBuilder(DefaultQubitBudget, &ApproximateModExp{})
	spec, err := builder.Build(big.NewInt(15), big.NewInt(7))
	require.NoError(t, err)

	n := 4
	tally := spec.GateTally()
	// n superposition Hadamards plus one per counting qubit in the IQFT.
	assert.Equal(t, 2*n, tally["h"])
	assert.Equal(t, n*n, tally["cx"])
	assert.Equal(t, n*(n-1)/2, tally["cu1"])
	assert.Equal(t, 2*n, tally["measure"])
	assert.Equal(t, spec.TotalGates(), 2*n+n*n+n*(n-1)/2+2*n)
}

func TestInverseQFTAngles(t *testing.T) {
	builder := NewBuilder(DefaultQubitBudget, &NullModExp{})
	spec, err := builder.Build(big.NewInt(15), big.NewInt(2))
	require.NoError(t, err)

	for _, g := range spec.Gates {
		if g.Name != "cu1" {
			continue
		}
		require.Len(t, g.Qubits, 2)
		j, i := g.Qubits[0], g.Qubits[1]
		require.Greater(t, i, j)
		assert.InDelta(t, -math.Pi/math.Pow(2, float64(i-j)), g.Angle, 1e-12)
	}
}

func TestBuildCopiesInputs(t *testing.T) {
	builder := NewBuilder(DefaultQubitBudget, nil)
	N := big.NewInt(143)
	a := big.NewInt(2)
	spec, err := builder.Build(N, a)
	require.NoError(t, err)

	N.SetInt64(999)
	a.SetInt64(999)
	assert.Equal(t, int64(143), spec.Modulus.Int64())
	assert.Equal(t, int64(2), spec.Base.Int64())
}
