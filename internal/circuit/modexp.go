package circuit

import "math/big"

// ModExpStrategy supplies the gate sequence for the modular exponentiation
// stage acting between the counting register [0, countingWidth) and the work
// register [countingWidth, countingWidth+workWidth).
//
// A strategy is not required to faithfully compute a^x mod N. When it does
// not, the measurement distribution carries no usable phase information and
// order extraction falls back to the classical search.
type ModExpStrategy interface {
	Name() string
	Gates(a, N *big.Int, countingWidth, workWidth int) []Gate
}

// ApproximateModExp is the demo placeholder stage: a mesh of CNOTs from every
// counting qubit to every work qubit. It entangles the registers but does not
// implement controlled multiplication, so its outcomes are noise with respect
// to phase estimation.
type ApproximateModExp struct{}

func (s *ApproximateModExp) Name() string { return "approximate" }

func (s *ApproximateModExp) Gates(a, N *big.Int, countingWidth, workWidth int) []Gate {
	gates := make([]Gate, 0, countingWidth*workWidth)
	for i := 0; i < countingWidth; i++ {
		for j := countingWidth; j < countingWidth+workWidth; j++ {
			gates = append(gates, Gate{Name: "cx", Qubits: []int{i, j}})
		}
	}
	return gates
}

// NullModExp emits no gates at all, leaving the work register untouched.
// Useful in tests that need a circuit whose outcome is guaranteed unusable.
type NullModExp struct{}

func (s *NullModExp) Name() string { return "null" }

func (s *NullModExp) Gates(a, N *big.Int, countingWidth, workWidth int) []Gate {
	return nil
}
