package circuit

import (
	"fmt"
	"math"
	"math/big"
)

const DefaultQubitBudget = 200

// ResourceExceededError indicates that a circuit would require more qubits
// than the configured budget allows. It is fatal for the current semiprime
// and for every larger one, so callers terminate the whole run on it.
type ResourceExceededError struct {
	Modulus  *big.Int
	Required int
	Budget   int
}

func (err *ResourceExceededError) Error() string {
	return fmt.Sprintf("factoring %s requires %d qubits (budget %d)", err.Modulus, err.Required, err.Budget)
}

// Gate is one primitive operation in the abstract gate sequence. Angle is
// only meaningful for controlled-phase gates.
type Gate struct {
	Name   string
	Qubits []int
	Angle  float64
}

// Spec describes a phase-estimation circuit for one (N, a) pair.
//
// Register layout: qubits [0, CountingWidth) form the counting register,
// [CountingWidth, CountingWidth+WorkWidth) the work register, and the last
// two qubits are ancillas. TotalQubits is always 3*bitlen(N)+2. A Spec is
// read-only once built and is discarded after submission.
type Spec struct {
	Modulus       *big.Int
	Base          *big.Int
	CountingWidth int
	WorkWidth     int
	AncillaWidth  int
	TotalQubits   int
	ClassicalBits int
	Gates         []Gate
}

// GateTally counts primitive operations by gate name.
func (s *Spec) GateTally() map[string]int {
	tally := make(map[string]int, 4)
	for _, g := range s.Gates {
		tally[g.Name]++
	}
	return tally
}

// TotalGates returns the total number of primitive operations in the gate sequence.
func (s *Spec) TotalGates() int {
	return len(s.Gates)
}

// Builder constructs circuit specs under a fixed qubit budget. The modular
// exponentiation stage is pluggable so the classical pipeline downstream is
// unaffected by whether that stage is faithful or a demo placeholder.
type Builder struct {
	qubitBudget int
	modExp      ModExpStrategy
}

func NewBuilder(qubitBudget int, modExp ModExpStrategy) *Builder {
	if qubitBudget <= 0 {
		qubitBudget = DefaultQubitBudget
	}
	if modExp == nil {
		modExp = &ApproximateModExp{}
	}
	return &Builder{qubitBudget: qubitBudget, modExp: modExp}
}

func (b *Builder) QubitBudget() int {
	return b.qubitBudget
}

// Build sizes and constructs the circuit spec for factoring N with witness
// base a: superposition over the counting register, the modular
// exponentiation stage, an inverse QFT on the counting register, and
// measurement of the first 2n qubits into 2n classical bits.
func (b *Builder) Build(N, a *big.Int) (*Spec, error) {
	n := N.BitLen()
	totalQubits := 3*n + 2
	if totalQubits > b.qubitBudget {
		return nil, &ResourceExceededError{Modulus: N, Required: totalQubits, Budget: b.qubitBudget}
	}

	spec := &Spec{
		Modulus:       new(big.Int).Set(N),
		Base:          new(big.Int).Set(a),
		CountingWidth: n,
		WorkWidth:     n,
		AncillaWidth:  2,
		TotalQubits:   totalQubits,
		ClassicalBits: 2 * n,
	}

	// Uniform superposition over the counting register.
	for i := 0; i < n; i++ {
		spec.Gates = append(spec.Gates, Gate{Name: "h", Qubits: []int{i}})
	}

	spec.Gates = append(spec.Gates, b.modExp.Gates(a, N, n, n)...)

	spec.Gates = append(spec.Gates, inverseQFT(n)...)

	for i := 0; i < 2*n; i++ {
		spec.Gates = append(spec.Gates, Gate{Name: "measure", Qubits: []int{i}})
	}

	return spec, nil
}

// inverseQFT emits the inverse quantum Fourier transform on the counting
// register: controlled phase rotations of angle -pi/2^(i-j) between qubit
// pairs j < i, followed by a Hadamard on each qubit.
func inverseQFT(n int) []Gate {
	gates := make([]Gate, 0, n+n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			angle := -math.Pi / math.Pow(2, float64(i-j))
			gates = append(gates, Gate{Name: "cu1", Qubits: []int{j, i}, Angle: angle})
		}
		gates = append(gates, Gate{Name: "h", Qubits: []int{i}})
	}
	return gates
}
