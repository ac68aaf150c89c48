package backend

import (
	"math/big"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/Jayaudaykmar26589/quantum-factorization-shors-algorithm/internal/circuit"
)

type LocalBackendConfig struct {
	// Simulated execution latency per job. Zero completes jobs on the first poll.
	Latency time.Duration
	// Seed for the measurement sampler. Zero seeds from the wall clock.
	Seed int64
	// Maximum jobs executing at once. Zero means 4.
	MaxConcurrency int
}

// LocalBackend is an in-process simulator satisfying the Backend contract.
// It does not simulate unitary evolution: submitted circuits produce a
// uniform placeholder distribution over the measured bits, which is exactly
// the fidelity level of the demo modular exponentiation stage. It exists so
// the whole pipeline runs end to end without remote credentials.
type LocalBackend struct {
	mu      sync.Mutex
	jobs    map[JobHandle]JobState
	group   errgroup.Group
	latency time.Duration
	rng     *rand.Rand
}

func NewLocalBackend(config LocalBackendConfig) *LocalBackend {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	limit := config.MaxConcurrency
	if limit <= 0 {
		limit = 4
	}
	b := &LocalBackend{
		jobs:    map[JobHandle]JobState{},
		latency: config.Latency,
		rng:     rand.New(rand.NewSource(seed)),
	}
	b.group.SetLimit(limit)
	return b
}

func (b *LocalBackend) Submit(spec *circuit.Spec, shots int) (JobHandle, error) {
	if spec == nil {
		return "", errors.New("cannot submit a nil circuit spec")
	}
	if shots <= 0 {
		return "", errors.Errorf("invalid shot count %d", shots)
	}
	handle := JobHandle(uuid.New().String())

	b.mu.Lock()
	b.jobs[handle] = JobState{Status: StatusRunning}
	b.mu.Unlock()

	bits := spec.ClassicalBits
	b.group.Go(func() error {
		if b.latency > 0 {
			time.Sleep(b.latency)
		}
		counts := b.sample(bits, shots)
		b.mu.Lock()
		b.jobs[handle] = JobState{Status: StatusDone, Counts: counts}
		b.mu.Unlock()
		return nil
	})
	return handle, nil
}

func (b *LocalBackend) Poll(handle JobHandle) (JobState, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	state, ok := b.jobs[handle]
	if !ok {
		return JobState{}, errors.Errorf("unknown job handle %s", handle)
	}
	return state, nil
}

// Shutdown waits for all in-flight jobs to finish.
func (b *LocalBackend) Shutdown() error {
	return b.group.Wait()
}

func (b *LocalBackend) sample(bits, shots int) MeasurementOutcome {
	bound := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	counts := make(MeasurementOutcome, shots)
	for i := 0; i < shots; i++ {
		b.mu.Lock()
		v := new(big.Int).Rand(b.rng, bound)
		b.mu.Unlock()
		counts[FormatBitstring(v, bits)]++
	}
	return counts
}

// FormatBitstring renders v as a zero-padded binary string of the given
// width, most significant bit first.
func FormatBitstring(v *big.Int, width int) string {
	s := v.Text(2)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return s
}
