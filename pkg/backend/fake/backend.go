package fake

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"github.com/Jayaudaykmar26589/quantum-factorization-shors-algorithm/internal/circuit"
	"github.com/Jayaudaykmar26589/quantum-factorization-shors-algorithm/pkg/backend"
)

type SubmittedJob struct {
	Spec  *circuit.Spec
	Shots int
}

// StubBackend is a deterministic in-memory backend for tests. Submissions
// complete immediately: job i returns Outcomes[i] (the last outcome repeats
// once the list is exhausted), or a failed state when FailAll is set or the
// corresponding outcome is nil.
type StubBackend struct {
	mu         sync.Mutex
	Outcomes   []backend.MeasurementOutcome
	FailAll    bool
	FailReason string
	Submitted  []SubmittedJob
	states     map[backend.JobHandle]backend.JobState
}

func NewStubBackend(outcomes ...backend.MeasurementOutcome) *StubBackend {
	return &StubBackend{
		Outcomes: outcomes,
		states:   map[backend.JobHandle]backend.JobState{},
	}
}

func NewFailingBackend(reason string) *StubBackend {
	return &StubBackend{
		FailAll:    true,
		FailReason: reason,
		states:     map[backend.JobHandle]backend.JobState{},
	}
}

func (b *StubBackend) Submit(spec *circuit.Spec, shots int) (backend.JobHandle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := len(b.Submitted)
	b.Submitted = append(b.Submitted, SubmittedJob{Spec: spec, Shots: shots})
	handle := backend.JobHandle(fmt.Sprintf("job-%d", i))

	var outcome backend.MeasurementOutcome
	if len(b.Outcomes) > 0 {
		if i < len(b.Outcomes) {
			outcome = b.Outcomes[i]
		} else {
			outcome = b.Outcomes[len(b.Outcomes)-1]
		}
	}
	if b.FailAll || outcome == nil {
		reason := b.FailReason
		if reason == "" {
			reason = "no outcome configured"
		}
		b.states[handle] = backend.JobState{Status: backend.StatusFailed, Reason: reason}
	} else {
		b.states[handle] = backend.JobState{Status: backend.StatusDone, Counts: outcome}
	}
	return handle, nil
}

func (b *StubBackend) Poll(handle backend.JobHandle) (backend.JobState, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	state, ok := b.states[handle]
	if !ok {
		return backend.JobState{}, errors.Errorf("unknown job handle %s", handle)
	}
	return state, nil
}

func (b *StubBackend) SubmissionCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.Submitted)
}
