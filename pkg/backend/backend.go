package backend

import (
	"fmt"

	"github.com/Jayaudaykmar26589/quantum-factorization-shors-algorithm/internal/circuit"
)

// JobHandle identifies one submitted circuit execution. The engine holds only
// the handle and polls it; job lifecycle is owned by the backend.
type JobHandle string

type Status string

const (
	StatusSubmitted Status = "SUBMITTED"
	StatusRunning   Status = "RUNNING"
	StatusDone      Status = "DONE"
	StatusFailed    Status = "FAILED"
)

// MeasurementOutcome maps observed bitstrings to observation counts. The
// counts sum to the submitted shot count. Bit i of a bitstring (from the
// least significant end) is the measured value of classical bit i.
type MeasurementOutcome map[string]int

// JobState is a snapshot of a job. Counts is populated only for StatusDone,
// Reason only for StatusFailed.
type JobState struct {
	Status Status
	Counts MeasurementOutcome
	Reason string
}

func (s JobState) Terminal() bool {
	return s.Status == StatusDone || s.Status == StatusFailed
}

// Backend executes circuit specs asynchronously. Submit is fire-and-forget;
// callers poll the returned handle until the job reaches a terminal state,
// normally through Await.
type Backend interface {
	Submit(spec *circuit.Spec, shots int) (JobHandle, error)
	Poll(handle JobHandle) (JobState, error)
}

// JobFailedError reports a job that reached the failed state or could not
// complete within the polling budget. It is recoverable per witness base: the
// sweep moves on to the next candidate.
type JobFailedError struct {
	Handle JobHandle
	Reason string
}

func (err *JobFailedError) Error() string {
	return fmt.Sprintf("job %s failed: %s", err.Handle, err.Reason)
}
