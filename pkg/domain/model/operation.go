package model

import (
	"sync"
	"time"

	"github.com/secmon-lab/holodeck/pkg/domain/types"
)

// Operation tracks the request state of one kind of asynchronous call. Only the
// response carrying the open correlation id is applied; responses of superseded
// requests are dropped.
type Operation[T any] struct {
	mu        sync.RWMutex
	state     types.RequestState
	pending   types.CorrelationID
	value     T
	err       error
	updatedAt time.Time
}

// OperationSnapshot is a copy of an operation's state
type OperationSnapshot[T any] struct {
	State         types.RequestState  `json:"state"`
	CorrelationID types.CorrelationID `json:"correlationId,omitempty"`
	Value         T                   `json:"value,omitempty"`
	Error         string              `json:"error,omitempty"`
	UpdatedAt     time.Time           `json:"updatedAt,omitzero"`
}

// Request opens a new pending record, superseding any in flight
func (o *Operation[T]) Request() types.CorrelationID {
	id := types.NewCorrelationID()

	o.mu.Lock()
	defer o.mu.Unlock()

	var zero T
	o.state = types.RequestStatePending
	o.pending = id
	o.value = zero
	o.err = nil
	o.updatedAt = time.Now()
	return id
}

// Succeed records the value if id is the open pending record. It returns false for a
// stale response.
func (o *Operation[T]) Succeed(id types.CorrelationID, value T) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.isOpen(id) {
		return false
	}
	o.state = types.RequestStateSucceeded
	o.value = value
	o.updatedAt = time.Now()
	return true
}

// Fail records the error if id is the open pending record. It returns false for a
// stale response.
func (o *Operation[T]) Fail(id types.CorrelationID, err error) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.isOpen(id) {
		return false
	}
	o.state = types.RequestStateFailed
	o.err = err
	o.updatedAt = time.Now()
	return true
}

// Settle closes the correlation record of id. A request settled while still pending
// falls back to idle.
func (o *Operation[T]) Settle(id types.CorrelationID) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if id == "" || o.pending != id {
		return
	}
	if o.state == types.RequestStatePending {
		o.state = types.RequestStateIdle
	}
	o.pending = ""
}

func (o *Operation[T]) isOpen(id types.CorrelationID) bool {
	return id != "" && o.pending == id && o.state == types.RequestStatePending
}

// State returns the current state
func (o *Operation[T]) State() types.RequestState {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.state == "" {
		return types.RequestStateIdle
	}
	return o.state
}

// Value returns the value of the last success
func (o *Operation[T]) Value() (T, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.value, o.state == types.RequestStateSucceeded
}

// Err returns the error of the last failure
func (o *Operation[T]) Err() error {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.err
}

// Snapshot copies the current state
func (o *Operation[T]) Snapshot() OperationSnapshot[T] {
	o.mu.RLock()
	defer o.mu.RUnlock()

	snap := OperationSnapshot[T]{
		State:         o.state,
		CorrelationID: o.pending,
		Value:         o.value,
		UpdatedAt:     o.updatedAt,
	}
	if snap.State == "" {
		snap.State = types.RequestStateIdle
	}
	if o.err != nil {
		snap.Error = o.err.Error()
	}
	return snap
}
