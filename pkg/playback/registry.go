package playback

import (
	"time"

	"github.com/bitlet-dev/titles-go/pkg/scheduler"
	"github.com/bitlet-dev/titles-go/pkg/sequence"
)

// Session is one target playing one sequence.
type Session[T comparable] struct {
	// ID uniquely identifies the session (UUID).
	ID string

	// Target is the target the sequence plays to.
	Target T

	// Sequence is the sequence being played. It is shared with its owner.
	Sequence *sequence.Sequence

	// StartedAt is when the session was started.
	StartedAt time.Time

	// Index and Loop are the position of the title currently shown.
	// Index is -1 until the first title is shown.
	Index int
	Loop  int

	// task is the pending step.
	task scheduler.Task
}

// Registry tracks the active session and pending step of each target.
//
// A target is either absent or bound to exactly one session with exactly one
// pending task. Registry is not safe for concurrent use; Engine serialises
// access to it.
type Registry[T comparable] struct {
	sessions map[T]*Session[T]
}

// NewRegistry creates an empty registry.
func NewRegistry[T comparable]() *Registry[T] {
	return &Registry[T]{
		sessions: make(map[T]*Session[T]),
	}
}

// ActiveSessionFor returns the sequence the target is playing, if any.
func (r *Registry[T]) ActiveSessionFor(target T) (*sequence.Sequence, bool) {
	s, ok := r.sessions[target]
	if !ok {
		return nil, false
	}
	return s.Sequence, true
}

// Session returns the target's session, if any.
func (r *Registry[T]) Session(target T) (*Session[T], bool) {
	s, ok := r.sessions[target]
	return s, ok
}

// Bind records s as its target's session with task as the pending step.
// Any previous binding for the target is overwritten; the caller must have
// canceled its task already.
func (r *Registry[T]) Bind(s *Session[T], task scheduler.Task) {
	s.task = task
	r.sessions[s.Target] = s
}

// Unbind removes the target's binding. Safe to call on absent targets.
func (r *Registry[T]) Unbind(target T) {
	delete(r.sessions, target)
}

// CancelAndUnbind cancels the target's pending task and removes the binding.
// It returns the removed session, if there was one.
func (r *Registry[T]) CancelAndUnbind(target T) (*Session[T], bool) {
	s, ok := r.sessions[target]
	if !ok {
		return nil, false
	}
	if s.task != nil {
		s.task.Cancel()
	}
	r.Unbind(target)
	return s, true
}

// Targets returns every target with an active session, in no particular order.
func (r *Registry[T]) Targets() []T {
	targets := make([]T, 0, len(r.sessions))
	for target := range r.sessions {
		targets = append(targets, target)
	}
	return targets
}

// Len returns the number of active sessions.
func (r *Registry[T]) Len() int {
	return len(r.sessions)
}
