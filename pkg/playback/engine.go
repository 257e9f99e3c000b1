package playback

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bitlet-dev/titles-go/pkg/log"
	"github.com/bitlet-dev/titles-go/pkg/scheduler"
	"github.com/bitlet-dev/titles-go/pkg/sequence"
)

// Engine plays title sequences to targets.
type Engine[T comparable] struct {
	mu sync.Mutex

	registry *Registry[T]
	sched    scheduler.Scheduler
	sink     Sink[T]
	closed   bool

	logger      *slog.Logger
	eventLogger log.Logger
	onStop      func(target T, reason StopReason)
}

// stopped is a session end waiting to be reported to OnStop.
type stopped[T comparable] struct {
	target T
	reason StopReason
}

// NewEngine creates an engine.
func NewEngine[T comparable](cfg Config[T]) (*Engine[T], error) {
	if cfg.Scheduler == nil {
		return nil, ErrNoScheduler
	}
	if cfg.Sink == nil {
		return nil, ErrNoSink
	}

	eventLogger := cfg.EventLogger
	if eventLogger == nil {
		eventLogger = log.NoopLogger{}
	}

	return &Engine[T]{
		registry:    NewRegistry[T](),
		sched:       cfg.Scheduler,
		sink:        cfg.Sink,
		logger:      cfg.Logger,
		eventLogger: eventLogger,
		onStop:      cfg.OnStop,
	}, nil
}

// Start plays seq on target from the first title.
//
// An empty (or nil) sequence is ignored and leaves any current session
// running. Otherwise a session already playing on target is stopped without
// clearing the display, and the first title is shown on the next scheduler
// tick.
func (e *Engine[T]) Start(target T, seq *sequence.Sequence) error {
	e.mu.Lock()

	if e.closed {
		e.mu.Unlock()
		return ErrEngineClosed
	}
	if seq == nil || seq.Len() == 0 {
		e.mu.Unlock()
		e.debugLog("Start: empty sequence ignored", "target", target)
		return nil
	}

	var ended []stopped[T]
	if old, ok := e.registry.Session(target); ok {
		ended = append(ended, e.stopLocked(old, false, StopReplaced))
	}

	sess := &Session[T]{
		ID:        uuid.NewString(),
		Target:    target,
		Sequence:  seq,
		StartedAt: time.Now(),
		Index:     -1,
	}
	task := e.sched.After(0, func() { e.advance(sess, 0, 0) })
	e.registry.Bind(sess, task)

	e.logState(sess, log.StateIdle, log.StatePlaying, "started")
	e.debugLog("Start: session created", "target", target, "session", sess.ID, "titles", seq.Len())

	e.mu.Unlock()

	e.notify(ended)
	return nil
}

// Stop stops the target's session and clears its display.
// It reports whether a session was stopped.
func (e *Engine[T]) Stop(target T) bool {
	return e.StopWithClear(target, true)
}

// StopWithClear stops the target's session, clearing its display if clear is
// set. Stopping a target without a session does nothing.
func (e *Engine[T]) StopWithClear(target T, clear bool) bool {
	e.mu.Lock()
	sess, ok := e.registry.Session(target)
	if !ok {
		e.mu.Unlock()
		return false
	}
	end := e.stopLocked(sess, clear, StopRequested)
	e.mu.Unlock()

	e.notify([]stopped[T]{end})
	return true
}

// Shutdown stops every session and rejects later Start calls.
// Calling it again does nothing.
func (e *Engine[T]) Shutdown(clear bool) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true

	var ended []stopped[T]
	for _, target := range e.registry.Targets() {
		sess, _ := e.registry.Session(target)
		ended = append(ended, e.stopLocked(sess, clear, StopShutdown))
	}
	e.mu.Unlock()

	e.debugLog("Shutdown: sessions stopped", "count", len(ended))
	e.notify(ended)
}

// ActiveSessionFor returns the sequence the target is playing, if any.
func (e *Engine[T]) ActiveSessionFor(target T) (*sequence.Sequence, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.ActiveSessionFor(target)
}

// Session returns a snapshot of the target's session, if any.
func (e *Engine[T]) Session(target T) (SessionInfo[T], bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	sess, ok := e.registry.Session(target)
	if !ok {
		return SessionInfo[T]{}, false
	}
	return SessionInfo[T]{
		ID:        sess.ID,
		Target:    sess.Target,
		StartedAt: sess.StartedAt,
		Index:     sess.Index,
		Loop:      sess.Loop,
		Titles:    sess.Sequence.Len(),
	}, true
}

// ActiveTargets returns every target with an active session.
func (e *Engine[T]) ActiveTargets() []T {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.Targets()
}

// Len returns the number of active sessions.
func (e *Engine[T]) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.Len()
}

// advance is the body of every scheduled step.
func (e *Engine[T]) advance(sess *Session[T], index, loop int) {
	e.mu.Lock()

	// A step may fire while it is being canceled; only the bound session acts.
	if cur, ok := e.registry.Session(sess.Target); !ok || cur != sess {
		e.mu.Unlock()
		return
	}

	step, ok := sess.Sequence.Resolve(index, loop)
	if !ok {
		end := e.stopLocked(sess, true, StopFinished)
		e.mu.Unlock()
		e.notify([]stopped[T]{end})
		return
	}

	if step.Loop != loop {
		e.logState(sess, log.StatePlaying, log.StateLooping, fmt.Sprintf("loop %d", step.Loop))
		e.debugLog("advance: looping back", "target", sess.Target, "index", step.Index, "loop", step.Loop)
	}

	if err := e.sink.Show(sess.Target, step.Title.Compensated()); err != nil {
		e.logError(sess, err, "show")
	}

	wait := scheduler.ToTicks(step.Title.Duration())
	sess.Index, sess.Loop = step.Index, step.Loop

	next, nextLoop := step.Index+1, step.Loop
	task := e.sched.After(wait, func() { e.advance(sess, next, nextLoop) })
	e.registry.Bind(sess, task)

	e.eventLogger.Log(log.Event{
		Timestamp: time.Now(),
		SessionID: sess.ID,
		Target:    fmt.Sprint(sess.Target),
		Category:  log.CategoryDisplay,
		Display: &log.DisplayEvent{
			Action:    log.ActionShow,
			Index:     step.Index,
			Loop:      step.Loop,
			Text:      step.Title.Text,
			Subtitle:  step.Title.Subtitle,
			Visible:   step.Title.Duration(),
			WaitTicks: wait,
		},
	})

	e.mu.Unlock()
}

// stopLocked ends sess. The caller must hold e.mu and pass the result to
// notify after releasing it.
func (e *Engine[T]) stopLocked(sess *Session[T], clear bool, reason StopReason) stopped[T] {
	e.registry.CancelAndUnbind(sess.Target)

	if clear {
		if err := e.sink.Clear(sess.Target); err != nil {
			e.logError(sess, err, "clear")
		}
		e.eventLogger.Log(log.Event{
			Timestamp: time.Now(),
			SessionID: sess.ID,
			Target:    fmt.Sprint(sess.Target),
			Category:  log.CategoryDisplay,
			Display:   &log.DisplayEvent{Action: log.ActionClear},
		})
	}

	newState := log.StateStopped
	if reason == StopFinished {
		newState = log.StateFinished
	}
	e.logState(sess, log.StatePlaying, newState, reason.String())
	e.debugLog("session stopped", "target", sess.Target, "session", sess.ID, "reason", reason, "clear", clear)

	return stopped[T]{target: sess.Target, reason: reason}
}

// notify reports ended sessions to OnStop.
func (e *Engine[T]) notify(ended []stopped[T]) {
	if e.onStop == nil {
		return
	}
	for _, s := range ended {
		e.onStop(s.target, s.reason)
	}
}

func (e *Engine[T]) logState(sess *Session[T], oldState, newState, reason string) {
	e.eventLogger.Log(log.Event{
		Timestamp: time.Now(),
		SessionID: sess.ID,
		Target:    fmt.Sprint(sess.Target),
		Category:  log.CategoryState,
		StateChange: &log.StateChangeEvent{
			OldState: oldState,
			NewState: newState,
			Reason:   reason,
			Titles:   sess.Sequence.Len(),
			Loop:     sess.Loop,
		},
	})
}

func (e *Engine[T]) logError(sess *Session[T], err error, context string) {
	if e.logger != nil {
		e.logger.Warn("display sink failed", "target", sess.Target, "op", context, "error", err)
	}
	e.eventLogger.Log(log.Event{
		Timestamp: time.Now(),
		SessionID: sess.ID,
		Target:    fmt.Sprint(sess.Target),
		Category:  log.CategoryError,
		Error: &log.ErrorEventData{
			Message: err.Error(),
			Context: context,
		},
	})
}

// debugLog logs a debug message if logging is enabled.
func (e *Engine[T]) debugLog(msg string, args ...any) {
	if e.logger != nil {
		e.logger.Debug(msg, args...)
	}
}
