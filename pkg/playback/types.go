package playback

import (
	"errors"
	"log/slog"
	"time"

	"github.com/bitlet-dev/titles-go/pkg/log"
	"github.com/bitlet-dev/titles-go/pkg/scheduler"
)

// Engine errors.
var (
	ErrNoScheduler  = errors.New("playback: scheduler is required")
	ErrNoSink       = errors.New("playback: sink is required")
	ErrEngineClosed = errors.New("playback: engine is shut down")
)

// StopReason says why a session ended.
type StopReason uint8

const (
	// StopRequested means Stop or StopWithClear was called.
	StopRequested StopReason = iota + 1

	// StopReplaced means another sequence was started on the target.
	StopReplaced

	// StopFinished means the sequence ran out of titles and loops.
	StopFinished

	// StopShutdown means the engine was shut down.
	StopShutdown
)

// String returns a human-readable reason.
func (r StopReason) String() string {
	switch r {
	case StopRequested:
		return "requested"
	case StopReplaced:
		return "replaced"
	case StopFinished:
		return "finished"
	case StopShutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}

// Config configures an Engine.
type Config[T comparable] struct {
	// Scheduler runs playback steps. Required.
	Scheduler scheduler.Scheduler

	// Sink presents titles. Required.
	Sink Sink[T]

	// Logger is the optional logger for debug output.
	// If nil, logging is disabled.
	Logger *slog.Logger

	// EventLogger receives structured playback events (optional).
	EventLogger log.Logger

	// OnStop is called after a session ends, without the engine lock held.
	OnStop func(target T, reason StopReason)
}

// SessionInfo is a snapshot of a session.
type SessionInfo[T comparable] struct {
	ID        string
	Target    T
	StartedAt time.Time
	Index     int
	Loop      int
	Titles    int
}
