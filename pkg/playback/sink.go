package playback

import "github.com/bitlet-dev/titles-go/pkg/title"

// Sink presents titles to targets.
type Sink[T comparable] interface {
	// Show presents a title to a target.
	Show(target T, t title.Title) error

	// Clear removes whatever title the target currently sees.
	Clear(target T) error
}

// SinkFuncs adapts plain functions to Sink. Nil functions do nothing.
type SinkFuncs[T comparable] struct {
	ShowFunc  func(target T, t title.Title) error
	ClearFunc func(target T) error
}

// Show implements Sink.
func (f SinkFuncs[T]) Show(target T, t title.Title) error {
	if f.ShowFunc == nil {
		return nil
	}
	return f.ShowFunc(target, t)
}

// Clear implements Sink.
func (f SinkFuncs[T]) Clear(target T) error {
	if f.ClearFunc == nil {
		return nil
	}
	return f.ClearFunc(target)
}

var _ Sink[string] = SinkFuncs[string]{}
