package title

import (
	"errors"
	"fmt"
	"time"
)

// StayCompensation is added to Stay when a title is sent to a client.
const StayCompensation = 100 * time.Millisecond

// ErrNegativeDuration is returned when a title has a negative duration.
var ErrNegativeDuration = errors.New("negative title duration")

// Times holds the fade-in, stay and fade-out durations of a title.
type Times struct {
	FadeIn  time.Duration
	Stay    time.Duration
	FadeOut time.Duration
}

// NewTimes creates Times from the three durations.
func NewTimes(fadeIn, stay, fadeOut time.Duration) Times {
	return Times{FadeIn: fadeIn, Stay: stay, FadeOut: fadeOut}
}

// Total returns how long a title with these times stays visible.
func (t Times) Total() time.Duration {
	return t.FadeIn + t.Stay + t.FadeOut
}

// Validate returns ErrNegativeDuration if any duration is negative.
func (t Times) Validate() error {
	switch {
	case t.FadeIn < 0:
		return fmt.Errorf("fade in %v: %w", t.FadeIn, ErrNegativeDuration)
	case t.Stay < 0:
		return fmt.Errorf("stay %v: %w", t.Stay, ErrNegativeDuration)
	case t.FadeOut < 0:
		return fmt.Errorf("fade out %v: %w", t.FadeOut, ErrNegativeDuration)
	}
	return nil
}

// Title is a single timed display unit.
type Title struct {
	// Text is the main line.
	Text string

	// Subtitle is shown below Text. May be empty.
	Subtitle string

	// Times controls how long the title is visible.
	Times Times
}

// New creates a title.
func New(text, subtitle string, times Times) Title {
	return Title{Text: text, Subtitle: subtitle, Times: times}
}

// Duration returns the nominal visible time of the title.
func (t Title) Duration() time.Duration {
	return t.Times.Total()
}

// Validate checks the title's durations.
func (t Title) Validate() error {
	return t.Times.Validate()
}

// Equal reports whether two titles are structurally equal.
func (t Title) Equal(other Title) bool {
	return t == other
}

// Compensated returns a copy of t with Stay padded by StayCompensation.
// This is the form handed to display sinks.
func (t Title) Compensated() Title {
	t.Times.Stay += StayCompensation
	return t
}

// String returns a short human-readable form.
func (t Title) String() string {
	if t.Subtitle == "" {
		return fmt.Sprintf("%q (%v)", t.Text, t.Duration())
	}
	return fmt.Sprintf("%q / %q (%v)", t.Text, t.Subtitle, t.Duration())
}
