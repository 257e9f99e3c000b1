package log

import (
	"fmt"
	"strings"
	"time"
)

// Event represents a playback log event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the playback session (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Target is the printed form of the target the session plays to.
	Target string `cbor:"3,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// Type-specific payload (one of these will be set).
	Display     *DisplayEvent     `cbor:"5,keyasint,omitempty"`
	StateChange *StateChangeEvent `cbor:"6,keyasint,omitempty"`
	Error       *ErrorEventData   `cbor:"7,keyasint,omitempty"`
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryDisplay indicates a title was shown or cleared.
	CategoryDisplay Category = 0
	// CategoryState indicates a session state change.
	CategoryState Category = 1
	// CategoryError indicates an error event.
	CategoryError Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryDisplay:
		return "DISPLAY"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseCategory parses a category name, case-insensitively.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(s) {
	case "display":
		return CategoryDisplay, nil
	case "state":
		return CategoryState, nil
	case "error":
		return CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category %q (valid: display, state, error)", s)
	}
}

// DisplayAction distinguishes show from clear.
type DisplayAction uint8

const (
	// ActionShow indicates a title was sent to the target.
	ActionShow DisplayAction = 0
	// ActionClear indicates the target's title was cleared.
	ActionClear DisplayAction = 1
)

// String returns the action name.
func (a DisplayAction) String() string {
	switch a {
	case ActionShow:
		return "SHOW"
	case ActionClear:
		return "CLEAR"
	default:
		return "UNKNOWN"
	}
}

// DisplayEvent captures a title shown to, or cleared from, a target.
type DisplayEvent struct {
	// Action is show or clear.
	Action DisplayAction `cbor:"1,keyasint"`

	// Index is the title's position in the sequence (show only).
	Index int `cbor:"2,keyasint,omitempty"`

	// Loop is the loop counter when the title was shown (show only).
	Loop int `cbor:"3,keyasint,omitempty"`

	// Text and Subtitle are the title content (show only).
	Text     string `cbor:"4,keyasint,omitempty"`
	Subtitle string `cbor:"5,keyasint,omitempty"`

	// Visible is the nominal visible duration of the title (show only).
	Visible time.Duration `cbor:"6,keyasint,omitempty"`

	// WaitTicks is the delay scheduled before the next step (show only).
	WaitTicks int64 `cbor:"7,keyasint,omitempty"`
}

// Session states recorded in StateChangeEvent.
const (
	StateIdle     = "IDLE"
	StatePlaying  = "PLAYING"
	StateLooping  = "LOOPING"
	StateStopped  = "STOPPED"
	StateFinished = "FINISHED"
)

// StateChangeEvent captures session lifecycle events.
type StateChangeEvent struct {
	// OldState is the previous state (may be empty).
	OldState string `cbor:"1,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"2,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"3,keyasint,omitempty"`

	// Titles is the sequence length when the change happened.
	Titles int `cbor:"4,keyasint,omitempty"`

	// Loop is the loop counter when the change happened.
	Loop int `cbor:"5,keyasint,omitempty"`
}

// ErrorEventData captures errors.
type ErrorEventData struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"2,keyasint,omitempty"`
}
