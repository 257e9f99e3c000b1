package log

import (
	"testing"
	"time"
)

func TestNoopLoggerDoesNotPanic(t *testing.T) {
	logger := NoopLogger{}

	event := Event{
		Timestamp: time.Now(),
		SessionID: "session-1",
		Target:    "alice",
		Category:  CategoryDisplay,
	}
	logger.Log(event)

	event.Display = &DisplayEvent{Action: ActionShow, Text: "Hello"}
	logger.Log(event)

	event.Display = nil
	event.StateChange = &StateChangeEvent{NewState: StatePlaying}
	logger.Log(event)

	event.StateChange = nil
	event.Error = &ErrorEventData{Message: "test error"}
	logger.Log(event)
}

func TestNoopLoggerIsZeroValue(t *testing.T) {
	var logger NoopLogger
	logger.Log(Event{})
}

func TestCategoryString(t *testing.T) {
	tests := map[Category]string{
		CategoryDisplay: "DISPLAY",
		CategoryState:   "STATE",
		CategoryError:   "ERROR",
		Category(99):    "UNKNOWN",
	}
	for c, want := range tests {
		if got := c.String(); got != want {
			t.Errorf("Category(%d).String() = %q, want %q", c, got, want)
		}
	}
}

func TestParseCategory(t *testing.T) {
	tests := map[string]Category{
		"display": CategoryDisplay,
		"STATE":   CategoryState,
		"Error":   CategoryError,
	}
	for name, want := range tests {
		got, err := ParseCategory(name)
		if err != nil {
			t.Errorf("ParseCategory(%q) error = %v", name, err)
			continue
		}
		if got != want {
			t.Errorf("ParseCategory(%q) = %v, want %v", name, got, want)
		}
	}

	if _, err := ParseCategory("frame"); err == nil {
		t.Error("ParseCategory(frame) should fail")
	}
}

func TestDisplayActionString(t *testing.T) {
	if ActionShow.String() != "SHOW" || ActionClear.String() != "CLEAR" {
		t.Errorf("unexpected action names %s / %s", ActionShow, ActionClear)
	}
	if DisplayAction(7).String() != "UNKNOWN" {
		t.Error("unknown action should print UNKNOWN")
	}
}
