package log

import (
	"bytes"
	"io"
	"testing"
	"time"
)

func TestEventCBORRoundTrip(t *testing.T) {
	ts := time.Date(2026, 10, 19, 10, 15, 32, 123456789, time.UTC)
	original := Event{
		Timestamp: ts,
		SessionID: "abc12345-def6-7890-abcd-ef1234567890",
		Target:    "alice",
		Category:  CategoryDisplay,
		Display: &DisplayEvent{
			Action:    ActionShow,
			Index:     2,
			Loop:      1,
			Text:      "Welcome",
			Subtitle:  "to the server",
			Visible:   2500 * time.Millisecond,
			WaitTicks: 50,
		},
	}

	data, err := EncodeEvent(original)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if !decoded.Timestamp.Equal(original.Timestamp) {
		t.Errorf("Timestamp: got %v, want %v", decoded.Timestamp, original.Timestamp)
	}
	if decoded.SessionID != original.SessionID {
		t.Errorf("SessionID: got %q, want %q", decoded.SessionID, original.SessionID)
	}
	if decoded.Target != original.Target {
		t.Errorf("Target: got %q, want %q", decoded.Target, original.Target)
	}
	if decoded.Category != original.Category {
		t.Errorf("Category: got %v, want %v", decoded.Category, original.Category)
	}
	if decoded.Display == nil {
		t.Fatal("Display is nil")
	}
	if *decoded.Display != *original.Display {
		t.Errorf("Display: got %+v, want %+v", *decoded.Display, *original.Display)
	}
	if decoded.StateChange != nil || decoded.Error != nil {
		t.Error("unset payloads should decode as nil")
	}
}

func TestStateChangeEventCBORRoundTrip(t *testing.T) {
	original := Event{
		Timestamp: time.Now().UTC(),
		SessionID: "s-1",
		Target:    "bob",
		Category:  CategoryState,
		StateChange: &StateChangeEvent{
			OldState: StatePlaying,
			NewState: StateStopped,
			Reason:   "replaced",
			Titles:   3,
			Loop:     2,
		},
	}

	data, err := EncodeEvent(original)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if decoded.StateChange == nil || *decoded.StateChange != *original.StateChange {
		t.Errorf("StateChange: got %+v, want %+v", decoded.StateChange, original.StateChange)
	}
}

func TestEncodingUsesIntegerKeys(t *testing.T) {
	data, err := EncodeEvent(Event{SessionID: "s", Target: "t"})
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	if bytes.Contains(data, []byte("SessionID")) || bytes.Contains(data, []byte("Target")) {
		t.Error("encoded event should not contain field names")
	}
}

func TestEncoderDecoderStream(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)

	for _, target := range []string{"a", "b", "c"} {
		if err := enc.Encode(Event{Target: target, Category: CategoryError, Error: &ErrorEventData{Message: "boom"}}); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
	}

	dec := NewDecoder(&buf)
	var got []string
	for {
		var e Event
		err := dec.Decode(&e)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		got = append(got, e.Target)
	}

	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Errorf("decoded targets = %v, want [a b c]", got)
	}
}

func TestDecodeEventInvalid(t *testing.T) {
	if _, err := DecodeEvent([]byte{0xff, 0x00}); err == nil {
		t.Error("DecodeEvent should fail on garbage input")
	}
}
