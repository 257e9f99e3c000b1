package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/bitlet-dev/titles-go/pkg/log"
)

// createTestLogFile writes events to a new log file and returns its path.
func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.tlog")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

// playbackEvents is a short session: started, two shows with a loop, finished.
func playbackEvents(base time.Time) []log.Event {
	const session = "5f1c2a9e-0000-4000-8000-000000000001"
	return []log.Event{
		{
			Timestamp: base, SessionID: session, Target: "alice", Category: log.CategoryState,
			StateChange: &log.StateChangeEvent{OldState: log.StateIdle, NewState: log.StatePlaying, Reason: "started", Titles: 1},
		},
		{
			Timestamp: base.Add(50 * time.Millisecond), SessionID: session, Target: "alice", Category: log.CategoryDisplay,
			Display: &log.DisplayEvent{Action: log.ActionShow, Text: "Welcome", Visible: time.Second, WaitTicks: 20},
		},
		{
			Timestamp: base.Add(1050 * time.Millisecond), SessionID: session, Target: "alice", Category: log.CategoryDisplay,
			Display: &log.DisplayEvent{Action: log.ActionShow, Loop: 1, Text: "Welcome", Visible: time.Second, WaitTicks: 20},
		},
		{
			Timestamp: base.Add(1100 * time.Millisecond), SessionID: session, Target: "alice", Category: log.CategoryError,
			Error: &log.ErrorEventData{Message: "broken pipe", Context: "clear"},
		},
		{
			Timestamp: base.Add(2050 * time.Millisecond), SessionID: session, Target: "alice", Category: log.CategoryDisplay,
			Display: &log.DisplayEvent{Action: log.ActionClear},
		},
		{
			Timestamp: base.Add(2050 * time.Millisecond), SessionID: session, Target: "alice", Category: log.CategoryState,
			StateChange: &log.StateChangeEvent{OldState: log.StatePlaying, NewState: log.StateFinished, Reason: "finished", Titles: 1, Loop: 1},
		},
		{
			Timestamp: base.Add(3 * time.Second), SessionID: "other-session", Target: "bob", Category: log.CategoryState,
			StateChange: &log.StateChangeEvent{OldState: log.StateIdle, NewState: log.StatePlaying, Reason: "started", Titles: 2},
		},
	}
}
