package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/bitlet-dev/titles-go/pkg/log"
)

func TestCollectStats(t *testing.T) {
	base := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	path := createTestLogFile(t, playbackEvents(base))

	stats, err := CollectStats(path)
	if err != nil {
		t.Fatalf("CollectStats failed: %v", err)
	}

	if stats.TotalEvents != 7 {
		t.Errorf("TotalEvents = %d, want 7", stats.TotalEvents)
	}
	if got := stats.EventsByCategory[log.CategoryDisplay]; got != 3 {
		t.Errorf("display events = %d, want 3", got)
	}
	if stats.Errors != 1 {
		t.Errorf("Errors = %d, want 1", stats.Errors)
	}
	if len(stats.Sessions) != 2 {
		t.Fatalf("Sessions = %d, want 2", len(stats.Sessions))
	}

	alice := stats.Sessions["5f1c2a9e-0000-4000-8000-000000000001"]
	if alice.Shows != 2 || alice.Loops != 1 {
		t.Errorf("alice shows/loops = %d/%d, want 2/1", alice.Shows, alice.Loops)
	}
	if alice.EndState != log.StateFinished || alice.EndReason != "finished" {
		t.Errorf("alice ended %s (%s)", alice.EndState, alice.EndReason)
	}
	if !stats.TimeRange.End.Equal(base.Add(3 * time.Second)) {
		t.Errorf("TimeRange.End = %v", stats.TimeRange.End)
	}
}

func TestRunStatsOutput(t *testing.T) {
	path := createTestLogFile(t, playbackEvents(time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)))

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	output := buf.String()

	for _, want := range []string{
		"Total Events: 7",
		"DISPLAY:",
		"Sessions: 2",
		"[5f1c2a9e] alice: 2 shows, 1 loops",
		"Ended: FINISHED (finished)",
		"Errors: 1",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got:\n%s", want, output)
		}
	}
}

func TestRunStatsEmptyFile(t *testing.T) {
	path := createTestLogFile(t, nil)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Total Events: 0") {
		t.Errorf("expected zero events, got: %s", buf.String())
	}
}
