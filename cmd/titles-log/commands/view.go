// Package commands implements the titles-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/bitlet-dev/titles-go/pkg/log"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Target   string
	Category *log.Category
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [session:id] target CATEGORY Type
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	sessionID := shortenSessionID(event.SessionID)

	var typeLabel string
	switch {
	case event.Display != nil:
		typeLabel = event.Display.Action.String()
	case event.StateChange != nil:
		typeLabel = "State"
	case event.Error != nil:
		typeLabel = "Error"
	default:
		typeLabel = "Unknown"
	}

	fmt.Fprintf(w, "%s [session:%s] %s %s %s\n", ts, sessionID, event.Target, event.Category.String(), typeLabel)

	switch {
	case event.Display != nil:
		formatDisplayDetails(w, event.Display)
	case event.StateChange != nil:
		formatStateChangeDetails(w, event.StateChange)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// formatDisplayDetails writes show/clear details.
func formatDisplayDetails(w io.Writer, d *log.DisplayEvent) {
	if d.Action != log.ActionShow {
		return
	}
	fmt.Fprintf(w, "  Title: %q", d.Text)
	if d.Subtitle != "" {
		fmt.Fprintf(w, " / %q", d.Subtitle)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Index: %d  Loop: %d\n", d.Index, d.Loop)
	fmt.Fprintf(w, "  Visible: %s  Next in: %d ticks\n", formatDuration(d.Visible), d.WaitTicks)
}

// formatStateChangeDetails writes state change details.
func formatStateChangeDetails(w io.Writer, sc *log.StateChangeEvent) {
	if sc.OldState != "" {
		fmt.Fprintf(w, "  %s -> %s\n", sc.OldState, sc.NewState)
	} else {
		fmt.Fprintf(w, "  -> %s\n", sc.NewState)
	}
	if sc.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
	}
	fmt.Fprintf(w, "  Titles: %d  Loop: %d\n", sc.Titles, sc.Loop)
}

// formatErrorDetails writes error details.
func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.3fs", d.Seconds())
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	return log.ParseCategory(s)
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, log.Filter{
		Target:   filter.Target,
		Category: filter.Category,
	})
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}

	return nil
}
