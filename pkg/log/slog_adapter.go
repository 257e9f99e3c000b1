package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes playback events to an slog.Logger.
// Useful for development when you want to see playback events in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session_id", event.SessionID),
		slog.String("target", event.Target),
		slog.String("category", event.Category.String()),
	}

	switch {
	case event.Display != nil:
		attrs = append(attrs, slog.String("action", event.Display.Action.String()))
		if event.Display.Action == ActionShow {
			attrs = append(attrs,
				slog.Int("index", event.Display.Index),
				slog.Int("loop", event.Display.Loop),
				slog.String("text", event.Display.Text),
				slog.Duration("visible", event.Display.Visible),
				slog.Int64("wait_ticks", event.Display.WaitTicks),
			)
			if event.Display.Subtitle != "" {
				attrs = append(attrs, slog.String("subtitle", event.Display.Subtitle))
			}
		}
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_msg", event.Error.Message),
			slog.String("error_context", event.Error.Context),
		)
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "playback", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
