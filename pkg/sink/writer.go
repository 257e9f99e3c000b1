// Package sink provides display sinks for the playback engine.
package sink

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/bitlet-dev/titles-go/pkg/playback"
	"github.com/bitlet-dev/titles-go/pkg/title"
)

// WriterSink renders titles as text lines on an io.Writer.
//
// Each Show writes one line:
//
//	[target] Text / Subtitle (fade 0s/2.1s/0s)
//
// and each Clear writes "[target] --". Writes are serialised so several
// targets can share one writer.
type WriterSink[T comparable] struct {
	mu sync.Mutex
	w  io.Writer

	// Timestamps prefixes every line with the wall-clock time.
	Timestamps bool

	now func() time.Time
}

// NewWriterSink creates a sink writing to w.
func NewWriterSink[T comparable](w io.Writer) *WriterSink[T] {
	return &WriterSink[T]{w: w, now: time.Now}
}

// Show implements playback.Sink.
func (s *WriterSink[T]) Show(target T, t title.Title) error {
	line := fmt.Sprintf("[%v] %s", target, t.Text)
	if t.Subtitle != "" {
		line += " / " + t.Subtitle
	}
	line += fmt.Sprintf(" (fade %s/%s/%s)", t.Times.FadeIn, t.Times.Stay, t.Times.FadeOut)
	return s.writeLine(line)
}

// Clear implements playback.Sink.
func (s *WriterSink[T]) Clear(target T) error {
	return s.writeLine(fmt.Sprintf("[%v] --", target))
}

func (s *WriterSink[T]) writeLine(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Timestamps {
		line = s.now().Format("15:04:05.000") + " " + line
	}
	if _, err := io.WriteString(s.w, line+"\n"); err != nil {
		return fmt.Errorf("write title: %w", err)
	}
	return nil
}

var _ playback.Sink[string] = (*WriterSink[string])(nil)
