package sequence

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/bitlet-dev/titles-go/pkg/title"
)

// UnboundedLoops is the default loop count.
const UnboundedLoops = math.MaxInt

// ErrIndexOutOfRange is matched by every IndexError.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError reports an index outside the valid range of an operation.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("sequence %s: index %d out of range for length %d", e.Op, e.Index, e.Len)
}

// Is makes errors.Is(err, ErrIndexOutOfRange) hold.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// Sequence is an ordered list of titles with loop settings.
// It is safe for concurrent use; playback reads it while the owner edits it.
type Sequence struct {
	mu sync.RWMutex

	titles    []title.Title
	looping   bool
	loopCount int
	loopPoint int
}

// New creates an empty sequence that does not loop, with loop point 0 and
// an unbounded loop count.
func New() *Sequence {
	return &Sequence{loopCount: UnboundedLoops}
}

// NewLooping creates an empty looping sequence.
func NewLooping(loopCount, loopPoint int) *Sequence {
	return &Sequence{
		looping:   true,
		loopCount: loopCount,
		loopPoint: loopPoint,
	}
}

// Append adds a title to the end of the sequence.
func (s *Sequence) Append(t title.Title) *Sequence {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.titles = append(s.titles, t)
	return s
}

// Insert adds a title at index, shifting later titles back.
// Valid indices are 0 through Len() inclusive.
func (s *Sequence) Insert(t title.Title, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index > len(s.titles) {
		return &IndexError{Op: "insert", Index: index, Len: len(s.titles)}
	}
	s.titles = slices.Insert(s.titles, index, t)
	return nil
}

// Replace overwrites the title at index.
func (s *Sequence) Replace(t title.Title, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.titles) {
		return &IndexError{Op: "replace", Index: index, Len: len(s.titles)}
	}
	s.titles[index] = t
	return nil
}

// Get returns the title at index.
func (s *Sequence) Get(index int) (title.Title, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if index < 0 || index >= len(s.titles) {
		return title.Title{}, &IndexError{Op: "get", Index: index, Len: len(s.titles)}
	}
	return s.titles[index], nil
}

// RemoveAt removes the title at index.
func (s *Sequence) RemoveAt(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.titles) {
		return &IndexError{Op: "remove", Index: index, Len: len(s.titles)}
	}
	s.titles = slices.Delete(s.titles, index, index+1)
	return nil
}

// Remove removes the first title equal to t. Does nothing if none matches.
func (s *Sequence) Remove(t title.Title) *Sequence {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := slices.IndexFunc(s.titles, t.Equal); i >= 0 {
		s.titles = slices.Delete(s.titles, i, i+1)
	}
	return s
}

// Clear removes all titles. Loop settings are kept.
func (s *Sequence) Clear() *Sequence {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.titles = nil
	return s
}

// Len returns the number of titles.
func (s *Sequence) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.titles)
}

// Titles returns a copy of the titles in order.
func (s *Sequence) Titles() []title.Title {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.titles)
}

// SetLooping sets whether playback loops after the last title.
func (s *Sequence) SetLooping(looping bool) *Sequence {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.looping = looping
	return s
}

// IsLooping reports whether playback loops after the last title.
func (s *Sequence) IsLooping() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.looping
}

// SetLoopPoint sets the index playback resumes at when looping.
// The value is not validated here.
func (s *Sequence) SetLoopPoint(loopPoint int) *Sequence {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loopPoint = loopPoint
	return s
}

// LoopPoint returns the configured loop point, unclamped.
func (s *Sequence) LoopPoint() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loopPoint
}

// SetLoopCount sets how many times playback may loop before stopping.
func (s *Sequence) SetLoopCount(loopCount int) *Sequence {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loopCount = loopCount
	return s
}

// LoopCount returns the maximum number of loops.
func (s *Sequence) LoopCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loopCount
}

// Step is the result of resolving a playback position.
type Step struct {
	Title title.Title
	Index int
	Loop  int
}

// Resolve maps a playback position onto the sequence. When index is past the
// end and the sequence may still loop, the loop counter is incremented and the
// index becomes the clamped loop point. ok is false when playback is over.
// Resolve reads the sequence under a single lock so concurrent edits cannot
// produce an out-of-range index.
func (s *Sequence) Resolve(index, loop int) (step Step, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.titles)
	if n == 0 {
		return Step{}, false
	}
	if index >= n {
		if !s.looping || loop >= s.loopCount {
			return Step{}, false
		}
		loop++
		index = max(min(n-1, s.loopPoint), 0)
	}
	return Step{Title: s.titles[index], Index: index, Loop: loop}, true
}

// Equal reports whether two sequences hold equal titles in the same order and
// share the looping flag and loop count. The loop point is not compared.
func (s *Sequence) Equal(other *Sequence) bool {
	if other == nil {
		return false
	}
	if s == other {
		return true
	}

	// Only one sequence lock is held at a time.
	other.mu.RLock()
	titles := slices.Clone(other.titles)
	looping, loopCount := other.looping, other.loopCount
	other.mu.RUnlock()

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.looping != looping || s.loopCount != loopCount {
		return false
	}
	return slices.EqualFunc(s.titles, titles, title.Title.Equal)
}
