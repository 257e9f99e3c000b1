package sequence

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitlet-dev/titles-go/pkg/title"
)

func makeTitle(text string, stay time.Duration) title.Title {
	return title.New(text, "", title.NewTimes(0, stay, 0))
}

func texts(s *Sequence) []string {
	var out []string
	for _, t := range s.Titles() {
		out = append(out, t.Text)
	}
	return out
}

func TestNewDefaults(t *testing.T) {
	s := New()

	assert.Equal(t, 0, s.Len())
	assert.False(t, s.IsLooping())
	assert.Equal(t, 0, s.LoopPoint())
	assert.Equal(t, UnboundedLoops, s.LoopCount())
}

func TestNewLooping(t *testing.T) {
	s := NewLooping(3, 2)

	assert.True(t, s.IsLooping())
	assert.Equal(t, 3, s.LoopCount())
	assert.Equal(t, 2, s.LoopPoint())
}

func TestAppendKeepsOrderAndDuplicates(t *testing.T) {
	a := makeTitle("A", time.Second)
	s := New().Append(a).Append(makeTitle("B", time.Second)).Append(a)

	assert.Equal(t, []string{"A", "B", "A"}, texts(s))
}

func TestAppendStoresNominalTimes(t *testing.T) {
	a := makeTitle("A", time.Second)
	s := New().Append(a)

	got, err := s.Get(0)
	require.NoError(t, err)
	assert.True(t, got.Equal(a), "stored title should equal the appended one")
}

func TestInsert(t *testing.T) {
	s := New().Append(makeTitle("A", time.Second)).Append(makeTitle("C", time.Second))

	require.NoError(t, s.Insert(makeTitle("B", time.Second), 1))
	require.NoError(t, s.Insert(makeTitle("Z", time.Second), 0))
	require.NoError(t, s.Insert(makeTitle("END", time.Second), s.Len()))

	assert.Equal(t, []string{"Z", "A", "B", "C", "END"}, texts(s))
}

func TestInsertOutOfRange(t *testing.T) {
	s := New().Append(makeTitle("A", time.Second))

	for _, index := range []int{-1, 2, 100} {
		err := s.Insert(makeTitle("X", time.Second), index)
		require.Error(t, err, "index %d", index)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)

		var ie *IndexError
		require.True(t, errors.As(err, &ie))
		assert.Equal(t, "insert", ie.Op)
		assert.Equal(t, index, ie.Index)
		assert.Equal(t, 1, ie.Len)
	}
	assert.Equal(t, 1, s.Len())
}

func TestReplace(t *testing.T) {
	s := New().Append(makeTitle("A", time.Second)).Append(makeTitle("B", time.Second))

	require.NoError(t, s.Replace(makeTitle("X", 2*time.Second), 1))
	assert.Equal(t, []string{"A", "X"}, texts(s))

	err := s.Replace(makeTitle("Y", time.Second), 2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	err = s.Replace(makeTitle("Y", time.Second), -1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestGet(t *testing.T) {
	s := New().Append(makeTitle("A", time.Second))

	got, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Text)

	_, err = s.Get(1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = New().Get(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestRemoveAt(t *testing.T) {
	s := New().Append(makeTitle("A", time.Second)).Append(makeTitle("B", time.Second)).Append(makeTitle("C", time.Second))

	require.NoError(t, s.RemoveAt(1))
	assert.Equal(t, []string{"A", "C"}, texts(s))

	err := s.RemoveAt(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestRemoveFirstMatchOnly(t *testing.T) {
	a := makeTitle("A", time.Second)
	s := New().Append(a).Append(makeTitle("B", time.Second)).Append(a)

	s.Remove(a)
	assert.Equal(t, []string{"B", "A"}, texts(s))
}

func TestRemoveNoMatchIsNoop(t *testing.T) {
	s := New().Append(makeTitle("A", time.Second))

	s.Remove(makeTitle("A", 2*time.Second))
	assert.Equal(t, 1, s.Len())
}

func TestClearKeepsLoopSettings(t *testing.T) {
	s := NewLooping(5, 3).Append(makeTitle("A", time.Second))

	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.True(t, s.IsLooping())
	assert.Equal(t, 5, s.LoopCount())
	assert.Equal(t, 3, s.LoopPoint())
}

func TestLoopPointNotValidatedOnSet(t *testing.T) {
	s := New().SetLoopPoint(42)
	assert.Equal(t, 42, s.LoopPoint())
}

func TestResolve(t *testing.T) {
	s := New().
		Append(makeTitle("A", time.Second)).
		Append(makeTitle("B", time.Second)).
		Append(makeTitle("C", time.Second))

	tests := []struct {
		name      string
		looping   bool
		loopCount int
		loopPoint int
		index     int
		loop      int
		wantOK    bool
		wantIndex int
		wantLoop  int
	}{
		{"in range", false, UnboundedLoops, 0, 1, 0, true, 1, 0},
		{"end without looping", false, UnboundedLoops, 0, 3, 0, false, 0, 0},
		{"loop back to point", true, UnboundedLoops, 1, 3, 0, true, 1, 1},
		{"loop point clamped", true, UnboundedLoops, 10, 3, 0, true, 2, 1},
		{"negative loop point floored", true, UnboundedLoops, -4, 3, 0, true, 0, 1},
		{"loop budget spent", true, 2, 0, 3, 2, false, 0, 0},
		{"last allowed loop", true, 2, 0, 3, 1, true, 0, 2},
		{"zero loop count", true, 0, 0, 3, 0, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.SetLooping(tt.looping).SetLoopCount(tt.loopCount).SetLoopPoint(tt.loopPoint)

			step, ok := s.Resolve(tt.index, tt.loop)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantIndex, step.Index)
			assert.Equal(t, tt.wantLoop, step.Loop)
			assert.Equal(t, s.Titles()[tt.wantIndex], step.Title)
		})
	}
}

func TestResolveEmpty(t *testing.T) {
	_, ok := NewLooping(UnboundedLoops, 0).Resolve(0, 0)
	assert.False(t, ok)
}

func TestEqual(t *testing.T) {
	build := func() *Sequence {
		return New().Append(makeTitle("A", time.Second)).Append(makeTitle("B", 2*time.Second))
	}

	a, b := build(), build()
	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(nil))

	// Loop point is not part of equality.
	b.SetLoopPoint(7)
	assert.True(t, a.Equal(b), "sequences differing only in loop point should be equal")

	b.SetLooping(true)
	assert.False(t, a.Equal(b), "looping flag should be compared")
	b.SetLooping(false)

	b.SetLoopCount(3)
	assert.False(t, a.Equal(b), "loop count should be compared")
	b.SetLoopCount(UnboundedLoops)

	b.Append(makeTitle("C", time.Second))
	assert.False(t, a.Equal(b), "length should be compared")

	c := New().Append(makeTitle("B", 2*time.Second)).Append(makeTitle("A", time.Second))
	assert.False(t, a.Equal(c), "order should be compared")
}

func TestEqualHoldsOneLockAtATime(t *testing.T) {
	a := New().Append(makeTitle("A", time.Second))
	b := New().Append(makeTitle("A", time.Second))

	// Equal blocks on b while a writer holds it.
	b.mu.Lock()
	result := make(chan bool, 1)
	go func() { result <- a.Equal(b) }()
	time.Sleep(20 * time.Millisecond)

	// a must stay writable while Equal waits for b.
	appended := make(chan struct{})
	go func() {
		a.Append(makeTitle("B", time.Second))
		close(appended)
	}()
	select {
	case <-appended:
	case <-time.After(time.Second):
		b.mu.Unlock()
		t.Fatal("Append on a blocked while Equal waited for b")
	}

	b.mu.Unlock()
	select {
	case <-result:
	case <-time.After(time.Second):
		t.Fatal("Equal did not return")
	}
}

func TestEqualBothDirectionsConcurrently(t *testing.T) {
	a := New().Append(makeTitle("A", time.Second))
	b := New().Append(makeTitle("A", time.Second))

	done := make(chan struct{})
	var wg sync.WaitGroup
	for _, pair := range [][2]*Sequence{{a, b}, {b, a}} {
		wg.Add(2)
		go func(x, y *Sequence) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				x.Equal(y)
			}
		}(pair[0], pair[1])
		go func(x *Sequence) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				x.SetLoopCount(i)
			}
		}(pair[0])
	}
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("concurrent Equal calls deadlocked")
	}
}

func TestConcurrentEdits(t *testing.T) {
	s := NewLooping(UnboundedLoops, 0)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Append(makeTitle("A", time.Second))
				s.Resolve(j, 0)
				_ = s.RemoveAt(0)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, s.Len())
}
