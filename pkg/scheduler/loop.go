package scheduler

import (
	"container/heap"
	"context"
	"sync"
	"time"
)

// Loop is a single-goroutine tick scheduler.
//
// Tasks due on the same tick run in the order they were scheduled. Callbacks
// run without the loop's lock held, so they may schedule or cancel tasks.
type Loop struct {
	mu sync.Mutex

	now   int64
	seq   uint64
	queue taskQueue

	// Serialises tick processing between Run and Advance.
	tickMu sync.Mutex

	tickDuration time.Duration
}

// NewLoop creates a loop that ticks every TickDuration once Run is called.
func NewLoop() *Loop {
	return NewLoopWithTick(TickDuration)
}

// NewLoopWithTick creates a loop with a custom wall-clock tick length.
// Delays are still counted in ticks.
func NewLoopWithTick(d time.Duration) *Loop {
	if d <= 0 {
		d = TickDuration
	}
	return &Loop{tickDuration: d}
}

// After implements Scheduler. The task is due at Now()+max(ticks, 1).
func (l *Loop) After(ticks int64, fn func()) Task {
	if ticks < 1 {
		ticks = 1
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	t := &loopTask{
		loop: l,
		due:  l.now + ticks,
		seq:  l.seq,
		fn:   fn,
	}
	heap.Push(&l.queue, t)
	return t
}

// Now returns the current tick.
func (l *Loop) Now() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.now
}

// Pending returns the number of tasks waiting to run.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.queue.Len()
}

// Tick advances the loop by one tick and runs every task now due.
func (l *Loop) Tick() {
	l.tickMu.Lock()
	defer l.tickMu.Unlock()

	l.mu.Lock()
	l.now++
	now := l.now
	l.mu.Unlock()

	for {
		t := l.popDue(now)
		if t == nil {
			return
		}
		t.fn()
	}
}

// Advance runs n ticks back to back.
func (l *Loop) Advance(n int64) {
	for i := int64(0); i < n; i++ {
		l.Tick()
	}
}

// Run ticks in real time until ctx is canceled. Pending tasks are dropped
// without running when Run returns.
func (l *Loop) Run(ctx context.Context) {
	ticker := time.NewTicker(l.tickDuration)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			l.drop()
			return
		case <-ticker.C:
			l.Tick()
		}
	}
}

func (l *Loop) popDue(now int64) *loopTask {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.queue.Len() == 0 || l.queue[0].due > now {
		return nil
	}
	t := heap.Pop(&l.queue).(*loopTask)
	t.done = true
	return t
}

func (l *Loop) drop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, t := range l.queue {
		t.done = true
		t.index = -1
	}
	l.queue = nil
}

// loopTask is a task queued on a Loop.
type loopTask struct {
	loop  *Loop
	due   int64
	seq   uint64
	fn    func()
	index int
	done  bool
}

// Cancel implements Task.
func (t *loopTask) Cancel() {
	l := t.loop
	l.mu.Lock()
	defer l.mu.Unlock()

	if t.done {
		return
	}
	t.done = true
	if t.index >= 0 {
		heap.Remove(&l.queue, t.index)
	}
}

// taskQueue is a min-heap ordered by due tick, then scheduling order.
type taskQueue []*loopTask

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*loopTask)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

var _ Scheduler = (*Loop)(nil)
