package clock

import (
	"sort"
	"sync"
	"time"
)

// Manual is a virtual clock. Scheduled tasks only fire from Advance, on the
// caller's goroutine, in due-time order.
type Manual struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	seq      int
	every    time.Duration
	next     time.Duration
	fn       func()
	canceled bool
	owner    *Manual
}

// NewManual returns a Manual clock positioned at zero.
func NewManual() *Manual {
	return &Manual{}
}

// Every registers fn to run every d of virtual time.
func (m *Manual) Every(d time.Duration, fn func()) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t := &manualTask{
		seq:   m.seq,
		every: d,
		next:  m.now + d,
		fn:    fn,
		owner: m,
	}
	m.tasks = append(m.tasks, t)
	return t
}

func (t *manualTask) Cancel() {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	t.canceled = true
}

// Active returns the number of tasks that have not been cancelled.
func (m *Manual) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, t := range m.tasks {
		if !t.canceled {
			n++
		}
	}
	return n
}

// Advance moves virtual time forward by d, firing every due invocation.
// Tasks cancelled by an earlier callback in the same Advance do not fire.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		m.mu.Lock()
		t := m.nextDue(target)
		if t == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		m.now = t.next
		t.next += t.every
		fn := t.fn
		m.mu.Unlock()

		fn()
	}
}

// nextDue returns the earliest live task due at or before target. Caller
// holds m.mu.
func (m *Manual) nextDue(target time.Duration) *manualTask {
	live := m.tasks[:0]
	for _, t := range m.tasks {
		if !t.canceled {
			live = append(live, t)
		}
	}
	m.tasks = live

	sort.SliceStable(m.tasks, func(i, j int) bool {
		if m.tasks[i].next == m.tasks[j].next {
			return m.tasks[i].seq < m.tasks[j].seq
		}
		return m.tasks[i].next < m.tasks[j].next
	})

	if len(m.tasks) == 0 || m.tasks[0].next > target {
		return nil
	}
	return m.tasks[0]
}
