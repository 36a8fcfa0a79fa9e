package domain

import (
	"sync"
	"time"

	"github.com/Apurer/delish-express/internal/platform/scheduler"
)

// DefaultStageDelay is how long each stage lasts before the next one.
const DefaultStageDelay = 5 * time.Second

// Observer is called after every transition, outside the machine's lock.
type Observer func(Progress)

// Machine advances an order through Stages, one stage per delay, until it
// reaches the terminal stage. Stop cancels the pending transition.
type Machine struct {
	mu        sync.Mutex
	sched     scheduler.Scheduler
	delay     time.Duration
	status    Status
	timer     scheduler.Timer
	started   bool
	stopped   bool
	observers []Observer
}

func NewMachine(sched scheduler.Scheduler, delay time.Duration, observers ...Observer) *Machine {
	if sched == nil {
		sched = scheduler.Real{}
	}
	if delay <= 0 {
		delay = DefaultStageDelay
	}
	return &Machine{
		sched:     sched,
		delay:     delay,
		status:    StatusOrderPlaced,
		observers: observers,
	}
}

// Start arms the first transition. Calling it again is a no-op.
func (m *Machine) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.started || m.stopped {
		return
	}
	m.started = true
	m.scheduleLocked()
}

// Stop cancels any pending transition. Nothing fires afterwards.
func (m *Machine) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = true
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

func (m *Machine) Progress() Progress {
	m.mu.Lock()
	defer m.mu.Unlock()
	return ProgressOf(m.status)
}

// Stopped reports whether Stop was called.
func (m *Machine) Stopped() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopped
}

func (m *Machine) advance() {
	m.mu.Lock()
	m.timer = nil
	if m.stopped {
		m.mu.Unlock()
		return
	}
	next, ok := m.status.Next()
	if !ok {
		m.mu.Unlock()
		return
	}
	m.status = next
	m.scheduleLocked()
	progress := ProgressOf(next)
	observers := m.observers
	m.mu.Unlock()

	for _, observe := range observers {
		observe(progress)
	}
}

func (m *Machine) scheduleLocked() {
	if m.status.Terminal() {
		return
	}
	m.timer = m.sched.AfterFunc(m.delay, m.advance)
}
