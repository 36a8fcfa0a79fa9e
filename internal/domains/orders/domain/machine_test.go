package domain

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/delish-express/internal/platform/scheduler"
)

type recorder struct {
	mu   sync.Mutex
	seen []Progress
}

func (r *recorder) observe(p Progress) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, p)
}

func (r *recorder) statuses() []Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Status, 0, len(r.seen))
	for _, p := range r.seen {
		out = append(out, p.Status)
	}
	return out
}

func TestMachine_StartsAtOrderPlaced(t *testing.T) {
	m := NewMachine(scheduler.NewManual(time.Unix(0, 0)), 5*time.Second)
	p := m.Progress()
	assert.Equal(t, StatusOrderPlaced, p.Status)
	assert.Equal(t, 0, p.Index)
	assert.Equal(t, Stages(), p.Stages)
	assert.Zero(t, p.Fraction)
}

func TestMachine_ReachesDeliveredAfterThreeDelays(t *testing.T) {
	clock := scheduler.NewManual(time.Unix(0, 0))
	rec := &recorder{}
	m := NewMachine(clock, 5*time.Second, rec.observe)
	m.Start()

	clock.Advance(4 * time.Second)
	assert.Equal(t, StatusOrderPlaced, m.Progress().Status)

	clock.Advance(time.Second)
	assert.Equal(t, StatusPreparing, m.Progress().Status)

	clock.Advance(10 * time.Second)
	require.Equal(t, StatusDelivered, m.Progress().Status)
	assert.Equal(t, 1.0, m.Progress().Fraction)
	assert.Equal(t, 0, clock.Pending())

	clock.Advance(time.Hour)
	assert.Equal(t, []Status{StatusPreparing, StatusOutForDelivery, StatusDelivered}, rec.statuses())
}

func TestMachine_ObserversSeeFraction(t *testing.T) {
	clock := scheduler.NewManual(time.Unix(0, 0))
	rec := &recorder{}
	m := NewMachine(clock, time.Second, rec.observe)
	m.Start()
	clock.Advance(3 * time.Second)

	require.Len(t, rec.seen, 3)
	assert.InDelta(t, 1.0/3, rec.seen[0].Fraction, 1e-9)
	assert.InDelta(t, 2.0/3, rec.seen[1].Fraction, 1e-9)
	assert.Equal(t, 2, rec.seen[1].Index)
}

func TestMachine_StopCancelsPendingTransition(t *testing.T) {
	clock := scheduler.NewManual(time.Unix(0, 0))
	rec := &recorder{}
	m := NewMachine(clock, 5*time.Second, rec.observe)
	m.Start()
	clock.Advance(5 * time.Second)
	m.Stop()

	assert.Equal(t, 0, clock.Pending())
	clock.Advance(time.Minute)
	assert.Equal(t, StatusPreparing, m.Progress().Status)
	assert.Len(t, rec.statuses(), 1)

	m.Start()
	assert.Equal(t, 0, clock.Pending())
}

func TestMachine_StartIsIdempotent(t *testing.T) {
	clock := scheduler.NewManual(time.Unix(0, 0))
	m := NewMachine(clock, time.Second)
	m.Start()
	m.Start()
	assert.Equal(t, 1, clock.Pending())
}

func TestMachine_DoesNotAdvanceUntilStarted(t *testing.T) {
	clock := scheduler.NewManual(time.Unix(0, 0))
	m := NewMachine(clock, time.Second)
	clock.Advance(time.Minute)
	assert.Equal(t, StatusOrderPlaced, m.Progress().Status)
}
