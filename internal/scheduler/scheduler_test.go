package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounter struct {
	done  atomic.Int64
	total int64
	reads atomic.Int64
}

func (f *fakeCounter) Completed() int64 {
	f.reads.Add(1)
	return f.done.Load()
}

func (f *fakeCounter) Total() int64 { return f.total }

func TestMeasure(t *testing.T) {
	r := Measure(250, 1000, 5*time.Second)
	assert.Equal(t, 25.0, r.Percent)
	assert.Equal(t, 50.0, r.PerSec)
	assert.Equal(t, 15*time.Second, r.ETA)

	r = Measure(0, 0, 0)
	assert.Zero(t, r.Percent)
	assert.Zero(t, r.PerSec)
	assert.Zero(t, r.ETA)

	r = Measure(1000, 1000, time.Second)
	assert.Equal(t, 100.0, r.Percent)
	assert.Zero(t, r.ETA)
}

func TestNewHeartbeat_InvalidSpec(t *testing.T) {
	_, err := NewHeartbeat("every now and then", &fakeCounter{})
	assert.Error(t, err)
}

func TestNewHeartbeat_AcceptsDescriptorsAndSixFields(t *testing.T) {
	_, err := NewHeartbeat("@every 2s", &fakeCounter{})
	assert.NoError(t, err)
	_, err = NewHeartbeat("*/5 * * * * *", &fakeCounter{})
	assert.NoError(t, err)
}

func TestHeartbeat_Ticks(t *testing.T) {
	c := &fakeCounter{total: 100}
	c.done.Store(40)

	h, err := NewHeartbeat("@every 1s", c)
	require.NoError(t, err)
	h.Start()
	defer h.Stop()

	assert.Eventually(t, func() bool { return c.reads.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
}
