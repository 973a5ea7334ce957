package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// Counter reports how far a run has progressed.
type Counter interface {
	Completed() int64
	Total() int64
}

// Rate is a throughput estimate at one point in time.
type Rate struct {
	Done    int64
	Total   int64
	Percent float64
	PerSec  float64
	ETA     time.Duration
}

// Measure derives a Rate from a round count and the time spent so far.
func Measure(done, total int64, elapsed time.Duration) Rate {
	r := Rate{Done: done, Total: total}
	if total > 0 {
		r.Percent = 100 * float64(done) / float64(total)
	}
	if secs := elapsed.Seconds(); secs > 0 {
		r.PerSec = float64(done) / secs
	}
	if r.PerSec > 0 && total > done {
		r.ETA = time.Duration(float64(total-done) / r.PerSec * float64(time.Second))
	}
	return r
}

// Heartbeat periodically logs progress of a long run.
type Heartbeat struct {
	Cron    *cron.Cron
	Counter Counter
	start   time.Time
}

// NewHeartbeat registers a progress log on spec (six-field cron or an @every descriptor).
func NewHeartbeat(spec string, c Counter) (*Heartbeat, error) {
	h := &Heartbeat{
		Cron:    cron.New(cron.WithSeconds()),
		Counter: c,
	}
	if _, err := h.Cron.AddFunc(spec, h.tick); err != nil {
		return nil, fmt.Errorf("register heartbeat %q: %w", spec, err)
	}
	return h, nil
}

// Start starts the cron scheduler.
func (h *Heartbeat) Start() {
	h.start = time.Now()
	h.Cron.Start()
	log.Debug("heartbeat started")
}

// Stop stops the scheduler and waits for a running tick to return.
func (h *Heartbeat) Stop() {
	<-h.Cron.Stop().Done()
	log.Debug("heartbeat stopped")
}

func (h *Heartbeat) tick() {
	r := Measure(h.Counter.Completed(), h.Counter.Total(), time.Since(h.start))
	log.WithFields(log.Fields{
		"done":     r.Done,
		"total":    r.Total,
		"rounds_s": fmt.Sprintf("%.0f", r.PerSec),
		"eta":      r.ETA.Round(time.Second),
	}).Infof("progress %.2f%%", r.Percent)
}
