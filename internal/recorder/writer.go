package recorder

import (
	"fmt"
	"io"
	"sync"

	log "github.com/sirupsen/logrus"

	"RouletteSim/internal/model"
	"RouletteSim/internal/report"
)

// WriterRecorder prints each observation as a player block to w.
type WriterRecorder struct {
	w  io.Writer
	mu sync.Mutex
	n  int
}

// NewWriterRecorder creates a recorder printing to w.
func NewWriterRecorder(w io.Writer) *WriterRecorder {
	return &WriterRecorder{w: w}
}

func (r *WriterRecorder) RecordProgress(p *model.Progress) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := fmt.Fprintln(r.w, report.FormatProgress(p)); err != nil {
		return fmt.Errorf("write progress: %w", err)
	}
	r.n++
	return nil
}

// Count returns how many observations were written.
func (r *WriterRecorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.n
}

func (r *WriterRecorder) Close() error {
	log.WithField("observations", r.Count()).Debug("closing progress recorder")
	return nil
}
