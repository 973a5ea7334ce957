package recorder

import "RouletteSim/internal/model"

// NoopRecorder discards every observation; used when progress output is disabled.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordProgress(_ *model.Progress) error { return nil }
func (n *NoopRecorder) Close() error                           { return nil }
