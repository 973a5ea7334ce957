package recorder

import "RouletteSim/internal/model"

// Recorder receives sampled progress observations from running players.
// Implementations must be safe for concurrent use.
type Recorder interface {
	RecordProgress(p *model.Progress) error
	Close() error
}
