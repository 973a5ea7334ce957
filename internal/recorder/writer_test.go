package recorder

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RouletteSim/internal/model"
)

func TestWriterRecorder_WritesBlocks(t *testing.T) {
	var buf bytes.Buffer
	r := NewWriterRecorder(&buf)

	require.NoError(t, r.RecordProgress(&model.Progress{
		Round:       0,
		TotalRounds: 10,
		Stats:       model.PlayerStats{Name: "p-000", PlayedGames: 1},
	}))
	require.NoError(t, r.RecordProgress(&model.Progress{
		Round:       9,
		TotalRounds: 10,
		Final:       true,
		Stats:       model.PlayerStats{Name: "p-000", PlayedGames: 10},
	}))

	out := buf.String()
	assert.Contains(t, out, "[progress 10%] Player p-000 {")
	assert.Contains(t, out, "[final 100%] Player p-000 {")
	assert.Equal(t, 2, r.Count())
	assert.NoError(t, r.Close())
}

func TestWriterRecorder_ConcurrentWritesDoNotInterleave(t *testing.T) {
	var buf bytes.Buffer
	r := NewWriterRecorder(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = r.RecordProgress(&model.Progress{Player: i, Round: j, TotalRounds: 50})
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 400, r.Count())
	assert.Equal(t, 400, strings.Count(buf.String(), "Player  {"))
	assert.Equal(t, 400, strings.Count(buf.String(), "\n}\n"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriterRecorder_PropagatesWriteError(t *testing.T) {
	r := NewWriterRecorder(failingWriter{})
	err := r.RecordProgress(&model.Progress{TotalRounds: 1})
	assert.ErrorContains(t, err, "disk full")
	assert.Zero(t, r.Count())
}

func TestNoopRecorder(t *testing.T) {
	r := NewNoopRecorder()
	assert.NoError(t, r.RecordProgress(&model.Progress{}))
	assert.NoError(t, r.Close())
}
