package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFeedbackStore(t *testing.T) *FeedbackStore {
	t.Helper()
	s := NewFeedbackStore(filepath.Join(t.TempDir(), "ratings.json"), nil)
	s.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestFeedbackSubmitAndList(t *testing.T) {
	s := newTestFeedbackStore(t)

	fb, err := s.Submit(5, "  handy on the strip  ")
	require.NoError(t, err)
	_, err = uuid.Parse(fb.ID)
	assert.NoError(t, err)
	assert.Equal(t, "handy on the strip", fb.Comment)
	assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), fb.SubmittedAt)

	_, err = s.Submit(3, "")
	require.NoError(t, err)

	all := s.List()
	require.Len(t, all, 2)
	assert.Equal(t, fb, all[0])
	assert.Equal(t, 3, all[1].Rating)

	avg, n := s.AverageRating()
	assert.Equal(t, 2, n)
	assert.InDelta(t, 4.0, avg, 1e-9)
}

func TestFeedbackInvalidRating(t *testing.T) {
	s := newTestFeedbackStore(t)
	for _, r := range []int{0, 6, -1} {
		_, err := s.Submit(r, "x")
		assert.ErrorIs(t, err, ErrInvalidRating)
	}
	assert.Empty(t, s.List())
}

func TestFeedbackCorruptFile(t *testing.T) {
	s := newTestFeedbackStore(t)
	require.NoError(t, os.WriteFile(s.path, []byte("{{{"), 0o644))
	assert.Empty(t, s.List())

	avg, n := s.AverageRating()
	assert.Zero(t, avg)
	assert.Zero(t, n)

	_, err := s.Submit(4, "")
	require.NoError(t, err)
	assert.Len(t, s.List(), 1)
}
