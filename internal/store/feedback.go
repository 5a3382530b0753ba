package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/eytandecker/at502-perf/internal/logger"
)

// Feedback is one submitted rating with an optional comment.
type Feedback struct {
	ID          string    `json:"id"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// FeedbackStore appends feedback entries to a JSON array file.
type FeedbackStore struct {
	mu   sync.Mutex
	path string
	log  logger.Logger
	now  func() time.Time
}

// NewFeedbackStore creates a FeedbackStore backed by the JSON file at path.
func NewFeedbackStore(path string, log logger.Logger) *FeedbackStore {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &FeedbackStore{path: path, log: log, now: time.Now}
}

// Submit validates and records a rating and comment.
func (s *FeedbackStore) Submit(rating int, comment string) (Feedback, error) {
	if rating < 1 || rating > 5 {
		return Feedback{}, ErrInvalidRating
	}
	fb := Feedback{
		ID:          uuid.NewString(),
		Rating:      rating,
		Comment:     strings.TrimSpace(comment),
		SubmittedAt: s.now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	all := s.loadLocked()
	all = append(all, fb)
	if err := saveJSON(s.path, all); err != nil {
		return Feedback{}, err
	}
	s.log.Infof("feedback %s recorded (rating %d)", fb.ID, fb.Rating)
	return fb, nil
}

// List returns all recorded feedback, oldest first.
func (s *FeedbackStore) List() []Feedback {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

// AverageRating returns the mean rating and the number of entries.
func (s *FeedbackStore) AverageRating() (float64, int) {
	all := s.List()
	if len(all) == 0 {
		return 0, 0
	}
	sum := 0
	for _, fb := range all {
		sum += fb.Rating
	}
	return float64(sum) / float64(len(all)), len(all)
}

func (s *FeedbackStore) loadLocked() []Feedback {
	var all []Feedback
	if !loadJSON(s.path, &all, s.log) {
		return nil
	}
	return all
}
