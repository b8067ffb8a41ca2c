package store

import (
	"errors"
	"log"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"cineavis/internal/models"
)

// CommentStore owns each visitor's ordered comment list. Nothing is
// persisted: the lists live for the lifetime of the process, and the LRU
// bound keeps abandoned visitors from accumulating.
type CommentStore struct {
	mu      sync.Mutex
	buckets *lru.Cache[string, []models.Comment]
}

// NewCommentStore creates an empty store.
func NewCommentStore() *CommentStore {
	l, err := lru.New[string, []models.Comment](1000)
	if err != nil {
		log.Fatalf("Failed to create comment store: %v", err)
	}
	return &CommentStore{buckets: l}
}

// Add appends the comment to the visitor's list. The record is trusted: the
// caller validates before constructing it.
func (s *CommentStore) Add(visitorID string, c models.Comment) error {
	if visitorID == "" {
		return errors.New("comment store: empty visitor id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	list, _ := s.buckets.Get(visitorID)
	s.buckets.Add(visitorID, append(list, c))
	return nil
}

// Delete removes the first comment whose id matches. Unknown ids are
// tolerated silently.
func (s *CommentStore) Delete(visitorID string, id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, ok := s.buckets.Get(visitorID)
	if !ok {
		return
	}
	for i, c := range list {
		if c.ID == id {
			s.buckets.Add(visitorID, append(list[:i:i], list[i+1:]...))
			return
		}
	}
}

// List returns a copy of the visitor's comments in insertion order, oldest
// first.
func (s *CommentStore) List(visitorID string) []models.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, _ := s.buckets.Get(visitorID)
	out := make([]models.Comment, len(list))
	copy(out, list)
	return out
}
