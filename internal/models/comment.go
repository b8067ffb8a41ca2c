package models

import (
	"time"
)

// Comment is one visitor-submitted rating+text pair. Immutable once created;
// it only ever leaves the store through a delete by id.
type Comment struct {
	ID     int64
	Text   string
	Rating int
	Date   string
}

// NewComment builds a comment record from an already-validated submission.
// The id is derived from the creation timestamp, which is unique enough for
// one visitor's session.
func NewComment(text string, rating int) Comment {
	now := time.Now()
	return Comment{
		ID:     now.UnixNano(),
		Text:   text,
		Rating: rating,
		Date:   now.Format("02/01/2006"),
	}
}
