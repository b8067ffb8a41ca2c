package models

import (
	"time"
)

// PosterBaseURL is the image host prefix; the poster path from the API is
// appended as-is.
const PosterBaseURL = "https://image.tmdb.org/t/p/original"

// Movie is the record returned by the random movie endpoint. Read-only:
// fetched once per page view, never stored.
type Movie struct {
	PosterPath    string  `json:"poster_path"`
	OriginalTitle string  `json:"original_title"`
	ReleaseDate   string  `json:"release_date"`
	Overview      string  `json:"overview"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int     `json:"vote_count"`
}

func (m *Movie) PosterURL() string {
	return PosterBaseURL + m.PosterPath
}

// DisplayReleaseDate formats the raw API date for display. Falls back to the
// raw string when the API sends something unparseable.
func (m *Movie) DisplayReleaseDate() string {
	t, err := time.Parse("2006-01-02", m.ReleaseDate)
	if err != nil {
		return m.ReleaseDate
	}
	return t.Format("02/01/2006")
}
