package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"cineavis/internal/models"
)

const defaultMovieAPIURL = "https://jsonfakery.com/movies/random/1"

// GenericFetchErrorMsg is shown to the visitor when the transport itself
// fails; the underlying cause goes to the log only.
const GenericFetchErrorMsg = "Impossible de récupérer le film. Veuillez réessayer plus tard."

// MovieFetcher retrieves one random movie from the public movie API.
type MovieFetcher struct {
	apiURL string
	client *http.Client
}

// NewMovieFetcher creates a fetcher against MOVIE_API_URL, falling back to
// the public endpoint.
func NewMovieFetcher() *MovieFetcher {
	apiURL := os.Getenv("MOVIE_API_URL")
	if apiURL == "" {
		apiURL = defaultMovieAPIURL
	}
	return &MovieFetcher{
		apiURL: apiURL,
		client: http.DefaultClient,
	}
}

var movieFetcher *MovieFetcher

// GetMovieFetcher returns the fetcher singleton.
func GetMovieFetcher() *MovieFetcher {
	if movieFetcher == nil {
		movieFetcher = NewMovieFetcher()
	}
	return movieFetcher
}

// FetchRandom performs a single attempt against the random movie endpoint
// and returns the first record of the response collection. One page view,
// one request: no retry, no timeout, no cancellation. Any returned error
// message is safe to show to the visitor.
func (f *MovieFetcher) FetchRandom() (*models.Movie, error) {
	req, err := http.NewRequest(http.MethodGet, f.apiURL, nil)
	if err != nil {
		log.Printf("movie fetch: building request failed: %v", err)
		return nil, errors.New(GenericFetchErrorMsg)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		log.Printf("movie fetch: request failed: %v", err)
		return nil, errors.New(GenericFetchErrorMsg)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Non-2xx bodies are plain text as far as the banner is concerned.
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("Erreur %d : %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("movie fetch: reading response failed: %v", err)
		return nil, errors.New(GenericFetchErrorMsg)
	}

	var movies []models.Movie
	if err := json.Unmarshal(body, &movies); err != nil {
		log.Printf("movie fetch: decoding response failed: %v", err)
		return nil, errors.New(GenericFetchErrorMsg)
	}
	if len(movies) == 0 {
		log.Printf("movie fetch: endpoint returned an empty collection")
		return nil, errors.New(GenericFetchErrorMsg)
	}

	return &movies[0], nil
}
