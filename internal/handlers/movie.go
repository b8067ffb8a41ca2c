package handlers

import (
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cineavis/internal/models"
	"cineavis/internal/services"
	"cineavis/internal/store"
	"cineavis/internal/utils"
)

// Cached movies outlive the comment form round-trips of a normal visit but
// not an abandoned tab.
const activeMovieTTL = 30 * time.Minute

type MovieHandler struct {
	fetcher  *services.MovieFetcher
	comments *store.CommentStore
}

func NewMovieHandler(fetcher *services.MovieFetcher, comments *store.CommentStore) *MovieHandler {
	return &MovieHandler{
		fetcher:  fetcher,
		comments: comments,
	}
}

// Show fetches a fresh random movie and renders the page. One page view is
// one fetch attempt; any failure renders the blocking error banner instead
// of the card.
func (h *MovieHandler) Show(c *gin.Context) {
	movie, err := h.fetcher.FetchRandom()
	if err != nil {
		RenderError(c, http.StatusBadGateway, err.Error())
		return
	}

	vid := visitorID(c)
	utils.GetCache().Set(activeMovieKey(vid), movie, activeMovieTTL)

	h.renderPage(c, http.StatusOK, movie, nil)
}

// ShowCurrent renders the visitor's active movie without refetching. Form
// posts land back here so a submission cycle never triggers a second fetch.
func (h *MovieHandler) ShowCurrent(c *gin.Context) {
	movie := h.activeMovie(visitorID(c))
	if movie == nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	h.renderPage(c, http.StatusOK, movie, nil)
}

func activeMovieKey(visitorID string) string {
	return "movie:active:" + visitorID
}

func (h *MovieHandler) activeMovie(visitorID string) *models.Movie {
	if cached := utils.GetCache().Get(activeMovieKey(visitorID)); cached != nil {
		if movie, ok := cached.(*models.Movie); ok {
			return movie
		}
	}
	return nil
}

// viewComment pairs a comment record with its rendered text for the list.
type viewComment struct {
	models.Comment
	TextHTML template.HTML
}

// renderPage renders the movie card plus the comment panel. extra overrides
// the defaults, which describe a pristine form over the visitor's current
// list.
func (h *MovieHandler) renderPage(c *gin.Context, code int, movie *models.Movie, extra gin.H) {
	comments := h.comments.List(visitorID(c))

	viewComments := make([]viewComment, len(comments))
	for i, com := range comments {
		viewComments[i] = viewComment{
			Comment:  com,
			TextHTML: utils.RenderMarkdown(com.Text),
		}
	}

	data := gin.H{
		"Title":    movie.OriginalTitle,
		"Movie":    movie,
		"Comments": viewComments,
		"Form":     gin.H{"Comment": "", "Note": "", "Accept": false},
		"Errors":   services.FieldErrors{},
	}
	for k, v := range extra {
		data[k] = v
	}

	Render(c, code, "movie/show.html", data)
}
