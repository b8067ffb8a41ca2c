package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cineavis/internal/models"
	"cineavis/internal/services"
	"cineavis/internal/utils"
)

// CreateComment validates the submission and appends it to the visitor's
// list. Invalid input re-renders the page with per-field messages and the
// submitted values kept; success redirects back to the current movie with a
// pristine form.
func (h *MovieHandler) CreateComment(c *gin.Context) {
	vid := visitorID(c)
	movie := h.activeMovie(vid)
	if movie == nil {
		// Expired or brand-new session: start over with a fresh movie.
		c.Redirect(http.StatusFound, "/")
		return
	}

	comment := c.PostForm("comment")
	note := c.PostForm("note")
	accept := c.PostForm("accept_conditions")

	sub, fieldErrs := services.ValidateComment(comment, note, accept)
	if fieldErrs != nil {
		h.renderPage(c, http.StatusBadRequest, movie, gin.H{
			"Errors": fieldErrs,
			"Form":   gin.H{"Comment": comment, "Note": note, "Accept": accept != ""},
		})
		return
	}

	record := models.NewComment(sub.Text, sub.Rating)
	if err := h.comments.Add(vid, record); err != nil {
		log.Printf("comment store: add failed: %v", err)
		h.renderPage(c, http.StatusInternalServerError, movie, gin.H{
			"PageError": "Le commentaire n'a pas pu être enregistré. Veuillez réessayer.",
			"Form":      gin.H{"Comment": comment, "Note": note, "Accept": accept != ""},
		})
		return
	}

	c.Redirect(http.StatusFound, "/film")
}

// DeleteComment removes one comment by id. A stale or unknown id is a
// silent no-op, matching the store contract.
func (h *MovieHandler) DeleteComment(c *gin.Context) {
	vid := visitorID(c)
	h.comments.Delete(vid, utils.StringToInt64(c.Param("id")))

	if h.activeMovie(vid) == nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.Redirect(http.StatusFound, "/film")
}
