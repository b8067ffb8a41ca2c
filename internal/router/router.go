package router

import (
	"cineavis/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the page routes onto the engine. The handler carries
// its own dependencies so tests can register against a throwaway store.
func RegisterRoutes(r *gin.Engine, movieHandler *handlers.MovieHandler) {
	// Movie page: "/" fetches a fresh random movie, "/film" re-renders the
	// visitor's current one without refetching.
	r.GET("/", movieHandler.Show)
	r.GET("/film", movieHandler.ShowCurrent)

	// Comment panel
	r.POST("/commentaires", movieHandler.CreateComment)
	r.POST("/commentaires/:id/supprimer", movieHandler.DeleteComment)

	r.GET("/sante", handlers.Health)
}
