package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gigflow_backend/internal/handlers"
)

// RegisterRoutes mounts every handler group under /api/v1.
func RegisterRoutes(r *gin.Engine, h *handlers.AppHandlers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")

	h.Auth.RegisterRoutes(v1)
	h.User.RegisterRoutes(v1)
	h.Gig.RegisterRoutes(v1)
	h.Order.RegisterRoutes(v1)
	h.Review.RegisterRoutes(v1)
	h.Message.RegisterRoutes(v1)
}
