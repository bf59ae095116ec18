package routes

import (
	"net/http"
	"time"

	"vitrina/handlers"
	"vitrina/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHoursRoutes registers the operating-hours endpoints. Everything
// under the group is scoped to the authenticated business.
func RegisterHoursRoutes(r *gin.Engine, h *handlers.BusinessHoursHandler) {
	api := r.Group("/api/businesses/hours")
	{
		api.Use(middleware.JWTAuthBusinessMiddleware())
		api.GET("", h.GetHoursHandler)
		api.PUT("", h.ReplaceHoursHandler)
		api.DELETE("/:day/intervals/:intervalID", h.DeleteIntervalHandler)

		// Interactive add/edit flow used by the mobile hours screen.
		api.POST("/editor", h.OpenEditorHandler)
		api.PATCH("/editor/:sessionID", h.UpdateEditorHandler)
		api.POST("/editor/:sessionID/save", h.SaveEditorHandler)
		api.DELETE("/editor/:sessionID", h.CancelEditorHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Vitrina"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, h *handlers.BusinessHoursHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHoursRoutes(r, h)
	RegisterHealthRoute(r)
}
