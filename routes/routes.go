package routes

import (
	"net/http"
	"time"

	"nestcare/handlers"
	"nestcare/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Nestcare"})
	})
}

// RegisterCaregiverRoutes sets up the featured-caregiver endpoints.
func RegisterCaregiverRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	caregiverGroup := r.Group("/api/caregivers")
	{
		caregiverGroup.GET("/featured", hb.Caregiver.ListFeatured)
		caregiverGroup.GET("/:id", hb.Caregiver.GetCaregiver)

		protected := caregiverGroup.Group("")
		protected.Use(middleware.AuthMiddleware())
		protected.POST("/featured/refresh", hb.Caregiver.RefreshFeatured)
		protected.PUT("/:id", hb.Caregiver.UpsertCaregiver)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterCaregiverRoutes(r, hb)
}
