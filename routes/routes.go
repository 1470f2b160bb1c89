package routes

import (
	"net/http"
	"time"

	"jdservices/handlers"
	"jdservices/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterWizardRoutes registers the estimate wizard session endpoints.
func RegisterWizardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/wizard")
	{
		api.POST("/session", hb.CreateSession)
		api.GET("/session/:sessionID", hb.GetSession)
		api.PUT("/session/:sessionID", hb.AdvanceSession)
		api.POST("/session/:sessionID/back", hb.BackSession)
		api.POST("/session/:sessionID/search", hb.SearchMaterials)
		api.GET("/session/:sessionID/search", hb.SearchState)
		api.POST("/session/:sessionID/confirm", hb.ConfirmSession)
		api.DELETE("/session/:sessionID", hb.CancelSession)
	}
}

// RegisterDirectRoutes registers the standalone endpoints used by clients
// that run the wizard flow themselves.
func RegisterDirectRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/search-flooring", hb.SearchFlooring)
		api.POST("/search-zillow", hb.LookupProperty)
		api.POST("/submit-estimate", hb.SubmitEstimate)
		api.POST("/contact", hb.SubmitContact)
	}
}

// RegisterLeadRoutes registers the ops endpoints over the lead archive.
func RegisterLeadRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/leads")
	{
		api.GET("", hb.ListLeads)
		api.GET("/:leadID", hb.GetLead)
		api.DELETE("/:leadID", hb.DeleteLead)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		c.JSON(http.StatusOK, gin.H{"status": "ok", "checks": status})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Unsupported verbs on known paths answer 405 rather than 404.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	RegisterHealthRoute(r)
	RegisterWizardRoutes(r, hb)
	RegisterDirectRoutes(r, hb)
	RegisterLeadRoutes(r, hb)
}
