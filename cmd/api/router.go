package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	emailDelivery "transcript-mailer/internal/email/delivery"
)

func SetupRoutes(r *gin.Engine, summaryHandler *emailDelivery.SummaryHandler, emailHandler *emailDelivery.EmailHandler, settingsHandler *SettingsHandler) {
	// The form posts under /api; the bare paths serve direct API clients.
	for _, g := range []*gin.RouterGroup{&r.RouterGroup, r.Group("/api")} {
		g.POST("/summarize", summaryHandler.Summarize)
		g.POST("/send-email", emailHandler.SendEmail)
	}

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		settings := api.Group("/settings")
		{
			settings.GET("/provider", settingsHandler.GetProviderSettings)
		}
	}
}
