package router

import (
	"time"

	"github.com/Harshi-R/MenuGenV2/internal/billing"
	"github.com/Harshi-R/MenuGenV2/internal/menu"
	"github.com/Harshi-R/MenuGenV2/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Deps struct {
	Menu    *menu.Handler
	Billing *billing.Handler
	Webhook *billing.WebhookHandler
}

func NewRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/process-menu", deps.Menu.Process)
			protected.POST("/create-checkout-session", deps.Billing.CreateCheckoutSession)
		}

		// Authenticated by Stripe's signature, not a bearer token.
		api.POST("/webhook/stripe", deps.Webhook.Handle)
	}

	return r
}
