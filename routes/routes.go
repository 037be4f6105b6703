package routes

import (
	"net/http"
	"time"

	"posada/config"
	"posada/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers the conversational booking endpoints.
func RegisterChatRoutes(r *gin.Engine, ch *handlers.ChatHandler) {
	api := r.Group("/api/chat")
	{
		api.GET("", ch.HandleInfo)
		api.POST("/mensaje", ch.HandleTurn)
		api.POST("/reiniciar", ch.HandleReset)
		api.GET("/usuario", ch.HandleNewUser)
	}
}

// RegisterHealthRoute registers the health endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HandleHealth)
}

// RegisterRoutes applies CORS and wires every route group.
func RegisterRoutes(r *gin.Engine, ch *handlers.ChatHandler) {
	origins := []string{"http://localhost:3000", "http://localhost:5173"}
	if config.AppConfig.FrontendURL != "" {
		origins = append(origins, config.AppConfig.FrontendURL)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"servicio": "API de reservas de hospedaje",
			"chat":     "/api/chat",
			"salud":    "/health",
		})
	})

	RegisterChatRoutes(r, ch)
	RegisterHealthRoute(r)
}
