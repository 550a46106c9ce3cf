package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter wires every endpoint onto a gin engine. All routes are
// CORS-enabled for any origin and answer preflight OPTIONS with an empty
// 200 before any validation runs.
func NewRouter(h *Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "서버 내부 오류가 발생했습니다.",
			"details": fmt.Sprint(err),
		})
	}))
	r.Use(corsMiddleware())

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.POST("/analyze-emotion", h.AnalyzeEmotion)
		api.POST("/generate-advice", h.GenerateAdvice)
		api.POST("/emotion-coach", h.EmotionCoach)

		api.POST("/entries", h.CreateEntry)
		api.GET("/entries", h.ListEntries)
		api.GET("/entries/:id", h.GetEntry)
		api.PUT("/entries/:id", h.UpdateEntry)
		api.DELETE("/entries/:id", h.DeleteEntry)
		api.GET("/stats", h.Stats)
	}

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-User-ID")

		if c.Request.Method == http.MethodOptions {
			c.JSON(http.StatusOK, gin.H{})
			c.Abort()
			return
		}

		c.Next()
	}
}
