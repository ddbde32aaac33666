package api

import (
	"github.com/gin-gonic/gin"

	"github.com/mindclash/debate-arena/api/handlers"
)

// SetupRoutes initializes all API endpoints
func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.POST("/debates", handlers.CreateDebate)
		api.GET("/debates", handlers.ListDebates)
		api.GET("/debates/:debateID", handlers.GetDebate)
		api.POST("/debates/:debateID/start", handlers.StartDebate)
		api.POST("/debates/:debateID/next-round", handlers.NextRound)
		api.POST("/debates/:debateID/complete", handlers.CompleteDebate)
		api.POST("/debates/:debateID/judge", handlers.JudgeDebate)
		api.POST("/debates/:debateID/vote", handlers.VoteOnDebate)
		api.GET("/debates/:debateID/rounds/:number", handlers.GetRound)
		api.GET("/debates/:debateID/analytics", handlers.GetAnalytics)
		api.GET("/personalities", handlers.GetPersonalities)
		api.GET("/leaderboard", handlers.GetLeaderboard)
		api.GET("/stats", handlers.GetStats)
	}
	router.GET("/ws", handlers.HandleWebSocket)
}
