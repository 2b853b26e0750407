package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"story-server/internal/service"
)

// Handler wires the game and navigation services into the HTTP layer.
type Handler struct {
	games  service.GameService
	story  service.StoryService
	logger *zap.Logger
}

// NewHandler creates the HTTP handler.
func NewHandler(games service.GameService, story service.StoryService, logger *zap.Logger) *Handler {
	return &Handler{
		games:  games,
		story:  story,
		logger: logger.Named("Handler"),
	}
}

// RegisterRoutes registers all API routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		games := api.Group("/games")
		{
			games.POST("", h.createGame)
			games.GET("", h.listGameSaves)
			games.GET("/:saveId", h.getGameSave)
			games.PATCH("/:saveId", h.renameGameSave)
			games.DELETE("/:saveId", h.deleteGameSave)
			games.POST("/:saveId/health", h.modifyHealth)

			games.GET("/:saveId/node", h.getCurrentNode)
			games.POST("/:saveId/navigate", h.navigateToNode)
			games.POST("/:saveId/back", h.goBack)
			games.POST("/:saveId/forward", h.goForward)
			games.POST("/:saveId/choice", h.makeChoice)
			games.GET("/:saveId/choices", h.getAvailableChoices)
			games.POST("/:saveId/dialogue/next", h.getNextDialogue)
			games.POST("/:saveId/dialogue/skip", h.skipToLastDialogue)
			games.GET("/:saveId/dialogue/done", h.isDialogueComplete)
			games.GET("/:saveId/visited", h.getVisitedNodes)
			games.GET("/:saveId/visited/:nodeId", h.hasVisitedNode)
		}
	}
}
