package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// createGame handles POST /api/games.
func (h *Handler) createGame(c *gin.Context) {
	var req CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	save, err := h.games.CreateGame(c.Request.Context(), req.UserID, req.SaveName, req.CharacterName)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	gamesCreatedTotal.Inc()
	c.JSON(http.StatusCreated, save)
}

// listGameSaves handles GET /api/games?userId=...
func (h *Handler) listGameSaves(c *gin.Context) {
	userID, err := uuid.Parse(c.Query("userId"))
	if err != nil {
		respondValidationError(c, err)
		return
	}

	summaries, err := h.games.GetUserGameSaves(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// getGameSave handles GET /api/games/:saveId.
func (h *Handler) getGameSave(c *gin.Context) {
	saveID, ok := saveIDParam(c)
	if !ok {
		return
	}

	save, err := h.games.GetGameSave(c.Request.Context(), saveID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, save)
}

// renameGameSave handles PATCH /api/games/:saveId.
func (h *Handler) renameGameSave(c *gin.Context) {
	saveID, ok := saveIDParam(c)
	if !ok {
		return
	}
	var req RenameGameSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	save, err := h.games.RenameGameSave(c.Request.Context(), saveID, req.Name)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, save)
}

// deleteGameSave handles DELETE /api/games/:saveId.
func (h *Handler) deleteGameSave(c *gin.Context) {
	saveID, ok := saveIDParam(c)
	if !ok {
		return
	}

	if err := h.games.DeleteGameSave(c.Request.Context(), saveID); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// modifyHealth handles POST /api/games/:saveId/health.
func (h *Handler) modifyHealth(c *gin.Context) {
	saveID, ok := saveIDParam(c)
	if !ok {
		return
	}
	var req ModifyHealthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	health, err := h.games.ModifyHealth(c.Request.Context(), saveID, req.Delta)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.logger.Debug("Health modified via API", zap.String("saveID", saveID.String()), zap.Int("newHealth", health))
	c.JSON(http.StatusOK, HealthResponse{Health: health})
}
