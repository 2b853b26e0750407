package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"story-server/internal/models"
)

// getCurrentNode handles GET /api/games/:saveId/node.
func (h *Handler) getCurrentNode(c *gin.Context) {
	saveID, ok := saveIDParam(c)
	if !ok {
		return
	}

	view, err := h.story.GetCurrentNode(c.Request.Context(), saveID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// navigateToNode handles POST /api/games/:saveId/navigate.
func (h *Handler) navigateToNode(c *gin.Context) {
	saveID, ok := saveIDParam(c)
	if !ok {
		return
	}
	var req NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	view, err := h.story.NavigateToNode(c.Request.Context(), saveID, req.TargetNodeID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	navigationsTotal.WithLabelValues("navigate").Inc()
	c.JSON(http.StatusOK, view)
}

// goBack handles POST /api/games/:saveId/back.
func (h *Handler) goBack(c *gin.Context) {
	saveID, ok := saveIDParam(c)
	if !ok {
		return
	}

	view, err := h.story.GoBack(c.Request.Context(), saveID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	if view == nil {
		respondNoResult(c, models.ErrCodeNoHistory, "Nothing to go back from")
		return
	}

	navigationsTotal.WithLabelValues("back").Inc()
	c.JSON(http.StatusOK, view)
}

// goForward handles POST /api/games/:saveId/forward.
func (h *Handler) goForward(c *gin.Context) {
	saveID, ok := saveIDParam(c)
	if !ok {
		return
	}

	view, err := h.story.GoForward(c.Request.Context(), saveID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	if view == nil {
		respondNoResult(c, models.ErrCodeNoChoices, "Current node has no outgoing choices")
		return
	}

	navigationsTotal.WithLabelValues("forward").Inc()
	c.JSON(http.StatusOK, view)
}

// makeChoice handles POST /api/games/:saveId/choice.
func (h *Handler) makeChoice(c *gin.Context) {
	saveID, ok := saveIDParam(c)
	if !ok {
		return
	}
	var req MakeChoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	view, err := h.story.MakeChoice(c.Request.Context(), saveID, req.ChoiceID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	choicesMadeTotal.Inc()
	navigationsTotal.WithLabelValues("choice").Inc()
	c.JSON(http.StatusOK, view)
}

// getAvailableChoices handles GET /api/games/:saveId/choices.
func (h *Handler) getAvailableChoices(c *gin.Context) {
	saveID, ok := saveIDParam(c)
	if !ok {
		return
	}

	choices, err := h.story.GetAvailableChoices(c.Request.Context(), saveID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, choices)
}

// getNextDialogue handles POST /api/games/:saveId/dialogue/next.
func (h *Handler) getNextDialogue(c *gin.Context) {
	saveID, ok := saveIDParam(c)
	if !ok {
		return
	}

	dialogue, err := h.story.GetNextDialogue(c.Request.Context(), saveID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	if dialogue == nil {
		respondNoResult(c, models.ErrCodeDialogueExhausted, "No more dialogue in the current node")
		return
	}
	c.JSON(http.StatusOK, dialogue)
}

// skipToLastDialogue handles POST /api/games/:saveId/dialogue/skip.
func (h *Handler) skipToLastDialogue(c *gin.Context) {
	saveID, ok := saveIDParam(c)
	if !ok {
		return
	}

	dialogue, err := h.story.SkipToLastDialogue(c.Request.Context(), saveID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	if dialogue == nil {
		respondNoResult(c, models.ErrCodeDialogueExhausted, "Current node has no dialogue")
		return
	}
	c.JSON(http.StatusOK, dialogue)
}

// isDialogueComplete handles GET /api/games/:saveId/dialogue/done.
func (h *Handler) isDialogueComplete(c *gin.Context) {
	saveID, ok := saveIDParam(c)
	if !ok {
		return
	}

	complete, err := h.story.IsDialogueComplete(c.Request.Context(), saveID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, DialogueCompleteResponse{Complete: complete})
}

// getVisitedNodes handles GET /api/games/:saveId/visited.
func (h *Handler) getVisitedNodes(c *gin.Context) {
	saveID, ok := saveIDParam(c)
	if !ok {
		return
	}

	visited, err := h.story.GetVisitedNodes(c.Request.Context(), saveID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, visited)
}

// hasVisitedNode handles GET /api/games/:saveId/visited/:nodeId.
func (h *Handler) hasVisitedNode(c *gin.Context) {
	saveID, ok := saveIDParam(c)
	if !ok {
		return
	}
	nodeID, err := strconv.ParseInt(c.Param("nodeId"), 10, 64)
	if err != nil {
		respondValidationError(c, err)
		return
	}

	visited, err := h.story.HasVisitedNode(c.Request.Context(), saveID, nodeID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, VisitedResponse{Visited: visited})
}
