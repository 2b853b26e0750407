package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"story-server/internal/models"
)

// handleServiceError maps service errors onto HTTP statuses. ErrInvalidChoice
// is deliberately a 400, distinct from the 404 of a missing choice.
func (h *Handler) handleServiceError(c *gin.Context, err error) {
	var statusCode int
	var errResp models.ErrorResponse

	switch {
	case errors.Is(err, models.ErrNotFound):
		statusCode = http.StatusNotFound
		errResp = models.ErrorResponse{Code: models.ErrCodeNotFound, Message: "Resource not found"}
	case errors.Is(err, models.ErrInvalidChoice):
		statusCode = http.StatusBadRequest
		errResp = models.ErrorResponse{Code: models.ErrCodeInvalidChoice, Message: "Choice does not belong to the current node"}
	case errors.Is(err, models.ErrBadRequest):
		statusCode = http.StatusBadRequest
		errResp = models.ErrorResponse{Code: models.ErrCodeValidation, Message: err.Error()}
	default:
		// ErrTransactionFailed and anything unexpected.
		h.logger.Error("Unhandled internal error", zap.Error(err))
		statusCode = http.StatusInternalServerError
		errResp = models.ErrorResponse{Code: models.ErrCodeInternal, Message: "An unexpected internal error occurred"}
	}

	c.AbortWithStatusJSON(statusCode, errResp)
}

func respondValidationError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{
		Code:    models.ErrCodeValidation,
		Message: err.Error(),
	})
}

// respondNoResult reports a legitimate empty state (null sentinel in the
// service contract) as a 404 with a machine-readable code so clients can tell
// it apart from a missing resource.
func respondNoResult(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusNotFound, models.ErrorResponse{Code: code, Message: message})
}

// saveIDParam parses the :saveId path parameter.
func saveIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("saveId"))
	if err != nil {
		respondValidationError(c, err)
		return uuid.Nil, false
	}
	return id, true
}
