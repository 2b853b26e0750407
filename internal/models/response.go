package models

// Machine-readable error codes returned alongside HTTP statuses.
const (
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeInvalidChoice     = "INVALID_CHOICE"
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeNoHistory         = "NO_HISTORY"
	ErrCodeNoChoices         = "NO_CHOICES"
	ErrCodeDialogueExhausted = "DIALOGUE_EXHAUSTED"
	ErrCodeInternal          = "INTERNAL_ERROR"
)

// ErrorResponse is the standardized error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
