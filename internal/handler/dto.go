package handler

import "github.com/google/uuid"

// CreateGameRequest starts a new playthrough.
type CreateGameRequest struct {
	UserID        uuid.UUID `json:"userId" binding:"required"`
	SaveName      string    `json:"saveName" binding:"required"`
	CharacterName string    `json:"characterName" binding:"required"`
}

// RenameGameSaveRequest changes the save's display name.
type RenameGameSaveRequest struct {
	Name string `json:"name" binding:"required"`
}

// NavigateRequest moves the save's cursor to an arbitrary node.
type NavigateRequest struct {
	TargetNodeID int64 `json:"targetNodeId" binding:"required"`
}

// MakeChoiceRequest applies a choice edge.
type MakeChoiceRequest struct {
	ChoiceID int64 `json:"choiceId" binding:"required"`
}

// ModifyHealthRequest applies a health delta to the save.
type ModifyHealthRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// HealthResponse is the post-mutation health value.
type HealthResponse struct {
	Health int `json:"health"`
}

// VisitedResponse answers HasVisitedNode.
type VisitedResponse struct {
	Visited bool `json:"visited"`
}

// DialogueCompleteResponse answers IsDialogueComplete.
type DialogueCompleteResponse struct {
	Complete bool `json:"complete"`
}
