package models

import (
	"time"

	"github.com/google/uuid"
)

// CharacterView is the minimal speaker info attached to a dialogue line.
type CharacterView struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

// DialogueView is one dialogue line joined with its speaker.
type DialogueView struct {
	ID           int64          `json:"id"`
	Order        int            `json:"order"`
	Text         string         `json:"text"`
	HealthEffect *int           `json:"healthEffect,omitempty"`
	Character    *CharacterView `json:"character,omitempty"`
}

// ChoiceView is one outgoing edge as shown to the player.
type ChoiceView struct {
	ID              int64   `json:"id"`
	Text            string  `json:"text"`
	NextStoryNodeID int64   `json:"nextStoryNodeId"`
	HealthDelta     *int    `json:"healthDelta,omitempty"`
	AudioURL        *string `json:"audioUrl,omitempty"`
}

// FullNodeView is the resolved content of a story node: description plus the
// ordered dialogue lines and the outgoing choices.
type FullNodeView struct {
	ID            int64          `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	BackgroundURL *string        `json:"backgroundUrl,omitempty"`
	AudioURL      *string        `json:"audioUrl,omitempty"`
	Dialogues     []DialogueView `json:"dialogues"`
	Choices       []ChoiceView   `json:"choices"`
}

// GameSaveSummary is the listing row for a "load game" screen. CurrentNodeTitle
// is joined from the story graph.
type GameSaveSummary struct {
	ID               uuid.UUID `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"`
	Health           int       `db:"health" json:"health"`
	CurrentNodeTitle string    `db:"current_node_title" json:"currentNodeTitle"`
	LastUpdate       time.Time `db:"last_update" json:"lastUpdate"`
}
