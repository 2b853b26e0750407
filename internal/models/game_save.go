package models

import (
	"time"

	"github.com/google/uuid"
)

// GameSave is the mutable per-playthrough session state: the player's current
// position in the story graph, the visited-node history, the dialogue cursor
// and health.
type GameSave struct {
	ID                 uuid.UUID `db:"id" json:"id"`
	UserID             uuid.UUID `db:"user_id" json:"userId"`
	PlayerCharacterID  uuid.UUID `db:"player_character_id" json:"playerCharacterId"`
	Name               string    `db:"name" json:"name"`
	CurrentStoryNodeID int64     `db:"current_story_node_id" json:"currentStoryNodeId"`
	VisitedNodeIDs     []int64   `db:"visited_node_ids" json:"visitedNodeIds"`
	LastChoiceID       *int64    `db:"last_choice_id" json:"lastChoiceId,omitempty"`
	CurrentDialogueIdx int       `db:"current_dialogue_idx" json:"currentDialogueIndex"`
	Health             int       `db:"health" json:"health"`
	CreatedAt          time.Time `db:"created_at" json:"createdAt"`
	LastUpdate         time.Time `db:"last_update" json:"lastUpdate"`
}

// PushVisited appends nodeID to the visited history unless it already sits at
// the tail. Keeps the no-consecutive-duplicates invariant, which also covers
// self-loop choices.
func (s *GameSave) PushVisited(nodeID int64) {
	if n := len(s.VisitedNodeIDs); n > 0 && s.VisitedNodeIDs[n-1] == nodeID {
		return
	}
	s.VisitedNodeIDs = append(s.VisitedNodeIDs, nodeID)
}

// HasVisited reports whether nodeID appears anywhere in the visited history.
// The current node does not count until the player leaves it.
func (s *GameSave) HasVisited(nodeID int64) bool {
	for _, id := range s.VisitedNodeIDs {
		if id == nodeID {
			return true
		}
	}
	return false
}

// ApplyHealthDelta mutates health by delta, clamped to a minimum of 0, and
// returns the post-mutation value.
func (s *GameSave) ApplyHealthDelta(delta int) int {
	s.Health += delta
	if s.Health < 0 {
		s.Health = 0
	}
	return s.Health
}
