package models

import (
	"time"

	"github.com/google/uuid"
)

// PlayerCharacter is the identity record created once per new game. Health is
// canonical on GameSave; the Health field here is a denormalized mirror kept
// in sync transactionally by every save-health mutation.
type PlayerCharacter struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"userId"`
	Name      string    `db:"name" json:"name"`
	Health    int       `db:"health" json:"health"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
