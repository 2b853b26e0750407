package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"story-server/internal/models"
)

// DBTX is the querier abstraction shared by *pgxpool.Pool and pgx.Tx, so a
// repository call can run either standalone or inside a caller-owned
// transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// StoryRepository is read-only access to the authored story graph.
type StoryRepository interface {
	// GetNode returns the node or models.ErrNotFound.
	GetNode(ctx context.Context, querier DBTX, id int64) (*models.StoryNode, error)

	// GetStartNode returns the single node flagged as the graph root.
	GetStartNode(ctx context.Context, querier DBTX) (*models.StoryNode, error)

	// ListDialoguesByNode returns the node's dialogue lines sorted by ord.
	ListDialoguesByNode(ctx context.Context, querier DBTX, nodeID int64) ([]models.Dialogue, error)

	// ListChoicesByNode returns the node's outgoing edges. Enumeration order
	// is explicit (ORDER BY id); GoForward relies on it.
	ListChoicesByNode(ctx context.Context, querier DBTX, nodeID int64) ([]models.Choice, error)

	// GetChoice returns the edge or models.ErrNotFound.
	GetChoice(ctx context.Context, querier DBTX, id int64) (*models.Choice, error)

	// GetCharacters returns the characters for the given ids, keyed by id.
	// Missing ids are simply absent from the map.
	GetCharacters(ctx context.Context, querier DBTX, ids []int64) (map[int64]models.Character, error)
}

// GameSaveRepository persists the mutable session state.
type GameSaveRepository interface {
	Create(ctx context.Context, querier DBTX, save *models.GameSave) error

	// GetByID returns the save or models.ErrNotFound.
	GetByID(ctx context.Context, querier DBTX, id uuid.UUID) (*models.GameSave, error)

	// ListSummariesByUser returns load-screen summaries, most recent first.
	ListSummariesByUser(ctx context.Context, querier DBTX, userID uuid.UUID) ([]models.GameSaveSummary, error)

	// Update persists every mutable field of the save and stamps LastUpdate.
	Update(ctx context.Context, querier DBTX, save *models.GameSave) error

	// Delete removes the save; models.ErrNotFound if no row matched.
	Delete(ctx context.Context, querier DBTX, id uuid.UUID) error
}

// PlayerCharacterRepository persists the per-game identity record.
type PlayerCharacterRepository interface {
	Create(ctx context.Context, querier DBTX, pc *models.PlayerCharacter) error
	GetByID(ctx context.Context, querier DBTX, id uuid.UUID) (*models.PlayerCharacter, error)

	// UpdateHealth refreshes the denormalized health mirror.
	UpdateHealth(ctx context.Context, querier DBTX, id uuid.UUID, health int) error

	Delete(ctx context.Context, querier DBTX, id uuid.UUID) error
}
