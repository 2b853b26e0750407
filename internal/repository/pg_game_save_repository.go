package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"story-server/internal/models"
)

const (
	gameSaveFields = `id, user_id, player_character_id, name, current_story_node_id, visited_node_ids, last_choice_id, current_dialogue_idx, health, created_at, last_update`

	insertGameSaveQuery = `
            INSERT INTO game_saves
                (id, user_id, player_character_id, name, current_story_node_id, visited_node_ids, last_choice_id, current_dialogue_idx, health, created_at, last_update)
            VALUES
                ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        `
	updateGameSaveQuery = `
            UPDATE game_saves SET
                name = $2,
                current_story_node_id = $3,
                visited_node_ids = $4,
                last_choice_id = $5,
                current_dialogue_idx = $6,
                health = $7,
                last_update = $8
                -- user_id, player_character_id and created_at never change
            WHERE id = $1
        `
	getGameSaveByIDQuery = `
        SELECT ` + gameSaveFields + `
        FROM game_saves
        WHERE id = $1
    `
	deleteGameSaveQuery = `DELETE FROM game_saves WHERE id = $1`

	listGameSaveSummariesQuery = `
        SELECT
            gs.id,
            gs.name,
            gs.health,
            sn.title AS current_node_title,
            gs.last_update
        FROM game_saves gs
        JOIN story_nodes sn ON sn.id = gs.current_story_node_id
        WHERE gs.user_id = $1
        ORDER BY gs.last_update DESC
    `
)

// Compile-time check to ensure pgGameSaveRepository implements the interface
var _ GameSaveRepository = (*pgGameSaveRepository)(nil)

// pgGameSaveRepository is the PostgreSQL implementation of GameSaveRepository.
type pgGameSaveRepository struct {
	logger *zap.Logger
}

// NewPgGameSaveRepository creates a new repository instance.
func NewPgGameSaveRepository(logger *zap.Logger) GameSaveRepository {
	return &pgGameSaveRepository{
		logger: logger.Named("PgGameSaveRepo"),
	}
}

func (r *pgGameSaveRepository) Create(ctx context.Context, querier DBTX, save *models.GameSave) error {
	now := time.Now().UTC()
	if save.ID == uuid.Nil {
		save.ID = uuid.New()
	}
	save.CreatedAt = now
	save.LastUpdate = now

	logFields := []zap.Field{
		zap.String("saveID", save.ID.String()),
		zap.String("userID", save.UserID.String()),
	}

	_, err := querier.Exec(ctx, insertGameSaveQuery,
		save.ID,
		save.UserID,
		save.PlayerCharacterID,
		save.Name,
		save.CurrentStoryNodeID,
		pq.Int64Array(save.VisitedNodeIDs),
		save.LastChoiceID,
		save.CurrentDialogueIdx,
		save.Health,
		save.CreatedAt,
		save.LastUpdate,
	)
	if err != nil {
		r.logger.Error("Failed to insert game save", append(logFields, zap.Error(err))...)
		return fmt.Errorf("failed to insert game save: %w", err)
	}

	r.logger.Info("Game save created", logFields...)
	return nil
}

func (r *pgGameSaveRepository) GetByID(ctx context.Context, querier DBTX, id uuid.UUID) (*models.GameSave, error) {
	row := querier.QueryRow(ctx, getGameSaveByIDQuery, id)
	save, err := scanGameSave(row)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			r.logger.Warn("Game save not found", zap.String("saveID", id.String()))
			return nil, models.ErrNotFound
		}
		r.logger.Error("Failed to get game save", zap.String("saveID", id.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to get game save %s: %w", id, err)
	}
	return save, nil
}

func (r *pgGameSaveRepository) ListSummariesByUser(ctx context.Context, querier DBTX, userID uuid.UUID) ([]models.GameSaveSummary, error) {
	summaries := make([]models.GameSaveSummary, 0)
	if err := pgxscan.Select(ctx, querier, &summaries, listGameSaveSummariesQuery, userID); err != nil {
		r.logger.Error("Failed to list game save summaries", zap.String("userID", userID.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to list game saves for user %s: %w", userID, err)
	}
	r.logger.Debug("Game save summaries listed", zap.String("userID", userID.String()), zap.Int("count", len(summaries)))
	return summaries, nil
}

func (r *pgGameSaveRepository) Update(ctx context.Context, querier DBTX, save *models.GameSave) error {
	save.LastUpdate = time.Now().UTC()

	cmdTag, err := querier.Exec(ctx, updateGameSaveQuery,
		save.ID,
		save.Name,
		save.CurrentStoryNodeID,
		pq.Int64Array(save.VisitedNodeIDs),
		save.LastChoiceID,
		save.CurrentDialogueIdx,
		save.Health,
		save.LastUpdate,
	)
	if err != nil {
		r.logger.Error("Failed to update game save", zap.String("saveID", save.ID.String()), zap.Error(err))
		return fmt.Errorf("failed to update game save %s: %w", save.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		r.logger.Warn("Game save not found for update", zap.String("saveID", save.ID.String()))
		return models.ErrNotFound
	}
	return nil
}

func (r *pgGameSaveRepository) Delete(ctx context.Context, querier DBTX, id uuid.UUID) error {
	cmdTag, err := querier.Exec(ctx, deleteGameSaveQuery, id)
	if err != nil {
		r.logger.Error("Failed to delete game save", zap.String("saveID", id.String()), zap.Error(err))
		return fmt.Errorf("failed to delete game save %s: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		r.logger.Warn("Game save not found for deletion", zap.String("saveID", id.String()))
		return models.ErrNotFound
	}
	r.logger.Info("Game save deleted", zap.String("saveID", id.String()))
	return nil
}

// scanGameSave scans a single row into a GameSave. Translates pgx.ErrNoRows
// into models.ErrNotFound for the QueryRow case.
func scanGameSave(row pgx.Row) (*models.GameSave, error) {
	save := &models.GameSave{}
	var visited pq.Int64Array
	err := row.Scan(
		&save.ID,
		&save.UserID,
		&save.PlayerCharacterID,
		&save.Name,
		&save.CurrentStoryNodeID,
		&visited,
		&save.LastChoiceID,
		&save.CurrentDialogueIdx,
		&save.Health,
		&save.CreatedAt,
		&save.LastUpdate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan game save row: %w", err)
	}
	save.VisitedNodeIDs = []int64(visited)
	return save, nil
}
