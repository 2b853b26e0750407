package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"story-server/internal/models"
)

const (
	insertPlayerCharacterQuery = `
            INSERT INTO player_characters (id, user_id, name, health, created_at)
            VALUES ($1, $2, $3, $4, $5)
        `
	getPlayerCharacterQuery = `
        SELECT id, user_id, name, health, created_at
        FROM player_characters
        WHERE id = $1
    `
	updatePlayerCharacterHealthQuery = `UPDATE player_characters SET health = $2 WHERE id = $1`
	deletePlayerCharacterQuery       = `DELETE FROM player_characters WHERE id = $1`
)

// Compile-time check to ensure pgPlayerCharacterRepository implements the interface
var _ PlayerCharacterRepository = (*pgPlayerCharacterRepository)(nil)

type pgPlayerCharacterRepository struct {
	logger *zap.Logger
}

// NewPgPlayerCharacterRepository creates a new repository instance.
func NewPgPlayerCharacterRepository(logger *zap.Logger) PlayerCharacterRepository {
	return &pgPlayerCharacterRepository{
		logger: logger.Named("PgPlayerCharacterRepo"),
	}
}

func (r *pgPlayerCharacterRepository) Create(ctx context.Context, querier DBTX, pc *models.PlayerCharacter) error {
	if pc.ID == uuid.Nil {
		pc.ID = uuid.New()
	}
	pc.CreatedAt = time.Now().UTC()

	_, err := querier.Exec(ctx, insertPlayerCharacterQuery, pc.ID, pc.UserID, pc.Name, pc.Health, pc.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to insert player character", zap.String("characterID", pc.ID.String()), zap.Error(err))
		return fmt.Errorf("failed to insert player character: %w", err)
	}
	r.logger.Info("Player character created", zap.String("characterID", pc.ID.String()), zap.String("userID", pc.UserID.String()))
	return nil
}

func (r *pgPlayerCharacterRepository) GetByID(ctx context.Context, querier DBTX, id uuid.UUID) (*models.PlayerCharacter, error) {
	pc := &models.PlayerCharacter{}
	err := querier.QueryRow(ctx, getPlayerCharacterQuery, id).Scan(&pc.ID, &pc.UserID, &pc.Name, &pc.Health, &pc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Warn("Player character not found", zap.String("characterID", id.String()))
			return nil, models.ErrNotFound
		}
		r.logger.Error("Failed to get player character", zap.String("characterID", id.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to get player character %s: %w", id, err)
	}
	return pc, nil
}

func (r *pgPlayerCharacterRepository) UpdateHealth(ctx context.Context, querier DBTX, id uuid.UUID, health int) error {
	cmdTag, err := querier.Exec(ctx, updatePlayerCharacterHealthQuery, id, health)
	if err != nil {
		r.logger.Error("Failed to update player character health", zap.String("characterID", id.String()), zap.Error(err))
		return fmt.Errorf("failed to update player character health %s: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		r.logger.Warn("Player character not found for health update", zap.String("characterID", id.String()))
		return models.ErrNotFound
	}
	return nil
}

func (r *pgPlayerCharacterRepository) Delete(ctx context.Context, querier DBTX, id uuid.UUID) error {
	cmdTag, err := querier.Exec(ctx, deletePlayerCharacterQuery, id)
	if err != nil {
		r.logger.Error("Failed to delete player character", zap.String("characterID", id.String()), zap.Error(err))
		return fmt.Errorf("failed to delete player character %s: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
