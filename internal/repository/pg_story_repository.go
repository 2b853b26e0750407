package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"story-server/internal/models"
)

const (
	storyNodeFields = `id, title, description, background_url, audio_url, is_start`

	getStoryNodeQuery = `
        SELECT ` + storyNodeFields + `
        FROM story_nodes
        WHERE id = $1
    `
	getStartNodeQuery = `
        SELECT ` + storyNodeFields + `
        FROM story_nodes
        WHERE is_start = TRUE
        LIMIT 1
    `
	listDialoguesByNodeQuery = `
        SELECT id, story_node_id, character_id, ord, text, health_effect
        FROM dialogues
        WHERE story_node_id = $1
        ORDER BY ord
    `
	listChoicesByNodeQuery = `
        SELECT id, story_node_id, next_story_node_id, text, health_delta, audio_url
        FROM choices
        WHERE story_node_id = $1
        ORDER BY id
    `
	getChoiceQuery = `
        SELECT id, story_node_id, next_story_node_id, text, health_delta, audio_url
        FROM choices
        WHERE id = $1
    `
	getCharactersQuery = `
        SELECT id, name, avatar_url
        FROM characters
        WHERE id = ANY($1)
    `
)

// Compile-time check to ensure pgStoryRepository implements the interface
var _ StoryRepository = (*pgStoryRepository)(nil)

// pgStoryRepository is the PostgreSQL implementation of StoryRepository.
// The story graph is authored content: this repository never writes.
type pgStoryRepository struct {
	logger *zap.Logger
}

// NewPgStoryRepository creates a new repository instance.
func NewPgStoryRepository(logger *zap.Logger) StoryRepository {
	return &pgStoryRepository{
		logger: logger.Named("PgStoryRepo"),
	}
}

func (r *pgStoryRepository) GetNode(ctx context.Context, querier DBTX, id int64) (*models.StoryNode, error) {
	node := &models.StoryNode{}
	err := pgxscan.Get(ctx, querier, node, getStoryNodeQuery, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Warn("Story node not found", zap.Int64("nodeID", id))
			return nil, models.ErrNotFound
		}
		r.logger.Error("Failed to get story node", zap.Int64("nodeID", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get story node %d: %w", id, err)
	}
	return node, nil
}

func (r *pgStoryRepository) GetStartNode(ctx context.Context, querier DBTX) (*models.StoryNode, error) {
	node := &models.StoryNode{}
	err := pgxscan.Get(ctx, querier, node, getStartNodeQuery)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Error("Story graph has no start node")
			return nil, models.ErrNotFound
		}
		r.logger.Error("Failed to get start node", zap.Error(err))
		return nil, fmt.Errorf("failed to get start node: %w", err)
	}
	return node, nil
}

func (r *pgStoryRepository) ListDialoguesByNode(ctx context.Context, querier DBTX, nodeID int64) ([]models.Dialogue, error) {
	dialogues := make([]models.Dialogue, 0)
	if err := pgxscan.Select(ctx, querier, &dialogues, listDialoguesByNodeQuery, nodeID); err != nil {
		r.logger.Error("Failed to list dialogues", zap.Int64("nodeID", nodeID), zap.Error(err))
		return nil, fmt.Errorf("failed to list dialogues for node %d: %w", nodeID, err)
	}
	return dialogues, nil
}

func (r *pgStoryRepository) ListChoicesByNode(ctx context.Context, querier DBTX, nodeID int64) ([]models.Choice, error) {
	choices := make([]models.Choice, 0)
	if err := pgxscan.Select(ctx, querier, &choices, listChoicesByNodeQuery, nodeID); err != nil {
		r.logger.Error("Failed to list choices", zap.Int64("nodeID", nodeID), zap.Error(err))
		return nil, fmt.Errorf("failed to list choices for node %d: %w", nodeID, err)
	}
	return choices, nil
}

func (r *pgStoryRepository) GetChoice(ctx context.Context, querier DBTX, id int64) (*models.Choice, error) {
	choice := &models.Choice{}
	err := pgxscan.Get(ctx, querier, choice, getChoiceQuery, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Warn("Choice not found", zap.Int64("choiceID", id))
			return nil, models.ErrNotFound
		}
		r.logger.Error("Failed to get choice", zap.Int64("choiceID", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get choice %d: %w", id, err)
	}
	return choice, nil
}

func (r *pgStoryRepository) GetCharacters(ctx context.Context, querier DBTX, ids []int64) (map[int64]models.Character, error) {
	result := make(map[int64]models.Character, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	characters := make([]models.Character, 0, len(ids))
	if err := pgxscan.Select(ctx, querier, &characters, getCharactersQuery, ids); err != nil {
		r.logger.Error("Failed to get characters", zap.Int("idCount", len(ids)), zap.Error(err))
		return nil, fmt.Errorf("failed to get characters: %w", err)
	}
	for _, c := range characters {
		result[c.ID] = c
	}
	return result, nil
}
