package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"story-server/internal/models"
	"story-server/internal/repository"
)

// Mock StoryRepository
type StoryRepository struct {
	mock.Mock
}

func (m *StoryRepository) GetNode(ctx context.Context, querier repository.DBTX, id int64) (*models.StoryNode, error) {
	args := m.Called(ctx, querier, id)
	node, _ := args.Get(0).(*models.StoryNode)
	return node, args.Error(1)
}
func (m *StoryRepository) GetStartNode(ctx context.Context, querier repository.DBTX) (*models.StoryNode, error) {
	args := m.Called(ctx, querier)
	node, _ := args.Get(0).(*models.StoryNode)
	return node, args.Error(1)
}
func (m *StoryRepository) ListDialoguesByNode(ctx context.Context, querier repository.DBTX, nodeID int64) ([]models.Dialogue, error) {
	args := m.Called(ctx, querier, nodeID)
	dialogues, _ := args.Get(0).([]models.Dialogue)
	return dialogues, args.Error(1)
}
func (m *StoryRepository) ListChoicesByNode(ctx context.Context, querier repository.DBTX, nodeID int64) ([]models.Choice, error) {
	args := m.Called(ctx, querier, nodeID)
	choices, _ := args.Get(0).([]models.Choice)
	return choices, args.Error(1)
}
func (m *StoryRepository) GetChoice(ctx context.Context, querier repository.DBTX, id int64) (*models.Choice, error) {
	args := m.Called(ctx, querier, id)
	choice, _ := args.Get(0).(*models.Choice)
	return choice, args.Error(1)
}
func (m *StoryRepository) GetCharacters(ctx context.Context, querier repository.DBTX, ids []int64) (map[int64]models.Character, error) {
	args := m.Called(ctx, querier, ids)
	characters, _ := args.Get(0).(map[int64]models.Character)
	return characters, args.Error(1)
}

// Mock GameSaveRepository
type GameSaveRepository struct {
	mock.Mock
}

func (m *GameSaveRepository) Create(ctx context.Context, querier repository.DBTX, save *models.GameSave) error {
	args := m.Called(ctx, querier, save)
	return args.Error(0)
}
func (m *GameSaveRepository) GetByID(ctx context.Context, querier repository.DBTX, id uuid.UUID) (*models.GameSave, error) {
	args := m.Called(ctx, querier, id)
	save, _ := args.Get(0).(*models.GameSave)
	return save, args.Error(1)
}
func (m *GameSaveRepository) ListSummariesByUser(ctx context.Context, querier repository.DBTX, userID uuid.UUID) ([]models.GameSaveSummary, error) {
	args := m.Called(ctx, querier, userID)
	summaries, _ := args.Get(0).([]models.GameSaveSummary)
	return summaries, args.Error(1)
}
func (m *GameSaveRepository) Update(ctx context.Context, querier repository.DBTX, save *models.GameSave) error {
	args := m.Called(ctx, querier, save)
	return args.Error(0)
}
func (m *GameSaveRepository) Delete(ctx context.Context, querier repository.DBTX, id uuid.UUID) error {
	args := m.Called(ctx, querier, id)
	return args.Error(0)
}

// Mock PlayerCharacterRepository
type PlayerCharacterRepository struct {
	mock.Mock
}

func (m *PlayerCharacterRepository) Create(ctx context.Context, querier repository.DBTX, pc *models.PlayerCharacter) error {
	args := m.Called(ctx, querier, pc)
	return args.Error(0)
}
func (m *PlayerCharacterRepository) GetByID(ctx context.Context, querier repository.DBTX, id uuid.UUID) (*models.PlayerCharacter, error) {
	args := m.Called(ctx, querier, id)
	pc, _ := args.Get(0).(*models.PlayerCharacter)
	return pc, args.Error(1)
}
func (m *PlayerCharacterRepository) UpdateHealth(ctx context.Context, querier repository.DBTX, id uuid.UUID, health int) error {
	args := m.Called(ctx, querier, id, health)
	return args.Error(0)
}
func (m *PlayerCharacterRepository) Delete(ctx context.Context, querier repository.DBTX, id uuid.UUID) error {
	args := m.Called(ctx, querier, id)
	return args.Error(0)
}
