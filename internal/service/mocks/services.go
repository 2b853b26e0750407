package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"story-server/internal/models"
)

// Mock GameService
type GameService struct {
	mock.Mock
}

func (m *GameService) CreateGame(ctx context.Context, userID uuid.UUID, saveName, characterName string) (*models.GameSave, error) {
	args := m.Called(ctx, userID, saveName, characterName)
	save, _ := args.Get(0).(*models.GameSave)
	return save, args.Error(1)
}
func (m *GameService) GetGameSave(ctx context.Context, saveID uuid.UUID) (*models.GameSave, error) {
	args := m.Called(ctx, saveID)
	save, _ := args.Get(0).(*models.GameSave)
	return save, args.Error(1)
}
func (m *GameService) GetUserGameSaves(ctx context.Context, userID uuid.UUID) ([]models.GameSaveSummary, error) {
	args := m.Called(ctx, userID)
	summaries, _ := args.Get(0).([]models.GameSaveSummary)
	return summaries, args.Error(1)
}
func (m *GameService) RenameGameSave(ctx context.Context, saveID uuid.UUID, name string) (*models.GameSave, error) {
	args := m.Called(ctx, saveID, name)
	save, _ := args.Get(0).(*models.GameSave)
	return save, args.Error(1)
}
func (m *GameService) DeleteGameSave(ctx context.Context, saveID uuid.UUID) error {
	args := m.Called(ctx, saveID)
	return args.Error(0)
}
func (m *GameService) ModifyHealth(ctx context.Context, saveID uuid.UUID, delta int) (int, error) {
	args := m.Called(ctx, saveID, delta)
	return args.Int(0), args.Error(1)
}
func (m *GameService) Heal(ctx context.Context, saveID uuid.UUID, amount int) (int, error) {
	args := m.Called(ctx, saveID, amount)
	return args.Int(0), args.Error(1)
}
func (m *GameService) Damage(ctx context.Context, saveID uuid.UUID, amount int) (int, error) {
	args := m.Called(ctx, saveID, amount)
	return args.Int(0), args.Error(1)
}

// Mock StoryService
type StoryService struct {
	mock.Mock
}

func (m *StoryService) GetCurrentNode(ctx context.Context, saveID uuid.UUID) (*models.FullNodeView, error) {
	args := m.Called(ctx, saveID)
	view, _ := args.Get(0).(*models.FullNodeView)
	return view, args.Error(1)
}
func (m *StoryService) NavigateToNode(ctx context.Context, saveID uuid.UUID, targetNodeID int64) (*models.FullNodeView, error) {
	args := m.Called(ctx, saveID, targetNodeID)
	view, _ := args.Get(0).(*models.FullNodeView)
	return view, args.Error(1)
}
func (m *StoryService) GoBack(ctx context.Context, saveID uuid.UUID) (*models.FullNodeView, error) {
	args := m.Called(ctx, saveID)
	view, _ := args.Get(0).(*models.FullNodeView)
	return view, args.Error(1)
}
func (m *StoryService) GoForward(ctx context.Context, saveID uuid.UUID) (*models.FullNodeView, error) {
	args := m.Called(ctx, saveID)
	view, _ := args.Get(0).(*models.FullNodeView)
	return view, args.Error(1)
}
func (m *StoryService) MakeChoice(ctx context.Context, saveID uuid.UUID, choiceID int64) (*models.FullNodeView, error) {
	args := m.Called(ctx, saveID, choiceID)
	view, _ := args.Get(0).(*models.FullNodeView)
	return view, args.Error(1)
}
func (m *StoryService) GetAvailableChoices(ctx context.Context, saveID uuid.UUID) ([]models.ChoiceView, error) {
	args := m.Called(ctx, saveID)
	choices, _ := args.Get(0).([]models.ChoiceView)
	return choices, args.Error(1)
}
func (m *StoryService) GetNextDialogue(ctx context.Context, saveID uuid.UUID) (*models.DialogueView, error) {
	args := m.Called(ctx, saveID)
	dialogue, _ := args.Get(0).(*models.DialogueView)
	return dialogue, args.Error(1)
}
func (m *StoryService) SkipToLastDialogue(ctx context.Context, saveID uuid.UUID) (*models.DialogueView, error) {
	args := m.Called(ctx, saveID)
	dialogue, _ := args.Get(0).(*models.DialogueView)
	return dialogue, args.Error(1)
}
func (m *StoryService) IsDialogueComplete(ctx context.Context, saveID uuid.UUID) (bool, error) {
	args := m.Called(ctx, saveID)
	return args.Bool(0), args.Error(1)
}
func (m *StoryService) GetVisitedNodes(ctx context.Context, saveID uuid.UUID) ([]int64, error) {
	args := m.Called(ctx, saveID)
	visited, _ := args.Get(0).([]int64)
	return visited, args.Error(1)
}
func (m *StoryService) HasVisitedNode(ctx context.Context, saveID uuid.UUID, nodeID int64) (bool, error) {
	args := m.Called(ctx, saveID, nodeID)
	return args.Bool(0), args.Error(1)
}
