package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"story-server/internal/models"
	"story-server/internal/repository"
)

// GameService owns the save lifecycle (create/list/load/rename/delete) and
// health mutation. Health is canonical on the save; the player character row
// mirrors it and both are written in the same transaction.
type GameService interface {
	CreateGame(ctx context.Context, userID uuid.UUID, saveName, characterName string) (*models.GameSave, error)
	GetGameSave(ctx context.Context, saveID uuid.UUID) (*models.GameSave, error)
	GetUserGameSaves(ctx context.Context, userID uuid.UUID) ([]models.GameSaveSummary, error)
	RenameGameSave(ctx context.Context, saveID uuid.UUID, name string) (*models.GameSave, error)
	DeleteGameSave(ctx context.Context, saveID uuid.UUID) error

	// ModifyHealth applies delta clamped at 0 and returns the new value.
	ModifyHealth(ctx context.Context, saveID uuid.UUID, delta int) (int, error)
	Heal(ctx context.Context, saveID uuid.UUID, amount int) (int, error)
	Damage(ctx context.Context, saveID uuid.UUID, amount int) (int, error)
}

type gameServiceImpl struct {
	storyRepo     repository.StoryRepository
	saveRepo      repository.GameSaveRepository
	characterRepo repository.PlayerCharacterRepository
	tx            TxRunner
	db            repository.DBTX
	initialHealth int
	logger        *zap.Logger
}

// NewGameService creates the session lifecycle service. initialHealth seeds
// both the player character and the save of every new game.
func NewGameService(
	storyRepo repository.StoryRepository,
	saveRepo repository.GameSaveRepository,
	characterRepo repository.PlayerCharacterRepository,
	tx TxRunner,
	db repository.DBTX,
	initialHealth int,
	logger *zap.Logger,
) GameService {
	return &gameServiceImpl{
		storyRepo:     storyRepo,
		saveRepo:      saveRepo,
		characterRepo: characterRepo,
		tx:            tx,
		db:            db,
		initialHealth: initialHealth,
		logger:        logger.Named("GameService"),
	}
}

// CreateGame creates the player character and the save in one transaction,
// positioned at the graph's start node with empty history and full health.
func (s *gameServiceImpl) CreateGame(ctx context.Context, userID uuid.UUID, saveName, characterName string) (*models.GameSave, error) {
	log := s.logger.With(zap.String("userID", userID.String()), zap.String("saveName", saveName))

	var save *models.GameSave
	err := s.tx.WithTx(ctx, func(q repository.DBTX) error {
		start, err := s.storyRepo.GetStartNode(ctx, q)
		if err != nil {
			return err
		}

		pc := &models.PlayerCharacter{
			UserID: userID,
			Name:   characterName,
			Health: s.initialHealth,
		}
		if err := s.characterRepo.Create(ctx, q, pc); err != nil {
			return err
		}

		save = &models.GameSave{
			UserID:             userID,
			PlayerCharacterID:  pc.ID,
			Name:               saveName,
			CurrentStoryNodeID: start.ID,
			VisitedNodeIDs:     []int64{},
			LastChoiceID:       nil,
			CurrentDialogueIdx: 0,
			Health:             s.initialHealth,
		}
		return s.saveRepo.Create(ctx, q, save)
	})
	if err != nil {
		log.Error("Failed to create game", zap.Error(err))
		return nil, err
	}

	log.Info("Game created", zap.String("saveID", save.ID.String()))
	return save, nil
}

func (s *gameServiceImpl) GetGameSave(ctx context.Context, saveID uuid.UUID) (*models.GameSave, error) {
	return s.saveRepo.GetByID(ctx, s.db, saveID)
}

func (s *gameServiceImpl) GetUserGameSaves(ctx context.Context, userID uuid.UUID) ([]models.GameSaveSummary, error) {
	return s.saveRepo.ListSummariesByUser(ctx, s.db, userID)
}

// RenameGameSave updates the save's display name, the only mutable field not
// owned by the navigation engine.
func (s *gameServiceImpl) RenameGameSave(ctx context.Context, saveID uuid.UUID, name string) (*models.GameSave, error) {
	var save *models.GameSave
	err := s.tx.WithTx(ctx, func(q repository.DBTX) error {
		var err error
		save, err = s.saveRepo.GetByID(ctx, q, saveID)
		if err != nil {
			return err
		}
		save.Name = name
		return s.saveRepo.Update(ctx, q, save)
	})
	if err != nil {
		return nil, err
	}
	return save, nil
}

// DeleteGameSave removes the save and its player character together.
func (s *gameServiceImpl) DeleteGameSave(ctx context.Context, saveID uuid.UUID) error {
	log := s.logger.With(zap.String("saveID", saveID.String()))

	err := s.tx.WithTx(ctx, func(q repository.DBTX) error {
		save, err := s.saveRepo.GetByID(ctx, q, saveID)
		if err != nil {
			return err
		}
		if err := s.saveRepo.Delete(ctx, q, saveID); err != nil {
			return err
		}
		return s.characterRepo.Delete(ctx, q, save.PlayerCharacterID)
	})
	if err != nil {
		return err
	}

	log.Info("Game save deleted")
	return nil
}

func (s *gameServiceImpl) ModifyHealth(ctx context.Context, saveID uuid.UUID, delta int) (int, error) {
	log := s.logger.With(zap.String("saveID", saveID.String()), zap.Int("delta", delta))

	var newHealth int
	err := s.tx.WithTx(ctx, func(q repository.DBTX) error {
		save, err := s.saveRepo.GetByID(ctx, q, saveID)
		if err != nil {
			return err
		}
		newHealth = save.ApplyHealthDelta(delta)
		if err := s.saveRepo.Update(ctx, q, save); err != nil {
			return err
		}
		return s.characterRepo.UpdateHealth(ctx, q, save.PlayerCharacterID, newHealth)
	})
	if err != nil {
		return 0, err
	}

	log.Debug("Health modified", zap.Int("newHealth", newHealth))
	return newHealth, nil
}

func (s *gameServiceImpl) Heal(ctx context.Context, saveID uuid.UUID, amount int) (int, error) {
	return s.ModifyHealth(ctx, saveID, amount)
}

func (s *gameServiceImpl) Damage(ctx context.Context, saveID uuid.UUID, amount int) (int, error) {
	return s.ModifyHealth(ctx, saveID, -amount)
}
