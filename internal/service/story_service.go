package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"story-server/internal/models"
	"story-server/internal/repository"
)

// StoryService is the navigation engine: it moves a save's cursor through the
// story graph, resolves choices and walks the dialogue cursor. Operations that
// legitimately have no result (GoBack with nothing to undo, GoForward on a
// dead end, exhausted dialogue) return (nil, nil); genuine faults return
// models.ErrNotFound, models.ErrInvalidChoice or models.ErrTransactionFailed.
type StoryService interface {
	GetCurrentNode(ctx context.Context, saveID uuid.UUID) (*models.FullNodeView, error)
	NavigateToNode(ctx context.Context, saveID uuid.UUID, targetNodeID int64) (*models.FullNodeView, error)
	GoBack(ctx context.Context, saveID uuid.UUID) (*models.FullNodeView, error)
	GoForward(ctx context.Context, saveID uuid.UUID) (*models.FullNodeView, error)
	MakeChoice(ctx context.Context, saveID uuid.UUID, choiceID int64) (*models.FullNodeView, error)
	GetAvailableChoices(ctx context.Context, saveID uuid.UUID) ([]models.ChoiceView, error)
	GetNextDialogue(ctx context.Context, saveID uuid.UUID) (*models.DialogueView, error)
	SkipToLastDialogue(ctx context.Context, saveID uuid.UUID) (*models.DialogueView, error)
	IsDialogueComplete(ctx context.Context, saveID uuid.UUID) (bool, error)
	GetVisitedNodes(ctx context.Context, saveID uuid.UUID) ([]int64, error)
	HasVisitedNode(ctx context.Context, saveID uuid.UUID, nodeID int64) (bool, error)
}

type storyServiceImpl struct {
	storyRepo     repository.StoryRepository
	saveRepo      repository.GameSaveRepository
	characterRepo repository.PlayerCharacterRepository
	tx            TxRunner
	db            repository.DBTX // pool, for side-effect-free reads
	logger        *zap.Logger
}

// NewStoryService creates the navigation engine.
func NewStoryService(
	storyRepo repository.StoryRepository,
	saveRepo repository.GameSaveRepository,
	characterRepo repository.PlayerCharacterRepository,
	tx TxRunner,
	db repository.DBTX,
	logger *zap.Logger,
) StoryService {
	return &storyServiceImpl{
		storyRepo:     storyRepo,
		saveRepo:      saveRepo,
		characterRepo: characterRepo,
		tx:            tx,
		db:            db,
		logger:        logger.Named("StoryService"),
	}
}

// advanceToNode is the single mutation primitive all navigation routes
// through. It records the node the player is leaving from (unless it already
// sits at the history tail), moves the cursor and resets the dialogue index.
// It never touches LastChoiceID: callers decide whether the transition is the
// product of a choice. Not transactional; public entry points own the
// transaction.
func (s *storyServiceImpl) advanceToNode(save *models.GameSave, targetNodeID int64) {
	save.PushVisited(save.CurrentStoryNodeID)
	save.CurrentStoryNodeID = targetNodeID
	save.CurrentDialogueIdx = 0
}

// resolveNodeView loads a node's full content: ordered dialogues joined with
// speaker info, plus outgoing choices.
func (s *storyServiceImpl) resolveNodeView(ctx context.Context, q repository.DBTX, nodeID int64) (*models.FullNodeView, error) {
	node, err := s.storyRepo.GetNode(ctx, q, nodeID)
	if err != nil {
		return nil, err
	}
	dialogues, err := s.storyRepo.ListDialoguesByNode(ctx, q, nodeID)
	if err != nil {
		return nil, err
	}
	choices, err := s.storyRepo.ListChoicesByNode(ctx, q, nodeID)
	if err != nil {
		return nil, err
	}

	characterIDs := make([]int64, 0, len(dialogues))
	for _, d := range dialogues {
		if d.CharacterID != nil {
			characterIDs = append(characterIDs, *d.CharacterID)
		}
	}
	characters, err := s.storyRepo.GetCharacters(ctx, q, characterIDs)
	if err != nil {
		return nil, err
	}

	view := &models.FullNodeView{
		ID:            node.ID,
		Title:         node.Title,
		Description:   node.Description,
		BackgroundURL: node.BackgroundURL,
		AudioURL:      node.AudioURL,
		Dialogues:     make([]models.DialogueView, 0, len(dialogues)),
		Choices:       make([]models.ChoiceView, 0, len(choices)),
	}
	for _, d := range dialogues {
		view.Dialogues = append(view.Dialogues, dialogueView(d, characters))
	}
	for _, c := range choices {
		view.Choices = append(view.Choices, choiceView(c))
	}
	return view, nil
}

func dialogueView(d models.Dialogue, characters map[int64]models.Character) models.DialogueView {
	dv := models.DialogueView{
		ID:           d.ID,
		Order:        d.Order,
		Text:         d.Text,
		HealthEffect: d.HealthEffect,
	}
	if d.CharacterID != nil {
		if c, ok := characters[*d.CharacterID]; ok {
			dv.Character = &models.CharacterView{ID: c.ID, Name: c.Name, AvatarURL: c.AvatarURL}
		}
	}
	return dv
}

func choiceView(c models.Choice) models.ChoiceView {
	return models.ChoiceView{
		ID:              c.ID,
		Text:            c.Text,
		NextStoryNodeID: c.NextStoryNodeID,
		HealthDelta:     c.HealthDelta,
		AudioURL:        c.AudioURL,
	}
}

// applyHealth mutates the save's health (clamped at 0) and refreshes the
// player character mirror in the same unit of work.
func (s *storyServiceImpl) applyHealth(ctx context.Context, q repository.DBTX, save *models.GameSave, delta int) error {
	save.ApplyHealthDelta(delta)
	return s.characterRepo.UpdateHealth(ctx, q, save.PlayerCharacterID, save.Health)
}

// GetCurrentNode resolves the save's current position. Side-effect-free.
func (s *storyServiceImpl) GetCurrentNode(ctx context.Context, saveID uuid.UUID) (*models.FullNodeView, error) {
	save, err := s.saveRepo.GetByID(ctx, s.db, saveID)
	if err != nil {
		return nil, err
	}
	return s.resolveNodeView(ctx, s.db, save.CurrentStoryNodeID)
}

// NavigateToNode is raw navigation: the transition is not the product of a
// choice, so LastChoiceID is cleared and the move is not reversible by GoBack.
func (s *storyServiceImpl) NavigateToNode(ctx context.Context, saveID uuid.UUID, targetNodeID int64) (*models.FullNodeView, error) {
	log := s.logger.With(zap.String("saveID", saveID.String()), zap.Int64("targetNodeID", targetNodeID))

	var view *models.FullNodeView
	err := s.tx.WithTx(ctx, func(q repository.DBTX) error {
		save, err := s.saveRepo.GetByID(ctx, q, saveID)
		if err != nil {
			return err
		}
		// Target must exist before any mutation happens.
		if _, err := s.storyRepo.GetNode(ctx, q, targetNodeID); err != nil {
			return err
		}

		save.LastChoiceID = nil
		s.advanceToNode(save, targetNodeID)
		if err := s.saveRepo.Update(ctx, q, save); err != nil {
			return err
		}

		view, err = s.resolveNodeView(ctx, q, targetNodeID)
		return err
	})
	if err != nil {
		return nil, err
	}
	log.Debug("Navigated to node")
	return view, nil
}

// GoBack undoes the last choice-made transition. Returns (nil, nil) when there
// is no recorded choice to go back from.
func (s *storyServiceImpl) GoBack(ctx context.Context, saveID uuid.UUID) (*models.FullNodeView, error) {
	log := s.logger.With(zap.String("saveID", saveID.String()))

	var view *models.FullNodeView
	err := s.tx.WithTx(ctx, func(q repository.DBTX) error {
		save, err := s.saveRepo.GetByID(ctx, q, saveID)
		if err != nil {
			return err
		}
		if save.LastChoiceID == nil {
			// Legitimate terminal state: at the root or after a prior GoBack.
			return nil
		}

		choice, err := s.storyRepo.GetChoice(ctx, q, *save.LastChoiceID)
		if err != nil {
			return err
		}

		// The destination is the node the choice was made from. Going back is
		// not itself a forward visit: no history append, and the tail entry is
		// consumed if it is the node we return to.
		dest := choice.StoryNodeID
		if n := len(save.VisitedNodeIDs); n > 0 && save.VisitedNodeIDs[n-1] == dest {
			save.VisitedNodeIDs = save.VisitedNodeIDs[:n-1]
		}
		save.LastChoiceID = nil
		save.CurrentStoryNodeID = dest
		save.CurrentDialogueIdx = 0
		if err := s.saveRepo.Update(ctx, q, save); err != nil {
			return err
		}

		view, err = s.resolveNodeView(ctx, q, dest)
		return err
	})
	if err != nil {
		return nil, err
	}
	if view == nil {
		log.Debug("GoBack with no recorded choice")
		return nil, nil
	}
	log.Debug("Went back to choice source node")
	return view, nil
}

// GoForward advances along the first outgoing choice (store enumeration
// order, ORDER BY id). Returns (nil, nil) when the current node has no
// outgoing choices. The picked edge is recorded as LastChoiceID, so GoForward
// is reversible by GoBack.
func (s *storyServiceImpl) GoForward(ctx context.Context, saveID uuid.UUID) (*models.FullNodeView, error) {
	log := s.logger.With(zap.String("saveID", saveID.String()))

	var view *models.FullNodeView
	err := s.tx.WithTx(ctx, func(q repository.DBTX) error {
		save, err := s.saveRepo.GetByID(ctx, q, saveID)
		if err != nil {
			return err
		}
		choices, err := s.storyRepo.ListChoicesByNode(ctx, q, save.CurrentStoryNodeID)
		if err != nil {
			return err
		}
		if len(choices) == 0 {
			return nil
		}

		first := choices[0]
		save.LastChoiceID = &first.ID
		s.advanceToNode(save, first.NextStoryNodeID)
		if err := s.saveRepo.Update(ctx, q, save); err != nil {
			return err
		}

		view, err = s.resolveNodeView(ctx, q, first.NextStoryNodeID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if view == nil {
		log.Debug("GoForward on a node with no outgoing choices")
		return nil, nil
	}
	return view, nil
}

// MakeChoice validates the chosen edge against the save's current node,
// records it, advances, and applies its health delta - all in one transaction.
func (s *storyServiceImpl) MakeChoice(ctx context.Context, saveID uuid.UUID, choiceID int64) (*models.FullNodeView, error) {
	log := s.logger.With(zap.String("saveID", saveID.String()), zap.Int64("choiceID", choiceID))

	var view *models.FullNodeView
	err := s.tx.WithTx(ctx, func(q repository.DBTX) error {
		save, err := s.saveRepo.GetByID(ctx, q, saveID)
		if err != nil {
			return err
		}
		choice, err := s.storyRepo.GetChoice(ctx, q, choiceID)
		if err != nil {
			return err
		}
		if choice.StoryNodeID != save.CurrentStoryNodeID {
			log.Warn("Choice does not belong to the current node",
				zap.Int64("choiceSourceNodeID", choice.StoryNodeID),
				zap.Int64("currentNodeID", save.CurrentStoryNodeID))
			return models.ErrInvalidChoice
		}

		// Record the edge before advancing so GoBack can recover the source.
		save.LastChoiceID = &choice.ID
		if err := s.saveRepo.Update(ctx, q, save); err != nil {
			return err
		}

		s.advanceToNode(save, choice.NextStoryNodeID)
		if choice.HealthDelta != nil {
			if err := s.applyHealth(ctx, q, save, *choice.HealthDelta); err != nil {
				return err
			}
		}
		if err := s.saveRepo.Update(ctx, q, save); err != nil {
			return err
		}

		view, err = s.resolveNodeView(ctx, q, choice.NextStoryNodeID)
		return err
	})
	if err != nil {
		return nil, err
	}
	log.Info("Choice applied")
	return view, nil
}

// GetAvailableChoices lists the outgoing edges of the save's current node.
func (s *storyServiceImpl) GetAvailableChoices(ctx context.Context, saveID uuid.UUID) ([]models.ChoiceView, error) {
	save, err := s.saveRepo.GetByID(ctx, s.db, saveID)
	if err != nil {
		return nil, err
	}
	choices, err := s.storyRepo.ListChoicesByNode(ctx, s.db, save.CurrentStoryNodeID)
	if err != nil {
		return nil, err
	}
	views := make([]models.ChoiceView, 0, len(choices))
	for _, c := range choices {
		views = append(views, choiceView(c))
	}
	return views, nil
}

// GetNextDialogue returns the dialogue line under the cursor and advances the
// cursor by one. Returns (nil, nil) when the node's dialogue is exhausted. A
// health effect on the consumed line is applied in the same transaction.
func (s *storyServiceImpl) GetNextDialogue(ctx context.Context, saveID uuid.UUID) (*models.DialogueView, error) {
	var view *models.DialogueView
	err := s.tx.WithTx(ctx, func(q repository.DBTX) error {
		save, err := s.saveRepo.GetByID(ctx, q, saveID)
		if err != nil {
			return err
		}
		dialogues, err := s.storyRepo.ListDialoguesByNode(ctx, q, save.CurrentStoryNodeID)
		if err != nil {
			return err
		}
		if save.CurrentDialogueIdx >= len(dialogues) {
			return nil
		}

		current := dialogues[save.CurrentDialogueIdx]
		save.CurrentDialogueIdx++
		if current.HealthEffect != nil {
			if err := s.applyHealth(ctx, q, save, *current.HealthEffect); err != nil {
				return err
			}
		}
		if err := s.saveRepo.Update(ctx, q, save); err != nil {
			return err
		}

		view, err = s.singleDialogueView(ctx, q, current)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// SkipToLastDialogue fast-forwards the cursor past the node's dialogue,
// applying the health effects of every skipped line, and returns the final
// line. Returns (nil, nil) when the node has no dialogue.
func (s *storyServiceImpl) SkipToLastDialogue(ctx context.Context, saveID uuid.UUID) (*models.DialogueView, error) {
	var view *models.DialogueView
	err := s.tx.WithTx(ctx, func(q repository.DBTX) error {
		save, err := s.saveRepo.GetByID(ctx, q, saveID)
		if err != nil {
			return err
		}
		dialogues, err := s.storyRepo.ListDialoguesByNode(ctx, q, save.CurrentStoryNodeID)
		if err != nil {
			return err
		}
		if len(dialogues) == 0 {
			return nil
		}

		// Skipping is not a way to dodge damage: effects of every line the
		// cursor jumps over (final line included) still land.
		total := 0
		for i := save.CurrentDialogueIdx; i < len(dialogues); i++ {
			if dialogues[i].HealthEffect != nil {
				total += *dialogues[i].HealthEffect
			}
		}
		save.CurrentDialogueIdx = len(dialogues)
		if total != 0 {
			if err := s.applyHealth(ctx, q, save, total); err != nil {
				return err
			}
		}
		if err := s.saveRepo.Update(ctx, q, save); err != nil {
			return err
		}

		view, err = s.singleDialogueView(ctx, q, dialogues[len(dialogues)-1])
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// IsDialogueComplete reports whether the cursor has consumed every line of the
// current node.
func (s *storyServiceImpl) IsDialogueComplete(ctx context.Context, saveID uuid.UUID) (bool, error) {
	save, err := s.saveRepo.GetByID(ctx, s.db, saveID)
	if err != nil {
		return false, err
	}
	dialogues, err := s.storyRepo.ListDialoguesByNode(ctx, s.db, save.CurrentStoryNodeID)
	if err != nil {
		return false, err
	}
	return save.CurrentDialogueIdx >= len(dialogues), nil
}

// GetVisitedNodes returns the save's visited history, oldest first.
func (s *storyServiceImpl) GetVisitedNodes(ctx context.Context, saveID uuid.UUID) ([]int64, error) {
	save, err := s.saveRepo.GetByID(ctx, s.db, saveID)
	if err != nil {
		return nil, err
	}
	if save.VisitedNodeIDs == nil {
		return []int64{}, nil
	}
	return save.VisitedNodeIDs, nil
}

// HasVisitedNode reports whether nodeID appears in the visited history.
func (s *storyServiceImpl) HasVisitedNode(ctx context.Context, saveID uuid.UUID, nodeID int64) (bool, error) {
	save, err := s.saveRepo.GetByID(ctx, s.db, saveID)
	if err != nil {
		return false, err
	}
	return save.HasVisited(nodeID), nil
}

func (s *storyServiceImpl) singleDialogueView(ctx context.Context, q repository.DBTX, d models.Dialogue) (*models.DialogueView, error) {
	var characters map[int64]models.Character
	if d.CharacterID != nil {
		var err error
		characters, err = s.storyRepo.GetCharacters(ctx, q, []int64{*d.CharacterID})
		if err != nil {
			return nil, err
		}
	}
	dv := dialogueView(d, characters)
	return &dv, nil
}
