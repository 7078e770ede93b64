package action

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes-tracker/errors"
	"github.com/johnquangdev/meeting-notes-tracker/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes-tracker/internal/domain/repositories"
	"github.com/johnquangdev/meeting-notes-tracker/internal/usecase/extract"
	"github.com/johnquangdev/meeting-notes-tracker/pkg/textutil"
)

// UpdateActionItemInput carries the optional fields a caller may change on an
// action item. Nil fields are left untouched.
type UpdateActionItemInput struct {
	Task     *string
	Owner    *string
	Priority *string
	Deadline *string
	Status   *string
}

// Service defines the action item use case
type Service interface {
	// UpdateActionItem updates whitelisted fields of an action item owned
	// by the caller
	UpdateActionItem(ctx context.Context, actionID, ownerID uuid.UUID, input UpdateActionItemInput) error

	// ListActionItems returns all action items owned by the caller
	ListActionItems(ctx context.Context, ownerID uuid.UUID) ([]*entities.ActionItem, error)
}

type actionService struct {
	actionRepo repositories.ActionItemRepository
	logger     *zap.Logger
}

// NewActionService constructs a new action item service
func NewActionService(actionRepo repositories.ActionItemRepository, logger *zap.Logger) Service {
	return &actionService{
		actionRepo: actionRepo,
		logger:     logger,
	}
}

// UpdateActionItem updates whitelisted fields of an action item. Values pass
// through the same normalization as extraction so stored invariants hold no
// matter where a write comes from.
func (s *actionService) UpdateActionItem(ctx context.Context, actionID, ownerID uuid.UUID, input UpdateActionItemInput) error {
	fields := make(map[string]interface{})

	if input.Task != nil {
		task := textutil.Canonicalize(*input.Task)
		if task == "" {
			return errors.ErrInvalidArgument("Task must not be empty")
		}
		fields["task"] = task
	}
	if input.Owner != nil {
		owner := textutil.Canonicalize(*input.Owner)
		if owner == "" {
			owner = entities.OwnerUnassigned
		}
		fields["owner"] = owner
	}
	if input.Priority != nil {
		fields["priority"] = extract.NormalizePriority(*input.Priority)
	}
	if input.Deadline != nil {
		deadline := textutil.Canonicalize(*input.Deadline)
		if !isValidDeadline(deadline) {
			return errors.ErrInvalidArgument("Deadline must be empty or a weekday name")
		}
		fields["deadline"] = deadline
	}
	if input.Status != nil {
		fields["status"] = *input.Status
	}

	if len(fields) == 0 {
		return errors.ErrInvalidArgument("No valid fields to update")
	}

	matched, err := s.actionRepo.UpdateFields(ctx, actionID, ownerID, fields)
	if err != nil {
		return errors.ErrDBQueryFailed("update action item", err)
	}
	if matched == 0 {
		return errors.ErrActionItemNotFound(actionID.String())
	}

	s.logger.Info("action item updated",
		zap.String("action_id", actionID.String()),
		zap.Int("fields", len(fields)),
	)
	return nil
}

// ListActionItems returns all action items owned by the caller
func (s *actionService) ListActionItems(ctx context.Context, ownerID uuid.UUID) ([]*entities.ActionItem, error) {
	items, err := s.actionRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.ErrDBQueryFailed("list action items", err)
	}
	return items, nil
}

var validDeadlines = map[string]bool{
	"":          true,
	"Monday":    true,
	"Tuesday":   true,
	"Wednesday": true,
	"Thursday":  true,
	"Friday":    true,
	"Saturday":  true,
	"Sunday":    true,
}

func isValidDeadline(deadline string) bool {
	return validDeadlines[deadline]
}
