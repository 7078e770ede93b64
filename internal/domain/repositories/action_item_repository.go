package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/meeting-notes-tracker/internal/domain/entities"
)

// ActionItemRepository defines the interface for action item data access
type ActionItemRepository interface {
	// CreateBatch inserts a batch of new action items
	CreateBatch(ctx context.Context, items []*entities.ActionItem) error

	// FindByMeetingID returns all action items belonging to a meeting
	FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error)

	// FindByIDAndOwner finds an action item by ID scoped to its owner
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entities.ActionItem, error)

	// ListByOwner returns all action items owned by the given user
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.ActionItem, error)

	// UpdateFields updates named fields of an action item scoped to its
	// owner and returns the number of matched rows
	UpdateFields(ctx context.Context, id, ownerID uuid.UUID, fields map[string]interface{}) (int64, error)

	// DeleteByIDs deletes action items by primary key
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) error

	// DeleteByMeetingID deletes all action items belonging to a meeting
	DeleteByMeetingID(ctx context.Context, meetingID uuid.UUID) error
}
