package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/meeting-notes-tracker/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create creates a new meeting
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByIDAndOwner finds a meeting by ID scoped to its owner
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entities.Meeting, error)

	// ListByOwner returns all meetings owned by the given user
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Meeting, error)

	// UpdateAnalysis replaces summary, key decisions and the action item
	// snapshot of a meeting in one update
	UpdateAnalysis(ctx context.Context, id uuid.UUID, summary string, keyDecisions []string, snapshot []*entities.ActionItem) error

	// Delete deletes a meeting owned by the given user
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}
