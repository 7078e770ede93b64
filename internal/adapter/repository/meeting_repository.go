package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-notes-tracker/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes-tracker/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface using GORM
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// Create creates a new meeting
func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	if err := r.db.WithContext(ctx).Create(meeting).Error; err != nil {
		return fmt.Errorf("failed to create meeting: %w", err)
	}
	return nil
}

// FindByIDAndOwner finds a meeting by ID scoped to its owner
func (r *meetingRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&meeting).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to find meeting: %w", err)
	}
	return &meeting, nil
}

// ListByOwner returns all meetings owned by the given user
func (r *meetingRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&meetings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, nil
}

// UpdateAnalysis replaces summary, key decisions and the action item snapshot
func (r *meetingRepository) UpdateAnalysis(ctx context.Context, id uuid.UUID, summary string, keyDecisions []string, snapshot []*entities.ActionItem) error {
	if keyDecisions == nil {
		keyDecisions = []string{}
	}
	if snapshot == nil {
		snapshot = []*entities.ActionItem{}
	}

	decisionsJSON, err := json.Marshal(keyDecisions)
	if err != nil {
		return fmt.Errorf("failed to encode key decisions: %w", err)
	}
	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode action item snapshot: %w", err)
	}

	result := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"summary":       summary,
			"key_decisions": decisionsJSON,
			"action_items":  snapshotJSON,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update meeting analysis: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.ErrMeetingNotFound
	}
	return nil
}

// Delete deletes a meeting owned by the given user
func (r *meetingRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&entities.Meeting{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete meeting: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.ErrMeetingNotFound
	}
	return nil
}
