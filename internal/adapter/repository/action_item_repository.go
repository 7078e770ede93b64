package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-notes-tracker/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes-tracker/internal/domain/repositories"
)

// actionItemRepository implements the ActionItemRepository interface using GORM
type actionItemRepository struct {
	db *gorm.DB
}

// NewActionItemRepository creates a new action item repository
func NewActionItemRepository(db *gorm.DB) repositories.ActionItemRepository {
	return &actionItemRepository{db: db}
}

// CreateBatch inserts a batch of new action items
func (r *actionItemRepository) CreateBatch(ctx context.Context, items []*entities.ActionItem) error {
	if len(items) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(items).Error; err != nil {
		return fmt.Errorf("failed to create action items: %w", err)
	}
	return nil
}

// FindByMeetingID returns all action items belonging to a meeting
func (r *actionItemRepository) FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error) {
	var items []*entities.ActionItem
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find action items: %w", err)
	}
	return items, nil
}

// FindByIDAndOwner finds an action item by ID scoped to its owner
func (r *actionItemRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entities.ActionItem, error) {
	var item entities.ActionItem
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&item).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrActionItemNotFound
		}
		return nil, fmt.Errorf("failed to find action item: %w", err)
	}
	return &item, nil
}

// ListByOwner returns all action items owned by the given user
func (r *actionItemRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.ActionItem, error) {
	var items []*entities.ActionItem
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list action items: %w", err)
	}
	return items, nil
}

// UpdateFields updates named fields of an action item scoped to its owner
func (r *actionItemRepository) UpdateFields(ctx context.Context, id, ownerID uuid.UUID, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.ActionItem{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(fields)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update action item: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteByIDs deletes action items by primary key
func (r *actionItemRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&entities.ActionItem{}).Error; err != nil {
		return fmt.Errorf("failed to delete action items: %w", err)
	}
	return nil
}

// DeleteByMeetingID deletes all action items belonging to a meeting
func (r *actionItemRepository) DeleteByMeetingID(ctx context.Context, meetingID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Delete(&entities.ActionItem{}).Error; err != nil {
		return fmt.Errorf("failed to delete action items by meeting: %w", err)
	}
	return nil
}
