package entities

import (
	"time"

	"github.com/google/uuid"
)

// Priority is the closed set of action item priorities.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// OwnerUnassigned is the sentinel owner for action items without a
// responsible person.
const OwnerUnassigned = "Unassigned"

// StatusPending is the workflow status assigned to every new action item.
// Status is free-form afterwards and is never touched by reprocessing.
const StatusPending = "Pending"

// ActionItem is a persisted action item row. Within one meeting the
// canonicalized task text is the natural key used for reconciliation.
type ActionItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID uuid.UUID `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Task      string    `json:"task" gorm:"type:text;not null"`
	Owner     string    `json:"owner" gorm:"type:varchar(255);not null;default:'Unassigned'"`
	Priority  string    `json:"priority" gorm:"type:varchar(10);not null;default:'Medium'"`
	Deadline  string    `json:"deadline" gorm:"type:varchar(10);not null;default:''"`
	Status    string    `json:"status" gorm:"type:varchar(50);not null;default:'Pending'"`
	OwnerID   uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for ActionItem
func (ActionItem) TableName() string {
	return "action_items"
}

// NewActionItem creates an action item with default workflow state.
func NewActionItem(meetingID, ownerID uuid.UUID, task string) *ActionItem {
	now := time.Now()
	return &ActionItem{
		ID:        uuid.New(),
		MeetingID: meetingID,
		Task:      task,
		Owner:     OwnerUnassigned,
		Priority:  PriorityMedium,
		Deadline:  "",
		Status:    StatusPending,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsValidPriority reports whether p belongs to the closed priority set.
func IsValidPriority(p string) bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}
