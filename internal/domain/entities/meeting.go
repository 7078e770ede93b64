package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Meeting represents a meeting notes record. Notes are immutable after
// creation; summary, key decisions and the action item snapshot are replaced
// wholesale on every processing run.
type Meeting struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Notes        string         `json:"notes" gorm:"type:text;not null"`
	MeetingType  string         `json:"meeting_type" gorm:"type:varchar(100)"`
	Participants datatypes.JSON `json:"participants" gorm:"type:jsonb;default:'[]'"`
	Summary      *string        `json:"summary" gorm:"type:text"`
	KeyDecisions datatypes.JSON `json:"key_decisions" gorm:"type:jsonb;default:'[]'"`
	ActionItems  datatypes.JSON `json:"action_items" gorm:"type:jsonb;default:'[]'"`
	OwnerID      uuid.UUID      `json:"owner_id" gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// NewMeeting creates a pending meeting record. Summary stays null and the
// decision/action lists stay empty until the first processing run.
func NewMeeting(notes, meetingType string, participants []string, ownerID uuid.UUID) *Meeting {
	if participants == nil {
		participants = []string{}
	}
	participantsJSON, _ := json.Marshal(participants)

	now := time.Now()
	return &Meeting{
		ID:           uuid.New(),
		Notes:        notes,
		MeetingType:  meetingType,
		Participants: participantsJSON,
		KeyDecisions: datatypes.JSON([]byte("[]")),
		ActionItems:  datatypes.JSON([]byte("[]")),
		OwnerID:      ownerID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// DecodedKeyDecisions unmarshals the stored key decision list.
func (m *Meeting) DecodedKeyDecisions() []string {
	decisions := []string{}
	if len(m.KeyDecisions) > 0 {
		_ = json.Unmarshal(m.KeyDecisions, &decisions)
	}
	return decisions
}
