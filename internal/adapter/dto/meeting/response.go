package meeting

import (
	"encoding/json"
	"time"

	"github.com/johnquangdev/meeting-notes-tracker/internal/domain/entities"
)

// ActionItemResponse represents an action item in responses
type ActionItemResponse struct {
	ID        string    `json:"id"`
	MeetingID string    `json:"meeting_id"`
	Task      string    `json:"task"`
	Owner     string    `json:"owner"`
	Deadline  string    `json:"deadline"`
	Priority  string    `json:"priority"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MeetingResponse represents a meeting record in responses
type MeetingResponse struct {
	ID           string                `json:"id"`
	Notes        string                `json:"notes"`
	MeetingType  string                `json:"meeting_type"`
	Participants []string              `json:"participants"`
	Summary      *string               `json:"summary"`
	KeyDecisions []string              `json:"key_decisions"`
	ActionItems  []*ActionItemResponse `json:"action_items"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// ProcessResultResponse represents the outcome of one analysis run
type ProcessResultResponse struct {
	MeetingID    string                `json:"meeting_id"`
	Summary      string                `json:"summary"`
	KeyDecisions []string              `json:"key_decisions"`
	ActionItems  []*ActionItemResponse `json:"action_items"`
}

// NewActionItemResponse maps an action item entity to its response shape
func NewActionItemResponse(item *entities.ActionItem) *ActionItemResponse {
	return &ActionItemResponse{
		ID:        item.ID.String(),
		MeetingID: item.MeetingID.String(),
		Task:      item.Task,
		Owner:     item.Owner,
		Deadline:  item.Deadline,
		Priority:  item.Priority,
		Status:    item.Status,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

// NewActionItemResponses maps a slice of action item entities
func NewActionItemResponses(items []*entities.ActionItem) []*ActionItemResponse {
	out := make([]*ActionItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, NewActionItemResponse(item))
	}
	return out
}

// NewMeetingResponse maps a meeting entity to its response shape
func NewMeetingResponse(m *entities.Meeting) *MeetingResponse {
	participants := []string{}
	if len(m.Participants) > 0 {
		_ = json.Unmarshal(m.Participants, &participants)
	}

	actionItems := []*ActionItemResponse{}
	if len(m.ActionItems) > 0 {
		var snapshot []*entities.ActionItem
		if json.Unmarshal(m.ActionItems, &snapshot) == nil {
			actionItems = NewActionItemResponses(snapshot)
		}
	}

	return &MeetingResponse{
		ID:           m.ID.String(),
		Notes:        m.Notes,
		MeetingType:  m.MeetingType,
		Participants: participants,
		Summary:      m.Summary,
		KeyDecisions: m.DecodedKeyDecisions(),
		ActionItems:  actionItems,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// NewMeetingResponses maps a slice of meeting entities
func NewMeetingResponses(meetings []*entities.Meeting) []*MeetingResponse {
	out := make([]*MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		out = append(out, NewMeetingResponse(m))
	}
	return out
}
