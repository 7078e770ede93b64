package meeting

// CreateMeetingRequest represents the request to create a meeting record
type CreateMeetingRequest struct {
	Notes        string   `json:"notes" validate:"required"`
	MeetingType  string   `json:"meeting_type" validate:"omitempty,max=100"`
	Participants []string `json:"participants" validate:"omitempty,dive,min=1"`
}

// ProcessMeetingRequest represents the request to run analysis on a meeting.
// Notes override the stored notes for this run when provided.
type ProcessMeetingRequest struct {
	Notes string `json:"notes"`
}
