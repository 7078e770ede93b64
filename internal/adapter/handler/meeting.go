package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes-tracker/errors"
	meetingdto "github.com/johnquangdev/meeting-notes-tracker/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-notes-tracker/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-notes-tracker/internal/usecase/meeting"
)

// Meeting handles meeting HTTP requests
type Meeting struct {
	meetingService meeting.Service
	logger         *zap.Logger
}

// NewMeeting creates a new meeting handler
func NewMeeting(meetingService meeting.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		logger:         logger,
	}
}

// Create creates a pending meeting record
// POST /v1/meetings
func (h *Meeting) Create(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	var req meetingdto.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	m, err := h.meetingService.CreateMeeting(ctx, meeting.CreateMeetingInput{
		Notes:        req.Notes,
		MeetingType:  req.MeetingType,
		Participants: req.Participants,
		OwnerID:      userID,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, meetingdto.NewMeetingResponse(m))
}

// Process runs the analysis pipeline for a meeting
// POST /v1/meetings/:id/process
func (h *Meeting) Process(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid meeting ID"))
	}

	var req meetingdto.ProcessMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid request body"))
	}

	result, err := h.meetingService.ProcessMeeting(ctx, meetingID, userID, req.Notes)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, &meetingdto.ProcessResultResponse{
		MeetingID:    meetingID.String(),
		Summary:      result.Summary,
		KeyDecisions: result.KeyDecisions,
		ActionItems:  meetingdto.NewActionItemResponses(result.ActionItems),
	})
}

// List returns all meetings owned by the caller
// GET /v1/meetings
func (h *Meeting) List(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	meetings, err := h.meetingService.ListMeetings(ctx, userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, meetingdto.NewMeetingResponses(meetings))
}

// Delete deletes a meeting and its action items
// DELETE /v1/meetings/:id
func (h *Meeting) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid meeting ID"))
	}

	if err := h.meetingService.DeleteMeeting(ctx, meetingID, userID); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, map[string]string{
		"meeting_id": meetingID.String(),
	})
}
