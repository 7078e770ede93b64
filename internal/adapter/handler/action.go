package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes-tracker/errors"
	actiondto "github.com/johnquangdev/meeting-notes-tracker/internal/adapter/dto/action"
	meetingdto "github.com/johnquangdev/meeting-notes-tracker/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-notes-tracker/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-notes-tracker/internal/usecase/action"
)

// Action handles action item HTTP requests
type Action struct {
	actionService action.Service
	logger        *zap.Logger
}

// NewAction creates a new action item handler
func NewAction(actionService action.Service, logger *zap.Logger) *Action {
	return &Action{
		actionService: actionService,
		logger:        logger,
	}
}

// Update applies a partial update to an action item
// PATCH /v1/actions/:id
func (h *Action) Update(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	actionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid action item ID"))
	}

	var req actiondto.UpdateActionItemRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	err = h.actionService.UpdateActionItem(ctx, actionID, userID, action.UpdateActionItemInput{
		Task:     req.Task,
		Owner:    req.Owner,
		Priority: req.Priority,
		Deadline: req.Deadline,
		Status:   req.Status,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, map[string]string{
		"action_id": actionID.String(),
	})
}

// List returns all action items owned by the caller
// GET /v1/actions
func (h *Action) List(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	items, err := h.actionService.ListActionItems(ctx, userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, meetingdto.NewActionItemResponses(items))
}
