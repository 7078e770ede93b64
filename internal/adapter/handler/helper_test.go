package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes-tracker/errors"
)

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandleError_AppError(t *testing.T) {
	c, rec := newTestContext(t)

	err := HandleError(zap.NewNop(), c, errors.ErrMeetingNotFound("m-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body errs
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body.Message != "Meeting not found" {
		t.Fatalf("unexpected message %q", body.Message)
	}
	if body.Details["meeting_id"] != "m-1" {
		t.Fatalf("expected meeting_id detail, got %v", body.Details)
	}
}

func TestHandleError_ConflictForProcessingInProgress(t *testing.T) {
	c, rec := newTestContext(t)

	if err := HandleError(zap.NewNop(), c, errors.ErrProcessingInProgress("m-1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestHandleError_PlainError(t *testing.T) {
	c, rec := newTestContext(t)

	if err := HandleError(zap.NewNop(), c, fmt.Errorf("boom")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestHandleSuccess(t *testing.T) {
	c, rec := newTestContext(t)

	if err := HandleSuccess(zap.NewNop(), c, http.StatusCreated, map[string]string{"id": "1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var body success
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body.Message != "success" {
		t.Fatalf("unexpected message %q", body.Message)
	}
}
