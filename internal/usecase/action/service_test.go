package action

import (
	"context"
	stdErrors "errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-notes-tracker/errors"
	"github.com/johnquangdev/meeting-notes-tracker/internal/domain/entities"
)

// fakeActionRepo records UpdateFields calls and serves a fixed item set
type fakeActionRepo struct {
	items      map[uuid.UUID]*entities.ActionItem
	lastFields map[string]interface{}
}

func newFakeActionRepo() *fakeActionRepo {
	return &fakeActionRepo{items: make(map[uuid.UUID]*entities.ActionItem)}
}

func (r *fakeActionRepo) CreateBatch(ctx context.Context, items []*entities.ActionItem) error {
	for _, item := range items {
		r.items[item.ID] = item
	}
	return nil
}

func (r *fakeActionRepo) FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error) {
	return nil, nil
}

func (r *fakeActionRepo) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entities.ActionItem, error) {
	item, ok := r.items[id]
	if !ok || item.OwnerID != ownerID {
		return nil, entities.ErrActionItemNotFound
	}
	return item, nil
}

func (r *fakeActionRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.ActionItem, error) {
	var out []*entities.ActionItem
	for _, item := range r.items {
		if item.OwnerID == ownerID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeActionRepo) UpdateFields(ctx context.Context, id, ownerID uuid.UUID, fields map[string]interface{}) (int64, error) {
	item, ok := r.items[id]
	if !ok || item.OwnerID != ownerID {
		return 0, nil
	}
	r.lastFields = fields
	return 1, nil
}

func (r *fakeActionRepo) DeleteByIDs(ctx context.Context, ids []uuid.UUID) error { return nil }

func (r *fakeActionRepo) DeleteByMeetingID(ctx context.Context, meetingID uuid.UUID) error {
	return nil
}

func strPtr(s string) *string { return &s }

func TestUpdateActionItem_NormalizesFields(t *testing.T) {
	repo := newFakeActionRepo()
	ownerID := uuid.New()
	item := entities.NewActionItem(uuid.New(), ownerID, "old task")
	repo.items[item.ID] = item

	svc := NewActionService(repo, zap.NewNop())

	err := svc.UpdateActionItem(context.Background(), item.ID, ownerID, UpdateActionItemInput{
		Task:     strPtr("  new   task "),
		Owner:    strPtr("   "),
		Priority: strPtr("urgent"),
		Status:   strPtr("Done"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.lastFields["task"] != "new task" {
		t.Fatalf("task not canonicalized: %v", repo.lastFields["task"])
	}
	if repo.lastFields["owner"] != entities.OwnerUnassigned {
		t.Fatalf("blank owner must become Unassigned: %v", repo.lastFields["owner"])
	}
	if repo.lastFields["priority"] != entities.PriorityMedium {
		t.Fatalf("unknown priority must become Medium: %v", repo.lastFields["priority"])
	}
	if repo.lastFields["status"] != "Done" {
		t.Fatalf("status not applied: %v", repo.lastFields["status"])
	}
}

func TestUpdateActionItem_RejectsBadDeadline(t *testing.T) {
	repo := newFakeActionRepo()
	ownerID := uuid.New()
	item := entities.NewActionItem(uuid.New(), ownerID, "task")
	repo.items[item.ID] = item

	svc := NewActionService(repo, zap.NewNop())

	err := svc.UpdateActionItem(context.Background(), item.ID, ownerID, UpdateActionItemInput{
		Deadline: strPtr("2024-02-15"),
	})
	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_INVALID_ARGUMENT {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestUpdateActionItem_AcceptsWeekdayAndEmptyDeadline(t *testing.T) {
	repo := newFakeActionRepo()
	ownerID := uuid.New()
	item := entities.NewActionItem(uuid.New(), ownerID, "task")
	repo.items[item.ID] = item

	svc := NewActionService(repo, zap.NewNop())

	if err := svc.UpdateActionItem(context.Background(), item.ID, ownerID, UpdateActionItemInput{
		Deadline: strPtr("Friday"),
	}); err != nil {
		t.Fatalf("weekday deadline rejected: %v", err)
	}
	if err := svc.UpdateActionItem(context.Background(), item.ID, ownerID, UpdateActionItemInput{
		Deadline: strPtr(""),
	}); err != nil {
		t.Fatalf("empty deadline rejected: %v", err)
	}
}

func TestUpdateActionItem_NoFields(t *testing.T) {
	svc := NewActionService(newFakeActionRepo(), zap.NewNop())

	err := svc.UpdateActionItem(context.Background(), uuid.New(), uuid.New(), UpdateActionItemInput{})
	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_INVALID_ARGUMENT {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestUpdateActionItem_NotFound(t *testing.T) {
	svc := NewActionService(newFakeActionRepo(), zap.NewNop())

	err := svc.UpdateActionItem(context.Background(), uuid.New(), uuid.New(), UpdateActionItemInput{
		Status: strPtr("Done"),
	})
	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_NOT_FOUND {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateActionItem_WrongOwnerLooksLikeNotFound(t *testing.T) {
	repo := newFakeActionRepo()
	item := entities.NewActionItem(uuid.New(), uuid.New(), "task")
	repo.items[item.ID] = item

	svc := NewActionService(repo, zap.NewNop())

	err := svc.UpdateActionItem(context.Background(), item.ID, uuid.New(), UpdateActionItemInput{
		Status: strPtr("Done"),
	})
	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_NOT_FOUND {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateActionItem_EmptyTaskRejected(t *testing.T) {
	svc := NewActionService(newFakeActionRepo(), zap.NewNop())

	err := svc.UpdateActionItem(context.Background(), uuid.New(), uuid.New(), UpdateActionItemInput{
		Task: strPtr("   "),
	})
	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_INVALID_ARGUMENT {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
