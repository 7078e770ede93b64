package meeting

import (
	"testing"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-notes-tracker/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes-tracker/internal/usecase/extract"
)

func TestReconcile_MatchedItemKeepsIdentityAndStatus(t *testing.T) {
	meetingID := uuid.New()
	ownerID := uuid.New()

	existing := entities.NewActionItem(meetingID, ownerID, "Fix the login bug")
	existing.Status = "Done"
	existing.Owner = "Priya"

	fresh := []extract.ActionItemPayload{
		{Task: "fix the LOGIN bug", Owner: "Aayush", Priority: entities.PriorityHigh, Deadline: "Monday"},
	}

	diff, err := Reconcile(meetingID, ownerID, fresh, []*entities.ActionItem{existing})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(diff.ToInsert) != 0 || len(diff.ToDelete) != 0 {
		t.Fatalf("expected pure update, got insert=%d delete=%d", len(diff.ToInsert), len(diff.ToDelete))
	}
	if len(diff.ToUpdate) != 1 {
		t.Fatalf("expected 1 update, got %d", len(diff.ToUpdate))
	}

	upd := diff.ToUpdate[0]
	if upd.ID != existing.ID {
		t.Fatalf("update lost row identity")
	}
	if upd.Owner != "Aayush" || upd.Priority != entities.PriorityHigh || upd.Deadline != "Monday" {
		t.Fatalf("unexpected update payload %+v", upd)
	}

	if len(diff.Snapshot) != 1 {
		t.Fatalf("expected 1 snapshot item, got %d", len(diff.Snapshot))
	}
	snap := diff.Snapshot[0]
	if snap.Status != "Done" {
		t.Fatalf("status must survive reconciliation, got %q", snap.Status)
	}
	if snap.Task != existing.Task {
		t.Fatalf("stored task text must survive reconciliation, got %q", snap.Task)
	}
	if snap.Owner != "Aayush" {
		t.Fatalf("snapshot should carry fresh owner, got %q", snap.Owner)
	}
}

func TestReconcile_InsertAndDelete(t *testing.T) {
	meetingID := uuid.New()
	ownerID := uuid.New()

	stale := entities.NewActionItem(meetingID, ownerID, "Update the docs")

	fresh := []extract.ActionItemPayload{
		{Task: "Deploy the fix", Owner: "Aayush", Priority: entities.PriorityMedium},
	}

	diff, err := Reconcile(meetingID, ownerID, fresh, []*entities.ActionItem{stale})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(diff.ToInsert) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(diff.ToInsert))
	}
	inserted := diff.ToInsert[0]
	if inserted.Task != "Deploy the fix" || inserted.Owner != "Aayush" {
		t.Fatalf("unexpected insert %+v", inserted)
	}
	if inserted.Status != entities.StatusPending {
		t.Fatalf("new item must start Pending, got %q", inserted.Status)
	}
	if inserted.MeetingID != meetingID || inserted.OwnerID != ownerID {
		t.Fatalf("insert has wrong ownership")
	}

	if len(diff.ToDelete) != 1 || diff.ToDelete[0] != stale.ID {
		t.Fatalf("expected stale row deleted, got %v", diff.ToDelete)
	}
}

func TestReconcile_DuplicateFreshKeysFirstWins(t *testing.T) {
	meetingID := uuid.New()
	ownerID := uuid.New()

	fresh := []extract.ActionItemPayload{
		{Task: "Fix the login bug", Owner: "Aayush", Priority: entities.PriorityHigh},
		{Task: "fix the login bug", Owner: "Priya", Priority: entities.PriorityLow},
	}

	diff, err := Reconcile(meetingID, ownerID, fresh, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(diff.ToInsert) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(diff.ToInsert))
	}
	if diff.ToInsert[0].Owner != "Aayush" {
		t.Fatalf("first occurrence should win, got owner %q", diff.ToInsert[0].Owner)
	}
}

func TestReconcile_EmptyTaskKeyFails(t *testing.T) {
	fresh := []extract.ActionItemPayload{{Task: "   "}}
	if _, err := Reconcile(uuid.New(), uuid.New(), fresh, nil); err == nil {
		t.Fatal("expected error for empty task key")
	}
}

func TestReconcile_EmptyFreshDeletesEverything(t *testing.T) {
	meetingID := uuid.New()
	ownerID := uuid.New()

	prior := []*entities.ActionItem{
		entities.NewActionItem(meetingID, ownerID, "task one"),
		entities.NewActionItem(meetingID, ownerID, "task two"),
	}

	diff, err := Reconcile(meetingID, ownerID, nil, prior)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(diff.ToDelete) != 2 {
		t.Fatalf("expected all prior rows deleted, got %d", len(diff.ToDelete))
	}
	if diff.ToDelete[0] != prior[0].ID || diff.ToDelete[1] != prior[1].ID {
		t.Fatalf("deletes must follow prior order")
	}
	if len(diff.Snapshot) != 0 {
		t.Fatalf("expected empty snapshot, got %d", len(diff.Snapshot))
	}
}
