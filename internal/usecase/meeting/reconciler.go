package meeting

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-notes-tracker/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes-tracker/internal/usecase/extract"
	"github.com/johnquangdev/meeting-notes-tracker/pkg/textutil"
)

// ActionItemUpdate carries the fields a reconciliation run may change on an
// existing row. Task and status are deliberately absent: task is the join
// key and status belongs to the user's workflow.
type ActionItemUpdate struct {
	ID       uuid.UUID
	Owner    string
	Priority string
	Deadline string
}

// Diff is the result of reconciling a fresh extraction against the stored
// action items of one meeting.
type Diff struct {
	ToInsert []*entities.ActionItem
	ToUpdate []ActionItemUpdate
	ToDelete []uuid.UUID

	// Snapshot is the post-reconciliation item list in fresh order, used as
	// the meeting's denormalized display copy.
	Snapshot []*entities.ActionItem
}

// Reconcile computes a three-way diff between the freshly extracted items and
// the previously stored ones, keyed by case-folded canonical task text: a
// full outer join where matched rows become updates (identity and status
// preserved), fresh-only rows become inserts and stale-only rows become
// deletes. A fresh item with an empty key is an invariant violation and
// aborts the run. Duplicate fresh keys keep the first occurrence.
func Reconcile(meetingID, ownerID uuid.UUID, fresh []extract.ActionItemPayload, prior []*entities.ActionItem) (*Diff, error) {
	lookup := make(map[string]*entities.ActionItem, len(prior))
	for _, p := range prior {
		lookup[textutil.Fold(p.Task)] = p
	}

	diff := &Diff{
		ToInsert: []*entities.ActionItem{},
		ToUpdate: []ActionItemUpdate{},
		ToDelete: []uuid.UUID{},
		Snapshot: []*entities.ActionItem{},
	}

	claimed := make(map[string]bool, len(fresh))
	for _, f := range fresh {
		key := textutil.Fold(f.Task)
		if key == "" {
			return nil, fmt.Errorf("reconcile: fresh item with empty task key")
		}
		if claimed[key] {
			continue
		}
		claimed[key] = true

		if existing, ok := lookup[key]; ok {
			delete(lookup, key)
			diff.ToUpdate = append(diff.ToUpdate, ActionItemUpdate{
				ID:       existing.ID,
				Owner:    f.Owner,
				Priority: f.Priority,
				Deadline: f.Deadline,
			})

			updated := *existing
			updated.Owner = f.Owner
			updated.Priority = f.Priority
			updated.Deadline = f.Deadline
			diff.Snapshot = append(diff.Snapshot, &updated)
			continue
		}

		item := entities.NewActionItem(meetingID, ownerID, f.Task)
		item.Owner = f.Owner
		item.Priority = f.Priority
		item.Deadline = f.Deadline
		diff.ToInsert = append(diff.ToInsert, item)
		diff.Snapshot = append(diff.Snapshot, item)
	}

	// Unclaimed prior rows are stale; iterate the original slice to keep
	// deletion order deterministic.
	for _, p := range prior {
		if _, stale := lookup[textutil.Fold(p.Task)]; stale {
			diff.ToDelete = append(diff.ToDelete, p.ID)
		}
	}

	return diff, nil
}
