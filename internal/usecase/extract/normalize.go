package extract

import (
	"github.com/johnquangdev/meeting-notes-tracker/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes-tracker/pkg/textutil"
)

// NormalizeItems runs every parsed action item through the cleaning passes:
// task and owner are canonicalized (case preserved), ownerless items get the
// Unassigned sentinel, the deadline is verified against the source notes and
// the priority is coerced into the closed set. Items whose task canonicalizes
// to empty are dropped; they carry no usable natural key.
func NormalizeItems(sourceNotes string, items []ActionItemPayload) []ActionItemPayload {
	cleaned := make([]ActionItemPayload, 0, len(items))
	for _, item := range items {
		task := textutil.Canonicalize(item.Task)
		if task == "" {
			continue
		}

		owner := textutil.Canonicalize(item.Owner)
		if owner == "" {
			owner = entities.OwnerUnassigned
		}

		cleaned = append(cleaned, ActionItemPayload{
			Task:     task,
			Owner:    owner,
			Deadline: ExtractDeadline(item.Deadline, sourceNotes),
			Priority: NormalizePriority(item.Priority),
		})
	}
	return cleaned
}
