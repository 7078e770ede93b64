package extract

import (
	"github.com/johnquangdev/meeting-notes-tracker/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes-tracker/pkg/textutil"
)

// ConsolidateDecisions merges the model's stated decisions with decisions
// inferred from action items. Model decisions come first in model order,
// blanks dropped; for every item with a task and a real owner the phrase
// "{owner} will {task}" is appended when not already present. The result is
// deduplicated keeping first occurrence order.
func ConsolidateDecisions(modelDecisions []string, items []ActionItemPayload) []string {
	consolidated := make([]string, 0, len(modelDecisions)+len(items))
	seen := make(map[string]bool)

	for _, decision := range modelDecisions {
		decision = textutil.Canonicalize(decision)
		if decision == "" || seen[decision] {
			continue
		}
		seen[decision] = true
		consolidated = append(consolidated, decision)
	}

	for _, item := range items {
		owner := textutil.Canonicalize(item.Owner)
		task := textutil.Canonicalize(item.Task)
		// The Unassigned sentinel counts as no owner; inferring
		// "Unassigned will ..." decisions would be noise.
		if owner == "" || owner == entities.OwnerUnassigned || task == "" {
			continue
		}
		phrase := owner + " will " + task
		if seen[phrase] {
			continue
		}
		seen[phrase] = true
		consolidated = append(consolidated, phrase)
	}

	return consolidated
}
