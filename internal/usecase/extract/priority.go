package extract

import (
	"strings"

	"github.com/johnquangdev/meeting-notes-tracker/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes-tracker/pkg/textutil"
)

// NormalizePriority coerces an arbitrary priority string into the closed set
// {High, Medium, Low}. Anything unrecognized, including empty input, becomes
// Medium. Never fails.
func NormalizePriority(candidate string) string {
	p := textutil.Fold(candidate)
	if p == "" {
		return entities.PriorityMedium
	}

	p = strings.ToUpper(p[:1]) + p[1:]
	if entities.IsValidPriority(p) {
		return p
	}
	return entities.PriorityMedium
}
