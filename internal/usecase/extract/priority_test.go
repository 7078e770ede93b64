package extract

import (
	"testing"

	"github.com/johnquangdev/meeting-notes-tracker/internal/domain/entities"
)

func TestNormalizePriority(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"High", entities.PriorityHigh},
		{"high", entities.PriorityHigh},
		{"HIGH", entities.PriorityHigh},
		{"  medium ", entities.PriorityMedium},
		{"low", entities.PriorityLow},
		{"", entities.PriorityMedium},
		{"urgent", entities.PriorityMedium},
		{"P1", entities.PriorityMedium},
		{"highest", entities.PriorityMedium},
	}

	for _, tc := range cases {
		if got := NormalizePriority(tc.in); got != tc.want {
			t.Fatalf("NormalizePriority(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
