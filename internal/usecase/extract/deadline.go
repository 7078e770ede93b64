package extract

import (
	"regexp"
	"strings"

	"github.com/johnquangdev/meeting-notes-tracker/pkg/textutil"
)

var weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// Numeric candidates are vetoed wholesale: calendar dates (2024-02-15, 5/3,
// 12-31-24) and bare digit runs all mean the model did date math instead of
// quoting the notes, and its date math cannot be trusted.
var numericVeto = regexp.MustCompile(`[0-9]`)

// ExtractDeadline validates the model's candidate deadline against the source
// notes. The only accepted deadlines are bare weekday names that appear
// verbatim as a standalone token in the notes; everything else, including any
// candidate containing a digit, yields "". The result is always "" or one of
// the seven capitalized weekday names.
func ExtractDeadline(candidate, sourceNotes string) string {
	cand := textutil.Fold(candidate)
	if cand == "" {
		return ""
	}
	if numericVeto.MatchString(cand) {
		return ""
	}

	notesTokens := tokenSet(textutil.Fold(sourceNotes))

	// A candidate that is exactly a weekday is authoritative: verified
	// against the notes or rejected outright.
	for _, day := range weekdays {
		if cand == day {
			if notesTokens[day] {
				return capitalizeWeekday(day)
			}
			return ""
		}
	}

	// Fallback recovers qualified candidates like "by monday" as long as the
	// bare weekday token exists verbatim in the notes.
	for _, day := range weekdays {
		if strings.Contains(cand, day) && notesTokens[day] {
			return capitalizeWeekday(day)
		}
	}

	return ""
}

// tokenSet splits canonicalized text on whitespace into a word set, trimming
// surrounding punctuation so "monday." counts as the token "monday".
func tokenSet(text string) map[string]bool {
	tokens := make(map[string]bool)
	for _, word := range strings.Fields(text) {
		word = strings.Trim(word, ".,!?;:'\"()")
		if word != "" {
			tokens[word] = true
		}
	}
	return tokens
}

func capitalizeWeekday(day string) string {
	return strings.ToUpper(day[:1]) + day[1:]
}
