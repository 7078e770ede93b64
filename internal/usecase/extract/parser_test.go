package extract

import (
	"reflect"
	"testing"
)

func TestParseModelResponse(t *testing.T) {
	t.Run("well formed response", func(t *testing.T) {
		raw := `{
			"summary": "Team discussed the login bug.",
			"key_decisions": ["Fix before release"],
			"action_items": [
				{"task": "fix the login bug", "owner": "Aayush", "deadline": "Monday", "priority": "High"}
			]
		}`
		got := ParseModelResponse(raw)
		if got.Summary != "Team discussed the login bug." {
			t.Fatalf("unexpected summary %q", got.Summary)
		}
		if !reflect.DeepEqual(got.KeyDecisions, []string{"Fix before release"}) {
			t.Fatalf("unexpected decisions %v", got.KeyDecisions)
		}
		if len(got.ActionItems) != 1 || got.ActionItems[0].Owner != "Aayush" {
			t.Fatalf("unexpected action items %v", got.ActionItems)
		}
	})

	t.Run("markdown fences stripped", func(t *testing.T) {
		raw := "```json\n{\"summary\": \"ok\", \"key_decisions\": [], \"action_items\": []}\n```"
		got := ParseModelResponse(raw)
		if got.Summary != "ok" {
			t.Fatalf("unexpected summary %q", got.Summary)
		}
	})

	t.Run("invalid JSON degrades to zero values", func(t *testing.T) {
		got := ParseModelResponse("I could not produce JSON, sorry!")
		assertZeroResult(t, got)
	})

	t.Run("non object degrades to zero values", func(t *testing.T) {
		got := ParseModelResponse(`["a", "b"]`)
		assertZeroResult(t, got)
	})

	t.Run("missing fields keep zero values", func(t *testing.T) {
		got := ParseModelResponse(`{"summary": "only summary"}`)
		if got.Summary != "only summary" {
			t.Fatalf("unexpected summary %q", got.Summary)
		}
		if got.KeyDecisions == nil || len(got.KeyDecisions) != 0 {
			t.Fatalf("expected empty decisions, got %v", got.KeyDecisions)
		}
		if got.ActionItems == nil || len(got.ActionItems) != 0 {
			t.Fatalf("expected empty action items, got %v", got.ActionItems)
		}
	})

	t.Run("wrongly typed fields keep zero values", func(t *testing.T) {
		got := ParseModelResponse(`{"summary": 42, "key_decisions": "not a list", "action_items": {"not": "a list"}}`)
		assertZeroResult(t, got)
	})

	t.Run("null fields keep zero values", func(t *testing.T) {
		got := ParseModelResponse(`{"summary": null, "key_decisions": null, "action_items": null}`)
		assertZeroResult(t, got)
	})
}

func assertZeroResult(t *testing.T, got ExtractionResult) {
	t.Helper()
	if got.Summary != "" {
		t.Fatalf("expected empty summary, got %q", got.Summary)
	}
	if got.KeyDecisions == nil || len(got.KeyDecisions) != 0 {
		t.Fatalf("expected empty decisions, got %v", got.KeyDecisions)
	}
	if got.ActionItems == nil || len(got.ActionItems) != 0 {
		t.Fatalf("expected empty action items, got %v", got.ActionItems)
	}
}
