package extract

import (
	"encoding/json"
	"strings"
)

// ExtractionResult is the schema-complete structure every model response is
// normalized into. Downstream components may assume it is well-shaped even
// when the model returned garbage.
type ExtractionResult struct {
	Summary      string              `json:"summary"`
	KeyDecisions []string            `json:"key_decisions"`
	ActionItems  []ActionItemPayload `json:"action_items"`
}

// ActionItemPayload is one action item as reported by the model, before
// cleaning.
type ActionItemPayload struct {
	Task     string `json:"task"`
	Owner    string `json:"owner"`
	Deadline string `json:"deadline"`
	Priority string `json:"priority"`
}

func emptyResult() ExtractionResult {
	return ExtractionResult{
		Summary:      "",
		KeyDecisions: []string{},
		ActionItems:  []ActionItemPayload{},
	}
}

// ParseModelResponse turns raw model output into an ExtractionResult. It is
// the sole error boundary for model output: invalid JSON, a non-object value
// or wrongly typed fields all degrade to the zero-value structure instead of
// an error. Markdown code fences around the JSON are tolerated.
func ParseModelResponse(raw string) ExtractionResult {
	result := emptyResult()

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(extractJSON(raw)), &fields); err != nil {
		return result
	}

	if data, ok := fields["summary"]; ok {
		var summary string
		if json.Unmarshal(data, &summary) == nil {
			result.Summary = summary
		}
	}

	if data, ok := fields["key_decisions"]; ok {
		var decisions []string
		if json.Unmarshal(data, &decisions) == nil && decisions != nil {
			result.KeyDecisions = decisions
		}
	}

	if data, ok := fields["action_items"]; ok {
		var items []ActionItemPayload
		if json.Unmarshal(data, &items) == nil && items != nil {
			result.ActionItems = items
		}
	}

	return result
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
