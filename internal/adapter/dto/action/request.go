package action

// UpdateActionItemRequest represents a partial update to an action item.
// Only the fields present in the body are applied.
type UpdateActionItemRequest struct {
	Task     *string `json:"task" validate:"omitempty,min=1"`
	Owner    *string `json:"owner"`
	Priority *string `json:"priority"`
	Deadline *string `json:"deadline"`
	Status   *string `json:"status" validate:"omitempty,max=50"`
}
