package aggregate

import (
	"strings"

	"planner/internal/model"
)

// IsComplete is the one completion rule used by every screen: an item is
// complete when completed_at is set, or when its normalized status says
// completed even though completed_at was never stamped. Everything else,
// including unrecognized status values, counts as incomplete. The screens
// this replaces disagreed on the unrecognized case; unifying on incomplete
// matches the dashboard and keeps the two buckets a partition.
func IsComplete(item Item) bool {
	if item.CompletedAt != nil && strings.TrimSpace(*item.CompletedAt) != "" {
		return true
	}
	return model.NormalizeStatus(item.Status) == model.TaskStatusCompleted
}

func IsIncomplete(item Item) bool {
	return !IsComplete(item)
}
