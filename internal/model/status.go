package model

import "strings"

// Canonical status vocabularies. Earlier clients wrote several spellings of
// the same state ("On-going", "Ongoing", "on-going", "on_hold", "pending");
// this client only writes the constants below and folds legacy spellings when
// reading, see NormalizeStatus.
const (
	ProjectStatusNotStarted   = "not_started"
	ProjectStatusOnGoing      = "on_going"
	ProjectStatusPaused       = "paused"
	ProjectStatusCompleted    = "completed"
	ProjectStatusDiscontinued = "discontinued"

	TaskStatusNotStarted = "not_started"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"

	MeetingStatusScheduled = "scheduled"
	MeetingStatusDone      = "done"
	MeetingStatusCanceled  = "canceled"
)

var legacyStatuses = map[string]string{
	"ongoing":   ProjectStatusOnGoing,
	"on-going":  ProjectStatusOnGoing,
	"on going":  ProjectStatusOnGoing,
	"on_hold":   ProjectStatusPaused,
	"on_paused": ProjectStatusPaused,
	"pending":   ProjectStatusNotStarted,
}

// NormalizeStatus lower-cases and trims a stored status and folds legacy
// spellings onto the canonical vocabulary. Unknown values pass through
// normalized so callers can still classify them.
func NormalizeStatus(status *string) string {
	if status == nil {
		return ""
	}
	s := strings.ToLower(strings.TrimSpace(*status))
	if canonical, ok := legacyStatuses[s]; ok {
		return canonical
	}
	return s
}
