package aggregate

import (
	"strings"
	"time"
)

// Accepted due_date spellings, broadest first. Bare dates come from the date
// picker; full timestamps from older rows.
var dueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

const dayKeyLayout = "2006-01-02"

// DayKey renders an instant as the date-only key used for bucketing.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dayKeyLayout)
}

// BucketDay parses a stored due date and returns its day key in loc.
// Unparseable or absent values report false and bucket nowhere. Parsing the
// same value twice always yields the same key.
func BucketDay(dueDate *string, loc *time.Location) (string, bool) {
	if dueDate == nil {
		return "", false
	}
	value := strings.TrimSpace(*dueDate)
	if value == "" {
		return "", false
	}
	// Zone-less values are read in loc so a bare "2024-05-01" buckets to
	// 2024-05-01 everywhere instead of shifting across midnight.
	for _, layout := range dueDateLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return DayKey(t, loc), true
		}
	}
	return "", false
}

// ItemsForDay returns the items whose due date buckets to the given day key.
func ItemsForDay(items []Item, day string, loc *time.Location) []Item {
	matched := []Item{}
	for _, item := range items {
		if key, ok := BucketDay(item.DueDate, loc); ok && key == day {
			matched = append(matched, item)
		}
	}
	return matched
}

// DayHighlighted reports whether at least one incomplete item is due that
// day; the calendar draws its dot from this.
func DayHighlighted(items []Item, day string, loc *time.Location) bool {
	for _, item := range items {
		key, ok := BucketDay(item.DueDate, loc)
		if ok && key == day && IsIncomplete(item) {
			return true
		}
	}
	return false
}
