package aggregate

import (
	"sort"
	"strings"
	"time"
)

// SortTodos orders the merged list the way the todos screen shows it:
// bucketed due date ascending, items without a parseable date last, ties
// broken by title case-insensitively.
func SortTodos(items []Item, loc *time.Location) {
	sort.SliceStable(items, func(i, j int) bool {
		iKey, iOK := BucketDay(items[i].DueDate, loc)
		jKey, jOK := BucketDay(items[j].DueDate, loc)
		switch {
		case iOK && jOK && iKey != jKey:
			return iKey < jKey
		case iOK != jOK:
			return iOK
		}
		return strings.ToLower(items[i].Title) < strings.ToLower(items[j].Title)
	})
}

// CompletionCounts is the Done/Pending split shown above the todos list.
func CompletionCounts(items []Item) (completed, pending int) {
	for _, item := range items {
		if IsComplete(item) {
			completed++
		} else {
			pending++
		}
	}
	return completed, pending
}
