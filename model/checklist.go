package model

import (
	"strings"
	"time"
)

// CompletionTimeLayout is the display format stamped on checked items,
// e.g. "07-03-25 kl 14:30".
const CompletionTimeLayout = "02-01-06 kl 15:04"

// FormatCompletionTime renders a timestamp in the checklist display format.
func FormatCompletionTime(t time.Time) string {
	return t.Format(CompletionTimeLayout)
}

// The checklist operations below are pure: each returns a new slice and leaves
// the input untouched. Callers persist the result and recompute ShowList.

// AddItem prepends a new unchecked item. Blank or whitespace-only text is a
// no-op and returns the list unchanged.
func AddItem(list []ChecklistItem, text string) []ChecklistItem {
	if strings.TrimSpace(text) == "" {
		return list
	}
	out := make([]ChecklistItem, 0, len(list)+1)
	out = append(out, ChecklistItem{Text: text, Checked: false})
	return append(out, list...)
}

// RemoveItem drops the item at index i.
func RemoveItem(list []ChecklistItem, i int) ([]ChecklistItem, error) {
	if i < 0 || i >= len(list) {
		return nil, ErrIndexOutOfRange
	}
	out := make([]ChecklistItem, 0, len(list)-1)
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...), nil
}

// ToggleItem sets the checked state of the item at index i. Checking an item
// stamps CompletedAt with now; unchecking clears it.
func ToggleItem(list []ChecklistItem, i int, checked bool, now time.Time) ([]ChecklistItem, error) {
	if i < 0 || i >= len(list) {
		return nil, ErrIndexOutOfRange
	}
	out := make([]ChecklistItem, len(list))
	copy(out, list)
	out[i].Checked = checked
	if checked {
		out[i].CompletedAt = FormatCompletionTime(now)
	} else {
		out[i].CompletedAt = ""
	}
	return out, nil
}

// ClearChecked keeps only the unchecked items.
func ClearChecked(list []ChecklistItem) []ChecklistItem {
	out := make([]ChecklistItem, 0, len(list))
	for _, item := range list {
		if !item.Checked {
			out = append(out, item)
		}
	}
	return out
}

// ClearAll empties the list.
func ClearAll(list []ChecklistItem) []ChecklistItem {
	return []ChecklistItem{}
}

// Restart unchecks every item and clears completion stamps, preserving order
// and text.
func Restart(list []ChecklistItem) []ChecklistItem {
	out := make([]ChecklistItem, len(list))
	for i, item := range list {
		out[i] = ChecklistItem{Text: item.Text}
	}
	return out
}
