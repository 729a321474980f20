// Package listview filters, sorts and pages the rows of a console table.
package listview

import (
	"math"
	"sort"
	"strings"
	"time"
)

// Direction is the sort order of a column
type Direction string

const (
	Unsorted   Direction = ""
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseDirection accepts asc/desc in any case; anything else is unsorted
func ParseDirection(s string) Direction {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case Ascending:
		return Ascending
	case Descending:
		return Descending
	}
	return Unsorted
}

// Sort is the single sorted column
type Sort struct {
	Key       string    `json:"key,omitempty"`
	Direction Direction `json:"direction,omitempty"`
}

// Toggle advances the sort after a header click: a new column starts
// ascending, then the same column flips between descending and ascending.
func (s Sort) Toggle(key string) Sort {
	if s.Key != key || s.Direction == Unsorted {
		return Sort{Key: key, Direction: Ascending}
	}
	if s.Direction == Ascending {
		return Sort{Key: key, Direction: Descending}
	}
	return Sort{Key: key, Direction: Ascending}
}

// Page sizes
const DefaultPageSize = 10

// AllowedPageSizes are the page sizes the console offers
var AllowedPageSizes = []int{5, 10, 25, 50, 100}

// ValidPageSize reports whether n is an offered page size
func ValidPageSize(n int) bool {
	for _, s := range AllowedPageSizes {
		if s == n {
			return true
		}
	}
	return false
}

// NormalizePageSize falls back to the default for sizes the console does not offer
func NormalizePageSize(n int) int {
	if ValidPageSize(n) {
		return n
	}
	return DefaultPageSize
}

// State is the query, sort and page of one table
type State struct {
	Query    string `json:"query,omitempty"`
	Sort     Sort   `json:"sort"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}

// Columns describes how rows of T are searched and sorted
type Columns[T any] struct {
	// Search returns the derived strings a free-text query is matched against
	Search func(T) []string
	// Keys extracts a comparable sort key per column: string, int, int64, float64 or time.Time
	Keys map[string]func(T) interface{}
}

// Result is one page of rows plus the state that produced it
type Result[T any] struct {
	Items      []T   `json:"items"`
	State      State `json:"state"`
	Total      int   `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// Apply filters, sorts and pages items. The input slice is not modified.
func Apply[T any](items []T, st State, cols Columns[T]) Result[T] {
	rows := Filter(items, st.Query, cols.Search)
	rows = SortRows(rows, st.Sort, cols.Keys)

	st.PageSize = NormalizePageSize(st.PageSize)
	total := len(rows)
	totalPages := int(math.Ceil(float64(total) / float64(st.PageSize)))
	if totalPages < 1 {
		totalPages = 1
	}
	if st.Page < 1 {
		st.Page = 1
	}
	if st.Page > totalPages {
		st.Page = totalPages
	}

	start := (st.Page - 1) * st.PageSize
	end := start + st.PageSize
	if end > total {
		end = total
	}

	return Result[T]{
		Items:      rows[start:end],
		State:      st,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Filter keeps rows where any derived field contains the query, ignoring case
func Filter[T any](items []T, query string, search func(T) []string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]T, 0, len(items))
	for _, it := range items {
		if q == "" || search == nil || matches(search(it), q) {
			out = append(out, it)
		}
	}
	return out
}

func matches(fields []string, q string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// SortRows returns a stably sorted copy; unknown keys and Unsorted leave the order alone
func SortRows[T any](items []T, s Sort, keys map[string]func(T) interface{}) []T {
	out := make([]T, len(items))
	copy(out, items)

	key, ok := keys[s.Key]
	if !ok || s.Direction == Unsorted {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		c := Compare(key(out[i]), key(out[j]))
		if s.Direction == Descending {
			return c > 0
		}
		return c < 0
	})
	return out
}

// Compare orders two sort keys of the same kind: -1, 0 or 1
func Compare(a, b interface{}) int {
	switch av := a.(type) {
	case string:
		bv, _ := b.(string)
		return cmp3(av < bv, av > bv)
	case int:
		bv, _ := b.(int)
		return cmp3(av < bv, av > bv)
	case int64:
		bv, _ := b.(int64)
		return cmp3(av < bv, av > bv)
	case float64:
		bv, _ := b.(float64)
		return cmp3(av < bv, av > bv)
	case time.Time:
		bv, _ := b.(time.Time)
		return cmp3(av.Before(bv), av.After(bv))
	}
	return 0
}

func cmp3(less, greater bool) int {
	if less {
		return -1
	}
	if greater {
		return 1
	}
	return 0
}

// Text lowercases a string sort key
func Text(s string) interface{} {
	return strings.ToLower(strings.TrimSpace(s))
}

// Date turns an optional date into epoch millis; missing dates sort as 0
func Date(t *time.Time) interface{} {
	if t == nil || t.IsZero() {
		return int64(0)
	}
	return t.UnixMilli()
}

// FormatDate renders an optional date for search matching
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("Jan 02, 2006") + " " + t.Format("2006-01-02")
}
