package utils

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 50
)

// ClampLimit normalizes a requested page size into [1, MaxPageLimit].
func ClampLimit(limit int) int {
	if limit < 1 {
		return DefaultPageLimit
	}
	if limit > MaxPageLimit {
		return MaxPageLimit
	}
	return limit
}

// CursorPage is one page of results plus the cursor for the next one.
// NextCursor is nil when no further rows exist.
type CursorPage[T any] struct {
	Items      []T
	NextCursor *string
}

// NewCursorPage builds a page from rows fetched with limit+1. The extra row
// only signals that more data exists; it is never returned. When present,
// NextCursor is the id of the last returned item.
func NewCursorPage[T any](rows []T, limit int, id func(T) string) CursorPage[T] {
	if len(rows) <= limit {
		return CursorPage[T]{Items: rows}
	}

	items := rows[:limit]
	cursor := id(items[len(items)-1])

	return CursorPage[T]{Items: items, NextCursor: &cursor}
}
