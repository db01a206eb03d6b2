package response

import (
	"cinerate/pkg/utils"
)

type CursorPaginatedResponse[T any] struct {
	Items      []T     `json:"items"`
	NextCursor *string `json:"next_cursor"`
}

func NewCursorPaginatedResponse[T any](page utils.CursorPage[T]) *CursorPaginatedResponse[T] {
	items := page.Items
	if items == nil {
		items = []T{}
	}

	return &CursorPaginatedResponse[T]{
		Items:      items,
		NextCursor: page.NextCursor,
	}
}
