package utils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID string
}

func makeRows(n int) []row {
	rows := make([]row, n)
	for i := range rows {
		rows[i] = row{ID: fmt.Sprintf("row-%03d", i)}
	}
	return rows
}

func TestNewCursorPage_FullPageWithProbe(t *testing.T) {
	for _, limit := range []int{1, 2, 10, 49, 50} {
		t.Run(fmt.Sprintf("limit=%d", limit), func(t *testing.T) {
			rows := makeRows(limit + 1)

			page := NewCursorPage(rows, limit, func(r row) string { return r.ID })

			assert.Len(t, page.Items, limit)
			require.NotNil(t, page.NextCursor)
			assert.Equal(t, rows[limit-1].ID, *page.NextCursor)
		})
	}
}

func TestNewCursorPage_LastPage(t *testing.T) {
	tests := []struct {
		name  string
		rows  int
		limit int
	}{
		{"empty", 0, 10},
		{"fewer than limit", 5, 10},
		{"exactly limit", 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := makeRows(tt.rows)

			page := NewCursorPage(rows, tt.limit, func(r row) string { return r.ID })

			assert.Len(t, page.Items, tt.rows)
			assert.Nil(t, page.NextCursor)
		})
	}
}

func TestNewCursorPage_ProbeRowNotReturned(t *testing.T) {
	rows := makeRows(11)

	page := NewCursorPage(rows, 10, func(r row) string { return r.ID })

	for _, item := range page.Items {
		assert.NotEqual(t, rows[10].ID, item.ID)
	}
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, DefaultPageLimit},
		{-3, DefaultPageLimit},
		{1, 1},
		{10, 10},
		{50, 50},
		{51, MaxPageLimit},
		{1000, MaxPageLimit},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampLimit(tt.in), "ClampLimit(%d)", tt.in)
	}
}
