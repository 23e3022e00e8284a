package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		totalItems  int64
		limit       int
		currentPage int
		wantPages   int64
	}{
		{name: "exact multiple", totalItems: 20, limit: 10, currentPage: 1, wantPages: 2},
		{name: "partial last page", totalItems: 21, limit: 10, currentPage: 3, wantPages: 3},
		{name: "single item", totalItems: 1, limit: 10, currentPage: 1, wantPages: 1},
		{name: "no items", totalItems: 0, limit: 10, currentPage: 1, wantPages: 0},
		{name: "limit one", totalItems: 5, limit: 1, currentPage: 5, wantPages: 5},
		{name: "zero limit yields zero pages", totalItems: 5, limit: 0, currentPage: 1, wantPages: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := NewPagination(tt.totalItems, tt.limit, tt.currentPage)

			assert.Equal(t, tt.totalItems, p.TotalItems)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.currentPage, p.CurrentPage)
		})
	}
}
