package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		limit int
		total int64
		pages int
	}{
		{name: "exact multiple", page: 1, limit: 10, total: 20, pages: 2},
		{name: "partial last page", page: 3, limit: 10, total: 23, pages: 3},
		{name: "single document", page: 1, limit: 10, total: 1, pages: 1},
		{name: "empty result set", page: 1, limit: 10, total: 0, pages: 0},
		{name: "limit of one", page: 5, limit: 1, total: 7, pages: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)

			assert.Equal(t, tt.page, p.Current)
			assert.Equal(t, tt.pages, p.Pages)
			assert.Equal(t, tt.total, p.Total)
		})
	}
}
