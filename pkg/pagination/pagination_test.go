// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/turathdz/turath/pkg/pagination"
)

/*
TestParams_Offset verifies the (page-1)*limit offset derivation.
*/
func TestParams_Offset(t *testing.T) {
	tests := []struct {
		name   string
		page   int
		limit  int
		offset int
	}{
		{"first_page", 1, 20, 0},
		{"second_page", 2, 20, 20},
		{"fifth_page_small_limit", 5, 7, 28},
		{"zero_page_clamps_to_zero_offset", 0, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pagination.Params{Page: tt.page, Limit: tt.limit}
			assert.Equal(t, tt.offset, p.Offset())
		})
	}
}

/*
TestNewMeta verifies the total page count rounding.
*/
func TestNewMeta(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		pages int
	}{
		{"exact_fit", 40, 20, 2},
		{"partial_last_page", 41, 20, 3},
		{"empty_result", 0, 20, 0},
		{"single_item", 1, 20, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := pagination.NewMeta(1, tt.limit, tt.total)

			assert.Equal(t, tt.pages, meta.Pages)
			assert.Equal(t, tt.total, meta.Total)
			assert.Equal(t, tt.limit, meta.Limit)
		})
	}
}

/*
TestFromRequest checks query parsing and clamping of abusive values.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		page  int
		limit int
	}{
		{"defaults", "/works", 1, 20},
		{"explicit", "/works?page=3&limit=50", 3, 50},
		{"negative_page", "/works?page=-2", 1, 20},
		{"limit_above_max", "/works?limit=9999", 1, 20},
		{"garbage_values", "/works?page=abc&limit=xyz", 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", tt.url, nil)
			params := pagination.FromRequest(request)

			assert.Equal(t, tt.page, params.Page)
			assert.Equal(t, tt.limit, params.Limit)
		})
	}
}
