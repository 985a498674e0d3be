package siteadmin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"Defaults", 0, 0, 1, DefaultPageSize},
		{"NegativeValues", -1, -5, 1, DefaultPageSize},
		{"WithinBounds", 3, 25, 3, 25},
		{"LimitCapped", 1, 500, 1, MaxPageSize},
		{"LimitAtCap", 1, MaxPageSize, 1, MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := NormalizePage(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{"EvenSplit", 20, 10, 2},
		{"PartialLastPage", 21, 10, 3},
		{"SinglePage", 5, 10, 1},
		{"Empty", 0, 10, 0},
		{"ZeroLimit", 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.total, tt.limit))
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", normalizeEmail("  User@Example.COM "))
	assert.Equal(t, "", normalizeEmail("   "))
}

func TestValidEmail(t *testing.T) {
	valid := []string{"a@b.com", "user.name+tag@example.co.uk", "x@y"}
	for _, email := range valid {
		assert.True(t, validEmail(email), email)
	}

	invalid := []string{"", "plain", "@example.com", "user@", "user name@example.com"}
	for _, email := range invalid {
		assert.False(t, validEmail(email), email)
	}
}

func TestNormalizeEmails(t *testing.T) {
	got := normalizeEmails([]string{" A@b.com", "", "C@D.com ", "  "})
	assert.Equal(t, []string{"a@b.com", "c@d.com"}, got)
}
