package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		total      int64
		wantNumber int
		wantPages  int
		wantPrev   bool
		wantNext   bool
	}{
		{"missing page", "", 13, 1, 3, false, true},
		{"middle page", "2", 13, 2, 3, true, true},
		{"last page", "3", 13, 3, 3, true, false},
		{"past the end", "99", 13, 3, 3, true, false},
		{"non numeric", "abc", 13, 1, 3, false, true},
		{"zero", "0", 13, 1, 3, false, true},
		{"negative", "-4", 13, 1, 3, false, true},
		{"empty listing", "5", 0, 1, 1, false, false},
		{"exact multiple", "2", 12, 2, 2, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPage(tt.raw, tt.total, NewsPerPage)
			assert.Equal(t, tt.wantNumber, p.Number)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.wantPrev, p.HasPrevious)
			assert.Equal(t, tt.wantNext, p.HasNext)
		})
	}
}

func TestPage_Navigation(t *testing.T) {
	p := NewPage("2", 20, TestimonialsPerPage)
	assert.Equal(t, 1, p.PreviousNumber)
	assert.Equal(t, 3, p.NextNumber)
	assert.Equal(t, 9, p.Offset())
	assert.Equal(t, []int{1, 2, 3}, p.Range())
	assert.True(t, p.HasOtherPages())

	single := NewPage("", 4, NewsPerPage)
	assert.False(t, single.HasOtherPages())
	assert.Equal(t, 0, single.Offset())
}
