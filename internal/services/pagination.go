package services

import (
	"strconv"
	"strings"
)

const (
	NewsPerPage         = 6
	TestimonialsPerPage = 9
	RecentLimit         = 3
)

// Page describes one page of a paginated listing.
type Page struct {
	Number         int   `json:"number"`
	PerPage        int   `json:"per_page"`
	TotalPages     int   `json:"total_pages"`
	TotalItems     int64 `json:"total_items"`
	HasPrevious    bool  `json:"has_previous"`
	HasNext        bool  `json:"has_next"`
	PreviousNumber int   `json:"previous_number"`
	NextNumber     int   `json:"next_number"`
}

// NewPage resolves the requested page number against the item count.
// A missing, non-numeric or non-positive page yields the first page and a
// page past the end yields the last one. An empty listing still has one
// (empty) page.
func NewPage(raw string, total int64, perPage int) Page {
	if perPage < 1 {
		perPage = 1
	}
	pages := int((total + int64(perPage) - 1) / int64(perPage))
	if pages < 1 {
		pages = 1
	}

	number, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || number < 1 {
		number = 1
	}
	if number > pages {
		number = pages
	}

	p := Page{
		Number:      number,
		PerPage:     perPage,
		TotalPages:  pages,
		TotalItems:  total,
		HasPrevious: number > 1,
		HasNext:     number < pages,
	}
	if p.HasPrevious {
		p.PreviousNumber = number - 1
	}
	if p.HasNext {
		p.NextNumber = number + 1
	}
	return p
}

// Offset is the index of the first item on the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.PerPage
}

// HasOtherPages reports whether pagination controls are needed.
func (p Page) HasOtherPages() bool {
	return p.TotalPages > 1
}

// Range lists every page number, for rendering page links.
func (p Page) Range() []int {
	out := make([]int, p.TotalPages)
	for i := range out {
		out[i] = i + 1
	}
	return out
}
