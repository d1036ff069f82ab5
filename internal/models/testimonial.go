package models

import (
	"strings"
	"time"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Testimonial is a client quote.
type Testimonial struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;size:100;not null" json:"name"`
	Company   string    `gorm:"column:company;size:100;not null" json:"company"`
	Position  string    `gorm:"column:position;size:100" json:"position"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	Image     string    `gorm:"column:image;size:500" json:"image"`
	Rating    int       `gorm:"column:rating;not null" json:"rating"`
	Active    bool      `gorm:"column:active;index" json:"active"`
	CreatedAt time.Time `gorm:"column:created_at;index" json:"created_at"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}

// Stars renders the rating as filled and empty stars.
func (t *Testimonial) Stars() string {
	r := t.Rating
	if r < MinRating {
		r = MinRating
	}
	if r > MaxRating {
		r = MaxRating
	}
	return strings.Repeat("★", r) + strings.Repeat("☆", MaxRating-r)
}
