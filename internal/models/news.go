package models

import (
	"time"
)

const excerptLength = 150

// News is an article of the news section.
type News struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Title     string    `gorm:"column:title;size:200;not null" json:"title"`
	Slug      string    `gorm:"column:slug;size:200;uniqueIndex;not null" json:"slug"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	Excerpt   string    `gorm:"column:excerpt;size:300" json:"excerpt"`
	Image     string    `gorm:"column:image;size:500" json:"image"`
	ImageURL  string    `gorm:"column:image_url;size:500" json:"image_url"`
	Published bool      `gorm:"column:published;index" json:"published"`
	Featured  bool      `gorm:"column:featured" json:"featured"`
	CreatedAt time.Time `gorm:"column:created_at;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (News) TableName() string {
	return "news"
}

// GetExcerpt returns the stored excerpt, or the first 150 characters of the
// content followed by an ellipsis when the content is longer than that.
func (n *News) GetExcerpt() string {
	if n.Excerpt != "" {
		return n.Excerpt
	}
	runes := []rune(n.Content)
	if len(runes) > excerptLength {
		return string(runes[:excerptLength]) + "..."
	}
	return n.Content
}

// GetImageURL prefers the uploaded image over the external URL. The empty
// string means the article has no image.
func (n *News) GetImageURL(media URLResolver) string {
	if n.Image != "" {
		return media.URL(n.Image)
	}
	return n.ImageURL
}

// URL is the public detail page path.
func (n *News) URL() string {
	return "/news/" + n.Slug + "/"
}
