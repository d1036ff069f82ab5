package models

import (
	"time"

	"gorm.io/gorm"
)

// NavigationLogo is the logo shown in the navigation bar. At most one row is
// active at any time.
type NavigationLogo struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;size:100;not null" json:"name"`
	Logo      string    `gorm:"column:logo;size:500;not null" json:"logo"`
	Active    bool      `gorm:"column:active;index" json:"active"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (NavigationLogo) TableName() string {
	return "navigation_logos"
}

// BeforeSave runs inside the save transaction, so deactivating the other
// rows and activating this one commit together.
func (l *NavigationLogo) BeforeSave(tx *gorm.DB) error {
	if l.Name == "" {
		l.Name = "AZI GROUP"
	}
	if !l.Active {
		return nil
	}
	return deactivateOthers(tx, &NavigationLogo{}, l.ID)
}

// HomePageHero is the hero banner of the home page. At most one row is
// active at any time.
type HomePageHero struct {
	ID              uint      `gorm:"column:id;primaryKey" json:"id"`
	Title           string    `gorm:"column:title;size:200;not null" json:"title"`
	Subtitle        string    `gorm:"column:subtitle;type:text" json:"subtitle"`
	BackgroundImage string    `gorm:"column:background_image;size:500;not null" json:"background_image"`
	OverlayOpacity  float64   `gorm:"column:overlay_opacity" json:"overlay_opacity"`
	Active          bool      `gorm:"column:active;index" json:"active"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (HomePageHero) TableName() string {
	return "home_page_heroes"
}

const (
	DefaultHeroTitle    = "AZI GROUP"
	DefaultHeroSubtitle = "Excellence Opérationnelle au Service de l'Impact en Afrique de l'Ouest"
	DefaultHeroOpacity  = 0.5
)

// BeforeSave clamps the opacity and enforces the single active hero.
func (h *HomePageHero) BeforeSave(tx *gorm.DB) error {
	if h.Title == "" {
		h.Title = DefaultHeroTitle
	}
	if h.OverlayOpacity < 0 {
		h.OverlayOpacity = 0
	}
	if h.OverlayOpacity > 1 {
		h.OverlayOpacity = 1
	}
	if !h.Active {
		return nil
	}
	return deactivateOthers(tx, &HomePageHero{}, h.ID)
}

func deactivateOthers(tx *gorm.DB, model interface{}, id uint) error {
	q := tx.Session(&gorm.Session{NewDB: true, SkipHooks: true}).
		Model(model).
		Where("active = ?", true)
	if id != 0 {
		q = q.Where("id <> ?", id)
	}
	return q.Update("active", false).Error
}
