package models

import "time"

// Setting is a free-form site parameter.
type Setting struct {
	ID          uint      `gorm:"column:id;primaryKey" json:"id"`
	Key         string    `gorm:"column:key;size:100;uniqueIndex;not null" json:"key"`
	Value       string    `gorm:"column:value;type:text" json:"value"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

// Well-known setting keys read by the site.
const (
	SettingSiteName     = "site_name"
	SettingContactEmail = "contact_email"
	SettingContactPhone = "contact_phone"
	SettingAddress      = "address"
	SettingFacebookURL  = "facebook_url"
	SettingLinkedInURL  = "linkedin_url"
	SettingJWTSecret    = "jwt_secret"
)
