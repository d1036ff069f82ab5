package models

import (
	"time"
)

// User is a staff account allowed to maintain site content.
type User struct {
	ID        uint       `gorm:"column:id;primaryKey" json:"id"`
	Username  string     `gorm:"column:username;uniqueIndex;size:100;not null" json:"username"`
	Password  string     `gorm:"column:password;size:255;not null" json:"-"`
	Email     string     `gorm:"column:email;size:255" json:"email"`
	FullName  string     `gorm:"column:full_name;size:255" json:"full_name"`
	IsActive  bool       `gorm:"column:is_active" json:"is_active"`
	LastLogin *time.Time `gorm:"column:last_login" json:"last_login"`
	CreatedAt time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at" json:"updated_at"`

	// 2FA fields
	TwoFactorEnabled bool   `gorm:"column:two_factor_enabled" json:"two_factor_enabled"`
	TwoFactorSecret  string `gorm:"column:two_factor_secret;size:255" json:"-"`

	// Force password change on first login
	ForcePasswordChange bool `gorm:"column:force_password_change" json:"force_password_change"`
}

func (User) TableName() string {
	return "users"
}
