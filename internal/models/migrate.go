package models

import (
	"fmt"

	"gorm.io/gorm"
)

// All lists every persisted model in dependency order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Setting{},
		&Company{},
		&CompanyProjectImage{},
		&News{},
		&Testimonial{},
		&NavigationLogo{},
		&HomePageHero{},
		&Contact{},
	}
}

// AutoMigrate creates or updates the schema of every table.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
