package database

import (
	"crypto/rand"
	"encoding/hex"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const jwtSecretKey = "jwt_secret"

// settingRow maps the settings table without pulling in the models package.
type settingRow struct {
	ID    uint   `gorm:"column:id;primaryKey"`
	Key   string `gorm:"column:key"`
	Value string `gorm:"column:value"`
}

func (settingRow) TableName() string {
	return "settings"
}

// EnsureJWTSecret returns the persisted signing secret, creating it from
// configured (or a random one when empty) on first start so admin sessions
// survive restarts.
func EnsureJWTSecret(db *gorm.DB, configured string, log *zap.Logger) string {
	if db == nil {
		log.Warn("Database not connected, JWT secret not persisted")
		return configured
	}

	var row settingRow
	err := db.Where("key = ?", jwtSecretKey).First(&row).Error
	if err == nil && row.Value != "" {
		log.Info("JWT secret loaded from database")
		return row.Value
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Warn("Failed to read JWT secret", zap.Error(err))
	}

	secret := configured
	if secret == "" {
		secret = generateSecureSecret(32)
	}

	if row.ID != 0 {
		err = db.Model(&settingRow{}).Where("id = ?", row.ID).Update("value", secret).Error
	} else {
		err = db.Create(&settingRow{Key: jwtSecretKey, Value: secret}).Error
		if err != nil {
			// Another instance won the race.
			err = db.Model(&settingRow{}).Where("key = ?", jwtSecretKey).Update("value", secret).Error
		}
	}
	if err != nil {
		log.Warn("Failed to persist JWT secret", zap.Error(err))
		return secret
	}

	log.Info("JWT secret generated and persisted to database")
	return secret
}

func generateSecureSecret(length int) string {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return hex.EncodeToString([]byte("fallback-secret-change-me"))
	}
	return hex.EncodeToString(bytes)
}
