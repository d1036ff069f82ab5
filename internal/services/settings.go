package services

import (
	"errors"
	"fmt"

	"github.com/azigroup/website/internal/models"
	"github.com/spf13/cast"
	"gorm.io/gorm"
)

// SettingsService reads and writes the key/value site settings.
type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// Get returns the value stored under key, or def when the key is unset.
func (s *SettingsService) Get(key, def string) string {
	var setting models.Setting
	if err := s.db.Where("key = ?", key).First(&setting).Error; err != nil {
		return def
	}
	return setting.Value
}

// Find loads the setting stored under key.
func (s *SettingsService) Find(key string) (*models.Setting, error) {
	var setting models.Setting
	if err := s.db.Where("key = ?", key).First(&setting).Error; err != nil {
		return nil, notFound(err, "setting")
	}
	return &setting, nil
}

// GetInt returns the setting converted to an int, or def.
func (s *SettingsService) GetInt(key string, def int) int {
	v := s.Get(key, "")
	if v == "" {
		return def
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return def
	}
	return n
}

// GetBool returns the setting converted to a bool, or def.
func (s *SettingsService) GetBool(key string, def bool) bool {
	v := s.Get(key, "")
	if v == "" {
		return def
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return def
	}
	return b
}

// Set creates the setting or updates its value. An empty description keeps
// the stored one.
func (s *SettingsService) Set(key, value, description string) (*models.Setting, error) {
	var setting models.Setting
	err := s.db.Where("key = ?", key).First(&setting).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		setting = models.Setting{Key: key, Value: value, Description: description}
		if err := s.db.Create(&setting).Error; err != nil {
			return nil, fmt.Errorf("create setting %s: %w", key, err)
		}
		return &setting, nil
	case err != nil:
		return nil, fmt.Errorf("load setting %s: %w", key, err)
	}

	setting.Value = value
	if description != "" {
		setting.Description = description
	}
	if err := s.db.Save(&setting).Error; err != nil {
		return nil, fmt.Errorf("update setting %s: %w", key, err)
	}
	return &setting, nil
}

// List returns every setting except internal secrets.
func (s *SettingsService) List() ([]models.Setting, error) {
	var settings []models.Setting
	err := s.db.Where("key <> ?", models.SettingJWTSecret).Order("key ASC").Find(&settings).Error
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	return settings, nil
}

// Delete removes a setting.
func (s *SettingsService) Delete(key string) error {
	res := s.db.Where("key = ?", key).Delete(&models.Setting{})
	if res.Error != nil {
		return fmt.Errorf("delete setting %s: %w", key, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SiteInfo is the contact and social information shown on every page.
type SiteInfo struct {
	Name         string
	ContactEmail string
	ContactPhone string
	Address      string
	FacebookURL  string
	LinkedInURL  string
}

// SiteInfo loads the public site settings in one query.
func (s *SettingsService) SiteInfo() (SiteInfo, error) {
	info := SiteInfo{Name: "AZI GROUP"}

	var settings []models.Setting
	err := s.db.Where("key IN ?", []string{
		models.SettingSiteName,
		models.SettingContactEmail,
		models.SettingContactPhone,
		models.SettingAddress,
		models.SettingFacebookURL,
		models.SettingLinkedInURL,
	}).Find(&settings).Error
	if err != nil {
		return info, fmt.Errorf("load site settings: %w", err)
	}

	for _, st := range settings {
		switch st.Key {
		case models.SettingSiteName:
			if st.Value != "" {
				info.Name = st.Value
			}
		case models.SettingContactEmail:
			info.ContactEmail = st.Value
		case models.SettingContactPhone:
			info.ContactPhone = st.Value
		case models.SettingAddress:
			info.Address = st.Value
		case models.SettingFacebookURL:
			info.FacebookURL = st.Value
		case models.SettingLinkedInURL:
			info.LinkedInURL = st.Value
		}
	}
	return info, nil
}
