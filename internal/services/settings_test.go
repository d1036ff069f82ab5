package services

import (
	"testing"

	"github.com/azigroup/website/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_GetOrCreateOrUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingsService(db)

	assert.Equal(t, "fallback", svc.Get("missing", "fallback"))

	s, err := svc.Set(models.SettingContactEmail, "contact@azigroup.ml", "Adresse publique")
	require.NoError(t, err)
	assert.NotZero(t, s.ID)

	s, err = svc.Set(models.SettingContactEmail, "info@azigroup.ml", "")
	require.NoError(t, err)
	assert.Equal(t, "Adresse publique", s.Description)
	assert.Equal(t, "info@azigroup.ml", svc.Get(models.SettingContactEmail, ""))

	var n int64
	require.NoError(t, db.Model(&models.Setting{}).Where("key = ?", models.SettingContactEmail).Count(&n).Error)
	assert.Equal(t, int64(1), n)

	found, err := svc.Find(models.SettingContactEmail)
	require.NoError(t, err)
	assert.Equal(t, "info@azigroup.ml", found.Value)

	_, err = svc.Find("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSettingsService_TypedGetters(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingsService(db)

	_, err := svc.Set("news_per_page", "12", "")
	require.NoError(t, err)
	_, err = svc.Set("maintenance", "true", "")
	require.NoError(t, err)
	_, err = svc.Set("broken", "douze", "")
	require.NoError(t, err)

	assert.Equal(t, 12, svc.GetInt("news_per_page", 6))
	assert.Equal(t, 6, svc.GetInt("broken", 6))
	assert.Equal(t, 3, svc.GetInt("missing", 3))
	assert.True(t, svc.GetBool("maintenance", false))
	assert.False(t, svc.GetBool("broken", false))
}

func TestSettingsService_SiteInfoAndList(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingsService(db)

	info, err := svc.SiteInfo()
	require.NoError(t, err)
	assert.Equal(t, "AZI GROUP", info.Name)

	_, err = svc.Set(models.SettingContactPhone, "+223 20 00 00 00", "")
	require.NoError(t, err)
	_, err = svc.Set(models.SettingLinkedInURL, "https://linkedin.com/company/azi", "")
	require.NoError(t, err)
	_, err = svc.Set(models.SettingJWTSecret, "s3cret", "")
	require.NoError(t, err)

	info, err = svc.SiteInfo()
	require.NoError(t, err)
	assert.Equal(t, "+223 20 00 00 00", info.ContactPhone)
	assert.Equal(t, "https://linkedin.com/company/azi", info.LinkedInURL)

	list, err := svc.List()
	require.NoError(t, err)
	for _, s := range list {
		assert.NotEqual(t, models.SettingJWTSecret, s.Key)
	}
	assert.Len(t, list, 2)

	require.NoError(t, svc.Delete(models.SettingContactPhone))
	assert.ErrorIs(t, svc.Delete(models.SettingContactPhone), ErrNotFound)
}
