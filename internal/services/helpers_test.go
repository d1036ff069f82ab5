package services

import (
	"testing"
	"time"

	"github.com/azigroup/website/internal/database"
	"github.com/azigroup/website/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenMemory()
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	return db
}

var baseTime = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func at(days int) time.Time {
	return baseTime.AddDate(0, 0, days)
}

func createCompany(t *testing.T, db *gorm.DB, name, slug string, active bool) *models.Company {
	t.Helper()
	c := &models.Company{Name: name, Slug: slug, Description: name + " description", Active: active}
	require.NoError(t, db.Create(c).Error)
	return c
}

func createNews(t *testing.T, db *gorm.DB, title, slug string, published bool, day int) *models.News {
	t.Helper()
	n := &models.News{Title: title, Slug: slug, Content: title + " content", Published: published, CreatedAt: at(day)}
	require.NoError(t, db.Create(n).Error)
	return n
}
