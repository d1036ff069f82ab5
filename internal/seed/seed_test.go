package seed

import (
	"testing"

	"github.com/azigroup/website/internal/database"
	"github.com/azigroup/website/internal/models"
	"github.com/azigroup/website/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newSeeder(t *testing.T) (*Seeder, *gorm.DB) {
	t.Helper()
	db, err := database.OpenMemory()
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	return NewSeeder(db, services.NewAdminService(db, nil), services.NewSettingsService(db), zap.NewNop()), db
}

const fixtureDoc = `
settings:
  - key: site_name
    value: AZI GROUP Test
  - key: jwt_secret
    value: leaked
companies:
  - name: Golden Freight
    services: [Transport, Location]
    kpis: ["24/7"]
    project_images:
      - image: companies/projects/a.jpg
        title: Flotte
        order: 1
  - name: Hidden Co
    slug: hidden
    description: Pas encore publiée
    active: false
news:
  - title: Premier article
    content: Texte
    published: false
testimonials:
  - name: Awa
    company: ACME
    content: Excellent service
hero:
  title: Bienvenue
  background_image: homepage/hero.jpg
  overlay_opacity: 0.3
navigation_logo:
  logo: navigation/logo.png
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(fixtureDoc))
	require.NoError(t, err)
	require.Len(t, f.Companies, 2)
	assert.Equal(t, []string{"Transport", "Location"}, f.Companies[0].Services)
	require.NotNil(t, f.Companies[1].Active)
	assert.False(t, *f.Companies[1].Active)
	require.NotNil(t, f.Hero)
	require.NotNil(t, f.Hero.OverlayOpacity)
	assert.Equal(t, 0.3, *f.Hero.OverlayOpacity)

	_, err = Parse([]byte("companies: [oops"))
	assert.Error(t, err)
}

func TestApply_ValidationError(t *testing.T) {
	s, _ := newSeeder(t)
	f, err := Parse([]byte(fixtureDoc))
	require.NoError(t, err)

	// Golden Freight has no description
	_, err = s.Apply(f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Golden Freight")
}

func TestApply_Idempotent(t *testing.T) {
	s, db := newSeeder(t)
	f, err := Parse([]byte(fixtureDoc))
	require.NoError(t, err)
	f.Companies[0].Description = "Transport de marchandises"

	res, err := s.Apply(f)
	require.NoError(t, err)
	assert.Equal(t, 7, res.Created)
	assert.Equal(t, 0, res.Updated)

	var golden models.Company
	require.NoError(t, db.Preload("ProjectImages").Where("slug = ?", "golden-freight").First(&golden).Error)
	assert.True(t, golden.Active)
	assert.Equal(t, []string{"24/7"}, golden.KPIsList())
	require.Len(t, golden.ProjectImages, 1)

	var hidden models.Company
	require.NoError(t, db.Where("slug = ?", "hidden").First(&hidden).Error)
	assert.False(t, hidden.Active)

	var news models.News
	require.NoError(t, db.Where("slug = ?", "premier-article").First(&news).Error)
	assert.False(t, news.Published)

	var testimonial models.Testimonial
	require.NoError(t, db.First(&testimonial).Error)
	assert.Equal(t, models.MaxRating, testimonial.Rating)

	var secret int64
	require.NoError(t, db.Model(&models.Setting{}).Where("key = ?", models.SettingJWTSecret).Count(&secret).Error)
	assert.Zero(t, secret)

	f.Companies[0].Description = "Transport et logistique"
	res, err = s.Apply(f)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Created)
	assert.Equal(t, 7, res.Updated)

	var companies, images, heroes int64
	require.NoError(t, db.Model(&models.Company{}).Count(&companies).Error)
	require.NoError(t, db.Model(&models.CompanyProjectImage{}).Count(&images).Error)
	require.NoError(t, db.Model(&models.HomePageHero{}).Count(&heroes).Error)
	assert.EqualValues(t, 2, companies)
	assert.EqualValues(t, 1, images)
	assert.EqualValues(t, 1, heroes)

	require.NoError(t, db.First(&golden, golden.ID).Error)
	assert.Equal(t, "Transport et logistique", golden.Description)
}

func TestDefaultFixtures(t *testing.T) {
	s, db := newSeeder(t)
	f, err := Load("")
	require.NoError(t, err)

	_, err = s.Apply(f)
	require.NoError(t, err)

	var slugs []string
	require.NoError(t, db.Model(&models.Company{}).Order("slug").Pluck("slug", &slugs).Error)
	assert.Equal(t, []string{"angnie", "golden", "gss", "sogis"}, slugs)

	assert.Equal(t, "AZI GROUP", services.NewSettingsService(db).Get(models.SettingSiteName, ""))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/fixtures.yaml")
	assert.Error(t, err)
}
