package services

import (
	"testing"

	"github.com/azigroup/website/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAssets map[string]bool

func (f fakeAssets) URL(path string) string  { return "/media/" + path }
func (f fakeAssets) Exists(path string) bool { return f[path] }

func newSiteContext(t *testing.T, assets fakeAssets) (*SiteContextService, func(interface{})) {
	db := newTestDB(t)
	svc := NewSiteContextService(NewContentService(db), NewSettingsService(db), assets, zap.NewNop())
	return svc, func(v interface{}) { require.NoError(t, db.Save(v).Error) }
}

func TestSiteContext_NothingConfigured(t *testing.T) {
	svc, _ := newSiteContext(t, fakeAssets{})

	ctx := svc.Build()
	assert.Nil(t, ctx.NavigationLogo)
	assert.Equal(t, "", ctx.NavbarLogoURL)
	assert.NotNil(t, ctx.Companies)
	assert.Empty(t, ctx.Companies)
	assert.Equal(t, "AZI GROUP", ctx.Site.Name)
}

func TestSiteContext_PrefersHeroImage(t *testing.T) {
	svc, save := newSiteContext(t, fakeAssets{"homepage/hero.jpg": true, "navigation/logo.png": true})
	save(&models.NavigationLogo{Logo: "navigation/logo.png", Active: true})
	save(&models.HomePageHero{BackgroundImage: "homepage/hero.jpg", Active: true})
	save(&models.Company{Name: "GSS", Slug: "gss", Description: "d", Active: true})

	ctx := svc.Build()
	assert.Equal(t, "/media/homepage/hero.jpg", ctx.NavbarLogoURL)
	require.NotNil(t, ctx.NavigationLogo)
	assert.Equal(t, "navigation/logo.png", ctx.NavigationLogo.Logo)
	require.Len(t, ctx.Companies, 1)
}

func TestSiteContext_FallsBackToLogoWhenHeroAssetMissing(t *testing.T) {
	svc, save := newSiteContext(t, fakeAssets{"navigation/logo.png": true})
	save(&models.NavigationLogo{Logo: "navigation/logo.png", Active: true})
	save(&models.HomePageHero{BackgroundImage: "homepage/gone.jpg", Active: true})

	ctx := svc.Build()
	assert.Equal(t, "/media/navigation/logo.png", ctx.NavbarLogoURL)
}

func TestSiteContext_AllAssetsMissing(t *testing.T) {
	svc, save := newSiteContext(t, fakeAssets{})
	save(&models.NavigationLogo{Logo: "navigation/logo.png", Active: true})
	save(&models.HomePageHero{BackgroundImage: "homepage/gone.jpg", Active: true})

	ctx := svc.Build()
	assert.Equal(t, "", ctx.NavbarLogoURL)
	assert.NotNil(t, ctx.NavigationLogo)
}

func TestSiteContext_RecomputedPerCall(t *testing.T) {
	svc, save := newSiteContext(t, fakeAssets{"navigation/a.png": true, "navigation/b.png": true})
	a := &models.NavigationLogo{Logo: "navigation/a.png", Active: true}
	save(a)
	assert.Equal(t, "/media/navigation/a.png", svc.Build().NavbarLogoURL)

	save(&models.NavigationLogo{Logo: "navigation/b.png", Active: true})
	assert.Equal(t, "/media/navigation/b.png", svc.Build().NavbarLogoURL)
}

func TestSiteContext_AbsoluteURLs(t *testing.T) {
	svc, save := newSiteContext(t, fakeAssets{})
	save(&models.NavigationLogo{Logo: "https://cdn.example.com/logo.png", Active: true})
	assert.Equal(t, "https://cdn.example.com/logo.png", svc.Build().NavbarLogoURL)

	save(&models.HomePageHero{BackgroundImage: "http://cdn.example.com/hero.jpg", Active: true})
	assert.Equal(t, "http://cdn.example.com/hero.jpg", svc.Build().NavbarLogoURL)
}
