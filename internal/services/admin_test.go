package services

import (
	"fmt"
	"testing"

	"github.com/azigroup/website/internal/models"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRemover struct {
	removed []string
}

func (r *recordingRemover) Delete(path string) error {
	r.removed = append(r.removed, path)
	return nil
}

func TestResolveSlug(t *testing.T) {
	s, err := ResolveSlug("", "Golden Transport")
	require.NoError(t, err)
	assert.Equal(t, "golden-transport", s)

	s, err = ResolveSlug("gss", "ignored")
	require.NoError(t, err)
	assert.Equal(t, "gss", s)

	_, err = ResolveSlug("", "   ")
	assert.ErrorIs(t, err, ErrInvalidSlug)
}

func TestAdminService_SaveCompany(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, nil)

	c := &models.Company{Name: "Golden Transport", Description: "Transport", Active: true,
		Services: models.StringList{"Fret", "Location"}}
	require.NoError(t, svc.SaveCompany(c))
	assert.Equal(t, "golden-transport", c.Slug)
	assert.Equal(t, models.DefaultGradient, c.Gradient)

	dup := &models.Company{Name: "Golden Transport", Description: "Copie"}
	assert.ErrorIs(t, svc.SaveCompany(dup), ErrSlugTaken)

	c.Description = "Transport et logistique"
	require.NoError(t, svc.SaveCompany(c))

	err := svc.SaveCompany(&models.Company{Slug: "x"})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "name")
	assert.Contains(t, verrs, "description")

	loaded, err := svc.Company(c.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Fret", "Location"}, loaded.ServicesList())
}

func TestAdminService_DeleteCompanyCascades(t *testing.T) {
	db := newTestDB(t)
	remover := &recordingRemover{}
	svc := NewAdminService(db, remover)

	c := &models.Company{Name: "Sogis", Description: "Immobilier", Logo: "companies/logos/s.png", Active: true}
	require.NoError(t, svc.SaveCompany(c))
	require.NoError(t, svc.SaveProjectImage(&models.CompanyProjectImage{CompanyID: c.ID, Image: "companies/projects/1.jpg", Title: "Résidence"}))
	require.NoError(t, svc.SaveProjectImage(&models.CompanyProjectImage{CompanyID: c.ID, Image: "companies/projects/2.jpg", Title: "Bureaux"}))

	require.NoError(t, svc.DeleteCompany(c.ID))

	var n int64
	require.NoError(t, db.Model(&models.CompanyProjectImage{}).Count(&n).Error)
	assert.Zero(t, n)
	assert.ElementsMatch(t, []string{"companies/logos/s.png", "companies/projects/1.jpg", "companies/projects/2.jpg"}, remover.removed)

	assert.ErrorIs(t, svc.DeleteCompany(c.ID), ErrNotFound)
}

func TestAdminService_SaveNews(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, nil)

	n := &models.News{Title: "Nouveau contrat", Content: "Texte", Published: true}
	require.NoError(t, svc.SaveNews(n))
	assert.Equal(t, "nouveau-contrat", n.Slug)

	assert.ErrorIs(t, svc.SaveNews(&models.News{Title: "Autre", Slug: "nouveau-contrat", Content: "x"}), ErrSlugTaken)

	require.NoError(t, svc.DeleteNews(n.ID))
	assert.ErrorIs(t, svc.DeleteNews(n.ID), ErrNotFound)
}

func TestAdminService_SaveTestimonial(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, nil)

	tm := &models.Testimonial{Name: "Fatou", Company: "ACME", Content: "Excellent", Active: true}
	require.NoError(t, svc.SaveTestimonial(tm))
	assert.Equal(t, 5, tm.Rating)

	err := svc.SaveTestimonial(&models.Testimonial{Name: "A", Company: "B", Content: "C", Rating: 6})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "rating")
}

func TestAdminService_SingletonSaves(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, nil)

	first := &models.HomePageHero{BackgroundImage: "homepage/1.jpg", OverlayOpacity: 0.4, Active: true}
	require.NoError(t, svc.SaveHero(first))
	second := &models.HomePageHero{BackgroundImage: "homepage/2.jpg", OverlayOpacity: 0.6, Active: true}
	require.NoError(t, svc.SaveHero(second))

	var active []models.HomePageHero
	require.NoError(t, db.Where("active = ?", true).Find(&active).Error)
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)

	err := svc.SaveHero(&models.HomePageHero{BackgroundImage: "x.jpg", OverlayOpacity: 1.5})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "overlay_opacity")

	require.NoError(t, svc.SaveNavigationLogo(&models.NavigationLogo{Logo: "navigation/a.png", Active: true}))
	require.NoError(t, svc.SaveNavigationLogo(&models.NavigationLogo{Logo: "navigation/b.png", Active: true}))
	var n int64
	require.NoError(t, db.Model(&models.NavigationLogo{}).Where("active = ?", true).Count(&n).Error)
	assert.Equal(t, int64(1), n)

	assert.Error(t, svc.SaveNavigationLogo(&models.NavigationLogo{Name: "Sans image"}))
	assert.ErrorIs(t, svc.Delete(&models.HomePageHero{}, 999), ErrNotFound)
	assert.NoError(t, svc.Delete(&models.HomePageHero{}, first.ID))
}

func TestAdminService_ListAndGet(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, nil)

	for i := 0; i < AdminPerPage+2; i++ {
		createNews(t, db, "Article", fmt.Sprintf("article-%02d", i), i%2 == 0, i)
	}

	var news []models.News
	page, err := svc.List(&news, "created_at DESC", "")
	require.NoError(t, err)
	assert.Len(t, news, AdminPerPage)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, int64(AdminPerPage+2), page.TotalItems)

	news = nil
	_, err = svc.List(&news, "created_at DESC", "2")
	require.NoError(t, err)
	require.Len(t, news, 2)
	assert.Equal(t, "article-00", news[1].Slug)

	var one models.News
	require.NoError(t, svc.Get(&one, news[0].ID))
	assert.Equal(t, news[0].Slug, one.Slug)
	assert.ErrorIs(t, svc.Get(&one, 9999), ErrNotFound)
}

func TestAdminService_DeletesRemoveMedia(t *testing.T) {
	db := newTestDB(t)
	remover := &recordingRemover{}
	svc := NewAdminService(db, remover)

	testimonial := &models.Testimonial{Name: "Awa", Company: "ACME", Content: "Parfait", Image: "testimonials/awa.jpg", Active: true}
	require.NoError(t, svc.SaveTestimonial(testimonial))
	assert.Equal(t, models.MaxRating, testimonial.Rating)

	logo := &models.NavigationLogo{Logo: "navigation/logo.png", Active: true}
	require.NoError(t, svc.SaveNavigationLogo(logo))
	hero := &models.HomePageHero{BackgroundImage: "homepage/bg.jpg", Active: true}
	require.NoError(t, svc.SaveHero(hero))

	require.NoError(t, svc.DeleteTestimonial(testimonial.ID))
	require.NoError(t, svc.DeleteNavigationLogo(logo.ID))
	require.NoError(t, svc.DeleteHero(hero.ID))
	assert.Equal(t, []string{"testimonials/awa.jpg", "navigation/logo.png", "homepage/bg.jpg"}, remover.removed)

	assert.ErrorIs(t, svc.DeleteHero(hero.ID), ErrNotFound)
}
