package models

import (
	"strings"
	"testing"

	"github.com/azigroup/website/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenMemory()
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func TestDecodeStringList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want StringList
	}{
		{"json array", `["Audit","Conseil"]`, StringList{"Audit", "Conseil"}},
		{"legacy string encoded", `"[\"Audit\",\"Conseil\"]"`, StringList{"Audit", "Conseil"}},
		{"empty array", `[]`, StringList{}},
		{"null", `null`, StringList{}},
		{"malformed", `[Audit, Conseil`, StringList{}},
		{"plain string", `"Audit"`, StringList{}},
		{"non-string items", `[1,2]`, StringList{}},
		{"object", `{"a":"b"}`, StringList{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeStringList([]byte(tt.raw)))
		})
	}
}

func TestStringList_ScanTolerant(t *testing.T) {
	var l StringList
	require.NoError(t, l.Scan(nil))
	assert.Equal(t, StringList{}, l)

	require.NoError(t, l.Scan(`not json`))
	assert.Equal(t, StringList{}, l)

	require.NoError(t, l.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, StringList{"a", "b"}, l)

	v, err := StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestCompany_ListsFromLegacyRows(t *testing.T) {
	db := newDB(t)
	require.NoError(t, db.Create(&Company{Name: "GSS", Slug: "gss", Description: "d", Active: true}).Error)
	require.NoError(t, db.Exec(`UPDATE companies SET services = ?, kpis = ? WHERE slug = ?`,
		`"[\"Sécurité\",\"Logistique\"]"`, `{broken`, "gss").Error)

	var c Company
	require.NoError(t, db.First(&c, "slug = ?", "gss").Error)
	assert.Equal(t, []string{"Sécurité", "Logistique"}, c.ServicesList())
	assert.Equal(t, []string{}, c.KPIsList())
	assert.Equal(t, DefaultGradient, c.Gradient)
	assert.Equal(t, "/companies/gss/", c.URL())
}

func TestNews_GetExcerpt(t *testing.T) {
	long := strings.Repeat("a", 200)

	n := News{Content: long}
	assert.Equal(t, strings.Repeat("a", 150)+"...", n.GetExcerpt())

	n = News{Content: long, Excerpt: "Résumé court"}
	assert.Equal(t, "Résumé court", n.GetExcerpt())

	n = News{Content: "short"}
	assert.Equal(t, "short", n.GetExcerpt())

	n = News{Content: strings.Repeat("é", 150)}
	assert.Equal(t, strings.Repeat("é", 150), n.GetExcerpt())
}

type prefixResolver string

func (p prefixResolver) URL(path string) string { return string(p) + path }

func TestNews_GetImageURL(t *testing.T) {
	media := prefixResolver("/media/")

	n := News{Image: "news/a.jpg", ImageURL: "https://cdn.example.com/b.jpg"}
	assert.Equal(t, "/media/news/a.jpg", n.GetImageURL(media))

	n = News{ImageURL: "https://cdn.example.com/b.jpg"}
	assert.Equal(t, "https://cdn.example.com/b.jpg", n.GetImageURL(media))

	n = News{}
	assert.Equal(t, "", n.GetImageURL(media))
}

func TestTestimonial_Stars(t *testing.T) {
	assert.Equal(t, "★★★★★", (&Testimonial{Rating: 5}).Stars())
	assert.Equal(t, "★★★☆☆", (&Testimonial{Rating: 3}).Stars())
	assert.Equal(t, "★☆☆☆☆", (&Testimonial{Rating: 0}).Stars())
	assert.Equal(t, "★★★★★", (&Testimonial{Rating: 9}).Stars())
}

func TestContact_DefaultsToNew(t *testing.T) {
	db := newDB(t)
	c := Contact{Name: "Awa", Email: "awa@example.com", Message: "Bonjour"}
	require.NoError(t, db.Create(&c).Error)
	assert.Equal(t, ContactStatusNew, c.Status)
	assert.False(t, c.CreatedAt.IsZero())

	assert.True(t, ContactStatusProcessed.Valid())
	assert.False(t, ContactStatus("archived").Valid())
	assert.True(t, ServiceGSS.Valid())
	assert.Equal(t, "Global Songhoy Services (GSS)", ServiceGSS.Label())
}

func countActive(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Where("active = ?", true).Count(&n).Error)
	return n
}

func TestHomePageHero_SecondActiveSaveWins(t *testing.T) {
	db := newDB(t)

	first := HomePageHero{BackgroundImage: "homepage/a.jpg", Active: true}
	require.NoError(t, db.Save(&first).Error)
	second := HomePageHero{BackgroundImage: "homepage/b.jpg", Active: true}
	require.NoError(t, db.Save(&second).Error)

	assert.Equal(t, int64(1), countActive(t, db, &HomePageHero{}))

	var active HomePageHero
	require.NoError(t, db.Where("active = ?", true).First(&active).Error)
	assert.Equal(t, second.ID, active.ID)
	assert.Equal(t, DefaultHeroTitle, active.Title)
}

func TestNavigationLogo_ReactivatingOlderRow(t *testing.T) {
	db := newDB(t)

	a := NavigationLogo{Logo: "navigation/a.png", Active: true}
	require.NoError(t, db.Create(&a).Error)
	b := NavigationLogo{Logo: "navigation/b.png", Active: true}
	require.NoError(t, db.Create(&b).Error)

	a.Active = true
	require.NoError(t, db.Save(&a).Error)

	assert.Equal(t, int64(1), countActive(t, db, &NavigationLogo{}))
	var reloaded NavigationLogo
	require.NoError(t, db.First(&reloaded, b.ID).Error)
	assert.False(t, reloaded.Active)

	// Saving an inactive row leaves the active one alone.
	c := NavigationLogo{Logo: "navigation/c.png"}
	require.NoError(t, db.Create(&c).Error)
	assert.Equal(t, int64(1), countActive(t, db, &NavigationLogo{}))
	assert.Equal(t, "AZI GROUP", c.Name)
}

func TestHomePageHero_ClampsOpacity(t *testing.T) {
	db := newDB(t)
	h := HomePageHero{BackgroundImage: "x.jpg", OverlayOpacity: 1.7}
	require.NoError(t, db.Create(&h).Error)
	assert.Equal(t, 1.0, h.OverlayOpacity)
}

func TestCompany_DeleteCascadesProjectImages(t *testing.T) {
	db := newDB(t)
	c := Company{Name: "Sogis", Slug: "sogis", Description: "d", Active: true}
	require.NoError(t, db.Create(&c).Error)
	require.NoError(t, db.Create(&CompanyProjectImage{CompanyID: c.ID, Image: "p.jpg", Title: "p"}).Error)

	require.NoError(t, db.Delete(&Company{}, c.ID).Error)

	var n int64
	require.NoError(t, db.Model(&CompanyProjectImage{}).Count(&n).Error)
	assert.Equal(t, int64(0), n)
}
