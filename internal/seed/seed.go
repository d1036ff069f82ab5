// Package seed loads site content from YAML fixtures.
package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/azigroup/website/internal/models"
	"github.com/azigroup/website/internal/services"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed default.yaml
var defaultFixtures []byte

type ProjectImage struct {
	Image       string `yaml:"image"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Order       int    `yaml:"order"`
}

type Company struct {
	Name                string         `yaml:"name"`
	Slug                string         `yaml:"slug"`
	Description         string         `yaml:"description"`
	DetailedDescription string         `yaml:"detailed_description"`
	Icon                string         `yaml:"icon"`
	Logo                string         `yaml:"logo"`
	Gradient            string         `yaml:"gradient"`
	Services            []string       `yaml:"services"`
	KPIs                []string       `yaml:"kpis"`
	Active              *bool          `yaml:"active"`
	ProjectImages       []ProjectImage `yaml:"project_images"`
}

type News struct {
	Title     string `yaml:"title"`
	Slug      string `yaml:"slug"`
	Content   string `yaml:"content"`
	Excerpt   string `yaml:"excerpt"`
	Image     string `yaml:"image"`
	ImageURL  string `yaml:"image_url"`
	Published *bool  `yaml:"published"`
	Featured  bool   `yaml:"featured"`
}

type Testimonial struct {
	Name     string `yaml:"name"`
	Company  string `yaml:"company"`
	Position string `yaml:"position"`
	Content  string `yaml:"content"`
	Image    string `yaml:"image"`
	Rating   int    `yaml:"rating"`
}

type Setting struct {
	Key         string `yaml:"key"`
	Value       string `yaml:"value"`
	Description string `yaml:"description"`
}

type Hero struct {
	Title           string   `yaml:"title"`
	Subtitle        string   `yaml:"subtitle"`
	BackgroundImage string   `yaml:"background_image"`
	OverlayOpacity  *float64 `yaml:"overlay_opacity"`
}

type NavigationLogo struct {
	Name string `yaml:"name"`
	Logo string `yaml:"logo"`
}

// Fixtures is the document layout of a seed file.
type Fixtures struct {
	Settings       []Setting       `yaml:"settings"`
	Companies      []Company       `yaml:"companies"`
	News           []News          `yaml:"news"`
	Testimonials   []Testimonial   `yaml:"testimonials"`
	Hero           *Hero           `yaml:"hero"`
	NavigationLogo *NavigationLogo `yaml:"navigation_logo"`
}

// Result counts what Apply created and updated.
type Result struct {
	Created int
	Updated int
}

// Parse decodes a fixtures document.
func Parse(data []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return &f, nil
}

// Load reads fixtures from path, or the built-in set when path is empty.
func Load(path string) (*Fixtures, error) {
	if path == "" {
		return Parse(defaultFixtures)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	return Parse(data)
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// Seeder applies fixtures through the same services the admin API uses, so
// every record is validated.
type Seeder struct {
	db       *gorm.DB
	admin    *services.AdminService
	settings *services.SettingsService
	log      *zap.Logger
}

func NewSeeder(db *gorm.DB, admin *services.AdminService, settings *services.SettingsService, log *zap.Logger) *Seeder {
	return &Seeder{db: db, admin: admin, settings: settings, log: log}
}

// Apply writes the fixtures. Companies and news are matched by slug and
// testimonials by name and company, so applying the same file twice changes
// nothing. The jwt_secret setting is never written.
func (s *Seeder) Apply(f *Fixtures) (Result, error) {
	var res Result
	count := func(created bool) {
		if created {
			res.Created++
		} else {
			res.Updated++
		}
	}

	for _, st := range f.Settings {
		if st.Key == "" || st.Key == models.SettingJWTSecret {
			continue
		}
		_, err := s.settings.Find(st.Key)
		if _, serr := s.settings.Set(st.Key, st.Value, st.Description); serr != nil {
			return res, serr
		}
		count(errors.Is(err, services.ErrNotFound))
	}

	for i := range f.Companies {
		created, err := s.applyCompany(&f.Companies[i])
		if err != nil {
			return res, fmt.Errorf("company %q: %w", f.Companies[i].Name, err)
		}
		count(created)
	}

	for i := range f.News {
		created, err := s.applyNews(&f.News[i])
		if err != nil {
			return res, fmt.Errorf("news %q: %w", f.News[i].Title, err)
		}
		count(created)
	}

	for i := range f.Testimonials {
		created, err := s.applyTestimonial(&f.Testimonials[i])
		if err != nil {
			return res, fmt.Errorf("testimonial %q: %w", f.Testimonials[i].Name, err)
		}
		count(created)
	}

	if f.Hero != nil {
		created, err := s.applyHero(f.Hero)
		if err != nil {
			return res, fmt.Errorf("hero: %w", err)
		}
		count(created)
	}

	if f.NavigationLogo != nil {
		created, err := s.applyNavigationLogo(f.NavigationLogo)
		if err != nil {
			return res, fmt.Errorf("navigation logo: %w", err)
		}
		count(created)
	}

	s.log.Info("Fixtures applied", zap.Int("created", res.Created), zap.Int("updated", res.Updated))
	return res, nil
}

// findBy loads the first row matching query into dest and reports whether
// one exists.
func (s *Seeder) findBy(dest interface{}, query string, args ...interface{}) (bool, error) {
	err := s.db.Where(query, args...).First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Seeder) applyCompany(in *Company) (bool, error) {
	slug, err := services.ResolveSlug(in.Slug, in.Name)
	if err != nil {
		return false, err
	}
	var c models.Company
	found, err := s.findBy(&c, "slug = ?", slug)
	if err != nil {
		return false, err
	}

	c.Name = in.Name
	c.Slug = slug
	c.Description = in.Description
	c.DetailedDescription = in.DetailedDescription
	c.Icon = in.Icon
	c.Logo = in.Logo
	c.Gradient = in.Gradient
	c.Services = models.StringList(in.Services)
	c.KPIs = models.StringList(in.KPIs)
	c.Active = boolOr(in.Active, true)
	if err := s.admin.SaveCompany(&c); err != nil {
		return false, err
	}

	for _, pi := range in.ProjectImages {
		var img models.CompanyProjectImage
		if _, err := s.findBy(&img, "company_id = ? AND image = ?", c.ID, pi.Image); err != nil {
			return false, err
		}
		img.CompanyID = c.ID
		img.Image = pi.Image
		img.Title = pi.Title
		img.Description = pi.Description
		img.Order = pi.Order
		if err := s.admin.SaveProjectImage(&img); err != nil {
			return false, err
		}
	}
	return !found, nil
}

func (s *Seeder) applyNews(in *News) (bool, error) {
	slug, err := services.ResolveSlug(in.Slug, in.Title)
	if err != nil {
		return false, err
	}
	var n models.News
	found, err := s.findBy(&n, "slug = ?", slug)
	if err != nil {
		return false, err
	}

	n.Title = in.Title
	n.Slug = slug
	n.Content = in.Content
	n.Excerpt = in.Excerpt
	n.Image = in.Image
	n.ImageURL = in.ImageURL
	n.Published = boolOr(in.Published, true)
	n.Featured = in.Featured
	if err := s.admin.SaveNews(&n); err != nil {
		return false, err
	}
	return !found, nil
}

func (s *Seeder) applyTestimonial(in *Testimonial) (bool, error) {
	var t models.Testimonial
	found, err := s.findBy(&t, "name = ? AND company = ?", in.Name, in.Company)
	if err != nil {
		return false, err
	}

	t.Name = in.Name
	t.Company = in.Company
	t.Position = in.Position
	t.Content = in.Content
	t.Image = in.Image
	t.Rating = in.Rating
	t.Active = true
	if err := s.admin.SaveTestimonial(&t); err != nil {
		return false, err
	}
	return !found, nil
}

func (s *Seeder) applyHero(in *Hero) (bool, error) {
	var h models.HomePageHero
	found, err := s.findBy(&h, "background_image = ?", in.BackgroundImage)
	if err != nil {
		return false, err
	}

	h.Title = in.Title
	h.Subtitle = in.Subtitle
	h.BackgroundImage = in.BackgroundImage
	h.OverlayOpacity = models.DefaultHeroOpacity
	if in.OverlayOpacity != nil {
		h.OverlayOpacity = *in.OverlayOpacity
	}
	h.Active = true
	if err := s.admin.SaveHero(&h); err != nil {
		return false, err
	}
	return !found, nil
}

func (s *Seeder) applyNavigationLogo(in *NavigationLogo) (bool, error) {
	var l models.NavigationLogo
	found, err := s.findBy(&l, "logo = ?", in.Logo)
	if err != nil {
		return false, err
	}

	l.Name = in.Name
	l.Logo = in.Logo
	l.Active = true
	if err := s.admin.SaveNavigationLogo(&l); err != nil {
		return false, err
	}
	return !found, nil
}
