package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/azigroup/website/internal/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a record does not exist or is not publicly
// visible.
var ErrNotFound = errors.New("not found")

// ContentService runs the read queries behind the public pages.
type ContentService struct {
	db *gorm.DB
}

func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{db: db}
}

// ActiveCompanies lists active companies by name.
func (s *ContentService) ActiveCompanies() ([]models.Company, error) {
	var companies []models.Company
	if err := s.db.Where("active = ?", true).Order("name ASC").Find(&companies).Error; err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return companies, nil
}

// CompanyBySlug returns an active company with its project images.
func (s *ContentService) CompanyBySlug(slug string) (*models.Company, error) {
	var company models.Company
	err := s.db.
		Preload("ProjectImages", func(db *gorm.DB) *gorm.DB {
			return db.Order(models.ProjectImageOrder)
		}).
		Where("slug = ? AND active = ?", slug, true).
		First(&company).Error
	if err != nil {
		return nil, notFound(err, "company")
	}
	return &company, nil
}

func (s *ContentService) publishedNews() *gorm.DB {
	return s.db.Model(&models.News{}).Where("published = ?", true)
}

// PublishedNews returns one page of published articles, newest first.
func (s *ContentService) PublishedNews(page string) ([]models.News, Page, error) {
	var total int64
	if err := s.publishedNews().Count(&total).Error; err != nil {
		return nil, Page{}, fmt.Errorf("count news: %w", err)
	}
	p := NewPage(page, total, NewsPerPage)

	var news []models.News
	err := s.publishedNews().
		Order("created_at DESC").Order("id DESC").
		Offset(p.Offset()).Limit(p.PerPage).
		Find(&news).Error
	if err != nil {
		return nil, p, fmt.Errorf("list news: %w", err)
	}
	return news, p, nil
}

// AllPublishedNews lists every published article, newest first.
func (s *ContentService) AllPublishedNews() ([]models.News, error) {
	return s.RecentNews(-1)
}

// RecentNews returns the latest published articles. A negative limit
// returns all of them.
func (s *ContentService) RecentNews(limit int) ([]models.News, error) {
	var news []models.News
	err := s.publishedNews().
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&news).Error
	if err != nil {
		return nil, fmt.Errorf("list recent news: %w", err)
	}
	return news, nil
}

// NewsBySlug returns a published article.
func (s *ContentService) NewsBySlug(slug string) (*models.News, error) {
	var news models.News
	if err := s.publishedNews().Where("slug = ?", slug).First(&news).Error; err != nil {
		return nil, notFound(err, "news")
	}
	return &news, nil
}

// RelatedNews returns the latest published articles other than n.
func (s *ContentService) RelatedNews(n *models.News, limit int) ([]models.News, error) {
	var news []models.News
	err := s.publishedNews().
		Where("id <> ?", n.ID).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&news).Error
	if err != nil {
		return nil, fmt.Errorf("list related news: %w", err)
	}
	return news, nil
}

func (s *ContentService) activeTestimonials() *gorm.DB {
	return s.db.Model(&models.Testimonial{}).Where("active = ?", true)
}

// ActiveTestimonials returns one page of active testimonials, newest first.
func (s *ContentService) ActiveTestimonials(page string) ([]models.Testimonial, Page, error) {
	var total int64
	if err := s.activeTestimonials().Count(&total).Error; err != nil {
		return nil, Page{}, fmt.Errorf("count testimonials: %w", err)
	}
	p := NewPage(page, total, TestimonialsPerPage)

	var testimonials []models.Testimonial
	err := s.activeTestimonials().
		Order("created_at DESC").Order("id DESC").
		Offset(p.Offset()).Limit(p.PerPage).
		Find(&testimonials).Error
	if err != nil {
		return nil, p, fmt.Errorf("list testimonials: %w", err)
	}
	return testimonials, p, nil
}

// RecentTestimonials returns the latest active testimonials.
func (s *ContentService) RecentTestimonials(limit int) ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	err := s.activeTestimonials().
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&testimonials).Error
	if err != nil {
		return nil, fmt.Errorf("list recent testimonials: %w", err)
	}
	return testimonials, nil
}

// SearchResults holds the matches of a site search.
type SearchResults struct {
	Query     string
	News      []models.News
	Companies []models.Company
}

// Empty reports whether nothing matched.
func (r *SearchResults) Empty() bool {
	return len(r.News) == 0 && len(r.Companies) == 0
}

// Search matches the query as a case-insensitive substring against
// published news and active companies. A blank query matches nothing.
func (s *ContentService) Search(query string) (*SearchResults, error) {
	query = strings.TrimSpace(query)
	results := &SearchResults{Query: query, News: []models.News{}, Companies: []models.Company{}}
	if query == "" {
		return results, nil
	}
	pattern := likePattern(query)

	err := s.publishedNews().
		Where("LOWER(title) LIKE LOWER(?) ESCAPE '\\' OR LOWER(content) LIKE LOWER(?) ESCAPE '\\' OR LOWER(excerpt) LIKE LOWER(?) ESCAPE '\\'",
			pattern, pattern, pattern).
		Order("created_at DESC").
		Find(&results.News).Error
	if err != nil {
		return nil, fmt.Errorf("search news: %w", err)
	}

	err = s.db.
		Where("active = ?", true).
		Where("LOWER(name) LIKE LOWER(?) ESCAPE '\\' OR LOWER(description) LIKE LOWER(?) ESCAPE '\\'", pattern, pattern).
		Order("name ASC").
		Find(&results.Companies).Error
	if err != nil {
		return nil, fmt.Errorf("search companies: %w", err)
	}
	return results, nil
}

func likePattern(q string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(q) + "%"
}

// ActiveNavigationLogo returns the active logo, or nil when none is active.
func (s *ContentService) ActiveNavigationLogo() (*models.NavigationLogo, error) {
	var logo models.NavigationLogo
	err := s.db.Where("active = ?", true).Order("updated_at DESC").Limit(1).Find(&logo).Error
	if err != nil {
		return nil, fmt.Errorf("active navigation logo: %w", err)
	}
	if logo.ID == 0 {
		return nil, nil
	}
	return &logo, nil
}

// ActiveHero returns the active home page hero, or nil when none is active.
func (s *ContentService) ActiveHero() (*models.HomePageHero, error) {
	var hero models.HomePageHero
	err := s.db.Where("active = ?", true).Order("updated_at DESC").Limit(1).Find(&hero).Error
	if err != nil {
		return nil, fmt.Errorf("active hero: %w", err)
	}
	if hero.ID == 0 {
		return nil, nil
	}
	return &hero, nil
}

func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("load %s: %w", what, err)
}
