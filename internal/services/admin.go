package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/azigroup/website/internal/models"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-slug"
	"gorm.io/gorm"
)

var (
	ErrSlugTaken   = errors.New("slug already in use")
	ErrInvalidSlug = errors.New("invalid slug")
)

// MediaRemover deletes stored media files.
type MediaRemover interface {
	Delete(path string) error
}

// AdminService performs staff writes on the site content.
type AdminService struct {
	db    *gorm.DB
	media MediaRemover
}

func NewAdminService(db *gorm.DB, media MediaRemover) *AdminService {
	return &AdminService{db: db, media: media}
}

// ResolveSlug normalizes an explicit slug, or derives one from source when
// value is empty.
func ResolveSlug(value, source string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		value = source
	}
	normalized, err := slug.Normalize(value)
	if err != nil || normalized == "" || !slug.IsValid(normalized) {
		return "", ErrInvalidSlug
	}
	return normalized, nil
}

func (s *AdminService) slugInUse(model interface{}, value string, id uint) (bool, error) {
	var n int64
	q := s.db.Model(model).Where("slug = ?", value)
	if id != 0 {
		q = q.Where("id <> ?", id)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, fmt.Errorf("check slug: %w", err)
	}
	return n > 0, nil
}

// Company

func validateCompany(c *models.Company) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Name, validation.Required, validation.RuneLength(1, 100)),
		validation.Field(&c.Description, validation.Required),
		validation.Field(&c.Icon, validation.RuneLength(0, 10)),
		validation.Field(&c.Gradient, validation.RuneLength(0, 200)),
	)
}

// SaveCompany validates and inserts or updates a company.
func (s *AdminService) SaveCompany(c *models.Company) error {
	if err := validateCompany(c); err != nil {
		return err
	}
	sl, err := ResolveSlug(c.Slug, c.Name)
	if err != nil {
		return validation.Errors{"slug": err}
	}
	c.Slug = sl
	taken, err := s.slugInUse(&models.Company{}, c.Slug, c.ID)
	if err != nil {
		return err
	}
	if taken {
		return ErrSlugTaken
	}
	if err := s.db.Omit("ProjectImages").Save(c).Error; err != nil {
		return fmt.Errorf("save company: %w", err)
	}
	return nil
}

// Company loads a company with its project images, whatever its status.
func (s *AdminService) Company(id uint) (*models.Company, error) {
	var c models.Company
	err := s.db.Preload("ProjectImages", func(db *gorm.DB) *gorm.DB {
		return db.Order(models.ProjectImageOrder)
	}).First(&c, id).Error
	if err != nil {
		return nil, notFound(err, "company")
	}
	return &c, nil
}

// DeleteCompany removes a company and its project images.
func (s *AdminService) DeleteCompany(id uint) error {
	c, err := s.Company(id)
	if err != nil {
		return err
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("company_id = ?", id).Delete(&models.CompanyProjectImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Company{}, id).Error
	})
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}

	s.removeMedia(c.Logo)
	for _, img := range c.ProjectImages {
		s.removeMedia(img.Image)
	}
	return nil
}

// SaveProjectImage validates and stores a company project image.
func (s *AdminService) SaveProjectImage(img *models.CompanyProjectImage) error {
	err := validation.ValidateStruct(img,
		validation.Field(&img.CompanyID, validation.Required),
		validation.Field(&img.Image, validation.Required),
		validation.Field(&img.Title, validation.Required, validation.RuneLength(1, 200)),
	)
	if err != nil {
		return err
	}
	if err := s.db.Save(img).Error; err != nil {
		return fmt.Errorf("save project image: %w", err)
	}
	return nil
}

// DeleteProjectImage removes one image of a company.
func (s *AdminService) DeleteProjectImage(companyID, imageID uint) error {
	var img models.CompanyProjectImage
	if err := s.db.Where("company_id = ?", companyID).First(&img, imageID).Error; err != nil {
		return notFound(err, "project image")
	}
	if err := s.db.Delete(&img).Error; err != nil {
		return fmt.Errorf("delete project image: %w", err)
	}
	s.removeMedia(img.Image)
	return nil
}

// News

// SaveNews validates and inserts or updates an article.
func (s *AdminService) SaveNews(n *models.News) error {
	err := validation.ValidateStruct(n,
		validation.Field(&n.Title, validation.Required, validation.RuneLength(1, 200)),
		validation.Field(&n.Content, validation.Required),
		validation.Field(&n.Excerpt, validation.RuneLength(0, 300)),
	)
	if err != nil {
		return err
	}
	sl, err := ResolveSlug(n.Slug, n.Title)
	if err != nil {
		return validation.Errors{"slug": err}
	}
	n.Slug = sl
	taken, err := s.slugInUse(&models.News{}, n.Slug, n.ID)
	if err != nil {
		return err
	}
	if taken {
		return ErrSlugTaken
	}
	if err := s.db.Save(n).Error; err != nil {
		return fmt.Errorf("save news: %w", err)
	}
	return nil
}

// DeleteNews removes an article and its uploaded image.
func (s *AdminService) DeleteNews(id uint) error {
	var n models.News
	if err := s.db.First(&n, id).Error; err != nil {
		return notFound(err, "news")
	}
	if err := s.db.Delete(&n).Error; err != nil {
		return fmt.Errorf("delete news: %w", err)
	}
	s.removeMedia(n.Image)
	return nil
}

// Testimonial

// SaveTestimonial validates and stores a testimonial. A zero rating means
// the default of five stars.
func (s *AdminService) SaveTestimonial(t *models.Testimonial) error {
	if t.Rating == 0 {
		t.Rating = models.MaxRating
	}
	err := validation.ValidateStruct(t,
		validation.Field(&t.Name, validation.Required, validation.RuneLength(1, 100)),
		validation.Field(&t.Company, validation.Required, validation.RuneLength(1, 100)),
		validation.Field(&t.Position, validation.RuneLength(0, 100)),
		validation.Field(&t.Content, validation.Required),
		validation.Field(&t.Rating, validation.Min(models.MinRating), validation.Max(models.MaxRating)),
	)
	if err != nil {
		return err
	}
	if err := s.db.Save(t).Error; err != nil {
		return fmt.Errorf("save testimonial: %w", err)
	}
	return nil
}

// Singletons

// SaveNavigationLogo stores a logo. Activating it deactivates every other
// logo in the same transaction.
func (s *AdminService) SaveNavigationLogo(l *models.NavigationLogo) error {
	err := validation.ValidateStruct(l,
		validation.Field(&l.Name, validation.RuneLength(0, 100)),
		validation.Field(&l.Logo, validation.Required),
	)
	if err != nil {
		return err
	}
	if err := s.db.Save(l).Error; err != nil {
		return fmt.Errorf("save navigation logo: %w", err)
	}
	return nil
}

// SaveHero stores a home page hero. Activating it deactivates every other
// hero in the same transaction.
func (s *AdminService) SaveHero(h *models.HomePageHero) error {
	err := validation.ValidateStruct(h,
		validation.Field(&h.Title, validation.RuneLength(0, 200)),
		validation.Field(&h.BackgroundImage, validation.Required),
		validation.Field(&h.OverlayOpacity, validation.Min(0.0), validation.Max(1.0)),
	)
	if err != nil {
		return err
	}
	if err := s.db.Save(h).Error; err != nil {
		return fmt.Errorf("save hero: %w", err)
	}
	return nil
}

// AdminPerPage is the page size of staff listings.
const AdminPerPage = 25

// List loads one page of any content table, active and inactive rows alike.
// dest must be a pointer to a slice of the model.
func (s *AdminService) List(dest interface{}, order, page string) (Page, error) {
	var total int64
	if err := s.db.Model(dest).Count(&total).Error; err != nil {
		return Page{}, fmt.Errorf("count: %w", err)
	}
	p := NewPage(page, total, AdminPerPage)
	err := s.db.Order(order).Order("id DESC").
		Offset(p.Offset()).Limit(p.PerPage).
		Find(dest).Error
	if err != nil {
		return p, fmt.Errorf("list: %w", err)
	}
	return p, nil
}

// Get loads any record by primary key into dest.
func (s *AdminService) Get(dest interface{}, id uint) error {
	if err := s.db.First(dest, id).Error; err != nil {
		return notFound(err, "record")
	}
	return nil
}

// Delete removes any record by primary key and reports ErrNotFound when
// nothing matched.
func (s *AdminService) Delete(model interface{}, id uint) error {
	res := s.db.Delete(model, id)
	if res.Error != nil {
		return fmt.Errorf("delete: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *AdminService) removeMedia(path string) {
	if path == "" || s.media == nil {
		return
	}
	_ = s.media.Delete(path)
}

// DeleteTestimonial removes a testimonial and its photo.
func (s *AdminService) DeleteTestimonial(id uint) error {
	var t models.Testimonial
	if err := s.Get(&t, id); err != nil {
		return err
	}
	if err := s.Delete(&models.Testimonial{}, id); err != nil {
		return err
	}
	s.removeMedia(t.Image)
	return nil
}

// DeleteNavigationLogo removes a logo and its image.
func (s *AdminService) DeleteNavigationLogo(id uint) error {
	var l models.NavigationLogo
	if err := s.Get(&l, id); err != nil {
		return err
	}
	if err := s.Delete(&models.NavigationLogo{}, id); err != nil {
		return err
	}
	s.removeMedia(l.Logo)
	return nil
}

// DeleteHero removes a hero and its background image.
func (s *AdminService) DeleteHero(id uint) error {
	var h models.HomePageHero
	if err := s.Get(&h, id); err != nil {
		return err
	}
	if err := s.Delete(&models.HomePageHero{}, id); err != nil {
		return err
	}
	s.removeMedia(h.BackgroundImage)
	return nil
}
