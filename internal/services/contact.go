package services

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/azigroup/website/internal/models"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"gorm.io/gorm"
)

const (
	msgRequired     = "Ce champ est obligatoire."
	msgEmail        = "Saisissez une adresse e-mail valide."
	msgPhone        = "Veuillez entrer un numéro de téléphone valide."
	msgMaxLength100 = "Assurez-vous que cette valeur comporte au plus 100 caractères."
	msgMaxLength20  = "Assurez-vous que cette valeur comporte au plus 20 caractères."
)

const minPhoneDigits = 8

// ContactSubmission is what a visitor sends through the contact form or the
// JSON endpoint.
type ContactSubmission struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone" form:"phone"`
	Company string `json:"company" form:"company"`
	Service string `json:"service" form:"service"`
	Message string `json:"message" form:"message"`
}

func (s *ContactSubmission) trim() {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	s.Phone = strings.TrimSpace(s.Phone)
	s.Company = strings.TrimSpace(s.Company)
	s.Service = strings.TrimSpace(s.Service)
	s.Message = strings.TrimSpace(s.Message)
}

// Validate checks the submission and returns validation.Errors keyed by
// field name.
func (s ContactSubmission) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name,
			validation.Required.Error(msgRequired),
			validation.RuneLength(0, 100).Error(msgMaxLength100)),
		validation.Field(&s.Email,
			validation.Required.Error(msgRequired),
			validation.RuneLength(0, 254).Error(msgEmail),
			is.EmailFormat.Error(msgEmail)),
		validation.Field(&s.Phone,
			validation.RuneLength(0, 20).Error(msgMaxLength20),
			validation.By(validPhone)),
		validation.Field(&s.Company,
			validation.RuneLength(0, 100).Error(msgMaxLength100)),
		validation.Field(&s.Service,
			validation.By(validService)),
		validation.Field(&s.Message,
			validation.Required.Error(msgRequired)),
	)
}

// NormalizePhone strips spaces, hyphens and plus signs.
func NormalizePhone(phone string) string {
	return strings.NewReplacer(" ", "", "-", "", "+", "").Replace(phone)
}

func validPhone(value interface{}) error {
	phone, _ := value.(string)
	if phone == "" {
		return nil
	}
	digits := NormalizePhone(phone)
	if len(digits) < minPhoneDigits {
		return errors.New(msgPhone)
	}
	for _, r := range digits {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return errors.New(msgPhone)
		}
	}
	return nil
}

func validService(value interface{}) error {
	service, _ := value.(string)
	if service == "" || models.ContactService(service).Valid() {
		return nil
	}
	return fmt.Errorf("Sélectionnez un choix valide. %s n'en fait pas partie.", service)
}

// FieldErrors flattens validation errors into field -> messages. It returns
// nil for any other error.
func FieldErrors(err error) map[string][]string {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string][]string, len(verrs))
	for field, ferr := range verrs {
		if ferr != nil {
			out[field] = []string{ferr.Error()}
		}
	}
	return out
}

// ContactService stores contact submissions.
type ContactService struct {
	db *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{db: db}
}

// Submit validates and persists a submission. Invalid input yields
// validation.Errors and nothing is written.
func (s *ContactService) Submit(sub ContactSubmission) (*models.Contact, error) {
	sub.trim()
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	contact := &models.Contact{
		Name:    sub.Name,
		Email:   sub.Email,
		Phone:   NormalizePhone(sub.Phone),
		Company: sub.Company,
		Service: models.ContactService(sub.Service),
		Message: sub.Message,
		Status:  models.ContactStatusNew,
	}
	if err := s.db.Create(contact).Error; err != nil {
		return nil, fmt.Errorf("save contact: %w", err)
	}
	return contact, nil
}

// ContactFilter narrows the staff contact listing.
type ContactFilter struct {
	Status  string
	Service string
	Search  string
}

// List returns one page of contacts, newest first.
func (s *ContactService) List(f ContactFilter, page string, perPage int) ([]models.Contact, Page, error) {
	query := func() *gorm.DB {
		q := s.db.Model(&models.Contact{})
		if f.Status != "" {
			q = q.Where("status = ?", f.Status)
		}
		if f.Service != "" {
			q = q.Where("service = ?", f.Service)
		}
		if search := strings.TrimSpace(f.Search); search != "" {
			pattern := likePattern(search)
			q = q.Where("LOWER(name) LIKE LOWER(?) ESCAPE '\\' OR LOWER(email) LIKE LOWER(?) ESCAPE '\\' OR LOWER(company) LIKE LOWER(?) ESCAPE '\\'",
				pattern, pattern, pattern)
		}
		return q
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, Page{}, fmt.Errorf("count contacts: %w", err)
	}
	p := NewPage(page, total, perPage)

	var contacts []models.Contact
	err := query().Order("created_at DESC").Order("id DESC").
		Offset(p.Offset()).Limit(p.PerPage).
		Find(&contacts).Error
	if err != nil {
		return nil, p, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, p, nil
}

// Get loads one contact.
func (s *ContactService) Get(id uint) (*models.Contact, error) {
	var contact models.Contact
	if err := s.db.First(&contact, id).Error; err != nil {
		return nil, notFound(err, "contact")
	}
	return &contact, nil
}

// NewSince returns the contacts still marked new that arrived after t,
// oldest first.
func (s *ContactService) NewSince(t time.Time) ([]models.Contact, error) {
	var contacts []models.Contact
	err := s.db.Where("status = ? AND created_at > ?", models.ContactStatusNew, t).
		Order("created_at ASC").Order("id ASC").
		Find(&contacts).Error
	if err != nil {
		return nil, fmt.Errorf("list new contacts: %w", err)
	}
	return contacts, nil
}

// ErrInvalidStatus is returned for an unknown contact status.
var ErrInvalidStatus = errors.New("invalid contact status")

// SetStatus moves a contact to another handling status.
func (s *ContactService) SetStatus(id uint, status models.ContactStatus) (*models.Contact, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	contact, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(contact).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("update contact status: %w", err)
	}
	contact.Status = status
	return contact, nil
}

// Delete removes a contact.
func (s *ContactService) Delete(id uint) error {
	res := s.db.Delete(&models.Contact{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete contact: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
