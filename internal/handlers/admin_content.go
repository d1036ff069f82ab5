package handlers

import (
	"time"

	"github.com/azigroup/website/internal/models"
	"github.com/azigroup/website/internal/services"
	"github.com/gofiber/fiber/v2"
)

// AdminContentHandler is the staff CRUD API over the site content.
type AdminContentHandler struct {
	admin *services.AdminService
}

func NewAdminContentHandler(admin *services.AdminService) *AdminContentHandler {
	return &AdminContentHandler{admin: admin}
}

// keep restores the server-owned fields after a body was decoded over a
// loaded record.
func keep(id *uint, created *time.Time, origID uint, origCreated time.Time) {
	*id = origID
	*created = origCreated
}

// Companies

func (h *AdminContentHandler) ListCompanies(c *fiber.Ctx) error {
	var companies []models.Company
	p, err := h.admin.List(&companies, "name ASC", c.Query("page"))
	if err != nil {
		return err
	}
	return listResponse(c, companies, p)
}

func (h *AdminContentHandler) GetCompany(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	company, err := h.admin.Company(id)
	if err != nil {
		return adminError(c, err)
	}
	return dataResponse(c, fiber.StatusOK, company)
}

func (h *AdminContentHandler) CreateCompany(c *fiber.Ctx) error {
	company := models.Company{Active: true}
	if err := c.BodyParser(&company); err != nil {
		return invalidBody(c)
	}
	company.ID = 0
	company.CreatedAt = time.Time{}
	company.ProjectImages = nil
	if err := h.admin.SaveCompany(&company); err != nil {
		return adminError(c, err)
	}
	return dataResponse(c, fiber.StatusCreated, company)
}

func (h *AdminContentHandler) UpdateCompany(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	company, err := h.admin.Company(id)
	if err != nil {
		return adminError(c, err)
	}
	created := company.CreatedAt
	if err := c.BodyParser(company); err != nil {
		return invalidBody(c)
	}
	keep(&company.ID, &company.CreatedAt, id, created)
	if err := h.admin.SaveCompany(company); err != nil {
		return adminError(c, err)
	}
	return dataResponse(c, fiber.StatusOK, company)
}

func (h *AdminContentHandler) DeleteCompany(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.admin.DeleteCompany(id); err != nil {
		return adminError(c, err)
	}
	return deletedResponse(c, "Company")
}

// Project images, nested under a company

func (h *AdminContentHandler) CreateProjectImage(c *fiber.Ctx) error {
	companyID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if _, err := h.admin.Company(companyID); err != nil {
		return adminError(c, err)
	}

	var img models.CompanyProjectImage
	if err := c.BodyParser(&img); err != nil {
		return invalidBody(c)
	}
	img.ID = 0
	img.CompanyID = companyID
	if err := h.admin.SaveProjectImage(&img); err != nil {
		return adminError(c, err)
	}
	return dataResponse(c, fiber.StatusCreated, img)
}

func (h *AdminContentHandler) UpdateProjectImage(c *fiber.Ctx) error {
	companyID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	imageID, err := parseID(c, "imageId")
	if err != nil {
		return err
	}

	var img models.CompanyProjectImage
	if err := h.admin.Get(&img, imageID); err != nil || img.CompanyID != companyID {
		return adminError(c, services.ErrNotFound)
	}
	created := img.CreatedAt
	if err := c.BodyParser(&img); err != nil {
		return invalidBody(c)
	}
	keep(&img.ID, &img.CreatedAt, imageID, created)
	img.CompanyID = companyID
	if err := h.admin.SaveProjectImage(&img); err != nil {
		return adminError(c, err)
	}
	return dataResponse(c, fiber.StatusOK, img)
}

func (h *AdminContentHandler) DeleteProjectImage(c *fiber.Ctx) error {
	companyID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	imageID, err := parseID(c, "imageId")
	if err != nil {
		return err
	}
	if err := h.admin.DeleteProjectImage(companyID, imageID); err != nil {
		return adminError(c, err)
	}
	return deletedResponse(c, "Project image")
}

// News

func (h *AdminContentHandler) ListNews(c *fiber.Ctx) error {
	var news []models.News
	p, err := h.admin.List(&news, "created_at DESC", c.Query("page"))
	if err != nil {
		return err
	}
	return listResponse(c, news, p)
}

func (h *AdminContentHandler) GetNews(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var n models.News
	if err := h.admin.Get(&n, id); err != nil {
		return adminError(c, err)
	}
	return dataResponse(c, fiber.StatusOK, n)
}

func (h *AdminContentHandler) CreateNews(c *fiber.Ctx) error {
	n := models.News{Published: true}
	if err := c.BodyParser(&n); err != nil {
		return invalidBody(c)
	}
	n.ID = 0
	n.CreatedAt = time.Time{}
	if err := h.admin.SaveNews(&n); err != nil {
		return adminError(c, err)
	}
	return dataResponse(c, fiber.StatusCreated, n)
}

func (h *AdminContentHandler) UpdateNews(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var n models.News
	if err := h.admin.Get(&n, id); err != nil {
		return adminError(c, err)
	}
	created := n.CreatedAt
	if err := c.BodyParser(&n); err != nil {
		return invalidBody(c)
	}
	keep(&n.ID, &n.CreatedAt, id, created)
	if err := h.admin.SaveNews(&n); err != nil {
		return adminError(c, err)
	}
	return dataResponse(c, fiber.StatusOK, n)
}

func (h *AdminContentHandler) DeleteNews(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.admin.DeleteNews(id); err != nil {
		return adminError(c, err)
	}
	return deletedResponse(c, "News")
}

// Testimonials

func (h *AdminContentHandler) ListTestimonials(c *fiber.Ctx) error {
	var list []models.Testimonial
	p, err := h.admin.List(&list, "created_at DESC", c.Query("page"))
	if err != nil {
		return err
	}
	return listResponse(c, list, p)
}

func (h *AdminContentHandler) GetTestimonial(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var t models.Testimonial
	if err := h.admin.Get(&t, id); err != nil {
		return adminError(c, err)
	}
	return dataResponse(c, fiber.StatusOK, t)
}

func (h *AdminContentHandler) CreateTestimonial(c *fiber.Ctx) error {
	t := models.Testimonial{Active: true}
	if err := c.BodyParser(&t); err != nil {
		return invalidBody(c)
	}
	t.ID = 0
	t.CreatedAt = time.Time{}
	if err := h.admin.SaveTestimonial(&t); err != nil {
		return adminError(c, err)
	}
	return dataResponse(c, fiber.StatusCreated, t)
}

func (h *AdminContentHandler) UpdateTestimonial(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var t models.Testimonial
	if err := h.admin.Get(&t, id); err != nil {
		return adminError(c, err)
	}
	created := t.CreatedAt
	if err := c.BodyParser(&t); err != nil {
		return invalidBody(c)
	}
	keep(&t.ID, &t.CreatedAt, id, created)
	if err := h.admin.SaveTestimonial(&t); err != nil {
		return adminError(c, err)
	}
	return dataResponse(c, fiber.StatusOK, t)
}

func (h *AdminContentHandler) DeleteTestimonial(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.admin.DeleteTestimonial(id); err != nil {
		return adminError(c, err)
	}
	return deletedResponse(c, "Testimonial")
}

// Navigation logos

func (h *AdminContentHandler) ListNavigationLogos(c *fiber.Ctx) error {
	var logos []models.NavigationLogo
	p, err := h.admin.List(&logos, "created_at DESC", c.Query("page"))
	if err != nil {
		return err
	}
	return listResponse(c, logos, p)
}

func (h *AdminContentHandler) GetNavigationLogo(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var l models.NavigationLogo
	if err := h.admin.Get(&l, id); err != nil {
		return adminError(c, err)
	}
	return dataResponse(c, fiber.StatusOK, l)
}

func (h *AdminContentHandler) CreateNavigationLogo(c *fiber.Ctx) error {
	l := models.NavigationLogo{Active: true}
	if err := c.BodyParser(&l); err != nil {
		return invalidBody(c)
	}
	l.ID = 0
	if err := h.admin.SaveNavigationLogo(&l); err != nil {
		return adminError(c, err)
	}
	return dataResponse(c, fiber.StatusCreated, l)
}

func (h *AdminContentHandler) UpdateNavigationLogo(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var l models.NavigationLogo
	if err := h.admin.Get(&l, id); err != nil {
		return adminError(c, err)
	}
	created := l.CreatedAt
	if err := c.BodyParser(&l); err != nil {
		return invalidBody(c)
	}
	keep(&l.ID, &l.CreatedAt, id, created)
	if err := h.admin.SaveNavigationLogo(&l); err != nil {
		return adminError(c, err)
	}
	return dataResponse(c, fiber.StatusOK, l)
}

func (h *AdminContentHandler) DeleteNavigationLogo(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.admin.DeleteNavigationLogo(id); err != nil {
		return adminError(c, err)
	}
	return deletedResponse(c, "Navigation logo")
}

// Home page heroes

func (h *AdminContentHandler) ListHeroes(c *fiber.Ctx) error {
	var heroes []models.HomePageHero
	p, err := h.admin.List(&heroes, "created_at DESC", c.Query("page"))
	if err != nil {
		return err
	}
	return listResponse(c, heroes, p)
}

func (h *AdminContentHandler) GetHero(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var hero models.HomePageHero
	if err := h.admin.Get(&hero, id); err != nil {
		return adminError(c, err)
	}
	return dataResponse(c, fiber.StatusOK, hero)
}

func (h *AdminContentHandler) CreateHero(c *fiber.Ctx) error {
	hero := models.HomePageHero{
		Subtitle:       models.DefaultHeroSubtitle,
		OverlayOpacity: models.DefaultHeroOpacity,
		Active:         true,
	}
	if err := c.BodyParser(&hero); err != nil {
		return invalidBody(c)
	}
	hero.ID = 0
	if err := h.admin.SaveHero(&hero); err != nil {
		return adminError(c, err)
	}
	return dataResponse(c, fiber.StatusCreated, hero)
}

func (h *AdminContentHandler) UpdateHero(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var hero models.HomePageHero
	if err := h.admin.Get(&hero, id); err != nil {
		return adminError(c, err)
	}
	created := hero.CreatedAt
	if err := c.BodyParser(&hero); err != nil {
		return invalidBody(c)
	}
	keep(&hero.ID, &hero.CreatedAt, id, created)
	if err := h.admin.SaveHero(&hero); err != nil {
		return adminError(c, err)
	}
	return dataResponse(c, fiber.StatusOK, hero)
}

func (h *AdminContentHandler) DeleteHero(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.admin.DeleteHero(id); err != nil {
		return adminError(c, err)
	}
	return deletedResponse(c, "Hero")
}
