package handlers

import (
	"time"

	"github.com/azigroup/website/internal/models"
	"github.com/azigroup/website/internal/services"
	"github.com/gofiber/fiber/v2"
)

// APIHandler serves the public read-only JSON endpoints.
type APIHandler struct {
	content *services.ContentService
	media   models.URLResolver
}

func NewAPIHandler(content *services.ContentService, media models.URLResolver) *APIHandler {
	return &APIHandler{content: content, media: media}
}

type companyJSON struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Gradient    string   `json:"gradient"`
	Services    []string `json:"services"`
	KPIs        []string `json:"kpis"`
	URL         string   `json:"url"`
}

type newsJSON struct {
	ID        uint    `json:"id"`
	Title     string  `json:"title"`
	Slug      string  `json:"slug"`
	Excerpt   string  `json:"excerpt"`
	ImageURL  *string `json:"image_url"`
	CreatedAt string  `json:"created_at"`
	URL       string  `json:"url"`
}

// Companies lists every active company.
func (h *APIHandler) Companies(c *fiber.Ctx) error {
	companies, err := h.content.ActiveCompanies()
	if err != nil {
		return err
	}

	data := make([]companyJSON, 0, len(companies))
	for i := range companies {
		co := &companies[i]
		data = append(data, companyJSON{
			ID:          co.ID,
			Name:        co.Name,
			Slug:        co.Slug,
			Description: co.Description,
			Icon:        co.Icon,
			Gradient:    co.Gradient,
			Services:    co.ServicesList(),
			KPIs:        co.KPIsList(),
			URL:         co.URL(),
		})
	}
	return c.JSON(fiber.Map{"companies": data})
}

// News lists every published article, newest first. image_url is null when
// the article has no image.
func (h *APIHandler) News(c *fiber.Ctx) error {
	news, err := h.content.AllPublishedNews()
	if err != nil {
		return err
	}

	data := make([]newsJSON, 0, len(news))
	for i := range news {
		n := &news[i]
		item := newsJSON{
			ID:        n.ID,
			Title:     n.Title,
			Slug:      n.Slug,
			Excerpt:   n.GetExcerpt(),
			CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
			URL:       n.URL(),
		}
		if u := n.GetImageURL(h.media); u != "" {
			item.ImageURL = &u
		}
		data = append(data, item)
	}
	return c.JSON(fiber.Map{"news": data})
}
