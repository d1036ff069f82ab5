package handlers

import (
	"errors"

	"github.com/azigroup/website/internal/markdown"
	"github.com/azigroup/website/internal/models"
	"github.com/azigroup/website/internal/services"
	"github.com/dustin/go-humanize"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PagesHandler serves the public HTML pages.
type PagesHandler struct {
	content *services.ContentService
	media   models.URLResolver
	log     *zap.Logger
}

func NewPagesHandler(content *services.ContentService, media models.URLResolver, log *zap.Logger) *PagesHandler {
	return &PagesHandler{content: content, media: media, log: log}
}

// activeHero treats a failed lookup as no hero.
func (h *PagesHandler) activeHero() *models.HomePageHero {
	hero, err := h.content.ActiveHero()
	if err != nil {
		h.log.Warn("Failed to load home page hero", zap.Error(err))
		return nil
	}
	return hero
}

// Home renders the landing page.
func (h *PagesHandler) Home(c *fiber.Ctx) error {
	companies, err := h.content.ActiveCompanies()
	if err != nil {
		return err
	}
	news, err := h.content.RecentNews(services.RecentLimit)
	if err != nil {
		return err
	}
	testimonials, err := h.content.RecentTestimonials(services.RecentLimit)
	if err != nil {
		return err
	}

	return render(c, "index", fiber.Map{
		"companies":    newCompanyViews(companies, h.media),
		"news":         newNewsViews(news, h.media),
		"testimonials": newTestimonialViews(testimonials, h.media),
		"hero":         newHeroView(h.activeHero(), h.media),
	})
}

func (h *PagesHandler) About(c *fiber.Ctx) error {
	companies, err := h.content.ActiveCompanies()
	if err != nil {
		return err
	}
	return render(c, "about", fiber.Map{
		"companies": newCompanyViews(companies, h.media),
	})
}

func (h *PagesHandler) Companies(c *fiber.Ctx) error {
	companies, err := h.content.ActiveCompanies()
	if err != nil {
		return err
	}
	data := fiber.Map{"companies": newCompanyViews(companies, h.media)}
	if hero := h.activeHero(); hero != nil {
		data["hero"] = newHeroView(hero, h.media)
	}
	return render(c, "companies", data)
}

// CompanyDetail shows an active company. Unknown or inactive slugs are 404.
func (h *PagesHandler) CompanyDetail(c *fiber.Ctx) error {
	company, err := h.content.CompanyBySlug(c.Params("slug"))
	if errors.Is(err, services.ErrNotFound) {
		return fiber.ErrNotFound
	}
	if err != nil {
		return err
	}
	return render(c, "company_detail", fiber.Map{
		"company": newCompanyView(company, h.media),
	})
}

func (h *PagesHandler) NewsList(c *fiber.Ctx) error {
	news, page, err := h.content.PublishedNews(c.Query("page"))
	if err != nil {
		return err
	}
	return render(c, "news_list", fiber.Map{
		"news":        newNewsViews(news, h.media),
		"pagination":  newPaginationView(page),
		"total_label": totalLabel(page.TotalItems),
	})
}

func totalLabel(n int64) string {
	switch n {
	case 0:
		return "Aucun article publié"
	case 1:
		return "1 article publié"
	}
	return humanize.Comma(n) + " articles publiés"
}

// NewsDetail shows a published article with its Markdown body rendered.
func (h *PagesHandler) NewsDetail(c *fiber.Ctx) error {
	article, err := h.content.NewsBySlug(c.Params("slug"))
	if errors.Is(err, services.ErrNotFound) {
		return fiber.ErrNotFound
	}
	if err != nil {
		return err
	}

	related, err := h.content.RelatedNews(article, services.RecentLimit)
	if err != nil {
		return err
	}

	view := newNewsView(article, h.media)
	view.ContentHTML, err = markdown.Render(article.Content)
	if err != nil {
		return err
	}

	return render(c, "news_detail", fiber.Map{
		"article": view,
		"related": newNewsViews(related, h.media),
	})
}

func (h *PagesHandler) Testimonials(c *fiber.Ctx) error {
	testimonials, page, err := h.content.ActiveTestimonials(c.Query("page"))
	if err != nil {
		return err
	}
	return render(c, "testimonials", fiber.Map{
		"testimonials": newTestimonialViews(testimonials, h.media),
		"pagination":   newPaginationView(page),
	})
}

// Search matches news and companies. A blank query shows an empty form.
func (h *PagesHandler) Search(c *fiber.Ctx) error {
	results, err := h.content.Search(c.Query("q"))
	if err != nil {
		return err
	}
	return render(c, "search", fiber.Map{
		"query": results.Query,
		"results": SearchView{
			Empty:     results.Empty(),
			News:      newNewsViews(results.News, h.media),
			Companies: newCompanyViews(results.Companies, h.media),
		},
	})
}
