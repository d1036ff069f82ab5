package handlers

import (
	"time"

	"github.com/azigroup/website/internal/services"
	"github.com/gofiber/fiber/v2"
)

// SitemapEntry is one <url> of the sitemap.
type SitemapEntry struct {
	Loc        string
	LastMod    string
	ChangeFreq string
	Priority   string
}

// SEOHandler serves sitemap.xml and robots.txt.
type SEOHandler struct {
	content *services.ContentService
	siteURL string
}

func NewSEOHandler(content *services.ContentService, siteURL string) *SEOHandler {
	return &SEOHandler{content: content, siteURL: siteURL}
}

var staticPages = []SitemapEntry{
	{Loc: "/", ChangeFreq: "weekly", Priority: "1.0"},
	{Loc: "/about/", ChangeFreq: "monthly", Priority: "0.8"},
	{Loc: "/companies/", ChangeFreq: "monthly", Priority: "0.8"},
	{Loc: "/news/", ChangeFreq: "daily", Priority: "0.9"},
	{Loc: "/testimonials/", ChangeFreq: "monthly", Priority: "0.6"},
	{Loc: "/contact/", ChangeFreq: "yearly", Priority: "0.5"},
}

func (h *SEOHandler) Sitemap(c *fiber.Ctx) error {
	companies, err := h.content.ActiveCompanies()
	if err != nil {
		return err
	}
	news, err := h.content.AllPublishedNews()
	if err != nil {
		return err
	}

	entries := make([]SitemapEntry, 0, len(staticPages)+len(companies)+len(news))
	for _, e := range staticPages {
		e.Loc = h.siteURL + e.Loc
		entries = append(entries, e)
	}
	for i := range companies {
		entries = append(entries, SitemapEntry{
			Loc:        h.siteURL + companies[i].URL(),
			LastMod:    companies[i].UpdatedAt.UTC().Format(time.DateOnly),
			ChangeFreq: "monthly",
			Priority:   "0.7",
		})
	}
	for i := range news {
		entries = append(entries, SitemapEntry{
			Loc:        h.siteURL + news[i].URL(),
			LastMod:    news[i].UpdatedAt.UTC().Format(time.DateOnly),
			ChangeFreq: "never",
			Priority:   "0.6",
		})
	}

	if err := c.Render("seo/sitemap", fiber.Map{"entries": entries}); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return nil
}

func (h *SEOHandler) Robots(c *fiber.Ctx) error {
	if err := c.Render("seo/robots", fiber.Map{"site_url": h.siteURL}); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return nil
}
