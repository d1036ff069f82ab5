package middleware

import (
	"strings"

	"github.com/azigroup/website/internal/services"
	"github.com/gofiber/fiber/v2"
)

const siteContextKey = "site"

var nonPagePrefixes = []string{"/api/", "/admin/", "/media/", "/health"}

// SiteContext computes the navigation and footer data for every page
// request. Nothing is cached between requests.
func SiteContext(svc *services.SiteContextService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		for _, prefix := range nonPagePrefixes {
			if strings.HasPrefix(path, prefix) {
				return c.Next()
			}
		}
		ctx := svc.Build()
		c.Locals(siteContextKey, &ctx)
		return c.Next()
	}
}

// GetSiteContext returns the request's site context, or an empty one.
func GetSiteContext(c *fiber.Ctx) *services.SiteContext {
	if ctx, ok := c.Locals(siteContextKey).(*services.SiteContext); ok {
		return ctx
	}
	return &services.SiteContext{}
}
