package middleware

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

var idRegex = regexp.MustCompile(`/(\d+)(?:/|$)`)

// AuditLogger records every successful staff write.
func AuditLogger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		method := c.Method()
		if method == fiber.MethodGet || method == fiber.MethodHead || method == fiber.MethodOptions {
			return c.Next()
		}

		path := utils.CopyString(c.Path())
		user := GetCurrentUser(c)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil || status < 200 || status >= 400 || user == nil {
			return err
		}

		log.Info("audit",
			zap.String("user", user.Username),
			zap.String("action", actionFor(method)),
			zap.String("entity", entityTypeFromPath(path)),
			zap.String("entity_id", extractIDFromPath(path)),
			zap.String("path", path),
			zap.String("ip", c.IP()))
		return nil
	}
}

func actionFor(method string) string {
	switch method {
	case fiber.MethodPost:
		return "create"
	case fiber.MethodPut, fiber.MethodPatch:
		return "update"
	case fiber.MethodDelete:
		return "delete"
	}
	return strings.ToLower(method)
}

// extractIDFromPath gets the numeric ID from URL path
func extractIDFromPath(path string) string {
	matches := idRegex.FindStringSubmatch(path)
	if len(matches) > 1 {
		return matches[1]
	}
	return ""
}

// entityTypeFromPath returns the resource segment of /admin/api/<entity>/...
func entityTypeFromPath(path string) string {
	rest := strings.TrimPrefix(path, "/admin/api/")
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	return rest
}
