package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/azigroup/website/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var pageErrorMessages = map[int]string{
	fiber.StatusNotFound:            "La page que vous recherchez n'existe pas.",
	fiber.StatusMethodNotAllowed:    "Méthode non autorisée.",
	fiber.StatusTooManyRequests:     "Trop de requêtes. Veuillez réessayer plus tard.",
	fiber.StatusInternalServerError: "Une erreur interne est survenue. Veuillez réessayer plus tard.",
}

func isAPIPath(path string) bool {
	return strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/admin/")
}

// ErrorHandler renders JSON for API routes and an HTML page otherwise.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fe *fiber.Error
		switch {
		case errors.As(err, &fe):
			code = fe.Code
			message = fe.Message
		case errors.Is(err, services.ErrNotFound):
			code = fiber.StatusNotFound
			message = "Not found"
		}

		if code >= fiber.StatusInternalServerError {
			log.Error("Request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err))
			message = "Internal server error"
		}

		if isAPIPath(c.Path()) {
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"message": message,
			})
		}

		text, ok := pageErrorMessages[code]
		if !ok {
			text = http.StatusText(code)
		}
		c.Status(code)
		if rerr := render(c, "error", fiber.Map{"code": code, "message": text}); rerr != nil {
			log.Error("Failed to render error page", zap.Error(rerr))
			return c.Status(code).SendString(http.StatusText(code))
		}
		return nil
	}
}
