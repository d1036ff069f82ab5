package handlers

import (
	"encoding/base64"
	"strings"

	"github.com/azigroup/website/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

const flashCookie = "azi_flash"

// FlashMessage is a one-shot notice shown on the next rendered page.
type FlashMessage struct {
	Level string
	Text  string
}

func setFlash(c *fiber.Ctx, level, text string) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString([]byte(level + "|" + text)),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func consumeFlash(c *fiber.Ctx) []FlashMessage {
	raw := c.Cookies(flashCookie)
	if raw == "" {
		return nil
	}
	c.ClearCookie(flashCookie)

	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	level, text, ok := strings.Cut(string(decoded), "|")
	if !ok || text == "" {
		return nil
	}
	return []FlashMessage{{Level: level, Text: text}}
}

// render executes a page template with the shared layout data.
func render(c *fiber.Ctx, name string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["site"] = newSiteView(middleware.GetSiteContext(c))
	data["request_path"] = c.Path()
	if _, ok := data["messages"]; !ok {
		data["messages"] = consumeFlash(c)
	}
	return c.Render(name, data)
}
