package handlers

import (
	"strings"

	"github.com/azigroup/website/internal/models"
	"github.com/azigroup/website/internal/services"
	"github.com/gofiber/fiber/v2"
)

// SettingsHandler exposes the free-form site settings by key. The JWT
// signing secret is never reachable through it.
type SettingsHandler struct {
	settings *services.SettingsService
}

func NewSettingsHandler(settings *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

func settingKey(c *fiber.Ctx) (string, bool) {
	key := strings.TrimSpace(c.Params("key"))
	return key, key != "" && key != models.SettingJWTSecret
}

func (h *SettingsHandler) List(c *fiber.Ctx) error {
	settings, err := h.settings.List()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    settings,
	})
}

func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	key, ok := settingKey(c)
	if !ok {
		return adminError(c, services.ErrNotFound)
	}
	setting, err := h.settings.Find(key)
	if err != nil {
		return adminError(c, err)
	}
	return dataResponse(c, fiber.StatusOK, setting)
}

// Put creates or updates a setting.
func (h *SettingsHandler) Put(c *fiber.Ctx) error {
	key, ok := settingKey(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid setting key",
		})
	}
	var req struct {
		Value       string `json:"value"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	setting, err := h.settings.Set(key, req.Value, req.Description)
	if err != nil {
		return err
	}
	return dataResponse(c, fiber.StatusOK, setting)
}

func (h *SettingsHandler) Delete(c *fiber.Ctx) error {
	key, ok := settingKey(c)
	if !ok {
		return adminError(c, services.ErrNotFound)
	}
	if err := h.settings.Delete(key); err != nil {
		return adminError(c, err)
	}
	return deletedResponse(c, "Setting")
}
