package handlers

import (
	"errors"

	"github.com/azigroup/website/internal/media"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// uploadFolders maps the accepted folder names onto media sub-directories.
var uploadFolders = map[string]string{
	"logos":        "companies/logos",
	"projects":     "companies/projects",
	"news":         "news",
	"testimonials": "testimonials",
	"navigation":   "navigation",
	"homepage":     "homepage",
}

// UploadHandler stores images for the content image fields. The returned
// path is what the content records store.
type UploadHandler struct {
	storage *media.Storage
	log     *zap.Logger
}

func NewUploadHandler(storage *media.Storage, log *zap.Logger) *UploadHandler {
	return &UploadHandler{storage: storage, log: log}
}

func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	folder, ok := uploadFolders[c.Query("folder")]
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid upload folder",
		})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "No file uploaded",
		})
	}

	stored, err := h.storage.Save(file, folder)
	if errors.Is(err, media.ErrUnsupportedType) || errors.Is(err, media.ErrTooLarge) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}
	if err != nil {
		return err
	}

	h.log.Info("Media uploaded", zap.String("path", stored), zap.Int64("size", file.Size))
	return dataResponse(c, fiber.StatusCreated, fiber.Map{
		"path": stored,
		"url":  h.storage.URL(stored),
	})
}
