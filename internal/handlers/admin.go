package handlers

import (
	"errors"

	"github.com/azigroup/website/internal/services"
	"github.com/gofiber/fiber/v2"
)

func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid "+name)
	}
	return uint(id), nil
}

func failure(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func invalidBody(c *fiber.Ctx) error {
	return failure(c, fiber.StatusBadRequest, "Invalid request body")
}

// adminError maps service errors onto staff API responses.
func adminError(c *fiber.Ctx, err error) error {
	if errs := services.FieldErrors(err); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"errors":  errs,
		})
	}
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Not found",
		})
	case errors.Is(err, services.ErrSlugTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"message": "Slug already in use",
		})
	case errors.Is(err, services.ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}
	return err
}

func pageMeta(p services.Page) fiber.Map {
	return fiber.Map{
		"page":       p.Number,
		"limit":      p.PerPage,
		"total":      p.TotalItems,
		"totalPages": p.TotalPages,
	}
}

func listResponse(c *fiber.Ctx, data interface{}, p services.Page) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
		"meta":    pageMeta(p),
	})
}

func dataResponse(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func deletedResponse(c *fiber.Ctx, what string) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": what + " deleted successfully",
	})
}
