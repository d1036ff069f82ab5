package handlers

import (
	"github.com/azigroup/website/internal/models"
	"github.com/azigroup/website/internal/services"
	"github.com/gofiber/fiber/v2"
)

// AdminContactHandler lets staff process contact messages.
type AdminContactHandler struct {
	contacts *services.ContactService
}

func NewAdminContactHandler(contacts *services.ContactService) *AdminContactHandler {
	return &AdminContactHandler{contacts: contacts}
}

type contactJSON struct {
	models.Contact
	ServiceLabel string `json:"service_label"`
}

func newContactJSON(c models.Contact) contactJSON {
	out := contactJSON{Contact: c}
	if c.Service != "" {
		out.ServiceLabel = c.Service.Label()
	}
	return out
}

// List returns contacts, newest first, filtered by status, service and a
// free-text search over name, email and company.
func (h *AdminContactHandler) List(c *fiber.Ctx) error {
	filter := services.ContactFilter{
		Status:  c.Query("status"),
		Service: c.Query("service"),
		Search:  c.Query("q"),
	}
	contacts, p, err := h.contacts.List(filter, c.Query("page"), services.AdminPerPage)
	if err != nil {
		return err
	}

	data := make([]contactJSON, 0, len(contacts))
	for _, ct := range contacts {
		data = append(data, newContactJSON(ct))
	}
	return listResponse(c, data, p)
}

func (h *AdminContactHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	contact, err := h.contacts.Get(id)
	if err != nil {
		return adminError(c, err)
	}
	return dataResponse(c, fiber.StatusOK, newContactJSON(*contact))
}

// UpdateStatus moves a contact through new, read, replied and processed.
func (h *AdminContactHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	contact, err := h.contacts.SetStatus(id, models.ContactStatus(req.Status))
	if err != nil {
		return adminError(c, err)
	}
	return dataResponse(c, fiber.StatusOK, newContactJSON(*contact))
}

func (h *AdminContactHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.contacts.Delete(id); err != nil {
		return adminError(c, err)
	}
	return deletedResponse(c, "Contact")
}
