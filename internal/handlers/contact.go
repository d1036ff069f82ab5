package handlers

import (
	"github.com/azigroup/website/internal/database"
	"github.com/azigroup/website/internal/models"
	"github.com/azigroup/website/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	msgContactSent      = "Votre message a été envoyé avec succès ! Nous vous contacterons bientôt."
	msgContactSentAPI   = "Message envoyé avec succès"
	msgContactInvalid   = "Veuillez corriger les erreurs"
	msgInvalidJSON      = "Données JSON invalides"
	msgContactThrottled = "Trop de messages envoyés. Veuillez réessayer plus tard."
)

// ContactHandler receives contact messages from the HTML form and the JSON
// endpoint.
type ContactHandler struct {
	contacts  *services.ContactService
	rateLimit int
	log       *zap.Logger
}

func NewContactHandler(contacts *services.ContactService, rateLimit int, log *zap.Logger) *ContactHandler {
	return &ContactHandler{contacts: contacts, rateLimit: rateLimit, log: log}
}

func (h *ContactHandler) received(contact *models.Contact, channel string) {
	h.log.Info("Contact message received",
		zap.Uint("contact_id", contact.ID),
		zap.String("service", string(contact.Service)),
		zap.String("channel", channel))
}

// allow applies the per-IP submission throttle. Cache failures let the
// message through.
func (h *ContactHandler) allow(c *fiber.Ctx) bool {
	ok, err := database.AllowContactSubmission(c.IP(), h.rateLimit)
	if err != nil {
		h.log.Warn("Contact throttle unavailable", zap.Error(err))
		return true
	}
	return ok
}

func (h *ContactHandler) renderForm(c *fiber.Ctx, form services.ContactSubmission, errs map[string][]string, message string) error {
	return render(c, "contact", fiber.Map{
		"form":            form,
		"errors":          errs,
		"error":           message,
		"service_choices": models.ServiceChoices,
	})
}

// Form shows an empty contact form.
func (h *ContactHandler) Form(c *fiber.Ctx) error {
	return h.renderForm(c, services.ContactSubmission{}, nil, "")
}

// Submit handles the HTML form. A valid message redirects back to the form
// with a flash notice; an invalid one re-renders it with the field errors.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var sub services.ContactSubmission
	if err := c.BodyParser(&sub); err != nil {
		return fiber.ErrBadRequest
	}

	if !h.allow(c) {
		c.Status(fiber.StatusTooManyRequests)
		return h.renderForm(c, sub, nil, msgContactThrottled)
	}

	contact, err := h.contacts.Submit(sub)
	if errs := services.FieldErrors(err); errs != nil {
		return h.renderForm(c, sub, errs, msgContactInvalid)
	}
	if err != nil {
		return err
	}

	h.received(contact, "form")

	setFlash(c, "success", msgContactSent)
	return c.Redirect("/contact/", fiber.StatusSeeOther)
}

// APISubmit is the JSON variant of Submit. Validation problems are reported
// with success=false and a 200 status.
func (h *ContactHandler) APISubmit(c *fiber.Ctx) error {
	var sub services.ContactSubmission
	if err := c.App().Config().JSONDecoder(c.Body(), &sub); err != nil {
		return c.JSON(fiber.Map{
			"success": false,
			"message": msgInvalidJSON,
		})
	}

	if !h.allow(c) {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"success": false,
			"message": msgContactThrottled,
		})
	}

	contact, err := h.contacts.Submit(sub)
	if errs := services.FieldErrors(err); errs != nil {
		return c.JSON(fiber.Map{
			"success": false,
			"message": msgContactInvalid,
			"errors":  errs,
		})
	}
	if err != nil {
		return err
	}

	h.received(contact, "api")

	return c.JSON(fiber.Map{
		"success": true,
		"message": msgContactSentAPI,
	})
}
