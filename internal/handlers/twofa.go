package handlers

import (
	"bytes"
	"encoding/base64"
	"image/png"

	"github.com/azigroup/website/internal/middleware"
	"github.com/azigroup/website/internal/models"
	"github.com/azigroup/website/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const qrSize = 200

// TwoFAHandler manages TOTP second factors of staff accounts.
type TwoFAHandler struct {
	users    *services.UserService
	settings *services.SettingsService
}

func NewTwoFAHandler(users *services.UserService, settings *services.SettingsService) *TwoFAHandler {
	return &TwoFAHandler{users: users, settings: settings}
}

type twoFACodeRequest struct {
	Password string `json:"password"`
	Code     string `json:"code"`
}

func staffUser(c *fiber.Ctx) (*models.User, error) {
	if user := middleware.GetCurrentUser(c); user != nil {
		return user, nil
	}
	return nil, failure(c, fiber.StatusUnauthorized, "User not found")
}

func qrDataURI(key *otp.Key) (string, error) {
	img, err := key.Image(qrSize, qrSize)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Setup issues a fresh secret. It stays disabled until Verify accepts a code
// generated from it.
func (h *TwoFAHandler) Setup(c *fiber.Ctx) error {
	user, err := staffUser(c)
	if user == nil {
		return err
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      h.settings.Get(models.SettingSiteName, "AZI GROUP"),
		AccountName: user.Username,
	})
	if err != nil {
		return failure(c, fiber.StatusInternalServerError, "Failed to generate 2FA secret")
	}
	qr, err := qrDataURI(key)
	if err != nil {
		return failure(c, fiber.StatusInternalServerError, "Failed to generate QR code")
	}

	if err := h.users.SetTwoFactor(user, key.Secret(), false); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"secret":  key.Secret(),
			"qr_code": qr,
			"otpauth": key.URL(),
		},
	})
}

// Verify enables 2FA once the user proves the authenticator is set up.
func (h *TwoFAHandler) Verify(c *fiber.Ctx) error {
	user, err := staffUser(c)
	if user == nil {
		return err
	}

	var req twoFACodeRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	switch {
	case req.Code == "":
		return failure(c, fiber.StatusBadRequest, "Code is required")
	case user.TwoFactorSecret == "":
		return failure(c, fiber.StatusBadRequest, "2FA not set up. Please call setup first")
	case !totp.Validate(req.Code, user.TwoFactorSecret):
		return failure(c, fiber.StatusBadRequest, "Invalid code. Please try again")
	}

	if err := h.users.SetTwoFactor(user, user.TwoFactorSecret, true); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "2FA enabled successfully"})
}

// Disable turns 2FA off. Both the password and a current code are required.
func (h *TwoFAHandler) Disable(c *fiber.Ctx) error {
	user, err := staffUser(c)
	if user == nil {
		return err
	}

	var req twoFACodeRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	switch {
	case !user.TwoFactorEnabled:
		return failure(c, fiber.StatusBadRequest, "2FA is not enabled")
	case !services.CheckPassword(user.Password, req.Password):
		return failure(c, fiber.StatusBadRequest, "Invalid password")
	case !totp.Validate(req.Code, user.TwoFactorSecret):
		return failure(c, fiber.StatusBadRequest, "Invalid 2FA code")
	}

	if err := h.users.SetTwoFactor(user, "", false); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "2FA disabled successfully"})
}

func (h *TwoFAHandler) Status(c *fiber.Ctx) error {
	user, err := staffUser(c)
	if user == nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"enabled": user.TwoFactorEnabled,
			"pending": !user.TwoFactorEnabled && user.TwoFactorSecret != "",
		},
	})
}
