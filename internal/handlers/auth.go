package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/azigroup/website/internal/database"
	"github.com/azigroup/website/internal/middleware"
	"github.com/azigroup/website/internal/models"
	"github.com/azigroup/website/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/pquerna/otp/totp"
	"go.uber.org/zap"
)

const maxLoginAttempts = 5

type AuthHandler struct {
	users  *services.UserService
	secret string
	ttl    time.Duration
	log    *zap.Logger
}

func NewAuthHandler(users *services.UserService, secret string, ttl time.Duration, log *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, secret: secret, ttl: ttl, log: log}
}

// LoginRequest represents login request body
type LoginRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	TwoFACode string `json:"two_fa_code"`
}

// LoginResponse represents login response
type LoginResponse struct {
	Success             bool      `json:"success"`
	Message             string    `json:"message,omitempty"`
	Token               string    `json:"token,omitempty"`
	ExpiresAt           string    `json:"expires_at,omitempty"`
	User                *UserInfo `json:"user,omitempty"`
	Requires2FA         bool      `json:"requires_2fa,omitempty"`
	ForcePasswordChange bool      `json:"force_password_change,omitempty"`
}

// UserInfo represents user info in response
type UserInfo struct {
	ID                  uint       `json:"id"`
	Username            string     `json:"username"`
	Email               string     `json:"email"`
	FullName            string     `json:"full_name"`
	LastLogin           *time.Time `json:"last_login"`
	TwoFactorEnabled    bool       `json:"two_factor_enabled"`
	ForcePasswordChange bool       `json:"force_password_change"`
}

func newUserInfo(u *models.User) *UserInfo {
	return &UserInfo{
		ID:                  u.ID,
		Username:            u.Username,
		Email:               u.Email,
		FullName:            u.FullName,
		LastLogin:           u.LastLogin,
		TwoFactorEnabled:    u.TwoFactorEnabled,
		ForcePasswordChange: u.ForcePasswordChange,
	}
}

func (h *AuthHandler) loginFailed(c *fiber.Ctx, ip, message string) error {
	remaining := maxLoginAttempts - database.RecordFailedLogin(ip)
	if remaining > 0 && remaining < maxLoginAttempts {
		message += ". " + strconv.Itoa(remaining) + " attempts remaining"
	}
	return failure(c, fiber.StatusUnauthorized, message)
}

// Login handles staff login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	clientIP := c.IP()

	if database.FailedLogins(clientIP) >= maxLoginAttempts {
		return failure(c, fiber.StatusTooManyRequests, "Too many failed login attempts. Please try again in 15 minutes")
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if req.Username == "" || req.Password == "" {
		return failure(c, fiber.StatusBadRequest, "Username and password are required")
	}

	user, err := h.users.FindByUsername(req.Username)
	if errors.Is(err, services.ErrNotFound) {
		return h.loginFailed(c, clientIP, "Invalid username or password")
	}
	if err != nil {
		return err
	}

	if !user.IsActive {
		return failure(c, fiber.StatusUnauthorized, "Account is disabled")
	}

	if !services.CheckPassword(user.Password, req.Password) {
		return h.loginFailed(c, clientIP, "Invalid username or password")
	}

	if user.TwoFactorEnabled {
		if req.TwoFACode == "" {
			// Password is correct, but need 2FA code
			return c.JSON(LoginResponse{
				Success:     false,
				Requires2FA: true,
				Message:     "2FA code required",
			})
		}
		if !totp.Validate(req.TwoFACode, user.TwoFactorSecret) {
			return h.loginFailed(c, clientIP, "Invalid 2FA code")
		}
	}

	database.ClearFailedLogins(clientIP)

	token, expires, err := middleware.GenerateToken(user, h.secret, h.ttl)
	if err != nil {
		return failure(c, fiber.StatusInternalServerError, "Failed to generate token")
	}

	if err := h.users.TouchLogin(user); err != nil {
		h.log.Warn("Failed to record login", zap.Error(err))
	}
	h.log.Info("Staff login",
		zap.String("username", user.Username),
		zap.String("ip", clientIP))

	return c.JSON(LoginResponse{
		Success:             true,
		Token:               token,
		ExpiresAt:           expires.UTC().Format(time.RFC3339),
		ForcePasswordChange: user.ForcePasswordChange,
		User:                newUserInfo(user),
	})
}

// Logout revokes the current token until it would have expired.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token, _ := c.Locals("token").(string)
	if claims := middleware.GetCurrentClaims(c); claims != nil && claims.ExpiresAt != nil && token != "" {
		if err := database.RevokeToken(token, time.Until(claims.ExpiresAt.Time)); err != nil {
			h.log.Warn("Failed to revoke token", zap.Error(err))
		}
	}
	if user := middleware.GetCurrentUser(c); user != nil {
		h.log.Info("Staff logout", zap.String("username", user.Username))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logged out successfully",
	})
}

// Me returns the authenticated staff account.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := staffUser(c)
	if user == nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"user":    newUserInfo(user),
	})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ChangePassword replaces the password and clears a pending forced change.
// The new password must differ from the current one.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	user, err := staffUser(c)
	if user == nil {
		return err
	}

	var req changePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if !services.CheckPassword(user.Password, req.CurrentPassword) {
		return failure(c, fiber.StatusBadRequest, "Current password is incorrect")
	}
	if req.NewPassword == req.CurrentPassword {
		return failure(c, fiber.StatusBadRequest, "New password must differ from the current one")
	}

	err = h.users.SetPassword(user, req.NewPassword)
	if errors.Is(err, services.ErrWeakPassword) {
		return failure(c, fiber.StatusBadRequest,
			"Password must be at least "+strconv.Itoa(services.MinPasswordLength)+" characters")
	}
	if err != nil {
		return err
	}

	h.log.Info("Staff password changed", zap.String("username", user.Username))
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Password changed successfully",
	})
}
