package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/azigroup/website/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
	MinPasswordLength    = 6
)

var (
	ErrUsernameTaken = errors.New("username already in use")
	ErrWeakPassword  = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
)

// HashPassword hashes a password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword reports whether password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// UserService manages staff accounts.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// NewUser describes a staff account to create.
type NewUser struct {
	Username            string
	Password            string
	Email               string
	FullName            string
	ForcePasswordChange bool
}

// Create adds an active staff account.
func (s *UserService) Create(u NewUser) (*models.User, error) {
	u.Username = strings.TrimSpace(u.Username)
	if u.Username == "" {
		return nil, errors.New("username is required")
	}
	if len(u.Password) < MinPasswordLength {
		return nil, ErrWeakPassword
	}

	var n int64
	if err := s.db.Model(&models.User{}).Where("username = ?", u.Username).Count(&n).Error; err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if n > 0 {
		return nil, ErrUsernameTaken
	}

	hash, err := HashPassword(u.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &models.User{
		Username:            u.Username,
		Password:            hash,
		Email:               u.Email,
		FullName:            u.FullName,
		IsActive:            true,
		ForcePasswordChange: u.ForcePasswordChange,
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// EnsureAdmin creates the default admin account when no staff account
// exists yet. The account must change its password on first login.
func (s *UserService) EnsureAdmin(log *zap.Logger) error {
	var count int64
	if err := s.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	log.Info("Creating default admin user...")
	_, err := s.Create(NewUser{
		Username:            DefaultAdminUsername,
		Password:            DefaultAdminPassword,
		Email:               "admin@azigroup.local",
		FullName:            "Administrateur",
		ForcePasswordChange: true,
	})
	if err != nil {
		return err
	}
	log.Warn("Default admin user created, change its password",
		zap.String("username", DefaultAdminUsername))
	return nil
}

// FindByUsername loads a staff account.
func (s *UserService) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, notFound(err, "user")
	}
	return &user, nil
}

// Get loads a staff account by id.
func (s *UserService) Get(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, notFound(err, "user")
	}
	return &user, nil
}

// TouchLogin records a successful login.
func (s *UserService) TouchLogin(user *models.User) error {
	now := time.Now()
	if err := s.db.Model(user).Update("last_login", now).Error; err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	user.LastLogin = &now
	return nil
}

// SetPassword replaces the password and clears the forced change flag.
func (s *UserService) SetPassword(user *models.User, password string) error {
	if len(password) < MinPasswordLength {
		return ErrWeakPassword
	}
	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	err = s.db.Model(user).Updates(map[string]interface{}{
		"password":              hash,
		"force_password_change": false,
	}).Error
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	user.Password = hash
	user.ForcePasswordChange = false
	return nil
}

// SetTwoFactor stores the TOTP secret and its enabled flag.
func (s *UserService) SetTwoFactor(user *models.User, secret string, enabled bool) error {
	err := s.db.Model(user).Updates(map[string]interface{}{
		"two_factor_secret":  secret,
		"two_factor_enabled": enabled,
	}).Error
	if err != nil {
		return fmt.Errorf("update two factor: %w", err)
	}
	user.TwoFactorSecret = secret
	user.TwoFactorEnabled = enabled
	return nil
}
