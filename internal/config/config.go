package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database
	DBDriver   string
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBPath     string

	// Redis (empty host disables it)
	RedisHost     string
	RedisPort     int
	RedisPassword string

	// JWT
	JWTSecret      string
	JWTExpireHours int

	// HTTP
	AppPort int
	SiteURL string

	// Media
	MediaRoot string
	MediaURL  string

	// Logging
	LogLevel string
	LogPath  string

	// Contact submissions allowed per IP per hour (0 disables throttling)
	ContactRateLimit int

	// FTP backup target
	FTPHost     string
	FTPPort     int
	FTPUser     string
	FTPPassword string
	FTPPath     string

	// Local backup directory and how many days backups are kept
	BackupDir           string
	BackupRetentionDays int
}

// generateSecureSecret generates a cryptographically secure random secret
func generateSecureSecret(length int) string {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return hex.EncodeToString([]byte(os.Getenv("HOSTNAME") + string(rune(length))))
	}
	return hex.EncodeToString(bytes)
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment
// variables take precedence over it.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = generateSecureSecret(32)
		log.Println("WARNING: JWT_SECRET not set - generated random secret. Admin sessions will not persist across restarts.")
	}

	driver := strings.ToLower(getEnv("DB_DRIVER", "postgres"))

	dbPassword := getEnv("DB_PASSWORD", "")
	if dbPassword == "" && driver == "postgres" {
		log.Println("WARNING: DB_PASSWORD not set - this is insecure for production!")
		dbPassword = "changeme"
	}

	return &Config{
		DBDriver:   driver,
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnvInt("DB_PORT", 5432),
		DBUser:     getEnv("DB_USER", "azigroup"),
		DBPassword: dbPassword,
		DBName:     getEnv("DB_NAME", "azigroup"),
		DBPath:     getEnv("DB_PATH", "azigroup.db"),

		RedisHost:     getEnv("REDIS_HOST", ""),
		RedisPort:     getEnvInt("REDIS_PORT", 6379),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		JWTSecret:      jwtSecret,
		JWTExpireHours: getEnvInt("JWT_EXPIRE_HOURS", 12),

		AppPort: getEnvInt("APP_PORT", 8000),
		SiteURL: strings.TrimRight(getEnv("SITE_URL", "http://localhost:8000"), "/"),

		MediaRoot: getEnv("MEDIA_ROOT", "media"),
		MediaURL:  getEnv("MEDIA_URL", "/media/"),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogPath:  getEnv("LOG_PATH", ""),

		ContactRateLimit: getEnvInt("CONTACT_RATE_LIMIT", 10),

		FTPHost:     getEnv("FTP_HOST", ""),
		FTPPort:     getEnvInt("FTP_PORT", 21),
		FTPUser:     getEnv("FTP_USER", ""),
		FTPPassword: getEnv("FTP_PASSWORD", ""),
		FTPPath:     getEnv("FTP_PATH", "/"),

		BackupDir:           getEnv("BACKUP_DIR", "backups"),
		BackupRetentionDays: getEnvInt("BACKUP_RETENTION_DAYS", 30),
	}
}

// Validate reports configuration values the application cannot run with.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.AppPort <= 0 || c.AppPort > 65535 {
		return fmt.Errorf("invalid APP_PORT %d", c.AppPort)
	}
	if c.JWTExpireHours <= 0 {
		return fmt.Errorf("JWT_EXPIRE_HOURS must be positive")
	}
	if c.ContactRateLimit < 0 {
		return fmt.Errorf("CONTACT_RATE_LIMIT must not be negative")
	}
	if c.MediaRoot == "" {
		return fmt.Errorf("MEDIA_ROOT must not be empty")
	}
	return nil
}

// RedisEnabled reports whether a Redis host was configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

// FTPEnabled reports whether backups should be shipped to an FTP server.
func (c *Config) FTPEnabled() bool {
	return c.FTPHost != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
