package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		DBDriver:         "sqlite",
		AppPort:          8000,
		JWTExpireHours:   12,
		ContactRateLimit: 10,
		MediaRoot:        "media",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid config", mutate: func(c *Config) {}},
		{name: "postgres driver", mutate: func(c *Config) { c.DBDriver = "postgres" }},
		{name: "unknown driver", mutate: func(c *Config) { c.DBDriver = "mysql" }, wantErr: true},
		{name: "port out of range", mutate: func(c *Config) { c.AppPort = 70000 }, wantErr: true},
		{name: "zero jwt lifetime", mutate: func(c *Config) { c.JWTExpireHours = 0 }, wantErr: true},
		{name: "negative rate limit", mutate: func(c *Config) { c.ContactRateLimit = -1 }, wantErr: true},
		{name: "disabled rate limit", mutate: func(c *Config) { c.ContactRateLimit = 0 }},
		{name: "empty media root", mutate: func(c *Config) { c.MediaRoot = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("SITE_URL", "https://azigroup.ml/")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("CONTACT_RATE_LIMIT", "not-a-number")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("BACKUP_RETENTION_DAYS", "7")

	cfg := Load()

	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 9090, cfg.AppPort)
	assert.Equal(t, "https://azigroup.ml", cfg.SiteURL)
	assert.Equal(t, "secret", cfg.JWTSecret)
	assert.Equal(t, 10, cfg.ContactRateLimit)
	assert.False(t, cfg.RedisEnabled())
	assert.False(t, cfg.FTPEnabled())
	assert.Equal(t, 7, cfg.BackupRetentionDays)
	assert.NoError(t, cfg.Validate())
}
