package services

import (
	"strings"
	"testing"

	"github.com/azigroup/website/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailer_Config(t *testing.T) {
	db := newTestDB(t)
	settings := NewSettingsService(db)
	mailer := NewMailer(settings)

	_, err := mailer.Config()
	assert.ErrorIs(t, err, ErrSMTPNotConfigured)

	_, err = settings.Set(SettingSMTPHost, "smtp.example.com", "")
	require.NoError(t, err)
	_, err = settings.Set(SettingSMTPUsername, "web@azigroup.ml", "")
	require.NoError(t, err)

	cfg, err := mailer.Config()
	require.NoError(t, err)
	assert.Equal(t, "587", cfg.Port)
	assert.Equal(t, "web@azigroup.ml", cfg.FromAddr)
	assert.Equal(t, "AZI GROUP", cfg.FromName)
}

func TestBuildMessage(t *testing.T) {
	cfg := &SMTPConfig{FromName: "AZI GROUP", FromAddr: "web@azigroup.ml"}
	msg := string(buildMessage(cfg, "staff@azigroup.ml", "Bonjour", "Texte"))

	assert.True(t, strings.HasPrefix(msg, "From: AZI GROUP <web@azigroup.ml>\r\n"))
	assert.Contains(t, msg, "To: staff@azigroup.ml\r\n")
	assert.Contains(t, msg, "Content-Type: text/plain; charset=UTF-8\r\n")
	assert.True(t, strings.HasSuffix(msg, "\r\n\r\nTexte"))
}

func TestMailer_SendRequiresConfig(t *testing.T) {
	mailer := NewMailer(nil)
	assert.ErrorIs(t, mailer.Send(nil, "a@b.c", "s", "b"), ErrSMTPNotConfigured)
	assert.ErrorIs(t, mailer.Send(&SMTPConfig{Host: "smtp.example.com"}, "a@b.c", "s", "b"), ErrSMTPNotConfigured)
}

func TestContactDigest(t *testing.T) {
	db := newTestDB(t)
	settings := NewSettingsService(db)
	contacts := NewContactService(db)
	digest := NewContactDigest(contacts, settings)

	var sent []string
	digest.send = func(cfg *SMTPConfig, to, subject, body string) error {
		sent = append(sent, to+"|"+subject+"|"+body)
		return nil
	}

	since := baseTime
	require.NoError(t, db.Create(&models.Contact{Name: "Old", Email: "old@example.com", Message: "Ancien", CreatedAt: at(-1)}).Error)
	require.NoError(t, db.Create(&models.Contact{Name: "Awa", Email: "awa@example.com", Service: models.ServiceGSS, Message: "Bonjour", CreatedAt: at(1)}).Error)
	require.NoError(t, db.Create(&models.Contact{Name: "Read", Email: "read@example.com", Message: "Lu", Status: models.ContactStatusRead, CreatedAt: at(2)}).Error)

	_, err := digest.Run(since, false)
	require.Error(t, err)

	_, err = settings.Set(SettingNotificationEmail, "staff@azigroup.ml", "")
	require.NoError(t, err)

	res, err := digest.Run(since, true)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)
	assert.False(t, res.Sent)

	_, err = digest.Run(since, false)
	assert.ErrorIs(t, err, ErrSMTPNotConfigured)

	_, err = settings.Set(SettingSMTPHost, "smtp.example.com", "")
	require.NoError(t, err)

	res, err = digest.Run(since, false)
	require.NoError(t, err)
	assert.True(t, res.Sent)
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0], "staff@azigroup.ml|1 nouveau message de contact|")
	assert.Contains(t, sent[0], "Service : Global Songhoy Services (GSS)")
	assert.Contains(t, sent[0], "Bonjour")
	assert.NotContains(t, sent[0], "Ancien")
	assert.NotContains(t, sent[0], "Téléphone")

	res, err = digest.Run(at(5), false)
	require.NoError(t, err)
	assert.Zero(t, res.Count)
	assert.False(t, res.Sent)
	assert.Len(t, sent, 1)
}
