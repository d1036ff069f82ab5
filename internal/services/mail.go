package services

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/azigroup/website/internal/models"
)

// SMTP and notification setting keys.
const (
	SettingSMTPHost          = "smtp_host"
	SettingSMTPPort          = "smtp_port"
	SettingSMTPUsername      = "smtp_username"
	SettingSMTPPassword      = "smtp_password"
	SettingSMTPFromName      = "smtp_from_name"
	SettingSMTPFromEmail     = "smtp_from_email"
	SettingNotificationEmail = "notification_email"
)

var ErrSMTPNotConfigured = errors.New("SMTP not configured")

// SMTPConfig holds the outgoing mail server settings.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	FromName string
	FromAddr string
}

// Mailer sends e-mail through the SMTP server stored in the settings.
type Mailer struct {
	settings *SettingsService
}

func NewMailer(settings *SettingsService) *Mailer {
	return &Mailer{settings: settings}
}

// Config reads the SMTP settings. The sender falls back to the SMTP user,
// then to the notification address.
func (m *Mailer) Config() (*SMTPConfig, error) {
	host := m.settings.Get(SettingSMTPHost, "")
	if host == "" {
		return nil, ErrSMTPNotConfigured
	}
	cfg := &SMTPConfig{
		Host:     host,
		Port:     m.settings.Get(SettingSMTPPort, "587"),
		Username: m.settings.Get(SettingSMTPUsername, ""),
		Password: m.settings.Get(SettingSMTPPassword, ""),
		FromName: m.settings.Get(SettingSMTPFromName, m.settings.Get(models.SettingSiteName, "AZI GROUP")),
		FromAddr: m.settings.Get(SettingSMTPFromEmail, ""),
	}
	if cfg.FromAddr == "" {
		cfg.FromAddr = cfg.Username
	}
	if cfg.FromAddr == "" {
		cfg.FromAddr = m.settings.Get(SettingNotificationEmail, "")
	}
	return cfg, nil
}

func buildMessage(cfg *SMTPConfig, to, subject, body string) []byte {
	from := cfg.FromAddr
	if cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromAddr)
	}
	return []byte(fmt.Sprintf("From: %s\r\n"+
		"To: %s\r\n"+
		"Subject: %s\r\n"+
		"MIME-Version: 1.0\r\n"+
		"Content-Type: text/plain; charset=UTF-8\r\n"+
		"\r\n"+
		"%s", from, to, subject, body))
}

// Send delivers a plain-text message. Port 465 uses implicit TLS, ports 587
// and 25 use STARTTLS, anything else a plain connection.
func (m *Mailer) Send(cfg *SMTPConfig, to, subject, body string) error {
	if cfg == nil || cfg.Host == "" || cfg.Port == "" {
		return ErrSMTPNotConfigured
	}
	msg := buildMessage(cfg, to, subject, body)
	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)

	var auth smtp.Auth
	if cfg.Username != "" && cfg.Password != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	switch cfg.Port {
	case "465":
		conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: cfg.Host})
		if err != nil {
			return fmt.Errorf("TLS dial failed: %w", err)
		}
		client, err := smtp.NewClient(conn, cfg.Host)
		if err != nil {
			conn.Close()
			return fmt.Errorf("SMTP client failed: %w", err)
		}
		return deliver(client, auth, cfg.FromAddr, to, msg)
	case "587", "25":
		client, err := smtp.Dial(addr)
		if err != nil {
			return fmt.Errorf("SMTP dial failed: %w", err)
		}
		if err := client.StartTLS(&tls.Config{ServerName: cfg.Host}); err != nil {
			client.Close()
			return fmt.Errorf("STARTTLS failed: %w", err)
		}
		return deliver(client, auth, cfg.FromAddr, to, msg)
	default:
		return smtp.SendMail(addr, auth, cfg.FromAddr, []string{to}, msg)
	}
}

func deliver(client *smtp.Client, auth smtp.Auth, from, to string, msg []byte) error {
	defer client.Close()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP auth failed: %w", err)
		}
	}
	if err := client.Mail(from); err != nil {
		return fmt.Errorf("MAIL FROM failed: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("RCPT TO failed: %w", err)
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("DATA failed: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close failed: %w", err)
	}
	return client.Quit()
}

// ContactDigest e-mails the staff a summary of the contact messages still
// marked new. It is run from the operator CLI, never from the web process.
type ContactDigest struct {
	contacts *ContactService
	mailer   *Mailer
	settings *SettingsService
	send     func(cfg *SMTPConfig, to, subject, body string) error
}

func NewContactDigest(contacts *ContactService, settings *SettingsService) *ContactDigest {
	mailer := NewMailer(settings)
	return &ContactDigest{contacts: contacts, mailer: mailer, settings: settings, send: mailer.Send}
}

// DigestResult describes one digest run.
type DigestResult struct {
	Recipient string
	Count     int
	Sent      bool
}

func digestMail(contacts []models.Contact, since time.Time) (subject, body string) {
	if len(contacts) == 1 {
		subject = "1 nouveau message de contact"
	} else {
		subject = fmt.Sprintf("%d nouveaux messages de contact", len(contacts))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Messages reçus depuis le %s :\n", since.Format("02/01/2006 15:04"))
	for i := range contacts {
		c := &contacts[i]
		fmt.Fprintf(&b, "\n---\nNom : %s\nEmail : %s\n", c.Name, c.Email)
		if c.Phone != "" {
			fmt.Fprintf(&b, "Téléphone : %s\n", c.Phone)
		}
		if c.Company != "" {
			fmt.Fprintf(&b, "Entreprise : %s\n", c.Company)
		}
		if c.Service != "" {
			fmt.Fprintf(&b, "Service : %s\n", c.Service.Label())
		}
		fmt.Fprintf(&b, "Reçu le : %s\n\n%s\n", c.CreatedAt.Format("02/01/2006 15:04"), c.Message)
	}
	return subject, b.String()
}

// Run mails the new messages received after since to the notification_email
// address. Nothing is sent when there are no such messages; dryRun builds
// the digest without sending it.
func (d *ContactDigest) Run(since time.Time, dryRun bool) (DigestResult, error) {
	res := DigestResult{Recipient: d.settings.Get(SettingNotificationEmail, "")}
	if res.Recipient == "" {
		return res, fmt.Errorf("%s is not set", SettingNotificationEmail)
	}

	contacts, err := d.contacts.NewSince(since)
	if err != nil {
		return res, err
	}
	res.Count = len(contacts)
	if res.Count == 0 || dryRun {
		return res, nil
	}

	cfg, err := d.mailer.Config()
	if err != nil {
		return res, err
	}
	subject, body := digestMail(contacts, since)
	if err := d.send(cfg, res.Recipient, subject, body); err != nil {
		return res, err
	}
	res.Sent = true
	return res, nil
}
