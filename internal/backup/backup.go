package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/azigroup/website/internal/models"
	"gorm.io/gorm"
)

// FilePrefix starts the name of every backup file.
const FilePrefix = "azigroup-backup-"

// Snapshot is a JSON export of every content table. Staff accounts and the
// JWT signing secret are never exported.
type Snapshot struct {
	CreatedAt       time.Time                    `json:"created_at"`
	Companies       []models.Company             `json:"companies"`
	ProjectImages   []models.CompanyProjectImage `json:"project_images"`
	News            []models.News                `json:"news"`
	Testimonials    []models.Testimonial         `json:"testimonials"`
	NavigationLogos []models.NavigationLogo      `json:"navigation_logos"`
	Heroes          []models.HomePageHero        `json:"heroes"`
	Settings        []models.Setting             `json:"settings"`
	Contacts        []models.Contact             `json:"contacts"`
}

// Export reads every content table inside one read transaction.
func Export(db *gorm.DB) (*Snapshot, error) {
	snap := &Snapshot{CreatedAt: time.Now().UTC()}
	err := db.Transaction(func(tx *gorm.DB) error {
		steps := []struct {
			name string
			dest interface{}
			q    *gorm.DB
		}{
			{"companies", &snap.Companies, tx.Order("id")},
			{"project images", &snap.ProjectImages, tx.Order("id")},
			{"news", &snap.News, tx.Order("id")},
			{"testimonials", &snap.Testimonials, tx.Order("id")},
			{"navigation logos", &snap.NavigationLogos, tx.Order("id")},
			{"heroes", &snap.Heroes, tx.Order("id")},
			{"settings", &snap.Settings, tx.Where("key <> ?", models.SettingJWTSecret).Order("id")},
			{"contacts", &snap.Contacts, tx.Order("id")},
		}
		for _, s := range steps {
			if err := s.q.Find(s.dest).Error; err != nil {
				return fmt.Errorf("export %s: %w", s.name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// FileName is the backup file name for a snapshot taken at t.
func FileName(t time.Time) string {
	return FilePrefix + t.UTC().Format("20060102-150405") + ".json"
}

// WriteFile writes the snapshot as indented JSON into dir and returns the
// file path.
func WriteFile(snap *Snapshot, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}
	path := filepath.Join(dir, FileName(snap.CreatedAt))

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode backup: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	return path, nil
}

// ReadFile loads a backup written by WriteFile.
func ReadFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read backup: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode backup: %w", err)
	}
	return &snap, nil
}

// CleanLocal removes backup files in dir older than retention and returns
// the removed names.
func CleanLocal(dir string, retention time.Duration, now time.Time) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list backups: %w", err)
	}
	cutoff := now.Add(-retention)

	var removed []string
	for _, entry := range entries {
		if entry.IsDir() || !isBackupName(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
				return removed, fmt.Errorf("remove %s: %w", entry.Name(), err)
			}
			removed = append(removed, entry.Name())
		}
	}
	return removed, nil
}

func isBackupName(name string) bool {
	return len(name) > len(FilePrefix) && name[:len(FilePrefix)] == FilePrefix && filepath.Ext(name) == ".json"
}
