package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jlaffaye/ftp"
)

// FTPTarget is a remote directory backups are shipped to.
type FTPTarget struct {
	Host     string
	Port     int
	User     string
	Password string
	Path     string
	Timeout  time.Duration
}

func (t FTPTarget) connect() (*ftp.ServerConn, error) {
	timeout := t.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	addr := fmt.Sprintf("%s:%d", t.Host, t.Port)
	conn, err := ftp.Dial(addr, ftp.DialWithTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("FTP connection failed: %w", err)
	}
	if err := conn.Login(t.User, t.Password); err != nil {
		conn.Quit()
		return nil, fmt.Errorf("FTP login failed: %w", err)
	}
	if t.Path != "" && t.Path != "/" {
		if err := conn.ChangeDir(t.Path); err != nil {
			// Create the directory on first use
			conn.MakeDir(t.Path)
			if err := conn.ChangeDir(t.Path); err != nil {
				conn.Quit()
				return nil, fmt.Errorf("FTP directory change failed: %w", err)
			}
		}
	}
	return conn, nil
}

// Upload stores the local file under its base name in the target directory.
func (t FTPTarget) Upload(localPath string) error {
	conn, err := t.connect()
	if err != nil {
		return err
	}
	defer conn.Quit()

	file, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open local file: %w", err)
	}
	defer file.Close()

	if err := conn.Stor(filepath.Base(localPath), file); err != nil {
		return fmt.Errorf("FTP upload failed: %w", err)
	}
	return nil
}

// Clean deletes remote backup files older than retention.
func (t FTPTarget) Clean(retention time.Duration, now time.Time) ([]string, error) {
	conn, err := t.connect()
	if err != nil {
		return nil, err
	}
	defer conn.Quit()

	entries, err := conn.List("")
	if err != nil {
		return nil, fmt.Errorf("FTP list failed: %w", err)
	}
	cutoff := now.Add(-retention)

	var removed []string
	for _, entry := range entries {
		if entry.Type != ftp.EntryTypeFile || !isBackupName(entry.Name) || !entry.Time.Before(cutoff) {
			continue
		}
		if err := conn.Delete(entry.Name); err != nil {
			return removed, fmt.Errorf("FTP delete %s: %w", entry.Name, err)
		}
		removed = append(removed, entry.Name)
	}
	return removed, nil
}
