package main

import (
	"fmt"
	"time"

	"github.com/azigroup/website/internal/backup"
	"github.com/azigroup/website/internal/database"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	backupDir   string
	backupNoFTP bool
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export all content tables to a JSON file",
	Long: `Writes a JSON snapshot of the content tables (companies, news,
testimonials, logos, heroes, settings, contact messages) into the backup
directory. Staff accounts and the JWT secret are not exported.

When FTP_HOST is set the file is also uploaded to the FTP server. Backups
older than BACKUP_RETENTION_DAYS are removed locally and on the server.`,
	RunE: runBackup,
}

func runBackup(cmd *cobra.Command, args []string) error {
	dir := backupDir
	if dir == "" {
		dir = cfg.BackupDir
	}

	snap, err := backup.Export(database.DB)
	if err != nil {
		return err
	}
	path, err := backup.WriteFile(snap, dir)
	if err != nil {
		return err
	}
	log.Info("Backup written", zap.String("path", path))
	fmt.Println(path)

	retention := time.Duration(cfg.BackupRetentionDays) * 24 * time.Hour
	if cfg.BackupRetentionDays > 0 {
		removed, err := backup.CleanLocal(dir, retention, time.Now())
		if err != nil {
			log.Warn("Failed to clean old backups", zap.Error(err))
		}
		for _, name := range removed {
			log.Info("Deleted old backup", zap.String("file", name))
		}
	}

	if backupNoFTP || !cfg.FTPEnabled() {
		return nil
	}

	target := backup.FTPTarget{
		Host:     cfg.FTPHost,
		Port:     cfg.FTPPort,
		User:     cfg.FTPUser,
		Password: cfg.FTPPassword,
		Path:     cfg.FTPPath,
	}
	if err := target.Upload(path); err != nil {
		return err
	}
	log.Info("Backup uploaded to FTP", zap.String("host", cfg.FTPHost), zap.String("path", cfg.FTPPath))

	if cfg.BackupRetentionDays > 0 {
		removed, err := target.Clean(retention, time.Now())
		if err != nil {
			log.Warn("Failed to clean old FTP backups", zap.Error(err))
		}
		for _, name := range removed {
			log.Info("Deleted old FTP backup", zap.String("file", name))
		}
	}
	return nil
}

func init() {
	backupCmd.Flags().StringVar(&backupDir, "dir", "", "output directory (default BACKUP_DIR)")
	backupCmd.Flags().BoolVar(&backupNoFTP, "no-ftp", false, "skip the FTP upload")
	rootCmd.AddCommand(backupCmd)
}
