// Package backup copies the uploads directory (payment QR images, product
// imports) into dated snapshots once a day and prunes old ones.
package backup

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

type Config struct {
	SourceDir string
	BackupDir string
	Retention time.Duration
	Hour      int
	Minute    int
}

// NextRun returns the first Hour:Minute strictly after now.
func NextRun(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}
	return next
}

// RunDaily snapshots cfg.SourceDir at the configured time every day until
// ctx is done.
func RunDaily(ctx context.Context, cfg Config, logger *zap.Logger) {
	for {
		next := NextRun(time.Now(), cfg.Hour, cfg.Minute)
		logger.Info("⏳ next uploads backup scheduled", zap.Time("at", next))

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		dest, err := Snapshot(cfg.SourceDir, cfg.BackupDir, time.Now())
		if err != nil {
			logger.Error("❌ uploads backup failed", zap.Error(err))
		} else {
			logger.Info("✅ uploads backed up", zap.String("dir", dest))
		}

		removed, err := Cleanup(cfg.BackupDir, time.Now().Add(-cfg.Retention))
		if err != nil {
			logger.Error("❌ backup cleanup failed", zap.Error(err))
		}
		for _, dir := range removed {
			logger.Info("🗑️ removed old backup", zap.String("dir", dir))
		}
	}
}

// Snapshot copies src into a timestamped folder under backupDir.
func Snapshot(src, backupDir string, at time.Time) (string, error) {
	dest := filepath.Join(backupDir, at.Format("2006-01-02_15-04-05"))
	if err := copyDir(src, dest); err != nil {
		return "", err
	}
	return dest, nil
}

// Cleanup removes snapshot folders last modified before cutoff.
func Cleanup(backupDir string, cutoff time.Time) ([]string, error) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		return nil, err
	}

	var removed []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.RemoveAll(path); err != nil {
				return removed, err
			}
			removed = append(removed, path)
		}
	}
	return removed, nil
}

func copyDir(src, dest string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0755); err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, destPath); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(srcPath, destPath); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
