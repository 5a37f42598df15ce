// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package flashlearn

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

// userFiles lists the per-user files covered by backup and restore,
// relative to the data root.
func userFiles(username string) []string {
	return []string{
		filepath.Join("user_decks", username+"_decks.json"),
		filepath.Join("user_progress", username+"_progress.json"),
		filepath.Join("user_settings", username+"_settings.json"),
	}
}

// Backup copies the user's decks, progress, and settings files into a
// timestamped directory under destDir and returns its path. Files the
// user does not have yet are skipped.
func Backup(fs afero.Fs, dataDir, username, destDir string) (string, error) {
	stamp := time.Now().Format("20060102_150405")
	backupDir := filepath.Join(destDir, fmt.Sprintf("%s_backup_%s", username, stamp))
	if err := fs.MkdirAll(backupDir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	copied := 0
	for _, rel := range userFiles(username) {
		data, err := afero.ReadFile(fs, filepath.Join(dataDir, rel))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return "", fmt.Errorf("read %s: %w", rel, err)
		}
		dst := filepath.Join(backupDir, filepath.Base(rel))
		if err := afero.WriteFile(fs, dst, data, 0o644); err != nil {
			return "", fmt.Errorf("write %s: %w", dst, err)
		}
		copied++
	}

	if copied == 0 {
		return "", fmt.Errorf("no data found for user %s", username)
	}
	return backupDir, nil
}

// Restore copies the user's files from a backup directory back into
// the data root, overwriting current state. Files absent from the
// backup are skipped; it is an error when the backup holds none of
// the user's files.
func Restore(fs afero.Fs, backupDir, dataDir, username string) error {
	restored := 0
	for _, rel := range userFiles(username) {
		src := filepath.Join(backupDir, filepath.Base(rel))
		data, err := afero.ReadFile(fs, src)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("read %s: %w", src, err)
		}

		dst := filepath.Join(dataDir, rel)
		if err := fs.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return fmt.Errorf("create %s: %w", filepath.Dir(dst), err)
		}
		if err := afero.WriteFile(fs, dst, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", dst, err)
		}
		restored++
	}

	if restored == 0 {
		return fmt.Errorf("no backup files for user %s in %s", username, backupDir)
	}
	return nil
}
