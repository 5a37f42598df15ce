// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mjreyes/flashlearn/internal/flashlearn"
)

func newBackupCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Back up or restore user data",
		Long:  "Copy the signed-in user's decks, progress, and settings files to a backup directory, or restore them from one.",
	}

	cmd.AddCommand(newBackupCreateCmd(app))
	cmd.AddCommand(newBackupRestoreCmd(app))

	return cmd
}

func newBackupCreateCmd(app *App) *cobra.Command {
	var dest string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a timestamped backup",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireUser(app)
			if err != nil {
				return err
			}

			if dest == "" {
				dest = filepath.Join(app.Cfg.DataDir, "backups")
			}
			dir, err := flashlearn.Backup(app.FS, app.Cfg.DataDir, session.Username, dest)
			if err != nil {
				return err
			}
			fmt.Printf("Backup written to %s\n", dir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dest, "dest", "d", "", "Directory to place the backup in (default: <data-dir>/backups)")
	return cmd
}

func newBackupRestoreCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "restore <backup-dir>",
		Short: "Restore user data from a backup directory",
		Long:  "Overwrite the signed-in user's current decks, progress, and settings with the files from a backup directory.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireUser(app)
			if err != nil {
				return err
			}

			if !yes && !confirm(fmt.Sprintf("Overwrite current data for %s from %s?", session.Username, args[0])) {
				fmt.Println("Aborted.")
				return nil
			}

			if err := flashlearn.Restore(app.FS, args[0], app.Cfg.DataDir, session.Username); err != nil {
				return err
			}
			// Restore rewrites the deck file behind the store's back.
			app.Decks.Invalidate(session.Username)
			fmt.Println("Restore complete.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}
