// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mjreyes/flashlearn/internal/flashlearn"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage user settings",
		Long:  "Show, change, reset, export, and import per-user settings.",
	}

	cmd.AddCommand(newSettingsShowCmd(app))
	cmd.AddCommand(newSettingsSetCmd(app))
	cmd.AddCommand(newSettingsResetCmd(app))
	cmd.AddCommand(newSettingsExportCmd(app))
	cmd.AddCommand(newSettingsImportCmd(app))

	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireUser(app)
			if err != nil {
				return err
			}

			settings := app.Settings.Load(session.Username)
			if asJSON {
				return printJSON(settings)
			}

			w := newTable()
			fmt.Fprintf(w, "theme\t%s\n", settings.Theme)
			fmt.Fprintf(w, "card_order\t%s\n", settings.CardOrder)
			fmt.Fprintf(w, "auto_reveal_time\t%d\n", settings.AutoRevealTime)
			fmt.Fprintf(w, "font_size\t%s\n", settings.FontSize)
			fmt.Fprintf(w, "notifications_enabled\t%t\n", settings.NotificationsEnabled)
			fmt.Fprintf(w, "sound_enabled\t%t\n", settings.SoundEnabled)
			fmt.Fprintf(w, "backup_frequency\t%s\n", settings.BackupFrequency)
			fmt.Fprintf(w, "auto_save\t%t\n", settings.AutoSave)
			w.Flush()
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	return cmd
}

func newSettingsSetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting",
		Long: `Change a single setting for the signed-in user.

Keys: theme, card_order, auto_reveal_time, font_size,
notifications_enabled, sound_enabled, backup_frequency, auto_save`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireUser(app)
			if err != nil {
				return err
			}

			settings := app.Settings.Load(session.Username)
			if err := applySetting(&settings, args[0], args[1]); err != nil {
				return err
			}
			if err := app.Settings.Save(session.Username, settings); err != nil {
				return err
			}
			fmt.Printf("Set %s = %s\n", args[0], args[1])
			return nil
		},
	}
	return cmd
}

func applySetting(s *flashlearn.Settings, key, value string) error {
	switch key {
	case "theme":
		if value != "light" && value != "dark" {
			return fmt.Errorf("theme must be light or dark")
		}
		s.Theme = value
	case "card_order":
		if value != "sequential" && value != "random" {
			return fmt.Errorf("card_order must be sequential or random")
		}
		s.CardOrder = value
	case "auto_reveal_time":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("auto_reveal_time must be a non-negative number of seconds")
		}
		s.AutoRevealTime = n
	case "font_size":
		if value != "small" && value != "medium" && value != "large" {
			return fmt.Errorf("font_size must be small, medium, or large")
		}
		s.FontSize = value
	case "notifications_enabled", "sound_enabled", "auto_save":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be true or false", key)
		}
		switch key {
		case "notifications_enabled":
			s.NotificationsEnabled = b
		case "sound_enabled":
			s.SoundEnabled = b
		case "auto_save":
			s.AutoSave = b
		}
	case "backup_frequency":
		s.BackupFrequency = value
	default:
		return fmt.Errorf("unknown setting: %s", key)
	}
	return nil
}

func newSettingsResetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset settings to defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireUser(app)
			if err != nil {
				return err
			}
			if err := app.Settings.Reset(session.Username); err != nil {
				return err
			}
			fmt.Println("Settings reset to defaults.")
			return nil
		},
	}
	return cmd
}

func newSettingsExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export settings to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireUser(app)
			if err != nil {
				return err
			}

			settings := app.Settings.Load(session.Username)
			data, err := flashlearn.MarshalSettings(settings)
			if err != nil {
				return err
			}
			if err := afero.WriteFile(app.FS, args[0], data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", args[0], err)
			}
			fmt.Printf("Settings exported to %s\n", args[0])
			return nil
		},
	}
	return cmd
}

func newSettingsImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import settings from a JSON file",
		Long:  "Import settings; unknown keys are discarded and missing keys fall back to defaults.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireUser(app)
			if err != nil {
				return err
			}

			data, err := afero.ReadFile(app.FS, args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			settings, err := flashlearn.ParseSettings(data)
			if err != nil {
				return err
			}
			if err := app.Settings.Save(session.Username, settings); err != nil {
				return err
			}
			fmt.Println("Settings imported.")
			return nil
		},
	}
	return cmd
}
