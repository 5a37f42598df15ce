// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mjreyes/flashlearn/internal/flashlearn"
)

// deck file extensions the watcher auto-imports.
var watchedExts = map[string]bool{
	".json": true,
	".yaml": true,
	".yml":  true,
	".csv":  true,
	".xlsx": true,
}

func newWatchCmd(app *App) *cobra.Command {
	var (
		debounceMs int
		oneShot    bool
	)

	cmd := &cobra.Command{
		Use:   "watch <directory>",
		Short: "Watch a folder for deck files and auto-import",
		Long: `Monitor a directory for new deck files (json, yaml, csv, xlsx) and
import them into the signed-in user's decks as they appear.

Examples:
  flashlearn watch ~/Downloads/decks
  flashlearn watch ~/Dropbox/decks --one-shot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireUser(app)
			if err != nil {
				return err
			}

			dir := args[0]
			info, err := os.Stat(dir)
			if err != nil {
				return fmt.Errorf("cannot access directory %s: %w", dir, err)
			}
			if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", dir)
			}

			// One-shot: just process existing files
			if oneShot {
				return importExistingFiles(app, session.Username, dir)
			}

			return watchDirectory(app, session.Username, dir, debounceMs)
		},
	}

	cmd.Flags().IntVar(&debounceMs, "debounce", 1000, "Debounce milliseconds for file events")
	cmd.Flags().BoolVar(&oneShot, "one-shot", false, "Process existing files and exit (don't watch)")

	return cmd
}

func watchDirectory(app *App, username, dir string, debounceMs int) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch directory: %w", err)
	}
	log.Printf("Watching: %s", dir)
	log.Println("Press Ctrl+C to stop watching")

	// Track pending imports with debounce; editors often fire several
	// writes while a file is still being saved.
	pending := make(map[string]*time.Timer)
	var pendingMu sync.Mutex

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watchedExts[strings.ToLower(filepath.Ext(event.Name))] {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}

			pendingMu.Lock()
			if timer, exists := pending[event.Name]; exists {
				timer.Stop()
			}
			pending[event.Name] = time.AfterFunc(time.Duration(debounceMs)*time.Millisecond, func() {
				pendingMu.Lock()
				delete(pending, event.Name)
				pendingMu.Unlock()

				if err := importDeckFile(app, username, event.Name); err != nil {
					log.Printf("Failed to import %s: %v", event.Name, err)
				}
			})
			pendingMu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

func importExistingFiles(app *App, username, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if watchedExts[strings.ToLower(filepath.Ext(e.Name()))] {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		fmt.Println("No deck files found")
		return nil
	}

	fmt.Printf("Found %d deck file(s), importing...\n", len(files))

	imported := 0
	failed := 0
	for _, f := range files {
		if err := importDeckFile(app, username, f); err != nil {
			log.Printf("Failed: %s - %v", f, err)
			failed++
		} else {
			imported++
		}
	}

	fmt.Printf("\nImported: %d, Failed: %d\n", imported, failed)
	return nil
}

func importDeckFile(app *App, username, path string) error {
	log.Printf("Importing: %s", path)

	data, err := afero.ReadFile(app.FS, path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	fallback := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	imported, err := flashlearn.DecodeDecks(data, formatFromPath(path), fallback)
	if err != nil {
		return err
	}

	decks := app.Decks.Load(username)
	created := 0
	for _, d := range imported {
		next, deck, err := app.Decks.Create(decks, username, d.Title, d.Cards)
		if err != nil {
			log.Printf("Skipping deck %q: %v", d.Title, err)
			continue
		}
		decks = next
		created++
		log.Printf("Imported: %s (ID: %s)", deck.Title, deck.ID)
	}
	if created == 0 {
		return fmt.Errorf("no importable decks")
	}
	return app.Decks.Save(username, decks)
}
