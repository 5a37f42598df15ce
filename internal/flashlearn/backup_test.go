package flashlearn

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestBackupAndRestore(t *testing.T) {
	fs := afero.NewMemMapFs()
	ds := NewDeckStore(fs, "/data")
	ss := NewSettingsStore(fs, "/data")

	decks, _, err := ds.Create(nil, "alice", "Biology", []Card{{Question: "q", Answer: "a"}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := ds.Save("alice", decks); err != nil {
		t.Fatalf("Save decks: %v", err)
	}
	custom := DefaultSettings()
	custom.Theme = "dark"
	if err := ss.Save("alice", custom); err != nil {
		t.Fatalf("Save settings: %v", err)
	}

	dir, err := Backup(fs, "/data", "alice", "/backups")
	if err != nil {
		t.Fatalf("Backup: %v", err)
	}
	if !strings.HasPrefix(dir, "/backups/alice_backup_") {
		t.Errorf("backup dir = %q", dir)
	}

	// Wreck the live data, then restore.
	if err := ds.Save("alice", nil); err != nil {
		t.Fatalf("Save empty: %v", err)
	}
	if err := ss.Reset("alice"); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	if err := Restore(fs, dir, "/data", "alice"); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	// Restore rewrote the deck file directly, so the store must be
	// told its cached parse is stale.
	ds.Invalidate("alice")
	restored := ds.Load("alice")
	if len(restored) != 1 || restored[0].Title != "Biology" {
		t.Errorf("restored decks = %+v", restored)
	}
	if got := ss.Load("alice"); got.Theme != "dark" {
		t.Errorf("restored theme = %q, want dark", got.Theme)
	}
}

func TestInvalidateDropsCachedDecks(t *testing.T) {
	fs := afero.NewMemMapFs()
	ds := NewDeckStore(fs, "/data")

	decks, _, _ := ds.Create(nil, "alice", "Old", []Card{{Question: "q", Answer: "a"}})
	if err := ds.Save("alice", decks); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Rewrite the file behind the store's back, as a restore does.
	replacement := `[{"title": "Restored", "cards": [{"question": "q", "answer": "a"}], "card_count": 1, "created_by": "alice", "created_at": "2026-08-01 10:00:00", "is_favorite": false}]`
	if err := afero.WriteFile(fs, "/data/user_decks/alice_decks.json", []byte(replacement), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	// The cache still serves the old parse until invalidated.
	if got := ds.Load("alice"); got[0].Title != "Old" {
		t.Errorf("before invalidate: %q", got[0].Title)
	}
	ds.Invalidate("alice")
	if got := ds.Load("alice"); len(got) != 1 || got[0].Title != "Restored" {
		t.Errorf("after invalidate: %+v", got)
	}
}

func TestBackupNoData(t *testing.T) {
	fs := afero.NewMemMapFs()
	if _, err := Backup(fs, "/data", "nobody", "/backups"); err == nil {
		t.Error("backup with no user files should fail")
	}
}

func TestRestoreEmptyBackup(t *testing.T) {
	fs := afero.NewMemMapFs()
	fs.MkdirAll("/backups/empty", 0o755)
	if err := Restore(fs, "/backups/empty", "/data", "alice"); err == nil {
		t.Error("restore from empty backup should fail")
	}
}
