package flashlearn

import (
	"testing"

	"github.com/spf13/afero"
)

func TestSessionGuestWhenMissing(t *testing.T) {
	s := NewSessionStore(afero.NewMemMapFs(), "/data")

	session := s.Current()
	if session.Username != GuestUsername || !session.IsGuest() {
		t.Errorf("missing marker = %+v, want guest", session)
	}
}

func TestSessionSignInAndOut(t *testing.T) {
	s := NewSessionStore(afero.NewMemMapFs(), "/data")

	if err := s.SignIn("alice", "alice@example.com", "pics/alice.png"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	session := s.Current()
	if session.IsGuest() {
		t.Fatal("should be signed in")
	}
	if session.Username != "alice" || session.Email != "alice@example.com" {
		t.Errorf("session = %+v", session)
	}
	if session.ProfilePicture != "pics/alice.png" {
		t.Errorf("profile picture = %q", session.ProfilePicture)
	}

	if err := s.SignOut(); err != nil {
		t.Fatalf("SignOut: %v", err)
	}
	if !s.Current().IsGuest() {
		t.Error("should be guest after sign out")
	}

	// Signing out twice is fine.
	if err := s.SignOut(); err != nil {
		t.Errorf("second SignOut: %v", err)
	}
}

func TestSessionValidation(t *testing.T) {
	s := NewSessionStore(afero.NewMemMapFs(), "/data")

	if err := s.SignIn("  ", "", ""); err == nil {
		t.Error("blank username should be rejected")
	}
	if err := s.SignIn("a,b", "", ""); err == nil {
		t.Error("comma in username should be rejected")
	}
}

func TestSessionParsesShortMarker(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewSessionStore(fs, "/data")

	// Marker written by hand with fewer fields than the full layout.
	afero.WriteFile(fs, "/data/current_user.txt", []byte("bob\n"), 0o644)
	session := s.Current()
	if session.Username != "bob" || session.Email != "" {
		t.Errorf("session = %+v", session)
	}

	afero.WriteFile(fs, "/data/current_user.txt", []byte("  \n"), 0o644)
	if !s.Current().IsGuest() {
		t.Error("blank marker should fall back to guest")
	}
}
