// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package flashlearn

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// GuestUsername is the session identity when nobody is signed in.
const GuestUsername = "Guest"

// Session is the current user identity, passed explicitly to commands
// instead of being re-derived from disk at each call site.
type Session struct {
	Username       string
	Email          string
	ProfilePicture string
}

// IsGuest reports whether no user is signed in.
func (s Session) IsGuest() bool {
	return s.Username == "" || s.Username == GuestUsername
}

// SessionStore reads and writes the current_user.txt marker file:
// a single comma-separated line of
// username,email,password_placeholder,profile_picture_path.
// Credential verification is out of scope; the marker only namespaces
// file lookups.
type SessionStore struct {
	fs   afero.Fs
	path string
}

// NewSessionStore creates a session store rooted at dataDir.
func NewSessionStore(fs afero.Fs, dataDir string) *SessionStore {
	return &SessionStore{fs: fs, path: filepath.Join(dataDir, "current_user.txt")}
}

// Current returns the signed-in session, or a Guest session when the
// marker file is missing or unreadable.
func (s *SessionStore) Current() Session {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return Session{Username: GuestUsername}
	}

	fields := strings.Split(strings.TrimSpace(string(data)), ",")
	for len(fields) < 4 {
		fields = append(fields, "")
	}
	if strings.TrimSpace(fields[0]) == "" {
		return Session{Username: GuestUsername}
	}
	return Session{
		Username:       strings.TrimSpace(fields[0]),
		Email:          strings.TrimSpace(fields[1]),
		ProfilePicture: strings.TrimSpace(fields[3]),
	}
}

// SignIn writes the session marker. The password field stays empty;
// it exists only for compatibility with the marker layout.
func (s *SessionStore) SignIn(username, email, profilePicture string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("username is required")
	}
	if strings.Contains(username, ",") {
		return fmt.Errorf("username must not contain a comma")
	}
	line := fmt.Sprintf("%s,%s,,%s", username, strings.TrimSpace(email), strings.TrimSpace(profilePicture))
	if err := afero.WriteFile(s.fs, s.path, []byte(line), 0o644); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// SignOut removes the session marker; already signed out is fine.
func (s *SessionStore) SignOut() error {
	err := s.fs.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}
