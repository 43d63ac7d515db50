// Package session manages the client's persistent session identity.
// The item service keeps one UI state record per session, so the id
// must survive restarts; it lives in ~/.config/shortlist/session.toml.
package session

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	toml "github.com/pelletier/go-toml/v2"
)

// Session holds the persisted session identity.
type Session struct {
	ID string `toml:"id"`
}

const defaultSessionPath = "~/.config/shortlist/session.toml"

// DefaultPath returns the default session file path.
func DefaultPath() string {
	return defaultSessionPath
}

// Load reads the session file, generating and persisting a fresh UUID
// when the file is missing or unusable. The returned session is always
// valid; a write failure only means the next run gets a new identity.
func Load(path string) (Session, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return generate(resolved), nil
	}

	file, err := os.Open(resolved)
	if err != nil {
		return generate(resolved), nil
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return generate(resolved), nil
	}

	var s Session
	if err := toml.Unmarshal(bytes, &s); err != nil {
		return generate(resolved), nil
	}
	if _, err := uuid.Parse(strings.TrimSpace(s.ID)); err != nil {
		return generate(resolved), nil
	}
	s.ID = strings.TrimSpace(s.ID)
	return s, nil
}

// Save writes the session to the given path, creating directories as
// needed.
func Save(path string, s Session) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	bytes, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}

	return nil
}

func generate(resolved string) Session {
	s := Session{ID: uuid.NewString()}
	if resolved != "" {
		// Best effort: a write failure only means the next run gets a
		// new identity.
		_ = Save(resolved, s)
	}
	return s
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultSessionPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
