package roomstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// File persists the room pair as a small JSON file, the engine's stand-in
// for browser local storage.
type File struct {
	path string
}

type fileEntry struct {
	RoomID   string `json:"roomId"`
	RoomCode string `json:"roomCode"`
}

// NewFile creates a file-backed store at the given path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Save writes the room pair, creating parent directories as needed.
func (f *File) Save(roomID, roomCode string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	data, err := json.Marshal(fileEntry{RoomID: roomID, RoomCode: roomCode})
	if err != nil {
		return fmt.Errorf("marshal room entry: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("write room entry: %w", err)
	}
	return nil
}

// Load reads the persisted pair. A missing or unreadable file reads as
// absent.
func (f *File) Load() (string, string, bool) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn().Err(err).Str("path", f.path).Msg("failed to read room entry")
		}
		return "", "", false
	}
	var entry fileEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		log.Warn().Err(err).Str("path", f.path).Msg("corrupt room entry, ignoring")
		return "", "", false
	}
	if entry.RoomID == "" || entry.RoomCode == "" {
		return "", "", false
	}
	return entry.RoomID, entry.RoomCode, true
}

// Clear removes the persisted pair.
func (f *File) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear room entry: %w", err)
	}
	return nil
}
