package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileStore archives uploaded transcript blobs on local disk so they can be
// re-parsed later. Keys look like user-<id>/chats/<filename>-<uuid>.txt and
// are what chat_files.file_key stores.
type FileStore struct {
	root string
}

func NewFileStore(root string) (*FileStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &FileStore{root: root}, nil
}

// Put writes content under a fresh key for the given user and filename and
// returns the key.
func (s *FileStore) Put(userID int64, filename string, content []byte) (string, error) {
	key := fmt.Sprintf("user-%d/chats/%s-%s.txt", userID, sanitizeFilename(filename), uuid.NewString())

	path := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create chat dir: %w", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write transcript: %w", err)
	}
	return key, nil
}

// Get reads back an archived transcript by its key.
func (s *FileStore) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(key)))
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript %s: %w", key, err)
	}
	return data, nil
}

// sanitizeFilename reduces an arbitrary upload name to a safe key fragment.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.TrimSuffix(name, filepath.Ext(name))

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "chat"
	}
	return b.String()
}
