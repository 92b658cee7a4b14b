package services

import (
	"strings"
	"testing"
)

func TestFileStorePutGet(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	content := []byte("12/06/2023, 14:30 - Seller A: Hello")
	key, err := fs.Put(7, "group chat.txt", content)
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if !strings.HasPrefix(key, "user-7/chats/") {
		t.Errorf("key = %q, want user-7/chats/ prefix", key)
	}

	got, err := fs.Get(key)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("Get returned %q, want %q", got, content)
	}
}

func TestFileStoreSanitizesFilename(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	key, err := fs.Put(1, "../../../etc/passwd", []byte("x"))
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if strings.Contains(key, "..") {
		t.Errorf("key %q contains path traversal", key)
	}

	if _, err := fs.Get(key); err != nil {
		t.Errorf("Get after sanitized Put failed: %v", err)
	}
}

func TestFileStoreUniqueKeys(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	k1, err := fs.Put(1, "chat.txt", []byte("a"))
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	k2, err := fs.Put(1, "chat.txt", []byte("b"))
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if k1 == k2 {
		t.Errorf("two uploads of the same filename share key %q", k1)
	}
}

func TestFileStoreGetUnknownKey(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	if _, err := fs.Get("user-1/chats/missing.txt"); err == nil {
		t.Error("Get of unknown key succeeded, want error")
	}
}
