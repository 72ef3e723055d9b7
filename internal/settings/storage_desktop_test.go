//go:build !android && !js

package settings

import (
	"path/filepath"
	"testing"
)

func TestNewStorageUsesConfigDir(t *testing.T) {
	fs, ok := NewStorage().(*FileStorage)
	if !ok {
		t.Fatalf("NewStorage() = %T, want *FileStorage", NewStorage())
	}
	if filepath.Base(fs.Path()) != fileName || filepath.Base(filepath.Dir(fs.Path())) != appDir {
		t.Errorf("unexpected settings path %q", fs.Path())
	}
}
