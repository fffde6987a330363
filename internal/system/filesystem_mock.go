package system

import (
	"fmt"
	"io/fs"
	"sync"
)

// MockFileSystem is an in-memory FileSystemManager for testing purposes.
// Files holds current contents; ReadErrors and WriteErrors inject failures per path.
type MockFileSystem struct {
	mu          sync.Mutex
	Files       map[string][]byte
	Backups     map[string][]byte
	ReadErrors  map[string]error
	WriteErrors map[string]error
	Writes      []string
}

// NewMockFileSystem creates a new MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Files:       make(map[string][]byte),
		Backups:     make(map[string][]byte),
		ReadErrors:  make(map[string]error),
		WriteErrors: make(map[string]error),
	}
}

// ReadFile returns the stored content or an fs.ErrNotExist path error.
func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.ReadErrors[path]; ok {
		return nil, err
	}
	data, ok := m.Files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

// ReplaceFile captures the content that would be written to a file.
func (m *MockFileSystem) ReplaceFile(path string, content []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.WriteErrors[path]; ok {
		return err
	}
	m.Files[path] = append([]byte(nil), content...)
	m.Writes = append(m.Writes, path)
	return nil
}

// BackupFile stores a copy of the current content under "<path>.backup".
func (m *MockFileSystem) BackupFile(path string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.Files[path]
	if !ok {
		return "", nil
	}
	backupPath := fmt.Sprintf("%s.backup", path)
	m.Backups[backupPath] = append([]byte(nil), data...)
	return backupPath, nil
}
