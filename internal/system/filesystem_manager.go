package system

// FileSystemManager defines the file operations the patcher needs.
// This allows for mocking the file system in tests.
type FileSystemManager interface {
	ReadFile(path string) ([]byte, error)
	ReplaceFile(path string, content []byte) error
	BackupFile(path string) (string, error)
}
