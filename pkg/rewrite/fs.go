package rewrite

import (
	"context"
	"os"
)

// 💾 FileSystem is the file access the rewriter needs
type FileSystem interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	// WriteFile overwrites path in place
	WriteFile(ctx context.Context, path string, content []byte) error
}

// OSFileSystem reads and writes through the os package. Writes are not
// atomic: an interrupted write can leave the file truncated.
type OSFileSystem struct{}

var _ FileSystem = OSFileSystem{}

func (OSFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (OSFileSystem) WriteFile(ctx context.Context, path string, content []byte) error {
	// existing files keep their mode
	return os.WriteFile(path, content, 0o644)
}
