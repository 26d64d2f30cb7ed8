package storage

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"
)

// LocalUploader writes under <publicDir>/uploads and returns a site-relative
// URL. Fallback for environments without a blob bucket.
type LocalUploader struct {
	publicDir string
}

func NewLocalUploader(publicDir string) (*LocalUploader, error) {
	if err := os.MkdirAll(filepath.Join(publicDir, "uploads"), 0o755); err != nil {
		return nil, err
	}
	return &LocalUploader{publicDir: publicDir}, nil
}

func (u *LocalUploader) Upload(_ context.Context, objectName string, _ string, r io.Reader) (string, error) {
	// objectName comes in as "uploads/<name>"; keep the same layout on disk
	dst := filepath.Join(u.publicDir, filepath.FromSlash(objectName))

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}

	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(dst)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	return "/" + path.Clean(objectName), nil
}
