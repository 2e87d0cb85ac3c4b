package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/agoracomunicaciones/agorabackend/utils"
)

// LocalStore writes attachments to a directory on disk. The reported size
// is read back with a stat after the write, not taken from the request.
type LocalStore struct {
	baseDir string
}

func NewLocalStore(baseDir string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{baseDir: baseDir}, nil
}

func (s *LocalStore) Save(_ context.Context, name string, data io.Reader) (string, int64, error) {
	dest := filepath.Join(s.baseDir, name)

	f, err := os.Create(dest)
	if err != nil {
		return "", 0, &utils.FileWriteError{Path: dest, Err: err}
	}
	if _, err := io.Copy(f, data); err != nil {
		_ = f.Close()
		return "", 0, &utils.FileWriteError{Path: dest, Err: err}
	}
	if err := f.Close(); err != nil {
		return "", 0, &utils.FileWriteError{Path: dest, Err: err}
	}

	info, err := os.Stat(dest)
	if err != nil {
		return "", 0, &utils.FileWriteError{Path: dest, Err: err}
	}
	return dest, info.Size(), nil
}
