package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/agoracomunicaciones/agorabackend/utils"
)

// FileStore persists attachment bytes under a caller-chosen name
// (always "<generated-id>.<extension>"). Save returns where the bytes
// landed and how many were written; both go into the FileRef kept with the
// quote record. There is no delete: attachments outlive their request.
type FileStore interface {
	Save(ctx context.Context, name string, data io.Reader) (path string, size int64, err error)
}

// New selects a backend from FILE_STORAGE (local, gcs, r2). Local disk is
// the default and writes under UPLOAD_DIR.
func New(ctx context.Context) (FileStore, error) {
	switch backend := utils.EnvDefault("FILE_STORAGE", "local"); backend {
	case "local":
		return NewLocalStore(utils.EnvDefault("UPLOAD_DIR", "uploads"))
	case "gcs":
		return NewGCSStore(ctx)
	case "r2":
		return NewR2Store(ctx)
	default:
		return nil, fmt.Errorf("unknown FILE_STORAGE backend %q", backend)
	}
}
