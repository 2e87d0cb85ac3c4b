package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"

	gcs "cloud.google.com/go/storage"
	"github.com/agoracomunicaciones/agorabackend/utils"
	"google.golang.org/api/option"
)

// GCSStore keeps attachments in a Google Cloud Storage bucket under an
// uploads/ prefix. Save returns the public object URL as the stored path.
type GCSStore struct {
	client *gcs.Client
	bucket string
}

func NewGCSStore(ctx context.Context) (*GCSStore, error) {
	bucket := os.Getenv("GCS_BUCKET")
	credentialsPath := os.Getenv("CREDENTIALS_FILE_LOCATION")
	if bucket == "" || credentialsPath == "" {
		return nil, fmt.Errorf("missing GCS env vars (GCS_BUCKET, CREDENTIALS_FILE_LOCATION)")
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	client, err := gcs.NewClient(ctx,
		option.WithAuthCredentialsFile(option.ServiceAccount, filepath.Join(wd, credentialsPath)))
	if err != nil {
		return nil, err
	}
	return &GCSStore{client: client, bucket: bucket}, nil
}

func (s *GCSStore) Save(ctx context.Context, name string, data io.Reader) (string, int64, error) {
	objectName := "uploads/" + name

	w := s.client.Bucket(s.bucket).Object(objectName).NewWriter(ctx)
	ct := mime.TypeByExtension(filepath.Ext(name))
	if ct == "" {
		ct = "application/octet-stream"
	}
	w.ContentType = ct
	w.CacheControl = "no-cache"

	n, err := io.Copy(w, data)
	if err != nil {
		_ = w.Close()
		return "", 0, &utils.FileWriteError{Path: objectName, Err: err}
	}
	if err := w.Close(); err != nil {
		return "", 0, &utils.FileWriteError{Path: objectName, Err: err}
	}

	publicURL := fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, objectName)
	return publicURL, n, nil
}
