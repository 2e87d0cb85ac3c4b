package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/agoracomunicaciones/agorabackend/utils"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// R2Store keeps attachments in an S3-compatible Cloudflare R2 bucket.
type R2Store struct {
	s3           *s3.Client
	bucket       string
	publicDomain string
}

func NewR2Store(ctx context.Context) (*R2Store, error) {
	bucket := os.Getenv("R2_BUCKET")
	accessKey := os.Getenv("R2_ACCESS_KEY_ID")
	secretKey := os.Getenv("R2_SECRET_ACCESS_KEY")
	endpoint := os.Getenv("R2_ENDPOINT") // https://<account-id>.r2.cloudflarestorage.com

	if bucket == "" || accessKey == "" || secretKey == "" || endpoint == "" {
		return nil, fmt.Errorf("missing R2 env vars (R2_BUCKET, R2_ACCESS_KEY_ID, R2_SECRET_ACCESS_KEY, R2_ENDPOINT)")
	}

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
		config.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("r2 config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true // required for R2
	})

	return &R2Store{
		s3:           client,
		bucket:       bucket,
		publicDomain: strings.TrimSuffix(os.Getenv("R2_PUBLIC_DOMAIN"), "/"),
	}, nil
}

func (s *R2Store) Save(ctx context.Context, name string, data io.Reader) (string, int64, error) {
	objectName := "uploads/" + name

	// PutObject wants a seekable body for signing; buffer the stream so a
	// plain multipart reader works too.
	buf, err := io.ReadAll(data)
	if err != nil {
		return "", 0, &utils.FileWriteError{Path: objectName, Err: err}
	}

	ct := mime.TypeByExtension(filepath.Ext(name))
	if ct == "" {
		ct = "application/octet-stream"
	}

	_, err = s.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectName),
		Body:        bytes.NewReader(buf),
		ContentType: aws.String(ct),
	})
	if err != nil {
		return "", 0, &utils.FileWriteError{Path: objectName, Err: err}
	}

	path := objectName
	if s.publicDomain != "" {
		path = s.publicDomain + "/" + objectName
	}
	return path, int64(len(buf)), nil
}
