// Package storage holds the hosted media service client. Avatars live in a
// MinIO bucket; the database only ever stores the public object URL.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	// PublicBaseURL is the externally reachable address objects are served
	// from, e.g. "https://media.example.com". It may differ from Endpoint
	// when the backend talks to the store over a private network.
	PublicBaseURL string
	UseSSL        bool
}

// AvatarStorage is what the profile logic depends on; the MinIO client
// satisfies it, and tests substitute an in-memory fake.
type AvatarStorage interface {
	Upload(ctx context.Context, ownerId uuid.UUID, data []byte, contentType string) (string, error)
	Remove(ctx context.Context, objectURL string) error
}

type MinioStorage struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

func NewMinioStorage(cfg Config) (*MinioStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect media storage: %w", err)
	}
	return &MinioStorage{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}

// Upload stores the image under a fresh key and returns its public URL.
// Keys embed the owner and a timestamp so successive uploads never collide.
func (s *MinioStorage) Upload(ctx context.Context, ownerId uuid.UUID, data []byte, contentType string) (string, error) {
	key := fmt.Sprintf("avatars/%s_%d%s", ownerId, time.Now().Unix(), extensionFor(contentType))
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/%s", s.publicBaseURL, s.bucket, key), nil
}

// Remove deletes the object a previously returned URL points at.
func (s *MinioStorage) Remove(ctx context.Context, objectURL string) error {
	prefix := fmt.Sprintf("%s/%s/", s.publicBaseURL, s.bucket)
	key := strings.TrimPrefix(objectURL, prefix)
	if key == objectURL {
		return fmt.Errorf("unrecognized avatar url %q", objectURL)
	}
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}
