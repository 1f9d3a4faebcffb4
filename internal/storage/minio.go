package storage

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/skillswap/skillswap-api/internal/models"
)

// AssetStore stores uploaded images in a MinIO bucket. The object key
// doubles as the deletable handle in the AssetRef it hands out.
type AssetStore struct {
	client    *minio.Client
	bucket    string
	publicURL string // base URL clients use to fetch objects
}

// NewAssetStore connects to MinIO and ensures the bucket exists.
func NewAssetStore(ctx context.Context, endpoint, accessKey, secretKey, bucket, publicURL string, useSSL bool) (*AssetStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("minio bucket check: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("minio make bucket: %w", err)
		}
	}

	return &AssetStore{client: client, bucket: bucket, publicURL: publicURL}, nil
}

// Store uploads a file under a fresh key and returns its asset reference.
func (s *AssetStore) Store(ctx context.Context, reader io.Reader, size int64, filename, contentType string) (models.AssetRef, error) {
	key := uuid.NewString() + path.Ext(filename)

	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return models.AssetRef{}, fmt.Errorf("minio put object: %w", err)
	}

	return models.AssetRef{
		URL:    fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, key),
		Handle: key,
	}, nil
}

// Remove deletes the object behind a handle.
func (s *AssetStore) Remove(ctx context.Context, handle string) error {
	return s.client.RemoveObject(ctx, s.bucket, handle, minio.RemoveObjectOptions{})
}
