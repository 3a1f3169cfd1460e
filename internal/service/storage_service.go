package service

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"verdant_backend/internal/config"
	"verdant_backend/internal/model"
	"verdant_backend/internal/util"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ImageArchive stores uploaded identification images and returns a URL for
// them. Archiving is optional and never blocks an identification.
type ImageArchive interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// LocalImageArchive 本地磁盘存储
type LocalImageArchive struct {
	Root string
}

func (a *LocalImageArchive) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	dst := filepath.Join(a.Root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return "", err
	}
	return "/uploads/" + key, nil
}

// MinioImageArchive MinIO 对象存储
type MinioImageArchive struct {
	Bucket string
	Client *minio.Client
}

func NewMinioImageArchive(cfg *config.StorageConfig) (*MinioImageArchive, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}
	return &MinioImageArchive{Bucket: cfg.MinioBucket, Client: client}, nil
}

func (a *MinioImageArchive) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := a.Client.PutObject(ctx, a.Bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return "/" + a.Bucket + "/" + key, nil
}

// OSSImageArchive 阿里云 OSS 存储
type OSSImageArchive struct {
	Endpoint string
	Bucket   *oss.Bucket
}

func NewOSSImageArchive(cfg *config.StorageConfig) (*OSSImageArchive, error) {
	client, err := oss.New(cfg.OSSEndpoint, cfg.OSSAccessKey, cfg.OSSSecretKey)
	if err != nil {
		return nil, err
	}
	bucket, err := client.Bucket(cfg.OSSBucket)
	if err != nil {
		return nil, err
	}
	return &OSSImageArchive{Endpoint: cfg.OSSEndpoint, Bucket: bucket}, nil
}

func (a *OSSImageArchive) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if err := a.Bucket.PutObject(key, bytes.NewReader(data), oss.ContentType(contentType)); err != nil {
		return "", err
	}
	return fmt.Sprintf("https://%s.%s/%s", a.Bucket.BucketName, a.Endpoint, key), nil
}

// NewImageArchive returns nil when archiving is switched off.
func NewImageArchive(cfg *config.StorageConfig) (ImageArchive, error) {
	if !cfg.ArchiveUploads {
		return nil, nil
	}
	switch cfg.Type {
	case util.StorageMinio:
		a, err := NewMinioImageArchive(cfg)
		if err != nil {
			return nil, err
		}
		return a, nil
	case util.StorageOSS:
		a, err := NewOSSImageArchive(cfg)
		if err != nil {
			return nil, err
		}
		return a, nil
	case "", util.StorageLocal:
		return &LocalImageArchive{Root: cfg.LocalPath}, nil
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Type)
	}
}

// imageKey builds identifications/<user>/<yyyy/mm/dd>/<uuid>.<ext>
func imageKey(userID, mimeType string, at time.Time) string {
	ext := strings.TrimPrefix(mimeType, util.MimeImage)
	if ext == "" || strings.ContainsAny(ext, "/;") {
		ext = "bin"
	}
	return path.Join("identifications", userID, at.Format("2006/01/02"), model.GenerateUUID()+"."+ext)
}
