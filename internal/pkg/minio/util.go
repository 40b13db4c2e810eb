package minio

import (
	"context"
	"fmt"
	"io"

	"panganjawara/internal/api/config"

	"github.com/minio/minio-go/v7"
)

// UploadFile menyimpan objek dan mengembalikan object key-nya.
func UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	if Client == nil {
		return "", fmt.Errorf("minio client is not initialized")
	}

	uploadInfo, err := Client.PutObject(ctx, Bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return uploadInfo.Key, nil
}

// GetFile membuka objek untuk dibaca (dipakai endpoint transform/download).
func GetFile(ctx context.Context, objectName string) (io.ReadCloser, error) {
	if Client == nil {
		return nil, fmt.Errorf("minio client is not initialized")
	}
	obj, err := Client.GetObject(ctx, Bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get file: %w", err)
	}
	return obj, nil
}

func DeleteFile(ctx context.Context, objectName string) error {
	if Client == nil {
		return fmt.Errorf("minio client is not initialized")
	}
	if err := Client.RemoveObject(ctx, Bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// GetPublicURL menyusun URL publik dari sebuah object key.
func GetPublicURL(objectName string) string {
	if objectName == "" {
		return ""
	}
	cfg := config.Cfg.MinIO
	if cfg.PublicBaseURL != "" {
		return cfg.PublicBaseURL + "/" + objectName
	}

	protocol := "http"
	if cfg.UseSSL {
		protocol = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", protocol, cfg.Endpoint, Bucket, objectName)
}
