package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"farmlink_back_end/internal/database"

	"github.com/minio/minio-go/v7"
)

// UploadImage pousse une image vers MinIO et retourne son URL publique.
// prefix sépare les espaces de nommage ("products/<userId>", "users").
func UploadImage(ctx context.Context, prefix string, file multipart.File, header *multipart.FileHeader) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	ext := filepath.Ext(header.Filename)
	objectName := fmt.Sprintf("%s/%d%s", prefix, time.Now().UnixNano(), ext)

	_, err := database.MinIO.PutObject(
		ctx,
		os.Getenv("MINIO_BUCKET"),
		objectName,
		file,
		header.Size,
		minio.PutObjectOptions{ContentType: header.Header.Get("Content-Type")},
	)
	if err != nil {
		return "", err
	}

	imageURL := fmt.Sprintf("http://%s/%s/%s", os.Getenv("MINIO_ENDPOINT"), os.Getenv("MINIO_BUCKET"), objectName)
	return imageURL, nil
}

// GenerateSignedURL génère une URL GET signée avec expiration
func GenerateSignedURL(ctx context.Context, objectPath string, duration time.Duration) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	bucket := os.Getenv("MINIO_BUCKET")
	reqParams := make(url.Values)

	// Ne garde que le chemin relatif au bucket si on reçoit l'URL complète
	key := objectPath
	publicPrefix := fmt.Sprintf("http://%s/%s/", os.Getenv("MINIO_ENDPOINT"), bucket)
	key = strings.TrimPrefix(key, publicPrefix)

	presignedURL, err := database.MinIO.PresignedGetObject(ctx, bucket, key, duration, reqParams)
	if err != nil {
		return "", err
	}

	return presignedURL.String(), nil
}
