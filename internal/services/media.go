package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"time"

	"github.com/minio/minio-go/v7"

	"chefinho_back_end/internal/database"
)

// BlobStore é o contrato mínimo do armazenamento de mídia. A implementação
// padrão fala com o MinIO global; testes trocam por uma em memória.
type BlobStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, string, int64, error)
}

var Media BlobStore = minioStore{}

func mediaBucket() string {
	if bucket := os.Getenv("MINIO_BUCKET"); bucket != "" {
		return bucket
	}
	return "chefinho-media"
}

type minioStore struct{}

func (minioStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	if database.MinioClient == nil {
		return fmt.Errorf("MinIO não inicializado")
	}
	_, err := database.MinioClient.PutObject(ctx, mediaBucket(), key, body, size,
		minio.PutObjectOptions{ContentType: contentType})
	return err
}

func (minioStore) Get(ctx context.Context, key string) (io.ReadCloser, string, int64, error) {
	if database.MinioClient == nil {
		return nil, "", 0, fmt.Errorf("MinIO não inicializado")
	}

	stat, err := database.MinioClient.StatObject(ctx, mediaBucket(), key, minio.StatObjectOptions{})
	if err != nil {
		return nil, "", 0, err
	}

	obj, err := database.MinioClient.GetObject(ctx, mediaBucket(), key, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", 0, err
	}

	contentType := stat.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return obj, contentType, stat.Size, nil
}

// MediaKey monta a key do objeto: <kind>/<timestamp ms>-<nome base>. O
// timestamp torna a key única, então o objeto nunca é reescrito.
func MediaKey(kind, filename string) string {
	return fmt.Sprintf("%s/%d-%s", kind, time.Now().UnixMilli(), path.Base(filename))
}

// UploadMedia grava o arquivo no bucket de mídia e devolve a key do objeto.
func UploadMedia(ctx context.Context, kind string, file *multipart.FileHeader) (string, error) {
	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := MediaKey(kind, file.Filename)
	if err := Media.Put(ctx, key, f, file.Size, contentType); err != nil {
		return "", err
	}
	return key, nil
}

// FetchMedia abre o objeto e devolve o stream mais o content-type gravado.
func FetchMedia(ctx context.Context, key string) (io.ReadCloser, string, int64, error) {
	return Media.Get(ctx, key)
}
