package storage

import (
	"context"
	"io"
	"medintake-service/internal/pkg/exceptions"
	"medintake-service/internal/pkg/utils"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioStorage(minioClient *minio.Client, bucketName string) AttachmentStorage {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

func (m *minioStorage) Store(ctx context.Context, file io.Reader, size int64, contentType, filenameHint string) (string, error) {
	reference := utils.GenerateAttachmentReference(filenameHint)
	_, err := m.MinioClient.PutObject(ctx, m.BucketName, reference, file, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", exceptions.ErrAttachmentStore(err, m.BucketName)
	}
	return reference, nil
}

func (m *minioStorage) Fetch(ctx context.Context, reference string) (io.ReadCloser, string, error) {
	// GetObject is lazy, so existence and content type come from StatObject.
	stat, err := m.MinioClient.StatObject(ctx, m.BucketName, reference, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, "", exceptions.ErrAttachmentNotFound(err, reference)
		}
		return nil, "", exceptions.ErrAttachmentFetch(err, reference)
	}

	object, err := m.MinioClient.GetObject(ctx, m.BucketName, reference, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", exceptions.ErrAttachmentFetch(err, reference)
	}
	return object, stat.ContentType, nil
}

func (m *minioStorage) Delete(ctx context.Context, reference string) error {
	err := m.MinioClient.RemoveObject(ctx, m.BucketName, reference, minio.RemoveObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil
		}
		return exceptions.ErrAttachmentDelete(err, reference)
	}
	return nil
}
