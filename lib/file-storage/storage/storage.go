package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "wfp-backend/models/db"
	s3client "wfp-backend/s3"
)

type Provider interface {
	UploadImportFile(ctx context.Context, kind, fileName string, file []byte) (fileID string, err error)
	GetFile(ctx context.Context, fileID string) ([]byte, string, error)
}

type impl struct {
	db         *gorm.DB
	bucketName string
}

func NewInstance(DB *gorm.DB, bucketName string) Provider {
	return &impl{
		db:         DB,
		bucketName: bucketName,
	}
}

// UploadImportFile stores the workbook in S3 and records its metadata.
func (i *impl) UploadImportFile(ctx context.Context, kind, fileName string, file []byte) (string, error) {
	if s3client.Client == nil {
		return "", errors.New("s3 client is not initialized")
	}
	contentType := http.DetectContentType(file)
	rec := dbmodels.StoredFile{
		BaseModel:   dbmodels.BaseModel{ID: uuid.New().String()},
		Name:        fileName,
		Kind:        kind,
		ContentType: contentType,
		Size:        int64(len(file)),
	}
	if err := i.db.Create(&rec).Error; err != nil {
		return "", errors.Wrap(err, "failed to record the file")
	}
	if err := i.makeBucket(ctx); err != nil {
		return "", err
	}
	_, err := s3client.Client.PutObject(ctx, i.bucketName, objectName(kind, rec.ID),
		bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to upload the file")
	}
	return rec.ID, nil
}

func (i *impl) GetFile(ctx context.Context, fileID string) ([]byte, string, error) {
	if s3client.Client == nil {
		return nil, "", errors.New("s3 client is not initialized")
	}
	rec := dbmodels.StoredFile{BaseModel: dbmodels.BaseModel{ID: fileID}}
	if err := i.db.First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", errors.New("file not found")
		}
		return nil, "", err
	}
	obj, err := s3client.Client.GetObject(ctx, i.bucketName, objectName(rec.Kind, rec.ID), minio.GetObjectOptions{})
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to get the file")
	}
	defer obj.Close()
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to read the file")
	}
	return data, rec.Name, nil
}

func (i *impl) makeBucket(ctx context.Context) error {
	exists, err := s3client.Client.BucketExists(ctx, i.bucketName)
	if err != nil {
		return errors.Wrap(err, "failed to check the bucket")
	}
	if exists {
		return nil
	}
	err = s3client.Client.MakeBucket(ctx, i.bucketName, minio.MakeBucketOptions{Region: "us-east-1"})
	if err != nil {
		return errors.Wrap(err, "failed to create the bucket")
	}
	return nil
}

func objectName(kind, fileID string) string {
	return fmt.Sprintf("%s/%s", kind, fileID)
}
