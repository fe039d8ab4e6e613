package filestorage

import (
	"context"

	"wfp-backend/db"
	"wfp-backend/lib/file-storage/storage"
)

type Provider interface {
	UploadImportFile(ctx context.Context, kind, fileName string, file []byte) (fileID string, err error)
	GetFile(ctx context.Context, fileID string) ([]byte, string, error)
}

var Instance Provider

func NewHandler(bucketName string) {
	Instance = storage.NewInstance(db.DB, bucketName)
}
