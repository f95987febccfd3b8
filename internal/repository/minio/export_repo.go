package minio

import (
	"bytes"
	"context"

	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
	"github.com/partmatch-tech/catalog-backend/internal/cfg"
	"github.com/partmatch-tech/catalog-backend/internal/usecase"
	"github.com/partmatch-tech/catalog-backend/pkg/e"
)

// ExportRepo реализует хранилище файлов выгрузки поверх MinIO.
type ExportRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewExportRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *ExportRepo {
	return &ExportRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// Upload сохраняет файл выгрузки в MinIO и возвращает ключ объекта.
func (r *ExportRepo) Upload(ctx context.Context, req *usecase.UploadExportReq) (string, error) {
	reader := bytes.NewReader(req.Data)

	info, err := r.mc.PutObject(ctx, r.cfg.BucketName, req.Key, reader, int64(len(req.Data)), minio.PutObjectOptions{
		ContentType: req.ContentType,
	})
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return info.Key, nil
}
