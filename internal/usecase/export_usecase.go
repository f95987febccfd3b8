package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/partmatch-tech/catalog-backend/pkg/e"
	"github.com/partmatch-tech/catalog-backend/pkg/logger"
)

const (
	csvContentType  = "text/csv"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportUseCase собирает файлы выгрузки текущего датасета и сохраняет их
// в объектное хранилище.
type ExportUseCase struct {
	matchRepo  MatchRepository
	exportRepo ExportRepository
	exporter   DatasetExporter
	logger     logger.Logger
}

func NewExportUC(
	matchRepo MatchRepository,
	exportRepo ExportRepository,
	exporter DatasetExporter,
	logger logger.Logger,
) *ExportUseCase {
	return &ExportUseCase{
		matchRepo:  matchRepo,
		exportRepo: exportRepo,
		exporter:   exporter,
		logger:     logger,
	}
}

// ExportDataset выгружает строки текущих версий запрошенных каталогов в CSV
// и XLSX и возвращает ключи файлов в хранилище.
func (u *ExportUseCase) ExportDataset(ctx context.Context, req *ExportReq) (*ExportRes, error) {
	const op = "ExportUseCase.ExportDataset"

	catalogs, err := resolveCatalogs(req.Catalogs)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	versions, err := u.matchRepo.GetCurrentVersions(ctx, catalogs)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(versions) == 0 {
		return nil, e.Wrap(op, e.ErrNoCurrentVersion)
	}

	rows, err := u.matchRepo.GetMatches(ctx, versionIDs(versions), MatchFilter{})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	csvData, err := u.exporter.BuildCSV(rows)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	xlsxData, err := u.exporter.BuildXLSX(rows)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	label := strings.ReplaceAll(catalogLabel(catalogs), ",", "-")
	stamp := time.Now().UTC().Format("20060102T150405Z")

	csvKey, err := u.exportRepo.Upload(ctx, NewUploadExportReq(
		fmt.Sprintf("exports/%s/dataset-%s.csv", label, stamp),
		csvContentType,
		csvData,
	))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	xlsxKey, err := u.exportRepo.Upload(ctx, NewUploadExportReq(
		fmt.Sprintf("exports/%s/dataset-%s.xlsx", label, stamp),
		xlsxContentType,
		xlsxData,
	))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	u.logger.Infof("dataset exported: rows=%d csv=%s xlsx=%s", len(rows), csvKey, xlsxKey)

	return &ExportRes{CSVKey: csvKey, XLSXKey: xlsxKey}, nil
}
