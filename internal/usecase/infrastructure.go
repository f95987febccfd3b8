package usecase

import "context"

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteMessageReq) error
}

// DatasetExporter собирает файлы выгрузки датасета в памяти.
type DatasetExporter interface {
	BuildCSV(rows []CatalogMatchInfo) ([]byte, error)
	BuildXLSX(rows []CatalogMatchInfo) ([]byte, error)
}
