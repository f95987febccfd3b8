package usecase

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/partmatch-tech/catalog-backend/pkg/e"
)

type OutboxStatus string

// Статусы жизненного цикла события в outbox-таблице.
const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

// EventDatasetRefreshed публикуется после коммита новой версии датасета каталога.
const EventDatasetRefreshed OutboxEventType = "dataset.refreshed"

// OutboxEvent — событие для надёжной доставки в Kafka через outbox-таблицу.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	Catalog     string
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// DatasetRefreshedPayload — тело события о новой версии датасета.
type DatasetRefreshedPayload struct {
	RunID       string    `json:"run_id"`
	Catalog     string    `json:"catalog"`
	VersionUID  string    `json:"version_uid"`
	Rows        int       `json:"rows"`
	OkCount     int       `json:"ok_count"`
	HighCount   int       `json:"high_count"`
	RefreshedAt time.Time `json:"refreshed_at"`
}

// NewDatasetRefreshedEvent собирает событие со свежим event_id и сериализованным телом.
func NewDatasetRefreshedEvent(payload *DatasetRefreshedPayload) (*OutboxEvent, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, e.Wrap("failed to marshal dataset refreshed payload", err)
	}

	return &OutboxEvent{
		EventID:   uuid.NewString(),
		EventType: EventDatasetRefreshed,
		Catalog:   payload.Catalog,
		Payload:   raw,
		Status:    Pending,
		CreatedAt: time.Now().UTC(),
	}, nil
}
