package contract

import (
	"context"

	"ai-course-assistant-be/internal/entity"
)

// IngestionLogRepository is the audit trail behind the ingestion event bus.
type IngestionLogRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, entry *entity.IngestionLog) error
	FindByFileId(ctx context.Context, fileId string) ([]*entity.IngestionLog, error)
}
