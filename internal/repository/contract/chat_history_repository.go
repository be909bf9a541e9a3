package contract

import (
	"context"

	"ai-course-assistant-be/internal/entity"
)

// ChatHistoryRepository persists answered turns. Append-only: turns are
// never updated or deleted here; retention is an external concern.
type ChatHistoryRepository interface {
	// Init migrates the table and its indexes. Idempotent.
	Init(ctx context.Context) error

	Save(ctx context.Context, turn *entity.ChatTurn) error

	// GetHistory returns turns for a user sorted by timestamp descending.
	GetHistory(ctx context.Context, userId string, limit int) ([]*entity.ChatTurn, error)

	// GetHistoryByChatId narrows GetHistory to one chat session.
	GetHistoryByChatId(ctx context.Context, userId string, chatId string, limit int) ([]*entity.ChatTurn, error)
}
