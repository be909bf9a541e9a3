package implementation

import (
	"context"
	"time"

	"ai-course-assistant-be/internal/entity"
	"ai-course-assistant-be/internal/model"
	"ai-course-assistant-be/internal/repository/contract"
	"ai-course-assistant-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IngestionLogRepositoryImpl struct {
	db *gorm.DB
}

func NewIngestionLogRepository(db *gorm.DB) contract.IngestionLogRepository {
	return &IngestionLogRepositoryImpl{db: db}
}

func (r *IngestionLogRepositoryImpl) Init(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&model.IngestionLog{})
}

func (r *IngestionLogRepositoryImpl) Create(ctx context.Context, entry *entity.IngestionLog) error {
	m := &model.IngestionLog{
		Id:         uuid.New(),
		FileId:     entry.FileId,
		FileName:   entry.FileName,
		CourseId:   entry.CourseId,
		Success:    entry.Success,
		Message:    entry.Message,
		ChunkCount: entry.ChunkCount,
		CreatedAt:  time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	entry.Id = m.Id
	entry.CreatedAt = m.CreatedAt
	return nil
}

func (r *IngestionLogRepositoryImpl) FindByFileId(ctx context.Context, fileId string) ([]*entity.IngestionLog, error) {
	var models []*model.IngestionLog
	query := specification.FilterBy{Field: "file_id", Value: fileId}.Apply(r.db.WithContext(ctx))
	if err := query.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	entries := make([]*entity.IngestionLog, len(models))
	for i, m := range models {
		entries[i] = &entity.IngestionLog{
			Id:         m.Id,
			FileId:     m.FileId,
			FileName:   m.FileName,
			CourseId:   m.CourseId,
			Success:    m.Success,
			Message:    m.Message,
			ChunkCount: m.ChunkCount,
			CreatedAt:  m.CreatedAt,
		}
	}
	return entries, nil
}
