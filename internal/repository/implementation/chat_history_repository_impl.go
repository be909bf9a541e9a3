package implementation

import (
	"context"

	"ai-course-assistant-be/internal/entity"
	"ai-course-assistant-be/internal/mapper"
	"ai-course-assistant-be/internal/model"
	"ai-course-assistant-be/internal/repository/contract"
	"ai-course-assistant-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ChatHistoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatTurnMapper
}

func NewChatHistoryRepository(db *gorm.DB) contract.ChatHistoryRepository {
	return &ChatHistoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatTurnMapper(),
	}
}

func (r *ChatHistoryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChatHistoryRepositoryImpl) Init(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&model.ChatTurn{})
}

func (r *ChatHistoryRepositoryImpl) Save(ctx context.Context, turn *entity.ChatTurn) error {
	m, err := r.mapper.ToModel(turn)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	turn.Id = m.Id
	return nil
}

func (r *ChatHistoryRepositoryImpl) GetHistory(ctx context.Context, userId string, limit int) ([]*entity.ChatTurn, error) {
	if limit <= 0 {
		limit = 10
	}

	var models []*model.ChatTurn
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.ByUserId{UserId: userId},
		specification.OrderBy{Field: "timestamp", Desc: true},
		specification.Limit{Count: limit},
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *ChatHistoryRepositoryImpl) GetHistoryByChatId(ctx context.Context, userId string, chatId string, limit int) ([]*entity.ChatTurn, error) {
	if limit <= 0 {
		limit = 10
	}

	var models []*model.ChatTurn
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.ByUserId{UserId: userId},
		specification.ByChatId{ChatId: chatId},
		specification.OrderBy{Field: "timestamp", Desc: true},
		specification.Limit{Count: limit},
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}
