package mapper

import (
	"encoding/json"

	"ai-course-assistant-be/internal/entity"
	"ai-course-assistant-be/internal/model"
)

type ChatTurnMapper struct{}

func NewChatTurnMapper() *ChatTurnMapper {
	return &ChatTurnMapper{}
}

func (m *ChatTurnMapper) ToEntity(t *model.ChatTurn) *entity.ChatTurn {
	if t == nil {
		return nil
	}

	var similarChunks []entity.SimilarChunk
	if len(t.SimilarChunks) > 0 {
		// A row with unreadable metadata is still a usable turn; the
		// chunk audit trail is best-effort on the way out.
		_ = json.Unmarshal(t.SimilarChunks, &similarChunks)
	}

	return &entity.ChatTurn{
		Id:            t.Id,
		UserId:        t.UserId,
		ChatId:        t.ChatId,
		Question:      t.Question,
		Answer:        t.Answer,
		SimilarChunks: similarChunks,
		Timestamp:     t.Timestamp,
	}
}

func (m *ChatTurnMapper) ToModel(t *entity.ChatTurn) (*model.ChatTurn, error) {
	if t == nil {
		return nil, nil
	}

	similarChunks, err := json.Marshal(t.SimilarChunks)
	if err != nil {
		return nil, err
	}

	return &model.ChatTurn{
		Id:            t.Id,
		UserId:        t.UserId,
		ChatId:        t.ChatId,
		Question:      t.Question,
		Answer:        t.Answer,
		SimilarChunks: similarChunks,
		Timestamp:     t.Timestamp,
	}, nil
}

func (m *ChatTurnMapper) ToEntities(turns []*model.ChatTurn) []*entity.ChatTurn {
	entities := make([]*entity.ChatTurn, len(turns))
	for i, t := range turns {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
