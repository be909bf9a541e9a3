package dto

import (
	"time"

	"ai-course-assistant-be/internal/entity"
)

type AnswerRequest struct {
	UserId   string `json:"user_id" validate:"required"`
	ChatId   string `json:"chat_id" validate:"required"`
	Question string `json:"question" validate:"required"`
}

type AnswerResponse struct {
	Answer   string `json:"answer"`
	Question string `json:"question"`
	ChatId   string `json:"chat_id"`
}

type GetHistoryRequest struct {
	UserId string `json:"user_id" validate:"required"`
	ChatId string `json:"chat_id,omitempty"`
	Limit  int    `json:"limit,omitempty" validate:"omitempty,min=1,max=100"`
}

// ChatTurnResponse keeps the legacy wire names: the stored question goes out
// as "query" and the answer as "response".
type ChatTurnResponse struct {
	Id            string                 `json:"id"`
	UserId        string                 `json:"user_id"`
	ChatId        string                 `json:"chat_id"`
	Question      string                 `json:"query"`
	Answer        string                 `json:"response"`
	SimilarChunks []*entity.SimilarChunk `json:"similar_chunks"`
	Timestamp     time.Time              `json:"timestamp"`
}

type SwitchProviderRequest struct {
	Provider    string   `json:"provider" validate:"required"`
	ApiKey      string   `json:"api_key,omitempty"`
	ModelId     string   `json:"model_id,omitempty"`
	MaxTokens   int      `json:"max_tokens,omitempty" validate:"omitempty,min=1"`
	Temperature *float64 `json:"temperature,omitempty"`
	BaseURL     string   `json:"base_url,omitempty"`
}

type SwitchProviderResponse struct {
	Provider string `json:"provider"`
	ModelId  string `json:"model_id"`
}
