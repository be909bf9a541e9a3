package service

import (
	"context"
	"fmt"
	"time"

	"ai-course-assistant-be/internal/config"
	"ai-course-assistant-be/internal/dto"
	"ai-course-assistant-be/internal/entity"
	"ai-course-assistant-be/internal/pkg/logger"
	"ai-course-assistant-be/internal/repository/contract"
	"ai-course-assistant-be/pkg/embedding"
	"ai-course-assistant-be/pkg/events"
	"ai-course-assistant-be/pkg/llm"
	"ai-course-assistant-be/pkg/llm/factory"
	pktNats "ai-course-assistant-be/pkg/nats"
	"ai-course-assistant-be/pkg/rag/prompt"
	"ai-course-assistant-be/pkg/rag/translator"
)

// CourseLister enumerates available offerings for the prompt's catalog layer.
type CourseLister interface {
	Courses() []string
}

type IChatService interface {
	Answer(ctx context.Context, req *dto.AnswerRequest) (*dto.AnswerResponse, error)
	GetHistory(ctx context.Context, req *dto.GetHistoryRequest) ([]*dto.ChatTurnResponse, error)
	SwitchProvider(ctx context.Context, req *dto.SwitchProviderRequest) (*dto.SwitchProviderResponse, error)
}

type chatService struct {
	cfg            *config.Config
	historyRepo    contract.ChatHistoryRepository
	chunkRepo      contract.ChunkRepository
	embedder       embedding.Provider
	handle         *llm.Handle
	factory        *factory.Factory
	translator     *translator.Translator
	builder        *prompt.Builder
	catalog        CourseLister
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewChatService(
	cfg *config.Config,
	historyRepo contract.ChatHistoryRepository,
	chunkRepo contract.ChunkRepository,
	embedder embedding.Provider,
	handle *llm.Handle,
	providerFactory *factory.Factory,
	queryTranslator *translator.Translator,
	promptBuilder *prompt.Builder,
	courseCatalog CourseLister,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IChatService {
	return &chatService{
		cfg:            cfg,
		historyRepo:    historyRepo,
		chunkRepo:      chunkRepo,
		embedder:       embedder,
		handle:         handle,
		factory:        providerFactory,
		translator:     queryTranslator,
		builder:        promptBuilder,
		catalog:        courseCatalog,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

// Answer runs the full retrieval pipeline for one question. The provider is
// snapshotted once at entry so a concurrent reconfiguration never splits one
// request across two backends. The translated question drives retrieval only;
// the original question is what gets persisted.
func (s *chatService) Answer(ctx context.Context, req *dto.AnswerRequest) (*dto.AnswerResponse, error) {
	active := s.handle.Snapshot()
	if active == nil {
		return nil, fmt.Errorf("no model provider configured")
	}

	history, err := s.historyRepo.GetHistory(ctx, req.UserId, s.cfg.Rag.HistoryLimit)
	if err != nil {
		s.log.Error("chat", "failed to fetch chat history", map[string]interface{}{
			"user_id": req.UserId,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("fetch chat history: %w", err)
	}

	translated, err := s.translator.Translate(ctx, active.Provider, req.Question, history)
	if err != nil {
		return nil, err
	}
	s.log.Info("chat", "query translated", map[string]interface{}{
		"original":   req.Question,
		"translated": translated,
	})

	queryVector, err := s.embedder.EmbedQuery(ctx, translated)
	if err != nil {
		s.log.Error("chat", "failed to embed query", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("embed query: %w", err)
	}

	similarChunks, err := s.chunkRepo.SearchSimilar(ctx, queryVector, s.cfg.Rag.SearchLimit, s.cfg.Rag.ScoreThreshold)
	if err != nil {
		s.log.Error("chat", "similarity search failed", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("search similar chunks: %w", err)
	}

	courses := s.catalog.Courses()

	messages := s.builder.Build(req.Question, similarChunks, history, courses)

	answer, err := active.Provider.Chat(ctx, messages)
	if err != nil {
		s.log.Error("chat", "generation failed", map[string]interface{}{
			"provider": active.ProviderId,
			"model":    active.ModelId,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("generate answer: %w", err)
	}

	turn := &entity.ChatTurn{
		UserId:        req.UserId,
		ChatId:        req.ChatId,
		Question:      req.Question,
		Answer:        answer,
		SimilarChunks: derefChunks(similarChunks),
		Timestamp:     time.Now().UTC(),
	}
	if err := s.historyRepo.Save(ctx, turn); err != nil {
		s.log.Error("chat", "failed to persist chat turn", map[string]interface{}{
			"user_id": req.UserId,
			"chat_id": req.ChatId,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("save chat turn: %w", err)
	}

	if s.eventPublisher != nil {
		evt := events.NewChatAnswered(req.UserId, req.ChatId, req.Question, len(similarChunks))
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("chat", "failed to publish chat answered event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return &dto.AnswerResponse{
		Answer:   answer,
		Question: req.Question,
		ChatId:   req.ChatId,
	}, nil
}

func (s *chatService) GetHistory(ctx context.Context, req *dto.GetHistoryRequest) ([]*dto.ChatTurnResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = s.cfg.Rag.HistoryLimit
	}

	var turns []*entity.ChatTurn
	var err error
	if req.ChatId != "" {
		turns, err = s.historyRepo.GetHistoryByChatId(ctx, req.UserId, req.ChatId, limit)
	} else {
		turns, err = s.historyRepo.GetHistory(ctx, req.UserId, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch chat history: %w", err)
	}

	responses := make([]*dto.ChatTurnResponse, len(turns))
	for i, turn := range turns {
		responses[i] = &dto.ChatTurnResponse{
			Id:            turn.Id.String(),
			UserId:        turn.UserId,
			ChatId:        turn.ChatId,
			Question:      turn.Question,
			Answer:        turn.Answer,
			SimilarChunks: refChunks(turn.SimilarChunks),
			Timestamp:     turn.Timestamp,
		}
	}
	return responses, nil
}

// SwitchProvider builds the new provider first and swaps it in atomically
// only on success. In-flight requests keep the snapshot they started with.
func (s *chatService) SwitchProvider(ctx context.Context, req *dto.SwitchProviderRequest) (*dto.SwitchProviderResponse, error) {
	active, err := s.factory.CreateActive(req.Provider, factory.Overrides{
		ApiKey:      req.ApiKey,
		ModelId:     req.ModelId,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
		BaseURL:     req.BaseURL,
	})
	if err != nil {
		s.log.Error("chat", "provider switch rejected", map[string]interface{}{
			"provider": req.Provider,
			"error":    err.Error(),
		})
		return nil, err
	}

	s.handle.Swap(active)
	s.log.Info("chat", "provider switched", map[string]interface{}{
		"provider": active.ProviderId,
		"model":    active.ModelId,
	})

	return &dto.SwitchProviderResponse{
		Provider: active.ProviderId,
		ModelId:  active.ModelId,
	}, nil
}

func derefChunks(chunks []*entity.SimilarChunk) []entity.SimilarChunk {
	out := make([]entity.SimilarChunk, len(chunks))
	for i, c := range chunks {
		out[i] = *c
	}
	return out
}

func refChunks(chunks []entity.SimilarChunk) []*entity.SimilarChunk {
	out := make([]*entity.SimilarChunk, len(chunks))
	for i := range chunks {
		out[i] = &chunks[i]
	}
	return out
}
