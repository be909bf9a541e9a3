package service

import (
	"context"
	"encoding/json"
	"time"

	"ai-course-assistant-be/internal/dto"
	"ai-course-assistant-be/internal/entity"
	"ai-course-assistant-be/internal/pkg/logger"
	"ai-course-assistant-be/internal/repository/contract"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// auditStoreAttempts bounds retries on store failures. Nacking instead would
// make the gochannel redeliver immediately and spin the consumer while the
// database is down.
const auditStoreAttempts = 3

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// auditConsumerService drains the ingestion topic and turns each message
// into an ingestion log row. Runs detached from the upload request path.
type auditConsumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	logRepo    contract.IngestionLogRepository
	log        logger.ILogger
	retryDelay time.Duration
}

func NewAuditConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	logRepo contract.IngestionLogRepository,
	log logger.ILogger,
) IConsumerService {
	return &auditConsumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		logRepo:    logRepo,
		log:        log,
		retryDelay: 500 * time.Millisecond,
	}
}

func (cs *auditConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *auditConsumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.IngestionAuditMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		// Ack invalid messages to prevent infinite retry
		cs.log.Error("audit", "failed to unmarshal audit message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack()
		return
	}

	entry := &entity.IngestionLog{
		FileId:     payload.FileId,
		FileName:   payload.FileName,
		CourseId:   payload.CourseId,
		Success:    payload.Success,
		Message:    payload.Message,
		ChunkCount: payload.ChunkCount,
	}
	for attempt := 1; attempt <= auditStoreAttempts; attempt++ {
		err := cs.logRepo.Create(ctx, entry)
		if err == nil {
			msg.Ack()
			return
		}
		cs.log.Warn("audit", "failed to persist ingestion log", map[string]interface{}{
			"file_id": payload.FileId,
			"attempt": attempt,
			"error":   err.Error(),
		})
		if attempt < auditStoreAttempts {
			time.Sleep(cs.retryDelay)
		}
	}

	// Drop the message after exhausting retries; the audit trail is
	// best-effort and losing a row beats a redelivery storm.
	cs.log.Error("audit", "dropping audit message after retries", map[string]interface{}{
		"file_id": payload.FileId,
	})
	msg.Ack()
}
