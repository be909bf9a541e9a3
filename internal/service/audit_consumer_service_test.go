package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"ai-course-assistant-be/internal/dto"
	"ai-course-assistant-be/internal/entity"
	"ai-course-assistant-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubIngestionLogRepo struct {
	entries []*entity.IngestionLog
	err     error
	calls   int
}

func (s *stubIngestionLogRepo) Init(ctx context.Context) error { return nil }

func (s *stubIngestionLogRepo) Create(ctx context.Context, entry *entity.IngestionLog) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, entry)
	return nil
}

func (s *stubIngestionLogRepo) FindByFileId(ctx context.Context, fileId string) ([]*entity.IngestionLog, error) {
	return s.entries, nil
}

func auditMessage(t *testing.T) *message.Message {
	t.Helper()
	payload, err := json.Marshal(dto.IngestionAuditMessage{
		FileId:   "f1",
		FileName: "a.txt",
		CourseId: "c1",
		Success:  true,
		Message:  "File a.txt is successfully uploaded",
	})
	require.NoError(t, err)
	return message.NewMessage("m1", payload)
}

func acked(msg *message.Message) bool {
	select {
	case <-msg.Acked():
		return true
	default:
		return false
	}
}

func TestProcessMessagePersistsAndAcks(t *testing.T) {
	repo := &stubIngestionLogRepo{}
	cs := &auditConsumerService{logRepo: repo, log: logger.NewNopLogger()}

	msg := auditMessage(t)
	cs.processMessage(context.Background(), msg)

	assert.True(t, acked(msg))
	require.Len(t, repo.entries, 1)
	assert.Equal(t, "f1", repo.entries[0].FileId)
	assert.True(t, repo.entries[0].Success)
}

func TestProcessMessageDropsAfterBoundedRetries(t *testing.T) {
	repo := &stubIngestionLogRepo{err: errors.New("db down")}
	cs := &auditConsumerService{logRepo: repo, log: logger.NewNopLogger()}

	msg := auditMessage(t)
	cs.processMessage(context.Background(), msg)

	assert.Equal(t, auditStoreAttempts, repo.calls, "store failure retried a bounded number of times")
	assert.True(t, acked(msg), "message dropped instead of redelivered forever")
}

func TestProcessMessageAcksMalformedPayload(t *testing.T) {
	repo := &stubIngestionLogRepo{}
	cs := &auditConsumerService{logRepo: repo, log: logger.NewNopLogger()}

	msg := message.NewMessage("m1", []byte("{not json"))
	cs.processMessage(context.Background(), msg)

	assert.True(t, acked(msg))
	assert.Zero(t, repo.calls)
}
