package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"ai-course-assistant-be/internal/entity"
	"ai-course-assistant-be/internal/repository/implementation"
	"ai-course-assistant-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatHistoryRoundTrip(t *testing.T) {
	// Load .env from root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err, "Failed to connect to DB")

	ctx := context.Background()
	repo := implementation.NewChatHistoryRepository(gormDB)
	require.NoError(t, repo.Init(ctx))

	userId := "it-user-" + uuid.NewString()
	turn := &entity.ChatTurn{
		UserId:   userId,
		ChatId:   uuid.NewString(),
		Question: "What are the effects of climate change?",
		Answer:   "Rising temperatures, among others.",
		SimilarChunks: []entity.SimilarChunk{
			{
				Text:  "climate chunk",
				Score: 0.83,
				Metadata: entity.ChunkMetadata{
					FileId:     "file-1",
					FileName:   "climate.txt",
					CourseId:   "course-1",
					ChunkOrder: 1,
				},
			},
		},
		Timestamp: time.Now().UTC(),
	}
	require.NoError(t, repo.Save(ctx, turn))

	fetched, err := repo.GetHistory(ctx, userId, 1)
	require.NoError(t, err)
	require.Len(t, fetched, 1)

	got := fetched[0]
	assert.Equal(t, turn.Question, got.Question)
	assert.Equal(t, turn.Answer, got.Answer)
	require.Len(t, got.SimilarChunks, 1)
	assert.Equal(t, "climate chunk", got.SimilarChunks[0].Text)
	assert.InDelta(t, 0.83, got.SimilarChunks[0].Score, 1e-9)
	assert.Equal(t, "file-1", got.SimilarChunks[0].Metadata.FileId)
	assert.Equal(t, 1, got.SimilarChunks[0].Metadata.ChunkOrder)
}

func TestChatHistoryOrderingAndChatFilter(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)

	ctx := context.Background()
	repo := implementation.NewChatHistoryRepository(gormDB)
	require.NoError(t, repo.Init(ctx))

	userId := "it-user-" + uuid.NewString()
	chatA := uuid.NewString()
	chatB := uuid.NewString()

	base := time.Now().UTC().Add(-time.Hour)
	for i, chatId := range []string{chatA, chatA, chatB} {
		turn := &entity.ChatTurn{
			UserId:    userId,
			ChatId:    chatId,
			Question:  "q",
			Answer:    "a",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Save(ctx, turn))
	}

	all, err := repo.GetHistory(ctx, userId, 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i := 1; i < len(all); i++ {
		assert.True(t, !all[i-1].Timestamp.Before(all[i].Timestamp), "history must be timestamp descending")
	}

	onlyA, err := repo.GetHistoryByChatId(ctx, userId, chatA, 10)
	require.NoError(t, err)
	assert.Len(t, onlyA, 2)
}
