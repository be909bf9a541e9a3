package prompt

import (
	"strings"
	"testing"

	"ai-course-assistant-be/internal/constant"
	"ai-course-assistant-be/internal/entity"
	"ai-course-assistant-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func similar(text string, score float64) *entity.SimilarChunk {
	return &entity.SimilarChunk{Text: text, Score: score}
}

func TestFormatSimilarChunksEmpty(t *testing.T) {
	b := NewBuilder()
	got := b.FormatSimilarChunks(nil)
	assert.Equal(t, "##Relevant Documents:\nNo relevant documents found.", got)
}

func TestFormatSimilarChunksNumbered(t *testing.T) {
	b := NewBuilder()
	got := b.FormatSimilarChunks([]*entity.SimilarChunk{
		similar("first passage", 0.2),
		similar("second passage", 0.9),
	})

	assert.True(t, strings.HasPrefix(got, "##Relevant Documents:\n"))
	assert.Contains(t, got, "[1] first passage")
	assert.Contains(t, got, "[2] second passage")
	assert.NotContains(t, got, "weakly relevant")
}

func TestFormatSimilarChunksWeakRelevanceNotice(t *testing.T) {
	b := NewBuilder()
	got := b.FormatSimilarChunks([]*entity.SimilarChunk{
		similar("a", 0.05),
		similar("b", 0.08),
	})

	assert.True(t, strings.HasPrefix(got, constant.WeakRelevanceNotice))
	assert.Contains(t, got, "##Relevant Documents:")
	assert.Contains(t, got, "[1] a")
	assert.Contains(t, got, "[2] b")
}

func TestFormatChatHistory(t *testing.T) {
	b := NewBuilder()

	assert.Equal(t, "No chat history found.", b.FormatChatHistory(nil))

	got := b.FormatChatHistory([]*entity.ChatTurn{
		{Question: "newest q", Answer: "newest a"},
		{Question: "older q", Answer: "older a"},
	})
	assert.True(t, strings.HasPrefix(got, "##Chat History:\n"))
	assert.Less(t, strings.Index(got, "newest q"), strings.Index(got, "older q"))
	assert.Contains(t, got, "User: newest q\nAI: newest a")
}

func TestBuildLayerOrder(t *testing.T) {
	b := NewBuilder()

	chunks := []*entity.SimilarChunk{similar("doc text", 0.8)}
	history := []*entity.ChatTurn{{Question: "q", Answer: "a"}}
	courses := []string{"Introduction to Climate Change"}

	messages := b.Build("What are the effects?", chunks, history, courses)

	require.Len(t, messages, 7)
	for _, m := range messages[:5] {
		assert.Equal(t, llm.RoleSystem, m.Role)
	}
	assert.Equal(t, constant.AssistantInstructions, messages[0].Content)
	assert.Contains(t, messages[1].Content, "##Fusion Ed Available Courses:")
	assert.Contains(t, messages[1].Content, "Introduction to Climate Change")
	assert.Contains(t, messages[2].Content, "##Links")
	assert.Contains(t, messages[3].Content, "[1] doc text")
	assert.Contains(t, messages[4].Content, "##Chat History:")

	assert.Equal(t, llm.RoleUser, messages[5].Role)
	assert.Equal(t, constant.AnswerDirective, messages[5].Content)
	assert.Equal(t, llm.RoleUser, messages[6].Role)
	assert.Equal(t, "What are the effects?", messages[6].Content)
}

func TestBuildRendersNoHistoryNoticeWhenEmpty(t *testing.T) {
	b := NewBuilder()

	messages := b.Build("question", nil, nil, []string{"c"})

	require.Len(t, messages, 7, "history layer is always present")
	assert.Contains(t, messages[3].Content, "No relevant documents found.")
	assert.Equal(t, constant.NoChatHistoryMessage, messages[4].Content)
	assert.Equal(t, constant.AnswerDirective, messages[5].Content)
	assert.Equal(t, "question", messages[6].Content)
}
