package translator

import (
	"context"
	"fmt"
	"strings"

	"ai-course-assistant-be/internal/constant"
	"ai-course-assistant-be/internal/entity"
	"ai-course-assistant-be/internal/pkg/logger"
	"ai-course-assistant-be/pkg/llm"
)

// Translator rewrites follow-up questions into self-contained ones using
// recent chat history, so retrieval sees "What are the effects of climate
// change?" instead of "What are its effects?".
type Translator struct {
	log logger.ILogger
}

func NewTranslator(log logger.ILogger) *Translator {
	return &Translator{log: log}
}

// Translate issues at most one model call. With no history the question is
// already self-contained and is returned untouched without calling the model.
// A failed call fails the whole translation; callers must not retrieve with
// an unrewritten follow-up question.
func (t *Translator) Translate(ctx context.Context, provider llm.Provider, question string, history []*entity.ChatTurn) (string, error) {
	if len(history) == 0 {
		return question, nil
	}

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: constant.TranslatorInstructions},
		{Role: llm.RoleSystem, Content: t.formatHistory(history)},
		{Role: llm.RoleUser, Content: question},
	}

	response, err := provider.Chat(ctx, messages)
	if err != nil {
		t.log.Error("translator", "query translation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return "", fmt.Errorf("translate query: %w", err)
	}

	return strings.TrimSpace(response), nil
}

// formatHistory takes the most recent turns and renders them oldest first.
// History arrives timestamp-descending from the store.
func (t *Translator) formatHistory(history []*entity.ChatTurn) string {
	recent := history
	if len(recent) > constant.TranslatorHistoryWindow {
		recent = recent[:constant.TranslatorHistoryWindow]
	}

	entries := make([]string, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		entries = append(entries, fmt.Sprintf("User: %s\nAI: %s", recent[i].Question, recent[i].Answer))
	}
	return constant.ChatHistoryHeader + "\n" + strings.Join(entries, "\n")
}
