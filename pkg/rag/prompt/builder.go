package prompt

import (
	"fmt"
	"strings"

	"ai-course-assistant-be/internal/constant"
	"ai-course-assistant-be/internal/entity"
	"ai-course-assistant-be/pkg/llm"
)

// WeakRelevanceThreshold marks a retrieval as barely related. When every
// retrieved chunk scores below it, the builder prepends a notice telling the
// model to treat the context with suspicion instead of hiding the chunks.
const WeakRelevanceThreshold = 0.1

// Builder assembles the layered message list sent to the answering model.
// Layer order is fixed: instructions, courses, links, documents, history as
// system messages, then the answer directive and the original question as
// user messages.
type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Build(question string, chunks []*entity.SimilarChunk, history []*entity.ChatTurn, courses []string) []llm.Message {
	systemPrompts := []string{
		constant.AssistantInstructions,
		b.FormatCourses(courses),
		constant.AssistantLinks,
		b.FormatSimilarChunks(chunks),
		b.FormatChatHistory(history),
	}

	messages := make([]llm.Message, 0, len(systemPrompts)+2)
	for _, p := range systemPrompts {
		messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: p})
	}

	if question != "" {
		messages = append(messages,
			llm.Message{Role: llm.RoleUser, Content: constant.AnswerDirective},
			llm.Message{Role: llm.RoleUser, Content: question},
		)
	}

	return messages
}

// FormatSimilarChunks renders retrieved chunks as a numbered document block.
// An empty result set yields an explicit "none found" block so the model
// never guesses whether retrieval happened.
func (b *Builder) FormatSimilarChunks(chunks []*entity.SimilarChunk) string {
	if len(chunks) == 0 {
		return constant.NoRelevantDocsFound
	}

	maxScore := 0.0
	lines := make([]string, len(chunks))
	for i, chunk := range chunks {
		if chunk.Score > maxScore {
			maxScore = chunk.Score
		}
		lines[i] = fmt.Sprintf("[%d] %s", i+1, chunk.Text)
	}
	body := constant.RelevantDocsHeader + "\n" + strings.TrimSpace(strings.Join(lines, "\n"))

	if maxScore < WeakRelevanceThreshold {
		return constant.WeakRelevanceNotice + body
	}
	return body
}

// FormatChatHistory renders turns newest first, matching the descending order
// the history store returns them in.
func (b *Builder) FormatChatHistory(history []*entity.ChatTurn) string {
	if len(history) == 0 {
		return constant.NoChatHistoryMessage
	}

	entries := make([]string, len(history))
	for i, turn := range history {
		entries[i] = fmt.Sprintf("User: %s\nAI: %s", turn.Question, turn.Answer)
	}
	return constant.ChatHistoryHeader + "\n" + strings.Join(entries, "\n")
}

func (b *Builder) FormatCourses(courses []string) string {
	return constant.CourseListHeader + "\n" + strings.Join(courses, "\n")
}
