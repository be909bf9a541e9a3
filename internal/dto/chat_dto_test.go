package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatTurnResponseWireNames(t *testing.T) {
	turn := ChatTurnResponse{
		Id:        "turn-1",
		UserId:    "user-1",
		ChatId:    "chat-1",
		Question:  "What causes sea level rise?",
		Answer:    "Thermal expansion and ice melt.",
		Timestamp: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
	}

	raw, err := json.Marshal(turn)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fields))

	assert.Equal(t, "What causes sea level rise?", fields["query"])
	assert.Equal(t, "Thermal expansion and ice melt.", fields["response"])
	assert.Contains(t, fields, "timestamp")
	assert.NotContains(t, fields, "question")
	assert.NotContains(t, fields, "answer")
}
