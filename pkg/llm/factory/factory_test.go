package factory

import (
	"testing"

	"ai-course-assistant-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDefaults() Defaults {
	return Defaults{
		ApiKey:          "default-key",
		ModelId:         "default-model",
		MaxTokens:       512,
		Temperature:     0.2,
		GroqApiKey:      "groq-key",
		GoogleApiKey:    "google-key",
		AzureApiKey:     "azure-key",
		AzureEndpoint:   "https://example.openai.azure.com",
		AzureApiVersion: "2024-06-01",
	}
}

func TestCreateKnownProviders(t *testing.T) {
	f := NewFactory(testDefaults())

	for _, id := range []string{ProviderGoogle, ProviderGroq, ProviderDeepSeek, ProviderOpenRouter, ProviderAzureOpenAI} {
		p, err := f.Create(id, Overrides{})
		require.NoError(t, err, id)
		assert.NotNil(t, p, id)
	}
}

func TestCreateUnknownProvider(t *testing.T) {
	f := NewFactory(testDefaults())

	p, err := f.Create("OLLAMA", Overrides{})

	assert.Nil(t, p)
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrUnknownProvider)
	assert.Contains(t, err.Error(), "OLLAMA")
}

func TestCreateActiveCarriesIdentity(t *testing.T) {
	f := NewFactory(testDefaults())

	active, err := f.CreateActive(ProviderGroq, Overrides{ModelId: "llama-3.3-70b-versatile"})
	require.NoError(t, err)

	assert.Equal(t, ProviderGroq, active.ProviderId)
	assert.Equal(t, "llama-3.3-70b-versatile", active.ModelId)
	assert.NotNil(t, active.Provider)
}

func TestCreateActiveFallsBackToDefaultModel(t *testing.T) {
	f := NewFactory(testDefaults())

	active, err := f.CreateActive(ProviderGoogle, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "default-model", active.ModelId)
}

func TestHandleSwapIsObservedBySnapshot(t *testing.T) {
	f := NewFactory(testDefaults())

	first, err := f.CreateActive(ProviderGroq, Overrides{ModelId: "m-old"})
	require.NoError(t, err)
	handle := llm.NewHandle(first)

	// A request snapshots once at entry; the snapshot outlives the swap.
	inFlight := handle.Snapshot()

	second, err := f.CreateActive(ProviderDeepSeek, Overrides{ModelId: "m-new"})
	require.NoError(t, err)
	handle.Swap(second)

	assert.Equal(t, "m-old", inFlight.ModelId)
	assert.Equal(t, "m-new", handle.Snapshot().ModelId)
	assert.Equal(t, ProviderDeepSeek, handle.Snapshot().ProviderId)
}
