package factory

import (
	"fmt"

	"ai-course-assistant-be/pkg/llm"
	"ai-course-assistant-be/pkg/llm/azure"
	"ai-course-assistant-be/pkg/llm/google"
	"ai-course-assistant-be/pkg/llm/openai"
)

// Recognized provider identifiers. The set is closed: anything else is
// rejected with llm.ErrUnknownProvider.
const (
	ProviderGoogle      = "GOOGLE"
	ProviderGroq        = "GROQ"
	ProviderDeepSeek    = "DEEPSEEK"
	ProviderOpenRouter  = "OPENROUTER"
	ProviderAzureOpenAI = "AZUREOPENAI"
)

const (
	groqBaseURL       = "https://api.groq.com/openai/v1"
	deepSeekBaseURL   = "https://api.deepseek.com/v1"
	openRouterBaseURL = "https://openrouter.ai/api/v1"
)

// Defaults are the process-wide settings an Overrides field falls back to
// when unset. Built once from config at bootstrap.
type Defaults struct {
	ApiKey           string
	ModelId          string
	MaxTokens        int
	Temperature      float64
	BaseURL          string
	GroqApiKey       string
	OpenRouterApiKey string
	GoogleApiKey     string
	AzureApiKey      string
	AzureEndpoint    string
	AzureApiVersion  string
}

// Overrides carries the optional per-request settings of a reconfiguration
// call. Zero values mean "use the default".
type Overrides struct {
	ApiKey      string
	ModelId     string
	MaxTokens   int
	Temperature *float64
	BaseURL     string
}

type Factory struct {
	defaults Defaults
}

func NewFactory(defaults Defaults) *Factory {
	return &Factory{defaults: defaults}
}

// Create resolves a provider identifier to a concrete backend. An unknown
// identifier returns llm.ErrUnknownProvider and no instance; it never panics.
func (f *Factory) Create(provider string, ov Overrides) (llm.Provider, error) {
	modelId := fallback(ov.ModelId, f.defaults.ModelId)
	maxTokens := f.defaults.MaxTokens
	if ov.MaxTokens > 0 {
		maxTokens = ov.MaxTokens
	}
	temperature := f.defaults.Temperature
	if ov.Temperature != nil {
		temperature = *ov.Temperature
	}

	switch provider {
	case ProviderGoogle:
		apiKey := fallback(ov.ApiKey, fallback(f.defaults.GoogleApiKey, f.defaults.ApiKey))
		return google.NewGoogleProvider(apiKey, modelId, maxTokens, temperature), nil

	case ProviderGroq:
		apiKey := fallback(ov.ApiKey, fallback(f.defaults.GroqApiKey, f.defaults.ApiKey))
		baseURL := fallback(ov.BaseURL, groqBaseURL)
		return openai.NewOpenAIProvider(apiKey, baseURL, modelId, maxTokens, temperature), nil

	case ProviderDeepSeek:
		apiKey := fallback(ov.ApiKey, f.defaults.ApiKey)
		baseURL := fallback(ov.BaseURL, fallback(f.defaults.BaseURL, deepSeekBaseURL))
		return openai.NewOpenAIProvider(apiKey, baseURL, modelId, maxTokens, temperature), nil

	case ProviderOpenRouter:
		apiKey := fallback(ov.ApiKey, fallback(f.defaults.OpenRouterApiKey, f.defaults.ApiKey))
		baseURL := fallback(ov.BaseURL, openRouterBaseURL)
		return openai.NewOpenAIProvider(apiKey, baseURL, modelId, maxTokens, temperature), nil

	case ProviderAzureOpenAI:
		apiKey := fallback(ov.ApiKey, f.defaults.AzureApiKey)
		endpoint := fallback(ov.BaseURL, f.defaults.AzureEndpoint)
		return azure.NewAzureProvider(apiKey, endpoint, modelId, f.defaults.AzureApiVersion, maxTokens, temperature), nil
	}

	return nil, fmt.Errorf("%w: %s", llm.ErrUnknownProvider, provider)
}

// CreateActive wraps Create with the resolved identity, for the swap handle.
func (f *Factory) CreateActive(provider string, ov Overrides) (*llm.Active, error) {
	p, err := f.Create(provider, ov)
	if err != nil {
		return nil, err
	}
	return &llm.Active{
		Provider:   p,
		ProviderId: provider,
		ModelId:    fallback(ov.ModelId, f.defaults.ModelId),
	}, nil
}

func fallback(value, def string) string {
	if value != "" {
		return value
	}
	return def
}
