package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Embedding EmbeddingConfig
	Rag       RagConfig
	Llm       LlmConfig
	Keys      APIKeys
}

type AppConfig struct {
	Name               string
	Version            string
	Port               string
	Environment        string
	LogFilePath        string
	LlmLogFilePath     string
	DataDir            string
	CorsAllowedOrigins string
	NatsURL            string
	IngestionTopic     string
}

type DatabaseConfig struct {
	Connection string
}

type EmbeddingConfig struct {
	Provider      string // "gemini" or "ollama"
	Model         string
	Size          int
	OllamaBaseURL string
}

type RagConfig struct {
	ChunkSize      int
	ChunkOverlap   int
	SearchLimit    int
	ScoreThreshold float64
	HistoryLimit   int
	BatchSize      int
}

// LlmConfig holds the process-wide defaults the provider factory falls
// back to when an override is not supplied.
type LlmConfig struct {
	Provider    string
	ModelId     string
	MaxTokens   int
	Temperature float64
	BaseURL     string
}

type APIKeys struct {
	Llm                string
	Embedding          string
	Groq               string
	OpenRouter         string
	AzureOpenAI        string
	AzureEndpoint      string
	AzureOpenAIVersion string
	GoogleGemini       string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Name:               getEnv("APP_NAME", "course-assistant"),
			Version:            getEnv("APP_VERSION", "0.1.0"),
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			LlmLogFilePath:     getEnv("LLM_LOG_FILE_PATH", "logs/llm_rag.log"),
			DataDir:            getEnv("DATA_DIR", "data"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			IngestionTopic:     getEnv("INGESTION_TOPIC_NAME", "INGESTION_FILE_RESULT"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Embedding: EmbeddingConfig{
			Provider:      getEnv("EMBEDDING_PROVIDER", "gemini"),
			Model:         getEnv("EMBEDDING_MODEL", "text-embedding-004"),
			Size:          getEnvAsInt("EMBEDDING_SIZE", 768),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		},
		Rag: RagConfig{
			ChunkSize:      getEnvAsInt("CHUNK_SIZE", 1500),
			ChunkOverlap:   getEnvAsInt("CHUNK_OVERLAP", 200),
			SearchLimit:    getEnvAsInt("SEARCH_LIMIT", 5),
			ScoreThreshold: getEnvAsFloat("SCORE_THRESHOLD", 0.7),
			HistoryLimit:   getEnvAsInt("HISTORY_LIMIT", 10),
			BatchSize:      getEnvAsInt("INGESTION_BATCH_SIZE", 5),
		},
		Llm: LlmConfig{
			Provider:    getEnv("LLM_PROVIDER", "GROQ"),
			ModelId:     getEnv("LLM_MODEL_ID", "llama-3.1-8b-instant"),
			MaxTokens:   getEnvAsInt("LLM_MAX_TOKENS", 1024),
			Temperature: getEnvAsFloat("LLM_TEMPERATURE", 0.2),
			BaseURL:     getEnv("LLM_API_URL", ""),
		},
		Keys: APIKeys{
			Llm:                getEnv("LLM_API_KEY", ""),
			Embedding:          getEnv("EMBEDDING_API_KEY", ""),
			Groq:               getEnv("GROQ_API_KEY", ""),
			OpenRouter:         getEnv("OPENROUTER_API_KEY", ""),
			AzureOpenAI:        getEnv("AZURE_OPENAI_API_KEY", ""),
			AzureEndpoint:      getEnv("AZURE_ENDPOINT", ""),
			AzureOpenAIVersion: getEnv("AZURE_OPENAI_API_VERSION", "2024-06-01"),
			GoogleGemini:       getEnv("GOOGLE_GEMINI_API_KEY", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
