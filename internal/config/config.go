package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Vector   VectorConfig
	Ai       AIConfig
	Ingest   IngestConfig
	Query    QueryConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type VectorConfig struct {
	Backend         string // "qdrant", "pgvector" or "memory"
	Dimensions      int
	Collection      string
	QdrantURL       string
	QdrantKey       string
	QueryTimeoutSec int
}

type AIConfig struct {
	EmbeddingProvider string // "huggingface" or "ollama"
	EmbeddingModel    string
	HuggingFaceToken  string
	OllamaBaseURL     string
	OllamaModel       string
	LLMProvider       string // "gemini", "ollama" or "huggingface"
	LLMModel          string
	GeminiKey         string
	CallTimeoutSec    int
}

type IngestConfig struct {
	MaxFileSizeMB     int
	MaxFilesPerBatch  int
	AllowedExtensions []string
	MaxChunkSize      int
	Concurrency       int
	SummaryTopicName  string
}

type QueryConfig struct {
	AskLimit            int
	AskScoreThreshold   float64
	SmartLimit          int
	SmartScoreThreshold float64
	RawSearchLimit      int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3001"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Vector: VectorConfig{
			Backend:         getEnv("VECTOR_BACKEND", "qdrant"),
			Dimensions:      getEnvAsInt("VECTOR_DIMENSIONS", 384),
			Collection:      getEnv("VECTOR_COLLECTION", "policy_documents"),
			QdrantURL:       getEnv("QDRANT_URL", "http://localhost:6333"),
			QdrantKey:       getEnv("QDRANT_API_KEY", ""),
			QueryTimeoutSec: getEnvAsInt("VECTOR_QUERY_TIMEOUT_SECONDS", 30),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "huggingface"),
			EmbeddingModel:    getEnv("EMBEDDING_MODEL", "sentence-transformers/all-MiniLM-L6-v2"),
			HuggingFaceToken:  getEnv("HF_TOKEN", ""),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:       getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMProvider:       getEnv("LLM_PROVIDER", "gemini"),
			LLMModel:          getEnv("LLM_MODEL", "gemini-1.5-flash"),
			GeminiKey:         getEnv("GOOGLE_API_KEY", ""),
			CallTimeoutSec:    getEnvAsInt("AI_CALL_TIMEOUT_SECONDS", 60),
		},
		Ingest: IngestConfig{
			MaxFileSizeMB:     getEnvAsInt("INGEST_MAX_FILE_SIZE_MB", 10),
			MaxFilesPerBatch:  getEnvAsInt("INGEST_MAX_FILES_PER_BATCH", 10),
			AllowedExtensions: getEnvAsList("INGEST_ALLOWED_EXTENSIONS", ".pdf,.docx,.txt,.eml,.jpg,.jpeg,.png"),
			MaxChunkSize:      getEnvAsInt("INGEST_MAX_CHUNK_SIZE", 500),
			Concurrency:       getEnvAsInt("INGEST_CONCURRENCY", 3),
			SummaryTopicName:  getEnv("SUMMARIZE_DOCUMENT_TOPIC_NAME", "SUMMARIZE_DOCUMENT"),
		},
		Query: QueryConfig{
			AskLimit:            getEnvAsInt("ASK_LIMIT", 8),
			AskScoreThreshold:   getEnvAsFloat("ASK_SCORE_THRESHOLD", 0.1),
			SmartLimit:          getEnvAsInt("ASK_SMART_LIMIT", 10),
			SmartScoreThreshold: getEnvAsFloat("ASK_SMART_SCORE_THRESHOLD", 0.05),
			RawSearchLimit:      getEnvAsInt("RAW_SEARCH_LIMIT", 5),
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

func getEnvAsList(key, fallback string) []string {
	raw := getEnv(key, fallback)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, strings.ToLower(trimmed))
		}
	}
	return out
}
