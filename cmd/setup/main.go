package main

import (
	"context"
	"time"

	"github.com/fatih/color"

	"ai-policyintel-be/internal/config"
	"ai-policyintel-be/internal/model"
	"ai-policyintel-be/internal/vectorstore/qdrant"
	"ai-policyintel-be/pkg/database"
)

// Provisions the configured vector backend. Safe to run repeatedly.
func main() {
	cfg := config.Load()

	color.Cyan("Provisioning vector backend: %s", cfg.Vector.Backend)

	switch cfg.Vector.Backend {
	case "qdrant":
		provisionQdrant(cfg)
	case "pgvector":
		provisionPgVector(cfg)
	case "memory":
		color.Yellow("Memory backend needs no provisioning.")
	default:
		color.Red("Unknown vector backend: %s", cfg.Vector.Backend)
	}
}

func provisionQdrant(cfg *config.Config) {
	store := qdrant.NewQdrantStore(
		cfg.Vector.QdrantURL,
		cfg.Vector.QdrantKey,
		cfg.Vector.Collection,
		cfg.Vector.Dimensions,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := store.EnsureCollection(ctx); err != nil {
		color.Red("Failed to provision collection %q: %v", cfg.Vector.Collection, err)
		return
	}
	color.Green("Collection %q ready (%d dimensions, cosine distance).", cfg.Vector.Collection, cfg.Vector.Dimensions)
}

func provisionPgVector(cfg *config.Config) {
	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		color.Red("Failed to connect to database: %v", err)
		return
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		color.Red("Failed to create vector extension: %v", err)
		return
	}

	if err := db.AutoMigrate(&model.ChunkEmbedding{}); err != nil {
		color.Red("Failed to migrate chunk_embeddings table: %v", err)
		return
	}

	indexSQL := "CREATE INDEX IF NOT EXISTS idx_chunk_embeddings_cosine " +
		"ON chunk_embeddings USING ivfflat (embedding_value vector_cosine_ops)"
	if err := db.Exec(indexSQL).Error; err != nil {
		color.Yellow("Index creation skipped: %v", err)
	}

	color.Green("Table chunk_embeddings ready (%d dimensions, cosine distance).", cfg.Vector.Dimensions)
}
