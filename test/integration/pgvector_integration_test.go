package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"ai-policyintel-be/internal/entity"
	"ai-policyintel-be/internal/model"
	"ai-policyintel-be/internal/pkg/apperror"
	"ai-policyintel-be/internal/vectorstore/pgvector"
	"ai-policyintel-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

const testDims = 384

// basisVector puts all weight on one axis so the expected cosine
// similarities in the assertions below are exact.
func basisVector(axis int) []float32 {
	v := make([]float32, testDims)
	v[axis] = 1
	return v
}

func TestPgVectorStore(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	sqlDB, _ := gormDB.DB()
	assert.NoError(t, sqlDB.Ping())

	// Table and extension must exist; cmd/setup provisions them.
	assert.True(t, gormDB.Migrator().HasTable(&model.ChunkEmbedding{}),
		"chunk_embeddings table missing, run cmd/setup first")

	store := pgvector.NewPgVectorStore(gormDB, testDims, 30)
	ctx := context.Background()

	// Leave the table the way we found it.
	t.Cleanup(func() {
		assert.NoError(t, store.DeleteAll(ctx))
	})

	points := []entity.StoredPoint{
		{
			Id:     uuid.New().String(),
			Vector: basisVector(0),
			Payload: entity.PointPayload{
				Text: "Knee surgery is covered after a waiting period.", FileName: "policy.pdf", ChunkIndex: 0,
			},
		},
		{
			Id:     uuid.New().String(),
			Vector: basisVector(1),
			Payload: entity.PointPayload{
				Text: "Maternity benefits start after twenty four months.", FileName: "rider.pdf", ChunkIndex: 0,
			},
		},
	}

	t.Run("Upsert", func(t *testing.T) {
		assert.NoError(t, store.Upsert(ctx, points))
		// Same ids again, overwrite rather than duplicate.
		assert.NoError(t, store.Upsert(ctx, points))
	})

	t.Run("Search", func(t *testing.T) {
		hits, err := store.Search(ctx, basisVector(0), 5, 0.5, nil)
		assert.NoError(t, err)
		if assert.Len(t, hits, 1) {
			assert.Equal(t, points[0].Id, hits[0].Id)
			assert.Equal(t, "policy.pdf", hits[0].Payload.FileName)
			assert.InDelta(t, 1.0, hits[0].Score, 0.001)
		}
	})

	t.Run("Search With FileName Filter", func(t *testing.T) {
		hits, err := store.Search(ctx, basisVector(0), 5, 0, &entity.SearchFilter{
			Field: "fileName", MatchValue: "rider.pdf",
		})
		assert.NoError(t, err)
		if assert.Len(t, hits, 1) {
			assert.Equal(t, "rider.pdf", hits[0].Payload.FileName)
		}
	})

	t.Run("Unsupported Filter Field", func(t *testing.T) {
		_, err := store.Search(ctx, basisVector(0), 5, 0, &entity.SearchFilter{
			Field: "chunkIndex", MatchValue: "0",
		})
		assert.Error(t, err)
	})

	t.Run("Dimension Mismatch", func(t *testing.T) {
		_, err := store.Search(ctx, []float32{1, 0, 0}, 5, 0, nil)
		assert.Error(t, err)
	})

	t.Run("Expired Context Surfaces Store Error", func(t *testing.T) {
		expiredCtx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := store.Search(expiredCtx, basisVector(0), 5, 0, nil)
		assert.Error(t, err)
		assert.True(t, apperror.Is(err, apperror.KindStore), "error = %v", err)
	})

	t.Run("DeleteAll", func(t *testing.T) {
		assert.NoError(t, store.DeleteAll(ctx))
		hits, err := store.Search(ctx, basisVector(0), 5, 0, nil)
		assert.NoError(t, err)
		assert.Empty(t, hits)
	})
}
