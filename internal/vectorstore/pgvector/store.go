package pgvector

import (
	"context"
	"fmt"
	"time"

	"ai-policyintel-be/internal/entity"
	"ai-policyintel-be/internal/model"
	"ai-policyintel-be/internal/pkg/apperror"
	"ai-policyintel-be/internal/vectorstore"

	"github.com/google/uuid"
	pgvec "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PgVectorStore keeps points in a Postgres table with a pgvector column.
// Every query runs under a bounded deadline so a stalled database surfaces
// as a store error instead of hanging the request.
type PgVectorStore struct {
	db      *gorm.DB
	dims    int
	timeout time.Duration
}

var _ vectorstore.VectorStore = &PgVectorStore{}

func NewPgVectorStore(db *gorm.DB, dims int, queryTimeoutSec int) *PgVectorStore {
	if queryTimeoutSec <= 0 {
		queryTimeoutSec = 30
	}
	return &PgVectorStore{
		db:      db,
		dims:    dims,
		timeout: time.Duration(queryTimeoutSec) * time.Second,
	}
}

func (s *PgVectorStore) Upsert(ctx context.Context, points []entity.StoredPoint) error {
	if len(points) == 0 {
		return nil
	}

	models := make([]*model.ChunkEmbedding, 0, len(points))
	for _, p := range points {
		if len(p.Vector) != s.dims {
			return apperror.Configuration(
				fmt.Sprintf("vector dimension mismatch: got %d, collection expects %d", len(p.Vector), s.dims),
				nil,
			)
		}
		id, err := uuid.Parse(p.Id)
		if err != nil {
			return apperror.Store("invalid point id", err)
		}
		models = append(models, &model.ChunkEmbedding{
			Id:             id,
			Text:           p.Payload.Text,
			EmbeddingValue: pgvec.NewVector(p.Vector),
			FileName:       p.Payload.FileName,
			ChunkIndex:     p.Payload.ChunkIndex,
			Timestamp:      p.Payload.Timestamp,
		})
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(models).Error
	if err != nil {
		return apperror.Store("failed to upsert points", err)
	}
	return nil
}

func (s *PgVectorStore) Search(ctx context.Context, vector []float32, limit int, threshold float64, filter *entity.SearchFilter) ([]entity.SearchResult, error) {
	if len(vector) != s.dims {
		return nil, apperror.Configuration(
			fmt.Sprintf("vector dimension mismatch: got %d, collection expects %d", len(vector), s.dims),
			nil,
		)
	}
	if limit <= 0 {
		limit = 5
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// Cosine distance in pgvector is: 1 - cosine_similarity
	// So we compute: 1 - (embedding_value <=> query_vector) = cosine_similarity
	type result struct {
		model.ChunkEmbedding
		Similarity float64
	}
	var results []result

	queryVector := pgvec.NewVector(vector)

	query := s.db.WithContext(ctx).
		Table("chunk_embeddings").
		Select("chunk_embeddings.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Where("1 - (embedding_value <=> ?) >= ?", queryVector, threshold)

	if filter != nil {
		switch filter.Field {
		case "fileName":
			query = query.Where("file_name = ?", filter.MatchValue)
		default:
			return nil, apperror.Store(fmt.Sprintf("unsupported filter field: %s", filter.Field), nil)
		}
	}

	err := query.
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, apperror.Store("similarity search failed", err)
	}

	hits := make([]entity.SearchResult, len(results))
	for i, res := range results {
		hits[i] = entity.SearchResult{
			Id:    res.Id.String(),
			Score: res.Similarity,
			Payload: entity.PointPayload{
				Text:       res.Text,
				FileName:   res.FileName,
				ChunkIndex: res.ChunkIndex,
				Timestamp:  res.Timestamp,
			},
		}
	}
	return hits, nil
}

func (s *PgVectorStore) DeleteAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := s.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.ChunkEmbedding{}).Error
	if err != nil {
		return apperror.Store("failed to clear collection", err)
	}
	return nil
}
