package vectorstore

import (
	"context"

	"ai-policyintel-be/internal/entity"
)

// VectorStore abstracts the similarity-search backend. All implementations
// score with cosine similarity in [0, 1] and drop hits below the threshold.
type VectorStore interface {
	// Upsert writes points by id; an existing id is overwritten.
	Upsert(ctx context.Context, points []entity.StoredPoint) error

	// Search returns up to limit points whose similarity to vector is at
	// least threshold, best first. A non-nil filter restricts candidates
	// to points whose payload field matches exactly.
	Search(ctx context.Context, vector []float32, limit int, threshold float64, filter *entity.SearchFilter) ([]entity.SearchResult, error)

	// DeleteAll removes every point in the collection, keeping the
	// collection itself usable for subsequent upserts.
	DeleteAll(ctx context.Context) error
}
