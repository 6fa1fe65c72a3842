package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"ai-policyintel-be/internal/entity"
	"ai-policyintel-be/internal/pkg/apperror"
	"ai-policyintel-be/internal/vectorstore"
)

// MemoryStore is an in-process backend that scans all points with cosine
// similarity. Meant for tests and single-node development, not production.
type MemoryStore struct {
	mu     sync.RWMutex
	points map[string]entity.StoredPoint
	dims   int
}

var _ vectorstore.VectorStore = &MemoryStore{}

func NewMemoryStore(dims int) *MemoryStore {
	return &MemoryStore{
		points: make(map[string]entity.StoredPoint),
		dims:   dims,
	}
}

func (s *MemoryStore) Upsert(ctx context.Context, points []entity.StoredPoint) error {
	for _, p := range points {
		if len(p.Vector) != s.dims {
			return apperror.Configuration(
				fmt.Sprintf("vector dimension mismatch: got %d, collection expects %d", len(p.Vector), s.dims),
				nil,
			)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range points {
		s.points[p.Id] = p
	}
	return nil
}

func (s *MemoryStore) Search(ctx context.Context, vector []float32, limit int, threshold float64, filter *entity.SearchFilter) ([]entity.SearchResult, error) {
	if len(vector) != s.dims {
		return nil, apperror.Configuration(
			fmt.Sprintf("vector dimension mismatch: got %d, collection expects %d", len(vector), s.dims),
			nil,
		)
	}
	if limit <= 0 {
		limit = 5
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var hits []entity.SearchResult
	for _, p := range s.points {
		if filter != nil && !matchesFilter(p.Payload, filter) {
			continue
		}
		score := cosineSimilarity(vector, p.Vector)
		if score < threshold {
			continue
		}
		hits = append(hits, entity.SearchResult{
			Id:      p.Id,
			Score:   score,
			Payload: p.Payload,
		})
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

func (s *MemoryStore) DeleteAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.points = make(map[string]entity.StoredPoint)
	return nil
}

// Count reports the number of stored points.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.points)
}

func matchesFilter(payload entity.PointPayload, filter *entity.SearchFilter) bool {
	switch filter.Field {
	case "fileName":
		return payload.FileName == filter.MatchValue
	default:
		return false
	}
}

func cosineSimilarity(a, b []float32) float64 {
	var dot, magA, magB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		magA += float64(a[i]) * float64(a[i])
		magB += float64(b[i]) * float64(b[i])
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}
