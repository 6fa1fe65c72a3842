package qdrant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ai-policyintel-be/internal/entity"
	"ai-policyintel-be/internal/pkg/apperror"
	"ai-policyintel-be/internal/vectorstore"
)

// QdrantStore talks to a Qdrant instance over its REST API.
type QdrantStore struct {
	baseURL    string
	apiKey     string
	collection string
	dims       int
	client     *http.Client
}

var _ vectorstore.VectorStore = &QdrantStore{}

func NewQdrantStore(baseURL, apiKey, collection string, dims int) *QdrantStore {
	if baseURL == "" {
		baseURL = "http://localhost:6333"
	}
	return &QdrantStore{
		baseURL:    baseURL,
		apiKey:     apiKey,
		collection: collection,
		dims:       dims,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type qdrantPoint struct {
	Id      string              `json:"id"`
	Vector  []float32           `json:"vector"`
	Payload entity.PointPayload `json:"payload"`
}

type upsertRequest struct {
	Points []qdrantPoint `json:"points"`
}

type matchClause struct {
	Value string `json:"value"`
}

type fieldCondition struct {
	Key   string      `json:"key"`
	Match matchClause `json:"match"`
}

type qdrantFilter struct {
	Must []fieldCondition `json:"must,omitempty"`
}

type searchRequest struct {
	Vector         []float32     `json:"vector"`
	Limit          int           `json:"limit"`
	ScoreThreshold float64       `json:"score_threshold,omitempty"`
	WithPayload    bool          `json:"with_payload"`
	Filter         *qdrantFilter `json:"filter,omitempty"`
}

// pointID tolerates both id forms Qdrant emits: UUID strings and integers.
type pointID string

func (p *pointID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*p = pointID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*p = pointID(n.String())
		return nil
	}
	return fmt.Errorf("unsupported point id: %s", string(b))
}

type searchHit struct {
	Id      pointID             `json:"id"`
	Score   float64             `json:"score"`
	Payload entity.PointPayload `json:"payload"`
}

type searchResponse struct {
	Result []searchHit `json:"result"`
	Status interface{} `json:"status"`
}

type deleteRequest struct {
	Filter qdrantFilter `json:"filter"`
}

type createCollectionRequest struct {
	Vectors vectorsConfig `json:"vectors"`
}

type vectorsConfig struct {
	Size     int    `json:"size"`
	Distance string `json:"distance"`
}

func (s *QdrantStore) Upsert(ctx context.Context, points []entity.StoredPoint) error {
	if len(points) == 0 {
		return nil
	}

	qdrantPoints := make([]qdrantPoint, 0, len(points))
	for _, p := range points {
		if len(p.Vector) != s.dims {
			return apperror.Configuration(
				fmt.Sprintf("vector dimension mismatch: got %d, collection expects %d", len(p.Vector), s.dims),
				nil,
			)
		}
		qdrantPoints = append(qdrantPoints, qdrantPoint{
			Id:      p.Id,
			Vector:  p.Vector,
			Payload: p.Payload,
		})
	}

	url := fmt.Sprintf("%s/collections/%s/points?wait=true", s.baseURL, s.collection)
	if err := s.do(ctx, "PUT", url, upsertRequest{Points: qdrantPoints}, nil); err != nil {
		return apperror.Store("failed to upsert points", err)
	}
	return nil
}

func (s *QdrantStore) Search(ctx context.Context, vector []float32, limit int, threshold float64, filter *entity.SearchFilter) ([]entity.SearchResult, error) {
	if len(vector) != s.dims {
		return nil, apperror.Configuration(
			fmt.Sprintf("vector dimension mismatch: got %d, collection expects %d", len(vector), s.dims),
			nil,
		)
	}
	if limit <= 0 {
		limit = 5
	}

	reqBody := searchRequest{
		Vector:         vector,
		Limit:          limit,
		ScoreThreshold: threshold,
		WithPayload:    true,
	}
	if filter != nil {
		reqBody.Filter = &qdrantFilter{
			Must: []fieldCondition{
				{Key: filter.Field, Match: matchClause{Value: filter.MatchValue}},
			},
		}
	}

	var searchResp searchResponse
	url := fmt.Sprintf("%s/collections/%s/points/search", s.baseURL, s.collection)
	if err := s.do(ctx, "POST", url, reqBody, &searchResp); err != nil {
		return nil, apperror.Store("similarity search failed", err)
	}

	hits := make([]entity.SearchResult, len(searchResp.Result))
	for i, hit := range searchResp.Result {
		hits[i] = entity.SearchResult{
			Id:      string(hit.Id),
			Score:   hit.Score,
			Payload: hit.Payload,
		}
	}
	return hits, nil
}

func (s *QdrantStore) DeleteAll(ctx context.Context) error {
	// An empty filter matches every point.
	url := fmt.Sprintf("%s/collections/%s/points/delete?wait=true", s.baseURL, s.collection)
	if err := s.do(ctx, "POST", url, deleteRequest{Filter: qdrantFilter{}}, nil); err != nil {
		return apperror.Store("failed to clear collection", err)
	}
	return nil
}

// EnsureCollection creates the collection if it does not exist yet.
// Safe to call repeatedly.
func (s *QdrantStore) EnsureCollection(ctx context.Context) error {
	checkURL := fmt.Sprintf("%s/collections/%s", s.baseURL, s.collection)
	req, err := http.NewRequestWithContext(ctx, "GET", checkURL, nil)
	if err != nil {
		return err
	}
	s.setHeaders(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return apperror.Store("failed to reach qdrant", err)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	if resp.StatusCode == http.StatusOK {
		return nil
	}

	createURL := fmt.Sprintf("%s/collections/%s", s.baseURL, s.collection)
	reqBody := createCollectionRequest{
		Vectors: vectorsConfig{
			Size:     s.dims,
			Distance: "Cosine",
		},
	}
	if err := s.do(ctx, "PUT", createURL, reqBody, nil); err != nil {
		return apperror.Store("failed to create collection", err)
	}
	return nil
}

func (s *QdrantStore) do(ctx context.Context, method, url string, body interface{}, out interface{}) error {
	payloadJson, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(payloadJson))
	if err != nil {
		return err
	}
	s.setHeaders(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	resBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf(
			"qdrant error: status %d, body: %s",
			resp.StatusCode,
			string(resBody),
		)
	}

	if out != nil {
		if err := json.Unmarshal(resBody, out); err != nil {
			return err
		}
	}
	return nil
}

func (s *QdrantStore) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("api-key", s.apiKey)
	}
}
