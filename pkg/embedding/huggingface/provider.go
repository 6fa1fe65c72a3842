package huggingface

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ai-policyintel-be/pkg/embedding"
)

// HuggingFaceProvider generates embeddings through the HF Inference API
// feature-extraction pipeline (e.g. sentence-transformers/all-MiniLM-L6-v2,
// 384 dimensions).
type HuggingFaceProvider struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

type extractionRequest struct {
	Inputs string `json:"inputs"`
}

func NewHuggingFaceProvider(apiKey, model string) *HuggingFaceProvider {
	if model == "" {
		model = "sentence-transformers/all-MiniLM-L6-v2"
	}
	return &HuggingFaceProvider{
		apiKey:  apiKey,
		baseURL: "https://router.huggingface.co/hf-inference/models",
		model:   model,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (p *HuggingFaceProvider) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	// taskType is ignored: sentence-transformers models are symmetric.

	jsonData, err := json.Marshal(extractionRequest{Inputs: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s/pipeline/feature-extraction", p.baseURL, p.model)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", p.apiKey))
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("huggingface api error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	values, err := decodeVector(bodyBytes)
	if err != nil {
		return nil, err
	}

	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{
			Values: values,
		},
	}, nil
}

// decodeVector accepts both response shapes the pipeline emits: a flat
// vector for a single input, or a one-row matrix.
func decodeVector(body []byte) ([]float32, error) {
	var flat []float32
	if err := json.Unmarshal(body, &flat); err == nil && len(flat) > 0 {
		return flat, nil
	}

	var matrix [][]float32
	if err := json.Unmarshal(body, &matrix); err == nil && len(matrix) > 0 && len(matrix[0]) > 0 {
		return matrix[0], nil
	}

	return nil, fmt.Errorf("unexpected feature-extraction response: %s", truncate(body, 200))
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
