package service

import (
	"context"
	"sync"

	"ai-policyintel-be/pkg/embedding"
	"ai-policyintel-be/pkg/llm"
)

// fakeEmbeddingProvider returns a fixed vector per text, falling back to
// defaultVector for anything unmapped.
type fakeEmbeddingProvider struct {
	vectors       map[string][]float32
	defaultVector []float32
	failFor       map[string]error
}

func newFakeEmbeddingProvider(defaultVector []float32) *fakeEmbeddingProvider {
	return &fakeEmbeddingProvider{
		vectors:       make(map[string][]float32),
		defaultVector: defaultVector,
		failFor:       make(map[string]error),
	}
}

func (f *fakeEmbeddingProvider) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	if err, ok := f.failFor[text]; ok {
		return nil, err
	}
	vec, ok := f.vectors[text]
	if !ok {
		vec = f.defaultVector
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: vec},
	}, nil
}

// fakeLLMProvider counts calls and replays a canned response.
type fakeLLMProvider struct {
	mu       sync.Mutex
	calls    int
	response string
	err      error
}

func (f *fakeLLMProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeLLMProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func (f *fakeLLMProvider) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakePublisher records every published payload.
type fakePublisher struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (f *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payloads = append(f.payloads, payload)
	return nil
}

func (f *fakePublisher) published() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.payloads)
}

// nopLogger satisfies logger.ILogger for tests.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
