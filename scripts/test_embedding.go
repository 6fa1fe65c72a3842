//go:build ignore

package main

import (
	"fmt"
	"log"
	"math"

	"ai-policyintel-be/internal/config"
	"ai-policyintel-be/pkg/embedding"
	embhf "ai-policyintel-be/pkg/embedding/huggingface"
)

func main() {
	// 1. Load Config
	cfg := config.Load()
	fmt.Printf("Loaded Config > Embedding Provider: %s\n", cfg.Ai.EmbeddingProvider)
	fmt.Printf("Loaded Config > Embedding Model: %s\n", cfg.Ai.EmbeddingModel)
	fmt.Printf("Loaded Config > Expected Dimensions: %d\n", cfg.Vector.Dimensions)

	// 2. Initialize the configured provider
	var provider embedding.EmbeddingProvider
	switch cfg.Ai.EmbeddingProvider {
	case "ollama":
		provider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
	default:
		provider = embhf.NewHuggingFaceProvider(cfg.Ai.HuggingFaceToken, cfg.Ai.EmbeddingModel)
	}

	// 3. Test Text
	text := "Knee surgery is covered after a waiting period of twenty four months."
	fmt.Printf("\nGenerating embedding for: \"%s\"\n", text)

	// 4. Generate
	resp, err := provider.Generate(text, "RETRIEVAL_DOCUMENT")
	if err != nil {
		log.Fatalf("Error generating embedding: %v", err)
	}

	// 5. Inspect Result
	dims := len(resp.Embedding.Values)
	fmt.Printf("Success! Generated Embedding Dimensions: %d\n", dims)

	if dims > 5 {
		fmt.Printf("First 5 values: %v...\n", resp.Embedding.Values[:5])
	}

	// 6. Validation
	if dims != cfg.Vector.Dimensions {
		log.Fatalf("Dimension mismatch: provider returned %d, VECTOR_DIMENSIONS is %d", dims, cfg.Vector.Dimensions)
	}

	var norm float64
	for _, v := range resp.Embedding.Values {
		norm += float64(v) * float64(v)
	}
	fmt.Printf("Vector L2 norm: %.4f\n", math.Sqrt(norm))
	fmt.Println("Embedding pipeline OK")
}
