package service

import (
	"context"
	"testing"

	"ai-policyintel-be/internal/config"
	"ai-policyintel-be/internal/dto"
	"ai-policyintel-be/internal/entity"
	"ai-policyintel-be/internal/pkg/apperror"
	storemem "ai-policyintel-be/internal/vectorstore/memory"
)

func assistantTestConfigs() (config.AIConfig, config.QueryConfig) {
	aiCfg := config.AIConfig{
		LLMModel:       "gemini-1.5-flash",
		CallTimeoutSec: 5,
	}
	queryCfg := config.QueryConfig{
		AskLimit:            8,
		AskScoreThreshold:   0.1,
		SmartLimit:          10,
		SmartScoreThreshold: 0.05,
		RawSearchLimit:      5,
	}
	return aiCfg, queryCfg
}

func seededStore(t *testing.T) *storemem.MemoryStore {
	t.Helper()
	store := storemem.NewMemoryStore(3)

	points := []entity.StoredPoint{
		{
			Id:     "p1",
			Vector: []float32{1, 0, 0},
			Payload: entity.PointPayload{
				Text: "Knee surgery is covered after a waiting period.", FileName: "policy.pdf", ChunkIndex: 0,
			},
		},
		{
			Id:     "p2",
			Vector: []float32{0.9, 0.1, 0},
			Payload: entity.PointPayload{
				Text: "Maternity benefits start after twenty four months.", FileName: "rider.pdf", ChunkIndex: 0,
			},
		},
		{
			Id:     "p3",
			Vector: []float32{0, 1, 0},
			Payload: entity.PointPayload{
				Text: "Claims must be filed within thirty days.", FileName: "policy.pdf", ChunkIndex: 1,
			},
		},
	}
	if err := store.Upsert(context.Background(), points); err != nil {
		t.Fatalf("seeding store: %v", err)
	}
	return store
}

func newAssistantFixture(t *testing.T, store *storemem.MemoryStore, llmResponse string) (IAssistantService, *fakeLLMProvider) {
	t.Helper()
	aiCfg, queryCfg := assistantTestConfigs()
	llmFake := &fakeLLMProvider{response: llmResponse}

	svc := NewAssistantService(
		aiCfg,
		queryCfg,
		newFakeEmbeddingProvider([]float32{1, 0, 0}),
		llmFake,
		store,
	)
	return svc, llmFake
}

func TestAsk_EmptyQueryRejected(t *testing.T) {
	svc, llmFake := newAssistantFixture(t, storemem.NewMemoryStore(3), "answer")

	_, err := svc.Ask(context.Background(), &dto.AskRequest{Query: "   "})
	if err == nil {
		t.Fatal("expected validation error for blank query")
	}
	if !apperror.Is(err, apperror.KindValidation) {
		t.Errorf("error kind = %v, want validation", err)
	}
	if llmFake.callCount() != 0 {
		t.Error("blank query must not reach the model")
	}
}

func TestAsk_UnknownAnalysisTypeRejected(t *testing.T) {
	svc, _ := newAssistantFixture(t, seededStore(t), "answer")

	_, err := svc.Ask(context.Background(), &dto.AskRequest{
		Query:        "is knee surgery covered",
		AnalysisType: "CLAIM_ANALYSIS",
	})
	if err == nil {
		t.Fatal("expected validation error for unknown analysis mode")
	}
	if !apperror.Is(err, apperror.KindValidation) {
		t.Errorf("error kind = %v, want validation", err)
	}
}

func TestAsk_ZeroResultsSkipsGeneration(t *testing.T) {
	svc, llmFake := newAssistantFixture(t, storemem.NewMemoryStore(3), "answer")

	res, err := svc.Ask(context.Background(), &dto.AskRequest{Query: "is knee surgery covered"})
	if err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}

	if llmFake.callCount() != 0 {
		t.Error("generation must be skipped when retrieval is empty")
	}
	if res.HasContent {
		t.Error("hasContent = true for an empty retrieval")
	}
	if res.Response != noMatchResponse {
		t.Errorf("response = %q, want the fixed no-match message", res.Response)
	}
	if res.Confidence.Score != 0 || res.Confidence.Level != "Very Low" {
		t.Errorf("confidence = %+v, want score 0 / Very Low", res.Confidence)
	}
	if len(res.SourceChunks) != 0 {
		t.Errorf("sourceChunks = %d, want 0", len(res.SourceChunks))
	}
}

func TestAsk_AnswersFromRetrievedChunks(t *testing.T) {
	svc, llmFake := newAssistantFixture(t, seededStore(t), "The knee surgery claim is covered under section 4.")

	res, err := svc.Ask(context.Background(), &dto.AskRequest{Query: "is knee surgery covered"})
	if err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}

	if llmFake.callCount() != 1 {
		t.Errorf("model calls = %d, want 1", llmFake.callCount())
	}
	if !res.HasContent {
		t.Error("hasContent = false")
	}
	// p3 is orthogonal to the query vector and sits below the 0.1 threshold.
	if len(res.SourceChunks) != 2 {
		t.Fatalf("sourceChunks = %d, want 2", len(res.SourceChunks))
	}
	if res.SourceChunks[0].Id != "p1" {
		t.Errorf("best hit = %s, want p1", res.SourceChunks[0].Id)
	}
	if res.Confidence.Score == 0 {
		t.Error("confidence score = 0 for a successful answer")
	}
	if res.Metadata.ChunkCount != 2 {
		t.Errorf("metadata chunkCount = %d, want 2", res.Metadata.ChunkCount)
	}
	if res.Metadata.Model != "gemini-1.5-flash" {
		t.Errorf("metadata model = %q", res.Metadata.Model)
	}
}

func TestAsk_FileNameFilter(t *testing.T) {
	svc, _ := newAssistantFixture(t, seededStore(t), "answer")

	res, err := svc.Ask(context.Background(), &dto.AskRequest{
		Query:    "is knee surgery covered",
		FileName: "rider.pdf",
	})
	if err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}

	if len(res.SourceChunks) != 1 {
		t.Fatalf("sourceChunks = %d, want 1", len(res.SourceChunks))
	}
	if res.SourceChunks[0].Payload.FileName != "rider.pdf" {
		t.Errorf("hit file = %q, want rider.pdf", res.SourceChunks[0].Payload.FileName)
	}
}

func TestAskSmart_ConversationalParsesQuery(t *testing.T) {
	svc, _ := newAssistantFixture(t, seededStore(t), "Eligibility analysis text.")

	res, err := svc.AskSmart(context.Background(), &dto.SmartAskRequest{
		Query: "46M, knee surgery, Pune, 3-month policy",
	})
	if err != nil {
		t.Fatalf("AskSmart returned error: %v", err)
	}

	if res.ParsedQuery.Demographics.Age != "46" {
		t.Errorf("parsed age = %q, want 46", res.ParsedQuery.Demographics.Age)
	}
	if res.Decision != nil {
		t.Error("conversational path should not return a structured decision")
	}
	if res.Metadata.ProcessingType != "conversational" {
		t.Errorf("processingType = %q", res.Metadata.ProcessingType)
	}
}

func TestAskSmart_StructuredDecision(t *testing.T) {
	llmResponse := "DECISION: COVERED\nCONFIDENCE: HIGH\nSUMMARY: Covered after waiting period.\n" +
		"Eligible: Yes\nCoverage Percentage: 80%\nMaximum Amount: 200000\n" +
		"Pre-authorization required: Yes\nNetwork hospital required: No\n"
	svc, llmFake := newAssistantFixture(t, seededStore(t), llmResponse)

	res, err := svc.AskSmart(context.Background(), &dto.SmartAskRequest{
		Query:            "46M, knee surgery, Pune, 3-month policy",
		ReturnStructured: true,
	})
	if err != nil {
		t.Fatalf("AskSmart returned error: %v", err)
	}

	if llmFake.callCount() != 1 {
		t.Errorf("model calls = %d, want 1", llmFake.callCount())
	}
	if res.Decision == nil {
		t.Fatal("decision is nil on the structured path")
	}
	if res.Decision.Decision.Status != "COVERED" {
		t.Errorf("status = %q, want COVERED", res.Decision.Decision.Status)
	}
	if res.Decision.ExtractionIncomplete {
		t.Error("extractionIncomplete = true for a fully parseable response")
	}
	if res.Metadata.ProcessingType != "structured" {
		t.Errorf("processingType = %q", res.Metadata.ProcessingType)
	}
}

func TestAskSmart_StructuredZeroResults(t *testing.T) {
	svc, llmFake := newAssistantFixture(t, storemem.NewMemoryStore(3), "unused")

	res, err := svc.AskSmart(context.Background(), &dto.SmartAskRequest{
		Query:            "46M, knee surgery, Pune, 3-month policy",
		ReturnStructured: true,
	})
	if err != nil {
		t.Fatalf("AskSmart returned error: %v", err)
	}

	if llmFake.callCount() != 0 {
		t.Error("generation must be skipped when retrieval is empty")
	}
	if res.Decision == nil {
		t.Fatal("decision is nil")
	}
	if res.Decision.Decision.Status != "INSUFFICIENT_INFO" {
		t.Errorf("status = %q, want INSUFFICIENT_INFO", res.Decision.Decision.Status)
	}
	if !res.Decision.ExtractionIncomplete {
		t.Error("extractionIncomplete = false for a defaulted decision")
	}
}

func TestSearch_ReturnsRawHits(t *testing.T) {
	svc, llmFake := newAssistantFixture(t, seededStore(t), "unused")

	res, err := svc.Search(context.Background(), &dto.SearchRequest{Query: "waiting period"})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	// Raw search applies no score threshold, so the orthogonal chunk shows
	// up too.
	if len(res) != 3 {
		t.Fatalf("hits = %d, want 3", len(res))
	}
	for i := 1; i < len(res); i++ {
		if res[i].Score > res[i-1].Score {
			t.Fatal("hits are not sorted best first")
		}
	}
	if llmFake.callCount() != 0 {
		t.Error("raw search must not call the model")
	}

	filtered, err := svc.Search(context.Background(), &dto.SearchRequest{
		Query: "waiting period", FileName: "rider.pdf",
	})
	if err != nil {
		t.Fatalf("filtered Search returned error: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Payload.FileName != "rider.pdf" {
		t.Errorf("filtered hits = %+v, want only rider.pdf", filtered)
	}
}
