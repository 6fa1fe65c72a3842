package service

import (
	"context"
	"strings"
	"testing"

	"ai-policyintel-be/internal/config"
	"ai-policyintel-be/internal/repository/memory"
	storemem "ai-policyintel-be/internal/vectorstore/memory"
	"ai-policyintel-be/pkg/extractor"
)

func ingestTestConfig() config.IngestConfig {
	return config.IngestConfig{
		MaxFileSizeMB:     10,
		MaxFilesPerBatch:  10,
		AllowedExtensions: []string{".txt", ".pdf"},
		MaxChunkSize:      500,
		Concurrency:       3,
		SummaryTopicName:  "SUMMARIZE_DOCUMENT",
	}
}

func newIngestionFixture(cfg config.IngestConfig) (IIngestionService, *storemem.MemoryStore, *memory.DocumentRepository, *fakePublisher) {
	store := storemem.NewMemoryStore(3)
	docRepo := memory.NewDocumentRepository()
	publisher := &fakePublisher{}

	svc := NewIngestionService(
		cfg,
		extractor.NewRegistry(cfg.AllowedExtensions),
		newFakeEmbeddingProvider([]float32{1, 0, 0}),
		store,
		docRepo,
		publisher,
		nopLogger{},
	)
	return svc, store, docRepo, publisher
}

func policyText(topic string) []byte {
	return []byte(
		"The " + topic + " benefit covers hospitalization and related expenses in full.\n\n" +
			"A waiting period of thirty days applies before the benefit becomes active.",
	)
}

func TestIngest_BatchIsolation(t *testing.T) {
	svc, store, docRepo, publisher := newIngestionFixture(ingestTestConfig())

	files := []UploadFile{
		{FileName: "base.txt", Data: policyText("base plan")},
		{FileName: "broken.txt", Data: []byte{0xff, 0xfe, 0x01}},
		{FileName: "rider.txt", Data: policyText("maternity rider")},
	}

	res, err := svc.Ingest(context.Background(), files)
	if err != nil {
		t.Fatalf("Ingest returned error: %v", err)
	}

	// Results keep request order regardless of worker completion order.
	if res.Processed[0].FileName != "base.txt" || res.Processed[1].FileName != "broken.txt" || res.Processed[2].FileName != "rider.txt" {
		t.Errorf("result order = %q, %q, %q", res.Processed[0].FileName, res.Processed[1].FileName, res.Processed[2].FileName)
	}
	if res.Processed[0].Status != "success" || res.Processed[2].Status != "success" {
		t.Errorf("healthy files = %q / %q, want success", res.Processed[0].Status, res.Processed[2].Status)
	}
	if res.Processed[1].Status != "failed" || res.Processed[1].Error == "" {
		t.Errorf("broken file result = %+v, want failed with error", res.Processed[1])
	}
	if res.Processed[0].ChunkCount == 0 || res.Processed[2].ChunkCount == 0 {
		t.Error("successful files report zero chunks")
	}
	if res.TotalChunks != res.Processed[0].ChunkCount+res.Processed[2].ChunkCount {
		t.Errorf("totalChunks = %d, want sum of successful files", res.TotalChunks)
	}

	if docRepo.Count() != 2 {
		t.Errorf("registry count = %d, want 2", docRepo.Count())
	}
	if _, found := docRepo.Get("broken.txt"); found {
		t.Error("failed file ended up in the registry")
	}

	if store.Count() != res.TotalChunks {
		t.Errorf("store holds %d points, want %d", store.Count(), res.TotalChunks)
	}

	// One summary event per ingested document.
	if publisher.published() != 2 {
		t.Errorf("published %d events, want 2", publisher.published())
	}
}

func TestIngest_EmptyBatchRejected(t *testing.T) {
	svc, _, _, _ := newIngestionFixture(ingestTestConfig())

	if _, err := svc.Ingest(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty batch")
	}
}

func TestIngest_BatchLimitEnforced(t *testing.T) {
	cfg := ingestTestConfig()
	cfg.MaxFilesPerBatch = 2
	svc, _, _, _ := newIngestionFixture(cfg)

	files := []UploadFile{
		{FileName: "a.txt", Data: policyText("a")},
		{FileName: "b.txt", Data: policyText("b")},
		{FileName: "c.txt", Data: policyText("c")},
	}
	if _, err := svc.Ingest(context.Background(), files); err == nil {
		t.Fatal("expected error when batch exceeds the limit")
	}
}

func TestIngest_OversizedFileFailsAlone(t *testing.T) {
	cfg := ingestTestConfig()
	cfg.MaxFileSizeMB = 1
	svc, _, _, _ := newIngestionFixture(cfg)

	big := []byte(strings.Repeat("a", 2*1024*1024))
	res, err := svc.Ingest(context.Background(), []UploadFile{
		{FileName: "big.txt", Data: big},
		{FileName: "small.txt", Data: policyText("small")},
	})
	if err != nil {
		t.Fatalf("Ingest returned error: %v", err)
	}

	if res.Processed[0].Status != "failed" {
		t.Errorf("oversized file status = %q, want failed", res.Processed[0].Status)
	}
	if res.Processed[1].Status != "success" {
		t.Errorf("small file status = %q, want success", res.Processed[1].Status)
	}
}

func TestIngest_UnsupportedExtension(t *testing.T) {
	svc, _, _, _ := newIngestionFixture(ingestTestConfig())

	res, err := svc.Ingest(context.Background(), []UploadFile{
		{FileName: "notes.xyz", Data: policyText("whatever")},
	})
	if err != nil {
		t.Fatalf("Ingest returned error: %v", err)
	}
	if res.Processed[0].Status != "failed" {
		t.Fatalf("status = %q, want failed", res.Processed[0].Status)
	}
	if !strings.Contains(res.Processed[0].Error, "unsupported file type") {
		t.Errorf("error = %q, want unsupported file type", res.Processed[0].Error)
	}
}

func TestClearAll(t *testing.T) {
	svc, store, docRepo, _ := newIngestionFixture(ingestTestConfig())

	_, err := svc.Ingest(context.Background(), []UploadFile{
		{FileName: "base.txt", Data: policyText("base plan")},
	})
	if err != nil {
		t.Fatalf("Ingest returned error: %v", err)
	}

	res, err := svc.ClearAll(context.Background())
	if err != nil {
		t.Fatalf("ClearAll returned error: %v", err)
	}
	if res.Cleared != 1 || res.Count != 0 {
		t.Errorf("cleared = %d count = %d, want 1/0", res.Cleared, res.Count)
	}
	if store.Count() != 0 {
		t.Errorf("store holds %d points after clear", store.Count())
	}
	if docRepo.Count() != 0 {
		t.Errorf("registry holds %d documents after clear", docRepo.Count())
	}
}

func TestListDocuments(t *testing.T) {
	svc, _, _, _ := newIngestionFixture(ingestTestConfig())

	_, err := svc.Ingest(context.Background(), []UploadFile{
		{FileName: "base.txt", Data: policyText("base plan")},
		{FileName: "rider.txt", Data: policyText("rider")},
	})
	if err != nil {
		t.Fatalf("Ingest returned error: %v", err)
	}

	res2 := svc.ListDocuments(context.Background())
	if res2.Count != 2 || len(res2.Documents) != 2 {
		t.Fatalf("count = %d len = %d, want 2", res2.Count, len(res2.Documents))
	}
	for _, d := range res2.Documents {
		if d.ChunkCount == 0 {
			t.Errorf("document %s reports zero chunks", d.FileName)
		}
	}
}
