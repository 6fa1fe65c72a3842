package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"ai-policyintel-be/internal/config"
	"ai-policyintel-be/internal/dto"
	"ai-policyintel-be/internal/entity"
	"ai-policyintel-be/internal/pkg/apperror"
	"ai-policyintel-be/internal/pkg/logger"
	"ai-policyintel-be/internal/repository/memory"
	"ai-policyintel-be/internal/vectorstore"
	"ai-policyintel-be/pkg/chunker"
	"ai-policyintel-be/pkg/embedding"
	"ai-policyintel-be/pkg/extractor"
)

// UploadFile is one file of an upload batch, already read off the wire.
type UploadFile struct {
	FileName string
	Data     []byte
}

type IIngestionService interface {
	Ingest(ctx context.Context, files []UploadFile) (*dto.UploadDocumentsResponse, error)
	ListDocuments(ctx context.Context) *dto.ListDocumentsResponse
	ClearAll(ctx context.Context) (*dto.ClearDocumentsResponse, error)
}

type ingestionService struct {
	cfg               config.IngestConfig
	registry          *extractor.Registry
	embeddingProvider embedding.EmbeddingProvider
	store             vectorstore.VectorStore
	documentRepo      *memory.DocumentRepository
	publisherService  IPublisherService
	logger            logger.ILogger

	// Guards ClearAll against in-flight ingests: many ingests may run
	// together, but never while the store is being wiped.
	mu sync.RWMutex
}

func NewIngestionService(
	cfg config.IngestConfig,
	registry *extractor.Registry,
	embeddingProvider embedding.EmbeddingProvider,
	store vectorstore.VectorStore,
	documentRepo *memory.DocumentRepository,
	publisherService IPublisherService,
	sysLogger logger.ILogger,
) IIngestionService {
	return &ingestionService{
		cfg:               cfg,
		registry:          registry,
		embeddingProvider: embeddingProvider,
		store:             store,
		documentRepo:      documentRepo,
		publisherService:  publisherService,
		logger:            sysLogger,
	}
}

func (s *ingestionService) Ingest(ctx context.Context, files []UploadFile) (*dto.UploadDocumentsResponse, error) {
	if len(files) == 0 {
		return nil, apperror.Validation("no files provided")
	}
	if len(files) > s.cfg.MaxFilesPerBatch {
		return nil, apperror.Validation(
			fmt.Sprintf("too many files: %d exceeds the batch limit of %d", len(files), s.cfg.MaxFilesPerBatch),
		)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	concurrency := s.cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	// Bounded worker pool; results land at the file's own index so the
	// response order matches the request order.
	results := make([]dto.UploadFileResult, len(files))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i, file := range files {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, file UploadFile) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = s.ingestOne(ctx, file)
		}(i, file)
	}
	wg.Wait()

	resp := &dto.UploadDocumentsResponse{Processed: results}
	for _, r := range results {
		if r.Status == "success" {
			resp.TotalChunks += r.ChunkCount
		}
	}
	return resp, nil
}

// ingestOne runs the full pipeline for a single file. Failures are reported
// in the result, never propagated: one bad file must not sink the batch.
func (s *ingestionService) ingestOne(ctx context.Context, file UploadFile) dto.UploadFileResult {
	failed := func(err error) dto.UploadFileResult {
		s.logger.Warn("ingestion", "file ingestion failed", map[string]interface{}{
			"fileName": file.FileName,
			"error":    err.Error(),
		})
		return dto.UploadFileResult{
			FileName: file.FileName,
			Status:   "failed",
			Error:    err.Error(),
		}
	}

	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if len(file.Data) > maxBytes {
		return failed(apperror.Validation(
			fmt.Sprintf("file exceeds the %d MB size limit", s.cfg.MaxFileSizeMB),
		))
	}

	text, err := s.registry.Extract(file.FileName, file.Data)
	if err != nil {
		return failed(err)
	}

	chunks := chunker.Chunk(text, s.cfg.MaxChunkSize)
	if len(chunks) == 0 {
		return failed(apperror.Extraction(
			fmt.Sprintf("no usable text chunks in %s", file.FileName), nil,
		))
	}

	uploadTime := time.Now().UTC()
	timestamp := uploadTime.Format(time.RFC3339)

	points := make([]entity.StoredPoint, 0, len(chunks))
	for i, chunk := range chunks {
		res, err := s.embeddingProvider.Generate(chunk, "RETRIEVAL_DOCUMENT")
		if err != nil {
			return failed(apperror.Embedding(
				fmt.Sprintf("failed to embed chunk %d of %s", i, file.FileName), err,
			))
		}
		points = append(points, entity.StoredPoint{
			Id:     uuid.New().String(),
			Vector: res.Embedding.Values,
			Payload: entity.PointPayload{
				Text:       chunk,
				FileName:   file.FileName,
				ChunkIndex: i,
				Timestamp:  timestamp,
			},
		})
	}

	if err := s.store.Upsert(ctx, points); err != nil {
		return failed(err)
	}

	doc := &entity.Document{
		Id:         uuid.New(),
		FileName:   file.FileName,
		UploadTime: uploadTime,
		ChunkCount: len(chunks),
	}
	for i, chunk := range chunks {
		doc.Chunks = append(doc.Chunks, entity.Chunk{
			Text:           chunk,
			SourceFileName: file.FileName,
			ChunkIndex:     i,
			CreatedAt:      uploadTime,
		})
	}
	s.documentRepo.Register(doc)

	msgPayload := dto.PublishSummarizeDocumentMessage{FileName: file.FileName}
	msgJson, err := json.Marshal(msgPayload)
	if err == nil {
		if err := s.publisherService.Publish(ctx, msgJson); err != nil {
			// The document is already searchable; a missing summary is
			// degraded service, not a failed ingest.
			s.logger.Warn("ingestion", "failed to publish summary event", map[string]interface{}{
				"fileName": file.FileName,
				"error":    err.Error(),
			})
		}
	}

	return dto.UploadFileResult{
		FileName:   file.FileName,
		Status:     "success",
		ChunkCount: len(chunks),
	}
}

func (s *ingestionService) ListDocuments(ctx context.Context) *dto.ListDocumentsResponse {
	docs := s.documentRepo.List()
	out := make([]*dto.GetDocumentResponse, len(docs))
	for i, doc := range docs {
		out[i] = &dto.GetDocumentResponse{
			Id:         doc.Id,
			FileName:   doc.FileName,
			UploadTime: doc.UploadTime,
			ChunkCount: doc.ChunkCount,
			Summary:    doc.Summary,
		}
	}
	return &dto.ListDocumentsResponse{Documents: out, Count: len(out)}
}

func (s *ingestionService) ClearAll(ctx context.Context) (*dto.ClearDocumentsResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cleared := s.documentRepo.Count()
	if err := s.store.DeleteAll(ctx); err != nil {
		return nil, err
	}
	s.documentRepo.Clear()

	s.logger.Info("ingestion", "cleared all documents", map[string]interface{}{
		"documents": cleared,
	})
	return &dto.ClearDocumentsResponse{Cleared: cleared, Count: 0}, nil
}
