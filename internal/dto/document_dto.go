package dto

import (
	"time"

	"github.com/google/uuid"
)

// UploadFileResult reports the outcome of one file within a batch. A failed
// file never aborts the batch; its error rides along here instead.
type UploadFileResult struct {
	FileName   string `json:"file_name"`
	Status     string `json:"status"` // "success" | "failed"
	ChunkCount int    `json:"chunk_count"`
	Error      string `json:"error,omitempty"`
}

// UploadDocumentsResponse keeps per-file results in request order.
// TotalChunks counts only the chunks of files that ingested.
type UploadDocumentsResponse struct {
	Processed   []UploadFileResult `json:"processed"`
	TotalChunks int                `json:"total_chunks"`
}

type GetDocumentResponse struct {
	Id         uuid.UUID `json:"id"`
	FileName   string    `json:"file_name"`
	UploadTime time.Time `json:"upload_time"`
	ChunkCount int       `json:"chunk_count"`
	Summary    string    `json:"summary,omitempty"`
}

type ListDocumentsResponse struct {
	Documents []*GetDocumentResponse `json:"documents"`
	Count     int                    `json:"count"`
}

// ClearDocumentsResponse reports how many documents were removed and the
// registry count afterwards, which is always zero.
type ClearDocumentsResponse struct {
	Cleared int `json:"cleared"`
	Count   int `json:"count"`
}
