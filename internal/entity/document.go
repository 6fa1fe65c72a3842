package entity

import (
	"time"

	"github.com/google/uuid"
)

// Chunk is the atomic retrieval unit produced from one document. Immutable
// once created; the vector store keeps its own durable copy after upsert.
type Chunk struct {
	Text           string    `json:"text"`
	SourceFileName string    `json:"sourceFileName"`
	ChunkIndex     int       `json:"chunkIndex"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Document is a registered upload. Held in the in-memory registry only,
// so it does not survive a restart.
type Document struct {
	Id         uuid.UUID `json:"id"`
	FileName   string    `json:"fileName"`
	UploadTime time.Time `json:"uploadTime"`
	ChunkCount int       `json:"chunkCount"`
	Summary    string    `json:"summary,omitempty"`
	Chunks     []Chunk   `json:"-"`
}
