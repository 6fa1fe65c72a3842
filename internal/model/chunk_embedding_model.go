package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type ChunkEmbedding struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Text           string          `gorm:"type:text"`
	EmbeddingValue pgvector.Vector `gorm:"type:vector(384)"` // all-MiniLM-L6-v2 uses 384 dimensions
	FileName       string          `gorm:"type:varchar(512);index"`
	ChunkIndex     int             `gorm:"default:0"` // 0-based index for ordering
	Timestamp      string          `gorm:"type:varchar(64)"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
}

func (ChunkEmbedding) TableName() string {
	return "chunk_embeddings"
}
