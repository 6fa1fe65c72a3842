package dto

import (
	"ai-policyintel-be/internal/entity"
)

type AskRequest struct {
	Query        string `json:"query" validate:"required"`
	FileName     string `json:"file_name,omitempty"`
	AnalysisType string `json:"analysis_type,omitempty"` // defaults to DOCUMENT_ANALYSIS
}

type SmartAskRequest struct {
	Query            string `json:"query" validate:"required"`
	FileName         string `json:"file_name,omitempty"`
	ReturnStructured bool   `json:"return_structured"`
}

type SearchRequest struct {
	Query    string `json:"query" validate:"required"`
	FileName string `json:"file_name,omitempty"`
}

type AskMetadata struct {
	ChunkCount     int    `json:"chunk_count"`
	Timestamp      string `json:"timestamp"`
	Model          string `json:"model"`
	ProcessingType string `json:"processing_type,omitempty"` // "conversational" | "structured"
}

type AskResponse struct {
	Query        string                  `json:"query"`
	Response     string                  `json:"response"`
	Confidence   entity.ConfidenceResult `json:"confidence"`
	SourceChunks []entity.SearchResult   `json:"source_chunks"`
	HasContent   bool                    `json:"has_content"`
	Metadata     AskMetadata             `json:"metadata"`
}

type SmartAskResponse struct {
	Query        string                     `json:"query"`
	ParsedQuery  entity.ParsedQuery         `json:"parsed_query"`
	Response     string                     `json:"response,omitempty"`
	Decision     *entity.StructuredDecision `json:"decision,omitempty"`
	Confidence   entity.ConfidenceResult    `json:"confidence"`
	SourceChunks []entity.SearchResult      `json:"source_chunks"`
	HasContent   bool                       `json:"has_content"`
	Metadata     AskMetadata                `json:"metadata"`
}
