package entity

// PointPayload travels with every stored vector and comes back on search.
type PointPayload struct {
	Text       string `json:"text"`
	FileName   string `json:"fileName"`
	ChunkIndex int    `json:"chunkIndex"`
	Timestamp  string `json:"timestamp"`
}

// StoredPoint is one vector plus payload in the retrieval store. Id must be
// unique across the store; re-upserting the same id overwrites.
type StoredPoint struct {
	Id      string       `json:"id"`
	Vector  []float32    `json:"vector"`
	Payload PointPayload `json:"payload"`
}

// SearchResult is a scored match. Score is cosine similarity in [0,1],
// results are ordered descending by score.
type SearchResult struct {
	Id      string       `json:"id"`
	Score   float64      `json:"score"`
	Payload PointPayload `json:"payload"`
}

// SearchFilter is an exact-match constraint on a payload field, applied
// in the store before ranking.
type SearchFilter struct {
	Field      string
	MatchValue string
}
