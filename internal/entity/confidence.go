package entity

// ConfidenceResult is a heuristic 0-100 trust estimate for one answer.
// Pure function of retrieval scores and response shape; Details echoes the
// inputs for observability and is never re-derived from.
type ConfidenceResult struct {
	Score   int               `json:"score"`
	Level   string            `json:"level"`
	Reason  string            `json:"reason"`
	Details ConfidenceDetails `json:"details"`
}

type ConfidenceDetails struct {
	TopRelevanceScore string `json:"topRelevanceScore"`
	AvgRelevanceScore string `json:"avgRelevanceScore"`
	DocumentCount     int    `json:"documentCount"`
	ResponseLength    int    `json:"responseLength"`
}
