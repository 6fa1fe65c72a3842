package prompt

import (
	"fmt"
)

// AnalysisMode selects the persona the generation step runs under.
type AnalysisMode string

const (
	ModeDocumentAnalysis AnalysisMode = "DOCUMENT_ANALYSIS"
	ModeClaimEligibility AnalysisMode = "CLAIM_ELIGIBILITY"
	ModeDocumentSummary  AnalysisMode = "DOCUMENT_SUMMARY"
)

// ParseAnalysisMode validates a mode string. An empty string falls back to
// document analysis; anything else outside the closed set is rejected.
func ParseAnalysisMode(s string) (AnalysisMode, error) {
	switch AnalysisMode(s) {
	case ModeDocumentAnalysis, ModeClaimEligibility, ModeDocumentSummary:
		return AnalysisMode(s), nil
	case "":
		return ModeDocumentAnalysis, nil
	default:
		return "", fmt.Errorf("unknown analysis mode: %s", s)
	}
}
