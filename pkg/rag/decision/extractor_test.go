package decision

import (
	"strings"
	"testing"
)

const wellFormedResponse = `DECISION: COVERED
CONFIDENCE: HIGH
SUMMARY: Knee surgery is covered after the waiting period has elapsed.

COVERAGE DETAILS:
- Eligible: Yes
- Coverage Percentage: 80%
- Maximum Amount: 200000 INR

REQUIREMENTS:
- Documents needed for claim
- Pre-authorization required: Yes
- Network hospital required: No

NEXT STEPS:
1. Contact the insurer.
`

func TestExtractField(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		field string
		want  string
	}{
		{"colon and spaces", "DECISION: COVERED\nmore", "DECISION", "COVERED"},
		{"case insensitive", "decision: COVERED", "DECISION", "COVERED"},
		{"missing colon", "DECISION COVERED\n", "DECISION", "COVERED"},
		{"absent field", "nothing here", "DECISION", ""},
		{"stops at first newline", "SUMMARY: first line\nsecond line", "SUMMARY", "first line"},
		{"last line without newline", "CONFIDENCE: LOW", "CONFIDENCE", "LOW"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractField(tt.text, tt.field); got != tt.want {
				t.Errorf("ExtractField(%q) = %q, want %q", tt.field, got, tt.want)
			}
		})
	}
}

func TestExtract_WellFormedResponse(t *testing.T) {
	got := Extract(wellFormedResponse)

	if got.Decision.Status != "COVERED" {
		t.Errorf("status = %q, want COVERED", got.Decision.Status)
	}
	if got.Decision.Confidence != "HIGH" {
		t.Errorf("confidence = %q, want HIGH", got.Decision.Confidence)
	}
	if !strings.HasPrefix(got.Decision.Summary, "Knee surgery is covered") {
		t.Errorf("summary = %q", got.Decision.Summary)
	}
	if !got.Coverage.Eligible {
		t.Error("eligible = false, want true")
	}
	if got.Coverage.CoveragePercentage != 80 {
		t.Errorf("coveragePercentage = %d, want 80", got.Coverage.CoveragePercentage)
	}
	if got.Coverage.MaxAmount != "200000 INR" {
		t.Errorf("maxAmount = %q", got.Coverage.MaxAmount)
	}
	if !got.Requirements.PreAuthorization {
		t.Error("preAuthorization = false, want true")
	}
	if got.Requirements.NetworkHospital {
		t.Error("networkHospital = true, want false")
	}
	// "waiting period" appears in the summary line.
	if got.Reasoning.PrimaryFactors[0] != "Waiting period consideration" {
		t.Errorf("primaryFactors = %v", got.Reasoning.PrimaryFactors)
	}
	if got.ExtractionIncomplete {
		t.Error("extractionIncomplete = true for a fully parseable response")
	}
}

func TestExtract_UnstructuredResponse(t *testing.T) {
	freeText := strings.Repeat("The policy document discusses various matters. ", 10)
	got := Extract(freeText)

	if got.Decision.Status != "INSUFFICIENT_INFO" {
		t.Errorf("status = %q, want INSUFFICIENT_INFO", got.Decision.Status)
	}
	if got.Decision.Confidence != "LOW" {
		t.Errorf("confidence = %q, want LOW", got.Decision.Confidence)
	}
	if len(got.Decision.Summary) != 200 {
		t.Errorf("summary fallback length = %d, want 200", len(got.Decision.Summary))
	}
	if got.Coverage.Eligible {
		t.Error("eligible = true, want false default")
	}
	if got.Coverage.CoveragePercentage != 0 {
		t.Errorf("coveragePercentage = %d, want 0", got.Coverage.CoveragePercentage)
	}
	if !got.ExtractionIncomplete {
		t.Error("extractionIncomplete = false, want true")
	}
}

func TestExtract_EligibleVariants(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"Yes", true},
		{"yes, with conditions", true},
		{"No", false},
		{"Unknown", false},
	}

	for _, tt := range tests {
		response := "DECISION: COVERED\nEligible: " + tt.value + "\n"
		if got := Extract(response).Coverage.Eligible; got != tt.want {
			t.Errorf("Eligible %q -> %v, want %v", tt.value, got, tt.want)
		}
	}
}
