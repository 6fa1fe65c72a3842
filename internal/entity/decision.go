package entity

// StructuredDecision is a fixed-schema claim assessment extracted from
// free-text model output. Fields that could not be extracted carry safe
// defaults and flip ExtractionIncomplete instead of guessing.
type StructuredDecision struct {
	Decision             DecisionSummary      `json:"decision"`
	Coverage             CoverageDetails      `json:"coverage"`
	Reasoning            DecisionReasoning    `json:"reasoning"`
	Requirements         DecisionRequirements `json:"requirements"`
	NextActions          DecisionNextActions  `json:"nextActions"`
	ExtractionIncomplete bool                 `json:"extractionIncomplete"`
}

type DecisionSummary struct {
	Status     string `json:"status"`     // COVERED / NOT_COVERED / PARTIALLY_COVERED / INSUFFICIENT_INFO
	Confidence string `json:"confidence"` // HIGH / MEDIUM / LOW
	Summary    string `json:"summary"`
}

type CoverageDetails struct {
	Eligible           bool   `json:"eligible"`
	CoveragePercentage int    `json:"coveragePercentage"`
	MaxAmount          string `json:"maxAmount,omitempty"`
}

type DecisionReasoning struct {
	PrimaryFactors    []string `json:"primaryFactors"`
	SupportingClauses []string `json:"supportingClauses"`
}

type DecisionRequirements struct {
	DocumentsNeeded  []string `json:"documentsNeeded"`
	PreAuthorization bool     `json:"preAuthorization"`
	NetworkHospital  bool     `json:"networkHospital"`
}

type DecisionNextActions struct {
	Immediate       []string `json:"immediate"`
	BeforeTreatment []string `json:"beforeTreatment"`
	ForClaim        []string `json:"forClaim"`
}
