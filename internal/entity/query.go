package entity

// ParsedQuery is the best-effort entity extraction from a raw user query.
// Derived per request, never persisted. Advisory context for prompts only:
// retrieval proceeds no matter how many fields are missing.
type ParsedQuery struct {
	Demographics Demographics `json:"demographics"`
	Policy       PolicyInfo   `json:"policy"`
	Medical      MedicalInfo  `json:"medical"`
	SearchTerms  []string     `json:"searchTerms"`
	Missing      []string     `json:"missing"`
}

type Demographics struct {
	Age      string `json:"age,omitempty"`
	Gender   string `json:"gender,omitempty"`
	Location string `json:"location,omitempty"`
}

type PolicyInfo struct {
	Duration string `json:"duration,omitempty"`
}

type MedicalInfo struct {
	Condition     string `json:"condition,omitempty"`
	TreatmentType string `json:"treatmentType,omitempty"`
}
