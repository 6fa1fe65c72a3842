package decision

import (
	"regexp"
	"strconv"
	"strings"

	"ai-policyintel-be/internal/entity"
)

// ExtractField pulls the value after "FieldName:" from free-form model
// output. The value stops at the first newline, so multi-line fields are
// truncated to their first line. Returns "" when the field is absent.
func ExtractField(text, fieldName string) string {
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(fieldName) + `:?\s*(.+?)(?:\n|$)`)
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// Extract turns a free-text claim analysis into the fixed decision schema.
// Missing fields take conservative defaults (INSUFFICIENT_INFO / LOW / not
// eligible) and flip ExtractionIncomplete so callers can tell defaults from
// extracted values.
func Extract(response string) entity.StructuredDecision {
	incomplete := false

	status := ExtractField(response, "DECISION")
	if status == "" {
		status = "INSUFFICIENT_INFO"
		incomplete = true
	}

	confidence := ExtractField(response, "CONFIDENCE")
	if confidence == "" {
		confidence = "LOW"
		incomplete = true
	}

	summary := ExtractField(response, "SUMMARY")
	if summary == "" {
		if len(response) > 200 {
			summary = response[:200]
		} else {
			summary = response
		}
		incomplete = true
	}

	eligibleField := ExtractField(response, "Eligible")
	if eligibleField == "" {
		incomplete = true
	}
	eligible := strings.Contains(strings.ToLower(eligibleField), "yes")

	percentage := 0
	percentageField := ExtractField(response, "Coverage Percentage")
	if percentageField == "" {
		incomplete = true
	} else if n, err := parseLeadingInt(percentageField); err == nil {
		percentage = n
	} else {
		incomplete = true
	}

	maxAmount := ExtractField(response, "Maximum Amount")
	if maxAmount == "" {
		incomplete = true
	}

	primaryFactor := "Standard coverage rules"
	if strings.Contains(response, "waiting") {
		primaryFactor = "Waiting period consideration"
	}

	lowered := strings.ToLower(response)

	return entity.StructuredDecision{
		Decision: entity.DecisionSummary{
			Status:     status,
			Confidence: confidence,
			Summary:    summary,
		},
		Coverage: entity.CoverageDetails{
			Eligible:           eligible,
			CoveragePercentage: percentage,
			MaxAmount:          maxAmount,
		},
		Reasoning: entity.DecisionReasoning{
			PrimaryFactors:    []string{primaryFactor},
			SupportingClauses: []string{},
		},
		Requirements: entity.DecisionRequirements{
			DocumentsNeeded:  []string{"Policy documents", "Medical reports"},
			PreAuthorization: strings.Contains(lowered, "pre-authorization required: yes"),
			NetworkHospital:  strings.Contains(lowered, "network hospital required: yes"),
		},
		NextActions: entity.DecisionNextActions{
			Immediate:       []string{"Contact insurance provider", "Gather required documents"},
			BeforeTreatment: []string{"Get pre-authorization if required"},
			ForClaim:        []string{"Submit claim with all documents"},
		},
		ExtractionIncomplete: incomplete,
	}
}

var leadingIntRe = regexp.MustCompile(`\d+`)

func parseLeadingInt(s string) (int, error) {
	m := leadingIntRe.FindString(s)
	if m == "" {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(m)
}
