package queryparser

import (
	"fmt"
	"regexp"
	"strings"

	"ai-policyintel-be/internal/entity"
)

var (
	ageGenderRe = regexp.MustCompile(`(?i)(\d{1,2})([MF])`)
	locationRe  = regexp.MustCompile(`(?i)\b(mumbai|delhi|bangalore|pune|chennai|kolkata|hyderabad|ahmedabad)\b`)
	durationRe  = regexp.MustCompile(`(?i)(\d+)[- ]?month`)
)

// Ordered by specificity of intent, not frequency: "surgery" before body
// parts so "knee surgery" resolves to a surgical claim. First match wins.
var medicalTerms = []string{
	"surgery", "treatment", "maternity", "diabetes", "heart", "knee", "cancer",
	"accident", "emergency", "consultation", "therapy", "operation",
}

// Parse extracts structured claim attributes from a free-text query with
// plain pattern matching. Nothing here calls a model; results are advisory
// and retrieval proceeds regardless of how many fields stay empty.
func Parse(rawQuery string) entity.ParsedQuery {
	parsed := entity.ParsedQuery{}

	if m := ageGenderRe.FindStringSubmatch(rawQuery); m != nil {
		parsed.Demographics.Age = m[1]
		parsed.Demographics.Gender = strings.ToUpper(m[2])
	}

	if m := locationRe.FindStringSubmatch(rawQuery); m != nil {
		parsed.Demographics.Location = m[1]
	}

	if m := durationRe.FindStringSubmatch(rawQuery); m != nil {
		parsed.Policy.Duration = fmt.Sprintf("%s months", m[1])
	}

	lowered := strings.ToLower(rawQuery)
	for _, term := range medicalTerms {
		if strings.Contains(lowered, term) {
			parsed.Medical.Condition = term
			if strings.Contains(term, "surgery") {
				parsed.Medical.TreatmentType = "surgery"
			} else {
				parsed.Medical.TreatmentType = "treatment"
			}
			break
		}
	}

	candidates := []string{
		parsed.Medical.Condition,
		"eligibility",
		"coverage",
		"waiting period",
	}
	if parsed.Demographics.Location != "" {
		candidates = append(candidates, parsed.Demographics.Location+" network")
	}
	for _, term := range candidates {
		if term != "" {
			parsed.SearchTerms = append(parsed.SearchTerms, term)
		}
	}

	parsed.Missing = []string{}
	if parsed.Demographics.Age == "" {
		parsed.Missing = append(parsed.Missing, "age")
	}
	if parsed.Medical.Condition == "" {
		parsed.Missing = append(parsed.Missing, "medical condition")
	}
	if parsed.Policy.Duration == "" {
		parsed.Missing = append(parsed.Missing, "policy duration")
	}

	return parsed
}
