package confidence

import (
	"fmt"
	"math"

	"ai-policyintel-be/internal/entity"
)

// Score bands. The four components add up to at most 100:
// top relevance 40, match count 25, average relevance 25, answer length 10.
const (
	levelVeryHigh = "Very High"
	levelHigh     = "High"
	levelMedium   = "Medium"
	levelLow      = "Low"
	levelVeryLow  = "Very Low"
)

// Score grades how trustworthy an answer is, from the retrieval scores that
// produced it and the length of the generated response.
func Score(results []entity.SearchResult, responseText string) entity.ConfidenceResult {
	if len(results) == 0 {
		return entity.ConfidenceResult{
			Score:  0,
			Level:  levelVeryLow,
			Reason: "No relevant documents found",
			Details: entity.ConfidenceDetails{
				TopRelevanceScore: "0.000",
				AvgRelevanceScore: "0.000",
				DocumentCount:     0,
				ResponseLength:    len(responseText),
			},
		}
	}

	topScore := results[0].Score
	var sum float64
	for _, r := range results {
		if r.Score > topScore {
			topScore = r.Score
		}
		sum += r.Score
	}
	avgScore := sum / float64(len(results))

	var score float64

	switch {
	case topScore >= 0.8:
		score += 40
	case topScore >= 0.6:
		score += 30
	case topScore >= 0.4:
		score += 20
	default:
		score += 10
	}

	switch {
	case len(results) >= 3:
		score += 25
	case len(results) >= 2:
		score += 20
	default:
		score += 15
	}

	score += math.Min(avgScore*25, 25)

	switch {
	case len(responseText) >= 500:
		score += 10
	case len(responseText) >= 200:
		score += 7
	default:
		score += 3
	}

	rounded := int(math.Round(score))
	level, reason := classify(rounded)

	return entity.ConfidenceResult{
		Score:  rounded,
		Level:  level,
		Reason: reason,
		Details: entity.ConfidenceDetails{
			TopRelevanceScore: fmt.Sprintf("%.3f", topScore),
			AvgRelevanceScore: fmt.Sprintf("%.3f", avgScore),
			DocumentCount:     len(results),
			ResponseLength:    len(responseText),
		},
	}
}

func classify(score int) (string, string) {
	switch {
	case score >= 85:
		return levelVeryHigh, "Strong document matches with comprehensive analysis"
	case score >= 70:
		return levelHigh, "Good document relevance with solid analysis"
	case score >= 55:
		return levelMedium, "Moderate document matches, analysis may have gaps"
	case score >= 40:
		return levelLow, "Limited document relevance, incomplete information likely"
	default:
		return levelVeryLow, "Poor document matches, answer may be unreliable"
	}
}
