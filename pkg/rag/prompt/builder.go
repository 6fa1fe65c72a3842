package prompt

import (
	"fmt"
	"strings"

	"ai-policyintel-be/internal/entity"
)

// AnalysisBuilder assembles the system/user prompt pair for one answer.
type AnalysisBuilder struct {
	query   string
	results []entity.SearchResult
	mode    AnalysisMode
}

func NewAnalysisBuilder(query string, results []entity.SearchResult, mode AnalysisMode) *AnalysisBuilder {
	return &AnalysisBuilder{
		query:   query,
		results: results,
		mode:    mode,
	}
}

// Build returns the persona prompt and the user prompt carrying the
// retrieved excerpts.
func (b *AnalysisBuilder) Build() (system string, user string) {
	var prompt strings.Builder

	prompt.WriteString("USER QUERY: " + b.query + "\n\n")
	prompt.WriteString("AVAILABLE DOCUMENT EXCERPTS:\n")
	b.writeContext(&prompt)
	b.writeInstructions(&prompt)

	return systemPrompts[b.mode], prompt.String()
}

func (b *AnalysisBuilder) writeContext(prompt *strings.Builder) {
	blocks := make([]string, 0, len(b.results))
	for i, result := range b.results {
		blocks = append(blocks, fmt.Sprintf(
			"=== DOCUMENT %d ===\nSource: %s\nRelevance Score: %.3f\nContent Extract:\n%s\n",
			i+1,
			result.Payload.FileName,
			result.Score,
			result.Payload.Text,
		))
	}
	prompt.WriteString(strings.Join(blocks, "\n\n"))
	prompt.WriteString("\n\n")
}

func (b *AnalysisBuilder) writeInstructions(prompt *strings.Builder) {
	prompt.WriteString(`SPECIFIC INSTRUCTIONS FOR THIS RESPONSE:
- Base your analysis exclusively on the provided document excerpts above
- If the excerpts don't fully address the user's question, use the information available to provide the most comprehensive response possible
- Include all relevant details that might help the user, even if not directly answering their specific question
- Reference specific documents by name when citing information
- Provide practical, actionable guidance where possible
- Use plain text formatting only (no bold, italics, or special characters)
- Structure your response clearly with appropriate spacing and organization

Remember: Your goal is to maximize the value provided to the user by extracting and presenting all relevant information from the available documents, not to simply state when information is insufficient.

Please provide your comprehensive analysis and response now.`)
}

// NoRelevantDocumentsResponse is returned verbatim when retrieval comes back
// empty; no generation call is made in that case.
const NoRelevantDocumentsResponse = "I don't have enough relevant information in the uploaded documents to answer your question. Please upload more relevant documents or try rephrasing your question."

// BuildStructuredDecisionPrompt asks for a fielded claim decision over the
// top five excerpts, each capped at 500 characters of content.
func BuildStructuredDecisionPrompt(query string, results []entity.SearchResult, parsed entity.ParsedQuery) string {
	top := results
	if len(top) > 5 {
		top = top[:5]
	}

	blocks := make([]string, 0, len(top))
	for i, result := range top {
		blocks = append(blocks, fmt.Sprintf(
			"Document %d: %s\nContent: %s...\nRelevance: %.3f",
			i+1,
			result.Payload.FileName,
			truncate(result.Payload.Text, 500),
			result.Score,
		))
	}

	return fmt.Sprintf(`You are an insurance claim analyst. Analyze this query and provide a structured decision.

Query: "%s"
User Info: Age %s, Gender %s, Location %s
Medical: %s treatment
Policy: %s duration

Relevant Policy Documents:
%s

Provide analysis in this format:

DECISION: [COVERED/NOT_COVERED/PARTIALLY_COVERED/INSUFFICIENT_INFO]
CONFIDENCE: [HIGH/MEDIUM/LOW]
SUMMARY: [Brief 1-2 sentence summary]

COVERAGE DETAILS:
- Eligible: [Yes/No/Unknown]
- Coverage Percentage: [0-100%%]
- Maximum Amount: [Amount or N/A]

REASONING:
- Primary factors affecting decision
- Relevant policy clauses (if any)
- Waiting periods or restrictions

REQUIREMENTS:
- Documents needed for claim
- Pre-authorization required: [Yes/No]
- Network hospital required: [Yes/No]

NEXT STEPS:
1. [Action 1]
2. [Action 2]
3. [Action 3]`,
		query,
		orUnknown(parsed.Demographics.Age),
		orUnknown(parsed.Demographics.Gender),
		orUnknown(parsed.Demographics.Location),
		orUnknown(parsed.Medical.Condition),
		orUnknown(parsed.Policy.Duration),
		strings.Join(blocks, "\n---\n"),
	)
}

// BuildSummaryPrompt asks for a structured summary of one ingested document.
// Chunk content is capped at 2000 characters.
func BuildSummaryPrompt(fileName string, chunks []string) string {
	content := truncate(strings.Join(chunks, "\n\n"), 2000)

	return fmt.Sprintf(`Summarize this insurance document:

Document: %s
Content: %s

Focus on:
1. Coverage details
2. Waiting periods
3. Exclusions
4. Claim procedures
5. Important terms

Provide a clear, structured summary:`, fileName, content)
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
