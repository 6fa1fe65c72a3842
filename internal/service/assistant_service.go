package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"ai-policyintel-be/internal/config"
	"ai-policyintel-be/internal/dto"
	"ai-policyintel-be/internal/entity"
	"ai-policyintel-be/internal/pkg/apperror"
	"ai-policyintel-be/internal/vectorstore"
	"ai-policyintel-be/pkg/embedding"
	"ai-policyintel-be/pkg/llm"
	"ai-policyintel-be/pkg/rag/confidence"
	"ai-policyintel-be/pkg/rag/decision"
	"ai-policyintel-be/pkg/rag/prompt"
	"ai-policyintel-be/pkg/rag/queryparser"
)

// Returned when retrieval finds nothing for a plain ask; the generation
// step is skipped entirely in that case.
const noMatchResponse = "I couldn't find relevant information in your documents. Please make sure you've uploaded documents related to your question."

type IAssistantService interface {
	Ask(ctx context.Context, req *dto.AskRequest) (*dto.AskResponse, error)
	AskSmart(ctx context.Context, req *dto.SmartAskRequest) (*dto.SmartAskResponse, error)
	Search(ctx context.Context, req *dto.SearchRequest) ([]entity.SearchResult, error)
}

type assistantService struct {
	aiCfg             config.AIConfig
	queryCfg          config.QueryConfig
	embeddingProvider embedding.EmbeddingProvider
	llmProvider       llm.LLMProvider
	store             vectorstore.VectorStore
}

func NewAssistantService(
	aiCfg config.AIConfig,
	queryCfg config.QueryConfig,
	embeddingProvider embedding.EmbeddingProvider,
	llmProvider llm.LLMProvider,
	store vectorstore.VectorStore,
) IAssistantService {
	return &assistantService{
		aiCfg:             aiCfg,
		queryCfg:          queryCfg,
		embeddingProvider: embeddingProvider,
		llmProvider:       llmProvider,
		store:             store,
	}
}

func (s *assistantService) Ask(ctx context.Context, req *dto.AskRequest) (*dto.AskResponse, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, apperror.Validation("query is required")
	}

	mode, err := prompt.ParseAnalysisMode(req.AnalysisType)
	if err != nil {
		return nil, apperror.Validation(err.Error())
	}

	results, err := s.retrieve(ctx, query, req.FileName, s.queryCfg.AskLimit, s.queryCfg.AskScoreThreshold)
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return &dto.AskResponse{
			Query:        query,
			Response:     noMatchResponse,
			Confidence:   confidence.Score(nil, ""),
			SourceChunks: []entity.SearchResult{},
			HasContent:   false,
			Metadata:     s.metadata(0, ""),
		}, nil
	}

	system, user := prompt.NewAnalysisBuilder(query, results, mode).Build()
	response, err := s.generate(ctx, system+"\n\n"+user, 1200)
	if err != nil {
		return nil, apperror.Generation("failed to generate answer", err)
	}

	return &dto.AskResponse{
		Query:        query,
		Response:     response,
		Confidence:   confidence.Score(results, response),
		SourceChunks: results,
		HasContent:   true,
		Metadata:     s.metadata(len(results), ""),
	}, nil
}

func (s *assistantService) AskSmart(ctx context.Context, req *dto.SmartAskRequest) (*dto.SmartAskResponse, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, apperror.Validation("query is required")
	}

	parsed := queryparser.Parse(query)

	results, err := s.retrieve(ctx, query, req.FileName, s.queryCfg.SmartLimit, s.queryCfg.SmartScoreThreshold)
	if err != nil {
		return nil, err
	}

	if req.ReturnStructured {
		return s.askStructured(ctx, query, parsed, results)
	}
	return s.askConversational(ctx, query, parsed, results)
}

func (s *assistantService) askStructured(ctx context.Context, query string, parsed entity.ParsedQuery, results []entity.SearchResult) (*dto.SmartAskResponse, error) {
	var dec entity.StructuredDecision

	if len(results) == 0 {
		dec = entity.StructuredDecision{
			Decision: entity.DecisionSummary{
				Status:     "INSUFFICIENT_INFO",
				Confidence: "LOW",
				Summary:    "No relevant documents found",
			},
			Reasoning:            entity.DecisionReasoning{PrimaryFactors: []string{}, SupportingClauses: []string{}},
			Requirements:         entity.DecisionRequirements{DocumentsNeeded: []string{}},
			NextActions:          entity.DecisionNextActions{Immediate: []string{}, BeforeTreatment: []string{}, ForClaim: []string{}},
			ExtractionIncomplete: true,
		}
	} else {
		promptStr := prompt.BuildStructuredDecisionPrompt(query, results, parsed)
		response, err := s.generate(ctx, promptStr, 1000)
		if err != nil {
			return nil, apperror.Generation("failed to generate structured decision", err)
		}
		dec = decision.Extract(response)
	}

	// Confidence length feeds on the serialized decision, mirroring the
	// conversational path where it feeds on the answer text.
	decJson, _ := json.Marshal(dec)

	return &dto.SmartAskResponse{
		Query:        query,
		ParsedQuery:  parsed,
		Decision:     &dec,
		Confidence:   confidence.Score(results, string(decJson)),
		SourceChunks: results,
		HasContent:   len(results) > 0,
		Metadata:     s.metadata(len(results), "structured"),
	}, nil
}

func (s *assistantService) askConversational(ctx context.Context, query string, parsed entity.ParsedQuery, results []entity.SearchResult) (*dto.SmartAskResponse, error) {
	if len(results) == 0 {
		return &dto.SmartAskResponse{
			Query:        query,
			ParsedQuery:  parsed,
			Response:     prompt.NoRelevantDocumentsResponse,
			Confidence:   confidence.Score(nil, ""),
			SourceChunks: []entity.SearchResult{},
			HasContent:   false,
			Metadata:     s.metadata(0, "conversational"),
		}, nil
	}

	system, user := prompt.NewAnalysisBuilder(query, results, prompt.ModeClaimEligibility).Build()
	response, err := s.generate(ctx, system+"\n\n"+user, 1200)
	if err != nil {
		return nil, apperror.Generation("failed to generate answer", err)
	}

	return &dto.SmartAskResponse{
		Query:        query,
		ParsedQuery:  parsed,
		Response:     response,
		Confidence:   confidence.Score(results, response),
		SourceChunks: results,
		HasContent:   true,
		Metadata:     s.metadata(len(results), "conversational"),
	}, nil
}

func (s *assistantService) Search(ctx context.Context, req *dto.SearchRequest) ([]entity.SearchResult, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, apperror.Validation("query is required")
	}

	results, err := s.retrieve(ctx, query, req.FileName, s.queryCfg.RawSearchLimit, 0)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []entity.SearchResult{}
	}
	return results, nil
}

func (s *assistantService) retrieve(ctx context.Context, query, fileName string, limit int, threshold float64) ([]entity.SearchResult, error) {
	res, err := s.embeddingProvider.Generate(query, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, apperror.Embedding("failed to embed query", err)
	}

	var filter *entity.SearchFilter
	if fileName != "" {
		filter = &entity.SearchFilter{Field: "fileName", MatchValue: fileName}
	}

	return s.store.Search(ctx, res.Embedding.Values, limit, threshold, filter)
}

func (s *assistantService) generate(ctx context.Context, promptStr string, maxTokens int) (string, error) {
	timeout := time.Duration(s.aiCfg.CallTimeoutSec) * time.Second
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return s.llmProvider.Generate(
		callCtx,
		promptStr,
		llm.WithTemperature(0.1),
		llm.WithMaxTokens(maxTokens),
	)
}

func (s *assistantService) metadata(chunkCount int, processingType string) dto.AskMetadata {
	return dto.AskMetadata{
		ChunkCount:     chunkCount,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		Model:          s.aiCfg.LLMModel,
		ProcessingType: processingType,
	}
}
