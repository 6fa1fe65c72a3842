package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"ai-policyintel-be/internal/dto"
	"ai-policyintel-be/internal/repository/memory"
	"ai-policyintel-be/pkg/llm"
	"ai-policyintel-be/pkg/rag/prompt"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService turns ingest events into document summaries in the
// background. A lost summary only degrades the document listing, so every
// failure path logs and Acks rather than blocking the queue.
type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	documentRepo *memory.DocumentRepository
	llmProvider  llm.LLMProvider
	callTimeout  time.Duration
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	documentRepo *memory.DocumentRepository,
	llmProvider llm.LLMProvider,
	callTimeoutSec int,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		documentRepo: documentRepo,
		llmProvider:  llmProvider,
		callTimeout:  time.Duration(callTimeoutSec) * time.Second,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishSummarizeDocumentMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Summarizing document: %s", payload.FileName)

	doc, found := cs.documentRepo.Get(payload.FileName)
	if !found {
		// Cleared or replaced since the event was published.
		log.Printf("[WARN] Document not found in registry: %s", payload.FileName)
		msg.Ack()
		return
	}

	chunks := make([]string, len(doc.Chunks))
	for i, c := range doc.Chunks {
		chunks[i] = c.Text
	}

	callCtx, cancel := context.WithTimeout(ctx, cs.callTimeout)
	defer cancel()

	summary, err := cs.llmProvider.Generate(
		callCtx,
		prompt.BuildSummaryPrompt(doc.FileName, chunks),
		llm.WithTemperature(0.2),
		llm.WithMaxTokens(500),
	)
	if err != nil {
		log.Printf("[ERROR] Failed to summarize %s: %v", payload.FileName, err)
		msg.Ack()
		return
	}

	if ok := cs.documentRepo.SetSummary(payload.FileName, summary); !ok {
		log.Printf("[WARN] Document vanished before summary could be stored: %s", payload.FileName)
	} else {
		log.Printf("[SUCCESS] Summary stored for %s (%d characters)", payload.FileName, len(summary))
	}
	msg.Ack()
}
