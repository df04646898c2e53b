package services

import "context"

// LLMClient is the outbound port to a large language model provider.
type LLMClient interface {
	// Complete sends a system prompt and a user message and returns the
	// model's text reply.
	Complete(ctx context.Context, systemPrompt string, userMessage string) (string, error)
}

// AssistantSvcFacade defines the interface for the AI query assistant.
type AssistantSvcFacade interface {
	// Query answers a natural-language question about the company's finances,
	// grounding the model with a summary of the company's current data.
	Query(ctx context.Context, companyID string, question string, userID string) (string, error)
}
