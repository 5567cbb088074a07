// Package ai invokes the OpenAI-compatible gateway that answers tax
// questions, wrapping it with the KRA domain gate and prompt assembly.
package ai

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/FRANKMAKORI/your-revenue-ai/internal/analysis/domain"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/config"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/model/chat"
)

// TurnMessage is one conversation turn in the gateway payload.
type TurnMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request carries everything one chat invocation needs.
type Request struct {
	Messages            []TurnMessage `json:"messages"`
	Language            string        `json:"language"`
	LanguageName        string        `json:"languageName"`
	ConversationContext string        `json:"conversationContext,omitempty"`
	SearchQuery         string        `json:"searchQuery,omitempty"`
	URL                 string        `json:"url,omitempty"`
	UseTaxLawReference  bool          `json:"useTaxLawReference,omitempty"`
}

// Response is the assistant's reply.
type Response struct {
	Response string `json:"response"`
}

// Service talks to the chat completion gateway.
type Service struct {
	client  *openai.Client
	model   string
	fetcher *previewFetcher
	now     func() time.Time
}

// NewService builds a gateway client from configuration.
func NewService(cfg config.GatewayConfig) *Service {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL
	clientCfg.HTTPClient = &http.Client{Timeout: time.Duration(cfg.Timeout) * time.Second}

	var fetcher *previewFetcher
	if cfg.FetchPreviews {
		fetcher = newPreviewFetcher(time.Duration(cfg.Timeout) * time.Second)
	}

	return &Service{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   cfg.Model,
		fetcher: fetcher,
		now:     time.Now,
	}
}

// Invoke runs one chat completion. Off-topic search queries are rejected
// before any gateway traffic; gateway failures map onto stable statuses and
// user-facing messages.
func (s *Service) Invoke(ctx context.Context, req Request) (*Response, error) {
	if req.SearchQuery != "" && !domain.Relevant(req.SearchQuery) {
		return nil, &InvocationError{Status: http.StatusBadRequest, Message: msgOffTopicSearch}
	}

	systemPrompt := s.buildSystemPrompt(ctx, req)

	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, m := range req.Messages {
		role := openai.ChatMessageRoleUser
		if m.Role == chat.RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	log.Printf("[ai] calling gateway with %d messages", len(req.Messages))

	completion, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    s.model,
		Messages: messages,
	})
	if err != nil {
		return nil, mapGatewayError(err)
	}
	if len(completion.Choices) == 0 {
		return nil, &InvocationError{Status: http.StatusInternalServerError, Message: msgGatewayError}
	}

	return &Response{Response: completion.Choices[0].Message.Content}, nil
}

func mapGatewayError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusTooManyRequests:
			return &InvocationError{Status: http.StatusTooManyRequests, Message: msgRateLimited}
		case http.StatusPaymentRequired:
			return &InvocationError{Status: http.StatusPaymentRequired, Message: msgPaymentRequired}
		}
	}
	log.Printf("[ai] gateway error: %v", err)
	return &InvocationError{Status: http.StatusInternalServerError, Message: msgGatewayError}
}
