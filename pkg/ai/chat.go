package ai

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/johnquangdev/mom-generator/pkg/config"
)

// Default base URLs of the OpenAI-compatible providers we know about
const (
	openAIBaseURL = "https://api.openai.com/v1"
	groqBaseURL   = "https://api.groq.com/openai/v1"
)

// ChatRequest is a single system+user exchange with a language model
type ChatRequest struct {
	Model       string
	System      string
	User        string
	MaxTokens   int
	Temperature float32
	// JSONMode asks the provider to return a single JSON object
	JSONMode bool
}

// ChatResult is the assistant reply with the provider's token accounting.
// Token counts are zero when the provider does not report usage.
type ChatResult struct {
	Content          string
	PromptTokens     int
	CompletionTokens int
}

// ChatClient calls an OpenAI-compatible chat completion endpoint
type ChatClient struct {
	client   *openai.Client
	provider string
}

// NewChatClient creates a chat client from the LLM config.
// A nil config falls back to environment variables and OpenAI defaults.
func NewChatClient(cfg *config.LLMConfig) (*ChatClient, error) {
	var provider, apiKey, baseURL string
	if cfg != nil {
		provider = strings.ToLower(cfg.Provider)
		apiKey = cfg.APIKey
		baseURL = cfg.BaseURL
	}
	if provider == "" {
		provider = "openai"
	}
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	if baseURL == "" {
		switch provider {
		case "openai":
			baseURL = openAIBaseURL
		case "groq":
			baseURL = groqBaseURL
		default:
			return nil, fmt.Errorf("unsupported LLM provider %q without LLM_BASE_URL", provider)
		}
	}

	clientConfig := openai.DefaultConfig(apiKey)
	clientConfig.BaseURL = strings.TrimRight(baseURL, "/")
	httpClient := &http.Client{}
	if cfg != nil && cfg.Timeout > 0 {
		httpClient.Timeout = cfg.Timeout
	}
	clientConfig.HTTPClient = httpClient

	return &ChatClient{
		client:   openai.NewClientWithConfig(clientConfig),
		provider: provider,
	}, nil
}

// Provider returns the configured provider name
func (c *ChatClient) Provider() string {
	return c.provider
}

// Complete sends the request and returns the first choice's content
func (c *ChatClient) Complete(ctx context.Context, req ChatRequest) (*ChatResult, error) {
	creq := openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}
	// go-openai omits a zero temperature and the provider would fall back to 1.0
	if creq.Temperature == 0 {
		creq.Temperature = math.SmallestNonzeroFloat32
	}
	if req.JSONMode {
		creq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, creq)
	if err != nil {
		return nil, fmt.Errorf("%s chat completion failed: %w", c.provider, err)
	}

	result := &ChatResult{
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
	}
	if len(resp.Choices) > 0 {
		result.Content = resp.Choices[0].Message.Content
	}
	return result, nil
}
