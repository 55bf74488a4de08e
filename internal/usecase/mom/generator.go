package mom

import (
	"context"

	"go.uber.org/zap"

	"github.com/johnquangdev/mom-generator/internal/domain/entities"
	pkgai "github.com/johnquangdev/mom-generator/pkg/ai"
)

// ChatCompleter performs one chat completion against a language model
type ChatCompleter interface {
	Complete(ctx context.Context, req pkgai.ChatRequest) (*pkgai.ChatResult, error)
}

// GeneratorConfig holds the model knobs read once at startup
type GeneratorConfig struct {
	Model       string
	MaxTokens   int
	Temperature float32
}

// Generator turns a validated request into structured MOM items
type Generator struct {
	client ChatCompleter
	cfg    GeneratorConfig
	parser *Parser
	logger *zap.Logger
}

// NewGenerator creates a generator backed by the given chat client
func NewGenerator(client ChatCompleter, cfg GeneratorConfig, logger *zap.Logger) *Generator {
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 700
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		client: client,
		cfg:    cfg,
		parser: NewParser(),
		logger: logger,
	}
}

// Generate makes exactly one model call. Every failure is returned as a
// *entities.GenerationError.
func (g *Generator) Generate(ctx context.Context, req entities.GenerationRequest) (*entities.MOMResult, error) {
	g.logger.Debug("generating MOM",
		zap.String("model", g.cfg.Model),
		zap.String("style", string(req.Style)),
		zap.Int("notes_length", len(req.RawNotes)),
	)

	res, err := g.client.Complete(ctx, pkgai.ChatRequest{
		Model:       g.cfg.Model,
		System:      SystemPrompt,
		User:        BuildUserPrompt(req),
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
		JSONMode:    true,
	})
	if err != nil {
		g.logger.Error("LLM generation error", zap.String("model", g.cfg.Model), zap.Error(err))
		return nil, &entities.GenerationError{Err: err}
	}
	if res == nil {
		return nil, &entities.GenerationError{Err: entities.ErrNoContent}
	}

	items, err := g.parser.ParseItems(res.Content)
	if err != nil {
		g.logger.Error("LLM reply rejected",
			zap.String("model", g.cfg.Model),
			zap.String("raw_response", res.Content[:min(500, len(res.Content))]),
			zap.Error(err),
		)
		return nil, &entities.GenerationError{Err: err}
	}

	return &entities.MOMResult{
		Items: items,
		Tokens: entities.TokenUsage{
			Input:  res.PromptTokens,
			Output: res.CompletionTokens,
		},
	}, nil
}
