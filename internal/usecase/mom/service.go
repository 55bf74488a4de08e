package mom

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/mom-generator/internal/domain/entities"
)

// Generation outcomes reported to the metrics recorder
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Service defines the minutes pipeline
type Service interface {
	// ParseRequest validates a raw JSON payload and applies defaults
	ParseRequest(payload []byte) (entities.GenerationRequest, error)
	// Generate runs the generator and formatter for a validated request
	Generate(ctx context.Context, req entities.GenerationRequest) (*entities.GenerationResponse, error)
}

// MetricsRecorder receives one observation per generation attempt
type MetricsRecorder interface {
	ObserveGeneration(outcome string, elapsed time.Duration, tokens entities.TokenUsage)
}

type momService struct {
	validator *RequestValidator
	generator *Generator
	formatter *Formatter
	metrics   MetricsRecorder
	logger    *zap.Logger
	now       func() time.Time
}

// NewService wires the validator, generator and formatter into one pipeline.
// metrics may be nil.
func NewService(
	validator *RequestValidator,
	generator *Generator,
	formatter *Formatter,
	metrics MetricsRecorder,
	logger *zap.Logger,
) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if formatter == nil {
		formatter = NewFormatter()
	}
	return &momService{
		validator: validator,
		generator: generator,
		formatter: formatter,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *momService) ParseRequest(payload []byte) (entities.GenerationRequest, error) {
	return s.validator.Parse(payload)
}

func (s *momService) Generate(ctx context.Context, req entities.GenerationRequest) (*entities.GenerationResponse, error) {
	start := s.now()

	result, err := s.generator.Generate(ctx, req)
	if err != nil {
		s.observe(OutcomeFailure, start, entities.TokenUsage{})
		return nil, err
	}

	resp := s.formatter.Format(result, req, s.now())
	s.observe(OutcomeSuccess, start, result.Tokens)

	s.logger.Info("MOM generated",
		zap.Int("items", len(resp.MOM.Items)),
		zap.String("style", string(req.Style)),
		zap.Int("input_tokens", result.Tokens.Input),
		zap.Int("output_tokens", result.Tokens.Output),
	)
	return resp, nil
}

func (s *momService) observe(outcome string, start time.Time, tokens entities.TokenUsage) {
	if s.metrics == nil {
		return
	}
	s.metrics.ObserveGeneration(outcome, s.now().Sub(start), tokens)
}
