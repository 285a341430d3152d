package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Abayommy/genai-payment-intent-clarifier/internal/application/dto"
	"github.com/Abayommy/genai-payment-intent-clarifier/internal/domain/model"
	"github.com/Abayommy/genai-payment-intent-clarifier/internal/domain/port"
	"github.com/Abayommy/genai-payment-intent-clarifier/internal/domain/service"
	"github.com/Abayommy/genai-payment-intent-clarifier/internal/domain/valueobject"
	"github.com/Abayommy/genai-payment-intent-clarifier/internal/observability"
)

var (
	// ErrEmptyInput indicates the caller supplied no instruction text.
	ErrEmptyInput = errors.New("user input is required")

	// ErrExtractionFailed wraps any intent extraction error. It is the only
	// failure mode the pipeline can produce: risk scoring degrades in place and
	// formatting never fails.
	ErrExtractionFailed = errors.New("intent extraction failed")
)

// ProcessInstruction is the use case taking a raw payment instruction through
// the extract → assess → format pipeline. The sequencing is strict: the risk
// prompt embeds the extracted intent, so scoring cannot start before
// extraction completes.
type ProcessInstruction struct {
	extractor *service.IntentExtractor
	analyzer  *service.RiskAnalyzer
	formatter *service.SchemeFormatter
	publisher port.EventPublisher
	metrics   *observability.PipelineMetrics
	logger    *slog.Logger
}

// NewProcessInstruction creates a new ProcessInstruction use case.
func NewProcessInstruction(
	extractor *service.IntentExtractor,
	analyzer *service.RiskAnalyzer,
	formatter *service.SchemeFormatter,
	publisher port.EventPublisher,
	metrics *observability.PipelineMetrics,
	logger *slog.Logger,
) *ProcessInstruction {
	return &ProcessInstruction{
		extractor: extractor,
		analyzer:  analyzer,
		formatter: formatter,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute runs the pipeline once. Extraction failures abort the run with
// ErrExtractionFailed and no partial result; a degraded fraud assessment never
// does. Domain events are published best-effort: a publish failure is logged
// but the caller still receives the result.
func (uc *ProcessInstruction) Execute(ctx context.Context, req dto.ProcessInstructionRequest) (dto.PipelineResponse, error) {
	if strings.TrimSpace(req.UserInput) == "" {
		return dto.PipelineResponse{}, ErrEmptyInput
	}

	intent, err := uc.extractor.Extract(ctx, req.UserInput)
	if err != nil {
		uc.metrics.RecordExtractionFailure(ctx)
		return dto.PipelineResponse{}, fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}

	assessment := uc.analyzer.Assess(ctx, req.UserInput, intent)
	if assessment.Degraded() {
		uc.metrics.RecordDegradedScoring(ctx)
	}

	formatted := uc.formatter.Format(intent)

	result := model.NewPipelineResult(req.UserInput, intent, assessment, formatted)

	events := result.DomainEvents()
	if len(events) > 0 {
		if err := uc.publisher.Publish(ctx, events...); err != nil {
			uc.logger.Warn("failed to publish pipeline events",
				slog.String("result_id", result.ID().String()),
				slog.String("error", err.Error()),
			)
		}
	}

	uc.metrics.RecordRun(ctx, assessment.RiskLevel().String())
	if assessment.RiskLevel().Equal(valueobject.RiskLevelHigh) {
		uc.metrics.RecordHighRisk(ctx)
	}

	uc.logger.Info("payment instruction processed",
		slog.String("result_id", result.ID().String()),
		slog.String("scheme", formatted.Scheme().String()),
		slog.String("risk_level", assessment.RiskLevel().String()),
		slog.Int("risk_score", assessment.Score()),
		slog.Bool("scoring_degraded", assessment.Degraded()),
	)

	return dto.FromResult(result), nil
}
