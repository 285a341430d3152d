package observability

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// InitMetrics initializes the Prometheus metrics exporter.
// Returns the MeterProvider and an HTTP handler for the /metrics endpoint.
func InitMetrics() (*sdkmetric.MeterProvider, http.Handler, error) {
	exporter, err := promexporter.New()
	if err != nil {
		return nil, nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)

	return provider, promhttp.Handler(), nil
}

// PipelineMetrics holds the counters recorded across a pipeline run. All
// methods are safe on a nil receiver so callers can run without metrics.
type PipelineMetrics struct {
	runs               metric.Int64Counter
	extractionFailures metric.Int64Counter
	degradedScorings   metric.Int64Counter
	highRiskDetections metric.Int64Counter
}

// NewPipelineMetrics registers the pipeline counters on the given meter.
func NewPipelineMetrics(meter metric.Meter) (*PipelineMetrics, error) {
	runs, err := meter.Int64Counter("pipeline_runs_total",
		metric.WithDescription("Completed pipeline runs by risk level"))
	if err != nil {
		return nil, err
	}
	extractionFailures, err := meter.Int64Counter("pipeline_extraction_failures_total",
		metric.WithDescription("Pipeline runs aborted by intent extraction failures"))
	if err != nil {
		return nil, err
	}
	degradedScorings, err := meter.Int64Counter("pipeline_degraded_scorings_total",
		metric.WithDescription("Runs where the fallback fraud assessment was substituted"))
	if err != nil {
		return nil, err
	}
	highRiskDetections, err := meter.Int64Counter("pipeline_high_risk_detections_total",
		metric.WithDescription("Instructions assessed in the high risk band"))
	if err != nil {
		return nil, err
	}

	return &PipelineMetrics{
		runs:               runs,
		extractionFailures: extractionFailures,
		degradedScorings:   degradedScorings,
		highRiskDetections: highRiskDetections,
	}, nil
}

// RecordRun counts a completed pipeline run.
func (m *PipelineMetrics) RecordRun(ctx context.Context, riskLevel string) {
	if m == nil {
		return
	}
	m.runs.Add(ctx, 1, metric.WithAttributes(attribute.String("risk_level", riskLevel)))
}

// RecordExtractionFailure counts an aborted run.
func (m *PipelineMetrics) RecordExtractionFailure(ctx context.Context) {
	if m == nil {
		return
	}
	m.extractionFailures.Add(ctx, 1)
}

// RecordDegradedScoring counts a fallback fraud assessment.
func (m *PipelineMetrics) RecordDegradedScoring(ctx context.Context) {
	if m == nil {
		return
	}
	m.degradedScorings.Add(ctx, 1)
}

// RecordHighRisk counts a high-risk detection.
func (m *PipelineMetrics) RecordHighRisk(ctx context.Context) {
	if m == nil {
		return
	}
	m.highRiskDetections.Add(ctx, 1)
}
