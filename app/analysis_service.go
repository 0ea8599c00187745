// Package app wires the analysis pipeline to its external collaborators.
package app

import (
	"context"
	"fmt"
	"time"

	"cardiotrend/domain/clinical"
	"cardiotrend/domain/trend"
	"cardiotrend/internal"
	"cardiotrend/internal/analysis"
	"cardiotrend/ports"
)

// AnalysisService pulls the reading sequence from its source, runs the
// pipeline, and optionally publishes the bundle to a result sink.
type AnalysisService struct {
	source ports.ReadingSourcePort
	sink   ports.ResultSinkPort // optional
	engine *analysis.Engine
	logger *internal.Logger
}

// AnalysisRequest tunes one service run.
type AnalysisRequest struct {
	Folds    int  // <= 1 falls back to the pipeline default
	Parallel bool // Run validation/cross-validation/residuals concurrently
}

// NewAnalysisService creates the service. sink may be nil when no
// presentation collaborator is attached.
func NewAnalysisService(
	source ports.ReadingSourcePort,
	sink ports.ResultSinkPort,
	thresholds clinical.Thresholds,
	req AnalysisRequest,
) *AnalysisService {
	return &AnalysisService{
		source: source,
		sink:   sink,
		engine: analysis.NewEngine(thresholds, req.Folds, req.Parallel),
		logger: internal.DefaultLogger,
	}
}

// Run executes one full analysis: fetch readings, compute, publish.
func (s *AnalysisService) Run(ctx context.Context) (*trend.AnalysisBundle, error) {
	startTime := time.Now()

	raw, err := s.source.Readings(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading source failed: %w", err)
	}
	s.logger.Info("fetched %d raw readings", len(raw))

	bundle, err := s.engine.ComputeAnalysis(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}

	if bundle.Empty() {
		s.logger.Warn("no plausible samples after filtering (%d raw)", len(raw))
	} else {
		s.logger.Info("run %s: %d samples, slope %.3f, MAE %.2f, RMSE %.2f, R² %.3f in %dms",
			bundle.Manifest.RunID, bundle.Manifest.SampleCount,
			bundle.Slope, bundle.Metrics.MAE, bundle.Metrics.RMSE, bundle.Metrics.R2,
			time.Since(startTime).Milliseconds())
	}

	if s.sink != nil {
		if err := s.sink.Publish(ctx, bundle); err != nil {
			return nil, fmt.Errorf("result publish failed: %w", err)
		}
	}

	return bundle, nil
}
