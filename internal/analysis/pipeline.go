package analysis

import (
	"context"

	"golang.org/x/sync/errgroup"

	"cardiotrend/domain/clinical"
	"cardiotrend/domain/core"
	"cardiotrend/domain/trend"
)

// Engine is the full analysis pipeline: preprocess → split → fit →
// validate → cross-validate → analyze residuals → forecast. It holds no
// mutable state across runs; ComputeAnalysis is a pure function of its
// input sequence and the thresholds, so callers may memoize the bundle and
// recompute wholesale whenever the input changes.
type Engine struct {
	thresholds   clinical.Thresholds
	folds        int
	parallel     bool
	preprocessor *Preprocessor
	planner      *SplitPlanner
	validator    *Validator
	crossval     *CrossValidationEngine
	residuals    *ResidualAnalyzer
	forecaster   *ForecastEngine
}

// NewEngine creates a pipeline engine. folds <= 1 falls back to
// DefaultFolds. When parallel is true the three read-only analyses after
// the train fit (validation, cross-validation, residuals) run concurrently;
// they share nothing but the immutable sample slice and the fitted model.
func NewEngine(thresholds clinical.Thresholds, folds int, parallel bool) *Engine {
	if folds <= 1 {
		folds = DefaultFolds
	}
	return &Engine{
		thresholds:   thresholds,
		folds:        folds,
		parallel:     parallel,
		preprocessor: NewPreprocessor(thresholds),
		planner:      NewSplitPlanner(),
		validator:    NewValidator(),
		crossval:     NewCrossValidationEngine(),
		residuals:    NewResidualAnalyzer(thresholds),
		forecaster:   NewForecastEngine(thresholds),
	}
}

// ComputeAnalysis runs the whole pipeline over the raw sequence. Empty or
// fully implausible input yields an empty bundle and a nil error; no stage
// of the pipeline raises on degenerate data.
func (e *Engine) ComputeAnalysis(ctx context.Context, raw []trend.RawReading) (*trend.AnalysisBundle, error) {
	startedAt := core.Now()

	samples := e.preprocessor.Filter(raw)
	bundle := &trend.AnalysisBundle{
		Manifest: trend.RunManifest{
			RunID:       core.NewRunID(),
			StartedAt:   startedAt,
			RawCount:    len(raw),
			SampleCount: len(samples),
			Dropped:     len(raw) - len(samples),
		},
		Thresholds: e.thresholds,
		Samples:    samples,
	}

	if len(samples) == 0 {
		bundle.Manifest.CompletedAt = core.Now()
		return bundle, nil
	}

	split := e.planner.TrainValTestSplit(samples)
	trainModel := FitSamples(split.Train)
	fullModel := FitSamples(samples)

	bundle.Slope = fullModel.Slope
	bundle.Interc = fullModel.Intercept

	if err := e.runAnalyses(ctx, bundle, trainModel, fullModel, split, samples); err != nil {
		return nil, err
	}

	bundle.Forecast = e.forecaster.Forecast(fullModel, samples)
	bundle.Chart = buildChart(fullModel, samples, bundle.Forecast)
	bundle.Validity = e.assessValidity(bundle.Metrics)
	bundle.Manifest.CompletedAt = core.Now()

	return bundle, nil
}

// runAnalyses executes the three read-only analyses, concurrently when
// configured. All three consume immutable inputs only.
func (e *Engine) runAnalyses(
	ctx context.Context,
	bundle *trend.AnalysisBundle,
	trainModel, fullModel Model,
	split trend.Split,
	samples []trend.Sample,
) error {
	if !e.parallel {
		bundle.Metrics = e.validator.Validate(trainModel, split.Validation)
		bundle.FoldResults = e.crossval.Run(samples, e.folds)
		bundle.Residuals = e.residuals.AnalyzeWithModel(fullModel, samples)
		return nil
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		bundle.Metrics = e.validator.Validate(trainModel, split.Validation)
		return nil
	})
	g.Go(func() error {
		bundle.FoldResults = e.crossval.Run(samples, e.folds)
		return nil
	})
	g.Go(func() error {
		bundle.Residuals = e.residuals.AnalyzeWithModel(fullModel, samples)
		return nil
	})
	return g.Wait()
}

// assessValidity converts validation metrics into the clinical pass/fail
// verdict and the R² status label.
func (e *Engine) assessValidity(metrics trend.ValidationMetrics) trend.ValiditySummary {
	maeOK := metrics.MAE <= e.thresholds.MaxAcceptableMAE
	rmseOK := metrics.RMSE <= e.thresholds.MaxAcceptableRMSE

	r2Status := "poor"
	switch {
	case metrics.R2 >= e.thresholds.R2Target:
		r2Status = "good"
	case metrics.R2 >= e.thresholds.R2Target/2:
		r2Status = "moderate"
	}

	return trend.ValiditySummary{
		MAEAcceptable:  maeOK,
		RMSEAcceptable: rmseOK,
		R2Status:       r2Status,
		Valid:          maeOK && rmseOK,
	}
}

// buildChart assembles the chart-ready series: every observed period with
// its actual and modelled value, followed by the forecast periods with
// confidence bounds.
func buildChart(model Model, samples []trend.Sample, forecast []trend.ForecastPoint) []trend.ChartPoint {
	chart := make([]trend.ChartPoint, 0, len(samples)+len(forecast))

	for _, s := range samples {
		actual := s.Value
		chart = append(chart, trend.ChartPoint{
			Period:    s.Period,
			Actual:    &actual,
			Predicted: model.Predict(float64(s.Index)),
		})
	}

	for _, p := range forecast {
		lower := p.Lower()
		upper := p.Upper()
		chart = append(chart, trend.ChartPoint{
			Period:    p.Period,
			Predicted: p.Predicted,
			Lower:     &lower,
			Upper:     &upper,
			Forecast:  true,
		})
	}

	return chart
}
