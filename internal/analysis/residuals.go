package analysis

import (
	"math"

	"cardiotrend/domain/clinical"
	"cardiotrend/domain/trend"
)

// ResidualAnalyzer measures in-sample error: it fits one model over the
// entire preprocessed sequence, predicts every sample at its own index, and
// reports how many residuals fall within the clinical MAE tolerance.
type ResidualAnalyzer struct {
	thresholds clinical.Thresholds
}

// NewResidualAnalyzer creates a residual analyzer bound to the given thresholds.
func NewResidualAnalyzer(thresholds clinical.Thresholds) *ResidualAnalyzer {
	return &ResidualAnalyzer{thresholds: thresholds}
}

// Analyze returns the per-sample residual records and the share of samples
// within tolerance, expressed as a percentage. Empty input yields an empty
// summary.
func (a *ResidualAnalyzer) Analyze(samples []trend.Sample) trend.ResidualSummary {
	if len(samples) == 0 {
		return trend.ResidualSummary{}
	}

	model := FitSamples(samples)
	return a.AnalyzeWithModel(model, samples)
}

// AnalyzeWithModel computes residuals against an already fitted model. The
// pipeline uses this to reuse the full-sequence fit shared with forecasting.
func (a *ResidualAnalyzer) AnalyzeWithModel(model Model, samples []trend.Sample) trend.ResidualSummary {
	if len(samples) == 0 {
		return trend.ResidualSummary{}
	}

	records := make([]trend.ResidualRecord, len(samples))
	within := 0

	for i, s := range samples {
		predicted := model.Predict(float64(s.Index))
		residual := s.Value - predicted
		absResidual := math.Abs(residual)

		records[i] = trend.ResidualRecord{
			Index:       s.Index,
			Actual:      s.Value,
			Predicted:   predicted,
			Residual:    residual,
			AbsResidual: absResidual,
		}

		if absResidual <= a.thresholds.MaxAcceptableMAE {
			within++
		}
	}

	return trend.ResidualSummary{
		Records:          records,
		WithinTolerance:  within,
		WithinPercentage: 100 * float64(within) / float64(len(samples)),
	}
}
