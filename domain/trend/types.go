// Package trend defines the data model of the heart-rate trend analysis:
// the preprocessed samples, the partitioning structures, and the result
// bundle consumed by presentation collaborators.
package trend

import (
	"cardiotrend/domain/clinical"
	"cardiotrend/domain/core"
)

// RawReading is a single period record as supplied by an external
// data-retrieval collaborator. The numeric reading may arrive under any of
// several conventional field names; Fields keeps them all so the
// preprocessor can probe in a fixed priority order.
type RawReading struct {
	Period string             `json:"period"` // e.g. "2025-07"
	Fields map[string]float64 `json:"fields"`
}

// Value extracts the reading, probing conventional field names in priority
// order. The second return is false when no known field is present.
func (r RawReading) Value() (float64, bool) {
	for _, key := range []string{"bpm", "value", "heartRate", "avgBpm", "reading"} {
		if v, ok := r.Fields[key]; ok {
			return v, true
		}
	}
	return 0, false
}

// Sample is one preprocessed monthly aggregate.
// INVARIANTS:
// - Value lies within the clinical plausible range
// - Index is dense and zero-based over the filtered sequence, not the raw one
type Sample struct {
	Period string  `json:"period"`
	Value  float64 `json:"value"`
	Index  int     `json:"index"`
}

// Split partitions a sample sequence into three disjoint, order-preserving
// subsequences whose lengths sum to the input length.
type Split struct {
	Train      []Sample `json:"train"`
	Validation []Sample `json:"validation"`
	Test       []Sample `json:"test"`
}

// Len returns the total number of samples across the three subsets.
func (s Split) Len() int {
	return len(s.Train) + len(s.Validation) + len(s.Test)
}

// Fold is one contiguous cross-validation partition: its Test samples are
// held out and every remaining sample forms Train for that iteration.
// Number is the 1-based loop position and is not renumbered after skips.
type Fold struct {
	Number int      `json:"number"`
	Train  []Sample `json:"train"`
	Test   []Sample `json:"test"`
}

// ValidationMetrics are the held-out accuracy measures of a fitted model.
// R2 may be negative when the model predicts worse than the mean, and is
// defined as 0 when the held-out set has no variance to explain.
type ValidationMetrics struct {
	MAE  float64 `json:"mae"`
	RMSE float64 `json:"rmse"`
	R2   float64 `json:"r2"`
}

// FoldPoint pairs one held-out actual with its prediction.
type FoldPoint struct {
	Actual    float64 `json:"actual"`
	Predicted float64 `json:"predicted"`
	AbsError  float64 `json:"abs_error"`
}

// FoldResult aggregates per-fold cross-validation error.
// Variance is the mean squared error of the fold.
type FoldResult struct {
	Fold     int         `json:"fold"`
	MAE      float64     `json:"mae"`
	RMSE     float64     `json:"rmse"`
	Variance float64     `json:"variance"`
	Points   []FoldPoint `json:"points"`
}

// ForecastPoint is one extrapolated future period. Confidence is the CI
// half-width and is non-decreasing with horizon.
type ForecastPoint struct {
	Period     string          `json:"period"`
	Predicted  float64         `json:"predicted"`
	Confidence float64         `json:"confidence"`
	Status     clinical.Status `json:"status"`
	Assessment string          `json:"assessment"`
	Color      string          `json:"color"`
}

// Lower returns the lower confidence bound of the point.
func (p ForecastPoint) Lower() float64 { return p.Predicted - p.Confidence }

// Upper returns the upper confidence bound of the point.
func (p ForecastPoint) Upper() float64 { return p.Predicted + p.Confidence }

// ResidualRecord is the in-sample error at one observed period.
type ResidualRecord struct {
	Index       int     `json:"index"`
	Actual      float64 `json:"actual"`
	Predicted   float64 `json:"predicted"`
	Residual    float64 `json:"residual"`
	AbsResidual float64 `json:"abs_residual"`
}

// ResidualSummary carries the full residual list and the share of samples
// whose absolute residual falls within the clinical MAE tolerance.
type ResidualSummary struct {
	Records          []ResidualRecord `json:"records"`
	WithinTolerance  int              `json:"within_tolerance"`
	WithinPercentage float64          `json:"within_percentage"`
}

// ChartPoint is one chart-ready period with the observed value, the model
// value, and the confidence bounds (bounds only on forecast periods).
type ChartPoint struct {
	Period    string   `json:"period"`
	Actual    *float64 `json:"actual,omitempty"`
	Predicted float64  `json:"predicted"`
	Lower     *float64 `json:"lower,omitempty"`
	Upper     *float64 `json:"upper,omitempty"`
	Forecast  bool     `json:"forecast"`
}

// ValiditySummary is the clinical pass/fail verdict on the fitted model.
type ValiditySummary struct {
	MAEAcceptable  bool   `json:"mae_acceptable"`
	RMSEAcceptable bool   `json:"rmse_acceptable"`
	R2Status       string `json:"r2_status"` // "good", "moderate", "poor"
	Valid          bool   `json:"valid"`     // MAE and RMSE both within limits
}

// RunManifest captures audit metadata for one analysis run.
type RunManifest struct {
	RunID       core.RunID     `json:"run_id"`
	StartedAt   core.Timestamp `json:"started_at"`
	CompletedAt core.Timestamp `json:"completed_at"`
	RawCount    int            `json:"raw_count"`
	SampleCount int            `json:"sample_count"` // After plausibility filtering
	Dropped     int            `json:"dropped"`
}

// AnalysisBundle is the complete output contract of one analysis run. It is
// a pure function of the input sequence and the thresholds; the surrounding
// application may memoize and invalidate it wholesale.
type AnalysisBundle struct {
	Manifest   RunManifest         `json:"manifest"`
	Thresholds clinical.Thresholds `json:"thresholds"`

	Samples []Sample `json:"samples"`
	Slope   float64  `json:"slope"`
	Interc  float64  `json:"intercept"`

	Metrics     ValidationMetrics `json:"metrics"`
	FoldResults []FoldResult      `json:"fold_results"`
	Residuals   ResidualSummary   `json:"residuals"`
	Forecast    []ForecastPoint   `json:"forecast"`
	Chart       []ChartPoint      `json:"chart"`
	Validity    ValiditySummary   `json:"validity"`
}

// Empty reports whether the bundle carries no filtered samples. Empty or
// implausible input yields an empty bundle, never an error.
func (b *AnalysisBundle) Empty() bool {
	return b == nil || len(b.Samples) == 0
}
