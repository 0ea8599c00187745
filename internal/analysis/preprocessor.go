// Package analysis implements the heart-rate trend pipeline: plausibility
// filtering, sequence partitioning, least-squares fitting, held-out and
// k-fold validation, residual analysis, and multi-period forecasting.
package analysis

import (
	"cardiotrend/domain/clinical"
	"cardiotrend/domain/trend"
)

// Preprocessor filters raw readings to the physiologically plausible range
// and assigns dense zero-based indices over the filtered output.
type Preprocessor struct {
	thresholds clinical.Thresholds
}

// NewPreprocessor creates a preprocessor bound to the given thresholds.
func NewPreprocessor(thresholds clinical.Thresholds) *Preprocessor {
	return &Preprocessor{thresholds: thresholds}
}

// Filter drops records without a recognizable reading or with a reading
// outside [MinValidBPM, MaxValidBPM]. Retained records are re-indexed by
// their position in the filtered output, not their original position.
// Empty or nil input yields an empty output and never an error.
func (p *Preprocessor) Filter(raw []trend.RawReading) []trend.Sample {
	samples := make([]trend.Sample, 0, len(raw))

	for _, rec := range raw {
		value, ok := rec.Value()
		if !ok {
			continue
		}
		if value < p.thresholds.MinValidBPM || value > p.thresholds.MaxValidBPM {
			continue
		}

		samples = append(samples, trend.Sample{
			Period: rec.Period,
			Value:  value,
			Index:  len(samples),
		})
	}

	return samples
}
