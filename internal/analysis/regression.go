package analysis

import (
	"gonum.org/v1/gonum/stat"

	"cardiotrend/domain/trend"
)

// Model is a single-feature ordinary-least-squares line fitted over
// (index, value) pairs. Prediction is defined for any x, including indices
// beyond the training range.
type Model struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// Predict returns the modelled value at x.
func (m Model) Predict(x float64) float64 {
	return m.Slope*x + m.Intercept
}

// FitModel fits an OLS line over the given points via the closed-form
// normal equations. The fit is deterministic: identical inputs always yield
// identical coefficients. Degenerate inputs (fewer than two points, or zero
// variance in x) produce a flat line at the mean so every downstream value
// stays finite.
func FitModel(xs, ys []float64) Model {
	if len(xs) != len(ys) || len(xs) < 2 {
		return flatModel(ys)
	}
	if stat.Variance(xs, nil) == 0 {
		return flatModel(ys)
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	return Model{Slope: slope, Intercept: intercept}
}

// FitSamples fits a model over samples at their own global indices.
func FitSamples(samples []trend.Sample) Model {
	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = float64(s.Index)
		ys[i] = s.Value
	}
	return FitModel(xs, ys)
}

// FitSamplesLocal fits a model over samples re-indexed locally from 0,
// ignoring their global indices. Cross-validation folds train this way and
// predict at global offsets.
func FitSamplesLocal(samples []trend.Sample) Model {
	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = float64(i)
		ys[i] = s.Value
	}
	return FitModel(xs, ys)
}

func flatModel(ys []float64) Model {
	if len(ys) == 0 {
		return Model{}
	}
	return Model{Intercept: stat.Mean(ys, nil)}
}
