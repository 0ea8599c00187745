package analysis

import (
	"math"

	"github.com/montanaflynn/stats"

	"cardiotrend/domain/trend"
)

// Validator scores a fitted model against a held-out subset. The held-out
// samples keep their global indices, which continue the training range, so
// the model is evaluated at the correct offsets.
type Validator struct{}

// NewValidator creates a validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate computes MAE, RMSE and R² for the model's predictions over the
// held-out samples. It never divides by zero: an empty holdout yields zero
// metrics, and a holdout with no variance around its mean defines R² as 0
// rather than NaN. All returned values are finite.
func (v *Validator) Validate(model Model, holdout []trend.Sample) trend.ValidationMetrics {
	if len(holdout) == 0 {
		return trend.ValidationMetrics{}
	}

	absErrors := make([]float64, len(holdout))
	sqErrors := make([]float64, len(holdout))
	actuals := make([]float64, len(holdout))

	for i, s := range holdout {
		predicted := model.Predict(float64(s.Index))
		err := s.Value - predicted

		absErrors[i] = math.Abs(err)
		sqErrors[i] = err * err
		actuals[i] = s.Value
	}

	mae, _ := stats.Mean(absErrors)
	mse, _ := stats.Mean(sqErrors)
	rmse := math.Sqrt(mse)

	mean, _ := stats.Mean(actuals)
	ssTot := 0.0
	ssRes := 0.0
	for i, actual := range actuals {
		ssTot += (actual - mean) * (actual - mean)
		ssRes += sqErrors[i]
	}

	r2 := 0.0
	if ssTot > 0 {
		r2 = 1 - ssRes/ssTot
	}

	return trend.ValidationMetrics{MAE: mae, RMSE: rmse, R2: r2}
}
