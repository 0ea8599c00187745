package analysis

import (
	"math"

	"github.com/montanaflynn/stats"

	"cardiotrend/domain/trend"
)

// CrossValidationEngine runs k repeated train/evaluate cycles over disjoint
// contiguous folds and aggregates per-fold error metrics.
type CrossValidationEngine struct {
	planner *SplitPlanner
}

// NewCrossValidationEngine creates a cross-validation engine.
func NewCrossValidationEngine() *CrossValidationEngine {
	return &CrossValidationEngine{planner: NewSplitPlanner()}
}

// Run cross-validates the full preprocessed sequence with k folds. Each
// non-skipped fold fits a model on its train pairs re-indexed locally from 0
// and predicts every test sample at its global index, continuing the
// original sequence numbering. Results preserve fold order and the 1-based
// fold numbers assigned by the planner.
func (e *CrossValidationEngine) Run(samples []trend.Sample, k int) []trend.FoldResult {
	folds := e.planner.KFold(samples, k)
	if len(folds) == 0 {
		return nil
	}

	results := make([]trend.FoldResult, 0, len(folds))
	for _, fold := range folds {
		results = append(results, e.evaluateFold(fold))
	}

	return results
}

func (e *CrossValidationEngine) evaluateFold(fold trend.Fold) trend.FoldResult {
	model := FitSamplesLocal(fold.Train)

	points := make([]trend.FoldPoint, len(fold.Test))
	absErrors := make([]float64, len(fold.Test))
	sqErrors := make([]float64, len(fold.Test))

	for i, s := range fold.Test {
		predicted := model.Predict(float64(s.Index))
		absErr := math.Abs(s.Value - predicted)

		points[i] = trend.FoldPoint{
			Actual:    s.Value,
			Predicted: predicted,
			AbsError:  absErr,
		}
		absErrors[i] = absErr
		sqErrors[i] = absErr * absErr
	}

	mae, _ := stats.Mean(absErrors)
	mse, _ := stats.Mean(sqErrors)

	return trend.FoldResult{
		Fold:     fold.Number,
		MAE:      mae,
		RMSE:     math.Sqrt(mse),
		Variance: mse,
		Points:   points,
	}
}
