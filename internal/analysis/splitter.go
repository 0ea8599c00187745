package analysis

import (
	"cardiotrend/domain/trend"
)

// Split proportions for the time-ordered train/validation/test partition.
// The test subset receives the remainder after proportional rounding.
const (
	TrainRatio      = 0.70
	ValidationRatio = 0.15
)

// DefaultFolds is the cross-validation fold count used by the pipeline.
const DefaultFolds = 5

// SplitPlanner partitions a preprocessed sequence for validation. Unlike a
// shuffled partitioner, order is always the natural period order: the data
// is a time series, so splits are contiguous prefixes and suffixes.
type SplitPlanner struct{}

// NewSplitPlanner creates a split planner.
func NewSplitPlanner() *SplitPlanner {
	return &SplitPlanner{}
}

// TrainValTestSplit slices samples into train (first ⌊0.70n⌋), validation
// (next ⌊0.15n⌋) and test (remainder). The three subsets are disjoint,
// order-preserving, and their lengths always sum to len(samples).
func (sp *SplitPlanner) TrainValTestSplit(samples []trend.Sample) trend.Split {
	n := len(samples)
	trainEnd := int(float64(n) * TrainRatio)
	valEnd := trainEnd + int(float64(n)*ValidationRatio)

	return trend.Split{
		Train:      samples[:trainEnd],
		Validation: samples[trainEnd:valEnd],
		Test:       samples[valEnd:],
	}
}

// KFold partitions samples into k contiguous folds. Fold i holds out the
// range [i·size, (i+1)·size) as its test set — the last fold extends to n to
// absorb the integer-division remainder — and trains on everything else.
// Folds whose train or test side would be empty are skipped entirely; the
// returned folds keep their 1-based loop numbering, so fold numbers are not
// renumbered after skips.
func (sp *SplitPlanner) KFold(samples []trend.Sample, k int) []trend.Fold {
	n := len(samples)
	if n == 0 || k <= 0 {
		return nil
	}

	foldSize := n / k
	folds := make([]trend.Fold, 0, k)

	for i := 0; i < k; i++ {
		start := i * foldSize
		end := start + foldSize
		if i == k-1 {
			end = n
		}
		if start >= n {
			break
		}

		test := samples[start:end]

		train := make([]trend.Sample, 0, n-len(test))
		train = append(train, samples[:start]...)
		train = append(train, samples[end:]...)

		if len(train) == 0 || len(test) == 0 {
			continue
		}

		folds = append(folds, trend.Fold{
			Number: i + 1,
			Train:  train,
			Test:   test,
		})
	}

	return folds
}
