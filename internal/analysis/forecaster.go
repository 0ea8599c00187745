package analysis

import (
	"fmt"
	"time"

	"cardiotrend/domain/clinical"
	"cardiotrend/domain/trend"
)

// periodLayout is the canonical monthly period label format.
const periodLayout = "2006-01"

// ForecastEngine extrapolates future periods from the model fitted over the
// entire preprocessed sequence. Each step widens the confidence interval by
// a fixed increment, so the half-width is non-decreasing with horizon, and
// every predicted value is classified clinically.
type ForecastEngine struct {
	thresholds clinical.Thresholds
}

// NewForecastEngine creates a forecast engine bound to the given thresholds.
func NewForecastEngine(thresholds clinical.Thresholds) *ForecastEngine {
	return &ForecastEngine{thresholds: thresholds}
}

// Forecast produces ForecastHorizon future points. Offset i predicts at
// index n+i where n is the filtered sequence length; its confidence
// half-width is CIBase + i·CIStep. Empty input yields no forecast.
func (e *ForecastEngine) Forecast(model Model, samples []trend.Sample) []trend.ForecastPoint {
	if len(samples) == 0 || e.thresholds.ForecastHorizon <= 0 {
		return nil
	}

	n := len(samples)
	lastPeriod := samples[n-1].Period
	points := make([]trend.ForecastPoint, e.thresholds.ForecastHorizon)

	for i := 0; i < e.thresholds.ForecastHorizon; i++ {
		predicted := model.Predict(float64(n + i))
		classification := clinical.Classify(e.thresholds, predicted)

		points[i] = trend.ForecastPoint{
			Period:     futurePeriod(lastPeriod, i+1),
			Predicted:  predicted,
			Confidence: e.thresholds.CIBase + float64(i)*e.thresholds.CIStep,
			Status:     classification.Status,
			Assessment: classification.Assessment,
			Color:      classification.Color,
		}
	}

	return points
}

// futurePeriod continues monthly labels from the last observed period.
// Labels that do not parse as YYYY-MM fall back to relative "+k" offsets.
func futurePeriod(lastPeriod string, offset int) string {
	t, err := time.Parse(periodLayout, lastPeriod)
	if err != nil {
		return fmt.Sprintf("+%d", offset)
	}
	return t.AddDate(0, offset, 0).Format(periodLayout)
}
