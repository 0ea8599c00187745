package analysis

import (
	"math"
	"testing"

	"cardiotrend/domain/clinical"
	"cardiotrend/domain/trend"
)

func TestForecast_HorizonAndValues(t *testing.T) {
	e := NewForecastEngine(clinical.DefaultThresholds())
	samples := linearSamples(70, 1, 12)
	model := FitSamples(samples)

	points := e.Forecast(model, samples)

	if len(points) != 6 {
		t.Fatalf("expected 6 forecast points, got %d", len(points))
	}
	// predict(12+i) on the 70..81 line is 82..87
	for i, p := range points {
		want := 82 + float64(i)
		if math.Abs(p.Predicted-want) > 1e-9 {
			t.Errorf("point %d predicted = %v, want %v", i, p.Predicted, want)
		}
		if p.Status != clinical.StatusBorderline {
			t.Errorf("point %d status = %s, want borderline (81-100 band)", i, p.Status)
		}
	}
}

func TestForecast_ConfidenceNonDecreasing(t *testing.T) {
	th := clinical.DefaultThresholds()
	e := NewForecastEngine(th)
	samples := linearSamples(70, 1, 12)

	points := e.Forecast(FitSamples(samples), samples)

	if points[0].Confidence != th.CIBase {
		t.Errorf("first half-width = %v, want base %v", points[0].Confidence, th.CIBase)
	}
	for i := 1; i < len(points); i++ {
		if points[i].Confidence < points[i-1].Confidence {
			t.Errorf("half-width shrank at horizon %d: %v < %v",
				i, points[i].Confidence, points[i-1].Confidence)
		}
	}
	last := points[len(points)-1]
	wantLast := th.CIBase + float64(len(points)-1)*th.CIStep
	if math.Abs(last.Confidence-wantLast) > 1e-12 {
		t.Errorf("last half-width = %v, want %v", last.Confidence, wantLast)
	}

	// Bounds are symmetric around the prediction
	if got := last.Upper() - last.Predicted; math.Abs(got-last.Confidence) > 1e-12 {
		t.Errorf("upper bound offset = %v, want %v", got, last.Confidence)
	}
	if got := last.Predicted - last.Lower(); math.Abs(got-last.Confidence) > 1e-12 {
		t.Errorf("lower bound offset = %v, want %v", got, last.Confidence)
	}
}

func TestForecast_PeriodLabelsContinueMonthly(t *testing.T) {
	e := NewForecastEngine(clinical.DefaultThresholds())

	samples := linearSamples(70, 1, 3)
	samples[len(samples)-1].Period = "2025-11"

	points := e.Forecast(FitSamples(samples), samples)

	want := []string{"2025-12", "2026-01", "2026-02", "2026-03", "2026-04", "2026-05"}
	for i, p := range points {
		if p.Period != want[i] {
			t.Errorf("point %d period = %s, want %s", i, p.Period, want[i])
		}
	}
}

func TestForecast_FallbackLabelsForUnparseablePeriods(t *testing.T) {
	e := NewForecastEngine(clinical.DefaultThresholds())

	samples := []trend.Sample{
		{Period: "month one", Value: 70, Index: 0},
		{Period: "month two", Value: 71, Index: 1},
	}

	points := e.Forecast(FitSamples(samples), samples)

	for i, p := range points {
		want := "+" + string(rune('1'+i))
		if p.Period != want {
			t.Errorf("point %d period = %s, want %s", i, p.Period, want)
		}
	}
}

func TestForecast_ClassifiesEachPoint(t *testing.T) {
	th := clinical.DefaultThresholds()
	e := NewForecastEngine(th)

	// A steep downward trend crosses into bradycardia territory
	samples := linearSamples(80, -4, 6)
	points := e.Forecast(FitSamples(samples), samples)

	last := points[len(points)-1]
	if last.Status != clinical.StatusWarning {
		t.Errorf("steep decline: last status = %s, want warning", last.Status)
	}
	if last.Color != clinical.StatusWarning.Color() {
		t.Errorf("last color = %s, want %s", last.Color, clinical.StatusWarning.Color())
	}
}

func TestForecast_EmptyInput(t *testing.T) {
	e := NewForecastEngine(clinical.DefaultThresholds())

	if points := e.Forecast(Model{}, nil); points != nil {
		t.Errorf("empty input: expected nil forecast, got %d points", len(points))
	}
}
