package analysis

import (
	"testing"

	"cardiotrend/domain/clinical"
	"cardiotrend/domain/trend"
)

func rawReading(period string, field string, value float64) trend.RawReading {
	return trend.RawReading{Period: period, Fields: map[string]float64{field: value}}
}

func TestPreprocessor_FiltersImplausibleReadings(t *testing.T) {
	p := NewPreprocessor(clinical.DefaultThresholds())

	raw := []trend.RawReading{
		rawReading("2025-01", "bpm", 72),
		rawReading("2025-02", "bpm", 250), // Sensor artifact, must never reach the fit
		rawReading("2025-03", "bpm", 75),
		rawReading("2025-04", "bpm", 20), // Below plausible range
		rawReading("2025-05", "bpm", 78),
	}

	samples := p.Filter(raw)

	if len(samples) != 3 {
		t.Fatalf("expected 3 samples after filtering, got %d", len(samples))
	}
	for _, s := range samples {
		if s.Value == 250 || s.Value == 20 {
			t.Errorf("implausible value %.0f survived filtering", s.Value)
		}
	}
}

func TestPreprocessor_ReindexesFilteredSequence(t *testing.T) {
	p := NewPreprocessor(clinical.DefaultThresholds())

	raw := []trend.RawReading{
		rawReading("2025-01", "bpm", 300), // dropped
		rawReading("2025-02", "bpm", 70),
		rawReading("2025-03", "bpm", 999), // dropped
		rawReading("2025-04", "bpm", 74),
	}

	samples := p.Filter(raw)

	if len(samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(samples))
	}
	// Indices must be dense over the filtered output, not the raw input
	for i, s := range samples {
		if s.Index != i {
			t.Errorf("sample %d has index %d, want %d", i, s.Index, i)
		}
	}
	if samples[0].Period != "2025-02" || samples[1].Period != "2025-04" {
		t.Errorf("filtered periods = %s, %s; want 2025-02, 2025-04", samples[0].Period, samples[1].Period)
	}
}

func TestPreprocessor_ProbesConventionalFieldNames(t *testing.T) {
	p := NewPreprocessor(clinical.DefaultThresholds())

	raw := []trend.RawReading{
		rawReading("2025-01", "bpm", 71),
		rawReading("2025-02", "value", 72),
		rawReading("2025-03", "heartRate", 73),
		rawReading("2025-04", "avgBpm", 74),
		rawReading("2025-05", "reading", 75),
		{Period: "2025-06", Fields: map[string]float64{"steps": 9000}}, // no reading field
	}

	samples := p.Filter(raw)

	if len(samples) != 5 {
		t.Fatalf("expected 5 samples, got %d", len(samples))
	}
	for i, s := range samples {
		want := 71 + float64(i)
		if s.Value != want {
			t.Errorf("sample %d value = %.0f, want %.0f", i, s.Value, want)
		}
	}
}

func TestPreprocessor_EmptyInput(t *testing.T) {
	p := NewPreprocessor(clinical.DefaultThresholds())

	if got := p.Filter(nil); len(got) != 0 {
		t.Errorf("nil input should yield empty output, got %d samples", len(got))
	}
	if got := p.Filter([]trend.RawReading{}); len(got) != 0 {
		t.Errorf("empty input should yield empty output, got %d samples", len(got))
	}
}
