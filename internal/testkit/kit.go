// Package testkit provides deterministic fixtures for tests and the CLI
// demo mode: synthetic monthly heart-rate series and an in-memory reading
// source fake.
package testkit

import (
	"context"
	"math/rand"
	"time"

	"cardiotrend/domain/trend"
)

// SeriesConfig describes a synthetic monthly series.
type SeriesConfig struct {
	Months  int
	BaseBPM float64 // Value at the first month
	Trend   float64 // BPM drift per month
	Noise   float64 // Max uniform noise amplitude (± BPM)
	Seed    int64
	Start   time.Time // First period; zero value means January 2024
	Field   string    // Raw field name carrying the reading; empty means "bpm"
}

// DefaultSeriesConfig returns a two-year series around the normal band with
// a mild upward drift.
func DefaultSeriesConfig() SeriesConfig {
	return SeriesConfig{
		Months:  24,
		BaseBPM: 72,
		Trend:   0.4,
		Noise:   1.5,
		Seed:    42,
	}
}

// GenerateReadings builds a deterministic synthetic raw series. The same
// config always yields the same readings.
func GenerateReadings(cfg SeriesConfig) []trend.RawReading {
	if cfg.Months <= 0 {
		return nil
	}

	start := cfg.Start
	if start.IsZero() {
		start = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	field := cfg.Field
	if field == "" {
		field = "bpm"
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	readings := make([]trend.RawReading, cfg.Months)

	for i := 0; i < cfg.Months; i++ {
		value := cfg.BaseBPM + cfg.Trend*float64(i)
		if cfg.Noise > 0 {
			value += (rng.Float64()*2 - 1) * cfg.Noise
		}

		readings[i] = trend.RawReading{
			Period: start.AddDate(0, i, 0).Format("2006-01"),
			Fields: map[string]float64{field: value},
		}
	}

	return readings
}

// LinearReadings builds a noise-free series value[i] = base + slope·i,
// useful for exact-fit assertions.
func LinearReadings(base, slope float64, months int) []trend.RawReading {
	cfg := DefaultSeriesConfig()
	cfg.Months = months
	cfg.BaseBPM = base
	cfg.Trend = slope
	cfg.Noise = 0
	return GenerateReadings(cfg)
}

// InMemoryReadingSource is a ReadingSourcePort fake backed by a fixed slice.
type InMemoryReadingSource struct {
	readings []trend.RawReading
	err      error
}

// NewInMemoryReadingSource wraps a fixed raw sequence.
func NewInMemoryReadingSource(readings []trend.RawReading) *InMemoryReadingSource {
	return &InMemoryReadingSource{readings: readings}
}

// NewFailingReadingSource always returns err, for error-path tests.
func NewFailingReadingSource(err error) *InMemoryReadingSource {
	return &InMemoryReadingSource{err: err}
}

// Readings returns the fixed sequence.
func (s *InMemoryReadingSource) Readings(ctx context.Context) ([]trend.RawReading, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.readings, nil
}
