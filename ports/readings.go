package ports

import (
	"context"

	"cardiotrend/domain/trend"
)

// ReadingSourcePort supplies the ordered monthly reading sequence. The core
// never fetches, caches, or persists readings itself; remote stores, caches,
// and any persistence live behind this boundary.
type ReadingSourcePort interface {
	// Readings returns period records in natural period order.
	// An empty slice with a nil error is a valid result.
	Readings(ctx context.Context) ([]trend.RawReading, error)
}

// ResultSinkPort receives a completed analysis bundle. Presentation surfaces
// (charts, view toggles) and ledger logging implement this outside the core.
type ResultSinkPort interface {
	Publish(ctx context.Context, bundle *trend.AnalysisBundle) error
}
