package ports

import (
	"context"

	"github.com/alejandrodnm/stellarcast/internal/domain"
)

// MarketStore holds the session's market collection.
//
// Update replaces the whole record — trades go through read-modify-replace,
// and the store serializes them so two trades against the same market never
// interleave. Missing identifiers surface as domain.ErrMarketNotFound,
// never as a silent no-op.
type MarketStore interface {
	// Get returns the market with the given identifier.
	Get(ctx context.Context, id string) (domain.Market, error)

	// List returns every market in insertion order.
	List(ctx context.Context) ([]domain.Market, error)

	// Add inserts a new market under its identifier.
	Add(ctx context.Context, m domain.Market) error

	// Update replaces the stored record for m.ID.
	Update(ctx context.Context, m domain.Market) error

	// NextID issues the next market identifier. Identifiers are decimal
	// strings from a monotonic counter seeded with the collection size.
	NextID(ctx context.Context) (string, error)

	// Count returns the number of stored markets.
	Count(ctx context.Context) (int, error)

	// Close releases the store's resources.
	Close() error
}

// PositionStore records opened positions in insertion order.
type PositionStore interface {
	// Append records a freshly opened position for the given account.
	Append(ctx context.Context, accountID string, p domain.Position) error

	// ListByAccount returns the account's positions oldest first.
	ListByAccount(ctx context.Context, accountID string) ([]domain.Position, error)
}
