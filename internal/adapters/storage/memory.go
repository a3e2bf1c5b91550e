package storage

import (
	"context"
	"strconv"
	"sync"

	"github.com/alejandrodnm/stellarcast/internal/domain"
)

// Memory is the default store: everything lives in process memory and is
// gone when the session ends, which is exactly the venue's contract.
// A single mutex serializes access, so read-modify-replace trade cycles
// against the same market cannot interleave.
type Memory struct {
	mu        sync.RWMutex
	markets   map[string]domain.Market
	order     []string                     // market IDs in insertion order
	positions map[string][]domain.Position // accountID → positions, oldest first
	lastID    int
}

// NewMemory creates a store pre-populated with the seed markets. The
// identifier counter starts at the seed size, so the first created market
// on a 3-market store gets "4".
func NewMemory(seed []domain.Market) *Memory {
	s := &Memory{
		markets:   make(map[string]domain.Market, len(seed)),
		positions: make(map[string][]domain.Position),
	}
	for _, m := range seed {
		if _, dup := s.markets[m.ID]; dup {
			continue
		}
		s.markets[m.ID] = m
		s.order = append(s.order, m.ID)
	}
	s.lastID = len(s.order)
	return s
}

// Get returns the market with the given identifier.
func (s *Memory) Get(_ context.Context, id string) (domain.Market, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.markets[id]
	if !ok {
		return domain.Market{}, domain.ErrMarketNotFound
	}
	return m, nil
}

// List returns every market in insertion order.
func (s *Memory) List(_ context.Context) ([]domain.Market, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Market, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.markets[id])
	}
	return out, nil
}

// Add inserts a new market.
func (s *Memory) Add(_ context.Context, m domain.Market) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, dup := s.markets[m.ID]; dup {
		return domain.ErrDuplicateMarket
	}
	s.markets[m.ID] = m
	s.order = append(s.order, m.ID)
	return nil
}

// Update replaces the stored record for m.ID.
func (s *Memory) Update(_ context.Context, m domain.Market) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.markets[m.ID]; !ok {
		return domain.ErrMarketNotFound
	}
	s.markets[m.ID] = m
	return nil
}

// NextID issues the next identifier from the monotonic counter.
func (s *Memory) NextID(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	return strconv.Itoa(s.lastID), nil
}

// Count returns the number of stored markets.
func (s *Memory) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order), nil
}

// Append records an opened position for the account.
func (s *Memory) Append(_ context.Context, accountID string, p domain.Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.positions[accountID] = append(s.positions[accountID], p)
	return nil
}

// ListByAccount returns the account's positions oldest first.
func (s *Memory) ListByAccount(_ context.Context, accountID string) ([]domain.Position, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	src := s.positions[accountID]
	out := make([]domain.Position, len(src))
	copy(out, src)
	return out, nil
}

// Close is a no-op for the in-memory store.
func (s *Memory) Close() error { return nil }
