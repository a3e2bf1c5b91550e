package domain

import "time"

// Position is one trade's worth of exposure to one side of one market.
// Repeated trades on the same market and side append new positions; they
// are never merged into a running average.
type Position struct {
	ID           string // uuid, assigned at open
	MarketID     string
	Side         Side
	Shares       float64
	AveragePrice float64 // the quote at open; the position's cost basis price
	CurrentValue float64 // marked to the live quote on read, cost at open
	OpenedAt     time.Time
}

// CostBasis is the XLM spent opening the position.
func (p Position) CostBasis() float64 {
	return p.Shares * p.AveragePrice
}

// MarkToMarket returns the position revalued at the live price for its
// side. With the venue's static quotes this equals the cost basis, but the
// valuation is recomputed on every read rather than trusted from open time.
func (p Position) MarkToMarket(m Market) Position {
	p.CurrentValue = p.Shares * m.PriceFor(p.Side)
	return p
}

// OpenPosition builds the position for a trade of `amount` XLM on `side`
// at the given quote. CurrentValue starts equal to the amount spent —
// shares are bought at the quote with no slippage.
func OpenPosition(id, marketID string, side Side, amount, price float64, now time.Time) (Position, error) {
	shares, err := ComputeShares(amount, price)
	if err != nil {
		return Position{}, err
	}
	return Position{
		ID:           id,
		MarketID:     marketID,
		Side:         side,
		Shares:       shares,
		AveragePrice: price,
		CurrentValue: shares * price,
		OpenedAt:     now,
	}, nil
}

// User is the connected session's account view.
type User struct {
	AccountID      string // Stellar public key of the connected wallet
	Balance        float64
	Positions      []Position
	MarketsCreated int
	TotalVolume    float64 // cumulative XLM this user has traded
}
