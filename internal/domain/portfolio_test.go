package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregatePortfolio_Empty(t *testing.T) {
	s := AggregatePortfolio(nil)
	assert.Zero(t, s.TotalValue)
	assert.Zero(t, s.TotalInvested)
	assert.Zero(t, s.TotalReturn)
	assert.Zero(t, s.ReturnPct, "no division by zero on empty portfolio")
}

func TestAggregatePortfolio_FreshPositionsReturnZero(t *testing.T) {
	// At open, value == cost for every position → return is exactly 0.
	positions := []Position{
		{Shares: 200, AveragePrice: 0.50, CurrentValue: 100},
		{Shares: 50, AveragePrice: 0.20, CurrentValue: 10},
	}
	s := AggregatePortfolio(positions)
	assert.InDelta(t, 110.0, s.TotalValue, 0.0001)
	assert.InDelta(t, 110.0, s.TotalInvested, 0.0001)
	assert.InDelta(t, 0.0, s.TotalReturn, 0.0001)
	assert.InDelta(t, 0.0, s.ReturnPct, 0.0001)
}

func TestAggregatePortfolio_MarkedPositions(t *testing.T) {
	// invested = 200×0.50 + 100×0.30 = 130
	// value    = 120 + 45 = 165 → return 35, pct 35/130×100 ≈ 26.92
	positions := []Position{
		{Shares: 200, AveragePrice: 0.50, CurrentValue: 120},
		{Shares: 100, AveragePrice: 0.30, CurrentValue: 45},
	}
	s := AggregatePortfolio(positions)
	assert.InDelta(t, 165.0, s.TotalValue, 0.0001)
	assert.InDelta(t, 130.0, s.TotalInvested, 0.0001)
	assert.InDelta(t, 35.0, s.TotalReturn, 0.0001)
	assert.InDelta(t, 26.923, s.ReturnPct, 0.001)
}

func TestAggregatePortfolio_LosingPosition(t *testing.T) {
	positions := []Position{
		{Shares: 100, AveragePrice: 0.50, CurrentValue: 30},
	}
	s := AggregatePortfolio(positions)
	assert.InDelta(t, -20.0, s.TotalReturn, 0.0001)
	assert.InDelta(t, -40.0, s.ReturnPct, 0.0001)
}
