package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeShares_Basic(t *testing.T) {
	// 100 XLM at 0.50 → 200 shares
	shares, err := ComputeShares(100, 0.50)
	require.NoError(t, err)
	assert.InDelta(t, 200.0, shares, 0.0001)
}

func TestComputeShares_DecreasingInPrice(t *testing.T) {
	// Same amount, higher price → fewer shares
	cheap, err := ComputeShares(100, 0.25)
	require.NoError(t, err)
	dear, err := ComputeShares(100, 0.75)
	require.NoError(t, err)
	assert.Greater(t, cheap, dear)
}

func TestComputeShares_InvalidAmount(t *testing.T) {
	_, err := ComputeShares(0, 0.5)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = ComputeShares(-10, 0.5)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestComputeShares_InvalidPrice(t *testing.T) {
	for _, price := range []float64{0, -0.5, 1, 1.5} {
		_, err := ComputeShares(100, price)
		assert.ErrorIs(t, err, ErrInvalidPrice, "price %v", price)
	}
}

func TestPotentialPayout(t *testing.T) {
	// 50 XLM on a 0.25 side → 200 XLM if it wins
	payout, err := PotentialPayout(50, 0.25)
	require.NoError(t, err)
	assert.InDelta(t, 200.0, payout, 0.0001)
}

func TestApplyTrade_Yes(t *testing.T) {
	m := Market{ID: "1", Status: StatusActive, YesPrice: 0.5, NoPrice: 0.5, TotalVolume: 300, YesShares: 40, NoShares: 60}

	// amount=100 at yes 0.50 → +200 yes shares, +100 volume
	got, err := ApplyTrade(m, SideYes, 100)
	require.NoError(t, err)

	assert.InDelta(t, 400.0, got.TotalVolume, 0.0001)
	assert.InDelta(t, 240.0, got.YesShares, 0.0001)
	assert.InDelta(t, 60.0, got.NoShares, 0.0001, "no side untouched")
	assert.Equal(t, 0.5, got.YesPrice, "quote never moves on trade")
	assert.Equal(t, 0.5, got.NoPrice)
}

func TestApplyTrade_No(t *testing.T) {
	m := Market{ID: "1", Status: StatusActive, YesPrice: 0.6, NoPrice: 0.4, YesShares: 10}

	// amount=80 at no 0.40 → +200 no shares
	got, err := ApplyTrade(m, SideNo, 80)
	require.NoError(t, err)

	assert.InDelta(t, 200.0, got.NoShares, 0.0001)
	assert.InDelta(t, 10.0, got.YesShares, 0.0001)
	assert.InDelta(t, 80.0, got.TotalVolume, 0.0001)
}

func TestApplyTrade_InputLeftUnchanged(t *testing.T) {
	m := Market{ID: "1", Status: StatusActive, YesPrice: 0.5, NoPrice: 0.5}
	_, err := ApplyTrade(m, SideYes, 100)
	require.NoError(t, err)
	assert.Zero(t, m.TotalVolume)
	assert.Zero(t, m.YesShares)
}

func TestApplyTrade_NotActive(t *testing.T) {
	m := Market{ID: "1", Status: StatusClosed, YesPrice: 0.5, NoPrice: 0.5}
	_, err := ApplyTrade(m, SideYes, 100)
	assert.ErrorIs(t, err, ErrMarketNotActive)
}

func TestApplyTrade_BadAmount(t *testing.T) {
	m := Market{ID: "1", Status: StatusActive, YesPrice: 0.5, NoPrice: 0.5}
	_, err := ApplyTrade(m, SideYes, -5)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestOpenPosition_ValueEqualsCostAtOpen(t *testing.T) {
	// shares = 100/0.50 = 200, value = 200×0.50 = 100 = amount
	p, err := OpenPosition("pos-1", "1", SideYes, 100, 0.50, testTime(t))
	require.NoError(t, err)

	assert.InDelta(t, 200.0, p.Shares, 0.0001)
	assert.Equal(t, 0.50, p.AveragePrice)
	assert.InDelta(t, 100.0, p.CurrentValue, 0.0001)
	assert.InDelta(t, 100.0, p.CostBasis(), 0.0001)
}

func TestPosition_MarkToMarket(t *testing.T) {
	p, err := OpenPosition("pos-1", "1", SideNo, 60, 0.30, testTime(t))
	require.NoError(t, err)

	// Quote moved to 0.45 → value = 200 × 0.45 = 90
	m := Market{ID: "1", YesPrice: 0.55, NoPrice: 0.45}
	marked := p.MarkToMarket(m)
	assert.InDelta(t, 90.0, marked.CurrentValue, 0.0001)
	assert.InDelta(t, 60.0, marked.CostBasis(), 0.0001, "cost basis never moves")
}

func TestParseSide(t *testing.T) {
	for in, want := range map[string]Side{"yes": SideYes, "YES": SideYes, " No ": SideNo} {
		got, err := ParseSide(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseSide("maybe")
	assert.ErrorIs(t, err, ErrInvalidSide)
}
