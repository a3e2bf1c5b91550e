package domain

// pricing.go — the trade arithmetic of the simulated venue.
//
// Shares are bought at the side's quoted price: amount/price shares per
// trade, no slippage, no fee. A trade grows the side's share pool and the
// market's volume but never moves the quote.

// ComputeShares returns how many shares an XLM amount buys at the given
// price. The price must be a probability strictly inside (0,1).
func ComputeShares(amount, price float64) (float64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	if price <= 0 || price >= 1 {
		return 0, ErrInvalidPrice
	}
	return amount / price, nil
}

// PotentialPayout returns the XLM paid out if the chosen side wins:
// each share redeems for 1 XLM, so payout = amount/price.
func PotentialPayout(amount, price float64) (float64, error) {
	return ComputeShares(amount, price)
}

// ApplyTrade returns a copy of the market with a trade of `amount` XLM on
// `side` applied: TotalVolume grows by amount, the side's share pool grows
// by the shares bought, the opposite pool and both prices stay untouched.
func ApplyTrade(m Market, side Side, amount float64) (Market, error) {
	if m.Status != StatusActive {
		return Market{}, ErrMarketNotActive
	}
	shares, err := ComputeShares(amount, m.PriceFor(side))
	if err != nil {
		return Market{}, err
	}

	switch side {
	case SideYes:
		m.YesShares += shares
	case SideNo:
		m.NoShares += shares
	default:
		return Market{}, ErrInvalidSide
	}
	m.TotalVolume += amount
	return m, nil
}
