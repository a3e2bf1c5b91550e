package domain

// PortfolioSummary is the aggregate view over a user's positions.
type PortfolioSummary struct {
	TotalValue    float64 // Σ current value
	TotalInvested float64 // Σ shares × average price
	TotalReturn   float64 // value − invested
	ReturnPct     float64 // return / invested × 100, 0 when nothing invested
}

// AggregatePortfolio folds a list of positions into summary totals.
// An empty list yields the zero summary; ReturnPct is defined as 0 when
// nothing has been invested, so there is no division by zero.
func AggregatePortfolio(positions []Position) PortfolioSummary {
	var s PortfolioSummary
	for _, p := range positions {
		s.TotalValue += p.CurrentValue
		s.TotalInvested += p.CostBasis()
	}
	s.TotalReturn = s.TotalValue - s.TotalInvested
	if s.TotalInvested > 0 {
		s.ReturnPct = s.TotalReturn / s.TotalInvested * 100
	}
	return s
}
