package notify

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alejandrodnm/stellarcast/internal/domain"
	"github.com/alejandrodnm/stellarcast/internal/ports"
)

func TestPrintMarkets_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewConsoleWriter(&buf).PrintMarkets(nil)
	assert.Contains(t, buf.String(), "no markets found")
}

func TestPrintMarkets_Table(t *testing.T) {
	var buf bytes.Buffer
	NewConsoleWriter(&buf).PrintMarkets([]domain.Market{
		{ID: "1", Question: "Will Bitcoin hit $200k?", Category: domain.CategoryCrypto,
			YesPrice: 0.65, NoPrice: 0.35, TotalVolume: 12500,
			ResolutionDate: time.Now().Add(100 * 24 * time.Hour)},
	})

	out := buf.String()
	assert.Contains(t, out, "Will Bitcoin hit $200k?")
	assert.Contains(t, out, "0.65")
	assert.Contains(t, out, "12500 XLM")
	assert.Contains(t, out, "crypto")
}

func TestPrintPortfolio_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewConsoleWriter(&buf).PrintPortfolio(nil, domain.PortfolioSummary{})
	assert.Contains(t, buf.String(), "no open positions")
}

func TestPrintPortfolio_SummaryLine(t *testing.T) {
	var buf bytes.Buffer
	positions := []domain.Position{
		{MarketID: "1", Side: domain.SideYes, Shares: 200, AveragePrice: 0.5, CurrentValue: 100},
	}
	NewConsoleWriter(&buf).PrintPortfolio(positions, domain.AggregatePortfolio(positions))

	out := buf.String()
	assert.Contains(t, out, "YES")
	assert.Contains(t, out, "value 100.00 XLM")
	assert.Contains(t, out, "invested 100.00 XLM")
	assert.Contains(t, out, "+0.00 XLM")
}

func TestPrintAccount_ShortensKey(t *testing.T) {
	var buf bytes.Buffer
	NewConsoleWriter(&buf).PrintAccount(ports.Account{
		ID:      "GCKFBEIYTKP74Q7CGP4IBQPXK74BNJMU3SCJJPZPPX3QFHFQHBXU5TZY",
		Balance: 1000,
	})

	out := buf.String()
	assert.Contains(t, out, "GCKFBE")
	assert.Contains(t, out, "5TZY")
	assert.NotContains(t, out, "GCKFBEIYTKP74Q7CGP4IBQPXK74")
	assert.Contains(t, out, "1000.00 XLM")
}

func TestEndsLabel(t *testing.T) {
	assert.Equal(t, "-", endsLabel(domain.Market{}))
	assert.Equal(t, "ended", endsLabel(domain.Market{ResolutionDate: time.Now().Add(-time.Hour)}))

	soon := endsLabel(domain.Market{ResolutionDate: time.Now().Add(10*time.Hour + time.Minute)})
	assert.Equal(t, "10h", soon)

	far := endsLabel(domain.Market{ResolutionDate: time.Now().Add(10*24*time.Hour + time.Hour)})
	assert.Equal(t, "10d", far)
}
