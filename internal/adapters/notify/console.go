package notify

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/alejandrodnm/stellarcast/internal/domain"
	"github.com/alejandrodnm/stellarcast/internal/ports"
)

// Console renders session output to a terminal.
type Console struct {
	out io.Writer
}

// NewConsole creates a renderer that writes to stdout.
func NewConsole() *Console {
	return &Console{out: os.Stdout}
}

// NewConsoleWriter creates a renderer for tests.
func NewConsoleWriter(w io.Writer) *Console {
	return &Console{out: w}
}

// PrintMarkets renders the filtered market listing, volume-ranked.
func (c *Console) PrintMarkets(markets []domain.Market) {
	if len(markets) == 0 {
		fmt.Fprintln(c.out, "no markets found — try a different category or search")
		return
	}

	table := tablewriter.NewWriter(c.out)
	table.Header("ID", "Cat", "Market", "Yes", "No", "Volume", "Ends")

	for _, m := range markets {
		table.Append(
			m.ID,
			string(m.Category),
			domain.TruncateQuestion(m.Question, m.ID, 42),
			fmt.Sprintf("%.2f", m.YesPrice),
			fmt.Sprintf("%.2f", m.NoPrice),
			fmt.Sprintf("%.0f XLM", m.TotalVolume),
			endsLabel(m),
		)
	}
	table.Render()
}

// PrintMarketDetail renders one market in full.
func (c *Console) PrintMarketDetail(m domain.Market) {
	fmt.Fprintf(c.out, "\n  [%s] %s\n", m.ID, m.Question)
	if m.Description != "" {
		fmt.Fprintf(c.out, "  %s\n", m.Description)
	}
	fmt.Fprintf(c.out, "  category: %s   status: %s   created by %s\n",
		m.Category, m.Status, shortAccount(m.Creator))
	fmt.Fprintf(c.out, "  YES %.2f (%.0f shares)   NO %.2f (%.0f shares)   volume %.0f XLM\n",
		m.YesPrice, m.YesShares, m.NoPrice, m.NoShares, m.TotalVolume)
	if len(m.Tags) > 0 {
		fmt.Fprintf(c.out, "  tags: %s\n", strings.Join(m.Tags, ", "))
	}
	if !m.ResolutionDate.IsZero() {
		fmt.Fprintf(c.out, "  resolves %s\n", m.ResolutionDate.Format("2006-01-02"))
	}
}

// PrintPosition confirms a freshly opened position.
func (c *Console) PrintPosition(p domain.Position, m domain.Market) {
	payout := p.Shares // each share redeems for 1 XLM on a win
	fmt.Fprintf(c.out, "placed %.2f XLM on %s @ %.2f → %.2f shares (pays %.2f XLM if %s wins)\n",
		p.CostBasis(), strings.ToUpper(string(p.Side)), p.AveragePrice, p.Shares, payout, p.Side)
	fmt.Fprintf(c.out, "  market %s: %s\n", m.ID, domain.TruncateQuestion(m.Question, m.ID, 60))
}

// PrintPortfolio renders the positions table plus the aggregate summary.
func (c *Console) PrintPortfolio(positions []domain.Position, summary domain.PortfolioSummary) {
	if len(positions) == 0 {
		fmt.Fprintln(c.out, "no open positions — place a prediction first")
		return
	}

	table := tablewriter.NewWriter(c.out)
	table.Header("Market", "Side", "Shares", "Avg", "Cost", "Value", "Return")

	for _, p := range positions {
		ret := p.CurrentValue - p.CostBasis()
		table.Append(
			p.MarketID,
			strings.ToUpper(string(p.Side)),
			fmt.Sprintf("%.2f", p.Shares),
			fmt.Sprintf("%.2f", p.AveragePrice),
			fmt.Sprintf("%.2f", p.CostBasis()),
			fmt.Sprintf("%.2f", p.CurrentValue),
			fmt.Sprintf("%+.2f", ret),
		)
	}
	table.Render()

	fmt.Fprintf(c.out, "  value %.2f XLM | invested %.2f XLM | return %+.2f XLM (%+.2f%%)\n",
		summary.TotalValue, summary.TotalInvested, summary.TotalReturn, summary.ReturnPct)
}

// PrintAccount renders the connected account line.
func (c *Console) PrintAccount(acc ports.Account) {
	fmt.Fprintf(c.out, "connected as %s — balance %.2f XLM\n", shortAccount(acc.ID), acc.Balance)
}

// StatsInput is the venue-wide header summary.
type StatsInput struct {
	Markets     int
	TotalVolume float64
	Positions   int
}

// PrintStats renders the venue summary line.
func (c *Console) PrintStats(in StatsInput) {
	fmt.Fprintf(c.out, "%d markets | %.0f XLM total volume | %d open positions\n",
		in.Markets, in.TotalVolume, in.Positions)
}

// PrintError surfaces a command failure inline; nothing is fatal.
func (c *Console) PrintError(err error) {
	fmt.Fprintf(c.out, "error: %v\n", err)
}

// endsLabel formats the time to resolution for the listing.
func endsLabel(m domain.Market) string {
	if m.ResolutionDate.IsZero() {
		return "-"
	}
	h := m.HoursToResolution()
	if h == 0 {
		return "ended"
	}
	if h < 48 {
		return fmt.Sprintf("%.0fh", h)
	}
	return fmt.Sprintf("%.0fd", h/24)
}

// shortAccount compresses a Stellar public key for display.
func shortAccount(id string) string {
	if len(id) <= 12 {
		return id
	}
	return id[:6] + "…" + id[len(id)-4:]
}
