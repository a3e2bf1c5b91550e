package session

// Package session is the application engine behind the console view: it
// owns the in-process contract (place prediction, create market, connect
// wallet, portfolio, listings) and wires the market store to the wallet
// collaborator. All state belongs to one user session; there is no
// cross-session sharing.

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/alejandrodnm/stellarcast/internal/domain"
	"github.com/alejandrodnm/stellarcast/internal/ports"
)

// treasuryAccount receives trade payments. Purely cosmetic in the
// simulation, but payments need a destination like on the real network.
const treasuryAccount = "GDSTELLARCASTTREASURYXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXX"

// Session drives one user's simulated trading session.
type Session struct {
	markets   ports.MarketStore
	positions ports.PositionStore
	wallet    ports.Wallet
	now       func() time.Time

	marketsCreated int
	tradedVolume   float64
}

// New creates a session over the given stores and wallet.
func New(markets ports.MarketStore, positions ports.PositionStore, wallet ports.Wallet) *Session {
	return &Session{
		markets:   markets,
		positions: positions,
		wallet:    wallet,
		now:       time.Now,
	}
}

// ConnectWallet connects the wallet collaborator and returns the funded
// account.
func (s *Session) ConnectWallet(ctx context.Context) (ports.Account, error) {
	acc, err := s.wallet.Connect(ctx)
	if err != nil {
		return ports.Account{}, fmt.Errorf("session.ConnectWallet: %w", err)
	}
	slog.Info("wallet connected", "account", acc.ID, "balance", acc.Balance)
	return acc, nil
}

// Disconnect drops the wallet connection. Positions stay in the store and
// reappear on reconnect, matching the single-account simulation.
func (s *Session) Disconnect() {
	s.wallet.Disconnect()
	slog.Info("wallet disconnected")
}

// Balance returns the connected wallet's spendable XLM.
func (s *Session) Balance() (float64, error) {
	acc, ok := s.wallet.Account()
	if !ok {
		return 0, domain.ErrWalletNotConnected
	}
	return acc.Balance, nil
}

// PlacePrediction buys `amount` XLM of the chosen side at the market's
// current quote. The wallet debit and the position open succeed or fail
// together: a failed payment leaves both the market and the portfolio
// untouched.
func (s *Session) PlacePrediction(ctx context.Context, marketID string, side domain.Side, amount float64) (domain.Position, error) {
	fail := func(err error) (domain.Position, error) {
		return domain.Position{}, fmt.Errorf("session.PlacePrediction: %w", err)
	}

	if amount <= 0 {
		return fail(domain.ErrInvalidAmount)
	}
	acc, ok := s.wallet.Account()
	if !ok {
		return fail(domain.ErrWalletNotConnected)
	}
	if amount > acc.Balance {
		return fail(domain.ErrInsufficientBalance)
	}

	market, err := s.markets.Get(ctx, marketID)
	if err != nil {
		return fail(err)
	}

	updated, err := domain.ApplyTrade(market, side, amount)
	if err != nil {
		return fail(err)
	}

	// Debit first: if the payment fails nothing has been written yet.
	txHash, err := s.wallet.Pay(ctx, treasuryAccount, amount)
	if err != nil {
		return fail(err)
	}

	if err := s.markets.Update(ctx, updated); err != nil {
		return fail(err)
	}

	pos, err := domain.OpenPosition(uuid.New().String(), marketID, side,
		amount, market.PriceFor(side), s.now())
	if err != nil {
		return fail(err)
	}
	if err := s.positions.Append(ctx, acc.ID, pos); err != nil {
		return fail(err)
	}

	s.tradedVolume += amount
	slog.Info("prediction placed",
		"market", marketID,
		"side", side,
		"amount", amount,
		"shares", pos.Shares,
		"tx", txHash,
	)
	return pos, nil
}

// CreateMarket validates the draft and adds a fresh market under the next
// identifier, attributed to the connected account.
func (s *Session) CreateMarket(ctx context.Context, draft domain.MarketDraft) (domain.Market, error) {
	fail := func(err error) (domain.Market, error) {
		return domain.Market{}, fmt.Errorf("session.CreateMarket: %w", err)
	}

	acc, ok := s.wallet.Account()
	if !ok {
		return fail(domain.ErrWalletNotConnected)
	}

	now := s.now()
	if err := draft.Validate(now); err != nil {
		return fail(err)
	}

	id, err := s.markets.NextID(ctx)
	if err != nil {
		return fail(err)
	}

	market := domain.NewMarket(id, draft, acc.ID, now)
	if err := s.markets.Add(ctx, market); err != nil {
		return fail(err)
	}

	s.marketsCreated++
	slog.Info("market created", "id", id, "category", market.Category, "question", market.Question)
	return market, nil
}

// Markets returns the stored markets filtered by category and query,
// ranked by volume descending.
func (s *Session) Markets(ctx context.Context, category domain.Category, query string) ([]domain.Market, error) {
	all, err := s.markets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("session.Markets: %w", err)
	}
	return domain.FilterMarkets(all, category, query), nil
}

// Portfolio returns the connected account's positions marked to the live
// quotes, plus the aggregate summary. Valuation happens on read — the
// stored current value is never trusted after open.
func (s *Session) Portfolio(ctx context.Context) ([]domain.Position, domain.PortfolioSummary, error) {
	acc, ok := s.wallet.Account()
	if !ok {
		return nil, domain.PortfolioSummary{}, domain.ErrWalletNotConnected
	}

	positions, err := s.positions.ListByAccount(ctx, acc.ID)
	if err != nil {
		return nil, domain.PortfolioSummary{}, fmt.Errorf("session.Portfolio: %w", err)
	}

	for i, p := range positions {
		market, err := s.markets.Get(ctx, p.MarketID)
		if err != nil {
			return nil, domain.PortfolioSummary{}, fmt.Errorf("session.Portfolio: position %s: %w", p.ID, err)
		}
		positions[i] = p.MarkToMarket(market)
	}

	return positions, domain.AggregatePortfolio(positions), nil
}

// User assembles the account view: balance, positions, counters.
func (s *Session) User(ctx context.Context) (domain.User, error) {
	acc, ok := s.wallet.Account()
	if !ok {
		return domain.User{}, domain.ErrWalletNotConnected
	}
	positions, _, err := s.Portfolio(ctx)
	if err != nil {
		return domain.User{}, err
	}
	return domain.User{
		AccountID:      acc.ID,
		Balance:        acc.Balance,
		Positions:      positions,
		MarketsCreated: s.marketsCreated,
		TotalVolume:    s.tradedVolume,
	}, nil
}

// Stats is the header-bar summary of the whole venue.
type Stats struct {
	Markets     int
	TotalVolume float64
	Positions   int
}

// Stats sums volume across every market plus the session's position count.
func (s *Session) Stats(ctx context.Context) (Stats, error) {
	all, err := s.markets.List(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("session.Stats: %w", err)
	}

	st := Stats{Markets: len(all)}
	for _, m := range all {
		st.TotalVolume += m.TotalVolume
	}

	if acc, ok := s.wallet.Account(); ok {
		positions, err := s.positions.ListByAccount(ctx, acc.ID)
		if err != nil {
			return Stats{}, fmt.Errorf("session.Stats: %w", err)
		}
		st.Positions = len(positions)
	}
	return st, nil
}
