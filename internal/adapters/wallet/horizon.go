package wallet

// horizon.go — simulated Stellar wallet.
//
// No Horizon server is ever contacted: Connect hands out a fixed funded
// test account and Pay debits the in-memory balance after a simulated
// round-trip. The shape (rate limiter, latency, transaction hashes)
// mirrors a real Horizon client so the session code would not change if
// one were plugged in.

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/alejandrodnm/stellarcast/internal/domain"
	"github.com/alejandrodnm/stellarcast/internal/ports"
)

const (
	// The demo account every session connects as.
	defaultAccountID       = "GCKFBEIYTKP74Q7CGP4IBQPXK74BNJMU3SCJJPZPPX3QFHFQHBXU5TZY"
	defaultStartingBalance = 1000.0 // XLM

	defaultLatency = 300 * time.Millisecond

	// Horizon allows ~1 tx per ledger close per account; one payment
	// per second with a small burst is a fair simulation.
	paymentsPerSec = 1
	paymentBurst   = 3
)

// Config controls the simulated wallet.
type Config struct {
	AccountID       string
	StartingBalance float64
	Latency         time.Duration // simulated network round-trip
	FailConnect     bool          // force Connect to fail (tests, demos)
}

// Horizon is the simulated wallet collaborator.
type Horizon struct {
	cfg     Config
	limiter *rate.Limiter

	mu        sync.Mutex
	connected bool
	account   ports.Account
}

// NewHorizon creates a simulated wallet. Zero config fields fall back to
// the demo account with 1000 XLM and a 300ms round-trip.
func NewHorizon(cfg Config) *Horizon {
	if cfg.AccountID == "" {
		cfg.AccountID = defaultAccountID
	}
	if cfg.StartingBalance <= 0 {
		cfg.StartingBalance = defaultStartingBalance
	}
	// Zero means default; negative disables the simulated round-trip.
	if cfg.Latency == 0 {
		cfg.Latency = defaultLatency
	}
	return &Horizon{
		cfg:     cfg,
		limiter: rate.NewLimiter(paymentsPerSec, paymentBurst),
	}
}

// Connect performs the simulated handshake and funds the demo account.
// Reconnecting an already connected wallet returns the current account
// without resetting the balance.
func (h *Horizon) Connect(ctx context.Context) (ports.Account, error) {
	if err := h.roundTrip(ctx); err != nil {
		return ports.Account{}, err
	}
	if h.cfg.FailConnect {
		return ports.Account{}, domain.ErrConnectionFailed
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.connected {
		h.connected = true
		h.account = ports.Account{ID: h.cfg.AccountID, Balance: h.cfg.StartingBalance}
	}
	return h.account, nil
}

// Disconnect drops the connection and forgets the account.
func (h *Horizon) Disconnect() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connected = false
	h.account = ports.Account{}
}

// Connected reports whether a wallet is currently connected.
func (h *Horizon) Connected() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.connected
}

// Account returns the connected account's current state.
func (h *Horizon) Account() (ports.Account, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.account, h.connected
}

// Pay sends amount XLM to destination after the simulated round-trip and
// returns the mock transaction hash. The balance check and the debit
// happen under one lock, so concurrent payments cannot overspend.
func (h *Horizon) Pay(ctx context.Context, destination string, amount float64) (string, error) {
	if amount <= 0 {
		return "", domain.ErrInvalidAmount
	}
	if err := h.limiter.Wait(ctx); err != nil {
		return "", err
	}
	if err := h.roundTrip(ctx); err != nil {
		return "", err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.connected {
		return "", domain.ErrWalletNotConnected
	}
	if amount > h.account.Balance {
		return "", domain.ErrInsufficientBalance
	}
	h.account.Balance -= amount
	return mockTxHash(), nil
}

// roundTrip blocks for the configured latency or until ctx is done.
func (h *Horizon) roundTrip(ctx context.Context) error {
	if h.cfg.Latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(h.cfg.Latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// mockTxHash fabricates a 64-char hex-looking transaction hash.
func mockTxHash() string {
	return strings.ReplaceAll(uuid.New().String()+uuid.New().String(), "-", "")
}
