package ports

import "context"

// Account is what a connected wallet exposes to the session.
type Account struct {
	ID      string // Stellar public key
	Balance float64
}

// Wallet is the external wallet collaborator. The simulator's
// implementation fakes Horizon round-trips; the session only ever reads
// the account and asks for payments.
type Wallet interface {
	// Connect establishes the wallet connection and returns the funded
	// account. Returns domain.ErrConnectionFailed when the (simulated)
	// handshake fails.
	Connect(ctx context.Context) (Account, error)

	// Disconnect drops the connection and forgets the account.
	Disconnect()

	// Connected reports whether a wallet is currently connected.
	Connected() bool

	// Account returns the connected account's current state.
	Account() (Account, bool)

	// Pay sends amount XLM to destination and returns the transaction
	// hash. The balance is debited before Pay returns; a failed payment
	// debits nothing.
	Pay(ctx context.Context, destination string, amount float64) (string, error)
}
