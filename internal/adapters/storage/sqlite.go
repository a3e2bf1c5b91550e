package storage

// sqlite.go — SQLite-backed store (pure Go driver, no CGo).
//
// The default DSN is ":memory:", which keeps the venue's no-persistence
// contract while still exercising the same SQL paths a file-backed store
// would use. Pointing the DSN at a file is an operator choice; nothing in
// the session depends on state surviving a restart.

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alejandrodnm/stellarcast/internal/domain"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS markets (
    id              TEXT PRIMARY KEY,
    seq             INTEGER NOT NULL,
    question        TEXT NOT NULL,
    description     TEXT NOT NULL DEFAULT '',
    category        TEXT NOT NULL,
    creator         TEXT NOT NULL DEFAULT '',
    created_at      DATETIME NOT NULL,
    resolution_date DATETIME,
    total_volume    REAL NOT NULL DEFAULT 0,
    yes_price       REAL NOT NULL DEFAULT 0.5,
    no_price        REAL NOT NULL DEFAULT 0.5,
    yes_shares      REAL NOT NULL DEFAULT 0,
    no_shares       REAL NOT NULL DEFAULT 0,
    status          TEXT NOT NULL DEFAULT 'active',
    tags            TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS positions (
    seq           INTEGER PRIMARY KEY AUTOINCREMENT,
    id            TEXT NOT NULL UNIQUE,
    account_id    TEXT NOT NULL,
    market_id     TEXT NOT NULL,
    side          TEXT NOT NULL,
    shares        REAL NOT NULL,
    average_price REAL NOT NULL,
    current_value REAL NOT NULL,
    opened_at     DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_markets_seq       ON markets(seq);
CREATE INDEX IF NOT EXISTS idx_markets_category  ON markets(category);
CREATE INDEX IF NOT EXISTS idx_positions_account ON positions(account_id, seq);
`

// SQLite implements ports.MarketStore and ports.PositionStore on a
// SQLite database.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at the given DSN and applies
// the schema. An empty DSN means ":memory:".
func NewSQLite(dsn string) (*SQLite, error) {
	if dsn == "" {
		dsn = ":memory:"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage.NewSQLite: open %q: %w", dsn, err)
	}
	// SQLite is single-writer; one connection also keeps :memory:
	// databases from silently splitting per connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage.NewSQLite: apply schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Get returns the market with the given identifier.
func (s *SQLite) Get(ctx context.Context, id string) (domain.Market, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, question, description, category, creator, created_at,
		       resolution_date, total_volume, yes_price, no_price,
		       yes_shares, no_shares, status, tags
		FROM markets WHERE id = ?`, id)

	m, err := scanMarket(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Market{}, domain.ErrMarketNotFound
	}
	if err != nil {
		return domain.Market{}, fmt.Errorf("storage.Get %q: %w", id, err)
	}
	return m, nil
}

// List returns every market in insertion order.
func (s *SQLite) List(ctx context.Context) ([]domain.Market, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question, description, category, creator, created_at,
		       resolution_date, total_volume, yes_price, no_price,
		       yes_shares, no_shares, status, tags
		FROM markets ORDER BY seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("storage.List: %w", err)
	}
	defer rows.Close()

	var out []domain.Market
	for rows.Next() {
		m, err := scanMarket(rows)
		if err != nil {
			return nil, fmt.Errorf("storage.List: scan: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Add inserts a new market.
func (s *SQLite) Add(ctx context.Context, m domain.Market) error {
	seq, err := s.Count(ctx)
	if err != nil {
		return fmt.Errorf("storage.Add: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO markets
			(id, seq, question, description, category, creator, created_at,
			 resolution_date, total_volume, yes_price, no_price,
			 yes_shares, no_shares, status, tags)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, seq+1, m.Question, m.Description, string(m.Category), m.Creator,
		m.CreatedAt.UTC(), m.ResolutionDate.UTC(), m.TotalVolume,
		m.YesPrice, m.NoPrice, m.YesShares, m.NoShares,
		string(m.Status), strings.Join(m.Tags, ","),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return domain.ErrDuplicateMarket
		}
		return fmt.Errorf("storage.Add %q: %w", m.ID, err)
	}
	return nil
}

// Update replaces the stored record for m.ID.
func (s *SQLite) Update(ctx context.Context, m domain.Market) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE markets SET
			question = ?, description = ?, category = ?, creator = ?,
			created_at = ?, resolution_date = ?, total_volume = ?,
			yes_price = ?, no_price = ?, yes_shares = ?, no_shares = ?,
			status = ?, tags = ?
		WHERE id = ?`,
		m.Question, m.Description, string(m.Category), m.Creator,
		m.CreatedAt.UTC(), m.ResolutionDate.UTC(), m.TotalVolume,
		m.YesPrice, m.NoPrice, m.YesShares, m.NoShares,
		string(m.Status), strings.Join(m.Tags, ","), m.ID,
	)
	if err != nil {
		return fmt.Errorf("storage.Update %q: %w", m.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage.Update %q: %w", m.ID, err)
	}
	if n == 0 {
		return domain.ErrMarketNotFound
	}
	return nil
}

// NextID issues the next identifier from the highest stored seq, which is
// a monotonic counter because markets are never deleted.
func (s *SQLite) NextID(ctx context.Context) (string, error) {
	var maxSeq sql.NullInt64
	if err := s.db.QueryRowContext(ctx,
		`SELECT MAX(seq) FROM markets`).Scan(&maxSeq); err != nil {
		return "", fmt.Errorf("storage.NextID: %w", err)
	}
	return strconv.FormatInt(maxSeq.Int64+1, 10), nil
}

// Count returns the number of stored markets.
func (s *SQLite) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM markets`).Scan(&n); err != nil {
		return 0, fmt.Errorf("storage.Count: %w", err)
	}
	return n, nil
}

// Append records an opened position for the account.
func (s *SQLite) Append(ctx context.Context, accountID string, p domain.Position) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO positions
			(id, account_id, market_id, side, shares, average_price,
			 current_value, opened_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, accountID, p.MarketID, string(p.Side), p.Shares,
		p.AveragePrice, p.CurrentValue, p.OpenedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("storage.Append %q: %w", p.ID, err)
	}
	return nil
}

// ListByAccount returns the account's positions oldest first.
func (s *SQLite) ListByAccount(ctx context.Context, accountID string) ([]domain.Position, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, market_id, side, shares, average_price, current_value, opened_at
		FROM positions WHERE account_id = ? ORDER BY seq ASC`, accountID)
	if err != nil {
		return nil, fmt.Errorf("storage.ListByAccount: %w", err)
	}
	defer rows.Close()

	var out []domain.Position
	for rows.Next() {
		var p domain.Position
		var side string
		var openedAt time.Time
		if err := rows.Scan(&p.ID, &p.MarketID, &side, &p.Shares,
			&p.AveragePrice, &p.CurrentValue, &openedAt); err != nil {
			return nil, fmt.Errorf("storage.ListByAccount: scan: %w", err)
		}
		p.Side = domain.Side(side)
		p.OpenedAt = openedAt
		out = append(out, p)
	}
	return out, rows.Err()
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// rowScanner lets scanMarket work for both QueryRow and Query results.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMarket(row rowScanner) (domain.Market, error) {
	var m domain.Market
	var category, status, tags string
	var createdAt, resolutionDate time.Time

	err := row.Scan(&m.ID, &m.Question, &m.Description, &category, &m.Creator,
		&createdAt, &resolutionDate, &m.TotalVolume, &m.YesPrice, &m.NoPrice,
		&m.YesShares, &m.NoShares, &status, &tags)
	if err != nil {
		return domain.Market{}, err
	}

	m.Category = domain.Category(category)
	m.Status = domain.Status(status)
	m.CreatedAt = createdAt
	m.ResolutionDate = resolutionDate
	if tags != "" {
		m.Tags = strings.Split(tags, ",")
	}
	return m, nil
}
