package seed

// Package seed loads the demo market catalog the session starts with.
// The catalog is plain YAML so demos can swap it without recompiling;
// with no file configured the built-in catalog is used.

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/alejandrodnm/stellarcast/internal/domain"
)

type catalog struct {
	Markets []entry `yaml:"markets"`
}

type entry struct {
	ID             string    `yaml:"id"`
	Question       string    `yaml:"question"`
	Description    string    `yaml:"description"`
	Category       string    `yaml:"category"`
	Creator        string    `yaml:"creator"`
	CreatedAt      time.Time `yaml:"created_at"`
	ResolutionDate time.Time `yaml:"resolution_date"`
	TotalVolume    float64   `yaml:"total_volume"`
	YesPrice       float64   `yaml:"yes_price"`
	YesShares      float64   `yaml:"yes_shares"`
	NoShares       float64   `yaml:"no_shares"`
	Tags           []string  `yaml:"tags"`
}

// Load reads the catalog at path. An empty path yields the built-in
// catalog.
func Load(path string) ([]domain.Market, error) {
	if path == "" {
		return Builtin(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed.Load: read %q: %w", path, err)
	}

	var cat catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("seed.Load: parse YAML: %w", err)
	}

	markets := make([]domain.Market, 0, len(cat.Markets))
	for i, e := range cat.Markets {
		m, err := e.toMarket()
		if err != nil {
			return nil, fmt.Errorf("seed.Load: market %d: %w", i, err)
		}
		markets = append(markets, m)
	}
	return markets, nil
}

func (e entry) toMarket() (domain.Market, error) {
	if e.ID == "" {
		return domain.Market{}, fmt.Errorf("missing id")
	}
	if e.Question == "" {
		return domain.Market{}, fmt.Errorf("market %s: %w", e.ID, domain.ErrEmptyQuestion)
	}
	cat := domain.Category(e.Category)
	if !cat.Valid() {
		return domain.Market{}, fmt.Errorf("market %s: %w (%q)", e.ID, domain.ErrUnknownCategory, e.Category)
	}

	yes := e.YesPrice
	if yes == 0 {
		yes = 0.5
	}
	if yes <= 0 || yes >= 1 {
		return domain.Market{}, fmt.Errorf("market %s: %w (%v)", e.ID, domain.ErrInvalidPrice, yes)
	}

	return domain.Market{
		ID:             e.ID,
		Question:       e.Question,
		Description:    e.Description,
		Category:       cat,
		Creator:        e.Creator,
		CreatedAt:      e.CreatedAt,
		ResolutionDate: e.ResolutionDate,
		TotalVolume:    e.TotalVolume,
		YesPrice:       yes,
		NoPrice:        1 - yes, // the quote pair always sums to 1 at seed time
		YesShares:      e.YesShares,
		NoShares:       e.NoShares,
		Status:         domain.StatusActive,
		Tags:           e.Tags,
	}, nil
}

// Builtin returns the default demo catalog.
func Builtin() []domain.Market {
	date := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}
	creator := "GDEMOCREATORB2C3D4E5F6G7H8I9J0K1L2M3N4O5P6Q7R8S9T0U1V2W3"

	mk := func(id, q, desc string, cat domain.Category, created, resolves string,
		volume, yes, yesShares, noShares float64, tags ...string) domain.Market {
		return domain.Market{
			ID: id, Question: q, Description: desc, Category: cat,
			Creator: creator, CreatedAt: date(created), ResolutionDate: date(resolves),
			TotalVolume: volume, YesPrice: yes, NoPrice: 1 - yes,
			YesShares: yesShares, NoShares: noShares,
			Status: domain.StatusActive, Tags: tags,
		}
	}

	return []domain.Market{
		mk("1", "Will Bitcoin close above $200,000 this year?",
			"Resolves YES if BTC/USD closes above $200,000 on December 31.",
			domain.CategoryCrypto, "2026-01-05", "2026-12-31",
			15420, 0.62, 9800, 6200, "bitcoin", "price"),
		mk("2", "Will Stellar process 1B operations in a quarter?",
			"Any calendar quarter this year, per the public ledger stats.",
			domain.CategoryCrypto, "2026-01-12", "2026-12-31",
			8750, 0.41, 5300, 7100, "stellar", "xlm", "network"),
		mk("3", "Will the Lakers reach the NBA finals?",
			"Resolves YES if the Lakers play in the championship series.",
			domain.CategorySports, "2026-02-01", "2026-06-20",
			12300, 0.28, 3900, 10200, "nba", "basketball"),
		mk("4", "Will a foldable iPhone be announced this year?",
			"Official Apple announcement before December 31.",
			domain.CategoryTech, "2026-01-20", "2026-12-31",
			6100, 0.33, 2800, 5600, "apple", "hardware"),
		mk("5", "Will turnout exceed 60% in the midterm elections?",
			"National turnout as certified by election authorities.",
			domain.CategoryPolitics, "2026-02-10", "2026-11-15",
			9400, 0.55, 6000, 4900, "elections", "turnout"),
		mk("6", "Will the next Avatar film gross $2B worldwide?",
			"Per Box Office Mojo within 90 days of release.",
			domain.CategoryEntertainment, "2026-01-25", "2026-12-31",
			4200, 0.47, 2500, 2900, "movies", "box-office"),
	}
}
