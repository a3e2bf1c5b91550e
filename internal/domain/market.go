package domain

import (
	"strings"
	"time"
)

// Side is one of the two outcomes of a binary market.
type Side string

const (
	SideYes Side = "yes"
	SideNo  Side = "no"
)

// ParseSide normalizes user input ("yes", "YES", "No"...) into a Side.
func ParseSide(s string) (Side, error) {
	switch Side(strings.ToLower(strings.TrimSpace(s))) {
	case SideYes:
		return SideYes, nil
	case SideNo:
		return SideNo, nil
	}
	return "", ErrInvalidSide
}

// Category classifies a market for filtering and display.
type Category string

const (
	CategoryCrypto        Category = "crypto"
	CategorySports        Category = "sports"
	CategoryTech          Category = "tech"
	CategoryPolitics      Category = "politics"
	CategoryEntertainment Category = "entertainment"

	// CategoryAll is not a real category — it disables category filtering.
	CategoryAll Category = "all"
)

// Categories lists every real category, in display order.
func Categories() []Category {
	return []Category{
		CategoryCrypto, CategorySports, CategoryTech,
		CategoryPolitics, CategoryEntertainment,
	}
}

// Valid reports whether c names a real category.
func (c Category) Valid() bool {
	switch c {
	case CategoryCrypto, CategorySports, CategoryTech, CategoryPolitics, CategoryEntertainment:
		return true
	}
	return false
}

// Status is the lifecycle state of a market. Nothing in the simulator
// resolves or closes markets; the field exists so listings carry the
// state a real venue would have.
type Status string

const (
	StatusActive   Status = "active"
	StatusResolved Status = "resolved"
	StatusClosed   Status = "closed"
)

// Market is a binary yes/no prediction market.
//
// YesPrice and NoPrice are seeded to sum to 1 and are never repriced after
// a trade: the share pools grow but the quote stays where it was seeded.
// That is the venue's documented behavior, not an accident — there is no
// market-maker curve here.
type Market struct {
	ID             string
	Question       string
	Description    string
	Category       Category
	Creator        string // account identifier of the creating wallet
	CreatedAt      time.Time
	ResolutionDate time.Time
	TotalVolume    float64 // cumulative XLM traded, both sides
	YesPrice       float64
	NoPrice        float64
	YesShares      float64
	NoShares       float64
	Status         Status
	Tags           []string
}

// PriceFor returns the quoted price for the given side.
func (m Market) PriceFor(side Side) float64 {
	if side == SideYes {
		return m.YesPrice
	}
	return m.NoPrice
}

// SharesFor returns the share pool for the given side.
func (m Market) SharesFor(side Side) float64 {
	if side == SideYes {
		return m.YesShares
	}
	return m.NoShares
}

// HoursToResolution returns the hours until the market resolves,
// or 0 if the resolution date is unset or already past.
func (m Market) HoursToResolution() float64 {
	if m.ResolutionDate.IsZero() {
		return 0
	}
	h := time.Until(m.ResolutionDate).Hours()
	if h < 0 {
		return 0
	}
	return h
}

// TruncateQuestion returns the question cut to maxLen characters for
// compact console output. Falls back to the market ID when empty.
func TruncateQuestion(question, id string, maxLen int) string {
	q := question
	if q == "" {
		q = "market " + id
	}
	if len(q) > maxLen {
		q = q[:maxLen-3] + "..."
	}
	return q
}

// MarketDraft is the user-supplied part of a new market. Everything else
// (identifier, seed prices, pools, status) is assigned at creation.
type MarketDraft struct {
	Question       string
	Description    string
	Category       Category
	ResolutionDate time.Time
	Tags           []string
}

// Validate checks the draft before a market is created from it.
func (d MarketDraft) Validate(now time.Time) error {
	if strings.TrimSpace(d.Question) == "" {
		return ErrEmptyQuestion
	}
	if !d.Category.Valid() {
		return ErrUnknownCategory
	}
	if !d.ResolutionDate.After(now) {
		return ErrResolutionInPast
	}
	return nil
}

// NewMarket builds a Market from a validated draft. Every market starts
// active with an even 0.50/0.50 quote and empty pools.
func NewMarket(id string, d MarketDraft, creator string, now time.Time) Market {
	return Market{
		ID:             id,
		Question:       d.Question,
		Description:    d.Description,
		Category:       d.Category,
		Creator:        creator,
		CreatedAt:      now,
		ResolutionDate: d.ResolutionDate,
		YesPrice:       0.5,
		NoPrice:        0.5,
		Status:         StatusActive,
		Tags:           d.Tags,
	}
}
