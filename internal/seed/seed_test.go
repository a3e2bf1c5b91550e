package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandrodnm/stellarcast/internal/domain"
)

func TestLoad_EmptyPathUsesBuiltin(t *testing.T) {
	markets, err := Load("")
	require.NoError(t, err)
	require.NotEmpty(t, markets)

	for _, m := range markets {
		assert.Equal(t, domain.StatusActive, m.Status)
		assert.InDelta(t, 1.0, m.YesPrice+m.NoPrice, 0.0001, "quotes sum to 1 at seed time")
		assert.True(t, m.Category.Valid())
		assert.True(t, m.ResolutionDate.After(m.CreatedAt))
	}
}

func TestLoad_ParsesCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "markets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
markets:
  - id: "1"
    question: "Will it ship?"
    description: "A test market."
    category: tech
    created_at: 2026-01-01T00:00:00Z
    resolution_date: 2026-06-01T00:00:00Z
    total_volume: 300
    yes_price: 0.7
    yes_shares: 120
    no_shares: 80
    tags: [launch]
  - id: "2"
    question: "Default quote?"
    category: crypto
`), 0o644))

	markets, err := Load(path)
	require.NoError(t, err)
	require.Len(t, markets, 2)

	first := markets[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, domain.CategoryTech, first.Category)
	assert.Equal(t, 0.7, first.YesPrice)
	assert.InDelta(t, 0.3, first.NoPrice, 0.0001)
	assert.Equal(t, []string{"launch"}, first.Tags)

	// Omitted price seeds the even quote.
	assert.Equal(t, 0.5, markets[1].YesPrice)
	assert.Equal(t, 0.5, markets[1].NoPrice)
}

func TestLoad_RejectsBadEntries(t *testing.T) {
	cases := map[string]string{
		"missing id":       "markets:\n  - question: q\n    category: tech\n",
		"missing question": "markets:\n  - id: \"1\"\n    category: tech\n",
		"bad category":     "markets:\n  - id: \"1\"\n    question: q\n    category: weather\n",
		"bad price":        "markets:\n  - id: \"1\"\n    question: q\n    category: tech\n    yes_price: 1.5\n",
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "markets.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
