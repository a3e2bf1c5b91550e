package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func filterFixtures() []Market {
	return []Market{
		{ID: "1", Question: "Will Bitcoin hit $200k?", Description: "BTC price market", Category: CategoryCrypto, TotalVolume: 500, Tags: []string{"bitcoin", "btc"}},
		{ID: "2", Question: "Will the Lakers win the finals?", Category: CategorySports, TotalVolume: 900, Tags: []string{"nba"}},
		{ID: "3", Question: "Will ETH flip BTC?", Description: "The flippening", Category: CategoryCrypto, TotalVolume: 900, Tags: []string{"ethereum"}},
		{ID: "4", Question: "Will a new AI model pass the bar exam?", Category: CategoryTech, TotalVolume: 120, Tags: []string{"ai"}},
	}
}

func marketIDs(markets []Market) []string {
	ids := make([]string, len(markets))
	for i, m := range markets {
		ids[i] = m.ID
	}
	return ids
}

func TestFilterMarkets_NoFilterSortsByVolume(t *testing.T) {
	got := FilterMarkets(filterFixtures(), CategoryAll, "")
	// 2 and 3 tie at 900 and keep their original relative order.
	assert.Equal(t, []string{"2", "3", "1", "4"}, marketIDs(got))
}

func TestFilterMarkets_Idempotent(t *testing.T) {
	once := FilterMarkets(filterFixtures(), CategoryAll, "")
	twice := FilterMarkets(once, CategoryAll, "")
	assert.Equal(t, marketIDs(once), marketIDs(twice))
}

func TestFilterMarkets_Category(t *testing.T) {
	got := FilterMarkets(filterFixtures(), CategoryCrypto, "")
	assert.Equal(t, []string{"3", "1"}, marketIDs(got))
}

func TestFilterMarkets_QueryMatchesQuestionDescriptionTags(t *testing.T) {
	// "bitcoin" appears in 1's question and tags, nowhere in 2 or 4;
	// 3 only mentions BTC, not bitcoin.
	got := FilterMarkets(filterFixtures(), CategoryCrypto, "BITCOIN")
	assert.Equal(t, []string{"1"}, marketIDs(got))
}

func TestFilterMarkets_QueryMatchesTagOnly(t *testing.T) {
	got := FilterMarkets(filterFixtures(), CategoryAll, "nba")
	assert.Equal(t, []string{"2"}, marketIDs(got))
}

func TestFilterMarkets_CategoryAndQueryCombine(t *testing.T) {
	// Query alone matches 1 and 3 ("btc"), category sports matches neither.
	got := FilterMarkets(filterFixtures(), CategorySports, "btc")
	assert.Empty(t, got)
}

func TestFilterMarkets_EmptyInput(t *testing.T) {
	assert.Empty(t, FilterMarkets(nil, CategoryAll, ""))
}
