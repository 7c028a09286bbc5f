package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"realestate-stats/models"
)

func guamWithJunkPrices(t *testing.T) *models.Collection {
	t.Helper()
	data := testHeader +
		row("100000", "3", "2", "Guam", "1000") +
		row("0", "3", "2", "Guam", "1000") +
		row("", "3", "2", "Guam", "1000") +
		row("abc", "3", "2", "Guam", "1000") +
		row("250000", "3", "2", "Guam", "1000")
	coll, _ := loadString(t, data, nil)
	return coll
}

func TestCheapestFiltersJunkPrices(t *testing.T) {
	q := NewQueryService(newTestLogger())
	got, err := q.Cheapest(guamWithJunkPrices(t), "Guam")

	require.NoError(t, err)
	require.Equal(t, []string{"100000", "250000"}, prices(got))
}

func TestDirtCheapAcrossAllRegions(t *testing.T) {
	coll := guamWithJunkPrices(t)
	q := NewQueryService(newTestLogger())

	got, err := q.DirtCheap(coll, "")
	require.NoError(t, err)
	require.Equal(t, "100000", got.Price())
}

func TestCheapestCapsAtFiveAndKeepsDuplicates(t *testing.T) {
	data := testHeader
	for _, p := range []string{"700", "300", "100", "100", "500", "200", "900"} {
		data += row(p, "1", "1", "Ohio", "10")
	}
	coll, _ := loadString(t, data, nil)

	got, err := NewQueryService(newTestLogger()).Cheapest(coll, "Ohio")
	require.NoError(t, err)
	require.Equal(t, []string{"100", "100", "200", "300", "500"}, prices(got))
}

func TestCheapestStableOnEqualPrices(t *testing.T) {
	data := testHeader + row("100", "1", "1", "Ohio", "10") + row("100.0", "2", "1", "Ohio", "10")
	coll, _ := loadString(t, data, nil)

	got, err := NewQueryService(newTestLogger()).Cheapest(coll, "Ohio")
	require.NoError(t, err)
	require.Equal(t, []string{"100", "100.0"}, prices(got))
}

func TestCheapestDropsUnparseableDottedPrices(t *testing.T) {
	data := testHeader + row("1.2.3", "1", "1", "Ohio", "10") + row(".", "1", "1", "Ohio", "10") + row("99.5", "1", "1", "Ohio", "10")
	coll, _ := loadString(t, data, nil)

	got, err := NewQueryService(newTestLogger()).Cheapest(coll, "Ohio")
	require.NoError(t, err)
	require.Equal(t, []string{"99.5"}, prices(got))
}

func TestPriciestDedupsByPriceString(t *testing.T) {
	data := testHeader
	for _, p := range []string{"900", "800", "900", "300", "700", "700", "600", "500", "400"} {
		data += row(p, "1", "1", "Ohio", "10")
	}
	coll, _ := loadString(t, data, nil)

	got, err := NewQueryService(newTestLogger()).Priciest(coll, "Ohio")
	require.NoError(t, err)
	require.Equal(t, []string{"900", "800", "700", "600", "500"}, prices(got))
	require.Equal(t, 2, got[0].Line, "first 900 listing in file order should win")
}

func TestPriciestTreatsDifferentStringsAsDistinct(t *testing.T) {
	data := testHeader + row("500", "1", "1", "Ohio", "10") + row("500.0", "1", "1", "Ohio", "10") + row("0", "1", "1", "Ohio", "10")
	coll, _ := loadString(t, data, nil)

	got, err := NewQueryService(newTestLogger()).Priciest(coll, "Ohio")
	require.NoError(t, err)
	require.Equal(t, []string{"500", "500.0"}, prices(got))
}

func TestRegionQueriesOnMissingRegion(t *testing.T) {
	coll := guamWithJunkPrices(t)
	q := NewQueryService(newTestLogger())

	cheap, err := q.Cheapest(coll, "Atlantis")
	require.Nil(t, cheap)
	require.ErrorIs(t, err, ErrMissingRegion)

	pricey, err := q.Priciest(coll, "Atlantis")
	require.Nil(t, pricey)
	require.ErrorIs(t, err, ErrMissingRegion)

	dirt, err := q.DirtCheap(coll, "Atlantis")
	require.Nil(t, dirt)
	require.ErrorIs(t, err, ErrMissingRegion)

	deal, err := q.BestDeal(coll, "Atlantis", 3, 2)
	require.Nil(t, deal)
	require.ErrorIs(t, err, ErrMissingRegion)

	var qe *QueryError
	require.True(t, errors.As(err, &qe))
	require.Equal(t, "best_deal", qe.Op)
	require.Equal(t, "No data found for 'Atlantis'", qe.Error())
}

func TestRegionQueriesWithNoQualifyingPrices(t *testing.T) {
	data := testHeader + row("0", "1", "1", "Ohio", "10") + row("n/a", "1", "1", "Ohio", "10")
	coll, _ := loadString(t, data, nil)
	q := NewQueryService(newTestLogger())

	_, err := q.Cheapest(coll, "Ohio")
	require.ErrorIs(t, err, ErrNoProperties)
	require.EqualError(t, err, "No properties found for 'Ohio'.")

	_, err = q.Priciest(coll, "Ohio")
	require.ErrorIs(t, err, ErrNoProperties)

	_, err = q.DirtCheap(coll, "")
	require.ErrorIs(t, err, ErrNoProperties)
	require.EqualError(t, err, "No properties found.")
}

func dealData() string {
	return testHeader +
		row("300000", "3", "3", "Virgin Islands", "1500") + // 200 per area
		row("200000", "3", "3", "Virgin Islands", "2000") + // 100 per area
		row("1000", "3", "2", "Virgin Islands", "1000") + // wrong baths
		row("50000", "3", "3", "Virgin Islands", "0") + // no size
		row("90000", "3", "3", "Virgin Islands", "") + // blank size
		row("100000", "3", "3", "Ohio", "2000") // 50 per area, other region
}

func TestBestDealPicksLowestRatioInRegion(t *testing.T) {
	coll, _ := loadString(t, dealData(), nil)

	deal, err := NewQueryService(newTestLogger()).BestDeal(coll, "Virgin Islands", 3, 3)
	require.NoError(t, err)
	require.Equal(t, "200000", deal.Listing.Price())
	require.Equal(t, 200000.0, deal.Price)
	require.Equal(t, 2000.0, deal.Area)
	require.Equal(t, 100.0, deal.PricePerArea)
}

func TestBestDealDoesNotMutateCollection(t *testing.T) {
	coll, _ := loadString(t, dealData(), nil)
	q := NewQueryService(newTestLogger())

	deal, err := q.BestDeal(coll, "Virgin Islands", 3, 3)
	require.NoError(t, err)
	require.NotSame(t, coll.Region(models.Territories, "Virgin Islands")[1], deal.Listing)

	for _, l := range coll.Properties("Virgin Islands") {
		require.NotContains(t, l.Price(), ".0")
	}

	cheap, err := q.Cheapest(coll, "Virgin Islands")
	require.NoError(t, err)
	require.Equal(t, []string{"1000", "50000", "90000", "200000", "300000"}, prices(cheap))
}

func TestBestDealNoMatch(t *testing.T) {
	coll, _ := loadString(t, dealData(), nil)

	deal, err := NewQueryService(newTestLogger()).BestDeal(coll, "Virgin Islands", 5, 4)
	require.Nil(t, deal)
	require.ErrorIs(t, err, ErrNoProperties)
	require.EqualError(t, err, "No properties found for 5 bedrooms and 4 bathrooms in 'Virgin Islands'")
}

func TestBudgetFriendlyScansEveryRegion(t *testing.T) {
	coll, _ := loadString(t, dealData(), nil)

	deal, err := NewQueryService(newTestLogger()).BudgetFriendly(coll, 3, 3, 2500000)
	require.NoError(t, err)
	require.Equal(t, "Ohio", deal.Listing.State())
	require.Equal(t, 50.0, deal.PricePerArea)
}

func TestBudgetFriendlyRespectsBudget(t *testing.T) {
	coll, _ := loadString(t, dealData(), nil)

	deal, err := NewQueryService(newTestLogger()).BudgetFriendly(coll, 3, 3, 250000)
	require.NoError(t, err)
	require.Equal(t, "Ohio", deal.Listing.State())

	deal, err = NewQueryService(newTestLogger()).BudgetFriendly(coll, 3, 3, 200000)
	require.NoError(t, err)
	require.LessOrEqual(t, deal.Price, 200000.0)
	require.Equal(t, 50.0, deal.PricePerArea)

	deal, err = NewQueryService(newTestLogger()).BudgetFriendly(coll, 3, 3, 99999)
	require.Nil(t, deal)
	require.ErrorIs(t, err, ErrNoProperties)
	require.EqualError(t, err, "No properties found for 3 bedrooms, 3 bathrooms, and a budget of $99999.")
}

func TestBudgetFriendlyPrefersSqftColumn(t *testing.T) {
	data := "price,bed,bath,state,house_size,sqft\n" +
		"100000,2,1,Ohio,100,4000\n" + // 25 per sqft, 1000 per house_size
		"100000,2,1,Texas,1000,1000\n" // 100 per sqft, 100 per house_size
	coll, _ := loadString(t, data, nil)

	deal, err := NewQueryService(newTestLogger()).BudgetFriendly(coll, 2, 1, 1e6)
	require.NoError(t, err)
	require.Equal(t, "Ohio", deal.Listing.State())
	require.Equal(t, 4000.0, deal.Area)
}

func TestBudgetFriendlyWithoutAreaColumn(t *testing.T) {
	coll, _ := loadString(t, "price,bed,bath,state\n100000,2,1,Ohio\n", nil)

	deal, err := NewQueryService(newTestLogger()).BudgetFriendly(coll, 2, 1, 1e6)
	require.Nil(t, deal)
	require.ErrorIs(t, err, ErrNoAreaField)
	require.EqualError(t, err, "No area column (sqft or house_size) in the listing header.")
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"100000", 100000, true},
		{"99.5", 99.5, true},
		{"0", 0, false},
		{"0.0", 0, false},
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"-5", 0, false},
		{"1e5", 0, false},
		{"1,000", 0, false},
		{" 100", 0, false},
		{"1.2.3", 0, false},
	}

	for _, tt := range tests {
		got, ok := parsePrice(tt.raw)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parsePrice(%q) = %v, %v; want %v, %v", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}
