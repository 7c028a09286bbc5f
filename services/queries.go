package services

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"realestate-stats/models"
	"realestate-stats/utils"
)

// TopN caps the ranked results of cheapest and priciest.
const TopN = 5

// QueryService answers the listing queries. Every method is read-only with
// respect to the collection: results are clones, numeric values are
// returned in models.Deal instead of being written back to listings.
type QueryService struct {
	logger *utils.Logger
}

func NewQueryService(logger *utils.Logger) *QueryService {
	return &QueryService{logger: logger}
}

type pricedListing struct {
	listing *models.Listing
	price   float64
}

// Cheapest returns up to TopN listings of region in ascending price order.
// Equal prices keep file order and duplicates are not removed.
func (s *QueryService) Cheapest(c *models.Collection, region string) ([]*models.Listing, error) {
	if !c.Has(region) {
		return nil, missingRegion("cheapest", region)
	}

	priced := pricedListings(c.Properties(region))
	if len(priced) == 0 {
		return nil, noProperties("cheapest", region, fmt.Sprintf("No properties found for '%s'.", region))
	}

	sort.SliceStable(priced, func(i, j int) bool {
		return priced[i].price < priced[j].price
	})
	if len(priced) > TopN {
		priced = priced[:TopN]
	}

	s.logger.Debug("[query] cheapest %q: %d results", region, len(priced))
	return cloneAll(priced), nil
}

// Priciest returns up to TopN listings of region in descending price order,
// keeping only the first listing for each distinct raw price string.
func (s *QueryService) Priciest(c *models.Collection, region string) ([]*models.Listing, error) {
	if !c.Has(region) {
		return nil, missingRegion("priciest", region)
	}

	priced := pricedListings(c.Properties(region))
	if len(priced) == 0 {
		return nil, noProperties("priciest", region, fmt.Sprintf("No properties found for '%s'.", region))
	}

	sort.SliceStable(priced, func(i, j int) bool {
		return priced[i].price > priced[j].price
	})

	seen := make(map[string]struct{}, len(priced))
	unique := make([]pricedListing, 0, TopN)
	for _, p := range priced {
		if _, dup := seen[p.listing.Price()]; dup {
			continue
		}
		seen[p.listing.Price()] = struct{}{}
		unique = append(unique, p)
		if len(unique) == TopN {
			break
		}
	}

	s.logger.Debug("[query] priciest %q: %d results", region, len(unique))
	return cloneAll(unique), nil
}

// DirtCheap returns the single cheapest listing. With an empty region it
// scans every region of both buckets. Ties resolve to the first listing seen.
func (s *QueryService) DirtCheap(c *models.Collection, region string) (*models.Listing, error) {
	var candidates []*models.Listing
	reason := "No properties found."
	if region == "" {
		candidates = c.All()
	} else {
		if !c.Has(region) {
			return nil, missingRegion("dirt_cheap", region)
		}
		candidates = c.Properties(region)
		reason = fmt.Sprintf("No properties found for '%s'.", region)
	}

	priced := pricedListings(candidates)
	if len(priced) == 0 {
		return nil, noProperties("dirt_cheap", region, reason)
	}

	best := priced[0]
	for _, p := range priced[1:] {
		if p.price < best.price {
			best = p
		}
	}
	return best.listing.Clone(), nil
}

// BestDeal returns the listing of region with the requested bedroom and
// bathroom counts that has the lowest price per house_size.
func (s *QueryService) BestDeal(c *models.Collection, region string, beds, baths int) (*models.Deal, error) {
	if !c.Has(region) {
		return nil, missingRegion("best_deal", region)
	}

	deal := bestRatio(c.Properties(region), beds, baths, math.Inf(1), func(l *models.Listing) string {
		return l.HouseSize()
	})
	if deal == nil {
		return nil, noProperties("best_deal", region, fmt.Sprintf(
			"No properties found for %d bedrooms and %d bathrooms in '%s'", beds, baths, region))
	}

	s.logger.Debug("[query] best_deal %q: line %d at %.2f/area", region, deal.Listing.Line, deal.PricePerArea)
	return deal, nil
}

// BudgetFriendly scans every region of both buckets for the listing with the
// requested bedroom and bathroom counts, priced at or under maxBudget, with
// the lowest price per area. The area column is sqft when the header has
// one, house_size otherwise.
func (s *QueryService) BudgetFriendly(c *models.Collection, beds, baths int, maxBudget float64) (*models.Deal, error) {
	all := c.All()
	if len(all) > 0 && all[0].Schema().AreaField() == "" {
		return nil, &QueryError{
			Op:     "budget_friendly",
			Reason: "No area column (sqft or house_size) in the listing header.",
			Err:    ErrNoAreaField,
		}
	}

	deal := bestRatio(all, beds, baths, maxBudget, func(l *models.Listing) string {
		return l.Area()
	})
	if deal == nil {
		return nil, noProperties("budget_friendly", "", fmt.Sprintf(
			"No properties found for %d bedrooms, %d bathrooms, and a budget of $%s.",
			beds, baths, strconv.FormatFloat(maxBudget, 'f', -1, 64)))
	}

	s.logger.Debug("[query] budget_friendly: line %d at %.2f/area", deal.Listing.Line, deal.PricePerArea)
	return deal, nil
}

// bestRatio picks the minimum price/area among listings matching beds and
// baths (string equality on the decimal form) with price in (0, maxPrice]
// and a positive area. Ties resolve to the first listing seen.
func bestRatio(listings []*models.Listing, beds, baths int, maxPrice float64, area func(*models.Listing) string) *models.Deal {
	wantBed, wantBath := strconv.Itoa(beds), strconv.Itoa(baths)

	var best *models.Deal
	for _, l := range listings {
		if l.Bed() != wantBed || l.Bath() != wantBath {
			continue
		}
		price, ok := parsePrice(l.Price())
		if !ok || price > maxPrice {
			continue
		}
		size, ok := parsePositive(area(l))
		if !ok {
			continue
		}

		ratio := price / size
		if best == nil || ratio < best.PricePerArea {
			best = &models.Deal{Listing: l, Price: price, Area: size, PricePerArea: ratio}
		}
	}

	if best != nil {
		best.Listing = best.Listing.Clone()
	}
	return best
}

// pricedListings keeps listings whose price passes parsePrice, in input order.
func pricedListings(listings []*models.Listing) []pricedListing {
	out := make([]pricedListing, 0, len(listings))
	for _, l := range listings {
		if price, ok := parsePrice(l.Price()); ok {
			out = append(out, pricedListing{listing: l, price: price})
		}
	}
	return out
}

// parsePrice accepts a non-blank price made only of ASCII digits and dots
// that parses to a value greater than zero.
func parsePrice(raw string) (float64, bool) {
	if strings.TrimSpace(raw) == "" {
		return 0, false
	}
	digits := strings.ReplaceAll(raw, ".", "")
	if digits == "" {
		return 0, false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// parsePositive parses a finite number greater than zero.
func parsePositive(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

func cloneAll(priced []pricedListing) []*models.Listing {
	out := make([]*models.Listing, len(priced))
	for i, p := range priced {
		out[i] = p.listing.Clone()
	}
	return out
}
