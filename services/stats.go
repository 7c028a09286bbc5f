package services

import (
	"fmt"
	"sort"

	"realestate-stats/models"
	"realestate-stats/utils"
)

// Stat names accepted by Stats.Run.
const (
	StatCheapest       = "cheapest"
	StatPriciest       = "priciest"
	StatDirtCheap      = "dirt_cheap"
	StatBestDeal       = "best_deal"
	StatBudgetFriendly = "budget_friendly"
)

// StatsParams carries the arguments every stat may need.
type StatsParams struct {
	Region     string
	DealRegion string
	Bedrooms   int
	Bathrooms  int
	MaxBudget  float64
}

// StatResult is the outcome of one named stat. Exactly one of Listings,
// Deal or Err is meaningful.
type StatResult struct {
	Name     string
	Listings []*models.Listing
	Deal     *models.Deal
	Err      error
}

type statFunc func(q *QueryService, c *models.Collection, p StatsParams) StatResult

var registry = map[string]statFunc{
	StatCheapest: func(q *QueryService, c *models.Collection, p StatsParams) StatResult {
		ls, err := q.Cheapest(c, p.Region)
		return StatResult{Listings: ls, Err: err}
	},
	StatPriciest: func(q *QueryService, c *models.Collection, p StatsParams) StatResult {
		ls, err := q.Priciest(c, p.Region)
		return StatResult{Listings: ls, Err: err}
	},
	StatDirtCheap: func(q *QueryService, c *models.Collection, p StatsParams) StatResult {
		l, err := q.DirtCheap(c, p.Region)
		if err != nil {
			return StatResult{Err: err}
		}
		return StatResult{Listings: []*models.Listing{l}}
	},
	StatBestDeal: func(q *QueryService, c *models.Collection, p StatsParams) StatResult {
		region := p.DealRegion
		if region == "" {
			region = p.Region
		}
		d, err := q.BestDeal(c, region, p.Bedrooms, p.Bathrooms)
		return StatResult{Deal: d, Err: err}
	},
	StatBudgetFriendly: func(q *QueryService, c *models.Collection, p StatsParams) StatResult {
		d, err := q.BudgetFriendly(c, p.Bedrooms, p.Bathrooms, p.MaxBudget)
		return StatResult{Deal: d, Err: err}
	},
}

// StatNames lists the registered stats alphabetically.
func StatNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stats dispatches named queries against one loaded collection.
type Stats struct {
	queries    *QueryService
	collection *models.Collection
	pool       *utils.WorkerPool
}

// NewStats binds a query service to a collection. maxConcurrency bounds how
// many stats RunAll evaluates at once.
func NewStats(queries *QueryService, c *models.Collection, maxConcurrency int) *Stats {
	return &Stats{
		queries:    queries,
		collection: c,
		pool:       utils.NewWorkerPool(maxConcurrency),
	}
}

// Run evaluates a single stat by name.
func (s *Stats) Run(name string, p StatsParams) StatResult {
	fn, ok := registry[name]
	if !ok {
		return StatResult{Name: name, Err: fmt.Errorf("%w: %q", ErrUnknownStat, name)}
	}
	res := fn(s.queries, s.collection, p)
	res.Name = name
	return res
}

// RunAll evaluates the named stats concurrently and returns the results in
// the order requested. The collection is read-only, so stats share it freely.
func (s *Stats) RunAll(names []string, p StatsParams) []StatResult {
	results := make([]StatResult, len(names))
	for i, name := range names {
		i, name := i, name
		s.pool.Submit(func() {
			results[i] = s.Run(name, p)
		})
	}
	s.pool.Wait()
	return results
}
