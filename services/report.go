package services

import (
	"fmt"
	"io"
	"strings"

	"realestate-stats/models"
)

var statTitles = map[string]string{
	StatCheapest:       "Top 5 Cheapest Properties",
	StatPriciest:       "Top 5 Priciest Properties",
	StatDirtCheap:      "Dirt Cheap",
	StatBestDeal:       "Best Deal (price per house size)",
	StatBudgetFriendly: "Budget Friendly (price per area)",
}

// Printer renders load summaries and stat results as console text.
type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// PrintOverview prints the first rows of every region group in both buckets.
func (p *Printer) PrintOverview(c *models.Collection, stats *LoadStats, rows int) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Fprintf(p.out, "\n\033[1;35m%s\033[0m\n", sep)
	fmt.Fprintf(p.out, "\033[1;35m  🏠 REAL ESTATE LISTINGS\033[0m\n")
	fmt.Fprintf(p.out, "\033[1;35m%s\033[0m\n\n", sep)

	fmt.Fprintf(p.out, "\033[1;33m  Overview\033[0m\n")
	fmt.Fprintf(p.out, "  %s\n", thin)
	if stats != nil {
		fmt.Fprintf(p.out, "  Listings loaded : \033[1m%d\033[0m\n", stats.Accepted)
		fmt.Fprintf(p.out, "  Rows dropped    : \033[1m%d\033[0m\n", stats.Dropped)
	}
	for _, cat := range models.Categories {
		fmt.Fprintf(p.out, "  %-15s : \033[1m%d\033[0m regions\n", cat, len(c.Regions(cat)))
	}
	fmt.Fprintln(p.out)

	fmt.Fprintf(p.out, "\033[1;33m  First %d Properties for every State and Territory\033[0m\n", rows)
	fmt.Fprintf(p.out, "  %s\n", thin)
	for _, group := range c.Preview(rows) {
		fmt.Fprintf(p.out, "\n  [%s] '%s'\n", group.Category, group.Region)
		for _, l := range group.Listings {
			fmt.Fprintf(p.out, "    %s\n", l)
		}
	}
	fmt.Fprintln(p.out)
}

// PrintResult prints one stat result, or its diagnosis when it failed.
func (p *Printer) PrintResult(r StatResult) {
	thin := strings.Repeat("─", 54)
	title, ok := statTitles[r.Name]
	if !ok {
		title = r.Name
	}

	fmt.Fprintf(p.out, "\033[1;33m  %s\033[0m\n", title)
	fmt.Fprintf(p.out, "  %s\n", thin)

	switch {
	case r.Err != nil:
		fmt.Fprintf(p.out, "  %s\n", r.Err)
	case r.Deal != nil:
		d := r.Deal
		fmt.Fprintf(p.out, "  %s\n", d.Listing)
		fmt.Fprintf(p.out, "  Price          : \033[1;32m$%.2f\033[0m\n", d.Price)
		fmt.Fprintf(p.out, "  Area           : %.2f\n", d.Area)
		fmt.Fprintf(p.out, "  Price per area : \033[1;32m$%.2f\033[0m\n", round2(d.PricePerArea))
	default:
		for i, l := range r.Listings {
			fmt.Fprintf(p.out, "  \033[1m%d.\033[0m %-14s %s\n", i+1, "$"+truncate(l.Price(), 12), l)
		}
	}
	fmt.Fprintln(p.out)
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
