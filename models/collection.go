package models

// Category is one of the two top-level buckets.
type Category string

const (
	USStates    Category = "US States"
	Territories Category = "Territories"
)

// Categories lists the buckets in scan order.
var Categories = []Category{USStates, Territories}

// RegionGroup is the file-ordered sequence of listings sharing a region name.
type RegionGroup []*Listing

// Collection is the two-level grouping category -> region -> listings.
// It is only appended to while loading; afterwards it is read-only and safe
// for concurrent readers.
type Collection struct {
	buckets map[Category]map[string]RegionGroup
	order   map[Category][]string
	size    int
}

func NewCollection() *Collection {
	c := &Collection{
		buckets: make(map[Category]map[string]RegionGroup, len(Categories)),
		order:   make(map[Category][]string, len(Categories)),
	}
	for _, cat := range Categories {
		c.buckets[cat] = make(map[string]RegionGroup)
	}
	return c
}

// Append adds l to the region group, creating the group on first use.
func (c *Collection) Append(cat Category, region string, l *Listing) {
	bucket, ok := c.buckets[cat]
	if !ok {
		bucket = make(map[string]RegionGroup)
		c.buckets[cat] = bucket
	}
	if _, exists := bucket[region]; !exists {
		c.order[cat] = append(c.order[cat], region)
	}
	bucket[region] = append(bucket[region], l)
	c.size++
}

// Contains reports whether region is a key of the given bucket.
func (c *Collection) Contains(cat Category, region string) bool {
	_, ok := c.buckets[cat][region]
	return ok
}

// Region returns the group for region in cat (nil when absent).
func (c *Collection) Region(cat Category, region string) RegionGroup {
	return c.buckets[cat][region]
}

// Regions returns the region names of cat in first-seen order.
func (c *Collection) Regions(cat Category) []string {
	out := make([]string, len(c.order[cat]))
	copy(out, c.order[cat])
	return out
}

// Has reports whether region exists in either bucket.
func (c *Collection) Has(region string) bool {
	for _, cat := range Categories {
		if c.Contains(cat, region) {
			return true
		}
	}
	return false
}

// Properties returns the US States group followed by the Territories group
// for region. Missing groups contribute nothing.
func (c *Collection) Properties(region string) []*Listing {
	var out []*Listing
	for _, cat := range Categories {
		out = append(out, c.buckets[cat][region]...)
	}
	return out
}

// All returns every listing of every region in both buckets.
func (c *Collection) All() []*Listing {
	out := make([]*Listing, 0, c.size)
	for _, cat := range Categories {
		for _, region := range c.order[cat] {
			out = append(out, c.buckets[cat][region]...)
		}
	}
	return out
}

// Len is the total number of listings held.
func (c *Collection) Len() int { return c.size }

// RegionPreview is the head of one region group.
type RegionPreview struct {
	Category Category
	Region   string
	Listings []*Listing
}

// Preview returns up to n listings for every region of every bucket.
func (c *Collection) Preview(n int) []RegionPreview {
	var out []RegionPreview
	for _, cat := range Categories {
		for _, region := range c.order[cat] {
			group := c.buckets[cat][region]
			if n >= 0 && len(group) > n {
				group = group[:n]
			}
			out = append(out, RegionPreview{Category: cat, Region: region, Listings: group})
		}
	}
	return out
}
