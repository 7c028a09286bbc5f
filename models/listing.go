package models

import (
	"fmt"
	"regexp"
	"strings"
)

// Well-known field names produced by the realtor header row.
const (
	FieldPrice     = "price"
	FieldBed       = "bed"
	FieldBath      = "bath"
	FieldHouseSize = "house_size"
	FieldSqft      = "sqft"
	FieldState     = "state"
)

// nonWordRegexp matches runs of characters that are not Unicode letters,
// digits or underscores. Go's \W is ASCII-only, so the class is spelled out.
var nonWordRegexp = regexp.MustCompile(`[^\p{L}\p{N}_]+`)

// NormaliseFieldName turns a raw header token into a field identifier by
// collapsing every run of non-word characters into a single underscore.
func NormaliseFieldName(raw string) string {
	return nonWordRegexp.ReplaceAllString(raw, "_")
}

// Schema is the ordered list of field names derived from a header row.
type Schema struct {
	fields []string
	index  map[string]int
}

// NewSchema normalises the header tokens and builds the field index.
// When two tokens normalise to the same name, lookups resolve to the first.
func NewSchema(header []string) *Schema {
	s := &Schema{
		fields: make([]string, len(header)),
		index:  make(map[string]int, len(header)),
	}
	for i, raw := range header {
		name := NormaliseFieldName(raw)
		s.fields[i] = name
		if _, ok := s.index[name]; !ok {
			s.index[name] = i
		}
	}
	return s
}

func (s *Schema) Len() int { return len(s.fields) }

// Fields returns a copy of the field names in column order.
func (s *Schema) Fields() []string {
	out := make([]string, len(s.fields))
	copy(out, s.fields)
	return out
}

func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// AreaField picks the column used for price-per-area ranking: sqft when
// present, house_size otherwise. Empty when the schema has neither.
func (s *Schema) AreaField() string {
	switch {
	case s.Has(FieldSqft):
		return FieldSqft
	case s.Has(FieldHouseSize):
		return FieldHouseSize
	default:
		return ""
	}
}

// Listing is a single accepted data row. Values stay as raw strings;
// numeric views are computed by the query layer and never written back.
type Listing struct {
	schema *Schema
	values []string
	Line   int
}

// NewListing binds values to schema. The arity must match exactly.
func NewListing(schema *Schema, values []string, line int) (*Listing, error) {
	if len(values) != schema.Len() {
		return nil, fmt.Errorf("listing: line %d has %d fields, header has %d", line, len(values), schema.Len())
	}
	v := make([]string, len(values))
	copy(v, values)
	return &Listing{schema: schema, values: v, Line: line}, nil
}

func (l *Listing) Schema() *Schema { return l.schema }

// Get returns the raw value of field, or "" if the schema lacks it.
func (l *Listing) Get(field string) string {
	i, ok := l.schema.index[field]
	if !ok {
		return ""
	}
	return l.values[i]
}

func (l *Listing) Price() string     { return l.Get(FieldPrice) }
func (l *Listing) Bed() string       { return l.Get(FieldBed) }
func (l *Listing) Bath() string      { return l.Get(FieldBath) }
func (l *Listing) State() string     { return l.Get(FieldState) }
func (l *Listing) HouseSize() string { return l.Get(FieldHouseSize) }

// Area returns the value of the schema's area field.
func (l *Listing) Area() string {
	if f := l.schema.AreaField(); f != "" {
		return l.Get(f)
	}
	return ""
}

// Values returns a copy of the raw values in column order.
func (l *Listing) Values() []string {
	out := make([]string, len(l.values))
	copy(out, l.values)
	return out
}

// Fields returns the listing as a field name -> value map.
func (l *Listing) Fields() map[string]string {
	m := make(map[string]string, len(l.values))
	for i, name := range l.schema.fields {
		if _, dup := m[name]; dup {
			continue
		}
		m[name] = l.values[i]
	}
	return m
}

// Clone returns an independent copy sharing the (immutable) schema.
func (l *Listing) Clone() *Listing {
	return &Listing{schema: l.schema, values: l.Values(), Line: l.Line}
}

func (l *Listing) String() string {
	var b strings.Builder
	b.WriteString("Property(")
	for i, name := range l.schema.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%q", name, l.values[i])
	}
	b.WriteString(")")
	return b.String()
}

// Deal is the numeric view of a listing chosen by a price-per-area query.
type Deal struct {
	Listing      *Listing
	Price        float64
	Area         float64
	PricePerArea float64
}
