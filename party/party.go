package party

import "strings"

// unknownColor is the neutral gray used for parties outside the static table.
const unknownColor = "#6B7280"

// Metadata is the display record for one political party.
type Metadata struct {
	Color    string
	NameEn   string
	NameTh   string
	Leader   string
	Slogan   string
	SloganTh string
	Logo     string
}

// Resolver maps raw party names from the source sheet to display metadata.
// The lookup table is injected so tests can run against small fixtures.
type Resolver struct {
	table map[string]Metadata
}

// NewResolver creates a resolver over the given table, keyed by canonical
// Thai party name.
func NewResolver(table map[string]Metadata) *Resolver {
	return &Resolver{table: table}
}

// Unknown returns the placeholder record used when a row carries no party
// name at all.
func Unknown() Metadata {
	return Metadata{Color: unknownColor, Leader: "-"}
}

// Resolve looks raw up by exact trimmed name. Unrecognized names keep their
// raw name as both NameEn and NameTh so that distinct minor parties stay
// distinguishable in the output instead of merging into an "others" bucket.
func (r *Resolver) Resolve(raw string) Metadata {
	name := strings.TrimSpace(raw)
	if name == "" {
		return Unknown()
	}
	if m, ok := r.table[name]; ok {
		return m
	}
	return Metadata{
		Color:    unknownColor,
		NameEn:   name,
		NameTh:   name,
		Leader:   "-",
		Slogan:   "-",
		SloganTh: "-",
	}
}
