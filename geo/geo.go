package geo

import "strings"

// Region is one of the seven map regions used on the results page.
type Region string

const (
	North     Region = "North"
	Northeast Region = "Northeast"
	Central   Region = "Central"
	East      Region = "East"
	West      Region = "West"
	South     Region = "South"
	Bangkok   Region = "Bangkok"
)

// Grid is a tile position on the results-page map, row 0 at the top.
type Grid struct {
	Row int
	Col int
}

// Resolver maps province names to their region and map-grid position. The
// two tables are independent: a province missing from the grid table can
// still resolve a region, and vice versa.
type Resolver struct {
	regions map[string]Region
	grids   map[string]Grid
}

// NewResolver creates a resolver over the given tables, keyed by Thai
// province name.
func NewResolver(regions map[string]Region, grids map[string]Grid) *Resolver {
	return &Resolver{regions: regions, grids: grids}
}

// Region returns the region for province, defaulting to Central when the
// province is not in the table.
func (r *Resolver) Region(province string) Region {
	if reg, ok := r.regions[strings.TrimSpace(province)]; ok {
		return reg
	}
	return Central
}

// Grid returns the map tile for province, defaulting to {0,0} when the
// province is not in the table.
func (r *Resolver) Grid(province string) Grid {
	if g, ok := r.grids[strings.TrimSpace(province)]; ok {
		return g
	}
	return Grid{}
}
