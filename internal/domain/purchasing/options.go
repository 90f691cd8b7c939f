package purchasing

import (
	"sort"
	"strings"
)

// FilterOptions valores distintos disponibles para los selectores del dashboard.
type FilterOptions struct {
	Years      []int
	Months     []int
	Buyers     []string
	Situations []string
}

// Options recorre la vista y devuelve los valores ordenados de cada dimensión expuesta
// por la variante. Las dimensiones no expuestas quedan vacías.
func Options(v View) FilterOptions {
	schema := v.Schema()
	years := map[int]struct{}{}
	months := map[int]struct{}{}
	buyers := map[string]struct{}{}
	situations := map[string]struct{}{}

	for _, l := range v.lines {
		years[l.Year] = struct{}{}
		months[l.Month] = struct{}{}
		if b := strings.TrimSpace(l.Buyer); b != "" {
			buyers[b] = struct{}{}
		}
		if s := strings.TrimSpace(l.Situation); s != "" {
			situations[s] = struct{}{}
		}
	}

	opts := FilterOptions{
		Years:  sortedInts(years),
		Months: sortedInts(months),
	}
	if schema.HasDimension(DimensionBuyer) {
		opts.Buyers = sortedStrings(buyers)
	}
	if schema.HasDimension(DimensionSituation) {
		opts.Situations = sortedStrings(situations)
	}
	return opts
}

func sortedInts(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

func sortedStrings(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
