package domain

import "sort"

// Capability is an atomic, named permission to perform one category of
// operation. The catalog is closed and versioned with the binary.
type Capability string

const (
	CapabilityProjectCreate          Capability = "project:create"
	CapabilityProjectView            Capability = "project:view"
	CapabilityAssetManage            Capability = "asset:manage"
	CapabilityAssetView              Capability = "asset:view"
	CapabilitySearchBasic            Capability = "search:basic"
	CapabilitySearchAdvanced         Capability = "search:advanced"
	CapabilityAnalysisSingleProperty Capability = "analysis:single_property"
	CapabilityAnalysisPortfolio      Capability = "analysis:portfolio"
	CapabilityExportCSV              Capability = "export:csv"
)

// Catalog returns every capability known to the platform, sorted.
func Catalog() []Capability {
	caps := []Capability{
		CapabilityProjectCreate,
		CapabilityProjectView,
		CapabilityAssetManage,
		CapabilityAssetView,
		CapabilitySearchBasic,
		CapabilitySearchAdvanced,
		CapabilityAnalysisSingleProperty,
		CapabilityAnalysisPortfolio,
		CapabilityExportCSV,
	}
	sort.Slice(caps, func(i, j int) bool { return caps[i] < caps[j] })
	return caps
}

// CapabilitySet is an unordered set of capabilities.
type CapabilitySet map[Capability]struct{}

// NewCapabilitySet builds a set from the given capabilities.
func NewCapabilitySet(caps ...Capability) CapabilitySet {
	set := make(CapabilitySet, len(caps))
	for _, c := range caps {
		set[c] = struct{}{}
	}
	return set
}

// Has reports whether the capability is in the set.
func (s CapabilitySet) Has(c Capability) bool {
	_, ok := s[c]
	return ok
}

// Intersect returns the capabilities present in both sets.
func (s CapabilitySet) Intersect(other CapabilitySet) CapabilitySet {
	out := make(CapabilitySet)
	for c := range s {
		if other.Has(c) {
			out[c] = struct{}{}
		}
	}
	return out
}

// Sorted returns the set members as a sorted string slice, the stable wire
// order consumed by UI feature gating.
func (s CapabilitySet) Sorted() []string {
	out := make([]string, 0, len(s))
	for c := range s {
		out = append(out, string(c))
	}
	sort.Strings(out)
	return out
}
