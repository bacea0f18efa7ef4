package course

import (
	"fmt"
	"slices"
	"strings"
)

// Validate checks that every lookup table is total over its declared key
// domain and that every selector domain parses unambiguously.
// Returns a combined error describing all problems found, or nil if valid.
func Validate() error {
	var errs []string

	if n := len(AllForces()); n != len(Intensities{}) {
		errs = append(errs, fmt.Sprintf("force order has %d entries, intensity sequences have %d", n, len(Intensities{})))
	}
	errs = append(errs, checkTotal("force table", forceTable, AllIndustries())...)
	for ind, levels := range forceTable {
		for i, l := range levels {
			if !slices.Contains(AllLevels(), l) {
				errs = append(errs, fmt.Sprintf("force table %q position %d: invalid level %q", ind, i, l))
			}
		}
	}

	errs = append(errs, checkTotal("life cycle notes", stageNotes, AllStages())...)
	errs = append(errs, checkTotal("clock explanations", clockExplanations, AllClockPositions())...)
	errs = append(errs, checkTotal("resource notes", resourceNotes, AllResourceExamples())...)
	errs = append(errs, checkTotal("capability key", capabilityKey, AllActions())...)
	for a, c := range capabilityKey {
		if !slices.Contains(AllCapabilities(), c) {
			errs = append(errs, fmt.Sprintf("capability key %q: invalid capability %q", a, c))
		}
	}

	errs = append(errs, checkSlugs("levels", AllLevels())...)
	errs = append(errs, checkSlugs("industries", AllIndustries())...)
	errs = append(errs, checkSlugs("dimensions", AllDimensions())...)
	errs = append(errs, checkSlugs("macro industries", AllMacroIndustries())...)
	errs = append(errs, checkSlugs("macro trends", AllMacroTrends())...)
	errs = append(errs, checkSlugs("relative levels", AllRelativeLevels())...)
	errs = append(errs, checkSlugs("scopes", AllScopes())...)
	errs = append(errs, checkSlugs("clock positions", AllClockPositions())...)
	errs = append(errs, checkSlugs("blue ocean industries", AllBlueOceanIndustries())...)
	errs = append(errs, checkSlugs("ksfs", AllKSFs())...)
	errs = append(errs, checkSlugs("resources", AllResourceExamples())...)
	errs = append(errs, checkSlugs("actions", AllActions())...)
	errs = append(errs, checkSlugs("capabilities", AllCapabilities())...)

	for _, t := range AllTopics() {
		if _, ok := topics[t]; !ok {
			errs = append(errs, fmt.Sprintf("topic %q has no evaluator", t))
		}
	}

	if len(errs) > 0 {
		slices.Sort(errs)
		return fmt.Errorf("course table validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// MustValidate panics if Validate fails. A failure means a table and its
// selector domain disagree, which is a programming error.
func MustValidate() {
	if err := Validate(); err != nil {
		panic(err)
	}
}

// checkTotal reports domain keys missing from table and table keys outside
// the domain.
func checkTotal[K comparable, V any](name string, table map[K]V, domain []K) []string {
	var errs []string
	for _, k := range domain {
		if _, ok := table[k]; !ok {
			errs = append(errs, fmt.Sprintf("%s: missing key %v", name, k))
		}
	}
	for k := range table {
		if !slices.Contains(domain, k) {
			errs = append(errs, fmt.Sprintf("%s: key %v outside domain", name, k))
		}
	}
	return errs
}

// checkSlugs reports domain values whose slugs collide or are empty.
func checkSlugs[T ~string](name string, domain []T) []string {
	var errs []string
	seen := make(map[string]T, len(domain))
	for _, v := range domain {
		s := Slug(string(v))
		if s == "" {
			errs = append(errs, fmt.Sprintf("%s: %q has an empty slug", name, v))
			continue
		}
		if prev, ok := seen[s]; ok {
			errs = append(errs, fmt.Sprintf("%s: %q and %q share slug %q", name, prev, v, s))
		}
		seen[s] = v
	}
	return errs
}
