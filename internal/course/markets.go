package course

import (
	"fmt"
	"strings"
)

// GroupPoint is a firm on the strategic group map.
type GroupPoint struct {
	Airline string
	Price   int // 1 (lowest) to 5
	Service int // 1 (lowest) to 5
	Type    string
}

// Strategic group map axis bounds.
const (
	GroupAxisMin = 1
	GroupAxisMax = 5
)

var airlineGroups = []GroupPoint{
	{Airline: "UltraLow", Price: 1, Service: 1, Type: "ULCC"},
	{Airline: "Ryanair", Price: 2, Service: 2, Type: "Low-cost"},
	{Airline: "EasyJet", Price: 2, Service: 3, Type: "Low-cost"},
	{Airline: "Iberia", Price: 3, Service: 3, Type: "Legacy"},
	{Airline: "Lufthansa", Price: 4, Service: 4, Type: "Legacy"},
	{Airline: "Singapore", Price: 5, Service: 5, Type: "Premium"},
}

// GroupsCaption is shown under the strategic group map.
const GroupsCaption = "Strategic groups form where firms have similar combinations of price and service level."

// AirlineGroups returns the toy strategic group sample points.
func AirlineGroups() []GroupPoint {
	out := make([]GroupPoint, len(airlineGroups))
	copy(out, airlineGroups)
	return out
}

// GroupsByType returns the group types in first-seen order with their members.
func GroupsByType() ([]string, map[string][]GroupPoint) {
	var order []string
	groups := make(map[string][]GroupPoint)
	for _, p := range airlineGroups {
		if _, ok := groups[p.Type]; !ok {
			order = append(order, p.Type)
		}
		groups[p.Type] = append(groups[p.Type], p)
	}
	return order, groups
}

// KSF is a key success factor for a market segment.
type KSF string

const (
	KSFBrand        KSF = "Brand & lifestyle fit"
	KSFLocations    KSF = "Physical convenience / locations"
	KSFDigital      KSF = "Digital channels & loyalty app"
	KSFPrice        KSF = "Price sensitivity"
	KSFCustomize    KSF = "Product customization"
	KSFLocalAdapt   KSF = "Local adaptation"
	KSFOperationEff KSF = "Operational efficiency"
)

// AllKSFs returns the key success factors in selector order.
func AllKSFs() []KSF {
	return []KSF{KSFBrand, KSFLocations, KSFDigital, KSFPrice, KSFCustomize, KSFLocalAdapt, KSFOperationEff}
}

// DefaultKSFs returns the factors pre-selected on the segment exercise.
func DefaultKSFs() []KSF {
	return []KSF{KSFBrand, KSFLocations, KSFDigital}
}

// ParseKSF resolves a label or slug to a KSF.
func ParseKSF(s string) (KSF, error) {
	return parseOption("ksf", s, AllKSFs())
}

// DefaultSegment pre-fills the segment name.
const DefaultSegment = "Urban young professionals"

// Segment is a named market segment with its chosen KSFs.
type Segment struct {
	Name string
	KSFs []KSF
}

// SummarizeSegment validates the chosen factors and returns the segment.
// Duplicates are dropped, keeping first occurrence.
func SummarizeSegment(name string, ksfs []KSF) (Segment, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Segment{}, fmt.Errorf("%w: empty segment name", ErrContract)
	}
	seen := make(map[KSF]bool, len(ksfs))
	var kept []KSF
	for _, k := range ksfs {
		if err := checkOption("ksf", k, AllKSFs()); err != nil {
			return Segment{}, err
		}
		if seen[k] {
			continue
		}
		seen[k] = true
		kept = append(kept, k)
	}
	return Segment{Name: name, KSFs: kept}, nil
}

// FactorList renders the chosen factors, or a placeholder when none are chosen.
func (s Segment) FactorList() string {
	if len(s.KSFs) == 0 {
		return "none yet"
	}
	return strings.Join(labels(s.KSFs), ", ")
}
