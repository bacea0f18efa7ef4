package course

import (
	"fmt"
	"strings"
)

// ClockPosition is a zone on the strategy clock.
type ClockPosition string

const (
	ClockNoFrills             ClockPosition = "Low price / no-frills"
	ClockLowPrice             ClockPosition = "Standard low price"
	ClockDifferentiation      ClockPosition = "Differentiation (no premium)"
	ClockPremium              ClockPosition = "Differentiation with premium"
	ClockFocusedDifferentiate ClockPosition = "Focused differentiation (luxury)"
	ClockHybrid               ClockPosition = "Hybrid (good value for money)"
)

// AllClockPositions returns the strategy clock zones in selector order.
func AllClockPositions() []ClockPosition {
	return []ClockPosition{
		ClockNoFrills,
		ClockLowPrice,
		ClockDifferentiation,
		ClockPremium,
		ClockFocusedDifferentiate,
		ClockHybrid,
	}
}

// ParseClockPosition resolves a label or slug to a ClockPosition.
func ParseClockPosition(s string) (ClockPosition, error) {
	return parseOption("position", s, AllClockPositions())
}

var clockExplanations = map[ClockPosition]string{
	ClockNoFrills:             "Bare minimum benefits, ultra-low price. Works when customers really only care about price.",
	ClockLowPrice:             "Similar benefits to rivals but lower price – must have a real cost advantage.",
	ClockDifferentiation:      "Higher benefits at similar price – gain share by offering more for the same money.",
	ClockPremium:              "Higher benefits and higher price – margin strategy, brand / quality driven.",
	ClockFocusedDifferentiate: "Extreme benefits, very high price, serving a small segment.",
	ClockHybrid:               "Above-average benefits at a reasonable cost – often where ‘best cost’ strategies live.",
}

// ClockExplanation returns the explanation for a strategy clock zone.
func ClockExplanation(p ClockPosition) (string, error) {
	e, ok := clockExplanations[p]
	if !ok {
		return "", fmt.Errorf("%w: position %q", ErrUnknownKey, string(p))
	}
	return e, nil
}

// BlueOceanIndustry is an industry for the value curve exercise.
type BlueOceanIndustry string

const (
	OceanWine      BlueOceanIndustry = "Wine"
	OceanGyms      BlueOceanIndustry = "Gyms & fitness"
	OceanHotels    BlueOceanIndustry = "Hotels"
	OceanEducation BlueOceanIndustry = "Education"
	OceanAirlines  BlueOceanIndustry = "Airlines"
)

// AllBlueOceanIndustries returns the exercise industries in selector order.
func AllBlueOceanIndustries() []BlueOceanIndustry {
	return []BlueOceanIndustry{OceanWine, OceanGyms, OceanHotels, OceanEducation, OceanAirlines}
}

// ParseBlueOceanIndustry resolves a label or slug to a BlueOceanIndustry.
func ParseBlueOceanIndustry(s string) (BlueOceanIndustry, error) {
	return parseOption("industry", s, AllBlueOceanIndustries())
}

// Grid is the learner's ERRC (eliminate-reduce-raise-create) grid.
type Grid struct {
	Raise     string
	Reduce    string
	Create    string
	Eliminate string
}

// Empty reports whether nothing has been written yet.
func (g Grid) Empty() bool {
	return strings.TrimSpace(g.Raise+g.Reduce+g.Create+g.Eliminate) == ""
}

// Placeholder shown for unanswered ERRC cells.
const nothingYet = "nothing yet"

// SummaryLine is one labelled line of a summary.
type SummaryLine struct {
	Label string
	Text  string
	Blank bool
}

// BlueOceanSummary is the snapshot of a Blue Ocean move.
type BlueOceanSummary struct {
	Industry BlueOceanIndustry
	Lines    []SummaryLine
}

// SummarizeBlueOcean builds the Blue Ocean snapshot for an industry.
func SummarizeBlueOcean(ind BlueOceanIndustry, g Grid) (BlueOceanSummary, error) {
	if err := checkOption("industry", ind, AllBlueOceanIndustries()); err != nil {
		return BlueOceanSummary{}, err
	}
	return BlueOceanSummary{
		Industry: ind,
		Lines: []SummaryLine{
			summaryLine("Raise", g.Raise, nothingYet),
			summaryLine("Reduce", g.Reduce, nothingYet),
			summaryLine("Create", g.Create, nothingYet),
			summaryLine("Eliminate", g.Eliminate, nothingYet),
		},
	}, nil
}

func summaryLine(label, text, placeholder string) SummaryLine {
	text = strings.TrimSpace(text)
	if text == "" {
		return SummaryLine{Label: label, Text: placeholder, Blank: true}
	}
	return SummaryLine{Label: label, Text: text}
}

// String renders the summary as plain text.
func (s BlueOceanSummary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Your Blue Ocean snapshot for %s:\n", s.Industry)
	for _, l := range s.Lines {
		fmt.Fprintf(&b, "  %s: %s\n", l.Label, l.Text)
	}
	return b.String()
}
