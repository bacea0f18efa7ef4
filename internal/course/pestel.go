package course

import (
	"fmt"
	"slices"
	"strings"
)

// Dimension is a PESTEL category.
type Dimension string

const (
	DimensionPolitical     Dimension = "Political"
	DimensionEconomic      Dimension = "Economic"
	DimensionSociocultural Dimension = "Sociocultural"
	DimensionTechnological Dimension = "Technological"
	DimensionEnvironmental Dimension = "Environmental"
	DimensionLegal         Dimension = "Legal"
)

// AllDimensions returns the PESTEL dimensions in acronym order.
func AllDimensions() []Dimension {
	return []Dimension{
		DimensionPolitical,
		DimensionEconomic,
		DimensionSociocultural,
		DimensionTechnological,
		DimensionEnvironmental,
		DimensionLegal,
	}
}

// ParseDimension resolves a label or slug to a Dimension.
func ParseDimension(s string) (Dimension, error) {
	return parseOption("dimension", s, AllDimensions())
}

// DefaultFactor pre-fills the trend text input.
const DefaultFactor = "AI regulation in the EU"

// ClassifyPrompt follows every PESTEL classification.
const ClassifyPrompt = "Ask yourself: is this a threat, an opportunity, or both for a specific industry?"

// Classification is a learner's PESTEL tagging of a free-text trend.
type Classification struct {
	Factor    string
	Dimension Dimension
}

// Classify records the learner's classification of factor.
func Classify(factor string, d Dimension) (Classification, error) {
	factor = strings.TrimSpace(factor)
	if factor == "" {
		return Classification{}, fmt.Errorf("%w: empty trend", ErrContract)
	}
	if err := checkOption("dimension", d, AllDimensions()); err != nil {
		return Classification{}, err
	}
	return Classification{Factor: factor, Dimension: d}, nil
}

// Sentence renders the classification for display.
func (c Classification) Sentence() string {
	return fmt.Sprintf("You classified '%s' as %s.", c.Factor, c.Dimension)
}

// MacroIndustry is an industry on the threat/opportunity scenario.
type MacroIndustry string

const (
	MacroOilGas      MacroIndustry = "Oil & Gas"
	MacroFastFashion MacroIndustry = "Fast Fashion"
	MacroPlantFood   MacroIndustry = "Plant-based Food"
	MacroLowCostAir  MacroIndustry = "Low-cost Airlines"
	MacroBigTech     MacroIndustry = "Big Tech Platforms"
)

// AllMacroIndustries returns the scenario industries in display order.
func AllMacroIndustries() []MacroIndustry {
	return []MacroIndustry{MacroOilGas, MacroFastFashion, MacroPlantFood, MacroLowCostAir, MacroBigTech}
}

// ParseMacroIndustry resolves a label or slug to a MacroIndustry.
func ParseMacroIndustry(s string) (MacroIndustry, error) {
	return parseOption("industry", s, AllMacroIndustries())
}

// MacroTrend is a macro-environmental trend on the scenario.
type MacroTrend string

const (
	TrendCarbonRegulation MacroTrend = "Stricter carbon regulation"
	TrendInterestRates    MacroTrend = "Rising interest rates"
	TrendGenZ             MacroTrend = "Gen Z focus on sustainability"
	TrendAIAutomation     MacroTrend = "Breakthrough in AI automation"
	TrendPrivacyLaws      MacroTrend = "Data protection & privacy laws (GDPR-style)"
)

// AllMacroTrends returns the scenario trends in display order.
func AllMacroTrends() []MacroTrend {
	return []MacroTrend{TrendCarbonRegulation, TrendInterestRates, TrendGenZ, TrendAIAutomation, TrendPrivacyLaws}
}

// ParseMacroTrend resolves a label or slug to a MacroTrend.
func ParseMacroTrend(s string) (MacroTrend, error) {
	return parseOption("trend", s, AllMacroTrends())
}

// Impact is the threat/opportunity reading of a trend for an industry.
type Impact struct {
	Threat      bool
	Opportunity bool
	Explanation string
}

// TrendInput is the selection evaluated by the trend rules.
type TrendInput struct {
	Industry MacroIndustry
	Trend    MacroTrend
}

func trendIn(trend MacroTrend, industries ...MacroIndustry) func(TrendInput) bool {
	return func(in TrendInput) bool {
		if in.Trend != trend {
			return false
		}
		return len(industries) == 0 || slices.Contains(industries, in.Industry)
	}
}

var trendRules = NewRules(
	Impact{Explanation: "Impact depends on your business model – think cost of capital, data needs, or regulation risk."},
	Rule[TrendInput, Impact]{
		Name:  "carbon-exposed",
		Match: trendIn(TrendCarbonRegulation, MacroOilGas, MacroLowCostAir, MacroFastFashion),
		Then: Impact{
			Threat: true, Opportunity: true,
			Explanation: "Costs and constraints go up, but also pressure to innovate & differentiate on sustainability.",
		},
	},
	Rule[TrendInput, Impact]{
		Name:  "carbon-other",
		Match: trendIn(TrendCarbonRegulation),
		Then: Impact{
			Opportunity: true,
			Explanation: "Creates relative advantage if your product is low-carbon or helps others reduce emissions.",
		},
	},
	Rule[TrendInput, Impact]{
		Name:  "genz-exposed",
		Match: trendIn(TrendGenZ, MacroFastFashion, MacroOilGas),
		Then: Impact{
			Threat: true, Opportunity: true,
			Explanation: "Legacy models are challenged, but sustainable repositioning can unlock new demand.",
		},
	},
	Rule[TrendInput, Impact]{
		Name:  "genz-other",
		Match: trendIn(TrendGenZ),
		Then: Impact{
			Opportunity: true,
			Explanation: "You can design offerings that speak directly to these values.",
		},
	},
)

// AssessTrend reads whether a macro trend is a threat, an opportunity, or
// both for an industry.
func AssessTrend(ind MacroIndustry, trend MacroTrend) (Impact, error) {
	if err := checkOption("industry", ind, AllMacroIndustries()); err != nil {
		return Impact{}, err
	}
	if err := checkOption("trend", trend, AllMacroTrends()); err != nil {
		return Impact{}, err
	}
	impact, _ := trendRules.First(TrendInput{Industry: ind, Trend: trend})
	return impact, nil
}
