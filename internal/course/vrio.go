package course

import "fmt"

// ResourceExample is a resource on the classification exercise.
type ResourceExample string

const (
	ResourceCash      ResourceExample = "Cash reserves"
	ResourceBrand     ResourceExample = "Strong brand reputation"
	ResourceAlgorithm ResourceExample = "Proprietary algorithm"
	ResourceCulture   ResourceExample = "Company culture of experimentation"
	ResourceBuilding  ResourceExample = "Standard office building"
)

// AllResourceExamples returns the resource examples in selector order.
func AllResourceExamples() []ResourceExample {
	return []ResourceExample{ResourceCash, ResourceBrand, ResourceAlgorithm, ResourceCulture, ResourceBuilding}
}

// ParseResourceExample resolves a label or slug to a ResourceExample.
func ParseResourceExample(s string) (ResourceExample, error) {
	return parseOption("resource", s, AllResourceExamples())
}

var resourceNotes = map[ResourceExample]string{
	ResourceCash:      "Tangible, valuable, but usually not rare or inimitable. Necessary, but rarely a source of sustained advantage alone.",
	ResourceBrand:     "Intangible, often valuable, rare, and harder to copy. A good candidate for VRIO-based advantage.",
	ResourceAlgorithm: "Technological, intangible. If protected and hard to imitate, it can be a strong VRIO resource.",
	ResourceCulture:   "Deeply embedded, intangible. Very hard to copy – classic example of a capability behind sustained advantage.",
	ResourceBuilding:  "Basic tangible resource. Easy to copy and usually not a source of sustained advantage.",
}

// DescribeResource returns the RBV reading of a resource example.
func DescribeResource(r ResourceExample) (string, error) {
	note, ok := resourceNotes[r]
	if !ok {
		return "", fmt.Errorf("%w: resource %q", ErrUnknownKey, string(r))
	}
	return note, nil
}

// VRIO holds the four checkbox answers for a resource.
type VRIO struct {
	Valuable        bool
	Rare            bool
	CostlyToImitate bool
	Organized       bool
}

// Outcome is the competitive implication of a VRIO evaluation.
type Outcome string

const (
	OutcomeDisadvantage       Outcome = "Competitive disadvantage"
	OutcomeParity             Outcome = "Competitive parity"
	OutcomeTemporaryAdvantage Outcome = "Temporary competitive advantage"
	OutcomeMissedOpportunity  Outcome = "Missed opportunity"
	OutcomeSustainedAdvantage Outcome = "Sustained competitive advantage"
)

// Tone tells the presentation layer how to style a verdict.
type Tone string

const (
	ToneError   Tone = "error"
	ToneWarning Tone = "warning"
	ToneInfo    Tone = "info"
	ToneSuccess Tone = "success"
)

// Verdict is the result of a VRIO evaluation.
type Verdict struct {
	Outcome Outcome
	Message string
	Tone    Tone
}

var vrioRules = NewRules(
	Verdict{OutcomeSustainedAdvantage, "Sustained competitive advantage – VRIO satisfied!", ToneSuccess},
	Rule[VRIO, Verdict]{
		Name:  "not-valuable",
		Match: func(v VRIO) bool { return !v.Valuable },
		Then:  Verdict{OutcomeDisadvantage, "Competitive disadvantage or at best wasted resource.", ToneError},
	},
	Rule[VRIO, Verdict]{
		Name:  "not-rare",
		Match: func(v VRIO) bool { return v.Valuable && !v.Rare },
		Then:  Verdict{OutcomeParity, "Competitive parity – useful, but others have it too.", ToneWarning},
	},
	Rule[VRIO, Verdict]{
		Name:  "imitable",
		Match: func(v VRIO) bool { return v.Valuable && v.Rare && !v.CostlyToImitate },
		Then:  Verdict{OutcomeTemporaryAdvantage, "Temporary competitive advantage – enjoy it while it lasts.", ToneInfo},
	},
	Rule[VRIO, Verdict]{
		Name:  "not-organized",
		Match: func(v VRIO) bool { return v.Valuable && v.Rare && v.CostlyToImitate && !v.Organized },
		Then:  Verdict{OutcomeMissedOpportunity, "Missed opportunity – you have a potential advantage but are not organized to exploit it.", ToneWarning},
	},
)

// EvaluateVRIO walks the VRIO questions in order and returns the first
// failing step's verdict, or sustained advantage when all four hold.
func EvaluateVRIO(v VRIO) Verdict {
	verdict, _ := vrioRules.First(v)
	return verdict
}
