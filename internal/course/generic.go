package course

// RelativeLevel positions a firm against rivals on one dimension.
type RelativeLevel string

const (
	RelativeLower   RelativeLevel = "Lower"
	RelativeSimilar RelativeLevel = "Similar"
	RelativeHigher  RelativeLevel = "Higher"
)

// AllRelativeLevels returns the relative levels in selector order.
func AllRelativeLevels() []RelativeLevel {
	return []RelativeLevel{RelativeLower, RelativeSimilar, RelativeHigher}
}

// ParseRelativeLevel resolves a label or slug to a RelativeLevel.
func ParseRelativeLevel(dimension, s string) (RelativeLevel, error) {
	return parseOption(dimension, s, AllRelativeLevels())
}

// Scope is the breadth of the target market.
type Scope string

const (
	ScopeBroad Scope = "Broad market"
	ScopeNiche Scope = "Niche / focused"
)

// AllScopes returns the scopes in selector order.
func AllScopes() []Scope {
	return []Scope{ScopeBroad, ScopeNiche}
}

// ParseScope resolves a label or slug to a Scope.
func ParseScope(s string) (Scope, error) {
	return parseOption("scope", s, AllScopes())
}

// Strategy is a generic strategy label.
type Strategy string

const (
	StrategyDifferentiation        Strategy = "Differentiation strategy"
	StrategyCostLeadership         Strategy = "Cost leadership strategy"
	StrategyFocusedDifferentiation Strategy = "Focused differentiation"
	StrategyFocusedLowCost         Strategy = "Focused low-cost"
	StrategyStuckInMiddle          Strategy = "Potentially stuck in the middle"
)

// Positioning is the selection on the generic strategies map.
type Positioning struct {
	WTP   RelativeLevel
	Cost  RelativeLevel
	Scope Scope
}

var strategyRules = NewRules(StrategyStuckInMiddle,
	Rule[Positioning, Strategy]{
		Name: "differentiation",
		Match: func(p Positioning) bool {
			return p.WTP == RelativeHigher && (p.Cost == RelativeSimilar || p.Cost == RelativeHigher)
		},
		Then: StrategyDifferentiation,
	},
	Rule[Positioning, Strategy]{
		Name: "cost-leadership",
		Match: func(p Positioning) bool {
			return p.Cost == RelativeLower && (p.WTP == RelativeSimilar || p.WTP == RelativeLower)
		},
		Then: StrategyCostLeadership,
	},
	Rule[Positioning, Strategy]{
		Name:  "focused-differentiation",
		Match: func(p Positioning) bool { return p.Scope == ScopeNiche && p.WTP == RelativeHigher },
		Then:  StrategyFocusedDifferentiation,
	},
	Rule[Positioning, Strategy]{
		Name:  "focused-low-cost",
		Match: func(p Positioning) bool { return p.Scope == ScopeNiche && p.Cost == RelativeLower },
		Then:  StrategyFocusedLowCost,
	},
)

// ClassifyStrategy maps a relative WTP, relative cost and scope to a generic
// strategy. Differentiation is checked before cost leadership, both before
// the focused variants; anything else is stuck in the middle.
func ClassifyStrategy(wtp, cost RelativeLevel, scope Scope) (Strategy, error) {
	if err := checkOption("wtp", wtp, AllRelativeLevels()); err != nil {
		return "", err
	}
	if err := checkOption("cost", cost, AllRelativeLevels()); err != nil {
		return "", err
	}
	if err := checkOption("scope", scope, AllScopes()); err != nil {
		return "", err
	}
	s, _ := strategyRules.First(Positioning{WTP: wtp, Cost: cost, Scope: scope})
	return s, nil
}

// StrategyRuleOrder returns the generic strategy rule names in evaluation order.
func StrategyRuleOrder() []string {
	return strategyRules.Names()
}
