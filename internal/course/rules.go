package course

// Rule pairs a predicate with the outcome it selects.
type Rule[In, Out any] struct {
	Name  string
	Match func(In) bool
	Then  Out
}

// Rules is an ordered rule list with first-match-wins semantics and an
// explicit fallback for inputs no rule matches. Order is significant:
// predicates may overlap.
type Rules[In, Out any] struct {
	rules    []Rule[In, Out]
	fallback Out
}

// FallbackName is reported by First when no rule matched.
const FallbackName = "fallback"

// NewRules builds a rule list evaluated top to bottom.
func NewRules[In, Out any](fallback Out, rules ...Rule[In, Out]) Rules[In, Out] {
	return Rules[In, Out]{rules: rules, fallback: fallback}
}

// First returns the outcome of the first matching rule and its name, or the
// fallback outcome and FallbackName.
func (r Rules[In, Out]) First(in In) (Out, string) {
	for _, rule := range r.rules {
		if rule.Match(in) {
			return rule.Then, rule.Name
		}
	}
	return r.fallback, FallbackName
}

// Names returns the rule names in evaluation order, fallback last.
func (r Rules[In, Out]) Names() []string {
	names := make([]string, 0, len(r.rules)+1)
	for _, rule := range r.rules {
		names = append(names, rule.Name)
	}
	return append(names, FallbackName)
}
