package course

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Topic identifies an evaluable exercise.
type Topic string

const (
	TopicPESTEL          Topic = "pestel"
	TopicTrend           Topic = "trend"
	TopicFiveForces      Topic = "five-forces"
	TopicLifeCycle       Topic = "life-cycle"
	TopicValueStick      Topic = "value-stick"
	TopicGenericStrategy Topic = "generic-strategy"
	TopicStrategyClock   Topic = "strategy-clock"
	TopicBlueOcean       Topic = "blue-ocean"
	TopicSegment         Topic = "segment"
	TopicResource        Topic = "resource"
	TopicVRIO            Topic = "vrio"
	TopicCapability      Topic = "capability"
)

// AllTopics returns the evaluable topics in course order.
func AllTopics() []Topic {
	return []Topic{
		TopicPESTEL,
		TopicTrend,
		TopicFiveForces,
		TopicLifeCycle,
		TopicValueStick,
		TopicGenericStrategy,
		TopicStrategyClock,
		TopicBlueOcean,
		TopicSegment,
		TopicResource,
		TopicVRIO,
		TopicCapability,
	}
}

// Selection maps a dimension name to the chosen value. Multi-valued
// dimensions are comma-separated; booleans accept true/false/yes/no.
type Selection map[string]string

// Row is one name/value line of an outcome table.
type Row struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Result is the outcome of evaluating a selection.
type Result struct {
	Topic       Topic  `json:"topic"`
	Label       string `json:"label"`
	Explanation string `json:"explanation,omitempty"`
	Rule        string `json:"rule,omitempty"`
	Rows        []Row  `json:"rows,omitempty"`
}

// Kind describes how a dimension's value is entered.
type Kind string

const (
	KindChoice Kind = "choice"
	KindMulti  Kind = "multi"
	KindNumber Kind = "number"
	KindBool   Kind = "bool"
	KindText   Kind = "text"
)

// DimensionSpec declares one input of a topic.
type DimensionSpec struct {
	Name     string
	Kind     Kind
	Values   []string // allowed values for choice and multi
	Range    Range    // bounds for number
	Default  string
	Optional bool
}

type topicDef struct {
	title string
	dims  []DimensionSpec
	eval  func(Selection) (Result, error)
}

// Title returns the display title of a topic.
func (t Topic) Title() string {
	if d, ok := topics[t]; ok {
		return d.title
	}
	return string(t)
}

// ParseTopic resolves a topic ID.
func ParseTopic(s string) (Topic, error) {
	t := Topic(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := topics[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTopic, s)
	}
	return t, nil
}

// Dimensions returns the declared inputs of a topic.
func Dimensions(t Topic) ([]DimensionSpec, error) {
	d, ok := topics[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTopic, string(t))
	}
	return slices.Clone(d.dims), nil
}

// WithDefaults returns a copy of sel with every absent dimension set to its
// declared default.
func WithDefaults(t Topic, sel Selection) (Selection, error) {
	dims, err := Dimensions(t)
	if err != nil {
		return nil, err
	}
	out := make(Selection, len(dims))
	for k, v := range sel {
		out[k] = v
	}
	for _, d := range dims {
		if _, ok := out[d.Name]; !ok && d.Default != "" {
			out[d.Name] = d.Default
		}
	}
	return out, nil
}

// Evaluate runs the rule evaluator for a topic. Every dimension not marked
// optional is required, and dimensions the topic does not declare are rejected.
func Evaluate(t Topic, sel Selection) (Result, error) {
	d, ok := topics[t]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownTopic, string(t))
	}
	for name := range sel {
		if !slices.ContainsFunc(d.dims, func(ds DimensionSpec) bool { return ds.Name == name }) {
			return Result{}, fmt.Errorf("%s: %w: dimension %q", t, ErrUnknownKey, name)
		}
	}
	for _, ds := range d.dims {
		if _, ok := sel[ds.Name]; !ok && !ds.Optional {
			return Result{}, fmt.Errorf("%s: %w: %q", t, ErrMissingDimension, ds.Name)
		}
	}
	out, err := d.eval(sel)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", t, err)
	}
	out.Topic = t
	return out, nil
}

func choice(name string, values []string, def string) DimensionSpec {
	return DimensionSpec{Name: name, Kind: KindChoice, Values: values, Default: def}
}

func number(name string, r Range, def int) DimensionSpec {
	return DimensionSpec{Name: name, Kind: KindNumber, Range: r, Default: strconv.Itoa(def)}
}

func flag(name string) DimensionSpec {
	return DimensionSpec{Name: name, Kind: KindBool, Values: []string{"true", "false"}, Default: "false"}
}

func text(name, def string, optional bool) DimensionSpec {
	return DimensionSpec{Name: name, Kind: KindText, Default: def, Optional: optional}
}

func intValue(sel Selection, name string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(sel[name]))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrContract, name, sel[name])
	}
	return n, nil
}

func boolValue(sel Selection, name string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(sel[name])) {
	case "true", "yes", "y", "1":
		return true, nil
	case "false", "no", "n", "0":
		return false, nil
	}
	return false, fmt.Errorf("%w: %s %q is not a boolean", ErrContract, name, sel[name])
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

var topics = map[Topic]topicDef{
	TopicPESTEL: {
		title: "Classify events with PESTEL",
		dims: []DimensionSpec{
			text("factor", DefaultFactor, false),
			choice("dimension", labels(AllDimensions()), string(DimensionPolitical)),
		},
		eval: evalPESTEL,
	},
	TopicTrend: {
		title: "Threat or opportunity?",
		dims: []DimensionSpec{
			choice("industry", labels(AllMacroIndustries()), string(MacroOilGas)),
			choice("trend", labels(AllMacroTrends()), string(TrendCarbonRegulation)),
		},
		eval: evalTrend,
	},
	TopicFiveForces: {
		title: "Five Forces by industry",
		dims:  []DimensionSpec{choice("industry", labels(AllIndustries()), string(IndustryAirlines))},
		eval:  evalFiveForces,
	},
	TopicLifeCycle: {
		title: "Industry life cycle",
		dims:  []DimensionSpec{number("stage", Range{Min: MinStage, Max: MaxStage}, DefaultStage)},
		eval:  evalLifeCycle,
	},
	TopicValueStick: {
		title: "Value stick",
		dims: []DimensionSpec{
			number("supplier-cost", Range{Min: 0, Max: SupplierCostMax}, DefaultStick().SupplierCost),
			number("cost", Range{Min: 0, Max: CostMax}, DefaultStick().Cost),
			number("price", Range{Min: 0, Max: PriceMax}, DefaultStick().Price),
			number("wtp", Range{Min: 0, Max: WTPMax}, DefaultStick().WTP),
		},
		eval: evalValueStick,
	},
	TopicGenericStrategy: {
		title: "Generic strategies",
		dims: []DimensionSpec{
			choice("wtp", labels(AllRelativeLevels()), string(RelativeLower)),
			choice("cost", labels(AllRelativeLevels()), string(RelativeLower)),
			choice("scope", labels(AllScopes()), string(ScopeBroad)),
		},
		eval: evalGenericStrategy,
	},
	TopicStrategyClock: {
		title: "Strategy clock",
		dims:  []DimensionSpec{choice("position", labels(AllClockPositions()), string(ClockNoFrills))},
		eval:  evalStrategyClock,
	},
	TopicBlueOcean: {
		title: "Blue Ocean value curve",
		dims: []DimensionSpec{
			choice("industry", labels(AllBlueOceanIndustries()), string(OceanWine)),
			text("raise", "", true),
			text("reduce", "", true),
			text("create", "", true),
			text("eliminate", "", true),
		},
		eval: evalBlueOcean,
	},
	TopicSegment: {
		title: "Segment & KSFs",
		dims: []DimensionSpec{
			text("name", DefaultSegment, false),
			{
				Name:     "ksfs",
				Kind:     KindMulti,
				Values:   labels(AllKSFs()),
				Default:  strings.Join(labels(DefaultKSFs()), ","),
				Optional: true,
			},
		},
		eval: evalSegment,
	},
	TopicResource: {
		title: "Classify resources",
		dims:  []DimensionSpec{choice("resource", labels(AllResourceExamples()), string(ResourceCash))},
		eval:  evalResource,
	},
	TopicVRIO: {
		title: "VRIO evaluator",
		dims:  []DimensionSpec{flag("valuable"), flag("rare"), flag("costly-to-imitate"), flag("organized")},
		eval:  evalVRIO,
	},
	TopicCapability: {
		title: "Sensing, seizing or reconfiguring",
		dims: []DimensionSpec{
			choice("action", labels(AllActions()), string(ActionScanningUnit)),
			choice("tag", labels(AllCapabilities()), string(CapabilitySensing)),
		},
		eval: evalCapability,
	},
}

func evalPESTEL(sel Selection) (Result, error) {
	d, err := ParseDimension(sel["dimension"])
	if err != nil {
		return Result{}, err
	}
	c, err := Classify(sel["factor"], d)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Label:       string(c.Dimension),
		Explanation: c.Sentence() + " " + ClassifyPrompt,
		Rows:        []Row{{Name: "Factor", Value: c.Factor}},
	}, nil
}

func evalTrend(sel Selection) (Result, error) {
	ind, err := ParseMacroIndustry(sel["industry"])
	if err != nil {
		return Result{}, err
	}
	trend, err := ParseMacroTrend(sel["trend"])
	if err != nil {
		return Result{}, err
	}
	impact, rule := trendRules.First(TrendInput{Industry: ind, Trend: trend})
	return Result{
		Label:       impact.Label(),
		Explanation: impact.Explanation,
		Rule:        rule,
		Rows: []Row{
			{Name: "Threat", Value: yesNo(impact.Threat)},
			{Name: "Opportunity", Value: yesNo(impact.Opportunity)},
		},
	}, nil
}

// Label summarises the impact in a few words.
func (i Impact) Label() string {
	switch {
	case i.Threat && i.Opportunity:
		return "Threat and opportunity"
	case i.Threat:
		return "Threat"
	case i.Opportunity:
		return "Opportunity"
	default:
		return "Depends on the business model"
	}
}

func evalFiveForces(sel Selection) (Result, error) {
	ind, err := ParseIndustry(sel["industry"])
	if err != nil {
		return Result{}, err
	}
	rows, err := ForceTable(ind)
	if err != nil {
		return Result{}, err
	}
	levels, _ := ForceIntensities(ind)
	out := Result{
		Label:       fmt.Sprintf("%s: %d of %d forces high", ind, levels.HighCount(), len(levels)),
		Explanation: ForcesCaption,
	}
	for _, r := range rows {
		out.Rows = append(out.Rows, Row{Name: string(r.Force), Value: string(r.Level)})
	}
	return out, nil
}

func evalLifeCycle(sel Selection) (Result, error) {
	n, err := intValue(sel, "stage")
	if err != nil {
		return Result{}, err
	}
	stage, note, err := LifeCycle(n)
	if err != nil {
		return Result{}, err
	}
	return Result{Label: stage.String(), Explanation: note}, nil
}

func evalValueStick(sel Selection) (Result, error) {
	var s Stick
	var err error
	for _, f := range []struct {
		name string
		dst  *int
	}{
		{"supplier-cost", &s.SupplierCost},
		{"cost", &s.Cost},
		{"price", &s.Price},
		{"wtp", &s.WTP},
	} {
		if *f.dst, err = intValue(sel, f.name); err != nil {
			return Result{}, err
		}
	}
	d, err := Decompose(s)
	if err != nil {
		return Result{}, err
	}
	out := Result{
		Label:       fmt.Sprintf("Total value created (WTP − WTS): %d", d.TotalValue),
		Explanation: StickCaption,
	}
	for _, c := range d.Components() {
		out.Rows = append(out.Rows, Row{Name: c.Name, Value: strconv.Itoa(c.Value)})
	}
	out.Rows = append(out.Rows, Row{Name: "Total value created", Value: strconv.Itoa(d.TotalValue)})
	return out, nil
}

func evalGenericStrategy(sel Selection) (Result, error) {
	wtp, err := ParseRelativeLevel("wtp", sel["wtp"])
	if err != nil {
		return Result{}, err
	}
	cost, err := ParseRelativeLevel("cost", sel["cost"])
	if err != nil {
		return Result{}, err
	}
	scope, err := ParseScope(sel["scope"])
	if err != nil {
		return Result{}, err
	}
	s, rule := strategyRules.First(Positioning{WTP: wtp, Cost: cost, Scope: scope})
	return Result{Label: string(s), Rule: rule}, nil
}

func evalStrategyClock(sel Selection) (Result, error) {
	p, err := ParseClockPosition(sel["position"])
	if err != nil {
		return Result{}, err
	}
	e, err := ClockExplanation(p)
	if err != nil {
		return Result{}, err
	}
	return Result{Label: string(p), Explanation: e}, nil
}

func evalBlueOcean(sel Selection) (Result, error) {
	ind, err := ParseBlueOceanIndustry(sel["industry"])
	if err != nil {
		return Result{}, err
	}
	sum, err := SummarizeBlueOcean(ind, Grid{
		Raise:     sel["raise"],
		Reduce:    sel["reduce"],
		Create:    sel["create"],
		Eliminate: sel["eliminate"],
	})
	if err != nil {
		return Result{}, err
	}
	out := Result{Label: "Your Blue Ocean snapshot for " + string(ind)}
	for _, l := range sum.Lines {
		out.Rows = append(out.Rows, Row{Name: l.Label, Value: l.Text})
	}
	return out, nil
}

func evalSegment(sel Selection) (Result, error) {
	var ksfs []KSF
	for _, part := range strings.Split(sel["ksfs"], ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		k, err := ParseKSF(part)
		if err != nil {
			return Result{}, err
		}
		ksfs = append(ksfs, k)
	}
	seg, err := SummarizeSegment(sel["name"], ksfs)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Label:       seg.Name,
		Explanation: fmt.Sprintf("For %s, your chosen KSFs are: %s", seg.Name, seg.FactorList()),
		Rows:        []Row{{Name: "KSFs", Value: seg.FactorList()}},
	}, nil
}

func evalResource(sel Selection) (Result, error) {
	r, err := ParseResourceExample(sel["resource"])
	if err != nil {
		return Result{}, err
	}
	note, err := DescribeResource(r)
	if err != nil {
		return Result{}, err
	}
	return Result{Label: string(r), Explanation: note}, nil
}

func evalVRIO(sel Selection) (Result, error) {
	var v VRIO
	var err error
	for _, f := range []struct {
		name string
		dst  *bool
	}{
		{"valuable", &v.Valuable},
		{"rare", &v.Rare},
		{"costly-to-imitate", &v.CostlyToImitate},
		{"organized", &v.Organized},
	} {
		if *f.dst, err = boolValue(sel, f.name); err != nil {
			return Result{}, err
		}
	}
	verdict, rule := vrioRules.First(v)
	return Result{
		Label:       string(verdict.Outcome),
		Explanation: verdict.Message,
		Rule:        rule,
		Rows:        []Row{{Name: "Tone", Value: string(verdict.Tone)}},
	}, nil
}

func evalCapability(sel Selection) (Result, error) {
	a, err := ParseAction(sel["action"])
	if err != nil {
		return Result{}, err
	}
	tag, err := ParseCapability(sel["tag"])
	if err != nil {
		return Result{}, err
	}
	ok, err := CheckCapability(a, tag)
	if err != nil {
		return Result{}, err
	}
	want, _ := CorrectCapability(a)
	if ok {
		return Result{Label: "Correct", Explanation: "Yes!", Rows: []Row{{Name: "Answer", Value: string(want)}}}, nil
	}
	return Result{
		Label:       "Not quite",
		Explanation: fmt.Sprintf("More like %s in the Teece framework.", want),
		Rows:        []Row{{Name: "Answer", Value: string(want)}},
	}, nil
}
