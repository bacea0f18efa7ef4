package page

import (
	"strings"

	"github.com/abhisek/stratiz/internal/course"
)

// dimensionLabels holds the on-screen prompt per topic dimension.
var dimensionLabels = map[string]string{
	"pestel.factor":             "Type a trend or event (e.g. EU carbon tax, aging population)",
	"pestel.dimension":          "Which PESTEL dimension fits best?",
	"trend.industry":            "Pick an industry",
	"trend.trend":               "Pick a macro trend",
	"five-forces.industry":      "Choose an industry",
	"life-cycle.stage":          "Where is your chosen industry in its life cycle?",
	"value-stick.supplier-cost": "Suppliers' opportunity cost (WTS / SOC)",
	"value-stick.cost":          "Your cost (per unit)",
	"value-stick.price":         "Price you charge",
	"value-stick.wtp":           "Customer willingness to pay (WTP)",
	"generic-strategy.wtp":      "Relative WTP level vs rivals",
	"generic-strategy.cost":     "Relative cost level vs rivals",
	"generic-strategy.scope":    "Scope of target",
	"strategy-clock.position":   "Which strategic zone are you exploring?",
	"blue-ocean.industry":       "Industry",
	"blue-ocean.raise":          "Raise (do more of)",
	"blue-ocean.reduce":         "Reduce (do less of)",
	"blue-ocean.create":         "Create (new factors)",
	"blue-ocean.eliminate":      "Eliminate (remove entirely)",
	"segment.name":              "Name of segment",
	"segment.ksfs":              "Select key success factors for this segment",
	"resource.resource":         "Pick a resource example",
	"vrio.valuable":             "Valuable (helps exploit opportunities / neutralize threats)",
	"vrio.rare":                 "Rare (few competitors have it)",
	"vrio.costly-to-imitate":    "Costly to imitate (or non-substitutable)",
	"vrio.organized":            "Organized (firm is structured to capture value from it)",
	"capability.action":         "Pick an action",
	"capability.tag":            "This is mostly...",
	"story.sensing":             "1. How do they sense the change?",
	"story.seizing":             "2. How do they seize the opportunity?",
	"story.reconfiguring":       "3. How do they reconfigure their assets and capabilities?",
}

func fieldName(prefix, dim string) string {
	return prefix + "." + dim
}

func dimensionLabel(name string) string {
	if l, ok := dimensionLabels[name]; ok {
		return l
	}
	_, dim, _ := strings.Cut(name, ".")
	dim = strings.ReplaceAll(dim, "-", " ")
	if dim == "" {
		return name
	}
	return strings.ToUpper(dim[:1]) + dim[1:]
}

func stageNames() map[int]string {
	names := make(map[int]string)
	for _, s := range course.AllStages() {
		names[int(s)] = s.String()
	}
	return names
}
