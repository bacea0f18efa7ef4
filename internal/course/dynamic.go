package course

import (
	"fmt"
	"strings"
)

// Capability is one of Teece's dynamic capability clusters.
type Capability string

const (
	CapabilitySensing       Capability = "Sensing"
	CapabilitySeizing       Capability = "Seizing"
	CapabilityReconfiguring Capability = "Reconfiguring"
)

// AllCapabilities returns the capability tags in selector order.
func AllCapabilities() []Capability {
	return []Capability{CapabilitySensing, CapabilitySeizing, CapabilityReconfiguring}
}

// ParseCapability resolves a label or slug to a Capability.
func ParseCapability(s string) (Capability, error) {
	return parseOption("tag", s, AllCapabilities())
}

// Action is a firm action on the tagging exercise.
type Action string

const (
	ActionScanningUnit Action = "Launch an internal market scanning unit for AI trends"
	ActionSubscription Action = "Invest heavily in a new subscription-based product"
	ActionShutDown     Action = "Shut down a legacy division and retrain employees"
	ActionSurveys      Action = "Run surveys to understand changing customer needs"
)

// AllActions returns the actions in selector order.
func AllActions() []Action {
	return []Action{ActionScanningUnit, ActionSubscription, ActionShutDown, ActionSurveys}
}

// ParseAction resolves a label or slug to an Action.
func ParseAction(s string) (Action, error) {
	return parseOption("action", s, AllActions())
}

var capabilityKey = map[Action]Capability{
	ActionScanningUnit: CapabilitySensing,
	ActionSubscription: CapabilitySeizing,
	ActionShutDown:     CapabilityReconfiguring,
	ActionSurveys:      CapabilitySensing,
}

// CorrectCapability returns the answer key for an action.
func CorrectCapability(a Action) (Capability, error) {
	c, ok := capabilityKey[a]
	if !ok {
		return "", fmt.Errorf("%w: action %q", ErrUnknownKey, string(a))
	}
	return c, nil
}

// CheckCapability reports whether tag is the correct capability for a.
func CheckCapability(a Action, tag Capability) (bool, error) {
	want, err := CorrectCapability(a)
	if err != nil {
		return false, err
	}
	if err := checkOption("tag", tag, AllCapabilities()); err != nil {
		return false, err
	}
	return tag == want, nil
}

// Story is the learner's sense-seize-reconfigure storyline.
type Story struct {
	Sensing       string
	Seizing       string
	Reconfiguring string
}

// SummarizeStory renders the adaptation story lines with placeholders for
// parts not written yet.
func SummarizeStory(s Story) []SummaryLine {
	const placeholder = "not written yet"
	return []SummaryLine{
		summaryLine("Sensing", s.Sensing, placeholder),
		summaryLine("Seizing", s.Seizing, placeholder),
		summaryLine("Reconfiguring", s.Reconfiguring, placeholder),
	}
}

// Empty reports whether nothing has been written yet.
func (s Story) Empty() bool {
	return strings.TrimSpace(s.Sensing+s.Seizing+s.Reconfiguring) == ""
}
