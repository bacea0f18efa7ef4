package course

import "fmt"

// Level is a stylised force intensity.
type Level string

const (
	LevelLow    Level = "Low"
	LevelMedium Level = "Medium"
	LevelHigh   Level = "High"
)

// AllLevels returns the intensity levels in ascending order.
func AllLevels() []Level {
	return []Level{LevelLow, LevelMedium, LevelHigh}
}

// Force is one of Porter's five competitive pressures.
type Force string

const (
	ForceEntrants    Force = "Threat of new entrants"
	ForceSuppliers   Force = "Bargaining power of suppliers"
	ForceBuyers      Force = "Bargaining power of buyers"
	ForceSubstitutes Force = "Threat of substitutes"
	ForceRivalry     Force = "Rivalry among existing firms"
)

// AllForces returns the forces in the fixed order used by every intensity
// sequence.
func AllForces() []Force {
	return []Force{ForceEntrants, ForceSuppliers, ForceBuyers, ForceSubstitutes, ForceRivalry}
}

// Industry is an industry on the Five Forces page.
type Industry string

const (
	IndustryAirlines        Industry = "Airlines"
	IndustrySoftDrinks      Industry = "Soft Drinks"
	IndustryFastFood        Industry = "Fast Food"
	IndustryPharmaceuticals Industry = "Pharmaceuticals"
	IndustryConsulting      Industry = "Consulting"
)

// AllIndustries returns the Five Forces industries in display order.
func AllIndustries() []Industry {
	return []Industry{
		IndustryAirlines,
		IndustrySoftDrinks,
		IndustryFastFood,
		IndustryPharmaceuticals,
		IndustryConsulting,
	}
}

// ParseIndustry resolves a label or slug to an Industry.
func ParseIndustry(s string) (Industry, error) {
	return parseOption("industry", s, AllIndustries())
}

// Intensities is an intensity sequence indexed in AllForces order.
type Intensities [5]Level

var forceTable = map[Industry]Intensities{
	IndustryAirlines:        {LevelHigh, LevelHigh, LevelHigh, LevelHigh, LevelLow},
	IndustrySoftDrinks:      {LevelLow, LevelMedium, LevelMedium, LevelMedium, LevelHigh},
	IndustryFastFood:        {LevelMedium, LevelMedium, LevelHigh, LevelMedium, LevelMedium},
	IndustryPharmaceuticals: {LevelLow, LevelMedium, LevelLow, LevelMedium, LevelHigh},
	IndustryConsulting:      {LevelMedium, LevelLow, LevelLow, LevelMedium, LevelMedium},
}

// ForcesCaption is shown under the intensity table.
const ForcesCaption = "High intensity = pressure on profits. The more High you see, the less attractive the industry."

// ForceIntensities returns the stylised intensity of each force for an
// industry, in AllForces order.
func ForceIntensities(ind Industry) (Intensities, error) {
	levels, ok := forceTable[ind]
	if !ok {
		return Intensities{}, fmt.Errorf("%w: industry %q", ErrUnknownKey, string(ind))
	}
	return levels, nil
}

// ForceRow is one row of the rendered Five Forces table.
type ForceRow struct {
	Force Force
	Level Level
}

// ForceTable returns the intensity table rows for an industry.
func ForceTable(ind Industry) ([]ForceRow, error) {
	levels, err := ForceIntensities(ind)
	if err != nil {
		return nil, err
	}
	forces := AllForces()
	rows := make([]ForceRow, len(forces))
	for i, f := range forces {
		rows[i] = ForceRow{Force: f, Level: levels[i]}
	}
	return rows, nil
}

// HighCount returns how many forces are at High intensity. More High forces
// means a less attractive industry.
func (in Intensities) HighCount() int {
	n := 0
	for _, l := range in {
		if l == LevelHigh {
			n++
		}
	}
	return n
}

// Stage is a phase of the industry life cycle.
type Stage int

const (
	StageIntroduction Stage = iota + 1
	StageGrowth
	StageMaturity
	StageDecline
)

// Life cycle slider bounds.
const (
	MinStage     = int(StageIntroduction)
	MaxStage     = int(StageDecline)
	DefaultStage = int(StageMaturity)
)

// AllStages returns the life cycle stages in order.
func AllStages() []Stage {
	return []Stage{StageIntroduction, StageGrowth, StageMaturity, StageDecline}
}

func (s Stage) String() string {
	switch s {
	case StageIntroduction:
		return "Introduction"
	case StageGrowth:
		return "Growth"
	case StageMaturity:
		return "Maturity"
	case StageDecline:
		return "Decline"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

var stageNotes = map[Stage]string{
	StageIntroduction: "Few players, lots of uncertainty, experimentation, low profits but big upside.",
	StageGrowth:       "Demand exploding, many entrants, capacity expansion, still good profitability.",
	StageMaturity:     "Market saturates; rivalry intensifies; focus on efficiency and differentiation.",
	StageDecline:      "Shrinking demand, excess capacity, price wars, many exits or consolidation.",
}

// LifeCycle maps a slider position (1-4) to its stage and description.
func LifeCycle(stage int) (Stage, string, error) {
	if stage < MinStage || stage > MaxStage {
		return 0, "", fmt.Errorf("%w: life cycle stage %d not in [%d, %d]", ErrOutOfRange, stage, MinStage, MaxStage)
	}
	s := Stage(stage)
	return s, stageNotes[s], nil
}
