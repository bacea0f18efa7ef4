package course

import "fmt"

// Range is an inclusive slider range.
type Range struct {
	Min int
	Max int
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Clamp returns v limited to the range.
func (r Range) Clamp(v int) int {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Upper slider bounds on the value stick. Each lower bound is the previous
// slider's current value; the first starts at zero.
const (
	SupplierCostMax = 100
	CostMax         = 120
	PriceMax        = 150
	WTPMax          = 200
)

// Stick holds the four points of the value stick, bottom to top.
type Stick struct {
	SupplierCost int // suppliers' opportunity cost (WTS / SOC)
	Cost         int
	Price        int
	WTP          int
}

// DefaultStick returns the initial slider positions.
func DefaultStick() Stick {
	return Stick{SupplierCost: 30, Cost: 50, Price: 80, WTP: 120}
}

// Ranges returns the current slider ranges in bottom-to-top order. Each
// range's minimum is the value of the slider below it.
func (s Stick) Ranges() [4]Range {
	return [4]Range{
		{Min: 0, Max: SupplierCostMax},
		{Min: s.SupplierCost, Max: CostMax},
		{Min: s.Cost, Max: PriceMax},
		{Min: s.Price, Max: WTPMax},
	}
}

// ClampStick raises each point to at least the point below it and limits it
// to its upper bound, bottom to top. The result always satisfies the stick
// ordering.
func ClampStick(s Stick) Stick {
	s.SupplierCost = Range{Min: 0, Max: SupplierCostMax}.Clamp(s.SupplierCost)
	s.Cost = Range{Min: s.SupplierCost, Max: CostMax}.Clamp(s.Cost)
	s.Price = Range{Min: s.Cost, Max: PriceMax}.Clamp(s.Price)
	s.WTP = Range{Min: s.Price, Max: WTPMax}.Clamp(s.WTP)
	return s
}

// Validate checks ordering and bounds: 0 <= SupplierCost <= Cost <= Price <= WTP,
// each within its slider's upper bound.
func (s Stick) Validate() error {
	names := [4]string{"supplier cost", "cost", "price", "willingness to pay"}
	values := [4]int{s.SupplierCost, s.Cost, s.Price, s.WTP}
	for i, r := range s.Ranges() {
		if !r.Contains(values[i]) {
			return fmt.Errorf("%w: %s %d not in [%d, %d]", ErrContract, names[i], values[i], r.Min, r.Max)
		}
	}
	return nil
}

// Decomposition splits the value created along the stick.
type Decomposition struct {
	CustomerSurplus int // WTP - price
	FirmProfit      int // price - cost
	SupplierSurplus int // cost - supplier opportunity cost
	TotalValue      int // WTP - supplier opportunity cost
}

// Decompose computes the value captured by customers, the firm and suppliers.
func Decompose(s Stick) (Decomposition, error) {
	if err := s.Validate(); err != nil {
		return Decomposition{}, err
	}
	return Decomposition{
		CustomerSurplus: s.WTP - s.Price,
		FirmProfit:      s.Price - s.Cost,
		SupplierSurplus: s.Cost - s.SupplierCost,
		TotalValue:      s.WTP - s.SupplierCost,
	}, nil
}

// Component is one bar of the value stick chart.
type Component struct {
	Name  string
	Value int
}

// Components returns the three captured-value bars in chart order.
func (d Decomposition) Components() []Component {
	return []Component{
		{Name: "Customer surplus", Value: d.CustomerSurplus},
		{Name: "Firm profit", Value: d.FirmProfit},
		{Name: "Supplier surplus", Value: d.SupplierSurplus},
	}
}

// StickCaption is shown under the decomposition.
const StickCaption = "Try lowering cost vs raising WTP and see how it changes value creation and capture."
