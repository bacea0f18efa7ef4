package llm

// aliases are the short model names accepted in configuration.
var aliases = map[string]string{
	"claude-sonnet": "claude-sonnet-4-20250514",
	"claude-haiku":  "claude-haiku-4-5-20251001",
	"gpt-4o":        "gpt-4o",
	"gpt-4o-mini":   "gpt-4o-mini",
	"gemini-flash":  "gemini-2.0-flash",
	"gemini-pro":    "gemini-2.0-pro",
}

// resolveModel expands an alias; anything else is taken as a model ID.
func resolveModel(name string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}

// ModelCost is USD per million tokens.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost returns the USD cost of a request with the given token counts.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return (float64(inputTokens)*c.InputPerMTok + float64(outputTokens)*c.OutputPerMTok) / 1e6
}

// LookupCost returns pricing for a served model ID, or nil if unknown.
func LookupCost(modelID string) *ModelCost {
	if c, ok := prices[modelID]; ok {
		return &c
	}
	return nil
}

// prices covers every alias target and the OpenRouter default.
var prices = map[string]ModelCost{
	"claude-haiku-4-5-20251001":   {1, 5},
	"claude-sonnet-4-20250514":    {3, 15},
	"gpt-4o":                      {2.5, 10},
	"gpt-4o-mini":                 {0.15, 0.6},
	"gemini-2.0-flash":            {0.1, 0.4},
	"gemini-2.0-pro":              {1.25, 10},
	"google/gemini-2.0-flash-exp": {0, 0},
}
