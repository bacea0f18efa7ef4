package coach

import "time"

// Config tunes one coach request.
type Config struct {
	MaxTokens   int
	Temperature float64
	// Timeout bounds a whole review, retries included.
	Timeout time.Duration
}

func DefaultConfig() Config {
	return Config{MaxTokens: 400, Temperature: 0.3, Timeout: 45 * time.Second}
}

// ConfigFor is DefaultConfig with the request timeout taken from the LLM
// settings when one is set.
func ConfigFor(timeout time.Duration) Config {
	c := DefaultConfig()
	if timeout > 0 {
		c.Timeout = timeout
	}
	return c
}
