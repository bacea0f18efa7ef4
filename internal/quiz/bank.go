package quiz

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/stratiz/internal/course"
)

//go:embed bank.yaml
var bankYAML []byte

// Bank is an ordered, ID-indexed set of quiz items.
type Bank struct {
	items []Item
	byID  map[string]int
}

type bankFile struct {
	Items []Item `yaml:"items"`
}

// Parse decodes and validates a YAML quiz bank.
func Parse(data []byte) (*Bank, error) {
	var f bankFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding quiz bank: %w", err)
	}
	b := &Bank{items: f.Items, byID: make(map[string]int, len(f.Items))}
	for i, it := range f.Items {
		if _, dup := b.byID[it.ID]; !dup {
			b.byID[it.ID] = i
		}
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

var (
	defaultOnce sync.Once
	defaultBank *Bank
)

// Default returns the embedded course bank. It panics if the embedded file
// is invalid, which the package tests rule out.
func Default() *Bank {
	defaultOnce.Do(func() {
		b, err := Parse(bankYAML)
		if err != nil {
			panic(err)
		}
		defaultBank = b
	})
	return defaultBank
}

// Validate checks that IDs are unique, every item has at least two options,
// the correct index is in range and the topic is known.
// Returns a combined error describing all problems found, or nil if valid.
func (b *Bank) Validate() error {
	var errs []string
	seen := make(map[string]bool, len(b.items))
	for i, it := range b.items {
		name := it.ID
		if name == "" {
			name = fmt.Sprintf("item %d", i)
			errs = append(errs, fmt.Sprintf("%s: missing id", name))
		}
		if seen[it.ID] && it.ID != "" {
			errs = append(errs, fmt.Sprintf("%s: duplicate id", name))
		}
		seen[it.ID] = true
		if strings.TrimSpace(it.Question) == "" {
			errs = append(errs, fmt.Sprintf("%s: empty question", name))
		}
		if len(it.Options) < 2 {
			errs = append(errs, fmt.Sprintf("%s: needs at least 2 options, has %d", name, len(it.Options)))
		}
		if it.CorrectIndex < 0 || it.CorrectIndex >= len(it.Options) {
			errs = append(errs, fmt.Sprintf("%s: correct index %d out of range", name, it.CorrectIndex))
		}
		if _, err := course.ParseTopic(string(it.Topic)); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", name, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("quiz bank validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// Items returns all items in bank order.
func (b *Bank) Items() []Item {
	return slices.Clone(b.items)
}

// Item returns the item with the given ID.
func (b *Bank) Item(id string) (Item, error) {
	i, ok := b.byID[id]
	if !ok {
		return Item{}, fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	return b.items[i], nil
}

// ForTopics returns the items attached to any of the given topics, in bank order.
func (b *Bank) ForTopics(topics ...course.Topic) []Item {
	var out []Item
	for _, it := range b.items {
		if slices.Contains(topics, it.Topic) {
			out = append(out, it)
		}
	}
	return out
}

// Len returns the number of items.
func (b *Bank) Len() int { return len(b.items) }
