package items

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

// SeedItems decodes the built-in sample items.
func SeedItems() ([]Item, error) {
	var out []Item
	if err := yaml.Unmarshal(seedYAML, &out); err != nil {
		return nil, fmt.Errorf("decode seed data: %w", err)
	}
	return out, nil
}

// Seed stores the sample items. It is meant for an empty collection and
// does not notify OnAdd handlers.
func (c *Collection) Seed(ctx context.Context) (int, error) {
	batch, err := SeedItems()
	if err != nil {
		return 0, err
	}
	for i := range batch {
		if batch[i].Type == "" {
			batch[i].Type = DefaultType
		}
		if err := batch[i].Validate(); err != nil {
			return 0, fmt.Errorf("seed item %s: %w", batch[i].ID, err)
		}
	}
	if err := c.insertAll(ctx, batch); err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}
	c.log.Info("sample data created", "count", len(batch))
	return len(batch), nil
}
