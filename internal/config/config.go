package config

import (
	"delivery-cost-service/internal/domain"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config describes the delivery topology: the hub, the supply centers, the
// directed distance table, the product catalog, and the cost per unit of
// distance. It is loaded once at startup and never mutated afterwards.
type Config struct {
	Hub       string                        `yaml:"hub"`
	Centers   []string                      `yaml:"centers"`
	UnitCost  float64                       `yaml:"unit_cost"`
	Distances map[string]map[string]float64 `yaml:"distances"`
	Catalog   map[string]string             `yaml:"catalog"`
}

// Default returns the built-in topology: three centers around hub L1 with
// symmetric distances and products A-I split evenly across the centers.
func Default() *Config {
	return &Config{
		Hub:      "L1",
		Centers:  []string{"C1", "C2", "C3"},
		UnitCost: 3,
		Distances: map[string]map[string]float64{
			"C1": {"L1": 3, "C2": 4, "C3": 3},
			"C2": {"L1": 2.5, "C1": 4, "C3": 3},
			"C3": {"L1": 2, "C1": 3, "C2": 3},
			"L1": {"C1": 3, "C2": 2.5, "C3": 2},
		},
		Catalog: map[string]string{
			"A": "C1", "B": "C1", "C": "C1",
			"D": "C2", "E": "C2", "F": "C2",
			"G": "C3", "H": "C3", "I": "C3",
		},
	}
}

// Load reads and validates a topology from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: read %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("load config: parse %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config: %q: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks the topology for internal consistency.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Hub) == "" {
		return errors.New("validate config: hub must be non-empty")
	}
	if len(c.Centers) == 0 {
		return errors.New("validate config: at least one center is required")
	}
	if c.UnitCost <= 0 {
		return fmt.Errorf("validate config: unit_cost must be positive, got %v", c.UnitCost)
	}

	known := map[string]struct{}{c.Hub: {}}
	for _, center := range c.Centers {
		if strings.TrimSpace(center) == "" {
			return errors.New("validate config: center names must be non-empty")
		}
		if center == c.Hub {
			return fmt.Errorf("validate config: center %q collides with the hub", center)
		}
		if _, dup := known[center]; dup {
			return fmt.Errorf("validate config: duplicate center %q", center)
		}
		known[center] = struct{}{}
	}

	for product, center := range c.Catalog {
		if strings.TrimSpace(product) == "" {
			return errors.New("validate config: catalog product ids must be non-empty")
		}
		if _, ok := known[center]; !ok || center == c.Hub {
			return fmt.Errorf("validate config: product %q references unknown center %q", product, center)
		}
	}

	for from, row := range c.Distances {
		if _, ok := known[from]; !ok {
			return fmt.Errorf("validate config: distance from unknown location %q", from)
		}
		for to, d := range row {
			if _, ok := known[to]; !ok {
				return fmt.Errorf("validate config: distance from %q to unknown location %q", from, to)
			}
			if d < 0 {
				return fmt.Errorf("validate config: distance %q -> %q must be non-negative, got %v", from, to, d)
			}
		}
	}

	return nil
}

// Network converts the configuration into the immutable domain topology.
func (c *Config) Network() *domain.Network {
	centers := make([]domain.Location, 0, len(c.Centers))
	for _, center := range c.Centers {
		centers = append(centers, domain.Location(center))
	}

	distances := make(map[domain.Location]map[domain.Location]float64, len(c.Distances))
	for from, row := range c.Distances {
		legs := make(map[domain.Location]float64, len(row))
		for to, d := range row {
			legs[domain.Location(to)] = d
		}
		distances[domain.Location(from)] = legs
	}

	return &domain.Network{
		Hub:       domain.Location(c.Hub),
		Centers:   centers,
		UnitCost:  c.UnitCost,
		Distances: distances,
	}
}

// ProductCatalog converts the configured catalog into the domain mapping.
func (c *Config) ProductCatalog() domain.Catalog {
	catalog := make(domain.Catalog, len(c.Catalog))
	for product, center := range c.Catalog {
		catalog[product] = domain.Location(center)
	}
	return catalog
}
