package models

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/tatianab/slayer/internal/dice"
)

//go:embed catalog.yaml
var catalogYAML []byte

// MonsterTemplate is the level-independent part of a monster.
type MonsterTemplate struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Art         string `yaml:"art"`
	Drops       []Drop `yaml:"drops"`
}

// Catalog is the read-only table of encounters. It is never mutated after
// loading and may be shared freely.
type Catalog struct {
	Monsters []MonsterTemplate `yaml:"monsters"`
}

var defaultCatalog = mustLoadCatalog(catalogYAML)

// DefaultCatalog returns the catalog embedded in the binary.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// LoadCatalog decodes a YAML catalog.
func LoadCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(c.Monsters) == 0 {
		return nil, fmt.Errorf("catalog has no monsters")
	}
	for i, m := range c.Monsters {
		if m.Name == "" {
			return nil, fmt.Errorf("catalog monster %d has no name", i)
		}
	}
	return &c, nil
}

func mustLoadCatalog(data []byte) *Catalog {
	c, err := LoadCatalog(data)
	if err != nil {
		panic(err)
	}
	return c
}

// Spawn picks a template uniformly and sizes it to level.
func (c *Catalog) Spawn(src dice.Source, level int) *Monster {
	t := c.Monsters[src.IntN(len(c.Monsters))]
	return t.Instantiate(level)
}

// Instantiate builds a full-health monster of the given level.
func (t MonsterTemplate) Instantiate(level int) *Monster {
	total := scaled(MonsterBaseHealth, level)
	return &Monster{
		Vitals: Vitals{
			Name:            t.Name,
			RemainingHealth: total,
			TotalHealth:     total,
			Damage:          DamageRange{Min: 1, Max: MonsterBaseDamageMax + level},
			Level:           level,
		},
		Description:      t.Description,
		Art:              t.Art,
		ExperienceReward: scaled(MonsterBaseExperience, level),
		Drops:            slices.Clone(t.Drops),
	}
}
