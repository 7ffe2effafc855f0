package models

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Category groups items by kind. Potions are the only kind so far.
type Category int

const (
	CategoryPotion Category = iota
)

// PotionSize selects a potion's strength.
type PotionSize int

const (
	PotionSmall PotionSize = iota
	PotionMedium
	PotionGiant
)

// Item is a value object: two items with the same category and size are
// interchangeable.
type Item struct {
	Category Category
	Size     PotionSize
}

// Potion returns a health potion of the given size.
func Potion(size PotionSize) Item {
	return Item{Category: CategoryPotion, Size: size}
}

var potions = map[PotionSize]struct {
	key, name, description string
	heal                   int // 0 restores everything
}{
	PotionSmall:  {"small_potion", "Small health potion", "Restores 10 HP", 10},
	PotionMedium: {"medium_potion", "Medium health potion", "Restores 50 HP", 50},
	PotionGiant:  {"giant_potion", "Giant health potion", "Restores all HP", 0},
}

func (i Item) Name() string        { return potions[i.Size].name }
func (i Item) Description() string { return potions[i.Size].description }
func (i Item) Key() string         { return potions[i.Size].key }

// Apply heals target, never past its total health, and returns the amount
// restored.
func (i Item) Apply(target *Vitals) int {
	heal := potions[i.Size].heal
	if heal == 0 {
		heal = target.TotalHealth
	}
	return target.Heal(heal)
}

// ParseItem resolves a catalog key such as "giant_potion".
func ParseItem(key string) (Item, error) {
	for size, p := range potions {
		if p.key == key {
			return Potion(size), nil
		}
	}
	return Item{}, fmt.Errorf("unknown item %q", key)
}

// Drop is one entry of a monster's drop table. A nil Item means the monster
// drops nothing for that entry.
type Drop struct {
	Item *Item
}

func (d *Drop) UnmarshalYAML(value *yaml.Node) error {
	var key string
	if err := value.Decode(&key); err != nil {
		return err
	}
	if key == "none" {
		d.Item = nil
		return nil
	}
	item, err := ParseItem(key)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	d.Item = &item
	return nil
}
