package models

import (
	"testing"

	"github.com/tatianab/slayer/internal/dice"
)

func TestCatalogYAML(t *testing.T) {
	data := []byte(`
monsters:
  - name: Zog the Mischievous
    description: A cunning trickster.
    art: |-
      .-^.
      '---'
    drops: [small_potion, none, giant_potion]
`)

	c, err := LoadCatalog(data)
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}
	if len(c.Monsters) != 1 {
		t.Fatalf("Expected 1 monster, got %d", len(c.Monsters))
	}
	m := c.Monsters[0]
	if m.Art != ".-^.\n'---'" {
		t.Errorf("Expected art to keep its lines, got %q", m.Art)
	}
	if len(m.Drops) != 3 {
		t.Fatalf("Expected 3 drops, got %d", len(m.Drops))
	}
	if m.Drops[0].Item == nil || *m.Drops[0].Item != Potion(PotionSmall) {
		t.Errorf("Expected small potion first, got %v", m.Drops[0].Item)
	}
	if m.Drops[1].Item != nil {
		t.Errorf("Expected none to decode as no item, got %v", m.Drops[1].Item)
	}
}

func TestCatalogRejectsUnknownItem(t *testing.T) {
	_, err := LoadCatalog([]byte("monsters:\n  - name: X\n    drops: [elixir]\n"))
	if err == nil {
		t.Fatalf("Expected an error for an unknown drop")
	}
}

func TestCatalogRejectsEmpty(t *testing.T) {
	if _, err := LoadCatalog([]byte("monsters: []\n")); err == nil {
		t.Fatalf("Expected an error for an empty catalog")
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	if len(c.Monsters) != 10 {
		t.Fatalf("Expected 10 monsters, got %d", len(c.Monsters))
	}
	for _, m := range c.Monsters {
		if m.Description == "" || m.Art == "" || len(m.Drops) == 0 {
			t.Errorf("Expected %s to have description, art and drops", m.Name)
		}
	}
}

func TestSpawnScalesWithLevel(t *testing.T) {
	c := DefaultCatalog()
	tests := []struct {
		level              int
		health, xp, maxDmg int
	}{
		{1, 8, 20, 4},
		{2, 16, 40, 5},
		{4, 64, 160, 7},
	}
	for _, tt := range tests {
		m := c.Spawn(dice.NewScript(9), tt.level)
		if m.Name != "Gloop the Gooey" {
			t.Errorf("Expected last template, got %s", m.Name)
		}
		if m.TotalHealth != tt.health || m.RemainingHealth != tt.health {
			t.Errorf("level %d: expected %d health, got %d/%d", tt.level, tt.health, m.RemainingHealth, m.TotalHealth)
		}
		if m.ExperienceReward != tt.xp {
			t.Errorf("level %d: expected %d xp, got %d", tt.level, tt.xp, m.ExperienceReward)
		}
		if m.Damage != (DamageRange{Min: 1, Max: tt.maxDmg}) {
			t.Errorf("level %d: expected damage 1 - %d, got %v", tt.level, tt.maxDmg, m.Damage)
		}
		if m.Level != tt.level {
			t.Errorf("Expected level %d, got %d", tt.level, m.Level)
		}
	}
}

func TestSpawnDoesNotShareDrops(t *testing.T) {
	c := DefaultCatalog()
	m := c.Spawn(dice.NewScript(0), 1)
	m.Drops[0] = Drop{}
	if c.Monsters[0].Drops[0].Item == nil {
		t.Errorf("Expected catalog drop table to stay intact")
	}
}

func TestReceiveDamageIsExact(t *testing.T) {
	for _, tt := range []struct{ health, damage int }{{20, 0}, {20, 7}, {5, 5}, {3, 8}} {
		v := Vitals{RemainingHealth: tt.health, TotalHealth: 20}
		v.ReceiveDamage(tt.damage)
		if v.RemainingHealth != tt.health-tt.damage {
			t.Errorf("Expected %d, got %d", tt.health-tt.damage, v.RemainingHealth)
		}
		if v.Down() != (tt.health-tt.damage <= 0) {
			t.Errorf("Expected Down()=%v at %d", tt.health-tt.damage <= 0, v.RemainingHealth)
		}
		v.Settle()
		if v.RemainingHealth < 0 {
			t.Errorf("Expected settled health >= 0, got %d", v.RemainingHealth)
		}
	}
}

func TestNewPlayer(t *testing.T) {
	p := NewPlayer("Ayla")
	if p.Level != 1 || p.TotalHealth != 20 || p.RemainingHealth != 20 {
		t.Errorf("Expected level 1 with 20/20 health, got level %d %s", p.Level, p.HealthFraction())
	}
	if p.Damage != (DamageRange{Min: 1, Max: 4}) {
		t.Errorf("Expected damage 1 - 4, got %v", p.Damage)
	}
	if p.ExperienceToNext != 20 || p.Experience != 0 {
		t.Errorf("Expected 0 xp with 20 to next, got %d/%d", p.Experience, p.ExperienceToNext)
	}
}

func TestGainExperience(t *testing.T) {
	tests := []struct {
		name      string
		grant     int
		leveled   bool
		level     int
		xp, toNxt int
	}{
		{"below threshold", 5, false, 1, 5, 15},
		{"exact threshold", 20, true, 2, 0, 40},
		{"overflow carries", 27, true, 2, 7, 40},
		{"huge grant levels once", 500, true, 2, 480, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer("Ayla")
			p.RemainingHealth = 3
			if got := p.GainExperience(tt.grant); got != tt.leveled {
				t.Fatalf("Expected leveled=%v, got %v", tt.leveled, got)
			}
			if p.Level != tt.level {
				t.Errorf("Expected level %d, got %d", tt.level, p.Level)
			}
			if p.Experience != tt.xp || p.ExperienceToNext != tt.toNxt {
				t.Errorf("Expected xp %d/%d, got %d/%d", tt.xp, tt.toNxt, p.Experience, p.ExperienceToNext)
			}
			if tt.leveled {
				if p.TotalHealth != 40 || p.RemainingHealth != 40 {
					t.Errorf("Expected full 40 health after level up, got %s", p.HealthFraction())
				}
				if p.Damage.Max != 5 {
					t.Errorf("Expected damage max 5, got %d", p.Damage.Max)
				}
			}
		})
	}
}

func TestPotionsHealCapped(t *testing.T) {
	tests := []struct {
		size     PotionSize
		health   int
		want     int
		restored int
	}{
		{PotionSmall, 5, 15, 10},
		{PotionSmall, 35, 40, 5},
		{PotionMedium, 1, 40, 39},
		{PotionGiant, 1, 40, 39},
		{PotionGiant, 40, 40, 0},
	}
	for _, tt := range tests {
		v := Vitals{RemainingHealth: tt.health, TotalHealth: 40}
		restored := Potion(tt.size).Apply(&v)
		if v.RemainingHealth != tt.want || restored != tt.restored {
			t.Errorf("%s at %d: expected %d (+%d), got %d (+%d)",
				Potion(tt.size).Name(), tt.health, tt.want, tt.restored, v.RemainingHealth, restored)
		}
	}
}

func TestTakeItem(t *testing.T) {
	p := NewPlayer("Ayla")
	p.AddItem(Potion(PotionSmall))
	p.AddItem(Potion(PotionGiant))
	p.AddItem(Potion(PotionMedium))

	item, ok := p.TakeItem(1)
	if !ok || item != Potion(PotionGiant) {
		t.Fatalf("Expected giant potion, got %v (ok=%v)", item, ok)
	}
	if len(p.Inventory) != 2 || p.Inventory[1] != Potion(PotionMedium) {
		t.Errorf("Expected [small medium], got %v", p.Inventory)
	}
	for _, idx := range []int{-1, 2, 10} {
		if _, ok := p.TakeItem(idx); ok {
			t.Errorf("Expected index %d to be rejected", idx)
		}
	}
	if len(p.Inventory) != 2 {
		t.Errorf("Expected inventory untouched, got %d items", len(p.Inventory))
	}
}

func TestLootIsSealedOnce(t *testing.T) {
	m := DefaultCatalog().Monsters[9].Instantiate(1)
	if _, ok := m.Loot(); ok {
		t.Fatalf("Expected no loot before defeat")
	}
	item := m.RollDrop(dice.NewScript(0))
	first := m.SealLoot(Loot{LevelUp: true, Item: item})
	second := m.SealLoot(Loot{})
	if !second.LevelUp || second.Item == nil || *second.Item != *first.Item {
		t.Errorf("Expected second seal to keep first loot, got %+v", second)
	}
}
