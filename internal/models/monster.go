package models

import "github.com/tatianab/slayer/internal/dice"

const (
	MonsterBaseHealth     = 4
	MonsterBaseExperience = 10
	MonsterBaseDamageMax  = 3
)

// Loot is what a defeated monster leaves behind.
type Loot struct {
	LevelUp bool
	Item    *Item
}

// Monster is the adversary of one encounter.
type Monster struct {
	Vitals
	Description      string
	Art              string
	ExperienceReward int
	Drops            []Drop

	loot   Loot
	looted bool
}

// RollDrop picks an entry of the drop table. It does not record anything on
// the monster.
func (m *Monster) RollDrop(src dice.Source) *Item {
	if len(m.Drops) == 0 {
		return nil
	}
	d := m.Drops[src.IntN(len(m.Drops))]
	if d.Item == nil {
		return nil
	}
	item := *d.Item
	return &item
}

// SealLoot records the loot once. Later calls keep the first record and
// return it.
func (m *Monster) SealLoot(loot Loot) Loot {
	if !m.looted {
		m.loot = loot
		m.looted = true
	}
	return m.loot
}

// Loot returns the sealed loot. ok is false until the monster was defeated.
func (m *Monster) Loot() (loot Loot, ok bool) {
	return m.loot, m.looted
}
