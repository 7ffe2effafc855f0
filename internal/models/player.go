package models

const (
	PlayerBaseHealth     = 10
	PlayerBaseExperience = 10
	PlayerBaseDamageMax  = 3
)

// Player is the user's combatant. It owns the inventory.
type Player struct {
	Vitals
	Experience       int
	ExperienceToNext int
	Inventory        []Item
}

// NewPlayer returns a level 1 player.
func NewPlayer(name string) *Player {
	p := &Player{Vitals: Vitals{Name: name}}
	p.applyLevel(1)
	return p
}

func (p *Player) applyLevel(level int) {
	p.Level = level
	p.TotalHealth = scaled(PlayerBaseHealth, level)
	p.RemainingHealth = p.TotalHealth
	p.Damage = DamageRange{Min: 1, Max: PlayerBaseDamageMax + level}
	p.ExperienceToNext = scaled(PlayerBaseExperience, level)
}

// GainExperience grants xp and reports whether the player leveled up.
//
// At most one level is gained per grant. On a level-up the overflow becomes
// the new Experience and the requirement restarts from the formula.
func (p *Player) GainExperience(xp int) bool {
	p.ExperienceToNext -= xp
	if p.ExperienceToNext > 0 {
		p.Experience += xp
		return false
	}

	carry := -p.ExperienceToNext
	p.applyLevel(p.Level + 1)
	p.Experience = carry
	return true
}

// AddItem appends item to the inventory.
func (p *Player) AddItem(item Item) {
	p.Inventory = append(p.Inventory, item)
}

// TakeItem removes and returns the item at index. ok is false when index is
// out of range, in which case the inventory is untouched.
func (p *Player) TakeItem(index int) (item Item, ok bool) {
	if index < 0 || index >= len(p.Inventory) {
		return Item{}, false
	}
	item = p.Inventory[index]
	p.Inventory = append(p.Inventory[:index:index], p.Inventory[index+1:]...)
	return item, true
}
