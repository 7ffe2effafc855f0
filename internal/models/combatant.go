package models

import (
	"fmt"

	"github.com/tatianab/slayer/internal/dice"
)

// Combatant is anything that can attack and take damage.
type Combatant interface {
	Stats() *Vitals
	AttackDamage(src dice.Source) int
	ReceiveDamage(amount int)
}

// DamageRange is an inclusive [Min, Max] damage span. Min is at least 1.
type DamageRange struct {
	Min int
	Max int
}

// Roll samples a damage value uniformly from the range.
func (r DamageRange) Roll(src dice.Source) int {
	return dice.Between(src, r.Min, r.Max)
}

func (r DamageRange) String() string {
	return fmt.Sprintf("%d - %d", r.Min, r.Max)
}

// Vitals are the fields shared by every combatant.
//
// RemainingHealth may go negative right after ReceiveDamage; Settle brings it
// back to zero once death has been observed.
type Vitals struct {
	Name            string
	RemainingHealth int
	TotalHealth     int
	Damage          DamageRange
	Level           int
}

func (v *Vitals) Stats() *Vitals { return v }

func (v *Vitals) AttackDamage(src dice.Source) int {
	return v.Damage.Roll(src)
}

// ReceiveDamage subtracts amount exactly, with no clamping.
func (v *Vitals) ReceiveDamage(amount int) {
	v.RemainingHealth -= amount
}

// Down reports whether health has reached zero or below.
func (v *Vitals) Down() bool {
	return v.RemainingHealth <= 0
}

// Settle clamps negative health to zero.
func (v *Vitals) Settle() {
	if v.RemainingHealth < 0 {
		v.RemainingHealth = 0
	}
}

// Heal restores up to amount health, capped at TotalHealth, and returns how
// much was actually restored.
func (v *Vitals) Heal(amount int) int {
	before := v.RemainingHealth
	v.RemainingHealth = min(v.RemainingHealth+amount, v.TotalHealth)
	return v.RemainingHealth - before
}

// HealthFraction renders remaining over total health, e.g. "12/20".
func (v *Vitals) HealthFraction() string {
	return fmt.Sprintf("%d/%d", v.RemainingHealth, v.TotalHealth)
}

// HealthRatio is remaining over total health in [0, 1].
func (v *Vitals) HealthRatio() float64 {
	if v.TotalHealth <= 0 || v.RemainingHealth <= 0 {
		return 0
	}
	return min(float64(v.RemainingHealth)/float64(v.TotalHealth), 1)
}

func scaled(base, level int) int {
	return base * (1 << level)
}
