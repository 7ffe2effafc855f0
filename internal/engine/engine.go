package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/tatianab/slayer/internal/dice"
	"github.com/tatianab/slayer/internal/eventlog"
	"github.com/tatianab/slayer/internal/models"
)

// Attack roll bounds. A d20 with a zero face: 0 misses, 20 doubles damage.
const (
	CriticalMiss = 0
	CriticalHit  = 20
)

// Outcome classifies an attack roll.
type Outcome int

const (
	Miss Outcome = iota
	Hit
	Critical
)

func (o Outcome) String() string {
	switch o {
	case Miss:
		return "miss"
	case Critical:
		return "critical"
	}
	return "hit"
}

// ResolveRoll turns a roll in [0, 20] and a sampled base damage into the
// damage dealt.
func ResolveRoll(roll, base int) (damage int, outcome Outcome) {
	switch {
	case roll == CriticalMiss:
		return 0, Miss
	case roll == CriticalHit:
		return base * 2, Critical
	case roll > CriticalMiss && roll < CriticalHit:
		return base, Hit
	}
	panic(fmt.Sprintf("game: attack roll %d outside [%d, %d]", roll, CriticalMiss, CriticalHit))
}

// AttackResult is what one attack roll did.
type AttackResult struct {
	Roll    int
	Damage  int
	Outcome Outcome
}

// rollAttack rolls the d20, samples damage on anything but a miss, and
// applies it to defender. The defender's health may be negative afterwards
// until checkDeath settles it.
func rollAttack(s *Session, attacker, defender models.Combatant, side eventlog.Side) AttackResult {
	roll := dice.Between(s.dice, CriticalMiss, CriticalHit)
	base := 0
	if roll != CriticalMiss {
		base = attacker.AttackDamage(s.dice)
	}
	damage, outcome := ResolveRoll(roll, base)
	defender.ReceiveDamage(damage)

	def := defender.Stats()
	remaining := fmt.Sprintf("%d/%d", max(def.RemainingHealth, 0), def.TotalHealth)

	var desc string
	switch {
	case outcome == Miss:
		desc = "Critical miss!"
	case side == eventlog.AdversarySide:
		desc = fmt.Sprintf("You take %d damage!", damage)
	default:
		desc = fmt.Sprintf("Enemy takes %d damage!", damage)
	}
	if outcome == Critical {
		desc = "Critical hit! " + desc
	}
	if side == eventlog.AdversarySide {
		desc += fmt.Sprintf(" You have %s HP remaining!", remaining)
	} else {
		desc += fmt.Sprintf(" %s has %s HP remaining!", def.Name, remaining)
	}

	if outcome == Miss {
		s.log.Turn(desc, side)
	} else {
		s.log.Roll(desc, roll, side)
	}

	s.logger.WithFields(logrus.Fields{
		"attacker": attacker.Stats().Name,
		"roll":     roll,
		"damage":   damage,
		"outcome":  outcome,
	}).Debug("attack rolled")

	return AttackResult{Roll: roll, Damage: damage, Outcome: outcome}
}

// checkDeath settles the encounter after damage. The player's defeat is
// checked first. It reports whether either side went down.
func checkDeath(s *Session) bool {
	if s.player.Down() {
		s.player.Settle()
		s.log.Say("GAME OVER...")
		s.phase.fire(eventPerish)
		s.logger.WithField("killer", s.monster.Name).Info("player defeated")
		return true
	}
	if s.monster.Down() {
		s.monster.Settle()
		resolveEncounter(s)
		return true
	}
	return false
}

func resolveEncounter(s *Session) {
	m := s.monster
	item := m.RollDrop(s.dice)

	s.log.Blank()
	s.log.Say(fmt.Sprintf("Monster has been slain! You receive %d experience points.", m.ExperienceReward))

	leveled := s.player.GainExperience(m.ExperienceReward)
	if leveled {
		s.log.Blank()
		s.log.Say(fmt.Sprintf("LEVEL UP! Your new level: %d", s.player.Level))
	}
	if item != nil {
		s.player.AddItem(*item)
		s.log.Say(fmt.Sprintf("The enemy dropped a %s (%s).", item.Name(), item.Description()))
	}
	m.SealLoot(models.Loot{LevelUp: leveled, Item: item})
	s.defeated = append(s.defeated, m)
	s.log.Blank()

	s.phase.fire(eventSlay)
	s.control = LootPopup{Selected: LootContinue}

	entry := s.logger.WithFields(logrus.Fields{
		"monster":  m.Name,
		"xp":       m.ExperienceReward,
		"level_up": leveled,
	})
	if item != nil {
		entry = entry.WithField("item", item.Name())
	}
	entry.Info("monster slain")
}

// switchTurn hands input to the player or takes it away, announcing it.
func switchTurn(s *Session, toPlayer bool) {
	s.log.Blank()
	if toPlayer {
		s.phase.fire(eventReclaim)
		s.log.Turn("It's your turn! CHARGE!", eventlog.PlayerSide)
		return
	}
	s.phase.fire(eventYield)
	s.log.Turn("It's the enemy's turn!", eventlog.AdversarySide)
}

// adversaryStrike is the body of an adversary turn: one attack, a death
// check, and the turn back to the player if both are still standing.
func adversaryStrike(s *Session) {
	rollAttack(s, s.monster, s.player, eventlog.AdversarySide)
	if !checkDeath(s) {
		switchTurn(s, true)
	}
}

// adversaryTurn passes the turn to the adversary and plays it out.
func adversaryTurn(s *Session) {
	switchTurn(s, false)
	adversaryStrike(s)
}

// playerAttack is the Attack button: the player strikes, and unless the
// encounter ended the adversary answers right away.
func playerAttack(s *Session) {
	if !s.phase.is(phasePlayer) {
		return
	}
	rollAttack(s, s.player, s.monster, eventlog.PlayerSide)
	if checkDeath(s) {
		return
	}
	adversaryTurn(s)
}

// rollInitiative flips for the first turn and reports whether the player
// won it. When the adversary wins, its first attack is played immediately.
func rollInitiative(s *Session) bool {
	s.log.Say("Rolling initiative......")
	if dice.Coin(s.dice) {
		s.log.Say("You start!")
		s.phase.fire(eventPlayerFirst)
		s.logger.Debug("player wins initiative")
		return true
	}
	s.log.Say(fmt.Sprintf("%s is starting first!", s.monster.Name))
	s.phase.fire(eventAdversaryFirst)
	s.logger.Debug("adversary wins initiative")
	adversaryStrike(s)
	return false
}

// startEncounter replaces the monster with a fresh one sized to the player
// and rolls initiative.
func startEncounter(s *Session) {
	s.monster = s.catalog.Spawn(s.dice, s.player.Level)
	s.log.Say(fmt.Sprintf("A wild %s appears, brace yourself!", s.monster.Name))
	s.log.Blank()

	s.logger.WithFields(logrus.Fields{
		"monster": s.monster.Name,
		"level":   s.monster.Level,
	}).Info("encounter started")

	rollInitiative(s)
}
