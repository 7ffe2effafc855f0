package engine

import "fmt"

// Popup is the overlay the renderer should draw, if any.
type Popup int

const (
	PopupNone Popup = iota
	PopupLoot
	PopupInventory
)

// Control is the active set of options and the highlighted one. Each variant
// implements its own navigation; moves return the next Control and never
// mutate the receiver.
type Control interface {
	// Popup is the overlay that goes with this control set.
	Popup() Popup
	Horizontal(step int, s *Session) Control
	Vertical(step int, s *Session) Control
	Activate(s *Session)
}

// FightOption is a button of the fight menu, in display order.
type FightOption int

const (
	FightAttack FightOption = iota
	FightSpell
	FightInventory
	FightFlee
)

// FightOptions lists the fight menu left to right.
var FightOptions = []FightOption{FightAttack, FightSpell, FightInventory, FightFlee}

func (o FightOption) String() string {
	return [...]string{"Attack", "Spell", "Inventory", "Flee"}[o]
}

// Available reports whether activating the option does anything.
func (o FightOption) Available() bool {
	return o == FightAttack || o == FightInventory
}

// LootOption is a button of the loot popup.
type LootOption int

const (
	LootContinue LootOption = iota
	LootStop
)

var LootOptions = []LootOption{LootContinue, LootStop}

func (o LootOption) String() string {
	return [...]string{"Continue", "Stop your mission"}[o]
}

// InventoryOption is a button of the inventory popup.
type InventoryOption int

const (
	InventoryUse InventoryOption = iota
	InventoryCancel
)

var InventoryOptions = []InventoryOption{InventoryUse, InventoryCancel}

func (o InventoryOption) String() string {
	return [...]string{"Use", "Cancel"}[o]
}

// FightMenu is the default control set during a fight.
type FightMenu struct {
	Selected FightOption
}

func (FightMenu) Popup() Popup { return PopupNone }

func (c FightMenu) Horizontal(step int, _ *Session) Control {
	return FightMenu{Selected: FightOption(clampStep(int(c.Selected), step, len(FightOptions)))}
}

// Vertical scrolls the event log; the selection does not move.
func (c FightMenu) Vertical(step int, s *Session) Control {
	s.log.Scroll(step)
	return c
}

func (c FightMenu) Activate(s *Session) {
	switch c.Selected {
	case FightAttack:
		playerAttack(s)
	case FightInventory:
		if s.phase.is(phasePlayer) {
			s.control = InventoryPopup{Selected: InventoryCancel}
		}
	}
}

// LootPopup is shown once a monster has been slain.
type LootPopup struct {
	Selected LootOption
}

func (LootPopup) Popup() Popup { return PopupLoot }

func (c LootPopup) Horizontal(step int, _ *Session) Control {
	return LootPopup{Selected: LootOption(clampStep(int(c.Selected), step, len(LootOptions)))}
}

func (c LootPopup) Vertical(int, *Session) Control { return c }

func (c LootPopup) Activate(s *Session) {
	if !s.phase.is(phaseResolved) {
		return
	}
	switch c.Selected {
	case LootContinue:
		s.phase.fire(eventAdvance)
		s.log.Clear()
		s.control = FightMenu{Selected: FightAttack}
		startEncounter(s)
	case LootStop:
		s.phase.fire(eventRetire)
		s.logger.WithField("defeated", len(s.defeated)).Info("mission stopped")
	}
}

// InventoryPopup lets the player drink a potion. Index is the highlighted
// inventory row while Use is selected.
type InventoryPopup struct {
	Selected InventoryOption
	Index    int
}

func (InventoryPopup) Popup() Popup { return PopupInventory }

func (c InventoryPopup) Horizontal(step int, _ *Session) Control {
	next := InventoryOption(clampStep(int(c.Selected), step, len(InventoryOptions)))
	if next == c.Selected {
		return c
	}
	return InventoryPopup{Selected: next}
}

// Vertical moves the highlighted row, staying inside the inventory.
func (c InventoryPopup) Vertical(step int, s *Session) Control {
	if c.Selected != InventoryUse {
		return c
	}
	n := len(s.player.Inventory)
	if n == 0 {
		return c
	}
	c.Index = clampStep(c.Index, step, n)
	return c
}

func (c InventoryPopup) Activate(s *Session) {
	switch c.Selected {
	case InventoryCancel:
		s.control = FightMenu{Selected: FightAttack}
	case InventoryUse:
		useItem(s, c.Index)
	}
}

// useItem drinks the item at index. It costs the player's turn. A stale or
// out-of-range index leaves everything as it was.
func useItem(s *Session, index int) {
	if !s.phase.is(phasePlayer) {
		return
	}
	item, ok := s.player.TakeItem(index)
	if !ok {
		return
	}
	healed := item.Apply(&s.player.Vitals)
	s.log.Say(fmt.Sprintf("%s has been used! (%s)", item.Name(), item.Description()))
	s.logger.WithField("item", item.Name()).WithField("healed", healed).Debug("item used")

	s.control = FightMenu{Selected: FightAttack}
	adversaryTurn(s)
}

// clampStep moves i by step within [0, n).
func clampStep(i, step, n int) int {
	return min(max(i+step, 0), n-1)
}
