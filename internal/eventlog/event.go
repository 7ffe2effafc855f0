// Package eventlog is the narrative record of a session.
package eventlog

import (
	"time"
	"unicode/utf8"
)

// RevealRate is how many characters of an event appear per second.
const RevealRate = 15

// Side tells which combatant an event belongs to.
type Side int

const (
	Neutral Side = iota
	PlayerSide
	AdversarySide
)

// Event is one immutable line of the log. Its timestamp is fixed when it is
// built and only ever read by the reveal.
type Event struct {
	description string
	roll        *int
	side        Side
	createdAt   time.Time
}

// New returns a neutral event.
func New(description string, at time.Time) Event {
	return Event{description: description, createdAt: at}
}

// Turn returns an event announcing or describing a side's action.
func Turn(description string, side Side, at time.Time) Event {
	return Event{description: description, side: side, createdAt: at}
}

// Roll returns an attack event that shows the d20 value.
func Roll(description string, roll int, side Side, at time.Time) Event {
	return Event{description: description, roll: &roll, side: side, createdAt: at}
}

func (e Event) Description() string  { return e.description }
func (e Event) CreatedAt() time.Time { return e.createdAt }
func (e Event) Side() Side           { return e.side }

// RollValue returns the attack roll, if one is shown.
func (e Event) RollValue() (int, bool) {
	if e.roll == nil {
		return 0, false
	}
	return *e.roll, true
}

// AdversaryTurn reports the optional "is adversary turn" flag.
func (e Event) AdversaryTurn() (adversary, ok bool) {
	switch e.side {
	case PlayerSide:
		return false, true
	case AdversarySide:
		return true, true
	}
	return false, false
}

// Visible returns the prefix of the description revealed at now.
func (e Event) Visible(now time.Time) string {
	return Reveal(e.description, e.createdAt, now)
}

// Reveal returns the prefix of text typed out by now, at RevealRate
// characters per second since created. It counts runes, not bytes.
func Reveal(text string, created, now time.Time) string {
	elapsed := now.Sub(created)
	if elapsed <= 0 {
		return ""
	}
	n := int(elapsed.Seconds() * RevealRate)
	if n >= utf8.RuneCountInString(text) {
		return text
	}
	i := 0
	for pos := range text {
		if i == n {
			return text[:pos]
		}
		i++
	}
	return text
}

// Revealed reports whether the whole description is visible at now.
func (e Event) Revealed(now time.Time) bool {
	return len(e.Visible(now)) == len(e.description)
}
