package eventlog

import "time"

// Window is how many lines fit on screen. Appending past it scrolls the log
// so the newest lines stay visible.
const Window = 30

// Log is an append-only sequence of events with a scroll offset.
type Log struct {
	events []Event
	scroll int

	// Now stamps new events. Tests replace it with a fixed clock.
	Now func() time.Time
}

// NewLog returns an empty log stamped by the wall clock.
func NewLog() *Log {
	return &Log{Now: time.Now}
}

func (l *Log) now() time.Time {
	if l.Now == nil {
		return time.Now()
	}
	return l.Now()
}

// Append adds e and follows the tail once the log outgrows the window.
func (l *Log) Append(e Event) {
	l.events = append(l.events, e)
	if len(l.events) > Window {
		l.scroll = len(l.events) - Window
	}
}

// Say appends a neutral event.
func (l *Log) Say(description string) {
	l.Append(New(description, l.now()))
}

// Turn appends an event tied to a side.
func (l *Log) Turn(description string, side Side) {
	l.Append(Turn(description, side, l.now()))
}

// Roll appends an attack event showing roll.
func (l *Log) Roll(description string, roll int, side Side) {
	l.Append(Roll(description, roll, side, l.now()))
}

// Blank appends an empty spacer line.
func (l *Log) Blank() {
	l.Say("")
}

// Clear drops every event and resets the scroll offset.
func (l *Log) Clear() {
	l.events = nil
	l.scroll = 0
}

// Scroll moves the offset by step lines. It stays within [0, Len()].
func (l *Log) Scroll(step int) {
	l.scroll = min(max(l.scroll+step, 0), len(l.events))
}

// Offset is the index of the first visible event.
func (l *Log) Offset() int { return l.scroll }

// Len is the number of events.
func (l *Log) Len() int { return len(l.events) }

// Events returns a copy of every event, oldest first.
func (l *Log) Events() []Event {
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// Visible returns at most Window events starting at the scroll offset.
func (l *Log) Visible() []Event {
	end := min(l.scroll+Window, len(l.events))
	out := make([]Event, end-l.scroll)
	copy(out, l.events[l.scroll:end])
	return out
}

// Last returns the newest event.
func (l *Log) Last() (Event, bool) {
	if len(l.events) == 0 {
		return Event{}, false
	}
	return l.events[len(l.events)-1], true
}
