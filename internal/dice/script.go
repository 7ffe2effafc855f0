package dice

import "fmt"

// Script replays a fixed sequence of draws. Each value is returned as-is, so
// the caller scripts the raw IntN result, not the derived outcome. Between(1,
// 4) fed a 2 yields 3.
//
// A Script panics when exhausted or when a value falls outside [0, n).
type Script struct {
	values []int
	pos    int
}

// NewScript returns a Script that yields values in order.
func NewScript(values ...int) *Script {
	return &Script{values: values}
}

// IntN implements Source.
func (s *Script) IntN(n int) int {
	if s.pos >= len(s.values) {
		panic(fmt.Sprintf("dice: script exhausted after %d draws", s.pos))
	}
	v := s.values[s.pos]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("dice: scripted draw %d is %d, want [0, %d)", s.pos, v, n))
	}
	s.pos++
	return v
}

// Push appends more draws to the script.
func (s *Script) Push(values ...int) {
	s.values = append(s.values, values...)
}

// Remaining reports how many scripted draws are left.
func (s *Script) Remaining() int {
	return len(s.values) - s.pos
}
