package eventlog

import (
	"fmt"
	"testing"
	"time"
)

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestReveal(t *testing.T) {
	text := "Critical miss!"
	tests := []struct {
		elapsed time.Duration
		want    string
	}{
		{-time.Second, ""},
		{0, ""},
		{50 * time.Millisecond, ""},
		{200 * time.Millisecond, "Cri"},
		{time.Second / 2, "Critica"},
		{time.Second, "Critical miss!"},
		{time.Hour, "Critical miss!"},
	}
	for _, tt := range tests {
		if got := Reveal(text, epoch, epoch.Add(tt.elapsed)); got != tt.want {
			t.Errorf("after %v: expected %q, got %q", tt.elapsed, tt.want, got)
		}
	}
}

func TestRevealCountsRunes(t *testing.T) {
	got := Reveal("héllo", epoch, epoch.Add(200*time.Millisecond))
	if got != "hél" {
		t.Errorf("Expected %q, got %q", "hél", got)
	}
}

func TestVisibleDoesNotMutate(t *testing.T) {
	e := Roll("Enemy takes 3 damage!", 12, PlayerSide, epoch)
	_ = e.Visible(epoch.Add(100 * time.Millisecond))
	_ = e.Visible(epoch.Add(time.Minute))
	if e.CreatedAt() != epoch {
		t.Errorf("Expected creation time to stay %v, got %v", epoch, e.CreatedAt())
	}
	if e.Description() != "Enemy takes 3 damage!" {
		t.Errorf("Expected description unchanged, got %q", e.Description())
	}
	if !e.Revealed(epoch.Add(time.Minute)) {
		t.Errorf("Expected event fully revealed after a minute")
	}
	if roll, ok := e.RollValue(); !ok || roll != 12 {
		t.Errorf("Expected roll 12, got %d (ok=%v)", roll, ok)
	}
}

func TestAdversaryTurnFlag(t *testing.T) {
	if _, ok := New("x", epoch).AdversaryTurn(); ok {
		t.Errorf("Expected neutral event to carry no flag")
	}
	if adv, ok := Turn("x", AdversarySide, epoch).AdversaryTurn(); !ok || !adv {
		t.Errorf("Expected adversary flag")
	}
	if adv, ok := Turn("x", PlayerSide, epoch).AdversaryTurn(); !ok || adv {
		t.Errorf("Expected player flag")
	}
}

func TestAppendFollowsTail(t *testing.T) {
	l := &Log{Now: func() time.Time { return epoch }}
	for i := 0; i < Window; i++ {
		l.Say(fmt.Sprintf("line %d", i))
	}
	if l.Offset() != 0 {
		t.Fatalf("Expected offset 0 at capacity, got %d", l.Offset())
	}
	l.Say("overflow 1")
	l.Say("overflow 2")
	if l.Offset() != 2 {
		t.Errorf("Expected offset 2, got %d", l.Offset())
	}
	visible := l.Visible()
	if len(visible) != Window {
		t.Fatalf("Expected %d visible events, got %d", Window, len(visible))
	}
	if visible[len(visible)-1].Description() != "overflow 2" {
		t.Errorf("Expected newest event visible, got %q", visible[len(visible)-1].Description())
	}
	if l.Len() != Window+2 {
		t.Errorf("Expected no deletion, got %d events", l.Len())
	}
}

func TestScrollClamps(t *testing.T) {
	l := &Log{Now: func() time.Time { return epoch }}
	l.Say("a")
	l.Say("b")

	l.Scroll(-1)
	if l.Offset() != 0 {
		t.Errorf("Expected offset 0, got %d", l.Offset())
	}
	for i := 0; i < 5; i++ {
		l.Scroll(1)
	}
	if l.Offset() != 2 {
		t.Errorf("Expected offset clamped at 2, got %d", l.Offset())
	}
	if len(l.Visible()) != 0 {
		t.Errorf("Expected nothing visible past the end, got %d", len(l.Visible()))
	}
}

func TestClear(t *testing.T) {
	l := NewLog()
	for i := 0; i < Window+5; i++ {
		l.Blank()
	}
	l.Clear()
	if l.Len() != 0 || l.Offset() != 0 {
		t.Errorf("Expected empty log at offset 0, got %d events at %d", l.Len(), l.Offset())
	}
	if _, ok := l.Last(); ok {
		t.Errorf("Expected no last event")
	}
}
