package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/tatianab/slayer/internal/dice"
	"github.com/tatianab/slayer/internal/eventlog"
	"github.com/tatianab/slayer/internal/models"
)

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func itemPtr(size models.PotionSize) *models.Item {
	item := models.Potion(size)
	return &item
}

// testCatalog has two monsters so that spawn draws are visible in scripts:
// 0 is Zog, who always drops a giant potion; 1 is Squeaky, who drops nothing.
var testCatalog = &models.Catalog{Monsters: []models.MonsterTemplate{
	{Name: "Zog the Mischievous", Description: "A cunning trickster.", Drops: []models.Drop{{Item: itemPtr(models.PotionGiant)}}},
	{Name: "Squeaky the Noisy", Description: "Emits strange noises.", Drops: []models.Drop{{}}},
}}

// newTestSession returns a named, unstarted session that draws from script.
func newTestSession(t *testing.T, script *dice.Script) *Session {
	t.Helper()
	s := NewSession(script,
		WithCatalog(testCatalog),
		WithLog(&eventlog.Log{Now: func() time.Time { return epoch }}),
	)
	for _, r := range "Ayla" {
		s.InsertChar(r)
	}
	if !s.SubmitName() {
		t.Fatalf("Failed to submit name")
	}
	return s
}

// startPlayerFirst starts a session against Zog with the player on turn.
func startPlayerFirst(t *testing.T, script *dice.Script) *Session {
	t.Helper()
	script.Push(0, 0)
	s := newTestSession(t, script)
	if err := s.Start(); err != nil {
		t.Fatalf("Failed to start session: %v", err)
	}
	if !s.InputAccepted() {
		t.Fatalf("Expected player to have the first turn, phase %s", s.Phase())
	}
	return s
}

func descriptions(l *eventlog.Log) []string {
	var out []string
	for _, e := range l.Events() {
		out = append(out, e.Description())
	}
	return out
}

func lastNonBlank(l *eventlog.Log) string {
	events := l.Events()
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Description() != "" {
			return events[i].Description()
		}
	}
	return ""
}

func assertLogged(t *testing.T, l *eventlog.Log, want string) {
	t.Helper()
	for _, d := range descriptions(l) {
		if strings.Contains(d, want) {
			return
		}
	}
	t.Errorf("Expected log to contain %q, got %q", want, descriptions(l))
}

func assertDrained(t *testing.T, script *dice.Script) {
	t.Helper()
	if n := script.Remaining(); n != 0 {
		t.Errorf("Expected every scripted draw to be used, %d left", n)
	}
}
