// Package engine runs a combat session: the state aggregate, the turn and
// attack resolution, and the navigation between control sets.
//
// A Session is driven by one caller at a time. Every adversary turn happens
// synchronously inside the call that triggered it.
package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/tatianab/slayer/internal/dice"
	"github.com/tatianab/slayer/internal/eventlog"
	"github.com/tatianab/slayer/internal/logger"
	"github.com/tatianab/slayer/internal/models"
)

var (
	ErrUnnamed = errors.New("player has no name")
	ErrStarted = errors.New("session already started")
)

// Session owns all mutable game state.
type Session struct {
	id       uuid.UUID
	player   *models.Player
	monster  *models.Monster
	defeated []*models.Monster
	log      *eventlog.Log
	control  Control
	phase    *phase
	started  bool
	name     NameEntry

	dice    dice.Source
	catalog *models.Catalog
	logger  *logrus.Entry
}

// Option configures a Session.
type Option func(*Session)

// WithCatalog replaces the embedded encounter table.
func WithCatalog(c *models.Catalog) Option {
	return func(s *Session) { s.catalog = c }
}

// WithLog replaces the event log, typically to inject a clock.
func WithLog(l *eventlog.Log) Option {
	return func(s *Session) { s.log = l }
}

// WithLogger replaces the structured logger.
func WithLogger(l *logrus.Logger) Option {
	return func(s *Session) { s.logger = l.WithField("session", s.id.String()) }
}

// NewSession returns an unstarted session. The player has no name yet.
func NewSession(src dice.Source, opts ...Option) *Session {
	s := &Session{
		id:      uuid.New(),
		player:  models.NewPlayer(""),
		log:     eventlog.NewLog(),
		control: FightMenu{Selected: FightAttack},
		dice:    src,
		catalog: models.DefaultCatalog(),
	}
	s.logger = logger.Log.WithField("session", s.id.String())
	for _, opt := range opts {
		opt(s)
	}
	s.phase = newPhase(s.logger)

	s.log.Say("New game is starting...")
	s.log.Blank()
	return s
}

// Start begins the first encounter. When the adversary wins initiative its
// first attack has already happened when Start returns.
func (s *Session) Start() error {
	if s.started {
		return ErrStarted
	}
	if s.player.Name == "" {
		return ErrUnnamed
	}
	s.started = true
	s.logger.WithField("player", s.player.Name).Info("session started")
	startEncounter(s)
	return nil
}

// MoveHorizontal steps the highlighted option. step must be -1 or 1.
func (s *Session) MoveHorizontal(step int) {
	mustStep(step)
	if !s.InputAccepted() {
		return
	}
	s.control = s.control.Horizontal(step, s)
}

// MoveVertical steps the inventory row, or scrolls the log in the fight
// menu. step must be -1 or 1.
func (s *Session) MoveVertical(step int) {
	mustStep(step)
	if !s.InputAccepted() {
		return
	}
	s.control = s.control.Vertical(step, s)
}

// Activate triggers the highlighted option.
func (s *Session) Activate() {
	if !s.InputAccepted() {
		return
	}
	s.control.Activate(s)
}

func mustStep(step int) {
	if step != -1 && step != 1 {
		panic(fmt.Sprintf("game: step must be -1 or 1, got %d", step))
	}
}

// Name entry. These only touch the buffer and the player's name, and only
// before the session starts.

func (s *Session) InsertChar(r rune) {
	if !s.started {
		s.name.Insert(r)
	}
}

func (s *Session) DeleteChar() {
	if !s.started {
		s.name.Delete()
	}
}

func (s *Session) MoveCursor(step int) {
	if !s.started {
		s.name.MoveCursor(step)
	}
}

// SubmitName copies the buffer into the player's name and clears it. A blank
// buffer is rejected and left as is.
func (s *Session) SubmitName() bool {
	if s.started {
		return false
	}
	name := strings.TrimSpace(s.name.Value())
	if name == "" {
		return false
	}
	s.player.Name = name
	s.name.Reset()
	return true
}

// Read-only view. Callers must not mutate what these return.

func (s *Session) ID() uuid.UUID               { return s.id }
func (s *Session) Player() *models.Player      { return s.player }
func (s *Session) Monster() *models.Monster    { return s.monster }
func (s *Session) Log() *eventlog.Log          { return s.log }
func (s *Session) Control() Control            { return s.control }
func (s *Session) Popup() Popup                { return s.control.Popup() }
func (s *Session) ScrollOffset() int           { return s.log.Offset() }
func (s *Session) NameBuffer() (string, int)   { return s.name.Value(), s.name.Cursor() }
func (s *Session) Started() bool               { return s.started }
func (s *Session) Phase() string               { return s.phase.current() }
func (s *Session) Defeated() []*models.Monster { return append([]*models.Monster(nil), s.defeated...) }

// LastDefeated is the most recently slain monster.
func (s *Session) LastDefeated() (*models.Monster, bool) {
	if len(s.defeated) == 0 {
		return nil, false
	}
	return s.defeated[len(s.defeated)-1], true
}

// InputAccepted reports whether the player may act: on their turn, or on
// the loot popup after a kill.
func (s *Session) InputAccepted() bool {
	return s.phase.is(phasePlayer) || s.phase.is(phaseResolved)
}

// GameOver reports whether the player has been killed. It never resets.
func (s *Session) GameOver() bool {
	return s.phase.is(phaseDefeated)
}

// Retired reports whether the player stopped the mission after a kill.
func (s *Session) Retired() bool {
	return s.phase.is(phaseRetired)
}
