package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tatianab/slayer/internal/bard"
	"github.com/tatianab/slayer/internal/engine"
	"github.com/tatianab/slayer/internal/eventlog"
	"github.com/tatianab/slayer/internal/logger"
)

// frameRate drives the typewriter reveal.
const frameRate = time.Second / 30

const epitaphTimeout = 30 * time.Second

type screen int

const (
	screenName screen = iota
	screenFight
	screenGameOver
	screenRetired
)

// Epitapher writes the text shown on the game-over screen. *bard.Bard
// satisfies it.
type Epitapher interface {
	Epitaph(ctx context.Context, f bard.Fallen) (bard.Epitaph, error)
}

type model struct {
	session *engine.Session
	bard    Epitapher

	help       help.Model
	nameInput  textinput.Model
	logView    viewport.Model
	playerBar  progress.Model
	monsterBar progress.Model
	spinner    spinner.Model

	mourning bool
	epitaph  *bard.Epitaph
	now      time.Time
	width    int
	height   int
}

type tickMsg time.Time

type epitaphMsg struct {
	epitaph bard.Epitaph
}

// NewModel wraps an unstarted session. ep may be nil, in which case the
// game-over screen uses the static epitaph. A non-empty name pre-fills the
// name entry.
func NewModel(s *engine.Session, ep Epitapher, name string) model {
	for _, r := range name {
		s.InsertChar(r)
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Your name"
	ti.CharLimit = 32
	ti.Width = 32
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return model{
		session:    s,
		bard:       ep,
		help:       help.New(),
		nameInput:  ti,
		logView:    viewport.New(72, eventlog.Window),
		playerBar:  progress.New(progress.WithGradient("#2E8B57", "#7CFC00"), progress.WithWidth(24), progress.WithoutPercentage()),
		monsterBar: progress.New(progress.WithGradient("#8B0000", "#FF4500"), progress.WithWidth(24), progress.WithoutPercentage()),
		spinner:    sp,
		now:        time.Now(),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

func tick() tea.Cmd {
	return tea.Tick(frameRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) screen() screen {
	switch {
	case !m.session.Started():
		return screenName
	case m.session.GameOver():
		return screenGameOver
	case m.session.Retired():
		return screenRetired
	}
	return screenFight
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.screen() {
		case screenName:
			return m.updateName(msg)
		case screenFight:
			return m.updateFight(msg)
		default:
			if key.Matches(msg, keys.Quit, keys.Select) {
				return m, tea.Quit
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logView.Width = max(int(float64(msg.Width)*0.6), 40)
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		return m, tick()

	case spinner.TickMsg:
		if m.mourning && m.epitaph == nil {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case epitaphMsg:
		e := msg.epitaph
		m.epitaph = &e
		return m, nil
	}

	if m.screen() == screenName {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if !m.session.SubmitName() {
			return m, nil
		}
		if err := m.session.Start(); err != nil {
			logger.Log.WithError(err).Error("failed to start session")
			return m, tea.Quit
		}
		return m.afterAction()
	case tea.KeyLeft:
		m.session.MoveCursor(-1)
	case tea.KeyRight:
		m.session.MoveCursor(1)
	case tea.KeyBackspace:
		m.session.DeleteChar()
	case tea.KeySpace:
		m.session.InsertChar(' ')
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.session.InsertChar(r)
		}
	case tea.KeyEsc:
		return m, tea.Quit
	}
	return m, nil
}

func (m model) updateFight(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Left):
		m.session.MoveHorizontal(-1)
	case key.Matches(msg, keys.Right):
		m.session.MoveHorizontal(1)
	case key.Matches(msg, keys.Up):
		m.session.MoveVertical(-1)
	case key.Matches(msg, keys.Down):
		m.session.MoveVertical(1)
	case key.Matches(msg, keys.Select):
		m.session.Activate()
		return m.afterAction()
	}
	return m, nil
}

// afterAction starts the epitaph once the player has fallen.
func (m model) afterAction() (tea.Model, tea.Cmd) {
	if !m.session.GameOver() || m.mourning {
		return m, nil
	}
	m.mourning = true
	if m.bard == nil {
		return m, m.writeEpitaph()
	}
	return m, tea.Batch(m.spinner.Tick, m.writeEpitaph())
}

func (m model) writeEpitaph() tea.Cmd {
	f := fallen(m.session)
	b := m.bard
	return func() tea.Msg {
		if b == nil {
			return epitaphMsg{bard.Fallback(f)}
		}
		ctx, cancel := context.WithTimeout(context.Background(), epitaphTimeout)
		defer cancel()
		e, err := b.Epitaph(ctx, f)
		if err != nil {
			logger.Log.WithError(err).Warn("bard failed, using the static epitaph")
			return epitaphMsg{bard.Fallback(f)}
		}
		return epitaphMsg{e}
	}
}

func fallen(s *engine.Session) bard.Fallen {
	f := bard.Fallen{
		Player: s.Player().Name,
		Level:  s.Player().Level,
	}
	if m := s.Monster(); m != nil {
		f.Killer = m.Name
	}
	for _, d := range s.Defeated() {
		f.Slain = append(f.Slain, d.Name)
	}
	return f
}

func Run(s *engine.Session, ep Epitapher, name string) error {
	p := tea.NewProgram(NewModel(s, ep, name), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
