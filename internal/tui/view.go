package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/tatianab/slayer/internal/engine"
	"github.com/tatianab/slayer/internal/eventlog"
	"github.com/tatianab/slayer/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	playerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7CFC00"))

	adversaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4500"))

	rollStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			Padding(0, 1)

	popupStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#FFA500")).
			Padding(1, 2)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")).
			Padding(0, 2)

	activeButtonStyle = buttonStyle.
				Foreground(lipgloss.Color("#EEEEEE")).
				Background(lipgloss.Color("#5F5F87")).
				Bold(true)

	disabledButtonStyle = buttonStyle.
				Foreground(lipgloss.Color("#555555")).
				Strikethrough(true)

	tableBorder = lipgloss.NewStyle().Foreground(lipgloss.Color("#3C3C3C"))
)

func (m model) View() string {
	var s string

	switch m.screen() {
	case screenName:
		s = m.viewName()
	case screenFight:
		s = m.viewFight()
	case screenGameOver:
		s = m.viewGameOver()
	case screenRetired:
		s = m.viewRetired()
	}

	return "\n" + s + "\n"
}

func (m model) viewName() string {
	value, cursor := m.session.NameBuffer()
	in := m.nameInput
	in.SetValue(value)
	in.SetCursor(cursor)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("SLAYER"),
		"",
		"What is your name, hero?",
		"",
		in.View(),
		"",
		helpStyle.Render("enter to begin, esc to quit"),
	)
}

func (m model) viewFight() string {
	stats := lipgloss.JoinVertical(lipgloss.Left,
		m.renderPlayer(),
		m.renderMonster(),
	)
	main := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(m.renderLog()),
		stats,
	)

	var bottom string
	switch c := m.session.Control().(type) {
	case engine.FightMenu:
		bottom = renderFightMenu(c)
	case engine.LootPopup:
		bottom = m.renderLoot(c)
	case engine.InventoryPopup:
		bottom = m.renderInventory(c)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		main,
		bottom,
		m.help.View(keys),
	)
}

func (m model) renderPlayer() string {
	p := m.session.Player()
	lines := []string{
		titleStyle.Render(strings.ToUpper(p.Name)),
		fmt.Sprintf("Level %d", p.Level),
		fmt.Sprintf("HP %s", p.HealthFraction()),
		m.playerBar.ViewAs(p.HealthRatio()),
		fmt.Sprintf("XP %d, %d to next", p.Experience, p.ExperienceToNext),
		fmt.Sprintf("Damage %s", p.Damage),
		fmt.Sprintf("Potions %d", len(p.Inventory)),
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func (m model) renderMonster() string {
	mon := m.session.Monster()
	if mon == nil {
		return ""
	}
	lines := []string{
		titleStyle.Render(strings.ToUpper(mon.Name)),
		fmt.Sprintf("Level %d", mon.Level),
		fmt.Sprintf("HP %s", mon.HealthFraction()),
		m.monsterBar.ViewAs(mon.HealthRatio()),
		helpStyle.Render(mon.Description),
	}
	if mon.Art != "" {
		lines = append(lines, adversaryStyle.Render(mon.Art))
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

// renderLog draws the visible window of the event log, typed out up to now.
// Player lines sit on the left, adversary lines on the right.
func (m model) renderLog() string {
	width := m.logView.Width
	var lines []string
	for _, e := range m.session.Log().Visible() {
		text := e.Visible(m.now)
		if roll, ok := e.RollValue(); ok && text != "" {
			text = rollStyle.Render(fmt.Sprintf("[d20 %2d]", roll)) + " " + text
		}
		switch e.Side() {
		case eventlog.PlayerSide:
			text = playerStyle.Width(width).Render(text)
		case eventlog.AdversarySide:
			text = adversaryStyle.Width(width).Align(lipgloss.Right).Render(text)
		}
		lines = append(lines, text)
	}

	vp := m.logView
	vp.SetContent(strings.Join(lines, "\n"))
	return vp.View()
}

func renderFightMenu(c engine.FightMenu) string {
	buttons := make([]string, len(engine.FightOptions))
	for i, opt := range engine.FightOptions {
		style := buttonStyle
		switch {
		case opt == c.Selected:
			style = activeButtonStyle
		case !opt.Available():
			style = disabledButtonStyle
		}
		buttons[i] = style.Render(opt.String())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

func (m model) renderLoot(c engine.LootPopup) string {
	var lines []string
	if last, ok := m.session.LastDefeated(); ok {
		loot, _ := last.Loot()
		lines = append(lines,
			titleStyle.Render("VICTORY"),
			"",
			fmt.Sprintf("%s has been slain!", last.Name),
			fmt.Sprintf("You gained %d experience points.", last.ExperienceReward),
		)
		if loot.LevelUp {
			lines = append(lines, rollStyle.Render(fmt.Sprintf("LEVEL UP! You are now level %d.", m.session.Player().Level)))
		}
		if loot.Item != nil {
			lines = append(lines, fmt.Sprintf("It dropped a %s (%s).", loot.Item.Name(), loot.Item.Description()))
		} else {
			lines = append(lines, "It dropped nothing.")
		}
	}

	buttons := make([]string, len(engine.LootOptions))
	for i, opt := range engine.LootOptions {
		style := buttonStyle
		if opt == c.Selected {
			style = activeButtonStyle
		}
		buttons[i] = style.Render(opt.String())
	}
	lines = append(lines, "", lipgloss.JoinHorizontal(lipgloss.Top, buttons...))

	return popupStyle.Render(strings.Join(lines, "\n"))
}

func (m model) renderInventory(c engine.InventoryPopup) string {
	inv := m.session.Player().Inventory
	body := helpStyle.Render("Your bag is empty.")
	if len(inv) > 0 {
		body = inventoryTable(inv, c).Render()
	}

	buttons := make([]string, len(engine.InventoryOptions))
	for i, opt := range engine.InventoryOptions {
		style := buttonStyle
		if opt == c.Selected {
			style = activeButtonStyle
		}
		buttons[i] = style.Render(opt.String())
	}

	return popupStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("INVENTORY"),
		"",
		body,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, buttons...),
	))
}

func inventoryTable(inv []models.Item, c engine.InventoryPopup) *table.Table {
	rows := make([][]string, 0, len(inv))
	for i, item := range inv {
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), item.Name(), item.Description()})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorder).
		BorderHeader(true).
		BorderRow(false).
		Headers("#", "Item", "Effect").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return titleStyle.UnsetUnderline().Padding(0, 1)
			case c.Selected == engine.InventoryUse && row == c.Index:
				return activeButtonStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

func (m model) viewGameOver() string {
	killer := "the darkness"
	if mon := m.session.Monster(); mon != nil {
		killer = mon.Name
	}

	epitaph := m.spinner.View() + " The bard is composing your epitaph..."
	if m.epitaph != nil {
		epitaph = lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(m.epitaph.Title),
			"",
			m.epitaph.Text,
		)
	}

	return popupStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		adversaryStyle.Bold(true).Render("GAME OVER"),
		"",
		fmt.Sprintf("%s was slain by %s at level %d.", m.session.Player().Name, killer, m.session.Player().Level),
		fmt.Sprintf("Monsters defeated: %d", len(m.session.Defeated())),
		"",
		epitaph,
		"",
		helpStyle.Render("press q to quit"),
	))
}

func (m model) viewRetired() string {
	p := m.session.Player()
	parts := []string{
		titleStyle.Render("MISSION COMPLETE"),
		"",
		fmt.Sprintf("%s returns home at level %d with %s HP.", p.Name, p.Level, p.HealthFraction()),
		"",
		defeatedTable(m.session.Defeated()).Render(),
		"",
		helpStyle.Render("press q to quit"),
	}
	return popupStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func defeatedTable(defeated []*models.Monster) *table.Table {
	rows := make([][]string, 0, len(defeated))
	for _, mon := range defeated {
		loot, _ := mon.Loot()
		drop := "-"
		if loot.Item != nil {
			drop = loot.Item.Name()
		}
		rows = append(rows, []string{
			mon.Name,
			fmt.Sprintf("%d", mon.Level),
			fmt.Sprintf("%d", mon.ExperienceReward),
			drop,
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorder).
		BorderHeader(true).
		BorderRow(false).
		Headers("Monster", "Level", "XP", "Drop").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return titleStyle.UnsetUnderline().Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}
