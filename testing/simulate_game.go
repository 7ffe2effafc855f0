package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/sirupsen/logrus"

	"github.com/tatianab/slayer/internal/config"
	"github.com/tatianab/slayer/internal/dice"
	"github.com/tatianab/slayer/internal/engine"
	"github.com/tatianab/slayer/internal/logger"
	"github.com/tatianab/slayer/internal/models"
)

const maxTurns = 500

// drinkBelow is the health ratio under which the autopilot drinks a potion.
const drinkBelow = 0.3

var headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Bold(true).Padding(0, 1)

func main() {
	runs := flag.Int("runs", 10, "number of sessions to play")
	seed := flag.Int64("seed", 0, "first seed; 0 picks one at random")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	closer, err := logger.Init(cfg)
	if err != nil {
		log.Printf("Logging disabled: %v", err)
	}
	defer closer.Close()

	first := *seed
	if first == 0 {
		if first, err = dice.NewSeed(); err != nil {
			log.Fatalf("Failed to pick a seed: %v", err)
		}
	}

	results := make([]result, 0, *runs)
	for i := 0; i < *runs; i++ {
		s := first + int64(i)
		src, err := dice.New(s)
		if err != nil {
			log.Fatalf("Failed to seed dice: %v", err)
		}
		r, err := play(engine.NewSession(src), fmt.Sprintf("Autopilot %d", i+1))
		if err != nil {
			log.Fatalf("Failed to play seed %d: %v", s, err)
		}
		r.seed = s
		logger.Log.WithFields(logrus.Fields{
			"seed":    s,
			"kills":   r.kills,
			"level":   r.level,
			"outcome": r.outcome,
		}).Info("simulation finished")
		results = append(results, r)
	}

	fmt.Fprintln(os.Stdout, summary(results).Render())
}

type result struct {
	seed    int64
	kills   int
	level   int
	potions int
	turns   int
	killer  string
	outcome string
}

// play drives s until the player dies or the turn cap is reached. It attacks,
// drinks the strongest potion when health runs low and always continues
// after a kill.
func play(s *engine.Session, name string) (result, error) {
	for _, r := range name {
		s.InsertChar(r)
	}
	s.SubmitName()
	if err := s.Start(); err != nil {
		return result{}, err
	}

	var r result
	for r.turns = 0; r.turns < maxTurns && !s.GameOver(); r.turns++ {
		if s.Popup() == engine.PopupLoot {
			s.Activate()
			continue
		}
		if idx, ok := strongestPotion(s.Player()); ok && s.Player().HealthRatio() < drinkBelow {
			drink(s, idx)
			r.potions++
			continue
		}
		s.Activate()
	}

	r.kills = len(s.Defeated())
	r.level = s.Player().Level
	r.outcome = "survived"
	if s.GameOver() {
		r.outcome = "slain"
		r.killer = s.Monster().Name
	}
	return r, nil
}

func strongestPotion(p *models.Player) (int, bool) {
	best := -1
	for i, item := range p.Inventory {
		if best < 0 || item.Size > p.Inventory[best].Size {
			best = i
		}
	}
	return best, best >= 0
}

// drink walks the fight menu to the inventory and uses the item at idx.
func drink(s *engine.Session, idx int) {
	for range engine.FightOptions {
		s.MoveHorizontal(-1)
	}
	for i := 0; i < int(engine.FightInventory); i++ {
		s.MoveHorizontal(1)
	}
	s.Activate()
	s.MoveHorizontal(-1)
	for i := 0; i < idx; i++ {
		s.MoveVertical(1)
	}
	s.Activate()
}

func summary(results []result) *table.Table {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		killer := r.killer
		if killer == "" {
			killer = "-"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", r.seed),
			r.outcome,
			fmt.Sprintf("%d", r.kills),
			fmt.Sprintf("%d", r.level),
			fmt.Sprintf("%d", r.potions),
			fmt.Sprintf("%d", r.turns),
			killer,
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderHeader(true).
		BorderRow(false).
		Headers("Seed", "Outcome", "Kills", "Level", "Potions", "Turns", "Killed by").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}
