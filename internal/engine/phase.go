package engine

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"
	"github.com/sirupsen/logrus"
)

// Encounter phases. defeated and retired are terminal.
const (
	phaseAwaiting  = "awaiting"
	phasePlayer    = "player_turn"
	phaseAdversary = "adversary_turn"
	phaseResolved  = "resolved"
	phaseDefeated  = "defeated"
	phaseRetired   = "retired"
)

const (
	eventPlayerFirst    = "player_first"
	eventAdversaryFirst = "adversary_first"
	eventYield          = "yield"
	eventReclaim        = "reclaim"
	eventSlay           = "slay"
	eventPerish         = "perish"
	eventAdvance        = "advance"
	eventRetire         = "retire"
)

// phase tracks whose turn it is and whether the encounter or the session is
// over.
type phase struct {
	fsm *fsm.FSM
}

func newPhase(log *logrus.Entry) *phase {
	fighting := []string{phasePlayer, phaseAdversary}
	return &phase{fsm: fsm.NewFSM(
		phaseAwaiting,
		fsm.Events{
			{Name: eventPlayerFirst, Src: []string{phaseAwaiting}, Dst: phasePlayer},
			{Name: eventAdversaryFirst, Src: []string{phaseAwaiting}, Dst: phaseAdversary},
			{Name: eventYield, Src: []string{phasePlayer}, Dst: phaseAdversary},
			{Name: eventReclaim, Src: []string{phaseAdversary}, Dst: phasePlayer},
			{Name: eventSlay, Src: fighting, Dst: phaseResolved},
			{Name: eventPerish, Src: fighting, Dst: phaseDefeated},
			{Name: eventAdvance, Src: []string{phaseResolved}, Dst: phaseAwaiting},
			{Name: eventRetire, Src: []string{phaseResolved}, Dst: phaseRetired},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				log.WithFields(logrus.Fields{
					"event": e.Event,
					"from":  e.Src,
					"to":    e.Dst,
				}).Debug("phase changed")
			},
		},
	)}
}

// fire applies event. The engine only fires events that are valid in the
// current phase, so a rejected transition is a bug.
func (p *phase) fire(event string) {
	if err := p.fsm.Event(context.Background(), event); err != nil {
		panic(fmt.Sprintf("game: %s from %s: %v", event, p.fsm.Current(), err))
	}
}

func (p *phase) is(state string) bool {
	return p.fsm.Is(state)
}

func (p *phase) current() string {
	return p.fsm.Current()
}
