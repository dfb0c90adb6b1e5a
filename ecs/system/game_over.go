package system

import (
	"fmt"
	"log"

	"github.com/milk9111/hunting/ecs"
	"github.com/milk9111/hunting/ecs/component"
	"github.com/milk9111/hunting/ecs/entity"
	"github.com/milk9111/hunting/ecs/event"
)

// GameOverSystem reacts to GameEnd by naming the top scorer on the overlay
// and stopping every steered entity.
type GameOverSystem struct {
	bus    *event.Bus
	over   bool
	winner string
}

func NewGameOverSystem(bus *event.Bus) *GameOverSystem {
	return &GameOverSystem{bus: bus}
}

// Over reports whether a GameEnd has been observed.
func (s *GameOverSystem) Over() bool {
	return s != nil && s.over
}

// Winner returns the top-scoring hunter at game end, if any.
func (s *GameOverSystem) Winner() string {
	if s == nil {
		return ""
	}
	return s.winner
}

func (s *GameOverSystem) Update(w *ecs.World) {
	if s == nil || s.bus == nil || w == nil || s.bus.GameEnds.Len() == 0 {
		return
	}
	s.over = true

	var best uint32
	s.winner = ""
	ecs.ForEach2(w, component.NameComponent, component.ScoreComponent, func(e ecs.Entity, name *component.Name, score *component.Score) {
		if !ecs.Has(w, e, component.HunterTagComponent) {
			return
		}
		if s.winner == "" || score.Value > best {
			best = score.Value
			s.winner = name.Value
		}
	})

	text := entity.GameOverText
	if s.winner != "" {
		text = fmt.Sprintf("%s - %s wins with %d", entity.GameOverText, s.winner, best)
	}
	if overlay, ok := w.First(component.GameOverOverlayComponent.Kind()); ok {
		if o, ok := ecs.Get(w, overlay, component.GameOverOverlayComponent); ok {
			o.Text = text
		}
	}
	// steering freezes with the hunt
	ecs.ForEach(w, component.SpeedComponent, func(e ecs.Entity, speed *component.Speed) {
		*speed = component.Speed{}
	})
	log.Printf("game over: %s", text)
}
