package system

import (
	"github.com/milk9111/hunting/ecs"
	"github.com/milk9111/hunting/ecs/component"
	"github.com/milk9111/hunting/ecs/entity"
	"github.com/milk9111/hunting/ecs/event"
)

// ScoreLabelSystem applies Attack events to the label whose hunter name
// matches exactly.
type ScoreLabelSystem struct {
	bus *event.Bus
}

func NewScoreLabelSystem(bus *event.Bus) *ScoreLabelSystem {
	return &ScoreLabelSystem{bus: bus}
}

func (s *ScoreLabelSystem) Update(w *ecs.World) {
	if s == nil || s.bus == nil || w == nil {
		return
	}
	attacks := s.bus.Attacks.Events()
	if len(attacks) == 0 {
		return
	}

	labels := w.Query(component.ScoreLabelComponent.Kind())
	for _, evt := range attacks {
		for _, e := range labels {
			label, ok := ecs.Get(w, e, component.ScoreLabelComponent)
			if !ok || label.HunterName != evt.HunterName {
				continue
			}
			if evt.Score < label.Score {
				continue
			}
			label.Score = evt.Score
			label.Text = entity.FormatScore(label.HunterName, label.Score)
		}
	}
}
