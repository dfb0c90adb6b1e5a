package system

import (
	"github.com/milk9111/hunting/ecs"
	"github.com/milk9111/hunting/ecs/component"
)

const (
	hitFlashFrames   = 12
	hitFlashInterval = 3
)

type HitFlashSystem struct{}

func NewHitFlashSystem() *HitFlashSystem { return &HitFlashSystem{} }

func (s *HitFlashSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, e := range w.Query(component.HitFlashComponent.Kind()) {
		hf, ok := ecs.Get(w, e, component.HitFlashComponent)
		if !ok {
			continue
		}
		if hf.Interval <= 0 {
			hf.Interval = 1
		}
		hf.Timer++
		if hf.Timer >= hf.Interval {
			hf.Timer = 0
			hf.On = !hf.On
			hf.Frames -= hf.Interval
		}
		if hf.Frames <= 0 {
			ecs.Remove(w, e, component.HitFlashComponent)
		}
	}
}

// startHitFlash restarts the blink on e; a repeat hit extends it.
func startHitFlash(w *ecs.World, e ecs.Entity) {
	_ = ecs.Add(w, e, component.HitFlashComponent, &component.HitFlash{
		Frames:   hitFlashFrames,
		Interval: hitFlashInterval,
		On:       true,
	})
}
