package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/hunting/ecs"
	"github.com/milk9111/hunting/ecs/component"
	"golang.org/x/image/colornames"
)

var explosionColors = map[string]color.RGBA{
	"explosion01": colornames.Orange,
	"flash00":     colornames.Lightyellow,
}

// NewExplosion spawns the visual entity owning one effect instance.
func NewExplosion(w *ecs.World, fx component.Explosion, visualKey string, visualRadius, x, y float64) (ecs.Entity, error) {
	if fx.Duration <= 0 {
		return 0, fmt.Errorf("explosion %s: non-positive duration %v", fx.Kind, fx.Duration)
	}
	clr, ok := explosionColors[visualKey]
	if !ok {
		clr = colornames.White
	}

	e := ecs.CreateEntity(w)

	fx.Elapsed = 0
	if err := ecs.Add(w, e, component.ExplosionComponent, &fx); err != nil {
		return 0, fmt.Errorf("explosion: add effect: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: y, Scale: fx.StartScale}); err != nil {
		return 0, fmt.Errorf("explosion: add transform: %w", err)
	}
	visual := &component.Visual{Key: visualKey, Color: clr, Radius: visualRadius, Layer: 2}
	if err := ecs.Add(w, e, component.VisualComponent, visual); err != nil {
		return 0, fmt.Errorf("explosion: add visual: %w", err)
	}
	return e, nil
}
