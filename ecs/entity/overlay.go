package entity

import (
	"fmt"

	"github.com/milk9111/hunting/ecs"
	"github.com/milk9111/hunting/ecs/component"
)

const GameOverText = "GAME OVER"

// NewGameOverOverlay spawns the cosmetic overlay shown once the monster dies.
func NewGameOverOverlay(w *ecs.World) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.GameOverOverlayComponent, &component.GameOverOverlay{Text: GameOverText}); err != nil {
		return 0, fmt.Errorf("game over: add overlay: %w", err)
	}
	return e, nil
}

// NewScoreLabel spawns the on-screen score for one hunter.
func NewScoreLabel(w *ecs.World, hunterName string, x, y float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	label := &component.ScoreLabel{
		HunterName: hunterName,
		Text:       FormatScore(hunterName, 0),
		X:          x,
		Y:          y,
	}
	if err := ecs.Add(w, e, component.ScoreLabelComponent, label); err != nil {
		return 0, fmt.Errorf("score label %s: %w", hunterName, err)
	}
	return e, nil
}

func FormatScore(name string, score uint32) string {
	return fmt.Sprintf("%s: %d", name, score)
}
