package system

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/hunting/common"
	"github.com/milk9111/hunting/ecs"
	"github.com/milk9111/hunting/ecs/component"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// RenderSystem draws the arena as flat shapes. World coordinates are centered
// on the screen; it only reads components.
type RenderSystem struct {
	face  text.Face
	debug bool
}

func NewRenderSystem(debug bool) *RenderSystem {
	return &RenderSystem{
		face:  text.NewGoXFace(basicfont.Face7x13),
		debug: debug,
	}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	screen.Fill(colornames.Black)
	offX, offY := common.ScreenWidth/2.0, common.ScreenHeight/2.0

	if arena, ok := w.First(component.ArenaBoundsComponent.Kind()); ok {
		if b, ok := ecs.Get(w, arena, component.ArenaBoundsComponent); ok {
			vector.StrokeRect(screen,
				float32(offX-b.HalfWidth), float32(offY-b.HalfHeight),
				float32(b.HalfWidth*2), float32(b.HalfHeight*2),
				1, colornames.Dimgray, false)
		}
	}

	entities := w.Query(component.TransformComponent.Kind(), component.VisualComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		vi, _ := ecs.Get(w, entities[i], component.VisualComponent)
		vj, _ := ecs.Get(w, entities[j], component.VisualComponent)
		return vi.Layer < vj.Layer
	})
	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent)
		v, _ := ecs.Get(w, e, component.VisualComponent)
		radius := v.Radius * t.Scale
		if radius <= 0 {
			continue
		}
		var clr color.Color = v.Color
		if hf, ok := ecs.Get(w, e, component.HitFlashComponent); ok && hf.On {
			clr = colornames.White
		}
		vector.FillCircle(screen, float32(t.X+offX), float32(t.Y+offY), float32(radius), clr, true)
	}

	ecs.ForEach(w, component.ScoreLabelComponent, func(e ecs.Entity, label *component.ScoreLabel) {
		r.drawText(screen, label.Text, label.X, label.Y, colornames.White)
	})

	if overlay, ok := w.First(component.GameOverOverlayComponent.Kind()); ok {
		if o, ok := ecs.Get(w, overlay, component.GameOverOverlayComponent); ok {
			width, _ := text.Measure(o.Text, r.face, 0)
			r.drawText(screen, o.Text, offX-width/2, offY, colornames.Red)
		}
	}

	if r.debug {
		DrawPhysicsDebug(w, screen)
		r.drawDebug(w, screen)
	}
}

func (r *RenderSystem) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, r.face, op)
}

func (r *RenderSystem) drawDebug(w *ecs.World, screen *ebiten.Image) {
	health := "-"
	if monster, ok := w.First(component.MonsterTagComponent.Kind()); ok {
		if h, ok := ecs.Get(w, monster, component.HealthComponent); ok {
			health = fmt.Sprintf("%d/%d", h.Current, h.Initial)
		}
	}
	msg := fmt.Sprintf("tick %d  fps %.1f  entities %d  monster %s", w.Ticks(), ebiten.ActualFPS(), w.Len(), health)
	ebitenutil.DebugPrintAt(screen, msg, 8, common.ScreenHeight-20)
}
