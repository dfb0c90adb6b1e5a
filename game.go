package main

import (
	"log"
	"math/rand/v2"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/hunting/common"
	"github.com/milk9111/hunting/ecs"
	"github.com/milk9111/hunting/ecs/entity"
	"github.com/milk9111/hunting/ecs/event"
	"github.com/milk9111/hunting/ecs/system"
	"github.com/milk9111/hunting/prefabs"
)

type Options struct {
	Debug      bool
	Watch      bool
	PrefabsDir string
	Script     string
	Seed       uint64
}

type Game struct {
	opts Options

	world     *ecs.World
	physics   *ecs.PhysicsWorld
	bus       *event.Bus
	scheduler *ecs.Scheduler
	watcher   *prefabs.Watcher

	ai        *system.AISystem
	binding   *system.PhysicsBindingSystem
	spawner   *system.ExplosionSpawnSystem
	gameOver  *system.GameOverSystem
	renderSys *system.RenderSystem
}

func NewGame(opts Options) (*Game, error) {
	if opts.PrefabsDir != "" {
		prefabs.SetDiskDir(opts.PrefabsDir)
	}

	arenaSpec, err := prefabs.LoadArenaSpec()
	if err != nil {
		log.Printf("prefabs: using default arena: %v", err)
	}
	monsterSpec, err := prefabs.LoadMonsterSpec()
	if err != nil {
		log.Printf("prefabs: using default monster: %v", err)
	}
	huntersSpec, err := prefabs.LoadHuntersSpec()
	if err != nil {
		log.Printf("prefabs: using default hunters: %v", err)
	}
	table := loadExplosionTable()

	world := ecs.NewWorld()
	physics := ecs.NewPhysicsWorld()
	world.SetPhysicsWorld(physics)
	bus := event.NewBus()
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))

	if _, err := entity.SpawnRoster(world, physics, rng, arenaSpec, monsterSpec, huntersSpec); err != nil {
		return nil, err
	}

	g := &Game{
		opts:      opts,
		world:     world,
		physics:   physics,
		bus:       bus,
		ai:        system.NewAISystem(rng, arenaSpec.AIInterval),
		binding:   system.NewPhysicsBindingSystem(arenaSpec.VelocityGain, arenaSpec.RecoveryAngle),
		spawner:   system.NewExplosionSpawnSystem(bus, table),
		gameOver:  system.NewGameOverSystem(bus),
		renderSys: system.NewRenderSystem(opts.Debug),
	}

	script := opts.Script
	if script == "" {
		script = monsterSpec.Script
	}
	if script != "" {
		g.loadScript(script)
	}

	// explosion FSM runs before the spawner so effects start advancing the
	// tick after they are requested
	g.scheduler = ecs.NewScheduler(
		g.ai,
		g.binding,
		system.NewPhysicsStepSystem(physics),
		system.NewCollisionSystem(physics, bus),
		system.NewScoreLabelSystem(bus),
		g.gameOver,
		system.NewHitFlashSystem(),
		system.NewExplosionSystem(),
		g.spawner,
	)

	if opts.Watch {
		dirs := []string{prefabs.DiskDir(), filepath.Join(prefabs.DiskDir(), "scripts")}
		watcher, err := prefabs.NewWatcher(dirs...)
		if err != nil {
			log.Printf("prefabs: hot reload disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	return g, nil
}

func loadExplosionTable() system.ExplosionTable {
	spec, err := prefabs.LoadExplosionTableSpec()
	if err != nil {
		log.Printf("prefabs: using default explosion table: %v", err)
		return system.DefaultExplosionTable()
	}
	table, err := system.ExplosionTableFromSpec(spec)
	if err != nil {
		log.Printf("prefabs: using default explosion table: %v", err)
	}
	return table
}

func (g *Game) loadScript(name string) {
	rt, err := system.LoadWanderScript(name)
	if err != nil {
		log.Printf("ai: keeping built-in wander: %v", err)
		return
	}
	g.ai.SetWanderScript(rt)
}

func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	changed, err := g.watcher.Poll()
	if err != nil {
		log.Printf("prefabs: watch: %v", err)
	}
	for _, name := range changed {
		switch {
		case name == "explosions.yaml":
			g.spawner.SetTable(loadExplosionTable())
		case name == "arena.yaml":
			spec, err := prefabs.LoadArenaSpec()
			if err != nil {
				log.Printf("prefabs: reload arena: %v", err)
				continue
			}
			g.binding.SetTuning(spec.VelocityGain, spec.RecoveryAngle)
			g.ai.SetInterval(spec.AIInterval)
		case strings.HasSuffix(name, ".tengo"):
			g.loadScript(name)
		default:
			continue
		}
		if g.opts.Debug {
			log.Printf("prefabs: reloaded %s", name)
		}
	}
}

func (g *Game) Update() error {
	g.reload()

	g.world.SetDelta(1.0 / float64(ebiten.TPS()))
	g.scheduler.Update(g.world)
	g.bus.Flush()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderSys.Draw(g.world, screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.ScreenWidth, common.ScreenHeight
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
