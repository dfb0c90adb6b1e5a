package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
)

func main() {
	// a missing .env is fine; flags and the process env still apply
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("env: %v", err)
	}

	debug := flag.Bool("debug", envBool("HUNTING_DEBUG", false), "enable debug overlay and logging")
	watch := flag.Bool("watch", envBool("HUNTING_WATCH", false), "hot reload prefabs from disk")
	prefabsDir := flag.String("prefabs", envString("HUNTING_PREFABS", "prefabs"), "directory checked for prefab overrides")
	script := flag.String("script", envString("HUNTING_SCRIPT", ""), "monster wander script in prefabs/scripts")
	seed := flag.Uint64("seed", envUint("HUNTING_SEED", uint64(time.Now().UnixNano())), "random seed")
	flag.Parse()

	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("hunting")

	game, err := NewGame(Options{
		Debug:      *debug,
		Watch:      *watch,
		PrefabsDir: *prefabsDir,
		Script:     *script,
		Seed:       *seed,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("env: %s=%q is not a bool", key, v)
		return fallback
	}
	return b
}

func envUint(key string, fallback uint64) uint64 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		log.Printf("env: %s=%q is not an unsigned integer", key, v)
		return fallback
	}
	return n
}
