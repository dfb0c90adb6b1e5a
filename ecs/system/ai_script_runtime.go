package system

import (
	"fmt"
	"math"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/hunting/prefabs"
)

// WanderScript runs a monster wander script. The host sets `angle` (radians,
// drawn from the AI system's random source) and `speed`; the script must
// define `vx` and `vy`.
type WanderScript struct {
	scriptPath string
	compiled   *tengo.Compiled
}

// LoadWanderScript compiles a wander script from prefabs/scripts.
func LoadWanderScript(name string) (*WanderScript, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("ai: load script %s: %w", name, err)
	}
	return compileWanderScript(name, src)
}

func compileWanderScript(name string, src []byte) (*WanderScript, error) {
	script := tengo.NewScript(src)
	_ = script.Add("angle", 0.0)
	_ = script.Add("speed", 0.0)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("ai: compile script %s: %w", name, err)
	}
	rt := &WanderScript{scriptPath: name, compiled: compiled}

	// dry run so a broken script is rejected at load time
	if _, _, err := rt.velocity(0, 0); err != nil {
		return nil, err
	}
	return rt, nil
}

func (rt *WanderScript) velocity(angle, speed float64) (float64, float64, error) {
	if rt == nil || rt.compiled == nil {
		return 0, 0, fmt.Errorf("nil script runtime")
	}
	if err := rt.compiled.Set("angle", angle); err != nil {
		return 0, 0, err
	}
	if err := rt.compiled.Set("speed", speed); err != nil {
		return 0, 0, err
	}
	if err := rt.compiled.Run(); err != nil {
		return 0, 0, fmt.Errorf("ai: run script %s: %w", rt.scriptPath, err)
	}
	if !rt.compiled.IsDefined("vx") || !rt.compiled.IsDefined("vy") {
		return 0, 0, fmt.Errorf("ai: script %s must define vx and vy", rt.scriptPath)
	}
	vx := rt.compiled.Get("vx").Float()
	vy := rt.compiled.Get("vy").Float()
	if math.IsNaN(vx) || math.IsNaN(vy) || math.IsInf(vx, 0) || math.IsInf(vy, 0) {
		return 0, 0, fmt.Errorf("ai: script %s produced non-finite velocity (%v, %v)", rt.scriptPath, vx, vy)
	}
	return vx, vy, nil
}
