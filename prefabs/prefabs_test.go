package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withDiskDir(t *testing.T, dir string) {
	t.Helper()
	prev := DiskDir()
	SetDiskDir(dir)
	t.Cleanup(func() { SetDiskDir(prev) })
}

func TestEmbeddedSpecsLoad(t *testing.T) {
	withDiskDir(t, "")

	arena, err := LoadArenaSpec()
	require.NoError(t, err)
	assert.Equal(t, 600.0, arena.HalfWidth)
	assert.Equal(t, 300.0, arena.HalfHeight)
	assert.Equal(t, 100.0, arena.VelocityGain)

	monster, err := LoadMonsterSpec()
	require.NoError(t, err)
	assert.Equal(t, uint32(100), monster.Health)

	hunters, err := LoadHuntersSpec()
	require.NoError(t, err)
	require.Len(t, hunters.Hunters, 3)
	for _, h := range hunters.Hunters {
		assert.Equal(t, uint32(20), h.Damage, h.Name)
	}

	table, err := LoadExplosionTableSpec()
	require.NoError(t, err)
	assert.Len(t, table.Explosions, 3)

	script, err := LoadScript("wander.tengo")
	require.NoError(t, err)
	assert.Contains(t, string(script), "vx")
}

func TestDiskOverrideWins(t *testing.T) {
	dir := t.TempDir()
	withDiskDir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "monster.yaml"), []byte("name: Nergigante\nhealth: 250\n"), 0o644))

	spec, err := LoadMonsterSpec()
	require.NoError(t, err)
	assert.Equal(t, "Nergigante", spec.Name)
	assert.Equal(t, uint32(250), spec.Health)
	// unspecified fields fall back to defaults
	assert.Equal(t, DefaultMonsterSpec().WanderSpeed, spec.WanderSpeed)
}

func TestHuntersSpecRejectsDuplicates(t *testing.T) {
	dir := t.TempDir()
	withDiskDir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hunters.yaml"), []byte("hunters:\n  - name: Alice\n  - name: Alice\n"), 0o644))

	spec, err := LoadHuntersSpec()
	require.Error(t, err)
	assert.Len(t, spec.Hunters, 3, "defaults returned on error")
}

func TestInvalidYAMLReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	withDiskDir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "arena.yaml"), []byte("half_width: [oops"), 0o644))

	spec, err := LoadArenaSpec()
	require.Error(t, err)
	assert.Equal(t, DefaultArenaSpec(), spec)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#d9483b")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xd9, G: 0x48, B: 0x3b, A: 0xff}, c)

	c, err = ParseColor("10203040")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, c)

	_, err = ParseColor("#zzz")
	assert.Error(t, err)
}

func TestWatcherReportsSpecEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "arena.yaml"), []byte("half_width: 500\n"), 0o644))

	var got []string
	require.Eventually(t, func() bool {
		names, _ := w.Poll()
		got = append(got, names...)
		return len(got) > 0
	}, 2*time.Second, 20*time.Millisecond)
	assert.Equal(t, "arena.yaml", got[0])
	assert.NotContains(t, got, "notes.txt")
}
