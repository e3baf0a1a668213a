package config

import (
	"os"
	"path/filepath"
	"testing"

	"rampart/game"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(t.TempDir()))
	cfg, err := Get()
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg, "With no config file Get should match the built-in defaults")
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8.0, cfg.Policy.StructureReserve)
	assert.Equal(t, 1000, cfg.Policy.RushBurst)
	assert.Len(t, cfg.Layout.CoreWalls, 26)
	assert.Equal(t, game.Locations([2]int{11, 2}, [2]int{16, 2}), cfg.Layout.RushLanes)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"policy": { "rushBurst": 50, "structureReserve": 6 },
		"layout": { "rushLanes": [[10, 3], [17, 3]] }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rampart.cfg.json"), []byte(cfg), 0644))

	require.NoError(t, Load(dir))
	got, err := Get()
	require.NoError(t, err)

	assert.Equal(t, "debug", got.LogLevel)
	assert.Equal(t, 50, got.Policy.RushBurst)
	assert.Equal(t, 6.0, got.Policy.StructureReserve)
	assert.Equal(t, game.Locations([2]int{10, 3}, [2]int{17, 3}), got.Layout.RushLanes)
	assert.Len(t, got.Layout.CoreWalls, 26, "Unset keys keep their defaults")
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rampart.cfg.json"), []byte(`{not json`), 0644))

	require.Error(t, Load(dir))
}

func TestGet_RejectsBadCoordinateLists(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{"layout": { "rushLanes": [[1, 2, 3]] }}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rampart.cfg.json"), []byte(cfg), 0644))
	require.NoError(t, Load(dir))

	_, err := Get()
	require.Error(t, err)
}

func TestGet_RejectsEmptyRushLanes(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{"layout": { "rushLanes": [] }}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rampart.cfg.json"), []byte(cfg), 0644))
	require.NoError(t, Load(dir))

	_, err := Get()
	require.Error(t, err)
}
