package config

import (
	"fmt"

	"rampart/game"

	"github.com/spf13/viper"
)

// Layout names every coordinate list the placement policy uses, so the policy
// and the board layout can vary independently. Defaults carry the classic
// base layout; a config file can override any list.
type Layout struct {
	// Unconditional baseline, rebuilt every turn.
	CoreTurrets []game.Location
	CoreWalls   []game.Location
	// The support line, front to back. The first entry is the primary,
	// always-built generator.
	GeneratorLine []game.Location
	// Secondary turret ring. The leading SecondaryBaseline entries are
	// placed unconditionally, the rest opportunistically.
	SecondaryTurrets []game.Location
	// Wall cells upgraded first, before any turret upgrade.
	WallUpgrades []game.Location
	// Standing interceptor harassment posts.
	InterceptorPosts []game.Location
	// The two rear spawn lanes considered for a rush burst.
	RushLanes []game.Location
}

// Policy holds the scalar knobs of the turn policy.
type Policy struct {
	StructureReserve  float64 // structure balance gating generator expansion and upgrades
	SecondaryBaseline int     // leading secondary turrets placed unconditionally
	GeneratorRamp     int     // generator tranche size before RampUntilTurn
	RampUntilTurn     int     // turn at which the full generator line opens up
	RushBurst         int     // spawn count of a rush burst ("everything available")
	HarassFromTurn    int     // interceptor posts are manned after this turn (and on turn 1)
}

type Config struct {
	LogLevel   string
	RecordPath string // directory for decision records, empty disables recording
	Layout     Layout
	Policy     Policy
}

// On disk the file is configName plus the .json extension, "rampart.cfg.json".
const configName = "rampart.cfg"

// Default returns the built-in configuration without consulting viper.
func Default() Config {
	return Config{
		LogLevel: "info",
		Policy: Policy{
			StructureReserve:  8,
			SecondaryBaseline: 7,
			GeneratorRamp:     7,
			RampUntilTurn:     10,
			RushBurst:         1000,
			HarassFromTurn:    10,
		},
		Layout: Layout{
			CoreTurrets:      defaultCoreTurrets,
			CoreWalls:        defaultCoreWalls,
			GeneratorLine:    defaultGeneratorLine,
			SecondaryTurrets: defaultSecondaryTurrets,
			WallUpgrades:     defaultWallUpgrades,
			InterceptorPosts: defaultInterceptorPosts,
			RushLanes:        defaultRushLanes,
		},
	}
}

// Load reads the optional config file and installs defaults for every key.
// A missing file is fine; a malformed one is not.
func Load(dir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("recordPath", "")

	viper.SetDefault("policy.structureReserve", 8.0)
	viper.SetDefault("policy.secondaryBaseline", 7)
	viper.SetDefault("policy.generatorRamp", 7)
	viper.SetDefault("policy.rampUntilTurn", 10)
	viper.SetDefault("policy.rushBurst", 1000)
	viper.SetDefault("policy.harassFromTurn", 10)

	viper.SetDefault("layout.coreTurrets", pairs(defaultCoreTurrets))
	viper.SetDefault("layout.coreWalls", pairs(defaultCoreWalls))
	viper.SetDefault("layout.generatorLine", pairs(defaultGeneratorLine))
	viper.SetDefault("layout.secondaryTurrets", pairs(defaultSecondaryTurrets))
	viper.SetDefault("layout.wallUpgrades", pairs(defaultWallUpgrades))
	viper.SetDefault("layout.interceptorPosts", pairs(defaultInterceptorPosts))
	viper.SetDefault("layout.rushLanes", pairs(defaultRushLanes))

	viper.SetConfigName(configName)
	viper.SetConfigType("json")
	viper.AddConfigPath(dir)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read config file: %w", err)
		}
	}
	return nil
}

// Get materializes the typed config from whatever Load installed.
func Get() (Config, error) {
	cfg := Config{
		LogLevel:   viper.GetString("logLevel"),
		RecordPath: viper.GetString("recordPath"),
		Policy: Policy{
			StructureReserve:  viper.GetFloat64("policy.structureReserve"),
			SecondaryBaseline: viper.GetInt("policy.secondaryBaseline"),
			GeneratorRamp:     viper.GetInt("policy.generatorRamp"),
			RampUntilTurn:     viper.GetInt("policy.rampUntilTurn"),
			RushBurst:         viper.GetInt("policy.rushBurst"),
			HarassFromTurn:    viper.GetInt("policy.harassFromTurn"),
		},
	}

	lists := []struct {
		key  string
		dest *[]game.Location
	}{
		{"layout.coreTurrets", &cfg.Layout.CoreTurrets},
		{"layout.coreWalls", &cfg.Layout.CoreWalls},
		{"layout.generatorLine", &cfg.Layout.GeneratorLine},
		{"layout.secondaryTurrets", &cfg.Layout.SecondaryTurrets},
		{"layout.wallUpgrades", &cfg.Layout.WallUpgrades},
		{"layout.interceptorPosts", &cfg.Layout.InterceptorPosts},
		{"layout.rushLanes", &cfg.Layout.RushLanes},
	}
	for _, l := range lists {
		locs, err := locationList(l.key)
		if err != nil {
			return Config{}, err
		}
		*l.dest = locs
	}

	if len(cfg.Layout.RushLanes) == 0 {
		return Config{}, fmt.Errorf("config: layout.rushLanes must not be empty")
	}
	return cfg, nil
}

func locationList(key string) ([]game.Location, error) {
	raw, ok := viper.Get(key).([]any)
	if !ok {
		return nil, fmt.Errorf("config: %s is not a coordinate list", key)
	}
	locs := make([]game.Location, len(raw))
	for i, entry := range raw {
		pair, ok := entry.([]any)
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("config: %s[%d] is not an [x, y] pair", key, i)
		}
		x, xok := asInt(pair[0])
		y, yok := asInt(pair[1])
		if !xok || !yok {
			return nil, fmt.Errorf("config: %s[%d] has non-integer coordinates", key, i)
		}
		locs[i] = game.Loc(x, y)
	}
	return locs, nil
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	}
	return 0, false
}

func pairs(locs []game.Location) []any {
	out := make([]any, len(locs))
	for i, l := range locs {
		out[i] = []any{l.X, l.Y}
	}
	return out
}
