package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/lixenwraith/bounce-arena/audio"
	"github.com/lixenwraith/bounce-arena/parameter"
)

// EnvPrefix namespaces every environment override
const EnvPrefix = "BOUNCE_ARENA_"

// Config is the resolved run configuration
type Config struct {
	EnemySpeed       float64
	EnemyCount       int
	ConfineWanderers bool
	Seed             uint64 // 0 seeds from the clock

	// Arena used when no terminal supplies a viewport
	ArenaWidth  float64
	ArenaHeight float64

	Audio *audio.Config

	LocaleDir string
	Lang      string
}

// Default returns the stock arena: four slow wanderers, all confined
func Default() *Config {
	return &Config{
		EnemySpeed:       parameter.EnemySpeed,
		EnemyCount:       parameter.NumberOfEnemies,
		ConfineWanderers: true,
		ArenaWidth:       parameter.DefaultArenaWidth,
		ArenaHeight:      parameter.DefaultArenaHeight,
		Audio:            audio.DefaultConfig(),
		LocaleDir:        "locales",
		Lang:             "en",
	}
}

type fileConfig struct {
	EnemySpeed       *float64 `json:"enemySpeed"`
	EnemyCount       *int     `json:"enemyCount"`
	ConfineWanderers *bool    `json:"confineWanderers"`
	Seed             *uint64  `json:"seed"`
	ArenaWidth       *float64 `json:"arenaWidth"`
	ArenaHeight      *float64 `json:"arenaHeight"`
	Audio            *struct {
		Enabled      *bool    `json:"enabled"`
		MasterVolume *float64 `json:"masterVolume"`
		SampleRate   *int     `json:"sampleRate"`
	} `json:"audio"`
	LocaleDir *string `json:"localeDir"`
	Lang      *string `json:"lang"`
}

// LoadFile merges the JSON file at path over c; fields absent from the file keep their value
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	c.merge(&fc)
	c.Sanitize()
	return nil
}

func (c *Config) merge(fc *fileConfig) {
	if fc.EnemySpeed != nil {
		c.EnemySpeed = *fc.EnemySpeed
	}
	if fc.EnemyCount != nil {
		c.EnemyCount = *fc.EnemyCount
	}
	if fc.ConfineWanderers != nil {
		c.ConfineWanderers = *fc.ConfineWanderers
	}
	if fc.Seed != nil {
		c.Seed = *fc.Seed
	}
	if fc.ArenaWidth != nil {
		c.ArenaWidth = *fc.ArenaWidth
	}
	if fc.ArenaHeight != nil {
		c.ArenaHeight = *fc.ArenaHeight
	}
	if fc.Audio != nil {
		if fc.Audio.Enabled != nil {
			c.Audio.Enabled = *fc.Audio.Enabled
		}
		if fc.Audio.MasterVolume != nil {
			c.Audio.MasterVolume = *fc.Audio.MasterVolume
		}
		if fc.Audio.SampleRate != nil {
			c.Audio.SampleRate = *fc.Audio.SampleRate
		}
	}
	if fc.LocaleDir != nil {
		c.LocaleDir = *fc.LocaleDir
	}
	if fc.Lang != nil {
		c.Lang = *fc.Lang
	}
}

// ApplyEnv overlays BOUNCE_ARENA_* variables from the process environment
func (c *Config) ApplyEnv() {
	c.applyLookup(os.LookupEnv)
}

func (c *Config) applyLookup(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvPrefix + "ENEMY_SPEED"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.EnemySpeed = f
		}
	}
	if v, ok := lookup(EnvPrefix + "ENEMIES"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.EnemyCount = n
		}
	}
	if v, ok := lookup(EnvPrefix + "CONFINE_WANDERERS"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.ConfineWanderers = b
		}
	}
	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Seed = n
		}
	}
	if v, ok := lookup(EnvPrefix + "LOCALE"); ok && v != "" {
		c.Lang = v
	}
	c.Audio.ApplyEnv(EnvPrefix, lookup)
	c.Sanitize()
}

// Sanitize snaps enemy speed to the nearest supported value and clamps the rest
func (c *Config) Sanitize() {
	c.EnemySpeed = SnapEnemySpeed(c.EnemySpeed)
	if c.EnemyCount < 0 {
		c.EnemyCount = 0
	}
	if !(c.ArenaWidth > 0) || math.IsInf(c.ArenaWidth, 0) {
		c.ArenaWidth = parameter.DefaultArenaWidth
	}
	if !(c.ArenaHeight > 0) || math.IsInf(c.ArenaHeight, 0) {
		c.ArenaHeight = parameter.DefaultArenaHeight
	}
	if c.Audio == nil {
		c.Audio = audio.DefaultConfig()
	}
	c.Audio.Sanitize()
	if c.Lang == "" {
		c.Lang = "en"
	}
}

// SnapEnemySpeed maps any value onto the supported speeds, ties and NaN go to the slow default
func SnapEnemySpeed(v float64) float64 {
	if math.IsNaN(v) {
		return parameter.EnemySpeed
	}
	if math.Abs(v-parameter.EnemySpeedFast) < math.Abs(v-parameter.EnemySpeedSlow) {
		return parameter.EnemySpeedFast
	}
	return parameter.EnemySpeedSlow
}
