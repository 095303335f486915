// Package sim drives the deterministic tick loop: it owns the simulation
// state and the spatial grid, advances entities, and produces broad-phase
// candidate pairs for the host's narrow phase.
package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes one arena. Dimension values are in world units and cross
// the float boundary exactly once, at world construction.
type Config struct {
	MapWidth  float64 `yaml:"map_width"`
	MapHeight float64 `yaml:"map_height"`

	// Grid resolution in cells per axis
	GridWidth  uint32 `yaml:"grid_width"`
	GridHeight uint32 `yaml:"grid_height"`

	// Simulation ticks per second
	TickRate uint32 `yaml:"tick_rate"`

	// Entity bounding box edge lengths
	TankSize   float64 `yaml:"tank_size"`
	BulletSize float64 `yaml:"bullet_size"`
}

// DefaultConfig returns the arena used by the bundled tools: a 100x100 map
// with 10-unit grid cells at 30 ticks per second.
func DefaultConfig() Config {
	return Config{
		MapWidth:   100,
		MapHeight:  100,
		GridWidth:  10,
		GridHeight: 10,
		TickRate:   30,
		TankSize:   4,
		BulletSize: 1,
	}
}

// Validate reports the first configuration fault.
func (c Config) Validate() error {
	if c.MapWidth <= 0 || c.MapHeight <= 0 {
		return fmt.Errorf("sim: map dimensions must be positive, got %gx%g", c.MapWidth, c.MapHeight)
	}
	if c.GridWidth == 0 || c.GridHeight == 0 {
		return fmt.Errorf("sim: grid resolution must be nonzero, got %dx%d", c.GridWidth, c.GridHeight)
	}
	if c.TickRate == 0 {
		return fmt.Errorf("sim: tick rate must be nonzero")
	}
	if c.TankSize <= 0 || c.BulletSize <= 0 {
		return fmt.Errorf("sim: entity sizes must be positive, got tank %g bullet %g", c.TankSize, c.BulletSize)
	}
	return nil
}

// LoadConfig reads a YAML arena description.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("sim: read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("sim: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
