// Package config loads the engine's tunables (arena sizes, octree shape,
// worker pool size, particle player capacity) from a TOML file decoded via
// go-toml/v2, since none of them has a natural call-site default the way a
// window title does.
package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds every tunable spec §5 calls out as host-configurable.
// Defaults() gives the values the engine runs with if no file is loaded.
type Config struct {
	// Arena sizes, in bytes, for the two arenas spec §5/§9 names: one
	// persistent (resources, primitives, manager maps) and one reset every
	// frame (transient per-frame task data).
	PersistentArenaBytes int `toml:"persistent_arena_bytes"`
	FrameArenaBytes      int `toml:"frame_arena_bytes"`

	// Octree shape (spec §4.4): world extent about the origin and the
	// maximum subdivision depth.
	OctreeExtent   float64 `toml:"octree_extent"`
	OctreeMaxDepth int     `toml:"octree_max_depth"`

	// WorkerPoolSize bounds the task scheduler's concurrency (spec §5's
	// "multi-threaded work-stealing pool").
	WorkerPoolSize int `toml:"worker_pool_size"`

	// ParticlePlayerCapacity is the default max_particle_count new
	// particle-system descriptors use when the markdown resource omits one.
	ParticlePlayerCapacity int `toml:"particle_player_capacity"`
}

// defaultConfig holds reasonable values so the engine runs even if no
// configuration file is loaded.
var defaultConfig = Config{
	PersistentArenaBytes:   64 << 20,
	FrameArenaBytes:        8 << 20,
	OctreeExtent:           256,
	OctreeMaxDepth:         6,
	WorkerPoolSize:         8,
	ParticlePlayerCapacity: 1024,
}

// Defaults returns a copy of the built-in default configuration.
func Defaults() Config { return defaultConfig }

// Load reads and decodes a TOML file at path, starting from Defaults() so
// a file that only overrides a few fields still yields sane values for the
// rest.
func Load(path string) (Config, error) {
	cfg := defaultConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
