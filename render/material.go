package render

import (
	"os"
	"sync"

	"github.com/kwcore/engine/format"
	"github.com/kwcore/engine/resource"
)

// Material is a markdown-loaded material resource: shading parameters plus
// the key of the graphics pipeline its shader/blend-state combination
// needs. Several materials can share one PipelineKey.
type Material struct {
	Name        string  `yaml:"name"`
	PipelineKey string  `yaml:"pipeline"`
	BaseColor   [4]float64
	Metallic    float64 `yaml:"metallic"`
	Roughness   float64 `yaml:"roughness"`
}

// LoadMaterial parses a markdown material resource at path.
func LoadMaterial(path string) (*Material, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	node, err := format.ParseMarkdown(f)
	if err != nil {
		return nil, err
	}
	reg := format.NewRegistry()
	reg.Register("material", func() any { return &Material{} })
	v, err := reg.Build(node)
	if err != nil {
		return nil, err
	}
	return v.(*Material), nil
}

// NewMaterialManager returns a resource.Manager serving Material resources.
func NewMaterialManager() *resource.Manager[*Material] {
	return resource.NewManager[*Material]("material", LoadMaterial)
}

// Pipeline is the opaque graphics-pipeline object a real renderer binding
// would compile for one PipelineKey (shader set, blend state, vertex
// layout). This module never builds one; BuildPipeline supplies it.
type Pipeline struct {
	Key string
}

// BuildPipeline compiles the pipeline for key. Supplied by the host
// renderer binding; PipelineCache calls it at most once per key between
// evictions.
type BuildPipeline func(key string) (*Pipeline, error)

type pipelineEntry struct {
	pipeline *Pipeline
	refcount int
}

// PipelineCache is the second eviction tier spec §8 scenario 6 describes:
// materials are evicted one frame after their last reference drops, and
// their pipeline (shared by key, possibly by several materials) is evicted
// one frame after *that*, once its own refcount reaches zero. Mirrors
// resource.Manager's refcount-deferred-by-one-frame shape but keyed by
// PipelineKey instead of a load path, since a pipeline has no file to load.
type PipelineCache struct {
	mu    sync.Mutex
	build BuildPipeline
	byKey map[string]*pipelineEntry
}

// NewPipelineCache returns an empty cache that builds pipelines with build.
func NewPipelineCache(build BuildPipeline) *PipelineCache {
	return &PipelineCache{build: build, byKey: make(map[string]*pipelineEntry)}
}

// Acquire returns the pipeline for key, building it on first use, and
// increments its refcount. Pair with Release.
func (c *PipelineCache) Acquire(key string) (*Pipeline, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.byKey[key]; ok {
		e.refcount++
		return e.pipeline, nil
	}
	p, err := c.build(key)
	if err != nil {
		return nil, err
	}
	c.byKey[key] = &pipelineEntry{pipeline: p, refcount: 1}
	return p, nil
}

// Release decrements key's refcount. The entry is not removed until the
// next Evict call, giving callers one frame of grace the same way a
// resource.Manager handle does.
func (c *PipelineCache) Release(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.byKey[key]; ok {
		e.refcount--
	}
}

// Evict drops every pipeline whose refcount is at or below zero. Call once
// per frame, after the material manager's own begin task has run its
// eviction pass, so a pipeline's last material reference has already been
// dropped by the time this runs.
func (c *PipelineCache) Evict() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.byKey {
		if e.refcount <= 0 {
			delete(c.byKey, key)
		}
	}
}
