package anim

import (
	"os"

	"github.com/kwcore/engine/format"
	"github.com/kwcore/engine/resource"
	"github.com/kwcore/engine/scene"
)

// LoadAnimation parses a *.kwa file at path into an Animation, per the
// Animation doc comment's "loaded by the format package's .kwa parser".
func LoadAnimation(path string) (*Animation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	decoded, err := format.ParseAnimation(f)
	if err != nil {
		return nil, err
	}
	a := &Animation{Joints: make([][]Keyframe, len(decoded.Joints))}
	for j, track := range decoded.Joints {
		keys := make([]Keyframe, len(track.Keyframes))
		for k, kf := range track.Keyframes {
			keys[k] = Keyframe{
				Timestamp: kf.Timestamp,
				Transform: scene.Transform{Loc: kf.Translation, Rot: kf.Rotation, Scale: kf.Scale},
			}
		}
		a.Joints[j] = keys
	}
	return a, nil
}

// NewManager returns a resource.Manager that serves Animation resources
// loaded from *.kwa files, per spec §4.3's one-manager-per-asset-kind rule.
func NewManager() *resource.Manager[*Animation] {
	return resource.NewManager[*Animation]("animation", LoadAnimation)
}
