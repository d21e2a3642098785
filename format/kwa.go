package format

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/kwcore/engine/math/lin"
)

var kwaMagic = [4]byte{'K', 'W', 'A', ' '}

type kwaKeyframe struct {
	Timestamp   float32
	Translation [3]float32
	Rotation    [4]float32
	Scale       [3]float32
}

// Keyframe is one decoded animation sample.
type Keyframe struct {
	Timestamp   float64
	Translation lin.V3
	Rotation    lin.Q
	Scale       lin.V3
}

// JointTrack is the full keyframe sequence for one joint.
type JointTrack struct {
	Keyframes []Keyframe
}

// Animation is the fully decoded contents of a *.kwa file.
type Animation struct {
	Joints []JointTrack
}

// ParseAnimation decodes a *.kwa stream per spec §6.
func ParseAnimation(r io.Reader) (*Animation, error) {
	br := bufio.NewReader(r)

	var magic [4]byte
	if err := binary.Read(br, binary.LittleEndian, &magic); err != nil {
		return nil, truncatedErr("kwa", "magic", err)
	}
	if !bytes.Equal(magic[:], kwaMagic[:]) {
		return nil, signatureErr("kwa", fmt.Sprintf("got %q", magic[:]))
	}
	var jointCount uint32
	if err := binary.Read(br, binary.LittleEndian, &jointCount); err != nil {
		return nil, truncatedErr("kwa", "joint count", err)
	}

	a := &Animation{Joints: make([]JointTrack, jointCount)}
	for j := range a.Joints {
		var keyCount uint32
		if err := binary.Read(br, binary.LittleEndian, &keyCount); err != nil {
			return nil, truncatedErr("kwa", fmt.Sprintf("joint %d keyframe count", j), err)
		}
		track := make([]Keyframe, keyCount)
		for k := range track {
			var w kwaKeyframe
			if err := binary.Read(br, binary.LittleEndian, &w); err != nil {
				return nil, truncatedErr("kwa", fmt.Sprintf("joint %d keyframe %d", j, k), err)
			}
			track[k] = Keyframe{
				Timestamp:   float64(w.Timestamp),
				Translation: lin.V3{X: float64(w.Translation[0]), Y: float64(w.Translation[1]), Z: float64(w.Translation[2])},
				Rotation:    lin.Q{X: float64(w.Rotation[0]), Y: float64(w.Rotation[1]), Z: float64(w.Rotation[2]), W: float64(w.Rotation[3])},
				Scale:       lin.V3{X: float64(w.Scale[0]), Y: float64(w.Scale[1]), Z: float64(w.Scale[2])},
			}
		}
		a.Joints[j] = JointTrack{Keyframes: track}
	}
	return a, nil
}
