package format

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestParseAnimationRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := func(v any) {
		if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
			t.Fatalf("binary.Write: %v", err)
		}
	}
	w(kwaMagic)
	w(uint32(1)) // joint_count
	w(uint32(2)) // keyframe_count for joint 0
	w(kwaKeyframe{Timestamp: 0, Translation: [3]float32{0, 0, 0}, Rotation: [4]float32{0, 0, 0, 1}, Scale: [3]float32{1, 1, 1}})
	w(kwaKeyframe{Timestamp: 1, Translation: [3]float32{1, 0, 0}, Rotation: [4]float32{0, 0, 0, 1}, Scale: [3]float32{1, 1, 1}})

	a, err := ParseAnimation(&buf)
	if err != nil {
		t.Fatalf("ParseAnimation: %v", err)
	}
	if len(a.Joints) != 1 || len(a.Joints[0].Keyframes) != 2 {
		t.Fatalf("unexpected shape: %+v", a)
	}
	if a.Joints[0].Keyframes[1].Translation.X != 1 {
		t.Fatalf("second keyframe translation.X = %v want 1", a.Joints[0].Keyframes[1].Translation.X)
	}
}

func TestParseAnimationRejectsBadMagic(t *testing.T) {
	if _, err := ParseAnimation(bytes.NewBufferString("NOPE")); err == nil {
		t.Fatalf("expected signature error")
	}
}
