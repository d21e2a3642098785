package anim

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

func writeTestKwa(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	w := func(v any) {
		if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
			t.Fatalf("binary.Write: %v", err)
		}
	}
	w([4]byte{'K', 'W', 'A', ' '})
	w(uint32(1)) // joint_count
	w(uint32(1)) // keyframe_count
	w(struct {
		Timestamp   float32
		Translation [3]float32
		Rotation    [4]float32
		Scale       [3]float32
	}{0, [3]float32{1, 2, 3}, [4]float32{0, 0, 0, 1}, [3]float32{1, 1, 1}})

	path := filepath.Join(t.TempDir(), "idle.kwa")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadAnimationParsesKwaIntoJointTracks(t *testing.T) {
	path := writeTestKwa(t)
	a, err := LoadAnimation(path)
	if err != nil {
		t.Fatalf("LoadAnimation: %v", err)
	}
	if len(a.Joints) != 1 || len(a.Joints[0]) != 1 {
		t.Fatalf("unexpected shape: %+v", a.Joints)
	}
	if a.Joints[0][0].Transform.Loc.X != 1 {
		t.Fatalf("Loc.X = %v want 1", a.Joints[0][0].Transform.Loc.X)
	}
}
