package format

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestParseGeometryRejectsBadMagic(t *testing.T) {
	buf := bytes.NewBuffer([]byte("XXXX"))
	if _, err := ParseGeometry(buf); err == nil {
		t.Fatalf("expected signature error")
	}
}

func TestParseGeometryRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := func(v any) {
		if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
			t.Fatalf("binary.Write: %v", err)
		}
	}
	w(kwgMagic)
	w(uint32(1)) // vertex_count
	w(uint32(0)) // skinned_vertex_count
	w(uint32(0)) // index_count (vertex_count < 65535 so indices would be u16, none here)
	w(uint32(0)) // joint_count
	w([3]float32{0, 0, 0})
	w([3]float32{1, 1, 1})
	// one vertex record.
	w([3]float32{1, 2, 3})
	w([3]float32{0, 1, 0})
	w([4]float32{1, 0, 0, 1})
	w([2]float32{0.5, 0.5})

	g, err := ParseGeometry(&buf)
	if err != nil {
		t.Fatalf("ParseGeometry: %v", err)
	}
	if len(g.Vertices) != 1 {
		t.Fatalf("len(Vertices) = %d want 1", len(g.Vertices))
	}
	if g.Vertices[0].Position.X != 1 || g.Vertices[0].Position.Y != 2 || g.Vertices[0].Position.Z != 3 {
		t.Fatalf("Position = %+v", g.Vertices[0].Position)
	}
	if g.Bounds.Max.X != 1 || g.Bounds.Min.X != -1 {
		t.Fatalf("Bounds = %+v", g.Bounds)
	}
}
