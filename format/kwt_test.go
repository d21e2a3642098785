package format

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestParseTextureRejectsBadMagic(t *testing.T) {
	buf := bytes.NewBuffer([]byte("XXXX"))
	if _, err := ParseTexture(buf); err == nil {
		t.Fatalf("expected signature error")
	}
}

func TestParseTextureRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := func(v any) {
		if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
			t.Fatalf("binary.Write: %v", err)
		}
	}
	w(kwtMagic)
	w(uint32(Texture2D))
	w(uint32(FormatRGBA8Unorm))
	w(uint32(2)) // mip_level_count
	w(uint32(1)) // array_layer_count
	w(uint32(4)) // width
	w(uint32(4)) // height
	w(uint32(1)) // depth

	// smallest mip first (2x2, derived by halving 4x4 once for a 2-level chain).
	buf.Write(make([]byte, 2*2*1*1*4))
	// then the full-resolution 4x4 mip.
	buf.Write(make([]byte, 4*4*1*1*4))

	tex, err := ParseTexture(&buf)
	if err != nil {
		t.Fatalf("ParseTexture: %v", err)
	}
	if tex.Width != 4 || tex.Height != 4 {
		t.Fatalf("Width/Height = %d/%d want 4/4", tex.Width, tex.Height)
	}
	if len(tex.MipLevels) != 2 {
		t.Fatalf("len(MipLevels) = %d want 2", len(tex.MipLevels))
	}
	// MipLevels[1] is the smallest (first-read) mip, MipLevels[0] the full-resolution one.
	if len(tex.MipLevels[1]) != 2*2*4 {
		t.Fatalf("MipLevels[1] size = %d want %d", len(tex.MipLevels[1]), 2*2*4)
	}
	if len(tex.MipLevels[0]) != 4*4*4 {
		t.Fatalf("MipLevels[0] size = %d want %d", len(tex.MipLevels[0]), 4*4*4)
	}
}

func TestParseTextureRejectsBlockCompressedFormat(t *testing.T) {
	var buf bytes.Buffer
	w := func(v any) {
		if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
			t.Fatalf("binary.Write: %v", err)
		}
	}
	w(kwtMagic)
	w(uint32(Texture2D))
	w(uint32(FormatBC1))
	w(uint32(1))
	w(uint32(1))
	w(uint32(4))
	w(uint32(4))
	w(uint32(1))

	if _, err := ParseTexture(&buf); err == nil {
		t.Fatalf("expected unsupported-format error for block-compressed texture")
	}
}
