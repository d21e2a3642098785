package format

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

var kwtMagic = [4]byte{'K', 'W', 'T', ' '}

// TextureType enumerates the dimensionality/layout of a decoded texture.
type TextureType uint32

const (
	Texture2D TextureType = iota
	Texture3D
	TextureCube
)

// TextureFormat enumerates the pixel formats spec §6 names: all common
// compressed (BC1-BC7) and uncompressed unorm/snorm/uint/sint/float
// variants plus depth formats. Only the ones this module's render wiring
// actually names are enumerated; ParseTexture rejects a format value it has
// no bytes-per-texel entry for (unrecognized or block-compressed) as
// unsupported.
type TextureFormat uint32

const (
	FormatRGBA8Unorm TextureFormat = iota
	FormatRGBA8Snorm
	FormatRGBA16Float
	FormatRGBA32Float
	FormatR8Unorm
	FormatD32Float
	FormatBC1
	FormatBC2
	FormatBC3
	FormatBC4
	FormatBC5
	FormatBC6H
	FormatBC7
)

// Texture is the fully decoded contents of a *.kwt file: a header plus raw
// mip levels, each containing every layer. The file stores the levels
// smallest first; MipLevels[0] is the full-resolution level and the last
// entry the smallest. Pixel
// decompression is out of scope here — the host's render/GPU layer owns
// interpreting MipLevels against Format.
type Texture struct {
	Type            TextureType
	Format          TextureFormat
	MipLevelCount   uint32
	ArrayLayerCount uint32
	Width           uint32
	Height          uint32
	Depth           uint32
	MipLevels       [][]byte
}

type kwtHeader struct {
	Magic           [4]byte
	Type            uint32
	Format          uint32
	MipLevelCount   uint32
	ArrayLayerCount uint32
	Width           uint32
	Height          uint32
	Depth           uint32
}

// ParseTexture decodes a *.kwt stream per spec §6. Mip level byte sizes are
// not stored explicitly; this parser derives each level's size from the
// format's bytes-per-texel (block formats are rejected as unsupported
// rather than guessed, since their block size also depends on the format
// table a fuller implementation would supply).
func ParseTexture(r io.Reader) (*Texture, error) {
	br := bufio.NewReader(r)

	var hdr kwtHeader
	if err := binary.Read(br, binary.LittleEndian, &hdr); err != nil {
		return nil, truncatedErr("kwt", "header", err)
	}
	if !bytes.Equal(hdr.Magic[:], kwtMagic[:]) {
		return nil, signatureErr("kwt", fmt.Sprintf("got %q", hdr.Magic[:]))
	}

	bpp, err := bytesPerTexel(TextureFormat(hdr.Format))
	if err != nil {
		return nil, err
	}

	t := &Texture{
		Type:            TextureType(hdr.Type),
		Format:          TextureFormat(hdr.Format),
		MipLevelCount:   hdr.MipLevelCount,
		ArrayLayerCount: hdr.ArrayLayerCount,
		Width:           hdr.Width,
		Height:          hdr.Height,
		Depth:           hdr.Depth,
	}

	t.MipLevels = make([][]byte, hdr.MipLevelCount)
	width, height, depth := smallestMip(hdr.Width, hdr.Height, hdr.Depth, hdr.MipLevelCount)
	for level := int(hdr.MipLevelCount) - 1; level >= 0; level-- {
		size := uint64(width) * uint64(height) * uint64(depth) * uint64(hdr.ArrayLayerCount) * uint64(bpp)
		buf := make([]byte, size)
		if _, err := io.ReadFull(br, buf); err != nil {
			return nil, truncatedErr("kwt", fmt.Sprintf("mip level %d", level), err)
		}
		t.MipLevels[level] = buf
		width, height, depth = width*2, height*2, depth*2
		if width > hdr.Width {
			width = hdr.Width
		}
		if height > hdr.Height {
			height = hdr.Height
		}
		if depth > hdr.Depth {
			depth = hdr.Depth
		}
	}
	return t, nil
}

func smallestMip(width, height, depth, levels uint32) (w, h, d uint32) {
	w, h, d = width, height, depth
	for i := uint32(1); i < levels; i++ {
		if w > 1 {
			w /= 2
		}
		if h > 1 {
			h /= 2
		}
		if d > 1 {
			d /= 2
		}
	}
	return
}

func bytesPerTexel(f TextureFormat) (uint32, error) {
	switch f {
	case FormatRGBA8Unorm, FormatRGBA8Snorm:
		return 4, nil
	case FormatR8Unorm:
		return 1, nil
	case FormatRGBA16Float:
		return 8, nil
	case FormatRGBA32Float:
		return 16, nil
	case FormatD32Float:
		return 4, nil
	default:
		return 0, unsupportedErr("kwt", fmt.Sprintf("format %d has no fixed bytes-per-texel (block-compressed?)", f))
	}
}
