package format

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/text/unicode/norm"

	"github.com/kwcore/engine/accel"
	"github.com/kwcore/engine/math/lin"
)

var kwgMagic = [4]byte{'K', 'W', 'G', ' '}

// kwgHeader mirrors the file's fixed-size lead-in byte for byte: a single
// binary.Read into a wire struct, then a magic check.
type kwgHeader struct {
	Magic              [4]byte
	VertexCount        uint32
	SkinnedVertexCount uint32
	IndexCount         uint32
	JointCount         uint32
	BoundsCenter       [3]float32
	BoundsExtent       [3]float32
}

// kwgVertex is one vertex record's wire layout: position, normal, tangent,
// texcoord0, per spec §6.
type kwgVertex struct {
	Position [3]float32
	Normal   [3]float32
	Tangent  [4]float32
	Texcoord [2]float32
}

// kwgSkinWeight is one skinned-vertex record's wire layout.
type kwgSkinWeight struct {
	Joints  [4]uint8
	Weights [4]uint8 // unsigned normalized: weight/255.
}

// Vertex is a decoded geometry vertex in lin types.
type Vertex struct {
	Position lin.V3
	Normal   lin.V3
	Tangent  [4]float64
	Texcoord [2]float64
}

// SkinWeight is a decoded skinning record; Weights are normalized to [0,1].
type SkinWeight struct {
	Joints  [4]uint8
	Weights [4]float64
}

// Joint is one decoded joint record: parent index (-1 for root), inverse-
// bind and bind matrices, and the joint's name.
type Joint struct {
	Parent      int32
	InverseBind lin.M4
	Bind        lin.M4
	Name        string
}

// Geometry is the fully decoded contents of a *.kwg file.
type Geometry struct {
	Vertices    []Vertex
	SkinWeights []SkinWeight
	Indices     []uint32
	Bounds      accel.Bounds
	Joints      []Joint
}

// ParseGeometry decodes a *.kwg stream per spec §6. All multi-byte values
// are little-endian; 16-bit indices are used when VertexCount < 65535,
// 32-bit otherwise.
func ParseGeometry(r io.Reader) (*Geometry, error) {
	br := bufio.NewReader(r)

	var hdr kwgHeader
	if err := binary.Read(br, binary.LittleEndian, &hdr); err != nil {
		return nil, truncatedErr("kwg", "header", err)
	}
	if !bytes.Equal(hdr.Magic[:], kwgMagic[:]) {
		return nil, signatureErr("kwg", fmt.Sprintf("got %q", hdr.Magic[:]))
	}

	g := &Geometry{
		Bounds: accel.Bounds{
			Min: lin.V3{
				X: float64(hdr.BoundsCenter[0] - hdr.BoundsExtent[0]),
				Y: float64(hdr.BoundsCenter[1] - hdr.BoundsExtent[1]),
				Z: float64(hdr.BoundsCenter[2] - hdr.BoundsExtent[2]),
			},
			Max: lin.V3{
				X: float64(hdr.BoundsCenter[0] + hdr.BoundsExtent[0]),
				Y: float64(hdr.BoundsCenter[1] + hdr.BoundsExtent[1]),
				Z: float64(hdr.BoundsCenter[2] + hdr.BoundsExtent[2]),
			},
		},
	}

	g.Vertices = make([]Vertex, hdr.VertexCount)
	for i := range g.Vertices {
		var v kwgVertex
		if err := binary.Read(br, binary.LittleEndian, &v); err != nil {
			return nil, truncatedErr("kwg", fmt.Sprintf("vertex %d", i), err)
		}
		g.Vertices[i] = Vertex{
			Position: lin.V3{X: float64(v.Position[0]), Y: float64(v.Position[1]), Z: float64(v.Position[2])},
			Normal:   lin.V3{X: float64(v.Normal[0]), Y: float64(v.Normal[1]), Z: float64(v.Normal[2])},
			Tangent:  [4]float64{float64(v.Tangent[0]), float64(v.Tangent[1]), float64(v.Tangent[2]), float64(v.Tangent[3])},
			Texcoord: [2]float64{float64(v.Texcoord[0]), float64(v.Texcoord[1])},
		}
	}

	g.SkinWeights = make([]SkinWeight, hdr.SkinnedVertexCount)
	for i := range g.SkinWeights {
		var s kwgSkinWeight
		if err := binary.Read(br, binary.LittleEndian, &s); err != nil {
			return nil, truncatedErr("kwg", fmt.Sprintf("skin weight %d", i), err)
		}
		g.SkinWeights[i] = SkinWeight{
			Joints: s.Joints,
			Weights: [4]float64{
				float64(s.Weights[0]) / 255, float64(s.Weights[1]) / 255,
				float64(s.Weights[2]) / 255, float64(s.Weights[3]) / 255,
			},
		}
	}

	g.Indices = make([]uint32, hdr.IndexCount)
	if hdr.VertexCount < 65535 {
		for i := range g.Indices {
			var idx uint16
			if err := binary.Read(br, binary.LittleEndian, &idx); err != nil {
				return nil, truncatedErr("kwg", fmt.Sprintf("index %d", i), err)
			}
			g.Indices[i] = uint32(idx)
		}
	} else {
		if err := binary.Read(br, binary.LittleEndian, g.Indices); err != nil {
			return nil, truncatedErr("kwg", "indices", err)
		}
	}

	parents := make([]uint32, hdr.JointCount)
	if hdr.JointCount > 0 {
		if err := binary.Read(br, binary.LittleEndian, parents); err != nil {
			return nil, truncatedErr("kwg", "joint parents", err)
		}
	}

	invBind := make([]wireM4, hdr.JointCount)
	if hdr.JointCount > 0 {
		if err := binary.Read(br, binary.LittleEndian, invBind); err != nil {
			return nil, truncatedErr("kwg", "inverse bind matrices", err)
		}
	}
	bind := make([]wireM4, hdr.JointCount)
	if hdr.JointCount > 0 {
		if err := binary.Read(br, binary.LittleEndian, bind); err != nil {
			return nil, truncatedErr("kwg", "bind matrices", err)
		}
	}

	g.Joints = make([]Joint, hdr.JointCount)
	for i := range g.Joints {
		parent := int32(-1)
		if parents[i] != 0xFFFFFFFF {
			parent = int32(parents[i])
		}
		var nameLen uint32
		if err := binary.Read(br, binary.LittleEndian, &nameLen); err != nil {
			return nil, truncatedErr("kwg", fmt.Sprintf("joint %d name length", i), err)
		}
		nameBytes := make([]byte, nameLen)
		if _, err := io.ReadFull(br, nameBytes); err != nil {
			return nil, truncatedErr("kwg", fmt.Sprintf("joint %d name", i), err)
		}
		g.Joints[i] = Joint{
			Parent:      parent,
			InverseBind: invBind[i].toM4(),
			Bind:        bind[i].toM4(),
			Name:        norm.NFC.String(string(nameBytes)),
		}
	}

	return g, nil
}

// wireM4 is a row-major float32x16 matrix as stored on disk.
type wireM4 [16]float32

func (w wireM4) toM4() lin.M4 {
	return lin.M4{
		Xx: float64(w[0]), Xy: float64(w[1]), Xz: float64(w[2]), Xw: float64(w[3]),
		Yx: float64(w[4]), Yy: float64(w[5]), Yz: float64(w[6]), Yw: float64(w[7]),
		Zx: float64(w[8]), Zy: float64(w[9]), Zz: float64(w[10]), Zw: float64(w[11]),
		Wx: float64(w[12]), Wy: float64(w[13]), Wz: float64(w[14]), Ww: float64(w[15]),
	}
}
