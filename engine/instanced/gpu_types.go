package instanced

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUInstanceDataSource is the canonical WGSL definition of the per-instance
// record consumed by the instanced vertex stage. Matches GPUInstanceData
// layout exactly (32 bytes, tightly packed, instance-stepped).
//
//go:embed assets/instance_data.wgsl
var GPUInstanceDataSource string

// VertexShaderSource is the embedded WGSL vertex stage for the instanced mesh
// pipeline: world = position * posScale.w + posScale.xyz, clip = viewProj *
// world, instance color passed through.
//
//go:embed assets/instanced-vert.wgsl
var VertexShaderSource string

// FragmentShaderSource is the embedded WGSL fragment stage for the instanced
// mesh pipeline: emits the interpolated per-instance color unchanged.
//
//go:embed assets/instanced-frag.wgsl
var FragmentShaderSource string

// GPUInstanceData is the GPU-aligned per-instance record for the instanced
// mesh pipeline. One record per instance; the record count defines the draw
// call's instance count. Matches the WGSL CellInstance struct layout exactly
// (see GPUInstanceDataSource). Size: 32 bytes, tightly packed.
type GPUInstanceData struct {
	PosScale [4]float32 // offset  0: world-space offset (xyz) + uniform scale (w) (16 bytes)
	Color    [4]float32 // offset 16: RGBA color in [0,1] per channel (16 bytes)
}

// Size returns the size of the GPUInstanceData struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUInstanceData) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUInstanceData struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload.
func (g *GPUInstanceData) Marshal() []byte {
	buf := make([]byte, 32)
	g.marshalInto(buf)
	return buf
}

// marshalInto writes the record into buf, which must be at least 32 bytes.
func (g *GPUInstanceData) marshalInto(buf []byte) {
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.PosScale[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.PosScale[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.PosScale[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.PosScale[3]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Color[0]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Color[1]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.Color[2]))
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(g.Color[3]))
}
