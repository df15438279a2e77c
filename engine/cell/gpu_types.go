package cell

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUCellMaterialSource is the canonical WGSL definition of the per-draw
// material record. Matches GPUCellMaterial layout exactly (16 bytes).
//
//go:embed assets/material.wgsl
var GPUCellMaterialSource string

// GPUModelDataSource is the canonical WGSL definition of the per-draw model
// transform record. Matches GPUModelData layout exactly (64 bytes).
//
//go:embed assets/model_data.wgsl
var GPUModelDataSource string

// VertexShaderSource is the embedded WGSL vertex stage for the cell pipeline:
// world = models[instanceIndex].model * vec4(position, 1), clip = viewProj *
// world. No color leaves the vertex stage.
//
//go:embed assets/cell-vert.wgsl
var VertexShaderSource string

// FragmentShaderSource is the embedded WGSL fragment stage for the cell
// pipeline: unconditionally emits the bound material color for every covered
// pixel.
//
//go:embed assets/cell-frag.wgsl
var FragmentShaderSource string

// GPUCellMaterial is the GPU-aligned per-draw material record for the cell
// pipeline. Exactly one material is bound per draw call; every pixel of the
// draw emits its color. Matches the WGSL CellMaterial struct layout exactly
// (see GPUCellMaterialSource). Size: 16 bytes.
type GPUCellMaterial struct {
	Color [4]float32 // offset 0: RGBA color in [0,1] per channel (16 bytes)
}

// Size returns the size of the GPUCellMaterial struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUCellMaterial) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCellMaterial struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 16-byte buffer ready for GPU upload.
func (g *GPUCellMaterial) Marshal() []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Color[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Color[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Color[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Color[3]))
	return buf
}

// GPUModelData is the GPU-aligned per-draw model transform record. Records
// live in a read-only storage buffer indexed by the draw's instance index.
// Matches the WGSL ModelData struct layout exactly (see GPUModelDataSource).
// Size: 64 bytes (column-major mat4x4).
type GPUModelData struct {
	Model [16]float32 // offset 0: local-to-world matrix, column-major (64 bytes)
}

// Size returns the size of the GPUModelData struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUModelData) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUModelData struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 64-byte buffer ready for GPU upload.
func (g *GPUModelData) Marshal() []byte {
	buf := make([]byte, 64)
	for i, f := range g.Model {
		binary.LittleEndian.PutUint32(buf[i*4:i*4+4], math.Float32bits(f))
	}
	return buf
}

// MarshalModels serializes a slice of model records into a single contiguous
// byte buffer ready for storage buffer upload, records in index order.
//
// Parameters:
//   - models: the model records to serialize
//
// Returns:
//   - []byte: len(models)*64 bytes.
func MarshalModels(models []GPUModelData) []byte {
	buf := make([]byte, 0, len(models)*64)
	for i := range models {
		buf = append(buf, models[i].Marshal()...)
	}
	return buf
}
