package instanced

import (
	"github.com/cellscape/cellscape/common"
	"github.com/cellscape/cellscape/engine/mesh"
)

// VertexStageOutput is what the instanced vertex stage hands to the
// fixed-function rasterizer: a clip-space position and the per-instance color
// signal interpolated across the primitive.
type VertexStageOutput struct {
	ClipPosition [4]float32
	Color        [4]float32
}

// VertexStage is the CPU reference implementation of the instanced vertex
// stage (see VertexShaderSource). It is a pure function of its inputs with no
// shared state, matching the per-invocation execution model the GPU relies
// on: world = position * posScale.w + posScale.xyz (uniform scale then
// translate, no rotation), clip = viewProj * world, color passed through.
// The vertex's normal and uv are part of the input contract but never read.
//
// Parameters:
//   - viewProj: the camera's combined view-projection matrix (column-major)
//   - vertex: one geometry vertex
//   - instance: the instance record for the current instance
//
// Returns:
//   - VertexStageOutput: clip-space position and pass-through color
func VertexStage(viewProj [16]float32, vertex mesh.GPUVertex, instance GPUInstanceData) VertexStageOutput {
	scale := instance.PosScale[3]
	world := [4]float32{
		vertex.Position[0]*scale + instance.PosScale[0],
		vertex.Position[1]*scale + instance.PosScale[1],
		vertex.Position[2]*scale + instance.PosScale[2],
		1.0,
	}

	return VertexStageOutput{
		ClipPosition: common.MulVec4(viewProj[:], world),
		Color:        instance.Color,
	}
}

// FragmentStage is the CPU reference implementation of the instanced fragment
// stage (see FragmentShaderSource): it emits the interpolated color unchanged.
// No discard, no blending, no texture sampling.
//
// Parameters:
//   - color: the rasterizer-interpolated color for this pixel
//
// Returns:
//   - [4]float32: the output pixel color
func FragmentStage(color [4]float32) [4]float32 {
	return color
}
