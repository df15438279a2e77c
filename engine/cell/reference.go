package cell

import (
	"github.com/cellscape/cellscape/common"
	"github.com/cellscape/cellscape/engine/mesh"
)

// VertexStage is the CPU reference implementation of the cell vertex stage
// (see VertexShaderSource). It is a pure function of its inputs: the vertex's
// local position (homogeneous, w=1) is transformed by the resolved
// local-to-world matrix, then by the camera view-projection matrix. The
// vertex's normal and uv are part of the input contract but never read, and
// no color is computed per vertex.
//
// Parameters:
//   - viewProj: the camera's combined view-projection matrix (column-major)
//   - model: the local-to-world matrix resolved for this draw (column-major)
//   - vertex: one geometry vertex
//
// Returns:
//   - [4]float32: the clip-space position
func VertexStage(viewProj, model [16]float32, vertex mesh.GPUVertex) [4]float32 {
	local := [4]float32{vertex.Position[0], vertex.Position[1], vertex.Position[2], 1.0}
	world := common.MulVec4(model[:], local)
	return common.MulVec4(viewProj[:], world)
}

// FragmentStage is the CPU reference implementation of the cell fragment
// stage (see FragmentShaderSource): it ignores every vertex-stage output
// except placement and emits the bound material's color unconditionally for
// every covered pixel.
//
// Parameters:
//   - material: the material record bound for this draw call
//
// Returns:
//   - [4]float32: the output pixel color
func FragmentStage(material GPUCellMaterial) [4]float32 {
	return material.Color
}
