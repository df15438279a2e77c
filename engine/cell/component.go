package cell

import (
	"github.com/cellscape/cellscape/engine/renderer/pipeline"
	"github.com/cellscape/cellscape/engine/renderer/shader"
)

// PipelineKey identifies the cell render pipeline in the renderer's pipeline
// registry.
const PipelineKey = "cell_mesh"

// Bind group indices for the cell pipeline's resources.
const (
	// CameraGroup holds the camera view-projection uniform (vertex stage).
	CameraGroup = 0
	// ModelGroup holds the read-only model transform table (vertex stage).
	ModelGroup = 1
	// MaterialGroup holds the flat-color material uniform (fragment stage).
	MaterialGroup = 2
)

// NewPipeline builds the cell render pipeline from the embedded WGSL stages.
// The vertex stage consumes geometry at buffer slot 0 and resolves its model
// transform from the storage table at group 1; the fragment stage reads the
// material uniform at group 2. Depth test and write are enabled, no culling
// (engine default).
//
// Returns:
//   - pipeline.Pipeline: the pipeline ready for renderer registration
func NewPipeline() pipeline.Pipeline {
	vert := shader.NewShader(PipelineKey+"_vert", shader.ShaderTypeVertex, VertexShaderSource)
	frag := shader.NewShader(PipelineKey+"_frag", shader.ShaderTypeFragment, FragmentShaderSource)

	return pipeline.NewPipeline(PipelineKey,
		pipeline.WithVertexShader(vert),
		pipeline.WithFragmentShader(frag),
	)
}
