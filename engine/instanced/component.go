package instanced

import (
	"github.com/cellscape/cellscape/engine/renderer/pipeline"
	"github.com/cellscape/cellscape/engine/renderer/shader"
)

// PipelineKey identifies the instanced mesh render pipeline in the renderer's
// pipeline registry.
const PipelineKey = "instanced_mesh"

// NewPipeline builds the instanced mesh render pipeline from the embedded
// WGSL stages. The vertex stage consumes geometry at buffer slot 0 and the
// instance-stepped record at slot 1; depth test and write are enabled, no
// culling (engine default).
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
