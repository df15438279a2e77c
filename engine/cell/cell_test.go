package cell

import (
	"testing"

	"github.com/cellscape/cellscape/common"
	"github.com/cellscape/cellscape/engine/mesh"
	"github.com/cellscape/cellscape/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func identityMatrix() [16]float32 {
	var m [16]float32
	common.Identity(m[:])
	return m
}

func TestGPUCellMaterialSize(t *testing.T) {
	m := GPUCellMaterial{}
	assert.Equal(t, 16, m.Size())
	assert.Len(t, m.Marshal(), 16)
}

func TestGPUCellMaterialMarshal(t *testing.T) {
	m := GPUCellMaterial{Color: [4]float32{1, 0, 0, 1}}
	buf := m.Marshal()
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, buf[0:4])
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00}, buf[4:8])
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, buf[12:16])
}

func TestGPUModelDataSize(t *testing.T) {
	d := GPUModelData{}
	assert.Equal(t, 64, d.Size())
	assert.Len(t, d.Marshal(), 64)
}

func TestMarshalModels(t *testing.T) {
	var a, b GPUModelData
	common.Identity(a.Model[:])
	common.TranslateScale(b.Model[:], 1, 2, 3, 1)

	buf := MarshalModels([]GPUModelData{a, b})
	assert.Len(t, buf, 128)

	// Second record starts at byte 64; its translation column starts at
	// matrix element 12 (byte 48 within the record).
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, buf[64+48:64+52])
}

func TestVertexStageModelThenCamera(t *testing.T) {
	var model [16]float32
	common.TranslateScale(model[:], 2, 0, 0, 2)

	vertex := mesh.GPUVertex{Position: [3]float32{0.5, 0, 0}}
	clip := VertexStage(identityMatrix(), model, vertex)

	// world = 0.5*2 + 2 = 3 on x; identity camera leaves clip == world.
	assert.Equal(t, [4]float32{3, 0, 0, 1}, clip)
}

func TestVertexStageFullMatrixMultiply(t *testing.T) {
	var model [16]float32
	common.BuildModelMatrix(model[:], 1, 2, 3, 0, 0, 0, 1, 1, 1)

	vertex := mesh.GPUVertex{Position: [3]float32{1, 1, 1}}
	clip := VertexStage(identityMatrix(), model, vertex)
	assert.Equal(t, [4]float32{2, 3, 4, 1}, clip)
}

func TestVertexStageIgnoresNormalAndUV(t *testing.T) {
	plain := mesh.GPUVertex{Position: [3]float32{1, 2, 3}}
	decorated := mesh.GPUVertex{
		Position: [3]float32{1, 2, 3},
		Normal:   [3]float32{9, 9, 9},
		TexCoord: [2]float32{5, 5},
	}

	assert.Equal(t,
		VertexStage(identityMatrix(), identityMatrix(), plain),
		VertexStage(identityMatrix(), identityMatrix(), decorated),
	)
}

func TestFragmentStageFlatColor(t *testing.T) {
	material := GPUCellMaterial{Color: [4]float32{0, 0, 1, 1}}

	// Every pixel of the draw emits the material color regardless of which
	// vertex produced its coverage.
	vertices := []mesh.GPUVertex{
		{Position: [3]float32{0, 0, 0}},
		{Position: [3]float32{1, 5, -3}, Normal: [3]float32{0, 1, 0}},
		{Position: [3]float32{-2, 0, 7}, Normal: [3]float32{1, 0, 0}},
	}
	for range vertices {
		assert.Equal(t, [4]float32{0, 0, 1, 1}, FragmentStage(material))
	}
}

func TestCameraChangeNeverAffectsColor(t *testing.T) {
	material := GPUCellMaterial{Color: [4]float32{0.7, 0.1, 0.4, 1}}
	vertex := mesh.GPUVertex{Position: [3]float32{1, 1, 1}}

	var moved [16]float32
	common.TranslateScale(moved[:], 0, 0, -10, 1)

	a := VertexStage(identityMatrix(), identityMatrix(), vertex)
	b := VertexStage(moved, identityMatrix(), vertex)

	assert.NotEqual(t, a, b)
	assert.Equal(t, FragmentStage(material), FragmentStage(material))
}

func TestNewPipelineShaderWiring(t *testing.T) {
	p := NewPipeline()
	assert.Equal(t, PipelineKey, p.PipelineKey())

	vert := p.Shader(shader.ShaderTypeVertex)
	assert.NotNil(t, vert)
	assert.Equal(t, "vs_main", vert.EntryPoint())

	// Geometry only: one vertex-stepped buffer, no instance buffer.
	layouts := vert.VertexLayouts()
	assert.Len(t, layouts, 1)
	assert.Equal(t, wgpu.VertexStepModeVertex, layouts[0].StepMode)
	assert.Equal(t, uint64(32), layouts[0].ArrayStride)

	// Camera uniform at group 0, model table at group 1 (read-only storage,
	// 64-byte elements), material uniform at group 2.
	cameraDesc := vert.BindGroupLayoutDescriptor(CameraGroup)
	assert.Len(t, cameraDesc.Entries, 1)
	assert.Equal(t, wgpu.BufferBindingTypeUniform, cameraDesc.Entries[0].Buffer.Type)
	assert.Equal(t, uint64(64), cameraDesc.Entries[0].Buffer.MinBindingSize)

	modelDesc := vert.BindGroupLayoutDescriptor(ModelGroup)
	assert.Len(t, modelDesc.Entries, 1)
	assert.Equal(t, wgpu.BufferBindingTypeReadOnlyStorage, modelDesc.Entries[0].Buffer.Type)
	assert.Equal(t, uint64(64), modelDesc.Entries[0].Buffer.MinBindingSize)

	frag := p.Shader(shader.ShaderTypeFragment)
	assert.NotNil(t, frag)
	materialDesc := frag.BindGroupLayoutDescriptor(MaterialGroup)
	assert.Len(t, materialDesc.Entries, 1)
	assert.Equal(t, wgpu.BufferBindingTypeUniform, materialDesc.Entries[0].Buffer.Type)
	assert.Equal(t, uint64(16), materialDesc.Entries[0].Buffer.MinBindingSize)
}
