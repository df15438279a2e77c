package shader

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

const instancedVertexSource = `
// Per-vertex mesh attributes.
struct VertexInput {
    @location(0) position: vec3<f32>,
    @location(1) normal: vec3<f32>,
    @location(2) uv: vec2<f32>,
}

/* Per-instance placement and tint. */
struct CellInstance {
    @location(3) pos_scale: vec4<f32>,
    @location(4) color: vec4<f32>,
}

struct VertexOutput {
    @builtin(position) clip_position: vec4<f32>,
    @location(0) color: vec4<f32>,
}

struct CameraUniform {
    view_proj: mat4x4<f32>,
}

@group(0) @binding(0) var<uniform> camera: CameraUniform;

@vertex
fn vs_main(vertex: VertexInput, instance: CellInstance) -> VertexOutput {
    var out: VertexOutput;
    let world = vertex.position * instance.pos_scale.w + instance.pos_scale.xyz;
    out.clip_position = camera.view_proj * vec4<f32>(world, 1.0);
    out.color = instance.color;
    return out;
}
`

const flatFragmentSource = `
struct Material {
    color: vec4<f32>,
}

@group(1) @binding(0) var<uniform> material: Material;

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return material.color;
}
`

func TestNewShaderVertexEntryPoint(t *testing.T) {
	s := NewShader("instanced-vert", ShaderTypeVertex, instancedVertexSource)
	assert.Equal(t, "instanced-vert", s.Key())
	assert.Equal(t, "vs_main", s.EntryPoint())
	assert.Equal(t, ShaderTypeVertex, s.ShaderType())
	assert.NotNil(t, s.Module())
}

func TestNewShaderFragmentEntryPoint(t *testing.T) {
	s := NewShader("flat-frag", ShaderTypeFragment, flatFragmentSource)
	assert.Equal(t, "fs_main", s.EntryPoint())
	assert.Nil(t, s.VertexLayouts())
}

func TestNewShaderPanicsOnEmptySource(t *testing.T) {
	assert.Panics(t, func() {
		NewShader("empty", ShaderTypeVertex, "")
	})
}

func TestNewShaderPanicsOnMissingEntryPoint(t *testing.T) {
	assert.Panics(t, func() {
		NewShader("wrong-stage", ShaderTypeFragment, instancedVertexSource)
	})
}

func TestVertexLayoutSlotOrder(t *testing.T) {
	s := NewShader("instanced-vert", ShaderTypeVertex, instancedVertexSource)

	layouts := s.VertexLayouts()
	assert.Len(t, layouts, 2)

	// Slot 0: the per-vertex mesh struct, declared first.
	mesh := layouts[0]
	assert.Equal(t, wgpu.VertexStepModeVertex, mesh.StepMode)
	assert.Equal(t, uint64(32), mesh.ArrayStride)
	assert.Len(t, mesh.Attributes, 3)
	assert.Equal(t, wgpu.VertexFormatFloat32x3, mesh.Attributes[0].Format)
	assert.Equal(t, uint64(0), mesh.Attributes[0].Offset)
	assert.Equal(t, uint32(0), mesh.Attributes[0].ShaderLocation)
	assert.Equal(t, wgpu.VertexFormatFloat32x3, mesh.Attributes[1].Format)
	assert.Equal(t, uint64(12), mesh.Attributes[1].Offset)
	assert.Equal(t, wgpu.VertexFormatFloat32x2, mesh.Attributes[2].Format)
	assert.Equal(t, uint64(24), mesh.Attributes[2].Offset)

	// Slot 1: the instance struct, stepped per instance.
	inst := layouts[1]
	assert.Equal(t, wgpu.VertexStepModeInstance, inst.StepMode)
	assert.Equal(t, uint64(32), inst.ArrayStride)
	assert.Len(t, inst.Attributes, 2)
	assert.Equal(t, wgpu.VertexFormatFloat32x4, inst.Attributes[0].Format)
	assert.Equal(t, uint32(3), inst.Attributes[0].ShaderLocation)
	assert.Equal(t, wgpu.VertexFormatFloat32x4, inst.Attributes[1].Format)
	assert.Equal(t, uint64(16), inst.Attributes[1].Offset)
	assert.Equal(t, uint32(4), inst.Attributes[1].ShaderLocation)
}

func TestOutputStructNotTreatedAsVertexInput(t *testing.T) {
	// VertexOutput mixes @builtin(position) with @location fields and must not
	// produce a buffer layout.
	s := NewShader("instanced-vert", ShaderTypeVertex, instancedVertexSource)
	assert.Len(t, s.VertexLayouts(), 2)
}

func TestBindGroupLayoutUniform(t *testing.T) {
	s := NewShader("instanced-vert", ShaderTypeVertex, instancedVertexSource)

	descs := s.BindGroupLayoutDescriptors()
	assert.Len(t, descs, 1)

	desc := s.BindGroupLayoutDescriptor(0)
	assert.Len(t, desc.Entries, 1)

	entry := desc.Entries[0]
	assert.Equal(t, uint32(0), entry.Binding)
	assert.Equal(t, wgpu.ShaderStageVertex, entry.Visibility)
	assert.Equal(t, wgpu.BufferBindingTypeUniform, entry.Buffer.Type)
	assert.Equal(t, uint64(64), entry.Buffer.MinBindingSize)
}

func TestBindGroupVarNames(t *testing.T) {
	s := NewShader("flat-frag", ShaderTypeFragment, flatFragmentSource)

	assert.Equal(t, "material", s.BindGroupVarName(1, 0))
	assert.Equal(t, "", s.BindGroupVarName(0, 0))

	binding, ok := s.BindGroupFromVarName(1, "material")
	assert.True(t, ok)
	assert.Equal(t, 0, binding)

	_, ok = s.BindGroupFromVarName(1, "missing")
	assert.False(t, ok)
}

func TestFragmentVisibilityOnEntries(t *testing.T) {
	s := NewShader("flat-frag", ShaderTypeFragment, flatFragmentSource)

	entry := s.BindGroupLayoutDescriptor(1).Entries[0]
	assert.Equal(t, wgpu.ShaderStageFragment, entry.Visibility)
	assert.Equal(t, uint64(16), entry.Buffer.MinBindingSize)
}

func TestStorageBufferClassification(t *testing.T) {
	source := `
struct ModelData {
    model: mat4x4<f32>,
}
struct Models {
    data: array<ModelData>,
}
@group(0) @binding(1) var<storage, read> models: Models;

@vertex
fn vs_main(@builtin(vertex_index) idx: u32) -> @builtin(position) vec4<f32> {
    return vec4<f32>(0.0);
}
`
	s := NewShader("storage-vert", ShaderTypeVertex, source)

	entry := s.BindGroupLayoutDescriptor(0).Entries[0]
	assert.Equal(t, uint32(1), entry.Binding)
	assert.Equal(t, wgpu.BufferBindingTypeReadOnlyStorage, entry.Buffer.Type)
	// A runtime-sized array of 64-byte structs binds at least one element.
	assert.Equal(t, uint64(64), entry.Buffer.MinBindingSize)
}

func TestReadWriteStorageClassification(t *testing.T) {
	entry, ok := classifyBufferResource(2, wgpu.ShaderStageVertex, "storage, read_write")
	assert.True(t, ok)
	assert.Equal(t, wgpu.BufferBindingTypeStorage, entry.Buffer.Type)

	_, ok = classifyBufferResource(0, wgpu.ShaderStageFragment, "")
	assert.False(t, ok)
}

func TestStripComments(t *testing.T) {
	source := "a // line comment\nb /* block\ncomment */ c\n/* outer /* nested */ still out */ d"
	cleaned := stripComments(source)
	assert.Contains(t, cleaned, "a")
	assert.Contains(t, cleaned, "b")
	assert.Contains(t, cleaned, "c")
	assert.Contains(t, cleaned, "d")
	assert.NotContains(t, cleaned, "comment")
	assert.NotContains(t, cleaned, "nested")
	assert.NotContains(t, cleaned, "still out")
}

func TestSplitAtTopLevelCommas(t *testing.T) {
	parts := splitAtTopLevelCommas("a: vec3<f32>, b: array<Cell, 6>, c: f32")
	assert.Len(t, parts, 3)
	assert.Contains(t, parts[1], "array<Cell, 6>")
}

func TestComputeStructSizesPadding(t *testing.T) {
	// A vec3 followed by an f32 packs into 16 bytes; a lone vec3 pads to 16.
	structs := []parsedStruct{
		{name: "Packed", fields: []parsedField{
			{name: "pos", typeName: "vec3<f32>", location: -1},
			{name: "w", typeName: "f32", location: -1},
		}},
		{name: "Padded", fields: []parsedField{
			{name: "pos", typeName: "vec3<f32>", location: -1},
		}},
		{name: "Nested", fields: []parsedField{
			{name: "a", typeName: "Packed", location: -1},
			{name: "b", typeName: "Padded", location: -1},
		}},
	}

	sizes := computeStructSizes(structs)
	assert.Equal(t, uint64(16), sizes["Packed"].size)
	assert.Equal(t, uint64(16), sizes["Padded"].size)
	assert.Equal(t, uint64(32), sizes["Nested"].size)
}

func TestResolveTypeLayoutFixedArray(t *testing.T) {
	layout, ok := resolveTypeLayout("array<mat4x4<f32>, 4>", nil)
	assert.True(t, ok)
	assert.Equal(t, uint64(256), layout.size)
	assert.Equal(t, uint64(16), layout.align)

	_, ok = resolveTypeLayout("texture_2d<f32>", nil)
	assert.False(t, ok)
}
