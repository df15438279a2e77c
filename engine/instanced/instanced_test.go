package instanced

import (
	"bytes"
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

func TestGPUInstanceDataSize(t *testing.T) {
	d := GPUInstanceData{}
	assert.Equal(t, 32, d.Size())
	assert.Len(t, d.Marshal(), 32)
}

func TestGPUInstanceDataMarshalLayout(t *testing.T) {
	d := GPUInstanceData{
		PosScale: [4]float32{1, 2, 3, 4},
		Color:    [4]float32{0.1, 0.2, 0.3, 1},
	}
	buf := d.Marshal()

	// 1.0f little-endian at offset 0, scale at offset 12, color starts at 16.
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, buf[0:4])
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x40}, buf[12:16])
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, buf[28:32])
}

func TestVertexStageScaleThenTranslate(t *testing.T) {
	vertex := mesh.GPUVertex{Position: [3]float32{0.5, 0, 0}}
	instance := GPUInstanceData{
		PosScale: [4]float32{2, 0, 0, 2},
		Color:    [4]float32{0, 1, 0, 1},
	}

	out := VertexStage(identityMatrix(), vertex, instance)

	// world = 0.5*2 + 2 = 3 on x; identity camera leaves clip == world.
	assert.Equal(t, [4]float32{3, 0, 0, 1}, out.ClipPosition)
	assert.Equal(t, [4]float32{0, 1, 0, 1}, out.Color)
}

func TestVertexStageIdentityInstance(t *testing.T) {
	vertex := mesh.GPUVertex{Position: [3]float32{1, 0, 0}}
	instance := GPUInstanceData{
		PosScale: [4]float32{0, 0, 0, 1},
		Color:    [4]float32{1, 0, 0, 1},
	}

	out := VertexStage(identityMatrix(), vertex, instance)
	assert.Equal(t, [4]float32{1, 0, 0, 1}, out.ClipPosition)
	assert.Equal(t, [4]float32{1, 0, 0, 1}, out.Color)
}

func TestVertexStageIgnoresNormalAndUV(t *testing.T) {
	instance := GPUInstanceData{PosScale: [4]float32{0, 0, 0, 1}}

	plain := mesh.GPUVertex{Position: [3]float32{1, 2, 3}}
	decorated := mesh.GPUVertex{
		Position: [3]float32{1, 2, 3},
		Normal:   [3]float32{9, 9, 9},
		TexCoord: [2]float32{5, 5},
	}

	assert.Equal(t,
		VertexStage(identityMatrix(), plain, instance),
		VertexStage(identityMatrix(), decorated, instance),
	)
}

func TestVertexStageCameraChangesPositionNotColor(t *testing.T) {
	vertex := mesh.GPUVertex{Position: [3]float32{1, 1, 1}}
	instance := GPUInstanceData{
		PosScale: [4]float32{0, 0, 0, 1},
		Color:    [4]float32{0.2, 0.4, 0.6, 1},
	}

	var scaled [16]float32
	common.TranslateScale(scaled[:], 0, 0, 0, 2)

	a := VertexStage(identityMatrix(), vertex, instance)
	b := VertexStage(scaled, vertex, instance)

	assert.NotEqual(t, a.ClipPosition, b.ClipPosition)
	assert.Equal(t, a.Color, b.Color)
}

func TestFragmentStagePassThrough(t *testing.T) {
	color := [4]float32{0.3, 0.6, 0.9, 0.5}
	assert.Equal(t, color, FragmentStage(color))
}

func TestFragmentOutputPartitionsByInstance(t *testing.T) {
	vertex := mesh.GPUVertex{Position: [3]float32{0, 0, 0}}
	instances := []GPUInstanceData{
		{PosScale: [4]float32{0, 0, 0, 1}, Color: [4]float32{1, 0, 0, 1}},
		{PosScale: [4]float32{5, 0, 0, 1}, Color: [4]float32{0, 1, 0, 1}},
		{PosScale: [4]float32{0, 5, 0, 1}, Color: [4]float32{0, 0, 1, 1}},
	}

	seen := make(map[[4]float32]bool)
	for _, inst := range instances {
		out := VertexStage(identityMatrix(), vertex, inst)
		assert.Equal(t, inst.Color, FragmentStage(out.Color))
		seen[FragmentStage(out.Color)] = true
	}
	assert.Len(t, seen, 3)
}

func TestInstanceSetPackMatchesSerialMarshal(t *testing.T) {
	records := make([]GPUInstanceData, 100)
	for i := range records {
		records[i] = GPUInstanceData{
			PosScale: [4]float32{float32(i), float32(i * 2), float32(i * 3), 1},
			Color:    [4]float32{float32(i) / 100, 0, 0, 1},
		}
	}

	set := NewInstanceSet(WithInstances(records))
	packed := set.Pack()

	var expected bytes.Buffer
	for i := range records {
		expected.Write(records[i].Marshal())
	}
	assert.Equal(t, expected.Bytes(), packed)
}

func TestInstanceSetParallelPackMatchesSerial(t *testing.T) {
	records := make([]GPUInstanceData, parallelPackThreshold+500)
	for i := range records {
		records[i] = GPUInstanceData{
			PosScale: [4]float32{float32(i % 31), float32(i % 17), float32(i % 7), float32(i%5 + 1)},
			Color:    [4]float32{float32(i%255) / 255, float32(i%127) / 127, 0, 1},
		}
	}

	parallel := NewInstanceSet(WithInstances(records), WithPackWorkers(4)).Pack()

	serial := make([]byte, 0, len(records)*32)
	for i := range records {
		serial = append(serial, records[i].Marshal()...)
	}
	assert.Equal(t, serial, parallel)
}

func TestInstanceSetEmptyPack(t *testing.T) {
	set := NewInstanceSet()
	assert.Nil(t, set.Pack())
	assert.Equal(t, 0, set.Count())
}

func TestInstanceSetAppendAndMutate(t *testing.T) {
	set := NewInstanceSet()
	set.Append(GPUInstanceData{PosScale: [4]float32{0, 0, 0, 1}})
	set.Append(GPUInstanceData{PosScale: [4]float32{1, 0, 0, 1}})
	assert.Equal(t, 2, set.Count())

	set.SetInstance(1, GPUInstanceData{PosScale: [4]float32{9, 0, 0, 1}})
	assert.Equal(t, float32(9), set.Instance(1).PosScale[0])
	assert.NotEmpty(t, set.Provider().Label())
}

func TestNewPipelineShaderWiring(t *testing.T) {
	p := NewPipeline()
	assert.Equal(t, PipelineKey, p.PipelineKey())

	vert := p.Shader(shader.ShaderTypeVertex)
	assert.NotNil(t, vert)
	assert.Equal(t, "vs_main", vert.EntryPoint())

	layouts := vert.VertexLayouts()
	assert.Len(t, layouts, 2)

	// Slot 0: geometry, vertex-stepped, 32-byte stride.
	assert.Equal(t, wgpu.VertexStepModeVertex, layouts[0].StepMode)
	assert.Equal(t, uint64(32), layouts[0].ArrayStride)

	// Slot 1: instance record, instance-stepped, 32-byte stride.
	assert.Equal(t, wgpu.VertexStepModeInstance, layouts[1].StepMode)
	assert.Equal(t, uint64(32), layouts[1].ArrayStride)
	assert.Len(t, layouts[1].Attributes, 2)

	// Camera uniform at group 0 binding 0, 64 bytes.
	desc := vert.BindGroupLayoutDescriptor(0)
	assert.Len(t, desc.Entries, 1)
	assert.Equal(t, uint64(64), desc.Entries[0].Buffer.MinBindingSize)

	frag := p.Shader(shader.ShaderTypeFragment)
	assert.NotNil(t, frag)
	assert.Equal(t, "fs_main", frag.EntryPoint())
}
