package mesh

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGPUVertexSize(t *testing.T) {
	v := GPUVertex{}
	assert.Equal(t, 32, v.Size())
	assert.Len(t, v.Marshal(), 32)
}

func TestGPUVertexMarshalLayout(t *testing.T) {
	v := GPUVertex{
		Position: [3]float32{1, 2, 3},
		Normal:   [3]float32{0, 1, 0},
		TexCoord: [2]float32{0.25, 0.75},
	}
	buf := v.Marshal()

	readF32 := func(offset int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset : offset+4]))
	}

	assert.Equal(t, float32(1), readF32(0))
	assert.Equal(t, float32(2), readF32(4))
	assert.Equal(t, float32(3), readF32(8))
	assert.Equal(t, float32(0), readF32(12))
	assert.Equal(t, float32(1), readF32(16))
	assert.Equal(t, float32(0), readF32(20))
	assert.Equal(t, float32(0.25), readF32(24))
	assert.Equal(t, float32(0.75), readF32(28))
}

func TestMarshalVertices(t *testing.T) {
	vertices := []GPUVertex{
		{Position: [3]float32{1, 0, 0}},
		{Position: [3]float32{0, 2, 0}},
	}
	buf := MarshalVertices(vertices)
	assert.Len(t, buf, 64)

	// Second vertex starts at byte 32.
	y := math.Float32frombits(binary.LittleEndian.Uint32(buf[36:40]))
	assert.Equal(t, float32(2), y)
}

func TestMarshalIndices(t *testing.T) {
	buf := MarshalIndices([]uint32{0, 1, 2, 0x01020304})
	assert.Len(t, buf, 16)
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(buf[4:8]))
	assert.Equal(t, uint32(0x01020304), binary.LittleEndian.Uint32(buf[12:16]))
}

func TestUnitCubeCounts(t *testing.T) {
	vertices, indices := UnitCube()
	assert.Len(t, vertices, 24)
	assert.Len(t, indices, 36)

	for _, idx := range indices {
		assert.Less(t, idx, uint32(24))
	}
}

func TestUnitCubeExtent(t *testing.T) {
	vertices, _ := UnitCube()
	for _, v := range vertices {
		for axis := 0; axis < 3; axis++ {
			assert.LessOrEqual(t, v.Position[axis], float32(0.5))
			assert.GreaterOrEqual(t, v.Position[axis], float32(-0.5))
		}
		// Every corner of a cube sits at an extreme on all three axes.
		for axis := 0; axis < 3; axis++ {
			assert.Equal(t, float32(0.5), float32(math.Abs(float64(v.Position[axis]))))
		}
	}
}

func TestUnitCubeNormalsUnitAxisAligned(t *testing.T) {
	vertices, _ := UnitCube()
	for _, v := range vertices {
		sum := v.Normal[0]*v.Normal[0] + v.Normal[1]*v.Normal[1] + v.Normal[2]*v.Normal[2]
		assert.Equal(t, float32(1), sum)
	}
}

func TestUnitCubeWindingFacesOutward(t *testing.T) {
	vertices, indices := UnitCube()

	for i := 0; i < len(indices); i += 3 {
		a := vertices[indices[i]].Position
		b := vertices[indices[i+1]].Position
		c := vertices[indices[i+2]].Position

		ab := [3]float32{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
		ac := [3]float32{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
		cross := [3]float32{
			ab[1]*ac[2] - ab[2]*ac[1],
			ab[2]*ac[0] - ab[0]*ac[2],
			ab[0]*ac[1] - ab[1]*ac[0],
		}

		// The triangle normal must agree with the face's vertex normal.
		n := vertices[indices[i]].Normal
		dot := cross[0]*n[0] + cross[1]*n[1] + cross[2]*n[2]
		assert.Greater(t, dot, float32(0), "triangle starting at index %d winds inward", i)
	}
}

func TestUnitCubeBuffers(t *testing.T) {
	vertexData, indexData, indexCount := UnitCubeBuffers()
	assert.Len(t, vertexData, 24*32)
	assert.Len(t, indexData, 36*4)
	assert.Equal(t, 36, indexCount)
}

func TestGPUVertexSourceDeclaresLayout(t *testing.T) {
	assert.Contains(t, GPUVertexSource, "struct VertexInput")
	assert.Contains(t, GPUVertexSource, "@location(0) position: vec3<f32>")
	assert.Contains(t, GPUVertexSource, "@location(1) normal: vec3<f32>")
	assert.Contains(t, GPUVertexSource, "@location(2) uv: vec2<f32>")
}
