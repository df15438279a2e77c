package common

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestIdentity(t *testing.T) {
	m := make([]float32, 16)
	for i := range m {
		m[i] = float32(i)
	}
	Identity(m)

	for i, v := range m {
		if i == 0 || i == 5 || i == 10 || i == 15 {
			assert.Equal(t, float32(1), v, "diagonal element %d", i)
		} else {
			assert.Equal(t, float32(0), v, "off-diagonal element %d", i)
		}
	}
}

func TestMul4Identity(t *testing.T) {
	id := make([]float32, 16)
	Identity(id)

	m := []float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}

	out := make([]float32, 16)
	Mul4(out, id, m)
	assert.Equal(t, m, out)

	Mul4(out, m, id)
	assert.Equal(t, m, out)
}

func TestMul4InPlace(t *testing.T) {
	// Mul4 must tolerate out aliasing one of its inputs.
	a := make([]float32, 16)
	Identity(a)
	a[12] = 3 // translation on x

	b := make([]float32, 16)
	Identity(b)
	b[13] = 5 // translation on y

	Mul4(a, a, b)
	assert.Equal(t, float32(3), a[12])
	assert.Equal(t, float32(5), a[13])
}

func TestMulVec4Translation(t *testing.T) {
	m := make([]float32, 16)
	TranslateScale(m, 2, 0, 0, 2)

	out := MulVec4(m, [4]float32{0.5, 0, 0, 1})
	assert.InDelta(t, 3.0, out[0], 1e-6)
	assert.InDelta(t, 0.0, out[1], 1e-6)
	assert.InDelta(t, 0.0, out[2], 1e-6)
	assert.InDelta(t, 1.0, out[3], 1e-6)
}

func TestTranslateScaleMatchesBuildModelMatrix(t *testing.T) {
	a := make([]float32, 16)
	b := make([]float32, 16)
	TranslateScale(a, 1, -2, 3, 0.5)
	BuildModelMatrix(b, 1, -2, 3, 0, 0, 0, 0.5, 0.5, 0.5)

	for i := range a {
		assert.InDelta(t, b[i], a[i], 1e-6, "element %d", i)
	}
}

func TestLookAtOrigin(t *testing.T) {
	view := make([]float32, 16)
	LookAt(view, 0, 0, 10, 0, 0, 0, 0, 1, 0)

	// A point at the origin ends up 10 units down the camera's -z axis.
	out := MulVec4(view, [4]float32{0, 0, 0, 1})
	assert.InDelta(t, 0.0, out[0], 1e-5)
	assert.InDelta(t, 0.0, out[1], 1e-5)
	assert.InDelta(t, -10.0, out[2], 1e-5)
}

func TestPerspectiveDepthRange(t *testing.T) {
	proj := make([]float32, 16)
	near := float32(0.1)
	far := float32(100.0)
	Perspective(proj, math32.Pi/3, 16.0/9.0, near, far)

	// WebGPU clip space maps the near plane to depth 0 and the far plane to 1.
	nearClip := MulVec4(proj, [4]float32{0, 0, -near, 1})
	assert.InDelta(t, 0.0, nearClip[2]/nearClip[3], 1e-5)

	farClip := MulVec4(proj, [4]float32{0, 0, -far, 1})
	assert.InDelta(t, 1.0, farClip[2]/farClip[3], 1e-4)
}

func TestSliceToBytes(t *testing.T) {
	data := []float32{1.0, 2.0}
	b := SliceToBytes(data)
	assert.Len(t, b, 8)

	assert.Nil(t, SliceToBytes([]float32{}))
}

func TestStructToBytes(t *testing.T) {
	v := struct{ A, B float32 }{1, 2}
	b := StructToBytes(&v)
	assert.Len(t, b, 8)
}
