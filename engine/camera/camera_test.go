package camera

import (
	"testing"

	"github.com/cellscape/cellscape/common"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestGPUCameraUniformSize(t *testing.T) {
	u := GPUCameraUniform{}
	assert.Equal(t, 64, u.Size())
	assert.Len(t, u.Marshal(), 64)
}

func TestGPUCameraUniformMarshal(t *testing.T) {
	var u GPUCameraUniform
	common.Identity(u.ViewProj[:])
	buf := u.Marshal()

	// Column-major identity: byte 0 holds 1.0, byte 4 holds 0.0.
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, buf[0:4])
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00}, buf[4:8])
}

func TestCameraMatricesFromController(t *testing.T) {
	ctrl := NewOrbitController(
		WithRadius(10),
		WithAzimuth(0),
		WithElevation(0.1),
	)
	cam := NewCamera(
		WithController(ctrl),
		WithAspect(16.0/9.0),
	)

	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix()
	vp := cam.ViewProjectionMatrix()

	expected := make([]float32, 16)
	common.Mul4(expected, proj[:], view[:])
	for i := range expected {
		assert.InDelta(t, expected[i], vp[i], 1e-6, "element %d", i)
	}

	u := cam.GPUUniform()
	assert.Equal(t, vp, u.ViewProj)
}

func TestCameraUpdateTracksController(t *testing.T) {
	ctrl := NewOrbitController(WithRadius(10))
	cam := NewCamera(WithController(ctrl))

	before := cam.ViewProjectionMatrix()

	ctrl.Orbit(0.5, 0)
	cam.Update()

	after := cam.ViewProjectionMatrix()
	assert.NotEqual(t, before, after)
}

func TestOrbitControllerPositionOnSphere(t *testing.T) {
	ctrl := NewOrbitController(
		WithRadius(10),
		WithTarget(1, 2, 3),
		WithAzimuth(0.7),
		WithElevation(0.3),
	)

	px, py, pz := ctrl.Position()
	dx := px - 1
	dy := py - 2
	dz := pz - 3
	dist := math32.Sqrt(dx*dx + dy*dy + dz*dz)
	assert.InDelta(t, 10.0, dist, 1e-5)
}

func TestOrbitControllerZoomClamped(t *testing.T) {
	ctrl := NewOrbitController(
		WithRadius(10),
		WithRadiusBounds(5, 20),
		WithZoomSpeed(1),
	)

	ctrl.Zoom(100)
	assert.Equal(t, float32(5), ctrl.Radius())

	ctrl.Zoom(-100)
	assert.Equal(t, float32(20), ctrl.Radius())
}

func TestOrbitControllerElevationClamped(t *testing.T) {
	ctrl := NewOrbitController(
		WithElevationBounds(-1.0, 1.0),
	)

	ctrl.Orbit(0, 5)
	assert.Equal(t, float32(1.0), ctrl.Elevation())

	ctrl.SetElevation(-5)
	assert.Equal(t, float32(-1.0), ctrl.Elevation())
}

func TestCameraProviderAssigned(t *testing.T) {
	cam := NewCamera()
	assert.NotNil(t, cam.Provider())
	assert.NotEmpty(t, cam.Provider().Label())
}
