package mesh

// cubeFace describes one axis-aligned cube face: an outward normal and the
// four corner positions in counter-clockwise order as seen from outside.
type cubeFace struct {
	normal  [3]float32
	corners [4][3]float32
}

var cubeFaces = [6]cubeFace{
	{ // +X
		normal: [3]float32{1, 0, 0},
		corners: [4][3]float32{
			{0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5},
		},
	},
	{ // -X
		normal: [3]float32{-1, 0, 0},
		corners: [4][3]float32{
			{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5},
		},
	},
	{ // +Y
		normal: [3]float32{0, 1, 0},
		corners: [4][3]float32{
			{-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5},
		},
	},
	{ // -Y
		normal: [3]float32{0, -1, 0},
		corners: [4][3]float32{
			{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5},
		},
	},
	{ // +Z
		normal: [3]float32{0, 0, 1},
		corners: [4][3]float32{
			{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5},
		},
	},
	{ // -Z
		normal: [3]float32{0, 0, -1},
		corners: [4][3]float32{
			{0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5},
		},
	},
}

// faceUVs maps each face corner to a texture coordinate. The layout carries
// uv for input-contract compatibility; flat-color pipelines never sample it.
var faceUVs = [4][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}}

// UnitCube generates a unit cube centered at the origin (extent -0.5..+0.5 on
// every axis) with per-face normals. Each face contributes 4 vertices and 2
// counter-clockwise triangles, 24 vertices and 36 indices total.
//
// Returns:
//   - []GPUVertex: the 24 cube vertices
//   - []uint32: the 36 triangle indices
func UnitCube() ([]GPUVertex, []uint32) {
	vertices := make([]GPUVertex, 0, 24)
	indices := make([]uint32, 0, 36)

	for _, face := range cubeFaces {
		base := uint32(len(vertices))
		for i, corner := range face.corners {
			vertices = append(vertices, GPUVertex{
				Position: corner,
				Normal:   face.normal,
				TexCoord: faceUVs[i],
			})
		}
		indices = append(indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}

	return vertices, indices
}

// UnitCubeBuffers generates the unit cube and serializes it directly into
// byte buffers ready for mesh buffer upload.
//
// Returns:
//   - []byte: vertex buffer data (24 vertices, 768 bytes)
//   - []byte: index buffer data (36 uint32 indices, 144 bytes)
//   - int: the index count (36)
func UnitCubeBuffers() ([]byte, []byte, int) {
	vertices, indices := UnitCube()
	return MarshalVertices(vertices), MarshalIndices(indices), len(indices)
}
