package assets

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"math"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triangleBuffer packs three XY-plane positions followed by uint16 indices,
// padded to a 4-byte boundary.
func triangleBuffer() []byte {
	positions := []float32{
		0, 0, 0,
		1, 0, 0,
		0, 1, 0,
	}
	buf := make([]byte, 0, 44)
	for _, f := range positions {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}
	for _, i := range []uint16{0, 1, 2, 0} {
		buf = binary.LittleEndian.AppendUint16(buf, i)
	}
	return buf
}

func triangleDocument(nodes string) []byte {
	data := base64.StdEncoding.EncodeToString(triangleBuffer())
	return []byte(fmt.Sprintf(`{
  "asset": {"version": "2.0"},
  "scene": 0,
  "scenes": [{"nodes": [0]}],
  "nodes": %s,
  "meshes": [{"primitives": [{"attributes": {"POSITION": 0}, "indices": 1}]}],
  "accessors": [
    {"bufferView": 0, "componentType": 5126, "count": 3, "type": "VEC3", "min": [0, 0, 0], "max": [1, 1, 0]},
    {"bufferView": 1, "componentType": 5123, "count": 3, "type": "SCALAR"}
  ],
  "bufferViews": [
    {"buffer": 0, "byteOffset": 0, "byteLength": 36},
    {"buffer": 0, "byteOffset": 36, "byteLength": 6}
  ],
  "buffers": [{"byteLength": 44, "uri": "data:application/octet-stream;base64,%s"}]
}`, nodes, data))
}

func TestLoadModelTriangle(t *testing.T) {
	fsys := fstest.MapFS{
		"models/tri.gltf": {Data: triangleDocument(`[{"mesh": 0, "translation": [0, 0, 5]}]`)},
	}
	m := NewManager(fsys)

	mesh, err := m.LoadModel("models/tri.gltf")
	require.NoError(t, err)
	require.Len(t, mesh.Vertices, 3)
	assert.Equal(t, []uint32{0, 1, 2}, mesh.Indices)

	for _, v := range mesh.Vertices {
		assert.InDelta(t, 5, v.Position[2], 1e-6, "translation is baked in")
		// No normals in the file: computed from the face.
		assert.InDelta(t, 1, v.Normal[2], 1e-6)
	}
	assert.InDelta(t, 1, mesh.Vertices[1].Position[0], 1e-6)
}

func TestLoadModelChildTransform(t *testing.T) {
	nodes := `[
    {"children": [1], "scale": [2, 2, 2]},
    {"mesh": 0, "translation": [1, 0, 0]}
  ]`
	m := NewManager(fstest.MapFS{"tri.gltf": {Data: triangleDocument(nodes)}})

	mesh, err := m.LoadModel("tri.gltf")
	require.NoError(t, err)

	b := mesh.Bounds()
	// child translation 1 then parent scale 2: x in [2, 4], y in [0, 2]
	assert.InDelta(t, 2, b.Min[0], 1e-6)
	assert.InDelta(t, 4, b.Max[0], 1e-6)
	assert.InDelta(t, 2, b.Max[1], 1e-6)
}

func TestLoadModelErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.gltf": {Data: []byte("{not json")},
		"empty.gltf":  {Data: []byte(`{"asset": {"version": "2.0"}}`)},
	}
	m := NewManager(fsys)

	_, err := m.LoadModel("missing.gltf")
	assert.Error(t, err)

	_, err = m.LoadModel("broken.gltf")
	assert.Error(t, err)

	_, err = m.LoadModel("empty.gltf")
	assert.ErrorContains(t, err, "no triangle geometry")
}
