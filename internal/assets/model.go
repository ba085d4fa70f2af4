package assets

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"go.uber.org/zap"

	"github.com/ElliotMtb/battlefield-hexagons/internal/engine/geometry"
)

// LoadModel reads a glTF document (JSON or binary) and flattens every
// triangle primitive of its default scene into one mesh, with node
// transforms baked into the vertices. External buffers are resolved
// relative to the document.
func (m *Manager) LoadModel(name string) (*geometry.Mesh, error) {
	data, err := m.Load(name)
	if err != nil {
		return nil, err
	}

	dir := path.Dir(name)
	sub, err := fs.Sub(m.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", name, err)
	}

	var doc gltf.Document
	if err := gltf.NewDecoderFS(bytes.NewReader(data), sub).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding model %s: %w", name, err)
	}

	mesh, err := flattenDocument(&doc, m.log)
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", name, err)
	}
	m.log.Info("model loaded", zap.String("name", name),
		zap.Int("vertices", len(mesh.Vertices)), zap.Int("triangles", mesh.TriangleCount()))
	return mesh, nil
}

type meshBuilder struct {
	doc  *gltf.Document
	out  *geometry.Mesh
	seen map[int]bool
	log  *zap.Logger
}

func flattenDocument(doc *gltf.Document, log *zap.Logger) (*geometry.Mesh, error) {
	b := &meshBuilder{doc: doc, out: &geometry.Mesh{}, seen: make(map[int]bool), log: log}

	for _, n := range rootNodes(doc) {
		if err := b.visit(n, mgl32.Ident4()); err != nil {
			return nil, err
		}
	}
	if len(b.out.Indices) == 0 {
		return nil, fmt.Errorf("no triangle geometry")
	}
	return b.out, nil
}

// rootNodes returns the nodes of the default scene, or every parentless node
// when the document defines no scene.
func rootNodes(doc *gltf.Document) []int {
	if len(doc.Scenes) > 0 {
		idx := 0
		if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
			idx = *doc.Scene
		}
		return doc.Scenes[idx].Nodes
	}

	child := make(map[int]bool)
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			child[c] = true
		}
	}
	var roots []int
	for i := range doc.Nodes {
		if !child[i] {
			roots = append(roots, i)
		}
	}
	return roots
}

func (b *meshBuilder) visit(idx int, parent mgl32.Mat4) error {
	if idx < 0 || idx >= len(b.doc.Nodes) {
		return fmt.Errorf("node %d out of range", idx)
	}
	if b.seen[idx] {
		return fmt.Errorf("node %d visited twice", idx)
	}
	b.seen[idx] = true

	node := b.doc.Nodes[idx]
	world := parent.Mul4(localTransform(node))

	if node.Mesh != nil {
		if *node.Mesh >= len(b.doc.Meshes) {
			return fmt.Errorf("node %d: mesh %d out of range", idx, *node.Mesh)
		}
		for pi, prim := range b.doc.Meshes[*node.Mesh].Primitives {
			if err := b.addPrimitive(prim, world); err != nil {
				return fmt.Errorf("mesh %d primitive %d: %w", *node.Mesh, pi, err)
			}
		}
	}
	for _, c := range node.Children {
		if err := b.visit(c, world); err != nil {
			return err
		}
	}
	return nil
}

func localTransform(n *gltf.Node) mgl32.Mat4 {
	mat := n.MatrixOrDefault()
	if mat != gltf.DefaultMatrix {
		var out mgl32.Mat4
		for i, v := range mat {
			out[i] = float32(v)
		}
		return out
	}

	t := n.TranslationOrDefault()
	r := n.RotationOrDefault()
	s := n.ScaleOrDefault()
	rot := mgl32.Quat{W: float32(r[3]), V: mgl32.Vec3{float32(r[0]), float32(r[1]), float32(r[2])}}
	return mgl32.Translate3D(float32(t[0]), float32(t[1]), float32(t[2])).
		Mul4(rot.Normalize().Mat4()).
		Mul4(mgl32.Scale3D(float32(s[0]), float32(s[1]), float32(s[2])))
}

func (b *meshBuilder) accessor(i int) (*gltf.Accessor, error) {
	if i < 0 || i >= len(b.doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", i)
	}
	return b.doc.Accessors[i], nil
}

func (b *meshBuilder) addPrimitive(p *gltf.Primitive, world mgl32.Mat4) error {
	if p.Mode != gltf.PrimitiveTriangles {
		b.log.Debug("skipping non-triangle primitive", zap.Int("mode", int(p.Mode)))
		return nil
	}
	posIdx, ok := p.Attributes[gltf.POSITION]
	if !ok {
		return fmt.Errorf("missing POSITION attribute")
	}
	acr, err := b.accessor(posIdx)
	if err != nil {
		return err
	}
	positions, err := modeler.ReadPosition(b.doc, acr, nil)
	if err != nil {
		return fmt.Errorf("reading positions: %w", err)
	}

	var normals [][3]float32
	if ni, ok := p.Attributes[gltf.NORMAL]; ok {
		if acr, err := b.accessor(ni); err == nil {
			normals, err = modeler.ReadNormal(b.doc, acr, nil)
			if err != nil {
				return fmt.Errorf("reading normals: %w", err)
			}
		}
	}

	var uvs [][2]float32
	if ti, ok := p.Attributes[gltf.TEXCOORD_0]; ok {
		if acr, err := b.accessor(ti); err == nil {
			uvs, err = modeler.ReadTextureCoord(b.doc, acr, nil)
			if err != nil {
				return fmt.Errorf("reading uvs: %w", err)
			}
		}
	}

	var indices []uint32
	if p.Indices != nil {
		acr, err := b.accessor(*p.Indices)
		if err != nil {
			return err
		}
		indices, err = modeler.ReadIndices(b.doc, acr, nil)
		if err != nil {
			return fmt.Errorf("reading indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	part := &geometry.Mesh{
		Vertices: make([]geometry.Vertex, len(positions)),
		Indices:  indices,
	}
	for i, pos := range positions {
		v := geometry.Vertex{Position: mgl32.Vec3(pos)}
		if i < len(normals) {
			v.Normal = mgl32.Vec3(normals[i])
		}
		if i < len(uvs) {
			v.UV = mgl32.Vec2(uvs[i])
		}
		part.Vertices[i] = v
	}
	for _, idx := range indices {
		if int(idx) >= len(positions) {
			return fmt.Errorf("index %d out of range", idx)
		}
	}
	if len(normals) < len(positions) {
		computeNormals(part)
	}

	b.append(part.Transform(world))
	return nil
}

func (b *meshBuilder) append(part *geometry.Mesh) {
	base := uint32(len(b.out.Vertices))
	b.out.Vertices = append(b.out.Vertices, part.Vertices...)
	for _, i := range part.Indices {
		b.out.Indices = append(b.out.Indices, base+i)
	}
}

// computeNormals sets area-weighted vertex normals from the triangle faces.
func computeNormals(m *geometry.Mesh) {
	acc := make([]mgl32.Vec3, len(m.Vertices))
	for t := 0; t+2 < len(m.Indices); t += 3 {
		a, b, c := m.Indices[t], m.Indices[t+1], m.Indices[t+2]
		pa, pb, pc := m.Vertices[a].Position, m.Vertices[b].Position, m.Vertices[c].Position
		n := pb.Sub(pa).Cross(pc.Sub(pa))
		acc[a] = acc[a].Add(n)
		acc[b] = acc[b].Add(n)
		acc[c] = acc[c].Add(n)
	}
	for i, n := range acc {
		if n.Len() > 0 {
			m.Vertices[i].Normal = n.Normalize()
		}
	}
}
