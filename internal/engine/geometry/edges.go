package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// edgeKey identifies an undirected edge by its quantized endpoint positions,
// so seam vertices that share a position but not an index count as one edge.
type edgeKey [2][3]int32

const edgePrecision = 1e4

func quantize(p mgl32.Vec3) [3]int32 {
	return [3]int32{
		int32(math.Round(float64(p[0]) * edgePrecision)),
		int32(math.Round(float64(p[1]) * edgePrecision)),
		int32(math.Round(float64(p[2]) * edgePrecision)),
	}
}

func lessPoint(a, b [3]int32) bool {
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// OutlineEdges returns the boundary of the mesh as a line list: pairs of
// positions for every edge used by exactly one triangle. For a flat disc this
// is the rim polygon.
func (m *Mesh) OutlineEdges() []mgl32.Vec3 {
	type edge struct {
		a, b  mgl32.Vec3
		count int
	}
	seen := make(map[edgeKey]*edge)
	var order []edgeKey

	for t := 0; t+2 < len(m.Indices); t += 3 {
		tri := [3]uint32{m.Indices[t], m.Indices[t+1], m.Indices[t+2]}
		for i := 0; i < 3; i++ {
			pa := m.Vertices[tri[i]].Position
			pb := m.Vertices[tri[(i+1)%3]].Position
			qa, qb := quantize(pa), quantize(pb)
			if qa == qb {
				continue
			}
			if lessPoint(qb, qa) {
				qa, qb = qb, qa
			}
			key := edgeKey{qa, qb}
			if e, ok := seen[key]; ok {
				e.count++
				continue
			}
			seen[key] = &edge{a: pa, b: pb, count: 1}
			order = append(order, key)
		}
	}

	var lines []mgl32.Vec3
	for _, key := range order {
		if e := seen[key]; e.count == 1 {
			lines = append(lines, e.a, e.b)
		}
	}
	return lines
}
