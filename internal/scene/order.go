package scene

import "slices"

// SortForDraw returns objects grouped so that textured objects sharing a
// texture are adjacent. Untextured objects keep their place ahead of the
// textured ones; relative order within a group is preserved.
func SortForDraw(objs []Object) []Object {
	out := slices.Clone(objs)
	slices.SortStableFunc(out, func(a, b Object) int {
		return drawRank(a) - drawRank(b)
	})
	return out
}

func drawRank(o Object) int {
	if !o.Material.Textured {
		return -1
	}
	return int(o.Material.Texture)
}
