package atlas

import "github.com/Faultbox/atlaskit/pkg/geom"

// Polygon is one mesh polygon: its material index and the UV coordinate
// of each loop (polygon-vertex visitation). UVs alias the mesh's loop
// storage and are mutated in place by RemapUVs.
type Polygon struct {
	MaterialIndex int
	UVs           []geom.Vec2
}

// RemapUVs rewrites every polygon's loop UVs into the packed layout via
// the affine transform of its material's tile: uv' = uv*scale + offset.
// Source UVs are assumed normalized to [0,1] per material. Polygons
// whose material index has no placement are left untouched.
func RemapUVs(polygons []Polygon, layout *Layout) {
	type transform struct {
		scale  geom.Vec2
		offset geom.Vec2
	}
	transforms := make(map[int]transform, len(layout.Placements))
	for idx, place := range layout.Placements {
		scale, offset := place.UVTransform(layout.Width, layout.Height)
		transforms[idx] = transform{scale: scale, offset: offset}
	}

	for _, poly := range polygons {
		tr, ok := transforms[poly.MaterialIndex]
		if !ok {
			continue
		}
		for i := range poly.UVs {
			poly.UVs[i] = poly.UVs[i].MulAdd(tr.scale, tr.offset)
		}
	}
}
