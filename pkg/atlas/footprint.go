package atlas

// DefaultFootprint is the tile footprint assumed for materials with no
// bound textures.
const DefaultFootprint = 1024

// Descriptor captures everything the packer and compositor need to know
// about one material: its bound textures per role and the governing
// footprint. Descriptors are built fresh for every atlas build and are
// read-only afterwards.
type Descriptor struct {
	Material Material
	Index    int
	Textures map[Role]Handle

	// Width and Height are the governing footprint: the dimensions of the
	// largest-area bound texture, or the fallback when none are bound.
	Width  int
	Height int

	HasTexture bool
}

// Analyze builds a descriptor per material by resolving each requested
// role through the lookup. A material with no bound textures gets the
// fallback footprint (DefaultFootprint when fallback is not positive);
// missing channels are recorded as absent, never as errors.
func Analyze(lookup ChannelLookup, materials []Material, roles []Role, fallback int) []Descriptor {
	if fallback <= 0 {
		fallback = DefaultFootprint
	}

	descs := make([]Descriptor, 0, len(materials))
	for i, mat := range materials {
		d := Descriptor{
			Material: mat,
			Index:    i,
			Textures: make(map[Role]Handle, len(roles)),
		}
		for _, role := range roles {
			tex, ok := lookup.FindTexture(mat, role)
			if !ok || tex == nil {
				continue
			}
			d.Textures[role] = tex
			if !d.HasTexture || tex.Width()*tex.Height() > d.Width*d.Height {
				d.Width = tex.Width()
				d.Height = tex.Height()
			}
			d.HasTexture = true
		}
		if !d.HasTexture {
			d.Width = fallback
			d.Height = fallback
		}
		descs = append(descs, d)
	}
	return descs
}
