package atlas

import "testing"

func TestAnalyzeFallback(t *testing.T) {
	lookup := mapLookup{}
	descs := Analyze(lookup, []Material{MaterialName("bare")}, AllRoles, 0)

	if len(descs) != 1 {
		t.Fatalf("expected 1 descriptor, got %d", len(descs))
	}
	d := descs[0]
	if d.HasTexture {
		t.Error("expected HasTexture=false for untextured material")
	}
	if d.Width != DefaultFootprint || d.Height != DefaultFootprint {
		t.Errorf("expected %dx%d fallback, got %dx%d", DefaultFootprint, DefaultFootprint, d.Width, d.Height)
	}
	if len(d.Textures) != 0 {
		t.Errorf("expected no bound textures, got %d", len(d.Textures))
	}
}

func TestAnalyzeCustomFallback(t *testing.T) {
	descs := Analyze(mapLookup{}, []Material{MaterialName("bare")}, AllRoles, 256)
	if descs[0].Width != 256 || descs[0].Height != 256 {
		t.Errorf("expected 256x256, got %dx%d", descs[0].Width, descs[0].Height)
	}
}

func TestAnalyzeGoverningSize(t *testing.T) {
	lookup := mapLookup{
		"skin": {
			RoleDiffuse: newFakeTexture("skin_d", 256, 256, [4]float32{1, 0, 0, 1}),
			RoleNormal:  newFakeTexture("skin_n", 512, 512, [4]float32{0.5, 0.5, 1, 1}),
			RoleAlpha:   newFakeTexture("skin_a", 128, 128, [4]float32{0, 0, 0, 0.5}),
		},
	}
	descs := Analyze(lookup, []Material{MaterialName("skin")}, AllRoles, 0)

	d := descs[0]
	if !d.HasTexture {
		t.Error("expected HasTexture=true")
	}
	if d.Width != 512 || d.Height != 512 {
		t.Errorf("expected governing size 512x512, got %dx%d", d.Width, d.Height)
	}
	if len(d.Textures) != 3 {
		t.Errorf("expected 3 bound textures, got %d", len(d.Textures))
	}
}

func TestAnalyzeOnlyRequestedRoles(t *testing.T) {
	lookup := mapLookup{
		"skin": {
			RoleDiffuse:  newFakeTexture("skin_d", 256, 256, [4]float32{1, 0, 0, 1}),
			RoleEmission: newFakeTexture("skin_e", 2048, 2048, [4]float32{0, 0, 0, 1}),
		},
	}
	descs := Analyze(lookup, []Material{MaterialName("skin")}, []Role{RoleDiffuse}, 0)

	d := descs[0]
	if d.Width != 256 {
		t.Errorf("unrequested role must not govern size, got %dx%d", d.Width, d.Height)
	}
	if _, ok := d.Textures[RoleEmission]; ok {
		t.Error("unrequested role must not be bound")
	}
}

func TestAnalyzeIndexOrder(t *testing.T) {
	mats := []Material{MaterialName("a"), MaterialName("b"), MaterialName("c")}
	descs := Analyze(mapLookup{}, mats, AllRoles, 0)
	for i, d := range descs {
		if d.Index != i {
			t.Errorf("descriptor %d has index %d", i, d.Index)
		}
		if d.Material.Name() != mats[i].Name() {
			t.Errorf("descriptor %d references material %s", i, d.Material.Name())
		}
	}
}

func TestChannelLookupFunc(t *testing.T) {
	tex := newFakeTexture("t", 64, 64, [4]float32{})
	lookup := ChannelLookupFunc(func(mat Material, role Role) (Handle, bool) {
		if role == RoleDiffuse {
			return tex, true
		}
		return nil, false
	})
	if h, ok := lookup.FindTexture(MaterialName("m"), RoleDiffuse); !ok || h != tex {
		t.Error("adapter did not forward to the function")
	}
	if _, ok := lookup.FindTexture(MaterialName("m"), RoleNormal); ok {
		t.Error("adapter returned a texture for an unbound role")
	}
}
