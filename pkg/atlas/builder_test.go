package atlas

import (
	"testing"

	"github.com/Faultbox/atlaskit/pkg/geom"
)

func TestBuildNoMaterials(t *testing.T) {
	b := NewBuilder(newFakeProvider(), mapLookup{}, Options{}, nil)
	if _, err := b.Build("test", nil, nil); err != ErrNoMaterials {
		t.Errorf("expected ErrNoMaterials, got %v", err)
	}
}

func TestBuildSkippedAtTargetCount(t *testing.T) {
	b := NewBuilder(newFakeProvider(), mapLookup{}, Options{TargetCount: 2}, nil)
	res, err := b.Build("test", []Material{MaterialName("a"), MaterialName("b")}, nil)
	if err != nil {
		t.Fatalf("skip must not be an error: %v", err)
	}
	if res.Outcome != OutcomeSkipped {
		t.Errorf("expected OutcomeSkipped, got %v", res.Outcome)
	}
	if res.Reason == "" {
		t.Error("skipped result should carry a reason")
	}
	if res.Layout != nil || len(res.Images) != 0 {
		t.Error("skipped build must not produce a layout or images")
	}
}

func TestBuildSingleMaterialSkippedByDefault(t *testing.T) {
	b := NewBuilder(newFakeProvider(), mapLookup{}, Options{}, nil)
	res, err := b.Build("test", []Material{MaterialName("only")}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != OutcomeSkipped {
		t.Error("single material should be a no-op with the default target count")
	}
}

func TestBuildFull(t *testing.T) {
	lookup := mapLookup{
		"a": {RoleDiffuse: newFakeTexture("a_d", 64, 64, [4]float32{1, 0, 0, 1})},
		"b": {RoleDiffuse: newFakeTexture("b_d", 64, 64, [4]float32{0, 1, 0, 1})},
		"c": {RoleDiffuse: newFakeTexture("c_d", 32, 32, [4]float32{0, 0, 1, 1})},
	}
	provider := newFakeProvider()
	b := NewBuilder(provider, lookup, Options{Roles: []Role{RoleDiffuse, RoleNormal}}, nil)

	mats := []Material{MaterialName("a"), MaterialName("b"), MaterialName("c")}
	polys := []Polygon{
		{MaterialIndex: 0, UVs: []geom.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}}},
		{MaterialIndex: 2, UVs: []geom.Vec2{{X: 1, Y: 1}}},
	}

	res, err := b.Build("hero", mats, polys)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if res.Outcome != OutcomeBuilt {
		t.Fatalf("expected OutcomeBuilt, got %v", res.Outcome)
	}
	if res.Materials != 3 {
		t.Errorf("expected 3 materials, got %d", res.Materials)
	}

	// 64x64 + 64x64 + 32x32 packs onto a 128-wide shelf plus one more
	// shelf, rounding to 128x128.
	if res.Layout.Width != 128 || res.Layout.Height != 128 {
		t.Errorf("expected 128x128 layout, got %dx%d", res.Layout.Width, res.Layout.Height)
	}

	for _, role := range []Role{RoleDiffuse, RoleNormal} {
		h, ok := res.Images[role]
		if !ok {
			t.Fatalf("missing output image for role %s", role)
		}
		wantName := "Atlas_hero_" + string(role)
		if h.Name() != wantName {
			t.Errorf("expected image name %s, got %s", wantName, h.Name())
		}
		if h.Width() != 128 || h.Height() != 128 {
			t.Errorf("output image %s has size %dx%d", h.Name(), h.Width(), h.Height())
		}
		if !provider.saved[wantName] {
			t.Errorf("output image %s was not saved", wantName)
		}
	}

	// Material 0 sits at (0,0) with a 64x64 tile: (1,1) -> (0.5,0.5).
	if !approxEq(polys[0].UVs[1], geom.Vec2{X: 0.5, Y: 0.5}) {
		t.Errorf("polygon 0 UV not remapped: %v", polys[0].UVs[1])
	}

	// The written diffuse buffer carries material A's color at its tile.
	handle := provider.created["Atlas_hero_diffuse"]
	if handle == nil || handle.buf == nil {
		t.Fatal("diffuse atlas buffer not written")
	}
	if got := handle.buf.At(10, 10); got[0] != 1 || got[1] != 0 {
		t.Errorf("unexpected diffuse texel at material A tile: %v", got)
	}
}

func TestBuildNamePrefixOption(t *testing.T) {
	lookup := mapLookup{
		"a": {RoleDiffuse: newFakeTexture("a_d", 64, 64, [4]float32{1, 1, 1, 1})},
		"b": {RoleDiffuse: newFakeTexture("b_d", 64, 64, [4]float32{1, 1, 1, 1})},
	}
	provider := newFakeProvider()
	b := NewBuilder(provider, lookup, Options{Roles: []Role{RoleDiffuse}, NamePrefix: "Baked"}, nil)

	res, err := b.Build("x", []Material{MaterialName("a"), MaterialName("b")}, nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if _, ok := provider.created["Baked_x_diffuse"]; !ok {
		t.Errorf("expected Baked_x_diffuse to be created, have %v", res.Images)
	}
}
