package atlas

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrNoMaterials is returned when Build is invoked with an empty
// material list.
var ErrNoMaterials = errors.New("atlas: no materials to build from")

// Outcome distinguishes a completed build from a legitimate early exit.
type Outcome int

const (
	// OutcomeBuilt means atlas buffers were produced and written.
	OutcomeBuilt Outcome = iota
	// OutcomeSkipped means the build was a no-op: the material count is
	// already at or below the target. Skipping is not a failure.
	OutcomeSkipped
)

// Options configures an atlas build. The zero value selects all roles,
// the default footprint fallback and a target count of one.
type Options struct {
	// Roles to composite. Empty selects AllRoles.
	Roles []Role
	// FallbackSize is the footprint for textureless materials.
	// Non-positive selects DefaultFootprint.
	FallbackSize int
	// TargetCount is the material count at or below which building is
	// skipped as a no-op. Non-positive selects 1.
	TargetCount int
	// NamePrefix prefixes output image names. Empty selects "Atlas".
	NamePrefix string
	// Backgrounds overrides the default background color per role.
	Backgrounds map[Role][4]float32
}

// WithDefaults returns the options with zero values replaced by their
// defaults.
func (o Options) WithDefaults() Options {
	if len(o.Roles) == 0 {
		o.Roles = AllRoles
	}
	if o.TargetCount <= 0 {
		o.TargetCount = 1
	}
	if o.NamePrefix == "" {
		o.NamePrefix = "Atlas"
	}
	return o
}

// Result is the outcome of one atlas build.
type Result struct {
	Outcome Outcome
	// Reason is set when the build was skipped.
	Reason string

	Layout *Layout
	// Images holds one created output image per composited role.
	Images map[Role]Handle
	// Materials is the number of materials that went into the atlas.
	Materials int
}

// Builder runs the full atlas pipeline: footprint analysis, packing,
// compositing, UV remapping and output image creation. It is
// single-threaded and assumes exclusive access to the mesh UVs and all
// texel buffers for the duration of one Build call.
type Builder struct {
	provider ImageProvider
	lookup   ChannelLookup
	opts     Options
	log      *zap.Logger
}

// NewBuilder creates a builder over the given collaborators. A nil
// logger disables logging.
func NewBuilder(provider ImageProvider, lookup ChannelLookup, opts Options, log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{
		provider: provider,
		lookup:   lookup,
		opts:     opts.WithDefaults(),
		log:      log,
	}
}

// Build creates the atlas for the given materials, remaps the polygons'
// UVs in place, and writes one output image per role named
// "<prefix>_<name>_<role>". An empty material list is a caller error;
// a material count at or below the target count yields a Skipped result.
func (b *Builder) Build(name string, materials []Material, polygons []Polygon) (*Result, error) {
	if len(materials) == 0 {
		return nil, ErrNoMaterials
	}
	if len(materials) <= b.opts.TargetCount {
		b.log.Info("material count already at target, skipping atlas",
			zap.String("name", name),
			zap.Int("materials", len(materials)),
			zap.Int("target", b.opts.TargetCount))
		return &Result{
			Outcome:   OutcomeSkipped,
			Reason:    fmt.Sprintf("%d material(s) already within target of %d", len(materials), b.opts.TargetCount),
			Materials: len(materials),
		}, nil
	}

	descs := Analyze(b.lookup, materials, b.opts.Roles, b.opts.FallbackSize)

	items := make([]Item, len(descs))
	for i, d := range descs {
		items[i] = Item{ID: d.Index, Width: d.Width, Height: d.Height}
	}
	layout, err := Pack(items)
	if err != nil {
		return nil, fmt.Errorf("packing %d materials: %w", len(items), err)
	}
	b.log.Info("packed atlas layout",
		zap.String("name", name),
		zap.Int("materials", len(materials)),
		zap.Int("width", layout.Width),
		zap.Int("height", layout.Height),
		zap.Float64("efficiency", layout.Efficiency))

	compositor := NewCompositor(b.provider, b.log)
	compositor.Backgrounds = b.opts.Backgrounds
	buffers, err := compositor.Composite(descs, layout, b.opts.Roles)
	if err != nil {
		return nil, fmt.Errorf("compositing atlas %s: %w", name, err)
	}

	RemapUVs(polygons, layout)

	images := make(map[Role]Handle, len(buffers))
	for _, role := range b.opts.Roles {
		imageName := fmt.Sprintf("%s_%s_%s", b.opts.NamePrefix, name, role)
		handle, err := b.provider.Create(imageName, layout.Width, layout.Height)
		if err != nil {
			return nil, fmt.Errorf("creating atlas image %s: %w", imageName, err)
		}
		if err := b.provider.Write(handle, buffers[role]); err != nil {
			return nil, fmt.Errorf("writing atlas image %s: %w", imageName, err)
		}
		if err := b.provider.Save(handle); err != nil {
			return nil, fmt.Errorf("saving atlas image %s: %w", imageName, err)
		}
		images[role] = handle
	}

	b.log.Info("created atlas",
		zap.String("name", name),
		zap.Int("materials", len(materials)),
		zap.Int("polygons", len(polygons)),
		zap.Int("images", len(images)))

	return &Result{
		Outcome:   OutcomeBuilt,
		Layout:    layout,
		Images:    images,
		Materials: len(materials),
	}, nil
}
