package atlas

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/atlaskit/pkg/texel"
)

// Compositor resamples material textures into per-role atlas buffers.
type Compositor struct {
	provider ImageProvider
	log      *zap.Logger

	// Backgrounds overrides the default background color per role.
	Backgrounds map[Role][4]float32
}

// NewCompositor creates a compositor. A nil logger disables logging.
func NewCompositor(provider ImageProvider, log *zap.Logger) *Compositor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Compositor{provider: provider, log: log}
}

// Composite builds one atlas buffer per role at the layout's dimensions.
// Each buffer starts as the role's background color; every bound
// material texture is resampled to its tile size, post-processed for its
// role, and pasted (clipped) at its placement. A failure on one
// material/role pair is logged and skipped so the remaining pairs still
// composite; partial success is preferred over total failure.
func (c *Compositor) Composite(descs []Descriptor, layout *Layout, roles []Role) (map[Role]*texel.Buffer, error) {
	out := make(map[Role]*texel.Buffer, len(roles))
	for _, role := range roles {
		buf, err := texel.NewFilled(layout.Width, layout.Height, c.background(role))
		if err != nil {
			return nil, fmt.Errorf("allocating %s atlas buffer: %w", role, err)
		}
		out[role] = buf
	}

	for _, desc := range descs {
		place, ok := layout.Placements[desc.Index]
		if !ok {
			c.log.Warn("material has no placement, skipping",
				zap.String("material", desc.Material.Name()),
				zap.Int("index", desc.Index))
			continue
		}

		for _, role := range roles {
			handle, ok := desc.Textures[role]
			if !ok {
				continue
			}
			tile, err := c.buildTile(desc, role, handle, place)
			if err != nil {
				c.log.Warn("failed compositing channel, skipping",
					zap.String("material", desc.Material.Name()),
					zap.String("role", string(role)),
					zap.Error(err))
				continue
			}
			out[role].CopyRegion(tile, place.X, place.Y)
		}
	}
	return out, nil
}

func (c *Compositor) background(role Role) [4]float32 {
	if rgba, ok := c.Backgrounds[role]; ok {
		return rgba
	}
	return role.Background()
}

// buildTile loads, resamples and post-processes one material channel to
// its tile dimensions.
func (c *Compositor) buildTile(desc Descriptor, role Role, handle Handle, place Placement) (*texel.Buffer, error) {
	src, err := c.provider.Pixels(handle)
	if err != nil {
		return nil, fmt.Errorf("reading pixels of %s: %w", handle.Name(), err)
	}
	tile, err := texel.Resize(src, place.Width, place.Height)
	if err != nil {
		return nil, fmt.Errorf("resampling %s: %w", handle.Name(), err)
	}
	// Resize may hand back the source buffer itself; the post-processing
	// below mutates, so take a copy before touching it.
	if tile == src {
		tile = src.Clone()
	}

	switch role {
	case RoleAlpha:
		// Store the mask as opaque grayscale.
		tile.BroadcastChannel(3)
		tile.FillChannel(3, 1)
	case RoleDiffuse:
		if err := c.packAlpha(desc, tile); err != nil {
			return nil, err
		}
	}
	return tile, nil
}

// packAlpha writes the material's alpha-channel source into the diffuse
// tile's alpha, resampling it to the tile size first when they differ.
// Without an alpha source the diffuse tile is forced opaque.
func (c *Compositor) packAlpha(desc Descriptor, tile *texel.Buffer) error {
	alphaHandle, ok := desc.Textures[RoleAlpha]
	if !ok {
		tile.FillChannel(3, 1)
		return nil
	}
	alphaSrc, err := c.provider.Pixels(alphaHandle)
	if err != nil {
		return fmt.Errorf("reading alpha source %s: %w", alphaHandle.Name(), err)
	}
	alphaBuf, err := texel.Resize(alphaSrc, tile.Width(), tile.Height())
	if err != nil {
		return fmt.Errorf("resampling alpha source %s: %w", alphaHandle.Name(), err)
	}
	return tile.CopyChannel(alphaBuf, 3, 3)
}
