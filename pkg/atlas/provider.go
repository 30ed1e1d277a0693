package atlas

import "github.com/Faultbox/atlaskit/pkg/texel"

// Handle identifies a texture owned by an ImageProvider. Dimensions are
// available without loading pixel data so footprint analysis stays cheap.
type Handle interface {
	Name() string
	Width() int
	Height() int
}

// ImageProvider gives the engine access to texture pixel storage. The
// host application (or a file-backed stand-in) owns the representation.
type ImageProvider interface {
	// Pixels returns the texel data for a handle.
	Pixels(h Handle) (*texel.Buffer, error)
	// Create allocates a new writable image of the given size.
	Create(name string, width, height int) (Handle, error)
	// Write replaces the pixel data of a handle created by this provider.
	Write(h Handle, buf *texel.Buffer) error
	// Save persists a handle's pixel data to durable storage.
	Save(h Handle) error
}

// Material is an opaque reference to a host material. The engine only
// needs a stable name for logging and output naming.
type Material interface {
	Name() string
}

// MaterialName is the trivial Material implementation for hosts that
// identify materials by string.
type MaterialName string

// Name returns the material name.
func (m MaterialName) Name() string { return string(m) }

// ChannelLookup resolves the texture bound to a material channel.
// Returning ok=false means the channel is unbound, which is a valid
// state, not an error.
type ChannelLookup interface {
	FindTexture(mat Material, role Role) (Handle, bool)
}

// ChannelLookupFunc adapts a function to the ChannelLookup interface.
type ChannelLookupFunc func(mat Material, role Role) (Handle, bool)

// FindTexture calls f.
func (f ChannelLookupFunc) FindTexture(mat Material, role Role) (Handle, bool) {
	return f(mat, role)
}
