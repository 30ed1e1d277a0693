// Package provider implements the engine's image access interfaces over
// loose image files, standing in for a host application's image storage.
package provider

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/image/bmp"

	"github.com/Faultbox/atlaskit/pkg/atlas"
	"github.com/Faultbox/atlaskit/pkg/texel"
)

// FileProvider loads source textures from disk and persists created
// atlas images as PNG files under an output directory. Loaded handles
// are cached by path.
type FileProvider struct {
	outDir string

	mu      sync.RWMutex
	byPath  map[string]*fileHandle
	created map[string]*fileHandle
}

// fileHandle is a texture handle backed by a file or an in-memory
// created image.
type fileHandle struct {
	name   string
	path   string
	width  int
	height int
	buf    *texel.Buffer
}

func (h *fileHandle) Name() string { return h.name }
func (h *fileHandle) Width() int   { return h.width }
func (h *fileHandle) Height() int  { return h.height }

// NewFileProvider creates a provider that writes created images under
// outDir.
func NewFileProvider(outDir string) *FileProvider {
	return &FileProvider{
		outDir:  outDir,
		byPath:  make(map[string]*fileHandle),
		created: make(map[string]*fileHandle),
	}
}

// Load reads and decodes an image file into a cached handle.
// PNG, TGA and BMP sources are supported.
func (p *FileProvider) Load(path string) (atlas.Handle, error) {
	p.mu.RLock()
	if h, ok := p.byPath[path]; ok {
		p.mu.RUnlock()
		return h, nil
	}
	p.mu.RUnlock()

	buf, err := decodeFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading texture %s: %w", path, err)
	}

	h := &fileHandle{
		name:   strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		path:   path,
		width:  buf.Width(),
		height: buf.Height(),
		buf:    buf,
	}
	p.mu.Lock()
	p.byPath[path] = h
	p.mu.Unlock()
	return h, nil
}

// Pixels returns the texel data of a handle owned by this provider.
func (p *FileProvider) Pixels(h atlas.Handle) (*texel.Buffer, error) {
	fh, ok := h.(*fileHandle)
	if !ok {
		return nil, fmt.Errorf("foreign handle %s", h.Name())
	}
	if fh.buf == nil {
		return nil, fmt.Errorf("handle %s has no pixel data", fh.name)
	}
	return fh.buf, nil
}

// Create allocates a new zero-filled image that will be saved as
// <outDir>/<name>.png.
func (p *FileProvider) Create(name string, width, height int) (atlas.Handle, error) {
	buf, err := texel.New(width, height)
	if err != nil {
		return nil, fmt.Errorf("creating image %s: %w", name, err)
	}
	h := &fileHandle{
		name:   name,
		path:   filepath.Join(p.outDir, name+".png"),
		width:  width,
		height: height,
		buf:    buf,
	}
	p.mu.Lock()
	p.created[name] = h
	p.mu.Unlock()
	return h, nil
}

// Write replaces the pixel data of a handle created by this provider.
func (p *FileProvider) Write(h atlas.Handle, buf *texel.Buffer) error {
	fh, ok := h.(*fileHandle)
	if !ok {
		return fmt.Errorf("foreign handle %s", h.Name())
	}
	if buf.Width() != fh.width || buf.Height() != fh.height {
		return fmt.Errorf("buffer size %dx%d does not match image %s (%dx%d)",
			buf.Width(), buf.Height(), fh.name, fh.width, fh.height)
	}
	fh.buf = buf
	return nil
}

// Save encodes the handle's pixel data as a PNG at its path.
func (p *FileProvider) Save(h atlas.Handle) error {
	fh, ok := h.(*fileHandle)
	if !ok {
		return fmt.Errorf("foreign handle %s", h.Name())
	}
	if fh.buf == nil {
		return fmt.Errorf("handle %s has no pixel data to save", fh.name)
	}
	if err := os.MkdirAll(filepath.Dir(fh.path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(fh.path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", fh.path, err)
	}
	defer f.Close()

	if err := png.Encode(f, fh.buf.ToImage()); err != nil {
		return fmt.Errorf("encoding %s: %w", fh.path, err)
	}
	return nil
}

// Path returns the on-disk path a handle is (or will be) saved at, or ""
// for handles this provider does not own.
func (p *FileProvider) Path(h atlas.Handle) string {
	if fh, ok := h.(*fileHandle); ok {
		return fh.path
	}
	return ""
}

func decodeFile(path string) (*texel.Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".tga":
		return DecodeTGA(data)
	case ".bmp":
		img, err := bmp.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decoding BMP: %w", err)
		}
		return texel.FromImage(img), nil
	case ".png":
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decoding PNG: %w", err)
		}
		return texel.FromImage(img), nil
	default:
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decoding image: %w", err)
		}
		return texel.FromImage(img), nil
	}
}
