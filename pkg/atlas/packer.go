package atlas

import (
	"errors"
	"fmt"
	"sort"

	"github.com/chewxy/math32"

	"github.com/Faultbox/atlaskit/pkg/geom"
)

// MinAtlasDim is the smallest allowed atlas edge. Final dimensions are
// always powers of two and at least this large.
const MinAtlasDim = 64

// ErrNoItems is returned when Pack is called with nothing to place.
// An atlas build requires at least one material; an empty input is a
// caller precondition violation.
var ErrNoItems = errors.New("atlas: no items to pack")

// Item is one rectangle to place, identified by its material index.
type Item struct {
	ID     int
	Width  int
	Height int
}

// Placement is the tile assigned to one material within the atlas, in
// atlas pixel space.
type Placement struct {
	Index  int
	X, Y   int
	Width  int
	Height int
}

// Rect returns the placement as a pixel rectangle.
func (p Placement) Rect() geom.Rect {
	return geom.RectXYWH(p.X, p.Y, p.Width, p.Height)
}

// UVTransform returns the affine transform mapping per-material UVs in
// [0,1] into the tile's normalized sub-rectangle of the atlas:
// uv' = uv*scale + offset.
func (p Placement) UVTransform(atlasWidth, atlasHeight int) (scale, offset geom.Vec2) {
	scale = geom.Vec2{
		X: float32(p.Width) / float32(atlasWidth),
		Y: float32(p.Height) / float32(atlasHeight),
	}
	offset = geom.Vec2{
		X: float32(p.X) / float32(atlasWidth),
		Y: float32(p.Y) / float32(atlasHeight),
	}
	return scale, offset
}

// Layout is the result of packing: final power-of-two atlas dimensions
// and one placement per item ID.
type Layout struct {
	Width      int
	Height     int
	Placements map[int]Placement

	// Efficiency is total item area over atlas area. Diagnostic only.
	Efficiency float64
}

// shelf is one horizontal row of the packing. nextX is where the next
// item on this shelf would start.
type shelf struct {
	y      int
	height int
	nextX  int
}

// Pack arranges the items into a power-of-two atlas using shelf packing.
// Items are placed in descending area order (stable for equal areas) into
// the shelf with minimal vertical waste; a new shelf opens when none
// fits. Packing is non-overlapping but not guaranteed optimal.
func Pack(items []Item) (*Layout, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Width*sorted[i].Height > sorted[j].Width*sorted[j].Height
	})

	totalArea := 0
	maxItemWidth := 0
	for _, it := range sorted {
		if it.Width <= 0 || it.Height <= 0 {
			return nil, fmt.Errorf("atlas: item %d has invalid dimensions %dx%d", it.ID, it.Width, it.Height)
		}
		totalArea += it.Width * it.Height
		if it.Width > maxItemWidth {
			maxItemWidth = it.Width
		}
	}

	// Seed a roughly square packing: limit shelf width to the next power
	// of two above the square side, never narrower than the widest item.
	side := int(math32.Ceil(math32.Sqrt(float32(totalArea))))
	widthLimit := pow2Ceil(max(side, maxItemWidth))

	var shelves []shelf
	height := 0
	placements := make(map[int]Placement, len(sorted))

	for _, it := range sorted {
		// Best fit by minimal vertical waste; on ties the first shelf in
		// list order wins (strict <).
		best := -1
		bestWaste := 0
		for i, sh := range shelves {
			if it.Height > sh.height || sh.nextX+it.Width > widthLimit {
				continue
			}
			waste := sh.height - it.Height
			if best == -1 || waste < bestWaste {
				best = i
				bestWaste = waste
			}
		}

		if best == -1 {
			shelves = append(shelves, shelf{y: height, height: it.Height})
			best = len(shelves) - 1
			height += it.Height
		}

		sh := &shelves[best]
		placements[it.ID] = Placement{
			Index:  it.ID,
			X:      sh.nextX,
			Y:      sh.y,
			Width:  it.Width,
			Height: it.Height,
		}
		sh.nextX += it.Width
	}

	usedWidth := 0
	for _, sh := range shelves {
		if sh.nextX > usedWidth {
			usedWidth = sh.nextX
		}
	}

	layout := &Layout{
		Width:      pow2Ceil(max(usedWidth, MinAtlasDim)),
		Height:     pow2Ceil(max(height, MinAtlasDim)),
		Placements: placements,
	}
	layout.Efficiency = float64(totalArea) / float64(layout.Width*layout.Height)
	return layout, nil
}

// pow2Ceil returns the smallest power of two >= n.
func pow2Ceil(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
