package board

import "sync"

// DefaultColor is the color of a pixel that has never been painted.
const DefaultColor = "#FFFFFF"

// Coord addresses a single cell on the board.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Board is the current-canvas projection. Only painted cells are
// stored; everything else reads as DefaultColor.
type Board struct {
	mu     sync.RWMutex
	width  int
	height int
	pixels map[Coord]string
}

// New creates an empty board of the given dimensions.
func New(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		pixels: make(map[Coord]string),
	}
}

// Width returns the board width in cells.
func (b *Board) Width() int { return b.width }

// Height returns the board height in cells.
func (b *Board) Height() int { return b.height }

// InBounds reports whether (x, y) addresses a cell on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set paints a cell. Out-of-range coordinates are ignored so that a
// replayed log recorded against a larger board cannot corrupt state.
func (b *Board) Set(x, y int, color string) {
	if !b.InBounds(x, y) {
		return
	}
	b.mu.Lock()
	b.pixels[Coord{X: x, Y: y}] = color
	b.mu.Unlock()
}

// Pixel returns the color at (x, y), DefaultColor if never painted.
func (b *Board) Pixel(x, y int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if c, ok := b.pixels[Coord{X: x, Y: y}]; ok {
		return c
	}
	return DefaultColor
}

// Pixels returns a copy of all painted cells.
func (b *Board) Pixels() map[Coord]string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make(map[Coord]string, len(b.pixels))
	for k, v := range b.pixels {
		out[k] = v
	}
	return out
}

// Count returns the number of painted cells.
func (b *Board) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.pixels)
}
