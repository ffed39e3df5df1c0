package core

import (
	"strings"
)

// Cell is a single character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

// blankCell is what Clear writes into every position.
var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a row-major character buffer. Games draw into it and the host
// turns it into terminal output.
type Screen struct {
	width  int
	height int
	cells  []Cell
}

// NewScreen creates a cleared screen of the given size.
// Negative sizes are treated as zero.
func NewScreen(width, height int) *Screen {
	s := &Screen{width: max(width, 0), height: max(height, 0)}
	s.cells = make([]Cell, s.width*s.height)
	s.Clear()
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Resize changes the dimensions, keeping the overlapping top-left content.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	next := NewScreen(width, height)
	for y := range min(s.height, height) {
		copy(next.cells[y*width:y*width+min(s.width, width)], s.cells[y*s.width:])
	}
	*s = *next
}

// Clear fills the entire screen with uncoloured spaces.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell
	}
}

// Set places a rune at the given position using the default color.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColored(x, y, r, ColorDefault)
}

// SetColored places a colored rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if !s.inside(x, y) {
		return
	}
	s.cells[y*s.width+x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at the given position, or a space when out of bounds.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inside(x, y) {
		return blankCell
	}
	return s.cells[y*s.width+x]
}

// DrawText writes a string horizontally starting at (x, y), clipped to the screen.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

// DrawTextColored writes a colored string horizontally starting at (x, y).
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.SetColored(x+i, y, r, c)
		i++
	}
}

// DrawRect fills a rectangular area with the given rune.
func (s *Screen) DrawRect(r Rect, fill rune) {
	s.DrawRectColored(r, fill, ColorDefault)
}

// DrawRectColored fills a rectangular area with the given colored rune.
func (s *Screen) DrawRectColored(r Rect, fill rune, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetColored(x, y, fill, c)
		}
	}
}

// DrawBox outlines r with box-drawing characters. Rectangles smaller than
// 2x2 are ignored.
func (s *Screen) DrawBox(r Rect) {
	if r.W < 2 || r.H < 2 {
		return
	}
	right, bottom := r.Right()-1, r.Bottom()-1

	s.Set(r.X, r.Y, '┌')
	s.Set(right, r.Y, '┐')
	s.Set(r.X, bottom, '└')
	s.Set(right, bottom, '┘')

	for x := r.X + 1; x < right; x++ {
		s.Set(x, r.Y, '─')
		s.Set(x, bottom, '─')
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.Set(r.X, y, '│')
		s.Set(right, y, '│')
	}
}

// DrawHLineColored draws a colored horizontal line from (x, y).
func (s *Screen) DrawHLineColored(x, y, length int, r rune, c Color) {
	for i := range length {
		s.SetColored(x+i, y, r, c)
	}
}

// String returns the runes without colour, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(len(s.cells) + s.height)

	for y := range s.height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range s.cells[y*s.width : (y+1)*s.width] {
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}
