package core

import (
	"math"
	"strings"

	"github.com/vovakirdan/mini2d/internal/geom"
)

// Cell is a single character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a 2D cell buffer for rendering demos.
// It decouples demo rendering from the terminal: demos draw runes and colors,
// the platform layer turns the buffer into styled output.
//
// World coordinates map one unit to one cell; the cell (x, y) covers the
// square [x, x+1) x [y, y+1) and is sampled at its center.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the whole screen as a cell box.
func (s *Screen) Bounds() CellRect {
	return CellRect{W: s.width, H: s.height}
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	for y := range min(oldH, height) {
		copy(s.cells[y][:min(oldW, width)], oldCells[y])
	}
}

// Clear fills the entire screen with blank default-colored cells.
func (s *Screen) Clear() {
	s.Fill(' ')
}

// Fill fills the entire screen with the given rune in the default color.
func (s *Screen) Fill(r rune) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: r}
		}
	}
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Set places a rune at the given position in the default color.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColor(x, y, r, ColorDefault)
}

// SetColor places a colored rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetColor(x, y int, r rune, c Color) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at the given position, or space when out of bounds.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position, or a blank cell when out
// of bounds.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return blankCell
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColor(x, y, text, ColorDefault)
}

// DrawTextColor writes a colored string horizontally starting at (x, y).
func (s *Screen) DrawTextColor(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.SetColor(x+i, y, r, c)
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text)
}

// DrawRect fills a cell box with the given rune.
func (s *Screen) DrawRect(r CellRect, fill rune, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetColor(x, y, fill, c)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r CellRect, c Color) {
	if r.W < 2 || r.H < 2 {
		return
	}

	s.SetColor(r.X, r.Y, '┌', c)
	s.SetColor(r.Right()-1, r.Y, '┐', c)
	s.SetColor(r.X, r.Bottom()-1, '└', c)
	s.SetColor(r.Right()-1, r.Bottom()-1, '┘', c)

	for x := r.X + 1; x < r.Right()-1; x++ {
		s.SetColor(x, r.Y, '─', c)
		s.SetColor(x, r.Bottom()-1, '─', c)
	}

	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.SetColor(r.X, y, '│', c)
		s.SetColor(r.Right()-1, y, '│', c)
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, r rune) {
	for i := range length {
		s.Set(x+i, y, r)
	}
}

// DrawVLine draws a vertical line from (x, y) with the given length.
func (s *Screen) DrawVLine(x, y, length int, r rune) {
	for i := range length {
		s.Set(x, y+i, r)
	}
}

// cellSpan returns the range of cell indices whose centers may fall in
// [lo, hi], clipped to [0, limit).
func cellSpan(lo, hi float64, limit int) (int, int) {
	from := int(math.Floor(lo - 0.5))
	to := int(math.Ceil(hi - 0.5))
	return max(from, 0), min(to, limit-1)
}

// FillPolygon fills every cell whose center lies inside the convex polygon.
// Outlines with fewer than three points are drawn as segments.
func (s *Screen) FillPolygon(points []geom.Vector2, r rune, c Color) {
	switch len(points) {
	case 0:
		return
	case 1:
		s.plot(points[0], r, c)
		return
	case 2:
		s.DrawSegment(points[0], points[1], r, c)
		return
	}

	b := geom.BoundsOf(points...)
	x0, x1 := cellSpan(b.Min.X, b.Max.X, s.width)
	y0, y1 := cellSpan(b.Min.Y, b.Max.Y, s.height)

	drawn := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if geom.ContainsPoint(points, geom.Vec(float64(x)+0.5, float64(y)+0.5)) {
				s.SetColor(x, y, r, c)
				drawn = true
			}
		}
	}

	// Shapes thinner than a cell still leave a mark.
	if !drawn {
		s.plot(b.Center(), r, c)
	}
}

// FillCircle fills every cell whose center lies within radius of center.
func (s *Screen) FillCircle(center geom.Vector2, radius float64, r rune, c Color) {
	x0, x1 := cellSpan(center.X-radius, center.X+radius, s.width)
	y0, y1 := cellSpan(center.Y-radius, center.Y+radius, s.height)

	drawn := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p := geom.Vec(float64(x)+0.5, float64(y)+0.5)
			if geom.DistanceFrom(center, p) <= radius {
				s.SetColor(x, y, r, c)
				drawn = true
			}
		}
	}

	if !drawn {
		s.plot(center, r, c)
	}
}

// DrawSegment draws a straight line between two world points.
func (s *Screen) DrawSegment(a, b geom.Vector2, r rune, c Color) {
	d := b.Sub(a)
	steps := int(math.Ceil(math.Max(math.Abs(d.X), math.Abs(d.Y))))
	if steps == 0 {
		s.plot(a, r, c)
		return
	}
	step := d.DivScalar(float64(steps))
	p := a
	for range steps + 1 {
		s.plot(p, r, c)
		p = p.Add(step)
	}
}

// plot sets the cell containing the world point p.
func (s *Screen) plot(p geom.Vector2, r rune, c Color) {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return
	}
	s.SetColor(int(math.Floor(p.X)), int(math.Floor(p.Y)), r, c)
}

// String converts the screen buffer to a plain string without colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := range s.height {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := range s.width {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the runes of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
