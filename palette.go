package scribe

// Palette is a fixed ordered list of opaque drawing colors. The session
// advances a cursor through it modulo length; the cursor's color becomes the
// default for the next stroke drawn and never recolors existing strokes.
type Palette []Color

// DefaultPalette returns the stock eight-color palette.
func DefaultPalette() Palette {
	return Palette{
		{R: 0.95, G: 0.95, B: 0.95, A: 1}, // chalk white
		{R: 0.91, G: 0.30, B: 0.24, A: 1}, // red
		{R: 0.95, G: 0.61, B: 0.07, A: 1}, // orange
		{R: 0.95, G: 0.85, B: 0.20, A: 1}, // yellow
		{R: 0.18, G: 0.80, B: 0.44, A: 1}, // green
		{R: 0.20, G: 0.60, B: 0.86, A: 1}, // blue
		{R: 0.55, G: 0.35, B: 0.85, A: 1}, // violet
		{R: 0.95, G: 0.45, B: 0.70, A: 1}, // pink
	}
}

// At returns the color at cursor index i, wrapping modulo the palette
// length. Returns ColorWhite for an empty palette.
func (p Palette) At(i int) Color {
	if len(p) == 0 {
		return ColorWhite
	}
	i %= len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

// Next returns the cursor advanced by one position, wrapping modulo the
// palette length.
func (p Palette) Next(i int) int {
	if len(p) == 0 {
		return 0
	}
	return (i + 1) % len(p)
}
