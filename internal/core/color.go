package core

// RGBA is a linear color with components in [0, 1].
type RGBA [4]float32

// Common colors.
var (
	White       = RGBA{1, 1, 1, 1}
	Red         = RGBA{1, 0, 0, 1}
	Transparent = RGBA{0, 0, 0, 0}
)

// Visible reports whether the color has any alpha.
func (c RGBA) Visible() bool {
	return c[3] > 0
}

// Color is a terminal foreground color for a screen cell.
type Color uint8

// Terminal palette.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// paletteRGB holds the approximate xterm value of each palette entry.
var paletteRGB = []struct {
	c   Color
	rgb [3]float32
}{
	{ColorRed, [3]float32{0.8, 0, 0}},
	{ColorGreen, [3]float32{0, 0.8, 0}},
	{ColorYellow, [3]float32{0.8, 0.8, 0}},
	{ColorBlue, [3]float32{0, 0, 0.8}},
	{ColorMagenta, [3]float32{0.8, 0, 0.8}},
	{ColorCyan, [3]float32{0, 0.8, 0.8}},
	{ColorWhite, [3]float32{0.75, 0.75, 0.75}},
	{ColorBrightRed, [3]float32{1, 0.2, 0.2}},
	{ColorBrightGreen, [3]float32{0.2, 1, 0.2}},
	{ColorBrightYellow, [3]float32{1, 1, 0.2}},
	{ColorBrightBlue, [3]float32{0.35, 0.35, 1}},
	{ColorBrightMagenta, [3]float32{1, 0.35, 1}},
	{ColorBrightCyan, [3]float32{0.35, 1, 1}},
	{ColorBrightWhite, [3]float32{1, 1, 1}},
	{ColorOrange, [3]float32{1, 0.53, 0}},
	{ColorGray, [3]float32{0.54, 0.54, 0.54}},
}

// Nearest maps c onto the closest palette entry by squared distance.
// Invisible colors map to ColorDefault.
func (c RGBA) Nearest() Color {
	if !c.Visible() {
		return ColorDefault
	}
	best, bestDist := ColorDefault, float32(1e9)
	for _, p := range paletteRGB {
		dr := c[0] - p.rgb[0]
		dg := c[1] - p.rgb[1]
		db := c[2] - p.rgb[2]
		if d := dr*dr + dg*dg + db*db; d < bestDist {
			best, bestDist = p.c, d
		}
	}
	return best
}
