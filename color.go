package stage

import "github.com/go-gl/mathgl/mgl32"

// Color is a 32-bit packed color, one byte per channel.
// Channel order is A, R, G, B with alpha in the most significant byte,
// so opaque black is 0xFF000000. The zero value is fully transparent.
//
// Color is small, comparable and hashable, which makes it suitable as an
// entity component.
type Color uint32

// Named colors in the packed A/R/G/B layout.
const (
	// ColorTransparent is fully transparent black, the zero value.
	ColorTransparent Color = 0x00000000

	// ColorBlack is opaque black, the default Scene background.
	ColorBlack Color = 0xFF000000

	ColorRed   Color = 0xFFFF0000
	ColorGreen Color = 0xFF00FF00
	ColorBlue  Color = 0xFF0000FF
)

// importChannel quantizes a float channel to 8 bits, clamping
// out-of-range input to [0, 1] first.
func importChannel(v float32) uint32 {
	return uint32(mgl32.Clamp(v, 0, 1)*255.0 + 0.5)
}

// NewColor packs four float channels into a Color. Channels outside
// [0, 1] are clamped. The packing quantizes to 8 bits per channel; for
// already-quantized input the channel accessors reproduce the value
// exactly.
func NewColor(r, g, b, a float32) Color {
	return Color(importChannel(a)<<24 |
		importChannel(r)<<16 |
		importChannel(g)<<8 |
		importChannel(b))
}

// exportChannel unpacks the byte at the given byte index
// (0 = least significant) back to a float in [0, 1].
func (c Color) exportChannel(index uint32) float32 {
	return float32((uint32(c)>>(index<<3))&0xFF) / 255.0
}

// R returns the red channel in [0, 1].
func (c Color) R() float32 { return c.exportChannel(2) }

// G returns the green channel in [0, 1].
func (c Color) G() float32 { return c.exportChannel(1) }

// B returns the blue channel in [0, 1].
func (c Color) B() float32 { return c.exportChannel(0) }

// A returns the alpha channel in [0, 1].
func (c Color) A() float32 { return c.exportChannel(3) }
