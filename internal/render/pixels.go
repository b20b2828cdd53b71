package render

import "image/color"

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// Palette holds the two colors a board is painted with.
type Palette struct {
	Alive color.Color
	Dead  color.Color
}

// DefaultPalette mirrors the text glyphs: dark shade for live cells, light
// shade for dead ones.
var DefaultPalette = Palette{
	Alive: color.RGBA{R: 40, G: 40, B: 48, A: 255},
	Dead:  color.RGBA{R: 214, G: 214, B: 220, A: 255},
}
