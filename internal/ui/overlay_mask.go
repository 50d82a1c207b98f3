package ui

import "image/color"

// heatAlpha maps a neighbour count (0-8) to the overlay opacity. Counts that
// keep or create a live cell under B3/S23 stand out the most.
var heatAlpha = [9]uint8{0, 20, 70, 150, 110, 90, 80, 70, 60}

// fillHeatRGBA tints each cell by its neighbour count.
func fillHeatRGBA(buf []byte, counts []uint8, tint color.RGBA) {
	for i, n := range counts {
		base := i * 4
		if int(n) >= len(heatAlpha) {
			n = uint8(len(heatAlpha) - 1)
		}
		a := heatAlpha[n]
		// Premultiplied alpha, as ebiten images expect.
		buf[base+0] = uint8(uint16(tint.R) * uint16(a) / 255)
		buf[base+1] = uint8(uint16(tint.G) * uint16(a) / 255)
		buf[base+2] = uint8(uint16(tint.B) * uint16(a) / 255)
		buf[base+3] = a
	}
}
