package render

import (
	"image"
	"image/color"

	"life/pkg/core"
)

// fillBinaryRGBA converts cell states into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []core.Cell, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c {
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

// CellRect returns the screen rectangle covered by grid cell (x, y).
func CellRect(x, y, cellSize int) image.Rectangle {
	return image.Rect(x*cellSize, y*cellSize, (x+1)*cellSize, (y+1)*cellSize)
}
