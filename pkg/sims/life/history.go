package life

import (
	"crypto/md5"

	"life/pkg/core"
)

// History remembers hashes of recent boards to detect when a run has settled
// into a still life or a short cycle.
type History struct {
	size   int
	hashes [][md5.Size]byte
	buf    []byte
}

// NewHistory keeps the last size boards. Periods longer than size go unnoticed.
func NewHistory(size int) *History {
	if size <= 0 {
		size = 1
	}
	return &History{size: size}
}

// Observe records cells and returns the period of the cycle they close, or 0
// when the board has not been seen within the window.
func (h *History) Observe(cells []core.Cell) int {
	sum := h.hash(cells)
	period := 0
	for i := len(h.hashes) - 1; i >= 0; i-- {
		if h.hashes[i] == sum {
			period = len(h.hashes) - i
			break
		}
	}
	h.hashes = append(h.hashes, sum)
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
	return period
}

// Reset forgets every recorded board.
func (h *History) Reset() {
	h.hashes = h.hashes[:0]
}

func (h *History) hash(cells []core.Cell) [md5.Size]byte {
	if cap(h.buf) < len(cells) {
		h.buf = make([]byte, len(cells))
	}
	h.buf = h.buf[:len(cells)]
	for i, c := range cells {
		if c {
			h.buf[i] = 1
		} else {
			h.buf[i] = 0
		}
	}
	return md5.Sum(h.buf)
}
