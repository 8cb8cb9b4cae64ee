// Package video implements a pure, read-only projection of the CPU's video
// RAM region into a 1bpp pixel grid. No CPU state is mutated by sampling.
package video

import "github.com/oisee/i8080/pkg/bus"

const (
	// Base is the start of video RAM ($2400).
	Base uint16 = 0x2400
	// Width and Height are the logical display dimensions as stored in
	// memory, before the physical monitor's 90-degree CCW rotation: the
	// arcade hardware's video RAM is addressed as 224 columns of 32 bytes
	// (256 rows) each.
	Width  = 224
	Height = 256
	// bytesPerColumn is the arcade hardware's column-major byte stride.
	bytesPerColumn = 32
	// RegionSize covers the full $2400-$3FFF video RAM window.
	RegionSize = Width * bytesPerColumn
)

// Sample reads mem's video RAM region and writes one uint32 pixel per
// display cell into out, indexed y*Width+x. out must have length
// Width*Height. fg is used where the source bit is 1, bg where it is 0.
//
// The arcade hardware stores pixels column-major in 32-byte columns (224
// columns x 32 bytes). Bit j of byte i at offset Base+i represents display
// column x = i/32, row y = (Height-1) - (i%32*8 + j) — the screen is
// rotated 90 degrees counter-clockwise relative to memory; a host that
// wants the physical landscape orientation rotates this buffer at
// presentation time rather than here.
func Sample(mem *bus.Memory, fg, bg uint32, out []uint32) {
	region := mem.Slice(Base, RegionSize)
	for i, b := range region {
		x := i / bytesPerColumn
		base := (i % bytesPerColumn) * 8
		for j := 0; j < 8; j++ {
			y := (Height - 1) - (base + j)
			color := bg
			if b&(1<<uint(j)) != 0 {
				color = fg
			}
			out[y*Width+x] = color
		}
	}
}

// NewFrame allocates a pixel buffer of the right size for Sample.
func NewFrame() []uint32 {
	return make([]uint32, Width*Height)
}
