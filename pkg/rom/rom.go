// Package rom loads ROM images into a bus.Memory — the thin, swappable
// default a host needs to actually drive the core end to end.
package rom

import (
	"fmt"
	"os"

	"github.com/oisee/i8080/pkg/bus"
)

// LoadFile reads a single raw ROM image from path and loads it into mem at
// base. A missing or unreadable file returns a wrapped error so the caller
// can tell a load failure apart from a decode error.
func LoadFile(mem *bus.Memory, base uint16, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("rom: load %s: %w", path, err)
	}
	mem.Load(data, base)
	return nil
}

// LoadSegments concatenates and loads a sequence of ROM segments at base —
// Space Invaders ships its ~8 KiB program as four 2 KiB segments
// (invaders.h, invaders.g, invaders.f, invaders.e) that must land
// contiguously starting at $0000.
func LoadSegments(mem *bus.Memory, base uint16, segments ...[]byte) {
	offset := base
	for _, seg := range segments {
		mem.Load(seg, offset)
		offset += uint16(len(seg))
	}
}

// LoadSegmentFiles reads each named file in order and loads them
// contiguously at base, per LoadSegments. Returns a wrapped error on the
// first segment that fails to read — the whole load aborts rather than
// leaving memory partially populated.
func LoadSegmentFiles(mem *bus.Memory, base uint16, paths ...string) error {
	segments := make([][]byte, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("rom: load segment %s: %w", path, err)
		}
		segments = append(segments, data)
	}
	LoadSegments(mem, base, segments...)
	return nil
}
