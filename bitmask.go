package scenecmd

import (
	"math/bits"
)

// Bitmask is a 256-bit bitmask used for tracking which component types
// are present on an entity. It supports up to 256 unique component types.
type Bitmask [4]uint64

// Set sets the bit at the given index.
func (m *Bitmask) Set(id ComponentID) {
	m[id/64] |= 1 << (id % 64)
}

// Clear clears the bit at the given index.
func (m *Bitmask) Clear(id ComponentID) {
	m[id/64] &^= 1 << (id % 64)
}

// Has returns true if the bit at the given index is set.
func (m *Bitmask) Has(id ComponentID) bool {
	return m[id/64]&(1<<(id%64)) != 0
}

// IsZero returns true if no bits are set.
func (m *Bitmask) IsZero() bool {
	return m[0] == 0 && m[1] == 0 && m[2] == 0 && m[3] == 0
}

// Count returns the number of bits set.
func (m *Bitmask) Count() int {
	return bits.OnesCount64(m[0]) +
		bits.OnesCount64(m[1]) +
		bits.OnesCount64(m[2]) +
		bits.OnesCount64(m[3])
}

// Equals returns true if both bitmasks are identical.
func (m *Bitmask) Equals(other Bitmask) bool {
	return m[0] == other[0] &&
		m[1] == other[1] &&
		m[2] == other[2] &&
		m[3] == other[3]
}

// ForEach calls fn for every set bit in ascending component ID order.
// Encoding walks the mask this way so serialized component order is
// deterministic.
func (m *Bitmask) ForEach(fn func(ComponentID)) {
	for word := 0; word < 4; word++ {
		w := m[word]
		for w != 0 {
			bit := bits.TrailingZeros64(w)
			fn(ComponentID(word*64 + bit))
			w &= w - 1
		}
	}
}
