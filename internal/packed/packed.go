// Package packed provides a memory efficient representation of a line of lights.
package packed

import "math/bits"

// MaxLen is the maximum number of values a Bits word can hold.
const MaxLen = 32

// Bits is a compressed representation of up to 32 boolean values.
// Bit i holds value i.
type Bits uint32

// Get returns value idx of b.
func (b Bits) Get(idx int) bool { return b&(1<<uint(idx)) != 0 }

// Toggle inverts value idx of b and returns the result.
func (b Bits) Toggle(idx int) Bits { return b ^ (1 << uint(idx)) }

// Set sets value idx of b to v and returns the result.
func (b Bits) Set(idx int, v bool) Bits {
	if v {
		return b | (1 << uint(idx))
	}
	return b &^ (1 << uint(idx))
}

// From returns b shifted so that value idx becomes value 0.
func (b Bits) From(idx int) Bits { return b >> uint(idx) }

// Lowest returns the index of the lowest set value of b.
func (b Bits) Lowest() (int, bool) {
	if b == 0 {
		return 0, false
	}
	return bits.TrailingZeros32(uint32(b)), true
}

// Mask returns the word with the values below n set.
func Mask(n int) Bits {
	if n >= MaxLen {
		return ^Bits(0)
	}
	return Bits(1)<<uint(n) - 1
}

// Pack returns a packed representation of values.
func Pack(values []bool) Bits {
	var b Bits
	for i, v := range values {
		b = b.Set(i, v)
	}
	return b
}

// Unpack stores the first len(values) values of b into values.
func Unpack(b Bits, values []bool) {
	for i := range values {
		values[i] = b.Get(i)
	}
}
