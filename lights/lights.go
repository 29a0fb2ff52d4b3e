// Package lights implements a line of lights with a cascading flip rule.
package lights

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-ricrob/lightsolver/internal/packed"
)

// MaxLights is the maximum number of lights of a line.
const MaxLights = 25

var (
	// ErrIndexOutOfBounds is returned when a light outside of the line is addressed.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	// ErrNoLight is returned when a line without any light is constructed.
	ErrNoLight = errors.New("not enough lights to process")
	// ErrTooManyLights is returned when a line exceeds MaxLights.
	ErrTooManyLights = fmt.Errorf("too much lights to process (max is %d)", MaxLights)
)

// Lights is a fixed length line of lights.
// Light 0 is the leftmost light of the textual representation.
// Lights values are comparable: two lines are equal iff their lengths and all lights match.
type Lights struct {
	bits packed.Bits
	n    uint8
}

// New returns a line of lights with the given values.
func New(values ...bool) (Lights, error) {
	if err := checkLen(len(values)); err != nil {
		return Lights{}, err
	}
	return Lights{bits: packed.Pack(values), n: uint8(len(values))}, nil
}

// Parse parses a line of lights. '1' is a lit light, '0' an unlit one,
// any other character is dropped before the length is checked.
func Parse(s string) (Lights, error) {
	var values []bool
	for _, r := range s {
		switch r {
		case '1':
			values = append(values, true)
		case '0':
			values = append(values, false)
		}
	}
	return New(values...)
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Lights {
	l, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return l
}

func checkLen(n int) error {
	switch {
	case n == 0:
		return ErrNoLight
	case n > MaxLights:
		return ErrTooManyLights
	}
	return nil
}

// Len returns the number of lights.
func (l Lights) Len() int { return int(l.n) }

// At reports whether light idx is lit. Lights out of bounds are unlit.
func (l Lights) At(idx int) bool { return l.inBounds(idx) && l.bits.Get(idx) }

// Values returns the lights as a slice.
func (l Lights) Values() []bool {
	values := make([]bool, l.n)
	packed.Unpack(l.bits, values)
	return values
}

// Equal reports whether l and other have the same length and lights.
func (l Lights) Equal(other Lights) bool { return l == other }

func (l Lights) inBounds(idx int) bool { return idx >= 0 && idx < int(l.n) }

// Flip toggles light idx.
func (l *Lights) Flip(idx int) error {
	if !l.inBounds(idx) {
		return fmt.Errorf("flip light %d of %d: %w", idx, l.n, ErrIndexOutOfBounds)
	}
	l.bits = l.bits.Toggle(idx)
	return nil
}

// CouldBeFlipped reports whether light idx can be flipped directly:
// the last light always can, any other light only if the light to its right
// is the only lit light of the remaining line.
func (l Lights) CouldBeFlipped(idx int) bool {
	if !l.inBounds(idx) {
		return false
	}
	if idx == int(l.n)-1 {
		return true
	}
	return l.bits.From(idx+1) == 1
}

// FirstDifferentIndex returns the first index from idx on where l and other differ.
// ok is false if both lines are identical from idx on.
func (l Lights) FirstDifferentIndex(other Lights, idx int) (int, bool) {
	if idx < 0 {
		idx = 0
	}
	n := min(l.n, other.n)
	if idx >= int(n) {
		return 0, false
	}
	diff := (l.bits ^ other.bits) & packed.Mask(int(n))
	i, ok := diff.From(idx).Lowest()
	if !ok {
		return 0, false
	}
	return idx + i, true
}

// NeedLightToFlip returns the light which has to be flipped before light idx
// becomes flippable. ok is false if light idx can be flipped directly.
func (l Lights) NeedLightToFlip(idx int) (int, bool) {
	if !l.inBounds(idx) || l.CouldBeFlipped(idx) {
		return 0, false
	}
	if !l.bits.Get(idx + 1) {
		return idx + 1, true
	}
	i, ok := l.bits.From(idx + 2).Lowest()
	if !ok {
		return 0, false
	}
	return idx + 2 + i, true
}

// String returns the textual representation of l.
func (l Lights) String() string {
	var b strings.Builder
	b.Grow(int(l.n))
	for i := 0; i < int(l.n); i++ {
		if l.bits.Get(i) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
