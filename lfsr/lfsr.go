package lfsr

import (
	"errors"
)

// Tap positions, 0-indexed from the least significant bit, for the primitive
// polynomial x^32 + x^22 + x^2 + x^1 + 1. With these taps the register is
// maximal-length: starting from any non-zero state it visits every non-zero
// 32-bit value exactly once per period of 2^32 - 1, and never reaches zero.
const (
	Tap31 = 31
	Tap21 = 21
	Tap1  = 1
	Tap0  = 0
)

// SeedMask truncates wide seeds to the register width.
const SeedMask = 0xFFFFFFFF

// MaxValue is the largest raw value the register can hold, and the upper
// bound of the default sampling range.
const MaxValue = 0xFFFFFFFF

var (
	ErrZeroSeed     = errors.New("seed must be non-zero")
	ErrInvalidRange = errors.New("min must not exceed max")
)

// LFSR32 is a 32-bit maximal-length linear feedback shift register. Each
// instance owns an independent sequence; it is not safe for concurrent use.
type LFSR32 struct {
	state uint32
}

// New returns a register seeded with the low 32 bits of seed. A seed whose
// low 32 bits are zero is rejected: the all-zero state is a fixed point of
// the feedback function and would never leave it.
func New(seed uint64) (*LFSR32, error) {
	var state = uint32(seed & SeedMask)
	if state == 0 {
		return nil, ErrZeroSeed
	}
	return &LFSR32{state: state}, nil
}

// Advance performs a single register step: the feedback bit is the XOR of
// the four tap bits, the state shifts right one bit, and the feedback bit
// becomes the new bit 31.
func Advance(state uint32) uint32 {
	var feedback = (state>>Tap31 ^ state>>Tap21 ^ state>>Tap1 ^ state>>Tap0) & 1
	return (state >> 1) | (feedback << 31)
}

// Next advances the register one step and returns the new state, which is
// the next raw value of the stream.
func (l *LFSR32) Next() uint32 {
	l.state = Advance(l.state)
	return l.state
}

// RandomInt draws one raw value and maps it into [min, max] inclusive by
// modulo reduction. The mapping carries the usual modulo bias when the range
// size does not divide 2^32; it is kept as-is so sequences stay reproducible.
// An inverted range is rejected without advancing the register, so the
// caller may correct the bounds and retry from the same stream position.
func (l *LFSR32) RandomInt(min, max int64) (int64, error) {
	if min > max {
		return 0, ErrInvalidRange
	}
	var rangeSize = max - min + 1
	return min + int64(l.Next())%rangeSize, nil
}
