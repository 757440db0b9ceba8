package utils

import (
	"crypto/rand"
	"encoding/binary"
)

// RandomSeed returns a non-zero 32-bit seed from the system entropy source,
// for callers that did not configure one.
func RandomSeed() uint32 {
	var data [4]byte
	for {
		if _, err := rand.Read(data[:]); err != nil {
			panic(err)
		}
		if seed := binary.BigEndian.Uint32(data[:]); seed != 0 {
			return seed
		}
	}
}
