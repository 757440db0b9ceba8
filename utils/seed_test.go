package utils

import (
	"log"
	"testing"
)

func TestRandomSeed(t *testing.T) {
	for i := 0; i < 64; i++ {
		seed := RandomSeed()
		if seed == 0 {
			t.Fatal("zero seed")
		}
		log.Printf("RandomSeed: %08x", seed)
	}
}
