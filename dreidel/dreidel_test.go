package dreidel

import (
	"testing"

	"godreidel/lfsr"
)

func TestNew_ZeroSeed(t *testing.T) {
	if _, err := New(0); err != lfsr.ErrZeroSeed {
		t.Fatal("expected ErrZeroSeed, got", err)
	}
}

func TestSpin_ValidFaces(t *testing.T) {
	d, err := New(42)
	if err != nil {
		t.Fatal(err)
	}
	seen := map[Face]bool{}
	for i := 0; i < 100; i++ {
		face := d.Spin()
		if face < Nun || face > Shin {
			t.Fatal("invalid face:", face)
		}
		seen[face] = true
	}
	for _, face := range Faces {
		if !seen[face] {
			t.Fatal("face never landed in 100 spins:", face)
		}
	}
}

func TestSpin_GoldenFaces(t *testing.T) {
	d, err := New(42)
	if err != nil {
		t.Fatal(err)
	}
	expected := []Face{Gimel, Hey, Gimel, Hey, Gimel, Nun, Nun, Nun, Nun, Nun, Nun, Nun}
	for i, want := range expected {
		if got := d.Spin(); got != want {
			t.Fatalf("spin %d: got %v, want %v", i, got, want)
		}
	}
}

func TestSpin_Deterministic(t *testing.T) {
	a, err := New(12345)
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(12345)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 100; i++ {
		if a.Spin() != b.Spin() {
			t.Fatal("identical seeds diverged at spin", i)
		}
	}
}

func TestSpin_DifferentSeeds(t *testing.T) {
	a, err := New(1)
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(2)
	if err != nil {
		t.Fatal(err)
	}
	var same = true
	for i := 0; i < 20; i++ {
		if a.Spin() != b.Spin() {
			same = false
		}
	}
	if same {
		t.Fatal("different seeds produced identical spins")
	}
}

func TestSpin_FairDistribution(t *testing.T) {
	d, err := New(12345)
	if err != nil {
		t.Fatal(err)
	}
	var counts [FaceCount]int
	const numSpins = 10000
	for i := 0; i < numSpins; i++ {
		counts[d.Spin()] += 1
	}
	const expected = numSpins / FaceCount
	var chiSquared float64
	for face, count := range counts {
		if count < expected*9/10 || count > expected*11/10 {
			t.Fatal(Face(face), "count", count, "outside 10% of", expected)
		}
		diff := float64(count - expected)
		chiSquared += diff * diff / float64(expected)
	}
	if chiSquared >= 10 {
		t.Fatal("chi-squared too high:", chiSquared)
	}
}

func TestSpin_FairAcrossSeeds(t *testing.T) {
	for _, seed := range []uint64{1, 100, 9999, 0xDEAD, 0xBEEF} {
		d, err := New(seed)
		if err != nil {
			t.Fatal(err)
		}
		var counts [FaceCount]int
		const numSpins = 4000
		for i := 0; i < numSpins; i++ {
			counts[d.Spin()] += 1
		}
		const expected = numSpins / FaceCount
		for face, count := range counts {
			if count < expected*8/10 || count > expected*12/10 {
				t.Fatal("seed", seed, Face(face), "count", count, "outside 20% of", expected)
			}
		}
	}
}

func TestFace_Metadata(t *testing.T) {
	if Nun.String() != "Nun" || Shin.String() != "Shin" {
		t.Fatal("face names wrong")
	}
	if Gimel.Letter() != "ג" {
		t.Fatal("Gimel letter wrong:", Gimel.Letter())
	}
	if Hey.Meaning() != "Halb" {
		t.Fatal("Hey meaning wrong:", Hey.Meaning())
	}
}
