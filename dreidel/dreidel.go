package dreidel

import (
	"godreidel/lfsr"
)

// Face is one of the four dreidel faces, in their traditional order.
type Face int

const (
	Nun Face = iota
	Gimel
	Hey
	Shin
)

const FaceCount = 4

var faceNames = [FaceCount]string{"Nun", "Gimel", "Hey", "Shin"}
var faceLetters = [FaceCount]string{"נ", "ג", "ה", "ש"}
var faceMeanings = [FaceCount]string{"Nisht", "Gantz", "Halb", "Shtel"}

// Faces lists all four faces in order.
var Faces = [FaceCount]Face{Nun, Gimel, Hey, Shin}

func (f Face) String() string {
	return faceNames[f]
}

// Letter returns the Hebrew letter shown on the face.
func (f Face) Letter() string {
	return faceLetters[f]
}

// Meaning returns the Yiddish game instruction for the face: Nisht (nothing),
// Gantz (all), Halb (half), Shtel (put in).
func (f Face) Meaning() string {
	return faceMeanings[f]
}

// Dreidel spins over its own generator; same seed, same spins.
type Dreidel struct {
	rng *lfsr.LFSR32
}

func New(seed uint64) (*Dreidel, error) {
	rng, err := lfsr.New(seed)
	if err != nil {
		return nil, err
	}
	return &Dreidel{rng: rng}, nil
}

// Spin draws exactly one value from the generator and returns the face it
// lands on.
func (d *Dreidel) Spin() Face {
	index, _ := d.rng.RandomInt(0, FaceCount-1)
	return Face(index)
}
