package stats

import (
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"godreidel/dreidel"
	"godreidel/utils"
)

// Tally accumulates spin outcomes for fairness reporting. A fair dreidel
// should spread spins close to a quarter per face.
type Tally struct {
	counts [dreidel.FaceCount]uint64
	total  uint64
}

func NewTally() *Tally {
	return &Tally{}
}

func (t *Tally) Add(face dreidel.Face) {
	t.counts[face] += 1
	t.total += 1
}

func (t *Tally) Count(face dreidel.Face) uint64 {
	return t.counts[face]
}

func (t *Tally) Total() utils.SpinCount {
	return utils.SpinCount(t.total)
}

// Share returns the observed fraction of spins landing on face.
func (t *Tally) Share(face dreidel.Face) float64 {
	if t.total == 0 {
		return 0
	}
	return float64(t.counts[face]) / float64(t.total)
}

// ChiSquared computes the goodness-of-fit statistic of the observed counts
// against the uniform expectation. For three degrees of freedom, values
// beyond ~7.81 reject fairness at p=0.05.
func (t *Tally) ChiSquared() float64 {
	if t.total == 0 {
		return 0
	}
	var observed, expected [dreidel.FaceCount]float64
	var uniform = float64(t.total) / dreidel.FaceCount
	for face, count := range t.counts {
		observed[face] = float64(count)
		expected[face] = uniform
	}
	return stat.ChiSquare(observed[:], expected[:])
}

// Counts returns the tally keyed by face name, in storage/report form.
func (t *Tally) Counts() map[string]uint64 {
	var ret = map[string]uint64{}
	for _, face := range dreidel.Faces {
		ret[face.String()] = t.counts[face]
	}
	return ret
}

// Fields builds the logrus fields for a distribution summary line.
func (t *Tally) Fields() log.Fields {
	fields := log.Fields{
		"spins":      t.Total(),
		"chiSquared": t.ChiSquared(),
	}
	for _, face := range dreidel.Faces {
		fields[face.String()] = t.counts[face]
	}
	return fields
}
