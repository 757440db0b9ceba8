package utils

import (
	"strconv"

	"github.com/dustin/go-humanize"
)

const MaxRawSpinCount = 1000

// SpinCount is a running total of spins, formatted with SI suffixes once it
// grows past what reads comfortably raw.
type SpinCount uint64

func (s SpinCount) String() string {
	if s < MaxRawSpinCount {
		return strconv.FormatUint(uint64(s), 10)
	} else {
		return humanize.SIWithDigits(float64(s), 2, "")
	}
}
