package powerlaw

import (
	"errors"
	"math"
)

// discreteCorrection is the CSN discreteness offset applied to k_min.
const discreteCorrection = 0.5

// ErrInvalidKMin is returned when the minimum-degree cutoff is below 1;
// the discreteness correction is undefined there.
var ErrInvalidKMin = errors.New("powerlaw: k_min must be at least 1")

// Exponent estimates the power-law exponent α̂ of the degree histogram
// hist (degree → node count) over the tail k ≥ kMin via the discrete
// Clauset–Shalizi–Newman MLE. Entries with count == 0 never contribute.
// An empty tail yields the sentinel 0 with a nil error.
// Complexity: O(|hist|).
func Exponent(hist map[int]int, kMin int) (float64, error) {
	if kMin < 1 {
		return 0, ErrInvalidKMin
	}

	denom := float64(kMin) - discreteCorrection
	var n, logSum float64
	for k, count := range hist {
		if k < kMin || count <= 0 {
			continue
		}
		n += float64(count)
		logSum += float64(count) * math.Log(float64(k)/denom)
	}

	// empty tail: nothing to fit, sentinel by policy
	if n == 0 {
		return 0, nil
	}

	return 1 + n/logSum, nil
}
