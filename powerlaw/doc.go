// Package powerlaw estimates the tail-decay exponent α of a discrete
// power-law distribution P(k) ∝ k^-α from a degree histogram.
//
// The estimator is the discrete Clauset–Shalizi–Newman maximum-likelihood
// formula:
//
//	α̂ = 1 + n / Σ count(k) · ln( k / (k_min − 0.5) )
//
// summed with multiplicity over histogram entries with k ≥ k_min and
// count > 0, where n is the number of tail observations. The −0.5 term is
// the standard discreteness correction.
//
// A weighted least-squares fit of ln(count) against ln(k) estimates the
// same quantity but diverges numerically from the MLE on real histograms;
// this package deliberately ships only the MLE, which is the
// better-justified estimator for discrete degree data. Do not expect its
// output to match a regression-based fit.
//
// Edge-case policy: an empty tail (no entry with k ≥ k_min and positive
// count) yields the sentinel value 0 with no error; k_min < 1 is a caller
// error and is reported as ErrInvalidKMin.
package powerlaw
