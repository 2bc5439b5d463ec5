package yield

import "errors"

var ErrInvalidInput = errors.New("yield: invalid input")

// BundleRate maps a set of member-loan default rates and a target investor
// margin to the bundle interest rate:
//
//	((1 + margin) / (1 - avg)) - 1
//
// where avg is the arithmetic mean of defaultRates. The margin is grossed up
// by the expected loss rate so the investor nets roughly the margin after
// defaults. Rates must lie in [0, 1); an empty set or an out-of-range rate is
// ErrInvalidInput rather than a divide-by-zero.
func BundleRate(defaultRates []float64, margin float64) (float64, error) {
	if len(defaultRates) == 0 {
		return 0, ErrInvalidInput
	}
	var sum float64
	for _, d := range defaultRates {
		if d < 0 || d >= 1 {
			return 0, ErrInvalidInput
		}
		sum += d
	}
	avg := sum / float64(len(defaultRates))
	if avg >= 1 {
		return 0, ErrInvalidInput
	}
	return (1+margin)/(1-avg) - 1, nil
}

// WeightedDefaultRate is the amount-weighted average default rate, used as a
// bundle's risk score. amounts and defaultRates must have equal non-zero
// length, amounts must be positive and rates in [0, 1).
func WeightedDefaultRate(amounts, defaultRates []float64) (float64, error) {
	if len(amounts) == 0 || len(amounts) != len(defaultRates) {
		return 0, ErrInvalidInput
	}
	var total, acc float64
	for i, a := range amounts {
		if a <= 0 || defaultRates[i] < 0 || defaultRates[i] >= 1 {
			return 0, ErrInvalidInput
		}
		total += a
		acc += a * defaultRates[i]
	}
	return acc / total, nil
}
