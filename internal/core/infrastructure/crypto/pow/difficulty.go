package pow

import (
	"fmt"
	"math"

	"github.com/nanoblock/nanogo/pkg/types"
)

// twoPow64 is 2^64 as a float64; exact, since 2^64 has a one-bit mantissa
// representation.
const twoPow64 = 18446744073709551616.0

// ValidateDifficulty rejects a zero threshold; any nonzero uint64 is
// otherwise an acceptable difficulty.
func ValidateDifficulty(threshold uint64) error {
	if threshold == 0 {
		return fmt.Errorf("pow: threshold must be nonzero: %w", types.ErrInvalidDifficulty)
	}
	return nil
}

// DeriveWorkMultiplier computes (2^64 - base) / (2^64 - difficulty),
// the ratio of expected work between a reference threshold and the given
// one.
func DeriveWorkMultiplier(difficulty, base uint64) (float64, error) {
	if err := ValidateDifficulty(difficulty); err != nil {
		return 0, err
	}
	if err := ValidateDifficulty(base); err != nil {
		return 0, err
	}
	// 2^64 - x is computed as the wrapped uint64 negation of x, which is
	// exact for every nonzero x; only then is it converted to float64.
	denominator := float64(-difficulty)
	if denominator == 0 {
		return 0, fmt.Errorf("pow: difficulty leaves no headroom below 2^64: %w", types.ErrInvalidDifficulty)
	}
	numerator := float64(-base)
	return numerator / denominator, nil
}

// DeriveWorkDifficulty computes 2^64 - (2^64-base)/multiplier, rounded to
// the nearest integer and clamped to [1, 2^64-1].
func DeriveWorkDifficulty(multiplier float64, base uint64) (uint64, error) {
	if multiplier <= 0 {
		return 0, fmt.Errorf("pow: multiplier must be positive: %w", types.ErrInvalidDifficulty)
	}
	if err := ValidateDifficulty(base); err != nil {
		return 0, err
	}

	numerator := float64(-base) // 2^64 - base
	// gap is 2^64 minus the result, rounded to the nearest integer.
	gap := math.Round(numerator / multiplier)
	if gap < 1 {
		return math.MaxUint64, nil
	}
	if gap >= twoPow64 {
		return 1, nil
	}
	return -uint64(gap), nil
}
