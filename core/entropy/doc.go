// Package entropy quantifies the strength of a password configuration
// against two attacker models.
//
// The blind model assumes a brute-force attacker who knows nothing about
// the dictionary or configuration and must search an estimated alphabet
// over the password length; it is reported at the minimum, maximum, and
// average achievable lengths. The seen model assumes the attacker knows
// the exact dictionary and configuration and only has to enumerate the
// generator's own choices.
//
// All permutation arithmetic is arbitrary precision (math/big); counts
// exceed 64 bits even for small configurations. Entropy is the base-2
// logarithm of the permutation count.
//
//	calc := entropy.NewCalculator(entropy.WithLogger(logger))
//	stats := calc.Calculate(ctx, cfg, dictCache.Len())
//	fmt.Printf("seen entropy: %.1f bits\n", stats.SeenBits)
//
// Calculate also compares the blind-minimum and seen entropy against two
// configurable thresholds and logs a warning per model when below them.
// The warnings are advisory only and independently suppressible; they
// never block generation.
package entropy
