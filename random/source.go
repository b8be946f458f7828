// Package random provides the injectable randomness seam for the battle
// engine. The only random quantity in the engine is the damage random
// factor, an integer uniformly chosen in [85,100].
package random

import (
	"crypto/rand"
	"math/big"

	"github.com/sasakirione/pokesim/simerr"
)

// Damage random factor bounds.
const (
	// FactorMin is the smallest damage random factor.
	FactorMin = 85
	// FactorMax is the largest damage random factor.
	FactorMax = 100
)

// Source is the interface for random number generation in the engine.
// CryptoSource is safe for concurrent use; Fixed is not.
type Source interface {
	// RollRandomFactor returns a random integer in [FactorMin, FactorMax].
	RollRandomFactor() (int, error)
}

// CryptoSource implements Source using crypto/rand.
type CryptoSource struct{}

// RollRandomFactor returns a cryptographically secure random factor in [85,100].
func (c *CryptoSource) RollRandomFactor() (int, error) {
	span := int64(FactorMax - FactorMin + 1)

	n, err := rand.Int(rand.Reader, big.NewInt(span))
	if err != nil {
		return 0, simerr.Wrap(err, "random: crypto/rand error")
	}

	return int(n.Int64()) + FactorMin, nil
}

// DefaultSource is the default source using crypto/rand.
var DefaultSource Source = &CryptoSource{}
