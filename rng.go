package dice

import (
	"crypto/rand"
	"math/big"

	"github.com/KirkDiggler/diceroll/internal/errors"
)

//go:generate mockgen -destination=mock/random_source.go -package=mock -source=rng.go

// RandomSource produces uniformly distributed integers for the roll
// engine. Swapping the source (e.g. for deterministic tests) never
// changes parsing or statistics, only the engine's actual dice values.
type RandomSource interface {
	// Uniform returns a uniformly distributed integer in
	// [minInclusive, maxInclusive].
	Uniform(minInclusive, maxInclusive int) (int, error)
}

// CryptoSource is a RandomSource backed by crypto/rand, the default
// production source.
type CryptoSource struct{}

// NewCryptoSource returns a CryptoSource.
func NewCryptoSource() CryptoSource { return CryptoSource{} }

// Uniform implements RandomSource.
func (CryptoSource) Uniform(minInclusive, maxInclusive int) (int, error) {
	if minInclusive > maxInclusive {
		return 0, errors.Validationf("range", "invalid range [%d, %d]", minInclusive, maxInclusive)
	}
	span := int64(maxInclusive-minInclusive) + 1
	n, err := rand.Int(rand.Reader, big.NewInt(span))
	if err != nil {
		return 0, errors.Wrap(err, "generate random number")
	}
	return minInclusive + int(n.Int64()), nil
}
