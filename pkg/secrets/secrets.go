// Package secrets generates the shared secrets that rendered settings
// files carry, e.g. the session signing key of a web service.
package secrets

import (
	"crypto/rand"
	"math"
	"math/big"

	"github.com/pkg/errors"
)

// DefaultVocabulary is the set of symbols secrets are drawn from:
// letters, digits and the punctuation characters all the services
// accept in their settings files.
const DefaultVocabulary = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*"

// DefaultEntropyBits is the unpredictability target for generated
// secrets.
const DefaultEntropyBits = 256

// Generate returns a random string carrying at least bits of entropy,
// each character drawn independently and uniformly from vocabulary
// using the operating system's cryptographic randomness source. The
// result has exactly ceil(bits / log2(len(vocabulary))) characters.
func Generate(bits int, vocabulary string) (string, error) {
	length := int(math.Ceil(float64(bits) / math.Log2(float64(len(vocabulary)))))
	max := big.NewInt(int64(len(vocabulary)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", errors.Wrap(err, "reading randomness")
		}
		out[i] = vocabulary[n.Int64()]
	}
	return string(out), nil
}

// New returns a secret at the default entropy target.
func New() (string, error) {
	return Generate(DefaultEntropyBits, DefaultVocabulary)
}
