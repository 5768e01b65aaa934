package boostagram

import (
	"crypto/sha256"
	"encoding/hex"
	stderrors "errors"
	"fmt"

	"github.com/gowebpki/jcs"

	coreerrors "github.com/Moooover/blip-10/core/errors"
)

var ErrNotCanonical = stderrors.New("boostagram has no canonical form")

// Above 2^53 a double no longer holds every integer, and RFC 8785 formats
// every number as a double.
const maxCanonicalInteger = 1 << 53

// CanonicalJSON returns the RFC 8785 (JCS) form of the structured text.
// Records carrying an integer above 2^53 have no exact canonical form and
// fail with ErrNotCanonical.
func (b Boostagram) CanonicalJSON() ([]byte, error) {
	if name, value, found := b.inexactInteger(); found {
		return nil, coreerrors.Terminal(
			fmt.Errorf("%w: %s=%d is above 2^53", ErrNotCanonical, name, value),
			coreerrors.CategoryInvalidInput,
			"integer_not_canonical",
			"integers above 2^53 cannot be canonicalized; compare the base64 form instead",
		)
	}
	canonical, err := jcs.Transform(b.ToJSON())
	if err != nil {
		return nil, fmt.Errorf("canonicalize boostagram: %w", err)
	}
	return canonical, nil
}

// Digest is the sha256 hex of CanonicalJSON. Producer key order and unknown
// members do not change it.
func (b Boostagram) Digest() (string, error) {
	canonical, err := b.CanonicalJSON()
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

func (b Boostagram) inexactInteger() (string, uint64, bool) {
	integers := []struct {
		name  string
		value *uint64
	}{
		{"feedID", b.FeedID},
		{"itemID", b.ItemID},
		{"ts", b.TS},
		{"seconds_back", b.SecondsBack},
		{"value_msat", b.ValueMsat},
		{"value_msat_total", b.ValueMsatTotal},
		{"reply_custom_key", b.ReplyCustomKey},
	}
	for _, integer := range integers {
		if integer.value != nil && *integer.value > maxCanonicalInteger {
			return integer.name, *integer.value, true
		}
	}
	return "", 0, false
}
