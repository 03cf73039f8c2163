package passcode

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// DefaultCodeLength is the number of decimal digits in a passcode
	// when no explicit length is configured.
	DefaultCodeLength = 6

	// MaxCodeLength is the maximum number of decimal digits in a passcode.
	MaxCodeLength = 9
)

// Common errors returned by the passcode generator.
var (
	// ErrInvalidCodeLength indicates the code length is outside 1..9.
	ErrInvalidCodeLength = errors.New("passcode: invalid code length")
	// ErrNilSigner indicates no signer was supplied at construction.
	ErrNilSigner = errors.New("passcode: signer is nil")
	// ErrNilGenerator indicates a nil generator was used.
	ErrNilGenerator = errors.New("passcode: generator is nil")
	// ErrMalformedHash indicates the signer produced a hash too short
	// for dynamic truncation. It signals a broken signing capability,
	// not a recoverable runtime condition.
	ErrMalformedHash = errors.New("passcode: malformed hash")
)

// digitsPower holds powers of 10 used to shorten the pin to the desired
// number of digits.
var digitsPower = [MaxCodeLength + 1]uint32{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
}

// Generator computes HOTP passcodes as specified by RFC 4226: short decimal
// codes that may be used in challenge-response protocols or as timeout
// passcodes that are only valid for a short period.
//
// The signing capability and code length are fixed at construction. A
// Generator is safe for concurrent use if and only if its Signer is; the
// Generator itself holds no mutable state.
type Generator struct {
	signer     Signer
	codeLength int
}

// NewGenerator creates a passcode generator producing codes of the default
// 6-digit length.
func NewGenerator(signer Signer) (*Generator, error) {
	return NewGeneratorWithLength(signer, DefaultCodeLength)
}

// NewGeneratorWithLength creates a passcode generator producing codes of
// exactly codeLength decimal digits. The length must be between 1 and
// MaxCodeLength inclusive and is immutable thereafter.
func NewGeneratorWithLength(signer Signer, codeLength int) (*Generator, error) {
	if signer == nil {
		return nil, ErrNilSigner
	}
	if codeLength < 1 || codeLength > MaxCodeLength {
		return nil, fmt.Errorf("%w: must be between 1 and %d digits, got %d",
			ErrInvalidCodeLength, MaxCodeLength, codeLength)
	}
	return &Generator{
		signer:     signer,
		codeLength: codeLength,
	}, nil
}

// CodeLength returns the configured number of passcode digits.
func (g *Generator) CodeLength() int {
	if g == nil {
		return 0
	}
	return g.codeLength
}

// Generate computes the passcode for an 8-byte integer state, typically an
// HOTP counter or a TOTP time step. The state is serialized big-endian
// (most significant byte first) before signing, so codes interoperate with
// any RFC 4226 implementation. Every 64-bit value is valid input.
func (g *Generator) Generate(state uint64) (string, error) {
	if g == nil {
		return "", ErrNilGenerator
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], state)
	return g.GenerateBytes(buf[:])
}

// GenerateBytes computes the passcode for an arbitrary challenge preimage,
// skipping the 8-byte integer encoding performed by Generate.
//
// Signer errors are propagated verbatim. A hash too short for the selected
// truncation window fails with ErrMalformedHash; a conforming HMAC output
// (20 bytes or more) can never trigger it.
func (g *Generator) GenerateBytes(challenge []byte) (string, error) {
	if g == nil {
		return "", ErrNilGenerator
	}

	hash, err := g.signer.Sign(challenge)
	if err != nil {
		return "", err
	}
	if len(hash) == 0 {
		return "", fmt.Errorf("%w: empty hash", ErrMalformedHash)
	}

	// Dynamically truncate the hash. Offset bits are the low order bits
	// of the last byte of the hash.
	offset := int(hash[len(hash)-1] & 0x0f)
	if offset+4 > len(hash) {
		return "", fmt.Errorf("%w: %d-byte hash cannot fit a 4-byte window at offset %d",
			ErrMalformedHash, len(hash), offset)
	}

	// Grab a positive integer value starting at the given offset.
	truncatedHash := binary.BigEndian.Uint32(hash[offset:offset+4]) & 0x7fffffff
	pinValue := truncatedHash % digitsPower[g.codeLength]

	return fmt.Sprintf("%0*d", g.codeLength, pinValue), nil
}
