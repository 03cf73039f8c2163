package passcode

import (
	"crypto/hmac"
	"hash"
)

// Signer produces a keyed signature (or MAC) of an arbitrary preimage.
// Implementations typically wrap an HMAC, but any keyed hash works as long
// as its output is long enough for dynamic truncation (20 bytes covers
// every possible offset).
//
// A Signer used by a single Generator from multiple goroutines must itself
// be safe for concurrent use.
type Signer interface {
	// Sign returns the signature of data as a sequence of bytes.
	// It may fail with a security-layer error, e.g. a misconfigured key.
	Sign(data []byte) ([]byte, error)
}

// SignerFunc adapts an ordinary function to the Signer interface.
type SignerFunc func(data []byte) ([]byte, error)

// Sign implements Signer.
func (f SignerFunc) Sign(data []byte) ([]byte, error) {
	return f(data)
}

// NewHMACSigner returns a Signer computing an HMAC over the given hash
// constructor and key. Use crypto/sha1's New for RFC 4226 interoperability;
// SHA-256 and SHA-512 work the same way.
//
// Each Sign call creates a fresh MAC instance, so the returned Signer is
// safe for concurrent use.
func NewHMACSigner(h func() hash.Hash, key []byte) Signer {
	return SignerFunc(func(data []byte) ([]byte, error) {
		mac := hmac.New(h, key)
		mac.Write(data)
		return mac.Sum(nil), nil
	})
}
