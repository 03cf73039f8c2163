// Package passcode generates HOTP one-time passcodes (RFC 4226): short
// decimal codes derived from a keyed hash of a counter-like state value,
// usable in challenge-response protocols or as the building block of
// time-based OTP schemes.
//
// The package implements the dynamic truncation algorithm only. The keyed
// hash itself is injected as a Signer, which keeps key management and
// algorithm choice outside the core and makes the generator trivially
// testable with deterministic fakes.
//
// # Counter Example
//
// Generate RFC 4226 codes from a shared secret and a counter:
//
//	signer := passcode.NewHMACSigner(sha1.New, []byte("12345678901234567890"))
//
//	gen, err := passcode.NewGenerator(signer)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	code, err := gen.Generate(counter)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// code is a 6-digit string such as "755224"
//
// # Challenge Example
//
// Sign an arbitrary byte challenge instead of an 8-byte counter:
//
//	code, err := gen.GenerateBytes([]byte("server-challenge"))
//
// # Code Length
//
// Codes are 1 to 9 decimal digits, left-padded with zeros, configured at
// construction:
//
//	gen, err := passcode.NewGeneratorWithLength(signer, 8)
//
// # Custom Signers
//
// Any function can serve as a signing capability via SignerFunc:
//
//	signer := passcode.SignerFunc(func(data []byte) ([]byte, error) {
//	    return hsm.MAC(keyHandle, data)
//	})
//
// # Thread Safety
//
// A Generator holds only immutable state and is safe for concurrent use
// whenever its Signer is. Signers returned by NewHMACSigner are safe for
// concurrent use.
//
// # Error Handling
//
// Construction fails with ErrInvalidCodeLength or ErrNilSigner. Signer
// errors are propagated to the caller unchanged. A signer returning a hash
// too short for the truncation window fails with ErrMalformedHash; standard
// HMAC outputs never trigger it.
package passcode
