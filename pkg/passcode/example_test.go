package passcode_test

import (
	"crypto/sha1"
	"fmt"
	"log"

	"github.com/jhahn/go-passcode/pkg/passcode"
)

func ExampleNewGenerator() {
	signer := passcode.NewHMACSigner(sha1.New, []byte("12345678901234567890"))

	gen, err := passcode.NewGenerator(signer)
	if err != nil {
		log.Fatal(err)
	}

	// Code for counter value 0
	code, err := gen.Generate(0)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(code)
	// Output: 755224
}

func ExampleNewGeneratorWithLength() {
	signer := passcode.NewHMACSigner(sha1.New, []byte("12345678901234567890"))

	gen, err := passcode.NewGeneratorWithLength(signer, 8)
	if err != nil {
		log.Fatal(err)
	}

	code, err := gen.Generate(0)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(code)
	// Output: 84755224
}

func ExampleSignerFunc() {
	// Any function can serve as the signing capability.
	signer := passcode.SignerFunc(func(data []byte) ([]byte, error) {
		hashed := sha1.Sum(data)
		return hashed[:], nil
	})

	gen, err := passcode.NewGenerator(signer)
	if err != nil {
		log.Fatal(err)
	}

	code, err := gen.GenerateBytes([]byte("server-challenge"))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(len(code))
	// Output: 6
}
