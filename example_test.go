package blake2s_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/blake2s"
)

// ExampleSum256 demonstrates one-shot hashing.
func ExampleSum256() {
	sum := blake2s.Sum256([]byte("abc"))

	fmt.Printf("%x\n", sum)
	// Output: 508c5e8c327c14e2e1a72ba34eeb452f37458b209ed63a294d999b4c86675982
}

// ExampleNew demonstrates streaming input into a Digest.
func ExampleNew() {
	h, err := blake2s.New()
	if err != nil {
		log.Fatal(err)
	}

	h.Write([]byte("The quick brown fox "))
	h.Write([]byte("jumps over the lazy dog"))

	fmt.Println(h.SumHex())
	// Output: 606beeec743ccbeff6cbcdf5d5302aa855c256c29b88c8ed331ea1a6bf3c8812
}

// ExampleNew_keyed demonstrates using BLAKE2s as a MAC.
func ExampleNew_keyed() {
	key := make([]byte, blake2s.KeySize)
	for i := range key {
		key[i] = byte(i)
	}

	h, err := blake2s.New(func(o *blake2s.Options) {
		o.Key = key
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(h.SumHex())
	// Output: 48a8997da407876b3d79c0d92325ad3b89cbb754d86ab71aee047ad345fd2c49
}

// ExampleSum demonstrates one-shot hashing with a custom digest length and
// domain separation.
func ExampleSum() {
	sum, err := blake2s.Sum([]byte("abc"), func(o *blake2s.Options) {
		o.Size = 16
		o.Personal = []byte("myproto1")
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(len(sum))
	// Output: 16
}
