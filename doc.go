// Package blake2s implements the BLAKE2s cryptographic hash function as
// described in RFC 7693, with support for variable digest lengths, keyed
// hashing (MAC), salting, and personalization.
//
// BLAKE2s is optimized for 8- to 32-bit platforms and produces digests of
// any length between 1 and 32 bytes.
//
// # Quick Start
//
// One-shot hashing:
//
//	sum := blake2s.Sum256([]byte("hello world"))
//	fmt.Printf("%x\n", sum)
//
// Streaming via the standard hash.Hash interface:
//
//	h, _ := blake2s.New()
//	io.Copy(h, file)
//	fmt.Printf("%x\n", h.Sum(nil))
//
// # Keyed Hashing
//
// A key turns the hash into a MAC, a drop-in replacement for HMAC:
//
//	h, err := blake2s.New(func(o *blake2s.Options) {
//	    o.Key = secret // up to 32 bytes
//	})
//
// # Salt and Personalization
//
// A salt randomizes the hash; a personalization string separates domains so
// that identical inputs hash differently in different contexts:
//
//	h, err := blake2s.New(func(o *blake2s.Options) {
//	    o.Salt = salt                   // up to 8 bytes
//	    o.Personal = []byte("myproto1") // up to 8 bytes
//	})
//
// All construction parameters are validated by New; a Digest that was handed
// out never fails to write or finalize.
//
// # Concurrency
//
// A Digest is not safe for concurrent use. Hash independent inputs on
// independent Digests; reading the sum of a shared Digest while another
// goroutine writes to it is a data race.
package blake2s
