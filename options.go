package blake2s

// Options contains the configuration options for a Digest.
type Options struct {
	// Size is the digest length in bytes, between 1 and Size.
	// Zero selects the default of Size (32) bytes.
	Size int

	// Key enables keyed hashing (MAC mode) when non-empty.
	// At most KeySize bytes.
	Key []byte

	// Salt randomizes the hash. At most SaltSize bytes; shorter
	// values are zero padded.
	Salt []byte

	// Personal separates domains: the same input hashed under
	// different personalization strings yields unrelated digests.
	// At most PersonalSize bytes; shorter values are zero padded.
	Personal []byte
}

// DefaultOptions contains the default configuration options: an unkeyed,
// unsalted digest of Size bytes.
var DefaultOptions = Options{
	Size: Size,
}
