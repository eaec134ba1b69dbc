package blake2s

import (
	"encoding/binary"
	"encoding/hex"
	"hash"
)

const (
	// Size is the default and maximum digest size in bytes.
	Size = 32
	// BlockSize is the block size of the hash in bytes.
	BlockSize = 64
	// KeySize is the maximum key size in bytes.
	KeySize = 32
	// SaltSize is the maximum salt size in bytes.
	SaltSize = 8
	// PersonalSize is the maximum personalization size in bytes.
	PersonalSize = 8
)

// Digest is a running BLAKE2s hash computation. It implements hash.Hash.
//
// The zero value is not usable; construct a Digest with New. All state is
// held in value fields, so assigning a Digest makes an independent copy.
type Digest struct {
	h     [8]uint32       // chaining state
	c     [2]uint32       // byte counter, low word first
	block [BlockSize]byte // pending input
	n     int             // number of pending bytes in block

	size   int             // digest length in bytes
	param  [8]uint32       // packed parameter block, XORed into the IV on Reset
	key    [BlockSize]byte // zero-padded key block, absorbed first when keyed
	keyLen int
}

var _ hash.Hash = (*Digest)(nil)

// New returns a new Digest configured by the given options. It fails only
// when an option is outside the algorithm's limits, reporting the violation
// as a *ParamError.
//
//	h, err := blake2s.New(func(o *blake2s.Options) {
//	    o.Size = 16
//	    o.Key = key
//	})
func New(optFns ...func(o *Options)) (*Digest, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Size == 0 {
		opts.Size = Size
	}

	param, err := newParamBlock(opts.Size, len(opts.Key), opts.Salt, opts.Personal)
	if err != nil {
		return nil, err
	}

	d := &Digest{
		size:   opts.Size,
		param:  param,
		keyLen: len(opts.Key),
	}
	copy(d.key[:], opts.Key)
	d.Reset()

	return d, nil
}

// Reset restores the Digest to its state right after New, keeping the
// configured digest size, key, salt and personalization.
func (d *Digest) Reset() {
	for i := range d.h {
		d.h[i] = iv[i] ^ d.param[i]
	}
	d.c = [2]uint32{}
	d.n = 0

	if d.keyLen > 0 {
		// A keyed digest absorbs the zero-padded key as its first block.
		d.block = d.key
		d.n = BlockSize
	}
}

// Write absorbs more data into the hash state. It never returns an error.
//
// A full buffer is not compressed until more input arrives: the final block
// of the message, whatever its length, must be the one compressed with the
// finalization flag.
func (d *Digest) Write(p []byte) (int, error) {
	n := len(p)

	if left := BlockSize - d.n; len(p) > left {
		copy(d.block[d.n:], p[:left])
		p = p[left:]
		incCounter(&d.c, BlockSize)
		compress(&d.h, &d.c, &d.block, false)
		d.n = 0
	}

	for len(p) > BlockSize {
		incCounter(&d.c, BlockSize)
		compress(&d.h, &d.c, (*[BlockSize]byte)(p), false)
		p = p[BlockSize:]
	}

	d.n += copy(d.block[d.n:], p)

	return n, nil
}

// Sum appends the current digest to b and returns the resulting slice.
// The underlying hash state is not changed, so a Digest can keep absorbing
// data after its sum has been read.
func (d *Digest) Sum(b []byte) []byte {
	sum := d.finalize()
	return append(b, sum[:d.size]...)
}

// SumHex returns the current digest as a lowercase hexadecimal string,
// two characters per digest byte. Like Sum it leaves the state untouched.
func (d *Digest) SumHex() string {
	sum := d.finalize()
	return hex.EncodeToString(sum[:d.size])
}

// Size returns the digest length in bytes.
func (d *Digest) Size() int { return d.size }

// BlockSize returns the hash's underlying block size in bytes.
func (d *Digest) BlockSize() int { return BlockSize }

// finalize completes the computation on a copy of the state: the byte
// counter advances by the pending bytes, the last block is zero padded and
// compressed with the finalization flag, and the chaining state is
// serialized little-endian.
func (d *Digest) finalize() [Size]byte {
	block := d.block
	for i := d.n; i < BlockSize; i++ {
		block[i] = 0
	}

	c := d.c
	incCounter(&c, uint32(d.n))

	h := d.h
	compress(&h, &c, &block, true)

	var sum [Size]byte
	for i, w := range h {
		binary.LittleEndian.PutUint32(sum[4*i:], w)
	}

	return sum
}

// Sum256 returns the unkeyed BLAKE2s-256 digest of data.
func Sum256(data []byte) [Size]byte {
	d, _ := New()
	d.Write(data)
	return d.finalize()
}

// Sum returns the digest of data under the given options. It is shorthand
// for New, Write, Sum.
func Sum(data []byte, optFns ...func(o *Options)) ([]byte, error) {
	d, err := New(optFns...)
	if err != nil {
		return nil, err
	}
	d.Write(data)

	return d.Sum(nil), nil
}
