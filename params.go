package blake2s

import "encoding/binary"

// newParamBlock validates the construction parameters and packs them into
// the eight little-endian words that are XORed into the IV. Layout follows
// the RFC 7693 parameter block for sequential hashing: digest length, key
// length, fan-out and depth in word 0, the salt in words 4-5 and the
// personalization in words 6-7. The tree fields stay zero.
func newParamBlock(size, keyLen int, salt, personal []byte) ([8]uint32, error) {
	var p [8]uint32

	switch {
	case size < 1 || size > Size:
		return p, &ParamError{Param: "digest size", Size: size, Max: Size}
	case keyLen > KeySize:
		return p, &ParamError{Param: "key length", Size: keyLen, Max: KeySize}
	case len(salt) > SaltSize:
		return p, &ParamError{Param: "salt length", Size: len(salt), Max: SaltSize}
	case len(personal) > PersonalSize:
		return p, &ParamError{Param: "personalization length", Size: len(personal), Max: PersonalSize}
	}

	var raw [32]byte
	raw[0] = byte(size)
	raw[1] = byte(keyLen)
	raw[2] = 1 // fan-out: sequential mode
	raw[3] = 1 // depth: sequential mode
	copy(raw[16:24], salt)     // zero padded
	copy(raw[24:32], personal) // zero padded

	for i := range p {
		p[i] = binary.LittleEndian.Uint32(raw[4*i:])
	}

	return p, nil
}
