package testutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytes(t *testing.T) {
	rng := NewRNG(4711)

	a := rng.Bytes(256)
	assert.Equal(t, 256, len(a))

	rng.Reset()
	b := rng.Bytes(256)
	assert.Equal(t, a, b, "same seed must reproduce the same bytes")
}

func TestChunks(t *testing.T) {
	rng := NewRNG(4711)
	msg := rng.Bytes(4096)

	chunks := rng.Chunks(msg)

	var joined []byte
	for _, c := range chunks {
		assert.NotEmpty(t, c)
		joined = append(joined, c...)
	}

	assert.True(t, bytes.Equal(msg, joined), "chunks must concatenate back to the message")
}

func TestChunksEmpty(t *testing.T) {
	rng := NewRNG(1)

	assert.Empty(t, rng.Chunks(nil))
}
