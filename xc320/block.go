package xc320

import (
	"encoding/binary"
	. "math/bits"
)

// Copyright © 2026 Xzrayツ. Licensed under the Apache-2.0 license.
// Block compression: one 128-byte block folded into the 5-word running state.

const (
	blockK0 = 0x6A09E667BB67AE85
	blockK1 = 0x3C6EF372A54FF53A
	blockK2 = 0x510E527F9B05688C
	blockM  = 0x1F83D9AB5BE0CD19
)

// processBlock folds one 16-word block into h. Iterations update h in place
// in ascending order, so the neighbor reads at i+1 and i+4 observe the
// partially-updated state; that ordering is part of the contract. Iteration i
// consumes block words i, i+5 and i+10 only; word 15 is never read.
func processBlock(h *[5]uint64, block *[16]uint64) {
	for i := 0; i < 5; i++ {
		a, b, c, d := h[i], block[i], block[i+5], block[i+10]

		a += b ^ blockK0
		a = RotateLeft64(a, 13)
		a ^= c + blockK1
		a = RotateLeft64(a, 29)
		a += d ^ blockK2
		a = RotateLeft64(a, 37)

		a ^= h[(i+1)%5]
		a += h[(i+4)%5]
		a = RotateLeft64(a, 17)

		a ^= a >> 32
		a ^= a << 21
		a *= blockM
		a ^= a >> 29
		a ^= a << 17

		h[i] = a
	}
}

// loadBlock parses 128 bytes as sixteen little-endian words.
func loadBlock(block *[16]uint64, p []byte) {
	for i := range block {
		block[i] = binary.LittleEndian.Uint64(p[i*8:])
	}
}

// initState seeds h with the fixed words and runs the init-mix. The mix also
// reads partially-updated state in ascending order.
func initState(h *[5]uint64) {
	*h = iv
	h[0] ^= 0x9E3779B97F4A7C15
	h[1] ^= 0xBF58476D1CE4E5B9
	h[2] ^= 0x94D049BB133111EB

	for i := 0; i < 5; i++ {
		h[i] ^= rc[i*10]
		h[i] = RotateLeft64(h[i], 17+i*7)
		h[i] *= 0x9E3779B97F4A7C15
		h[i] ^= h[(i+2)%5]
	}
}
