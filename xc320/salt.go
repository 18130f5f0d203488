package xc320

import (
	. "math/bits"
)

// Copyright © 2026 Xzrayツ. Licensed under the Apache-2.0 license.

const saltCounterStep = 0x7C5F8E4D3B2A6917

// generateSalt derives the five per-stage salt words from the current state.
// Seven schedule rounds run over all 32 working words, but the cross-read at
// (j+3)&7 deliberately cycles through the first eight words only. Updates are
// in place, so later words in a round can observe earlier updates through
// that window.
func generateSalt(h *[5]uint64) [5]uint64 {
	s := saltSeed
	for i := 0; i < 5; i++ {
		s[i] ^= h[i]
	}

	var counter uint64
	for round := 0; round < 7; round++ {
		for j := 0; j < 32; j++ {
			s[j] ^= RotateLeft64(s[j], (j*7+round*3)%64) ^ RotateLeft64(s[(j+3)&7], -((j*5 + round*2) % 64))
			s[j] += counter
		}
		counter += saltCounterStep
	}

	var salt [5]uint64
	for i := 0; i < 5; i++ {
		v := s[i] ^ s[(i+3)&7]
		v ^= v >> 31
		v *= 0x3A8F7E6D5C4B2918
		v ^= v >> 29
		v *= 0x276D9C5F8E3B41A2
		salt[i] = v
	}
	return salt
}
