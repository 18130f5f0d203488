package xc320

import (
	"math/bits"
	"testing"

	"github.com/aead/chacha20/chacha"
)

// Copyright © 2026 Xzrayツ. Licensed under the Apache-2.0 license.
// Statistical avalanche check: a single flipped input bit should flip close
// to half of the 320 output bits. Inputs come from a fixed ChaCha keystream
// so the run is reproducible everywhere.

const avalancheTrials = 10000

func TestAvalanche(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test skipped in short mode")
	}

	key := make([]byte, chacha.KeySize)
	nonce := make([]byte, chacha.INonceSize)
	for i := range key {
		key[i] = byte(i)*7 + 3
	}
	stream := make([]byte, avalancheTrials*(64+2))
	chacha.XORKeyStream(stream, stream, nonce, key, 20)

	var sum, sumSq float64
	for i := 0; i < avalancheTrials; i++ {
		rec := stream[i*66 : (i+1)*66]
		msg := rec[:64]
		bit := (int(rec[64]) | int(rec[65])<<8) % 512

		var flipped [64]byte
		copy(flipped[:], msg)
		flipped[bit>>3] ^= 1 << (bit & 7)

		a := Sum320(msg)
		b := Sum320(flipped[:])
		dist := 0
		for j := range a {
			dist += bits.OnesCount8(a[j] ^ b[j])
		}
		sum += float64(dist)
		sumSq += float64(dist) * float64(dist)
	}

	mean := sum / avalancheTrials
	variance := sumSq/avalancheTrials - mean*mean
	if mean < 159.0 || mean > 161.0 {
		t.Errorf("avalanche mean %.3f outside [159, 161]", mean)
	}
	if variance < 70.0 || variance > 90.0 {
		t.Errorf("avalanche variance %.3f outside [70, 90]", variance)
	}
}
