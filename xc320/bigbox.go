package xc320

import (
	"encoding/binary"
	. "math/bits"
)

// Copyright © 2026 Xzrayツ. Licensed under the Apache-2.0 license.
// Big-box stages and the finalizer's output mixing.

// bigBox runs one macro-round: derive the stage salt, push ten lanes through
// the little-box executor, and fold them into the stage's 5-word sub-state.
// The fold order (XOR of the even word, wrapping add of the odd word, lanes
// in ascending order) is fixed; wrapping addition makes it non-reorderable.
func (d *Digest) bigBox(box int, roundBase uint64) {
	salt := generateSalt(&d.h)

	for lb := 0; lb < littleBoxCount; lb++ {
		var lane [littleBoxProcesses]uint64
		for i := 0; i < 5; i++ {
			lane[i] = d.h[i] ^ salt[i]
			lane[i+5] = d.h[i] ^ rc[(lb*10+i)&rcMask]
		}
		sv := salt[lb%5] ^ rc[(lb*10)&rcMask]

		littleBoxExecute(d.kern, lane[:], sv, roundBase+uint64(lb*10))
		d.little[lb] = lane
	}

	for i := 0; i < 5; i++ {
		var w uint64
		for lb := 0; lb < littleBoxCount; lb++ {
			w ^= d.little[lb][i*2]
			w += d.little[lb][i*2+1]
		}
		d.big[box][i] = gammaMix(w, salt[i], rc[(box*100+i)&rcMask], roundBase+1000)
	}
}

// extraMix is the splitmix-style word finisher used by output-mix C and the
// single-shot tail.
func extraMix(x uint64) uint64 {
	x ^= x >> 27
	x *= 0x9E3779B97F4A7C15
	x ^= x >> 31
	x *= 0xBF58476D1CE4E5B9
	x ^= x >> 29
	x += RotateLeft64(x, 41)
	return x
}

var finalRot = [5]int{31, 27, 33, 23, 29}

// finalize pads and compresses the tail, runs the five big-box stages, then
// applies the four output-mix layers and serializes the state little-endian.
func (d *Digest) finalize(out *[Size]byte) {
	d.buf[d.n] = 0x80
	for i := d.n + 1; i < BlockSize; i++ {
		d.buf[i] = 0
	}
	var block [16]uint64
	loadBlock(&block, d.buf[:])
	processBlock(&d.h, &block)

	for bb := 0; bb < bigBoxCount; bb++ {
		d.bigBox(bb, uint64(bb)*2000)
	}

	// Per-word mix.
	for i := 0; i < 5; i++ {
		x := d.h[i]
		x ^= RotateLeft64(x, -finalRot[i])
		x *= 0x510E9BB7927522F5
		x += 0x243F6A8885A308D3
		x ^= RotateLeft64(x, -finalRot[(i+1)%5])
		x *= 0xA0761D647ABD642F
		x ^= x >> 23
		x ^= x >> 38
		d.h[i] = x
	}

	// Fold the five sub-states into each word.
	for i := 0; i < 5; i++ {
		acc := d.h[i]
		for bb := 0; bb < bigBoxCount; bb++ {
			acc ^= d.big[bb][i]
			acc = RotateLeft64(acc, -19) ^ RotateLeft64(acc, 37)
			acc += d.big[bb][(i+2)%5]
			acc *= 0x9E3779B97F4A7C15
		}
		acc ^= acc >> 29
		acc *= 0xBF58476D1CE4E5B9
		acc ^= acc >> 27
		acc *= 0x94D049BB133111EB
		acc ^= acc >> 31
		d.h[i] = acc
	}

	// Three rounds of the word finisher against the sub-states.
	for round := 0; round < 3; round++ {
		for i := 0; i < 5; i++ {
			d.h[i] = extraMix(d.h[i])
			d.h[i] ^= d.big[round%bigBoxCount][i]
			d.h[i] = RotateLeft64(d.h[i], 17+round*5)
		}
	}

	// Five whole-state feedback rounds; in-place sequential updates are part
	// of the contract.
	for round := 0; round < 5; round++ {
		var mix uint64
		for i := 0; i < 5; i++ {
			mix ^= d.h[i]
			mix = RotateLeft64(mix, 17) ^ d.h[(i+2)%5]
		}
		for i := 0; i < 5; i++ {
			d.h[i] ^= RotateLeft64(mix, i*13)
			d.h[i] *= 0x9E3779B97F4A7C15
			d.h[i] ^= d.h[(i+1)%5] >> (i*7 + 3)
			d.h[i] = RotateLeft64(d.h[i], -(23 + i*5))
		}
	}

	for i := 0; i < 5; i++ {
		binary.LittleEndian.PutUint64(out[i*8:], d.h[i])
	}
}

// singleShotMix applies the extra output passes that distinguish Sum320 from
// the streaming digest. The bytes are re-read as five little-endian words,
// mixed in place, and re-serialized.
func singleShotMix(out *[Size]byte) {
	var w [5]uint64
	for i := range w {
		w[i] = binary.LittleEndian.Uint64(out[i*8:])
	}

	for mix := 0; mix < 3; mix++ {
		var acc uint64
		for i := 0; i < 5; i++ {
			acc ^= w[i]
			w[i] = RotateLeft64(w[i], -19) ^ RotateLeft64(acc, 37)
			w[i] *= 0xBF58476D1CE4E5B9
			w[i] ^= w[(i+2)%5] >> 27
		}
	}

	for i := 0; i < 5; i++ {
		w[i] = extraMix(w[i])
		w[i] ^= w[(i+2)%5]
	}

	for i := range w {
		binary.LittleEndian.PutUint64(out[i*8:], w[i])
	}
}
