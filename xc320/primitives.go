package xc320

import (
	. "math/bits"
)

// Copyright © 2026 Xzrayツ. Licensed under the Apache-2.0 license.
// Non-linear word primitives: the gamma mixer, the sigma transforms, and the
// ten little-box process functions. All arithmetic is wrapping 64-bit.

const (
	gammaK1 = 0x8000000080008009
	gammaK2 = 0x8000000000008081
)

// gammaMix combines three words and a round word through XOR/rotate/add
// layers, a chooser term for non-linearity, and two keyed multiplies.
func gammaMix(x, y, z, round uint64) uint64 {
	r := x ^ y ^ z
	r += RotateLeft64(x, 13) ^ RotateLeft64(y, -7) ^ RotateLeft64(z, 29)
	r ^= (x & y) | (z &^ x)
	r += round
	r = RotateLeft64(r, -17) ^ RotateLeft64(r, 23)
	r ^= (r << 19) | (r >> 45)
	r += (x * gammaK1) ^ (y * gammaK2)
	return r
}

// sigmaTransform applies one of the four SHA-2-style sigma patterns.
func sigmaTransform(x uint64, v int) uint64 {
	switch v {
	case 0:
		return RotateLeft64(x, -28) ^ RotateLeft64(x, -34) ^ RotateLeft64(x, -39)
	case 1:
		return RotateLeft64(x, -14) ^ RotateLeft64(x, -18) ^ RotateLeft64(x, -41)
	case 2:
		return RotateLeft64(x, -1) ^ RotateLeft64(x, -8) ^ (x >> 7)
	case 3:
		return RotateLeft64(x, -19) ^ RotateLeft64(x, -61) ^ (x >> 6)
	}
	return x
}

/* The ten per-lane processes below share one skeleton: diffuse the input
against two rotations of itself, fold in a sigma transform, and bind the
result to rc[round+k] with k = 0..9. Processes 1 and 9 substitute gammaMix;
process 10 folds a nine-word window. The executor derives the little-box
effect from the vector equations instead of calling these one by one, but
their formulas are fixed and covered by tests. */

func littleProcess1(in, salt, round uint64) uint64 {
	return gammaMix(in, salt, round, rc[round&rcMask])
}

func littleProcess2(x, round uint64) uint64 {
	x ^= RotateLeft64(x, -19) ^ RotateLeft64(x, 42)
	x += sigmaTransform(x, 0)
	return x ^ rc[(round+1)&rcMask]
}

func littleProcess3(x, round uint64) uint64 {
	x = RotateLeft64(x, 27) ^ RotateLeft64(x, -31)
	x ^= sigmaTransform(x, 1)
	return x + rc[(round+2)&rcMask]
}

func littleProcess4(x, round uint64) uint64 {
	x ^= (x << 23) | (x >> 41)
	x += sigmaTransform(x, 2)
	return x ^ rc[(round+3)&rcMask]
}

func littleProcess5(x, round uint64) uint64 {
	x *= 0xFFFFFFFFFFFFFFFF
	x ^= RotateLeft64(x, -33)
	x += sigmaTransform(x, 3)
	return x ^ rc[(round+4)&rcMask]
}

func littleProcess6(x, round uint64) uint64 {
	x ^= RotateLeft64(x, 37) ^ RotateLeft64(x, -29)
	x += sigmaTransform(x, 0)
	return x ^ rc[(round+5)&rcMask]
}

func littleProcess7(x, round uint64) uint64 {
	x ^= (x >> 17) ^ (x << 47)
	x += sigmaTransform(x, 1)
	return x ^ rc[(round+6)&rcMask]
}

func littleProcess8(x, round uint64) uint64 {
	x ^= RotateLeft64(x, -11) ^ RotateLeft64(x, 53)
	x += sigmaTransform(x, 2)
	return x ^ rc[(round+7)&rcMask]
}

func littleProcess9(x, round uint64) uint64 {
	return gammaMix(x, RotateLeft64(x, -31), RotateLeft64(x, 29), rc[(round+8)&rcMask])
}

// littleProcess10 folds nine words through word-indexed rotations before a
// gamma pass over the accumulator and a final sigma fold.
func littleProcess10(d *[9]uint64, round uint64) uint64 {
	var r uint64
	for i := 0; i < 9; i++ {
		v := d[i]
		r ^= v
		r += RotateLeft64(v, i*7)
		r ^= RotateLeft64(v, -(i * 13))
	}
	r = gammaMix(r, RotateLeft64(r, -23), RotateLeft64(r, 41), rc[(round+9)&rcMask])
	return r ^ sigmaTransform(r, 3)
}
