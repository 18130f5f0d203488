package xc320

import (
	. "math/bits"
)

// Copyright © 2026 Xzrayツ. Licensed under the Apache-2.0 license.
// 4-lane vector emulation for the little-box kernel. A vec256 stands in for
// one 256-bit register of four 64-bit lanes; the scalar kernel evaluates the
// same equations through this type, so both back-ends share one definition of
// the lane math.

type vec256 [4]uint64

func vset1(x uint64) vec256 { return vec256{x, x, x, x} }

func (v vec256) add(o vec256) vec256 {
	return vec256{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

func (v vec256) xor(o vec256) vec256 {
	return vec256{v[0] ^ o[0], v[1] ^ o[1], v[2] ^ o[2], v[3] ^ o[3]}
}

func (v vec256) rotl(r int) vec256 {
	return vec256{
		RotateLeft64(v[0], r), RotateLeft64(v[1], r),
		RotateLeft64(v[2], r), RotateLeft64(v[3], r),
	}
}

// permute reorders lanes by an immediate in the two-bits-per-destination
// convention: destination d takes source (imm >> 2d) & 3.
func (v vec256) permute(imm int) vec256 {
	return vec256{
		v[imm&3],
		v[(imm>>2)&3],
		v[(imm>>4)&3],
		v[(imm>>6)&3],
	}
}

func (v vec256) mulConst(c uint64) vec256 {
	return vec256{v[0] * c, v[1] * c, v[2] * c, v[3] * c}
}

// mixLanes gives cross-lane diffusion: half-swap, pair-swap, XOR, and a
// rotated self-fold.
func mixLanes(v vec256) vec256 {
	p0 := v.permute(0x4E)
	p1 := p0.permute(0xB1)
	x := p0.xor(p1)
	return x.xor(x.rotl(17))
}

const arxMul = 0x800000000000808A

// arxMix is the core sweep: salt add, constant XOR, two self-rotations, a
// lane mix, and the keyed multiply.
func arxMix(v, salt, rcv vec256, r1, r2 int) vec256 {
	v = v.add(salt)
	v = v.xor(rcv)
	v = v.add(v.rotl(r1))
	v = v.xor(v.rotl(-r2))
	v = mixLanes(v)
	return v.mulConst(arxMul)
}

// horizontalXOR reduces a vector to one word: lane mix, a half-swap fold, a
// pair-swap fold, then a scalar finisher over the XOR of all four lanes.
func horizontalXOR(v vec256) uint64 {
	v = mixLanes(v)
	v = v.xor(v.permute(0x4E))
	v = v.xor(v.permute(0xB1))

	r := v[0] ^ v[1] ^ v[2] ^ v[3]
	r ^= r >> 31
	r *= 0x0000000000000088
	r ^= r >> 29
	r *= 0x8000000000008089
	r ^= r >> 32
	r = RotateLeft64(r, -17) ^ RotateLeft64(r, 43)
	r *= 0x8000000080008081
	r ^= r >> 27
	return r
}

// rcVec loads four consecutive round constants starting at base.
func rcVec(base uint64) vec256 {
	return vec256{
		rc[base&rcMask],
		rc[(base+1)&rcMask],
		rc[(base+2)&rcMask],
		rc[(base+3)&rcMask],
	}
}
