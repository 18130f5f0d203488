package xc320

import (
	. "math/bits"
)

// Copyright © 2026 Xzrayツ. Licensed under the Apache-2.0 license.
// Little-box executor. Lanes are processed in groups of four: six vectors are
// gathered from lane slots {1,0,5,4,9,8}, swept by three ARX rounds plus one
// extra lane mix, and scattered back; slots 2, 3, 6 and 7 of every lane are
// left untouched. Tail groups shorter than four lanes behave as if padded
// with zero lanes whose outputs are discarded, and the trailing cross-lane
// mix runs only on full groups. Both kernels below implement the same
// equations; digests are identical whichever one a context carries.

type kernel uint8

const (
	kernelScalar kernel = iota
	kernelBatch
)

// littleBoxExecute transforms n = len(lanes)/10 lanes in place under one salt
// word and a round base.
func littleBoxExecute(k kernel, lanes []uint64, salt, roundBase uint64) {
	if k == kernelBatch {
		littleBoxBatch(lanes, salt, roundBase)
		return
	}
	littleBoxScalar(lanes, salt, roundBase)
}

// littleBoxScalar walks each group lane by lane, gathering absent tail lanes
// as zero.
func littleBoxScalar(lanes []uint64, salt, roundBase uint64) {
	n := len(lanes) / littleBoxProcesses
	for blk := 0; blk < n; blk += 4 {
		var in [4][]uint64
		for i := 0; i < 4; i++ {
			if blk+i < n {
				in[i] = lanes[(blk+i)*littleBoxProcesses : (blk+i+1)*littleBoxProcesses]
			}
		}

		gather := func(slot int) vec256 {
			var v vec256
			for i := 0; i < 4; i++ {
				if in[i] != nil {
					v[i] = in[i][slot]
				}
			}
			return v
		}

		saltV := vset1(salt)
		v0, v0l := gather(1), gather(0)
		v1, v1l := gather(5), gather(4)
		v2, v2l := gather(9), gather(8)

		rc0, rc1, rc2 := rcVec(roundBase), rcVec(roundBase+4), rcVec(roundBase+8)

		v0 = arxMix(v0, saltV, rc0, 7, 13)
		v0l = arxMix(v0l, saltV, rc0, 7, 13)
		v1 = arxMix(v1, saltV, rc1, 11, 17)
		v1l = arxMix(v1l, saltV, rc1, 11, 17)
		v2 = arxMix(v2, saltV, rc2, 19, 23)
		v2l = arxMix(v2l, saltV, rc2, 19, 23)

		v0 = mixLanes(v0)
		v0l = mixLanes(v0l)
		v1 = mixLanes(v1)
		v1l = mixLanes(v1l)
		v2 = mixLanes(v2)
		v2l = mixLanes(v2l)

		if in[0] != nil {
			acc := v0.permute(0x00).xor(v1.permute(0x00)).xor(v2.permute(0x00))
			in[0][0], in[0][1] = v0[0], v0[1]
			in[0][4], in[0][5] = v1[0], v1[1]
			in[0][8] = v2[0]
			in[0][9] = horizontalXOR(acc)
		}
		if in[1] != nil {
			acc := v0.permute(0x55).xor(v1.permute(0x55)).xor(v2.permute(0x55))
			in[1][0], in[1][1] = v0[2], v0[3]
			in[1][4], in[1][5] = v1[2], v1[3]
			in[1][8] = v2[2]
			in[1][9] = horizontalXOR(acc)
		}
		if in[2] != nil {
			acc := v0l.permute(0xAA).xor(v1l.permute(0xAA)).xor(v2l.permute(0xAA))
			in[2][0], in[2][1] = v0l[0], v0l[1]
			in[2][4], in[2][5] = v1l[0], v1l[1]
			in[2][8] = v2l[0]
			in[2][9] = horizontalXOR(acc)
		}
		if in[3] != nil {
			acc := v0l.permute(0xFF).xor(v1l.permute(0xFF)).xor(v2l.permute(0xFF))
			in[3][0], in[3][1] = v0l[2], v0l[3]
			in[3][4], in[3][5] = v1l[2], v1l[3]
			in[3][8] = v2l[2]
			in[3][9] = horizontalXOR(acc)
		}

		if blk+3 < n {
			crossMix(in[0], in[1], in[2], in[3])
		}
	}
}

// littleBoxBatch is the register-shaped kernel: each group is staged into a
// zero-padded 4x10 scratch, computed with whole-vector loads, and only the
// live lanes are written back.
func littleBoxBatch(lanes []uint64, salt, roundBase uint64) {
	n := len(lanes) / littleBoxProcesses
	for blk := 0; blk < n; blk += 4 {
		live := n - blk
		if live > 4 {
			live = 4
		}

		var g [4][littleBoxProcesses]uint64
		for i := 0; i < live; i++ {
			copy(g[i][:], lanes[(blk+i)*littleBoxProcesses:])
		}

		saltV := vset1(salt)
		v0 := vec256{g[0][1], g[1][1], g[2][1], g[3][1]}
		v0l := vec256{g[0][0], g[1][0], g[2][0], g[3][0]}
		v1 := vec256{g[0][5], g[1][5], g[2][5], g[3][5]}
		v1l := vec256{g[0][4], g[1][4], g[2][4], g[3][4]}
		v2 := vec256{g[0][9], g[1][9], g[2][9], g[3][9]}
		v2l := vec256{g[0][8], g[1][8], g[2][8], g[3][8]}

		rc0, rc1, rc2 := rcVec(roundBase), rcVec(roundBase+4), rcVec(roundBase+8)

		v0 = arxMix(v0, saltV, rc0, 7, 13)
		v0l = arxMix(v0l, saltV, rc0, 7, 13)
		v1 = arxMix(v1, saltV, rc1, 11, 17)
		v1l = arxMix(v1l, saltV, rc1, 11, 17)
		v2 = arxMix(v2, saltV, rc2, 19, 23)
		v2l = arxMix(v2l, saltV, rc2, 19, 23)

		v0 = mixLanes(v0)
		v0l = mixLanes(v0l)
		v1 = mixLanes(v1)
		v1l = mixLanes(v1l)
		v2 = mixLanes(v2)
		v2l = mixLanes(v2l)

		g[0][0], g[0][1] = v0[0], v0[1]
		g[0][4], g[0][5] = v1[0], v1[1]
		g[0][8] = v2[0]
		g[0][9] = horizontalXOR(v0.permute(0x00).xor(v1.permute(0x00)).xor(v2.permute(0x00)))

		g[1][0], g[1][1] = v0[2], v0[3]
		g[1][4], g[1][5] = v1[2], v1[3]
		g[1][8] = v2[2]
		g[1][9] = horizontalXOR(v0.permute(0x55).xor(v1.permute(0x55)).xor(v2.permute(0x55)))

		g[2][0], g[2][1] = v0l[0], v0l[1]
		g[2][4], g[2][5] = v1l[0], v1l[1]
		g[2][8] = v2l[0]
		g[2][9] = horizontalXOR(v0l.permute(0xAA).xor(v1l.permute(0xAA)).xor(v2l.permute(0xAA)))

		g[3][0], g[3][1] = v0l[2], v0l[3]
		g[3][4], g[3][5] = v1l[2], v1l[3]
		g[3][8] = v2l[2]
		g[3][9] = horizontalXOR(v0l.permute(0xFF).xor(v1l.permute(0xFF)).xor(v2l.permute(0xFF)))

		if live == 4 {
			crossMix(g[0][:], g[1][:], g[2][:], g[3][:])
		}
		for i := 0; i < live; i++ {
			copy(lanes[(blk+i)*littleBoxProcesses:(blk+i+1)*littleBoxProcesses], g[i][:])
		}
	}
}

// crossMix binds the four final words of a full group together.
func crossMix(l0, l1, l2, l3 []uint64) {
	m := l0[9] ^ l1[9] ^ l2[9] ^ l3[9]
	m = RotateLeft64(m, -17) ^ RotateLeft64(m, 43)
	m *= 0x9E3779B97F4A7C15
	l0[9] ^= m
	l1[9] ^= RotateLeft64(m, -11)
	l2[9] ^= RotateLeft64(m, 23)
	l3[9] ^= m ^ (m >> 31)
}
