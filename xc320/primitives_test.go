package xc320

import (
	"testing"
)

// Copyright © 2026 Xzrayツ. Licensed under the Apache-2.0 license.

func TestSigmaOfZero(t *testing.T) {
	for v := 0; v < 4; v++ {
		if sigmaTransform(0, v) != 0 {
			t.Errorf("sigma variant %d of zero is nonzero", v)
		}
	}
}

// A zero input collapses every linear layer of processes 2 through 8, so the
// output is exactly the process's round constant; this pins the rc offsets.
func TestProcessConstantOffsets(t *testing.T) {
	cases := []struct {
		name string
		fn   func(uint64, uint64) uint64
		want uint64
	}{
		{"process2", littleProcess2, rc[1]},
		{"process3", littleProcess3, rc[2]},
		{"process4", littleProcess4, rc[3]},
		{"process5", littleProcess5, rc[4]},
		{"process6", littleProcess6, rc[5]},
		{"process7", littleProcess7, rc[6]},
		{"process8", littleProcess8, rc[7]},
	}
	for _, c := range cases {
		if got := c.fn(0, 0); got != c.want {
			t.Errorf("%s(0, 0) = %#016x, want %#016x", c.name, got, c.want)
		}
	}
}

func TestProcessDeterminism(t *testing.T) {
	var nine [9]uint64
	for i := range nine {
		nine[i] = uint64(i) * 0xA5A5A5A5A5A5A5A5
	}
	x, salt, round := uint64(0x0123456789ABCDEF), uint64(0x42), uint64(17)

	if littleProcess1(x, salt, round) != littleProcess1(x, salt, round) ||
		littleProcess9(x, round) != littleProcess9(x, round) ||
		littleProcess10(&nine, round) != littleProcess10(&nine, round) {
		t.Fatal("little-box processes are not pure")
	}
	if gammaMix(x, salt, round, rc[0]) != gammaMix(x, salt, round, rc[0]) {
		t.Fatal("gammaMix is not pure")
	}
}

func TestPermutePatterns(t *testing.T) {
	v := vec256{1, 2, 3, 4}
	if v.permute(0xE4) != v {
		t.Error("0xE4 is not the identity permutation")
	}
	if got := v.permute(0x4E); got != (vec256{3, 4, 1, 2}) {
		t.Errorf("0x4E half-swap = %v", got)
	}
	if got := v.permute(0xB1); got != (vec256{2, 1, 4, 3}) {
		t.Errorf("0xB1 pair-swap = %v", got)
	}
	if v.permute(0x4E).permute(0x4E) != v || v.permute(0xB1).permute(0xB1) != v {
		t.Error("half-swap and pair-swap are not involutions")
	}
	for i, imm := range []int{0x00, 0x55, 0xAA, 0xFF} {
		if got := v.permute(imm); got != vset1(v[i]) {
			t.Errorf("%#02x is not a lane-%d broadcast: %v", imm, i, got)
		}
	}
}

// mixLanes of a broadcast vector is identically zero: both permutations
// reproduce the same broadcast and the XOR cancels. The kernels rely on this
// shape of the lane algebra, so pin it.
func TestMixLanesOfBroadcast(t *testing.T) {
	for _, x := range []uint64{0, 1, 0xFFFFFFFFFFFFFFFF, 0x9E3779B97F4A7C15} {
		if mixLanes(vset1(x)) != (vec256{}) {
			t.Errorf("mixLanes of broadcast %#x is nonzero", x)
		}
	}
}

// Four identical final words XOR to zero, so crossMix must be a no-op.
func TestCrossMixOfEqualWords(t *testing.T) {
	mk := func() []uint64 {
		l := make([]uint64, 10)
		for i := range l {
			l[i] = uint64(i) + 0x1000
		}
		return l
	}
	l0, l1, l2, l3 := mk(), mk(), mk(), mk()
	crossMix(l0, l1, l2, l3)
	ref := mk()
	for i := range ref {
		if l0[i] != ref[i] || l1[i] != ref[i] || l2[i] != ref[i] || l3[i] != ref[i] {
			t.Fatalf("crossMix of equal lanes changed word %d", i)
		}
	}
}

// The executor must leave lane slots 2, 3, 6 and 7 untouched.
func TestExecutorPreservesUnloadedSlots(t *testing.T) {
	for _, k := range []kernel{kernelScalar, kernelBatch} {
		lanes := make([]uint64, 6*littleBoxProcesses)
		for i := range lanes {
			lanes[i] = uint64(i) + 7
		}
		before := append([]uint64{}, lanes...)
		littleBoxExecute(k, lanes, 0x42, 5)
		for lane := 0; lane < 6; lane++ {
			for _, slot := range []int{2, 3, 6, 7} {
				i := lane*littleBoxProcesses + slot
				if lanes[i] != before[i] {
					t.Fatalf("kernel %d touched lane %d slot %d", k, lane, slot)
				}
			}
		}
	}
}

func TestSaltDeterminism(t *testing.T) {
	h := [5]uint64{1, 2, 3, 4, 5}
	if generateSalt(&h) != generateSalt(&h) {
		t.Fatal("generateSalt is not pure")
	}
	if h != ([5]uint64{1, 2, 3, 4, 5}) {
		t.Fatal("generateSalt mutated the state")
	}
}
