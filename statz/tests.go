package main

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	"github.com/xzray/xzalgochain/xc320"
)

// Copyright © 2026 Xzrayツ. Licensed under the Apache-2.0 license.

const ints = uint32(5e4)

// meanBias reports, as a percentage, how far each output bit's set-count
// strays from the expected half of the sample count.
func meanBias(digests [][xc320.Size]byte) float64 {
	tally := make([]int32, xc320.Size*8)
	for i := range digests {
		for bit := range tally {
			if digests[i][bit>>3]&(1<<(bit&7)) != 0 {
				tally[bit]++
			}
		}
	}
	var total int32
	for i := range tally {
		d := tally[i] - int32(len(digests)>>1)
		if d < 0 {
			d = -d
		}
		total += d
	}
	return float64(total) / float64(len(tally)) / float64(len(digests)>>1) * 100
}

func monobitTest() {
	iBytes := make([]byte, 4)
	integers := make([][xc320.Size]byte, 0, ints)
	random := make([][xc320.Size]byte, 0, ints)
	for i := ints; i > 0; i-- {
		binary.BigEndian.PutUint32(iBytes, i)
		integers = append(integers, xc320.Sum320(iBytes))
		makeBytes(1024)
		random = append(random, xc320.Sum320(rBytes))
	}
	fmt.Printf("Integer input Monobit test:  %5.3f%%\n", meanBias(integers))
	fmt.Printf("Random input Monobit test:   %5.3f%%\n", meanBias(random))
}

func avalancheTest() {
	const trials = 10000
	var sum, sumSq float64
	for i := 0; i < trials; i++ {
		makeBytes(64)
		msg := append([]byte{}, rBytes...)
		makeBytes(2)
		bit := int(binary.LittleEndian.Uint16(rBytes)) % 512
		flipped := append([]byte{}, msg...)
		flipped[bit>>3] ^= 1 << (bit & 7)

		a, b := xc320.Sum320(msg), xc320.Sum320(flipped)
		dist := 0
		for j := range a {
			dist += bits.OnesCount8(a[j] ^ b[j])
		}
		sum += float64(dist)
		sumSq += float64(dist) * float64(dist)
	}
	mean := sum / trials
	fmt.Printf("Avalanche mean distance:     %6.2f of 320 bits\n", mean)
	fmt.Printf("Avalanche variance:          %6.2f\n", sumSq/trials-mean*mean)
}
