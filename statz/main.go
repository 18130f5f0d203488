package main

import (
	"crypto/sha512"
	"fmt"
	"math/rand"
	"runtime"
	"testing"
	"time"

	"github.com/dterei/gotsc"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"

	"github.com/xzray/xzalgochain/xc320"
)

// Copyright © 2026 Xzrayツ. Licensed under the Apache-2.0 license.
// Offline analysis harness for XC320: bit-distribution statistics followed by
// throughput and cycles-per-byte measurements against reference functions.

var (
	size   int64
	rBytes []byte
	sizes  = []int64{
		64,
		512 * 1000,
		64 * 1000 * 1000,
	}
	fn = []func(b *testing.B){
		func(b *testing.B) {
			makeBytes(size)
			b.SetBytes(size)
			b.ResetTimer()
			for i := b.N; i > 0; i-- {
				xc320.Sum320(rBytes)
			}
		},
		func(b *testing.B) {
			makeBytes(size)
			b.SetBytes(size)
			b.ResetTimer()
			for i := b.N; i > 0; i-- {
				sha512.Sum512(rBytes)
			}
		},
		func(b *testing.B) {
			makeBytes(size)
			b.SetBytes(size)
			b.ResetTimer()
			for i := b.N; i > 0; i-- {
				blake3.Sum512(rBytes)
			}
		},
		func(b *testing.B) {
			makeBytes(size)
			b.SetBytes(size)
			b.ResetTimer()
			for i := b.N; i > 0; i-- {
				xxh3.Hash(rBytes)
			}
		},
	}
	names = []string{
		"XC320      ",
		"SHA-512    ",
		"BLAKE3-512 ",
		"XXH3-64    ",
	}
)

func makeBytes(size int64) {
	rBytes = make([]byte, size)
	if _, err := rand.Read(rBytes); err != nil {
		panic("failed to generate random data")
	}
}

func algBench(alg int) {
	fmt.Println(names[alg] + "    64B    512K     64M")
	throughputs, speeds, usages := make([]float64, len(sizes)), make([]float64, len(sizes)), make([]float64, len(sizes))
	for i := range sizes {
		size = sizes[i]
		var totalHz, polls uint64
		if runtime.GOARCH == "amd64" {
			go func() {
				calltime := gotsc.TSCOverhead()
				for throughputs[i] == 0 {
					tsc1 := gotsc.BenchStart()
					time.Sleep(time.Millisecond)
					tsc2 := gotsc.BenchEnd()
					totalHz += (tsc2 - tsc1 - calltime) * 1000
					polls++
					time.Sleep(time.Millisecond * 19)
				}
			}()
		}
		r := testing.Benchmark(fn[alg])
		throughputs[i] = float64(r.Bytes*int64(r.N)) / r.T.Seconds()
		speeds[i] = float64(totalHz) / float64(polls) / throughputs[i]
		usages[i] = float64(r.AllocedBytesPerOp())
	}

	fmt.Printf("Speed     %7.5g %7.5g %7.5g  MB/s\n",
		throughputs[0]/1e6, throughputs[1]/1e6, throughputs[2]/1e6)
	if speeds[0]+speeds[1]+speeds[2] > 0 {
		fmt.Printf("          %7.5g %7.5g %7.5g  cpb\n",
			speeds[0], speeds[1], speeds[2])
	}
	fmt.Printf("Usage     %7.5g %7.5g %7.5g  B/op\n\n",
		usages[0], usages[1], usages[2])
}

func main() {
	rand.Seed(time.Now().UnixNano())

	t := time.Now()
	monobitTest()
	avalancheTest()
	fmt.Println()
	for alg := range fn {
		algBench(alg)
	}
	fmt.Printf("Finished in %s on %s/%s.\n", time.Since(t), runtime.GOOS, runtime.GOARCH)
}
