package xc320

import (
	"crypto/sha512"
	"testing"

	sha256 "github.com/minio/sha256-simd"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
)

// Copyright © 2026 Xzrayツ. Licensed under the Apache-2.0 license.
// Throughput comparison against the usual suspects.

var benchSizes = []struct {
	name string
	n    int
}{
	{"64B", 64},
	{"4K", 4 << 10},
	{"1M", 1 << 20},
}

func BenchmarkXC320(b *testing.B) {
	for _, s := range benchSizes {
		b.Run(s.name, func(b *testing.B) {
			msg := make([]byte, s.n)
			b.SetBytes(int64(s.n))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Sum320(msg)
			}
		})
	}
}

func BenchmarkXC320Scalar(b *testing.B) {
	ForceScalar(true)
	defer ForceScalar(false)
	msg := make([]byte, 4<<10)
	b.SetBytes(4 << 10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sum320(msg)
	}
}

func BenchmarkSHA512(b *testing.B) {
	msg := make([]byte, 4<<10)
	b.SetBytes(4 << 10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sha512.Sum512(msg)
	}
}

func BenchmarkSHA256SIMD(b *testing.B) {
	msg := make([]byte, 4<<10)
	b.SetBytes(4 << 10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sha256.Sum256(msg)
	}
}

func BenchmarkBlake3(b *testing.B) {
	h, msg := blake3.New(), make([]byte, 4<<10)
	b.SetBytes(4 << 10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Write(msg)
		h.Sum(nil)
		h.Reset()
	}
}

func BenchmarkXXH3(b *testing.B) {
	msg := make([]byte, 4<<10)
	b.SetBytes(4 << 10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		xxh3.Hash(msg)
	}
}
