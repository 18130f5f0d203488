// Package xc320 implements XzalgoChain, a 320-bit hash function built from a
// 128-byte ARX block compressor, five salt-keyed "big box" finalizing stages
// of ten vectorizable "little box" lanes each, and a multi-round output mix.
//
// The streaming API (New, Write, Final) and the single-shot Sum320 are two
// deliberately distinct digest functions: Sum320 appends extra output-mixing
// passes that the streaming pipeline does not. Callers must use whichever
// variant their counterpart uses.
package xc320

import (
	"bytes"
	"hash"
)

// Copyright © 2026 Xzrayツ. Licensed under the Apache-2.0 license.

// Digest is a streaming XC320 context. It owns all of its storage — about
// 1.2 KiB of flat words — and is never shared between goroutines while in
// use. The zero value is not valid; use New.
type Digest struct {
	h      [5]uint64
	little [littleBoxCount][littleBoxProcesses]uint64
	big    [bigBoxCount][5]uint64
	buf    [BlockSize]byte
	n      int    // buffered bytes, always < BlockSize between calls
	bits   uint64 // 8 * total bytes written
	kern   kernel
	dead   bool
}

var _ hash.Hash = (*Digest)(nil)

// New returns an initialized context. The kernel choice is captured here,
// from the CPU probe and the process force-scalar flag.
func New() *Digest {
	d := new(Digest)
	d.Reset()
	return d
}

// Reset reinitializes the context in place, like New on the same storage.
func (d *Digest) Reset() {
	*d = Digest{kern: pickKernel()}
	initState(&d.h)
}

// Wipe zeroes all context storage. The context stays unusable until Reset.
func (d *Digest) Wipe() {
	*d = Digest{dead: true}
}

// Write absorbs p. Whole 128-byte blocks are compressed straight from p;
// only a sub-block tail is copied into the carry buffer.
func (d *Digest) Write(p []byte) (int, error) {
	if d.dead {
		panic("xc320: Write on a finalized or wiped context")
	}
	count := len(p)
	d.bits += uint64(count) * 8

	if d.n > 0 {
		c := copy(d.buf[d.n:], p)
		d.n += c
		p = p[c:]
		if d.n == BlockSize {
			var block [16]uint64
			loadBlock(&block, d.buf[:])
			processBlock(&d.h, &block)
			d.n = 0
		}
	}
	for len(p) >= BlockSize {
		var block [16]uint64
		loadBlock(&block, p)
		processBlock(&d.h, &block)
		p = p[BlockSize:]
	}
	if len(p) > 0 {
		d.n = copy(d.buf[:], p)
	}
	return count, nil
}

// Sum appends the streaming digest of the bytes written so far to b. The
// context itself is left usable: finalization runs on a copy.
func (d *Digest) Sum(b []byte) []byte {
	if d.dead {
		panic("xc320: Sum on a finalized or wiped context")
	}
	dd := *d
	var out [Size]byte
	dd.finalize(&out)
	return append(b, out[:]...)
}

// Final consumes the context: it returns the streaming digest and wipes all
// owned storage. Any further Write, Sum or Final panics; Reset revives the
// storage.
func (d *Digest) Final() [Size]byte {
	if d.dead {
		panic("xc320: Final on a finalized or wiped context")
	}
	var out [Size]byte
	d.finalize(&out)
	d.Wipe()
	return out
}

// Size returns the digest length in bytes.
func (d *Digest) Size() int { return Size }

// BlockSize returns the compression block length in bytes.
func (d *Digest) BlockSize() int { return BlockSize }

// StreamSum320 is the one-call form of the streaming pipeline: exactly
// New/Write/Final.
func StreamSum320(data []byte) [Size]byte {
	d := New()
	_, _ = d.Write(data)
	return d.Final()
}

// Sum320 is the single-shot digest: the streaming pipeline plus the extra
// output passes. Its result is in general not equal to StreamSum320's.
func Sum320(data []byte) [Size]byte {
	out := StreamSum320(data)
	singleShotMix(&out)
	return out
}

// Equal reports whether a and b are both well-formed digests and byte-equal.
// The comparison is not constant-time; digests are not secrets.
func Equal(a, b []byte) bool {
	return len(a) == Size && len(b) == Size && bytes.Equal(a, b)
}
