package xc320

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Copyright © 2026 Xzrayツ. Licensed under the Apache-2.0 license.

var detected = featureCheck()

var scalarOnly uint32

// featureCheck picks the batch kernel on CPUs with a usable 4-lane path. The
// choice never changes a digest, only how fast it is produced.
func featureCheck() kernel {
	switch {
	case cpu.X86.HasAVX2:
		return kernelBatch
	case cpu.ARM64.HasASIMD:
		return kernelBatch
	default:
		return kernelScalar
	}
}

// ForceScalar pins every subsequently-created context to the scalar kernel.
// Existing contexts keep the kernel they were created with.
func ForceScalar(force bool) {
	if force {
		atomic.StoreUint32(&scalarOnly, 1)
	} else {
		atomic.StoreUint32(&scalarOnly, 0)
	}
}

// ForcedScalar reports whether scalar mode is pinned.
func ForcedScalar() bool { return atomic.LoadUint32(&scalarOnly) != 0 }

func pickKernel() kernel {
	if ForcedScalar() {
		return kernelScalar
	}
	return detected
}

// Accel names the accelerated path the current CPU would use, ignoring the
// force-scalar flag.
func Accel() string {
	switch {
	case cpu.X86.HasAVX2:
		return "AVX2"
	case cpu.ARM64.HasASIMD:
		return "NEON"
	default:
		return "none"
	}
}
