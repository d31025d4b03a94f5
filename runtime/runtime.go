// Package runtime is a pure-Go reference model of the WASM module ABI:
// a bump allocator over a simulated linear memory, exposed as the same
// eight C-ABI functions the WASM side would export (Alloc/jalm_alloc,
// Realloc/jalm_realloc, Free/jalm_free, BytesAlloc/jalm_bytes_alloc,
// BytesClone/jalm_bytes_clone, Memcpy/jalm_memcpy, Memset/jalm_memset,
// Panic/jalm_panic). It is not linked into any module codegen emits —
// the actual WASM-side runtime shim is out of scope for this repo — but
// gives the ABI a single, tested definition of its semantics that a
// future WASM port can be checked against.
//
// The allocation cursor is deliberately package-global: there is
// exactly one linear memory per compiled program, so one global cursor
// over a simulated heap models it faithfully — the only process-wide
// state is the allocator's NEXT cursor. Tests that exercise it must
// serialize access and reset state between runs (see TestGuard in
// runtime_test.go).
//
// Grounded on jalm_runtime::{jalm_alloc,...} (original_source), whose
// bump allocator over `static mut HEAP` this package mirrors with a
// package-level []byte in place of the fixed-size array.
package runtime

import "fmt"

// align is the allocator's alignment granularity, matching the
// original's ALIGN=8.
const align = 8

// heapSize mirrors the original's non-wasm32 HEAP_SIZE fallback: a
// fixed-size simulated linear memory, since this model never actually
// runs inside a WASM host.
const heapSize = 1024 * 1024

// Null is the reserved zero address: the heap starts allocating at
// align, so offset 0 always means "no allocation", the same way a
// null pointer does in the original's C ABI.
const Null uint32 = 0

var (
	heap = make([]byte, heapSize)
	next uint32
)

func alignUp(v uint32) uint32 {
	return (v + (align - 1)) &^ (align - 1)
}

// Alloc reserves size bytes (minimum 1, rounded up to align) and
// returns the offset of the start of the region, or Null if the
// region would not fit in the simulated heap.
func Alloc(size uint32) uint32 {
	if size == 0 {
		size = 1
	}
	size = alignUp(size)
	if next == 0 {
		next = align
	}
	start := alignUp(next)
	end := start + size
	if end < start || int(end) > len(heap) {
		return Null
	}
	next = end
	return start
}

// Realloc grows or shrinks an existing allocation by allocating a new
// region and copying min(oldSize, newSize) bytes into it — the bump
// allocator never reclaims or resizes in place, exactly like the
// original.
func Realloc(ptr, oldSize, newSize uint32) uint32 {
	if ptr == Null {
		return Alloc(newSize)
	}
	if newSize == 0 {
		return Null
	}
	newPtr := Alloc(newSize)
	if newPtr == Null {
		return Null
	}
	copyLen := oldSize
	if newSize < copyLen {
		copyLen = newSize
	}
	copy(heap[newPtr:newPtr+copyLen], heap[ptr:ptr+copyLen])
	return newPtr
}

// Free is a no-op: v0's bump allocator never reclaims memory, matching
// the original's explicit comment to that effect.
func Free(_, _ uint32) {}

// BytesAlloc reserves a region for a `bytes` value's contents.
func BytesAlloc(length uint32) uint32 {
	return Alloc(length)
}

// BytesClone allocates a new region and copies length bytes from src
// into it, returning Null if src is Null or the allocation fails.
func BytesClone(src, length uint32) uint32 {
	if src == Null {
		return Null
	}
	dst := Alloc(length)
	if dst == Null {
		return Null
	}
	copy(heap[dst:dst+length], heap[src:src+length])
	return dst
}

// Memcpy copies length bytes from src to dst, returning dst, or Null
// if either address is Null.
func Memcpy(dst, src, length uint32) uint32 {
	if dst == Null || src == Null {
		return Null
	}
	copy(heap[dst:dst+length], heap[src:src+length])
	return dst
}

// Memset fills length bytes starting at dst with value, returning dst,
// or Null if dst is Null.
func Memset(dst uint32, value byte, length uint32) uint32 {
	if dst == Null {
		return Null
	}
	region := heap[dst : dst+length]
	for i := range region {
		region[i] = value
	}
	return dst
}

// Read returns a copy of the length bytes starting at ptr, for test
// assertions and debugging.
func Read(ptr, length uint32) []byte {
	out := make([]byte, length)
	copy(out, heap[ptr:ptr+length])
	return out
}

// Write copies data into the heap starting at ptr, for seeding test
// fixtures.
func Write(ptr uint32, data []byte) {
	copy(heap[ptr:], data)
}

// Panic is the ABI's trap function: it never returns, matching
// jalm_panic's `-> !` signature and its WASM-side `unreachable` trap.
// Allocation failures (Alloc/Realloc returning Null) are not panics —
// they surface as a null result instead, with Panic reserved for
// explicit traps only.
func Panic(code uint32) {
	panic(fmt.Sprintf("jalm_panic: code %d", code))
}
