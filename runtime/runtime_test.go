package runtime

import (
	"sync"
	"testing"
)

// testLock serializes every test below: they all share the package's
// global allocation cursor, so running them concurrently (or leaving
// one's heap state for the next) would make results order-dependent.
var testLock sync.Mutex

// TestGuard acquires testLock and resets the simulated heap, mirroring
// the original's #[cfg(test)] TestGuard. Hold the returned value for
// the lifetime of the test (defer guard.release()).
type TestGuard struct{}

func newTestGuard(t *testing.T) TestGuard {
	t.Helper()
	testLock.Lock()
	next = 0
	for i := range heap {
		heap[i] = 0
	}
	return TestGuard{}
}

func (TestGuard) release() {
	testLock.Unlock()
}

func TestAllocReturnsUniqueRegions(t *testing.T) {
	guard := newTestGuard(t)
	defer guard.release()

	a := Alloc(8)
	b := Alloc(8)
	if a == Null || b == Null {
		t.Fatalf("expected non-null allocations, got a=%d b=%d", a, b)
	}
	if b <= a {
		t.Fatalf("expected b (%d) to come after a (%d)", b, a)
	}
}

func TestReallocCopiesBytes(t *testing.T) {
	guard := newTestGuard(t)
	defer guard.release()

	p := Alloc(4)
	Write(p, []byte{1, 2, 3, 4})

	q := Realloc(p, 4, 8)
	if q == Null {
		t.Fatal("expected non-null reallocation")
	}
	if got := Read(q, 4); string(got) != string([]byte{1, 2, 3, 4}) {
		t.Fatalf("realloc did not preserve bytes: got %v", got)
	}
}

func TestReallocFromNullActsLikeAlloc(t *testing.T) {
	guard := newTestGuard(t)
	defer guard.release()

	p := Realloc(Null, 0, 8)
	if p == Null {
		t.Fatal("expected non-null allocation from Realloc(Null, ...)")
	}
}

func TestReallocToZeroReturnsNull(t *testing.T) {
	guard := newTestGuard(t)
	defer guard.release()

	p := Alloc(4)
	if got := Realloc(p, 4, 0); got != Null {
		t.Fatalf("expected Null, got %d", got)
	}
}

func TestMemcpyAndMemsetWork(t *testing.T) {
	guard := newTestGuard(t)
	defer guard.release()

	src := Alloc(4)
	dst := Alloc(4)
	Write(src, []byte{9, 8, 7, 6})

	Memcpy(dst, src, 4)
	if got := Read(dst, 4); string(got) != string([]byte{9, 8, 7, 6}) {
		t.Fatalf("memcpy mismatch: got %v", got)
	}

	Memset(dst, 0xAA, 4)
	want := []byte{0xAA, 0xAA, 0xAA, 0xAA}
	if got := Read(dst, 4); string(got) != string(want) {
		t.Fatalf("memset mismatch: got %v", got)
	}
}

func TestBytesCloneDuplicatesData(t *testing.T) {
	guard := newTestGuard(t)
	defer guard.release()

	src := Alloc(3)
	Write(src, []byte{1, 2, 3})

	dst := BytesClone(src, 3)
	if dst == Null {
		t.Fatal("expected non-null clone")
	}
	if got := Read(dst, 3); string(got) != string([]byte{1, 2, 3}) {
		t.Fatalf("clone mismatch: got %v", got)
	}
}

func TestBytesCloneOfNullIsNull(t *testing.T) {
	guard := newTestGuard(t)
	defer guard.release()

	if got := BytesClone(Null, 3); got != Null {
		t.Fatalf("expected Null, got %d", got)
	}
}

func TestFreeIsNoOp(t *testing.T) {
	guard := newTestGuard(t)
	defer guard.release()

	p := Alloc(8)
	before := next
	Free(p, 8)
	if next != before {
		t.Fatalf("expected Free to leave the cursor untouched, got %d want %d", next, before)
	}
}

func TestPanicPanics(t *testing.T) {
	guard := newTestGuard(t)
	defer guard.release()

	defer func() {
		if recover() == nil {
			t.Fatal("expected Panic to panic")
		}
	}()
	Panic(42)
}
