package rope

import "testing"

// Grounded on original_source/test.c's node_pool_reuse case.

func TestPoolAllocRelease(t *testing.T) {
	p := NewPool(4)
	n1 := p.alloc()
	n1.isLeaf = true
	p.release(n1)
	n2 := p.alloc()
	if n2 != n1 {
		t.Error("release did not make the node available for the next alloc")
	}
	if n2.isLeaf {
		t.Error("alloc did not reset a recycled node")
	}
}

func TestPoolRespectsMaxSize(t *testing.T) {
	p := NewPool(1)
	a := p.alloc()
	b := p.alloc()
	p.release(a)
	p.release(b)
	if len(p.free) != 1 {
		t.Errorf("freelist len = %d, want 1 (capped by maxSize)", len(p.free))
	}
}

func TestDisablePool(t *testing.T) {
	n := globalPool.alloc()
	globalPool.release(n)
	if len(globalPool.free) == 0 {
		t.Fatal("setup: expected one free node before disabling")
	}
	DisablePool()
	if len(globalPool.free) != 0 || globalPool.maxSize != 0 {
		t.Error("DisablePool did not clear the global freelist")
	}
	again := globalPool.alloc()
	globalPool.release(again)
	if len(globalPool.free) != 0 {
		t.Error("release still grew the freelist after DisablePool")
	}
	// restore for the rest of the package's tests
	globalPool.maxSize = DefaultFreelistSize
}

func TestPoolReuseAcrossInsertDelete(t *testing.T) {
	pool := NewPool(DefaultFreelistSize)
	cfg := DefaultConfig()
	cfg.Pool = pool
	r := NewFromStringWithConfig("hello world", cfg)
	before := len(pool.free)
	r = r.DeleteBytes(0, r.ByteLen())
	after := len(pool.free)
	if after <= before {
		t.Errorf("expected deleting the whole rope to grow the freelist, went from %d to %d", before, after)
	}
}
