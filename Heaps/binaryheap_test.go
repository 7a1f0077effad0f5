package Heaps

import (
	"math/rand"
	"slices"
	"testing"
)

var rg = *rand.New(rand.NewSource(1))

const (
	hAddN     = 1 << 12
	hValRange = 1 << 13
)

// verify the heap property over the live prefix.
func (u *Binary[T]) verify(t *testing.T) {
	t.Helper()
	for i := uint(1); i < u.sz; i++ {
		if u.cmp(u.data[i], u.data[parent(i)]) < 0 {
			t.Fatalf("heap property broken at %d: %v < parent %v", i, u.data[i], u.data[parent(i)])
		}
	}
}

func TestBinary_InsertFirst(t *testing.T) {
	h := MakeBinary[int](1)
	min := hValRange
	for i := 0; i < hAddN; i++ {
		v := rg.Intn(hValRange)
		if err := h.Insert(v); err != nil {
			t.Fatalf("failed to insert %v: %v", v, err)
		}
		if v < min {
			min = v
		}
		if f, err := h.First(); err != nil || f != min {
			t.Fatalf("first is %v (%v), want %v", f, err, min)
		}
	}
	if h.Size() != hAddN {
		t.Errorf("heap size is %d, want %d", h.Size(), hAddN)
	}
	h.verify(t)
}

func TestBinary_FirstEmpty(t *testing.T) {
	h := MakeBinary[int](4)
	if _, err := h.First(); err == nil {
		t.Fatal("first of an empty heap should fail")
	} else if _, ok := err.(*EmptyHeapError); !ok {
		t.Fatalf("wrong error type %T", err)
	}
	if _, err := h.RemoveFirst(); err == nil {
		t.Fatal("removing from an empty heap should fail")
	}
}

func TestBinary_NilItem(t *testing.T) {
	h := MakeBinaryCmp[*int](4, func(a, b *int) int { return *a - *b })
	if err := h.Insert(nil); err == nil {
		t.Fatal("inserting nil should fail")
	} else if _, ok := err.(*NilItemError); !ok {
		t.Fatalf("wrong error type %T", err)
	}
	if _, err := h.Remove(nil); err == nil {
		t.Fatal("removing nil should fail")
	}
	if h.Size() != 0 {
		t.Errorf("failed calls mutated the heap")
	}
}

func TestBinary_DrainSorted(t *testing.T) {
	h := MakeBinary[int](16)
	for _, v := range rg.Perm(hAddN) {
		h.Insert(v)
	}
	prev := -1
	for h.Size() > 0 {
		v, err := h.RemoveFirst()
		if err != nil {
			t.Fatalf("failed to remove first: %v", err)
		}
		if v <= prev {
			t.Fatalf("drained %v after %v", v, prev)
		}
		prev = v
		h.verify(t)
	}
}

func TestBinary_Remove(t *testing.T) {
	h := MakeBinary[int](1)
	mirror := make([]int, 0, hAddN)
	for i := 0; i < hAddN; i++ {
		v := rg.Intn(hValRange)
		h.Insert(v)
		mirror = append(mirror, v)
	}
	slices.Sort(mirror)
	for len(mirror) > 0 {
		var v int
		if rg.Intn(4) == 0 { //absent value sometimes
			v = hValRange + rg.Intn(hValRange)
			if ok, err := h.Remove(v); ok || err != nil {
				t.Fatalf("removed non existent item %v (%v)", v, err)
			}
			continue
		}
		i := rg.Intn(len(mirror))
		v = mirror[i]
		mirror = slices.Delete(mirror, i, i+1)
		if ok, err := h.Remove(v); !ok || err != nil {
			t.Fatalf("failed to remove %v (%v)", v, err)
		}
		if h.Size() != uint(len(mirror)) {
			t.Fatalf("heap size is %d, want %d", h.Size(), len(mirror))
		}
		if len(mirror) > 0 {
			if f, _ := h.First(); f != mirror[0] {
				t.Fatalf("first is %v, want %v", f, mirror[0])
			}
		}
		h.verify(t)
	}
}

func TestBinary_IndexOf(t *testing.T) {
	h := MakeBinary[int](8)
	for _, v := range rg.Perm(hAddN) {
		h.Insert(v)
	}
	for v := 0; v < hAddN; v++ {
		i := h.indexOf(v)
		if i >= h.sz {
			t.Fatalf("level search missed %v", v)
		}
		if h.data[i] != v {
			t.Fatalf("level search found %v at %d, want %v", h.data[i], i, v)
		}
	}
	for _, v := range []int{-1, hAddN, hAddN * 2} {
		if i := h.indexOf(v); i < h.sz {
			t.Fatalf("level search found non existent %v at %d", v, i)
		}
	}
}

func TestBinary_Resize(t *testing.T) {
	h := MakeBinary[int](2)
	for i := 0; i < 100; i++ {
		if uint(len(h.data)) < h.sz {
			t.Fatalf("capacity %d below size %d", len(h.data), h.sz)
		}
		h.Insert(i)
	}
	if h.Size() != 100 {
		t.Errorf("heap size is %d, want 100", h.Size())
	}
	// 2 -> 3 -> 4 -> 6 -> 9 -> ... floor(c*1.5) growth, never shrinking
	if len(h.data) < 100 {
		t.Errorf("capacity %d didn't grow to size", len(h.data))
	}
	for h.Size() > 50 {
		h.RemoveFirst()
	}
	if len(h.data) < 100 {
		t.Errorf("capacity shrank to %d", len(h.data))
	}
}

func TestBinary_Copy(t *testing.T) {
	h := MakeBinary[int](4)
	for _, v := range rg.Perm(hAddN) {
		h.Insert(v)
	}
	c := h.Copy()
	if c.Size() != h.Size() || len(c.data) != len(h.data) {
		t.Fatal("copy differs in size or capacity")
	}
	for i := 0; i < hAddN/2; i++ {
		c.RemoveFirst()
		c.Insert(hValRange + i)
	}
	if h.Size() != hAddN {
		t.Errorf("mutating the copy changed the source size")
	}
	if f, _ := h.First(); f != 0 {
		t.Errorf("mutating the copy changed the source minimum: %v", f)
	}
	h.verify(t)
}
