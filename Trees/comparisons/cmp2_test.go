package comparisons

import (
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/jnicolasthouvenin/AVL-for-potentially-non-dom-points/Trees"
)

// compares membership tests against hash maps keyed by the packed point.
// A hash map answers Has faster but cannot fathom, rank, or select; the
// benchmarks quantify what the ordered structure costs on top.

// pack folds a point into one hash map key.
func pack(v pt) uint64 {
	return uint64(uint32(v.Z1))<<32 | uint64(uint32(v.Z2))
}

func setupFrontier(b *testing.B) (*Trees.AVLTree[int32, uint32], []pt) {
	b.Helper()
	tr := Trees.New[int32, uint32]()
	ps := points(cmpAddN)
	for _, v := range ps {
		tr.Insert(v)
	}
	return tr, ps
}

var sideEff bool

func BenchmarkHasAVLTree(b *testing.B) {
	tr, ps := setupFrontier(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, v := range ps {
			sideEff = tr.Has(v)
		}
	}
}

func BenchmarkHasHaxMap(b *testing.B) {
	tr, ps := setupFrontier(b)
	m := haxmap.New[uint64, pt]()
	for _, v := range tr.All() {
		m.Set(pack(v), v)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, v := range ps {
			_, sideEff = m.Get(pack(v))
		}
	}
}

func BenchmarkHasHashMap(b *testing.B) {
	tr, ps := setupFrontier(b)
	m := hashmap.New[uint64, pt]()
	for _, v := range tr.All() {
		m.Set(pack(v), v)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, v := range ps {
			_, sideEff = m.Get(pack(v))
		}
	}
}
