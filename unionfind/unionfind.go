// Package unionfind implements the weighted quick-union algorithm for
// tracking connectivity between numbered slots.
//
// Slots start out in singleton clusters; Union merges the clusters of two
// slots by linking the root of the smaller tree under the root of the larger
// one, which keeps every tree at logarithmic depth. Structure is not thread
// safe.
package unionfind

import "github.com/pkg/errors"

// ErrSlotRange is returned when a slot index is outside [0, slots).
var ErrSlotRange = errors.New("slot out of range")

// WeightedQuickUnion tracks connected clusters of slots 0..n-1.
type WeightedQuickUnion struct {
	parent   []int // parent[i] is the parent of slot i; roots are their own parent
	size     []int // size[i] is the tree size when i is a root
	clusters int
}

// New instantiates a union-find over the given number of slots, each in its
// own cluster.
func New(slots int) (*WeightedQuickUnion, error) {
	if slots <= 0 {
		return nil, errors.Errorf("invalid slot count: %d", slots)
	}

	uf := &WeightedQuickUnion{
		parent:   make([]int, slots),
		size:     make([]int, slots),
		clusters: slots,
	}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}
	return uf, nil
}

// Clusters returns the current number of connected clusters.
func (uf *WeightedQuickUnion) Clusters() int {
	return uf.clusters
}

// Find returns the root slot of the cluster containing slot.
func (uf *WeightedQuickUnion) Find(slot int) (int, error) {
	if err := uf.validate(slot); err != nil {
		return 0, err
	}

	for slot != uf.parent[slot] {
		slot = uf.parent[slot]
	}
	return slot, nil
}

// Connected reports whether p and q are in the same cluster.
func (uf *WeightedQuickUnion) Connected(p, q int) (bool, error) {
	rootP, err := uf.Find(p)
	if err != nil {
		return false, err
	}
	rootQ, err := uf.Find(q)
	if err != nil {
		return false, err
	}
	return rootP == rootQ, nil
}

// Union merges the clusters containing p and q. Merging slots already in the
// same cluster is a no-op.
func (uf *WeightedQuickUnion) Union(p, q int) error {
	rootP, err := uf.Find(p)
	if err != nil {
		return err
	}
	rootQ, err := uf.Find(q)
	if err != nil {
		return err
	}
	if rootP == rootQ {
		return nil
	}

	// link the smaller tree under the larger
	if uf.size[rootP] < uf.size[rootQ] {
		rootP, rootQ = rootQ, rootP
	}
	uf.parent[rootQ] = rootP
	uf.size[rootP] += uf.size[rootQ]
	uf.clusters--
	return nil
}

func (uf *WeightedQuickUnion) validate(slot int) error {
	if slot < 0 || slot >= len(uf.parent) {
		return errors.Wrapf(ErrSlotRange, "slot %d not in [0, %d)", slot, len(uf.parent))
	}
	return nil
}
