// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

// This file builds the dominator tree and the dominance frontier.
//
// Cited papers and resources:
//
// Cooper, Harvey, Kennedy.  2001.  A Simple, Fast Dominance Algorithm.
// Software Practice and Experience 2001, 4:1-10.
// http://www.hipersoft.rice.edu/grads/publications/dom14.pdf
//
// Ron Cytron et al. 1991. Efficiently computing SSA form...
// http://doi.acm.org/10.1145/115372.115320

import "sort"

// BuildDom computes the dominator tree of f using the iterative
// algorithm of Cooper, Harvey and Kennedy.  It fills in each block's
// immediate dominator and its dominator-tree children, the latter
// ordered by block name so every downstream walk is deterministic.
func (f *Function) BuildDom() {
	// Number the reachable blocks in postorder of a CFG walk.
	var order []*BasicBlock
	seen := make(map[*BasicBlock]bool)
	var visit func(*BasicBlock)
	visit = func(b *BasicBlock) {
		if seen[b] {
			return
		}
		seen[b] = true
		b.idom = nil
		b.dominees = nil
		for _, s := range b.Succs {
			visit(s)
		}
		b.post = len(order)
		order = append(order, b)
	}
	visit(f.Entry)

	entry := f.Entry
	entry.idom = entry // temporary self-link simplifies intersect

	// Iterate to a fixed point, considering blocks in reverse
	// postorder.
	for changed := true; changed; {
		changed = false
		for i := len(order) - 2; i >= 0; i-- { // skip entry
			b := order[i]
			var idom *BasicBlock
			for _, p := range b.Preds {
				if !seen[p] || p.idom == nil {
					continue // unreachable or not yet processed
				}
				if idom == nil {
					idom = p
				} else {
					idom = intersect(idom, p)
				}
			}
			if idom != nil && b.idom != idom {
				b.idom = idom
				changed = true
			}
		}
	}

	entry.idom = nil
	for _, b := range order {
		if b.idom != nil {
			b.idom.dominees = append(b.idom.dominees, b)
		}
	}
	for _, b := range order {
		sort.Slice(b.dominees, func(i, j int) bool {
			return b.dominees[i].Name < b.dominees[j].Name
		})
	}
}

// intersect walks up the dominator tree from b and c to their closest
// common ancestor, comparing postorder numbers.
func intersect(b, c *BasicBlock) *BasicBlock {
	for b != c {
		for b.post < c.post {
			b = b.idom
		}
		for c.post < b.post {
			c = c.idom
		}
	}
	return b
}

// ComputeDF returns the dominance frontier of every reachable block:
// the blocks d such that the key dominates a predecessor of d but
// does not strictly dominate d.  BuildDom must have run.
func (f *Function) ComputeDF() map[*BasicBlock][]*BasicBlock {
	df := make(map[*BasicBlock][]*BasicBlock)
	var build func(*BasicBlock)
	build = func(u *BasicBlock) {
		for _, w := range u.dominees {
			build(w)
		}
		for _, v := range u.Succs {
			if v.idom != u {
				df[u] = appendDF(df[u], v)
			}
		}
		for _, w := range u.dominees {
			for _, v := range df[w] {
				if v.idom != u {
					df[u] = appendDF(df[u], v)
				}
			}
		}
	}
	build(f.Entry)
	return df
}

// appendDF adds v to a frontier set, keeping it duplicate-free.
func appendDF(set []*BasicBlock, v *BasicBlock) []*BasicBlock {
	for _, b := range set {
		if b == v {
			return set
		}
	}
	return append(set, v)
}
