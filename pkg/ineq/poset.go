// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package ineq

import "fmt"

// Poset holds the live inequalities of a solve, organised as a partial order
// by proper subset containment of their cell sets.  The stored parent /
// child edges approximate the transitive reduction of that order: edge
// maintenance during Add is only locally correct, so transiently redundant
// edges can arise, but the solve outcome does not depend on the transient
// edge topology.
type Poset struct {
	// All live inequalities, keyed by cell set.
	ineqs *Index
	// Inequalities with no parents.
	roots *Index
	// Inequalities inserted or tightened since the last crossing sweep.
	fresh *Index
	// Number of additions which changed the system during the current sweep.
	numAdded uint
}

// NewPoset constructs an empty poset.
func NewPoset() *Poset {
	return &Poset{NewIndex(), NewIndex(), NewIndex(), 0}
}

// Len returns the number of live inequalities.
func (p *Poset) Len() uint {
	return p.ineqs.Len()
}

// IsEmpty checks whether any inequalities remain.
func (p *Poset) IsEmpty() bool {
	return p.ineqs.IsEmpty()
}

// NumAdded returns the number of additions which changed the system since
// the start of the last crossing sweep.
func (p *Poset) NumAdded() uint {
	return p.numAdded
}

// Values returns the live inequalities, in no particular order.
func (p *Poset) Values() []*Inequality {
	return p.ineqs.Values()
}

// SortedValues returns the live inequalities ordered by descending cell
// count.
func (p *Poset) SortedValues() []*Inequality {
	return p.ineqs.SortedValues()
}

// Lookup finds the live inequality over the given cells, if any.
func (p *Poset) Lookup(cells CellSet) (*Inequality, bool) {
	return p.ineqs.Lookup(cells)
}

// Add upserts an inequality into the poset.  For an already-known cell set
// this tightens the stored bounds (failing with ErrUnsatisfiable when the
// ranges do not intersect) and leaves the edges alone, since they depend on
// cells only.  For a new cell set it determines parent and child edges by
// walking down from the roots.  Either way, a change lands the inequality in
// the fresh frontier.
func (p *Poset) Add(ineq *Inequality) error {
	if old, ok := p.ineqs.Lookup(ineq.Cells()); ok {
		lo := max(old.Lo(), ineq.Lo())
		hi := min(old.Hi(), ineq.Hi())
		//
		if lo > hi {
			return fmt.Errorf("%w: %s against (%d, %d)", ErrUnsatisfiable, old, ineq.Lo(), ineq.Hi())
		} else if lo == old.Lo() && hi == old.Hi() {
			// Nothing new: either identical bounds, or looser ones which
			// tighten to what is already stored.
			return nil
		}
		//
		p.numAdded++
		//
		if err := old.SetBounds(lo, hi); err != nil {
			return err
		}
		//
		return p.fresh.Add(old)
	}
	//
	p.numAdded++
	//
	if err := p.ineqs.Add(ineq); err != nil {
		return err
	} else if err := p.fresh.Add(ineq); err != nil {
		return err
	}
	//
	return p.link(ineq)
}

// link determines the parent / child edges for a newly inserted inequality
// via a breadth-first walk from the roots.
func (p *Poset) link(ineq *Inequality) error {
	var (
		isRoot   = true
		frontier = p.roots.Values()
		visited  = map[string]bool{ineq.Cells().Key(): true}
	)
	//
	for len(frontier) > 0 {
		candidate := frontier[0]
		frontier = frontier[1:]
		visited[candidate.Cells().Key()] = true
		//
		switch {
		case candidate.Cells().Disjoint(ineq.Cells()):
			// Nothing in common, nothing below it either.
		case candidate.Cells().ProperSubsetOf(ineq.Cells()):
			// Candidate becomes a child of ineq.
			p.roots.Discard(candidate)
			//
			if err := attach(ineq, candidate); err != nil {
				return err
			}
			// Drop edges now implied transitively through ineq.
			for _, shared := range candidate.Parents().Intersection(ineq.Parents()) {
				candidate.Parents().Discard(shared)
				shared.Children().Discard(candidate)
			}
		case ineq.Cells().ProperSubsetOf(candidate.Cells()):
			// Candidate is a parent or ancestor of ineq.
			isRoot = false
			//
			captured, err := p.linkUnder(candidate, ineq, &frontier, visited)
			if err != nil {
				return err
			}
			//
			if !captured {
				if err := attach(candidate, ineq); err != nil {
					return err
				}
			}
		default:
			// Overlapping, but unrelated.  Descendants of the candidate may
			// still be subsets of ineq.
			for _, child := range candidate.Children().Values() {
				if !visited[child.Cells().Key()] && !child.Cells().Disjoint(ineq.Cells()) {
					visited[child.Cells().Key()] = true
					frontier = append(frontier, child)
				}
			}
		}
	}
	//
	if isRoot {
		return p.roots.Add(ineq)
	}
	//
	return nil
}

// linkUnder places ineq below an ancestor candidate, either by splicing it
// between the candidate and one or more of its children, or by descending
// further.  It reports whether some child captured ineq, in which case the
// candidate must not take it as a direct child.
func (p *Poset) linkUnder(candidate *Inequality, ineq *Inequality, frontier *[]*Inequality, visited map[string]bool) (bool, error) {
	captured := false
	//
	for _, child := range candidate.Children().Values() {
		push := false
		//
		switch {
		case child.Cells().Equals(ineq.Cells()):
			// Impossible for a fresh cell set, but harmless.
		case child.Cells().ProperSubsetOf(ineq.Cells()):
			// Splice ineq between candidate and child.
			captured = true
			//
			candidate.Children().Discard(child)
			child.Parents().Discard(candidate)
			//
			if err := attach(candidate, ineq); err != nil {
				return false, err
			} else if err := attach(ineq, child); err != nil {
				return false, err
			}
		case ineq.Cells().ProperSubsetOf(child.Cells()):
			// Child is itself an ancestor; descend.
			captured = true
			push = true
		case !child.Cells().Disjoint(ineq.Cells()):
			// Descendants of child may be related.
			push = true
		}
		//
		if push && !visited[child.Cells().Key()] {
			visited[child.Cells().Key()] = true
			*frontier = append(*frontier, child)
		}
	}
	//
	return captured, nil
}

// attach records a direct parent -> child edge.
func attach(parent *Inequality, child *Inequality) error {
	if err := parent.Children().Add(child); err != nil {
		return err
	}
	//
	return child.Parents().Add(parent)
}

// Remove deletes an inequality (if live), re-linking each of its former
// parents to those of its former children not already reachable another way,
// and promoting newly orphaned children to roots.  Returns the removed
// inequality, or nil when the cell set was not live.
func (p *Poset) Remove(ineq *Inequality) *Inequality {
	removed := p.ineqs.Discard(ineq)
	if removed == nil {
		return nil
	}
	//
	p.fresh.Discard(removed)
	//
	var (
		parents  = removed.Parents().Values()
		children = removed.Children().Values()
	)
	//
	for _, parent := range parents {
		parent.Children().Discard(removed)
	}
	//
	for _, child := range children {
		child.Parents().Discard(removed)
	}
	// Bridge the gap left behind, unless parent and child are already
	// connected through some other inequality.
	for _, parent := range parents {
		for _, child := range children {
			if parent.Children().Disjoint(child.Parents()) {
				// Errors are impossible here: both edge sets are fresh.
				attach(parent, child) //nolint:errcheck
			}
		}
	}
	//
	if p.roots.Discard(removed) != nil {
		for _, child := range children {
			if child.Parents().IsEmpty() {
				// Cannot fail: a parentless child is absent from roots.
				p.roots.Add(child) //nolint:errcheck
			}
		}
	}
	//
	return removed
}

// CrossIneqs sweeps the fresh frontier (or, when it is empty, every live
// inequality), crossing each against its neighbours in the poset: its
// parents, its siblings under each parent, each pair of its parents, and its
// children.  Everything derived flows back through Add, so the sweep both
// updates the frontier and counts how much it changed the system.
func (p *Poset) CrossIneqs() error {
	var sweep []*Inequality
	//
	if !p.fresh.IsEmpty() {
		sweep = p.fresh.Values()
	} else {
		sweep = p.ineqs.Values()
	}
	//
	p.numAdded = 0
	//
	for _, ith := range sweep {
		for _, parent := range ith.Parents().Values() {
			if err := p.crossInto(ith, parent); err != nil {
				return err
			}
			// Siblings under this parent.
			for _, sibling := range parent.Children().Values() {
				if err := p.crossInto(ith, sibling); err != nil {
					return err
				}
			}
			// Parents against parents.
			for _, other := range ith.Parents().Values() {
				if err := p.crossInto(parent, other); err != nil {
					return err
				}
			}
		}
		//
		for _, child := range ith.Children().Values() {
			if err := p.crossInto(ith, child); err != nil {
				return err
			}
		}
	}
	//
	p.fresh = NewIndex()
	//
	return nil
}

// CrossAll crosses every live pair, regardless of any poset relationship.
// This is a last-resort sweep for when crossing the frontier makes no
// progress: related pairs whose common ancestor was reduced away no longer
// meet through edges, yet can still yield fresh information.
func (p *Poset) CrossAll() error {
	values := p.ineqs.Values()
	p.numAdded = 0
	//
	for i, ith := range values {
		for _, jth := range values[i+1:] {
			if err := p.crossInto(ith, jth); err != nil {
				return err
			}
		}
	}
	//
	return nil
}

// crossInto crosses a pair and feeds everything derived back into the poset.
func (p *Poset) crossInto(left *Inequality, right *Inequality) error {
	derived, err := left.Cross(right)
	if err != nil {
		return err
	}
	//
	for _, ith := range derived {
		if err := p.Add(ith); err != nil {
			return err
		}
	}
	//
	return nil
}

// FindTrivial collects the maximal trivial inequalities: walking by
// descending cell count, a trivial inequality is kept unless its cells are
// contained in an already-kept one.
func (p *Poset) FindTrivial() []*Inequality {
	var trivial []*Inequality
	//
	for _, ith := range p.ineqs.SortedValues() {
		if !ith.Trivial() {
			continue
		}
		//
		subsumed := false
		//
		for _, jth := range trivial {
			if ith.Cells().SubsetOf(jth.Cells()) {
				subsumed = true
				break
			}
		}
		//
		if !subsumed {
			trivial = append(trivial, ith)
		}
	}
	//
	return trivial
}

// Reduce applies a set of trivial inequalities to the system.  Cells of
// empty trivials (hi == 0) are known safe, cells of full trivials known
// mines; any inequality touching either is removed and, unless fully
// resolved, re-inserted over its undecided cells with both bounds lowered by
// the number of known mines taken out (clamped into validity).
func (p *Poset) Reduce(trivial []*Inequality) error {
	if len(trivial) == 0 {
		return nil
	}
	//
	revealed := NewCellSet()
	flagged := NewCellSet()
	//
	for _, ith := range trivial {
		if ith.Lo() == 0 {
			revealed = revealed.Union(ith.Cells())
		} else {
			flagged = flagged.Union(ith.Cells())
		}
	}
	//
	marked := revealed.Union(flagged)
	//
	for _, ith := range p.ineqs.SortedValues() {
		if ith.Cells().SubsetOf(marked) {
			// Fully resolved.
			p.Remove(ith)
		} else if !ith.Cells().Disjoint(marked) {
			p.Remove(ith)
			//
			var (
				mines = flagged.Intersect(ith.Cells()).Size()
				cells = ith.Cells().Difference(marked)
				lo    = clamp(int(ith.Lo())-int(mines), cells.Size())
				hi    = clamp(int(ith.Hi())-int(mines), cells.Size())
			)
			//
			reduced, err := New(cells, lo, hi)
			if err != nil {
				return err
			}
			//
			if err := p.Add(reduced); err != nil {
				return err
			}
		}
	}
	//
	return nil
}

// clamp forces a bound into the valid range for a cell set of size n.
func clamp(bound int, n uint) uint {
	if bound < 0 {
		return 0
	} else if uint(bound) > n {
		return n
	}
	//
	return uint(bound)
}
