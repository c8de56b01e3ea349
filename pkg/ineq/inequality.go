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

import (
	"fmt"
)

// Inequality asserts that a given set of cells contains between Lo() and Hi()
// mines (inclusive).  Inequalities live inside a Poset, which tracks their
// subset relationships via the parents / children indices.  Those edges are
// relations rather than ownership: the Poset's primary index owns every
// inequality, keyed by cell set.
type Inequality struct {
	cells CellSet
	lo    uint
	hi    uint
	// Inequalities whose cells strictly contain ours.
	parents *Index
	// Inequalities whose cells are strictly contained in ours.
	children *Index
}

// New constructs an inequality over the given (non-empty) cells, failing with
// ErrInvalidBounds unless 0 <= lo <= hi <= |cells|.
func New(cells CellSet, lo uint, hi uint) (*Inequality, error) {
	if cells.IsEmpty() {
		return nil, fmt.Errorf("%w: empty cell set", ErrInvalidBounds)
	}
	//
	p := &Inequality{cells, 0, 0, NewIndex(), NewIndex()}
	//
	if err := p.SetBounds(lo, hi); err != nil {
		return nil, err
	}
	//
	return p, nil
}

// Cells returns the cell set this inequality ranges over.
func (p *Inequality) Cells() CellSet {
	return p.cells
}

// Lo returns the least number of mines the cells can contain.
func (p *Inequality) Lo() uint {
	return p.lo
}

// Hi returns the greatest number of mines the cells can contain.
func (p *Inequality) Hi() uint {
	return p.hi
}

// SetBounds replaces the bounds of this inequality, re-validating them
// against the cell set.
func (p *Inequality) SetBounds(lo uint, hi uint) error {
	if lo > hi {
		return fmt.Errorf("%w: min %d above max %d", ErrInvalidBounds, lo, hi)
	} else if hi > p.cells.Size() {
		return fmt.Errorf("%w: max %d above cell count %d", ErrInvalidBounds, hi, p.cells.Size())
	}
	//
	p.lo, p.hi = lo, hi
	//
	return nil
}

// Trivial checks whether this inequality forces all its cells into a single
// state: every cell a mine (lo == |cells|), or no cell a mine (hi == 0).
func (p *Inequality) Trivial() bool {
	return p.lo == p.cells.Size() || p.hi == 0
}

// Parents returns the index of direct parents of this inequality.
func (p *Inequality) Parents() *Index {
	return p.parents
}

// Children returns the index of direct children of this inequality.
func (p *Inequality) Children() *Index {
	return p.children
}

// Cross splits two overlapping inequalities into (up to) three over their
// shared and private regions, with the tightest bounds implied by the pair.
// Crossing identical cell sets yields nothing; crossing disjoint ones yields
// both operands unchanged.  Derived regions never exceed their parents, which
// bounds the universe of derivable inequalities and hence guarantees the
// propagation loop terminates.
func (p *Inequality) Cross(other *Inequality) ([]*Inequality, error) {
	if p.cells.Equals(other.cells) {
		return nil, nil
	} else if p.cells.Disjoint(other.cells) {
		return []*Inequality{p, other}, nil
	}
	//
	var (
		shared = p.cells.Intersect(other.cells)
		left   = p.cells.Difference(shared)
		right  = other.cells.Difference(shared)
	)
	// What the intersection must hold, given what each private region can
	// absorb of its parent's minimum; and what it can hold at most.
	sharedLo := maxInt(0, int(p.lo)-int(left.Size()), int(other.lo)-int(right.Size()))
	sharedHi := minInt(int(shared.Size()), int(p.hi), int(other.hi))
	//
	sharedIneq, err := New(shared, uint(sharedLo), uint(sharedHi))
	if err != nil {
		return nil, err
	}
	//
	derived := []*Inequality{sharedIneq}
	// Each private region keeps whatever its parent's budget leaves once the
	// intersection has taken its share.
	for _, split := range []struct {
		cells  CellSet
		lo, hi uint
	}{
		{left, p.lo, p.hi},
		{right, other.lo, other.hi},
	} {
		if split.cells.IsEmpty() {
			continue
		}
		//
		lo := maxInt(0, int(split.lo)-sharedHi)
		hi := minInt(int(split.cells.Size()), maxInt(0, int(split.hi)-sharedLo))
		//
		ith, err := New(split.cells, uint(lo), uint(hi))
		if err != nil {
			return nil, err
		}
		//
		derived = append(derived, ith)
	}
	//
	return derived, nil
}

func (p *Inequality) String() string {
	return fmt.Sprintf("(%s with (%d, %d))", p.cells.String(), p.lo, p.hi)
}

func maxInt(first int, rest ...int) int {
	for _, ith := range rest {
		if ith > first {
			first = ith
		}
	}
	//
	return first
}

func minInt(first int, rest ...int) int {
	for _, ith := range rest {
		if ith < first {
			first = ith
		}
	}
	//
	return first
}
