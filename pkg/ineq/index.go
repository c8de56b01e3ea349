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
	"sort"
)

// Index maps cell sets to inequalities, holding at most one inequality per
// distinct cell set.  It is the representation used both for the primary
// store of a Poset and for the parent / child edge sets of each inequality.
type Index struct {
	entries map[string]*Inequality
}

// NewIndex constructs an empty index.
func NewIndex() *Index {
	return &Index{make(map[string]*Inequality)}
}

// Len returns the number of inequalities held.
func (p *Index) Len() uint {
	return uint(len(p.entries))
}

// IsEmpty checks whether this index holds any inequality at all.
func (p *Index) IsEmpty() bool {
	return len(p.entries) == 0
}

// Add upserts an inequality.  If one is already present for the same cells,
// its bounds are tightened to the intersection of the old and new ranges,
// failing with ErrUnsatisfiable when that intersection is empty.
func (p *Index) Add(ineq *Inequality) error {
	key := ineq.Cells().Key()
	//
	if old, ok := p.entries[key]; ok && old != ineq {
		lo := max(old.Lo(), ineq.Lo())
		hi := min(old.Hi(), ineq.Hi())
		//
		if lo > hi {
			return fmt.Errorf("%w: %s against (%d, %d)", ErrUnsatisfiable, old, ineq.Lo(), ineq.Hi())
		}
		//
		return old.SetBounds(lo, hi)
	}
	//
	p.entries[key] = ineq
	//
	return nil
}

// Lookup finds the inequality stored for the given cells, if any.
func (p *Index) Lookup(cells CellSet) (*Inequality, bool) {
	ineq, ok := p.entries[cells.Key()]
	return ineq, ok
}

// Get finds the inequality stored for the given cells, failing with
// ErrMissing when there is none.
func (p *Index) Get(cells CellSet) (*Inequality, error) {
	if ineq, ok := p.entries[cells.Key()]; ok {
		return ineq, nil
	}
	//
	return nil, fmt.Errorf("%w: no inequality for cell set %s", ErrMissing, cells)
}

// Remove deletes the inequality stored for the given cells, failing with
// ErrMissing when there is none.
func (p *Index) Remove(ineq *Inequality) (*Inequality, error) {
	if removed := p.Discard(ineq); removed != nil {
		return removed, nil
	}
	//
	return nil, fmt.Errorf("%w: cell set %s not found", ErrMissing, ineq.Cells())
}

// Discard deletes the inequality stored for the given cells (if any),
// returning whatever was removed.
func (p *Index) Discard(ineq *Inequality) *Inequality {
	if ineq == nil {
		return nil
	}
	//
	key := ineq.Cells().Key()
	removed := p.entries[key]
	//
	delete(p.entries, key)
	//
	return removed
}

// Has checks whether an inequality over the same cells is present.  When
// exact is given, the stored bounds must match as well.
func (p *Index) Has(ineq *Inequality, exact bool) bool {
	stored, ok := p.entries[ineq.Cells().Key()]
	//
	if !ok {
		return false
	} else if exact {
		return stored.Lo() == ineq.Lo() && stored.Hi() == ineq.Hi()
	}
	//
	return true
}

// Intersection returns (from this index) the inequalities whose cell sets
// appear in both indices.
func (p *Index) Intersection(other *Index) []*Inequality {
	var common []*Inequality
	//
	for key, ineq := range p.entries {
		if _, ok := other.entries[key]; ok {
			common = append(common, ineq)
		}
	}
	//
	return common
}

// Disjoint checks whether the two indices share no cell set.
func (p *Index) Disjoint(other *Index) bool {
	for key := range p.entries {
		if _, ok := other.entries[key]; ok {
			return false
		}
	}
	//
	return true
}

// Values returns the inequalities held, in no particular order.
func (p *Index) Values() []*Inequality {
	values := make([]*Inequality, 0, len(p.entries))
	//
	for _, ineq := range p.entries {
		values = append(values, ineq)
	}
	//
	return values
}

// SortedValues returns the inequalities held, ordered by descending cell
// count with ties broken structurally.  This is the order used wherever the
// engine's observable behaviour depends on iteration order.
func (p *Index) SortedValues() []*Inequality {
	values := p.Values()
	//
	sort.Slice(values, func(i, j int) bool {
		l, r := values[i].Cells(), values[j].Cells()
		//
		if l.Size() != r.Size() {
			return l.Size() > r.Size()
		}
		//
		return l.Key() < r.Key()
	})
	//
	return values
}
