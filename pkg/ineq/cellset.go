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
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// CellSet is an immutable set of cell identifiers.  Two cell sets holding the
// same identifiers are interchangeable, regardless of how they were built, and
// share the same key.  All operations return new sets, leaving their operands
// untouched.
type CellSet struct {
	bits *bitset.BitSet
	key  string
}

// NewCellSet constructs a cell set holding exactly the given cells.
func NewCellSet(cells ...uint) CellSet {
	bits := bitset.New(uint(len(cells)))
	//
	for _, c := range cells {
		bits.Set(c)
	}
	//
	return newCellSet(bits)
}

// newCellSet wraps a bitset which, from here on, must not be mutated.
func newCellSet(bits *bitset.BitSet) CellSet {
	return CellSet{bits, encodeWords(bits.Bytes())}
}

// encodeWords packs the backing words into a string key, dropping trailing
// zero words so that capacity differences between bitsets do not leak into
// the key.
func encodeWords(words []uint64) string {
	n := len(words)
	for n > 0 && words[n-1] == 0 {
		n--
	}
	//
	buf := make([]byte, n*8)
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint64(buf[i*8:], words[i])
	}
	//
	return string(buf)
}

// Key returns a structural hash key for this set, suitable for use as a map
// key.
func (p CellSet) Key() string {
	return p.key
}

// Contains checks whether a given cell is in this set.
func (p CellSet) Contains(cell uint) bool {
	return p.bits.Test(cell)
}

// Size returns the number of cells in this set.
func (p CellSet) Size() uint {
	return p.bits.Count()
}

// IsEmpty checks whether this set holds no cells at all.
func (p CellSet) IsEmpty() bool {
	return p.bits.Count() == 0
}

// Union returns the set of cells in either this set or the other.
func (p CellSet) Union(other CellSet) CellSet {
	return newCellSet(p.bits.Union(other.bits))
}

// Intersect returns the set of cells in both this set and the other.
func (p CellSet) Intersect(other CellSet) CellSet {
	return newCellSet(p.bits.Intersection(other.bits))
}

// Difference returns the set of cells in this set but not the other.
func (p CellSet) Difference(other CellSet) CellSet {
	return newCellSet(p.bits.Difference(other.bits))
}

// Equals checks whether both sets hold exactly the same cells.
func (p CellSet) Equals(other CellSet) bool {
	return p.key == other.key
}

// SubsetOf checks whether every cell of this set is in the other.
func (p CellSet) SubsetOf(other CellSet) bool {
	return p.bits.IntersectionCardinality(other.bits) == p.bits.Count()
}

// ProperSubsetOf checks whether this set is a subset of the other, and the
// other holds at least one cell this set does not.
func (p CellSet) ProperSubsetOf(other CellSet) bool {
	return p.Size() < other.Size() && p.SubsetOf(other)
}

// Disjoint checks whether the two sets have no cell in common.
func (p CellSet) Disjoint(other CellSet) bool {
	return p.bits.IntersectionCardinality(other.bits) == 0
}

// Cells returns the cells of this set in ascending order.
func (p CellSet) Cells() []uint {
	cells := make([]uint, 0, p.bits.Count())
	//
	for i, ok := p.bits.NextSet(0); ok; i, ok = p.bits.NextSet(i + 1) {
		cells = append(cells, i)
	}
	//
	return cells
}

func (p CellSet) String() string {
	var builder strings.Builder
	//
	builder.WriteString("{")
	//
	for i, cell := range p.Cells() {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(fmt.Sprintf("%d", cell))
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}
