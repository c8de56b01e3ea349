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
package puzzle

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/tametsi/go-tametsi/pkg/ineq"
)

// Constraint asserts that a given group of cells contains exactly Count
// mines.  Constraints arise from whole-board totals and row / column /
// colour hints.
type Constraint struct {
	Count uint
	Cells []uint
}

// Puzzle owns the board view together with the evolving solve state: which
// cells have been decided so far, which revealed cells still need their
// neighbourhoods converted into seed inequalities, and the inequality poset
// itself.  Decided cells are monotone; once revealed or flagged, a cell
// never changes state again.
type Puzzle struct {
	board Board
	poset *ineq.Poset
	// Cells decided safe, in decision order.
	revealed []uint
	// Cells decided mined, in decision order.
	flagged []uint
	// Revealed cells whose neighbourhoods have not been seeded yet.
	changed []uint
	// Membership sets for the three lists above.
	revealedSet map[uint]bool
	flaggedSet  map[uint]bool
	changedSet  map[uint]bool
}

// Result is the outcome of a solve: the decided cells in decision order,
// plus whatever inequalities the engine could not resolve.  A non-empty
// remainder means the puzzle cannot be finished without guessing.
type Result struct {
	Revealed  []uint
	Flagged   []uint
	Remaining []*ineq.Inequality
}

// Complete checks whether every cell of a board with the given number of
// cells has been decided.
func (p *Result) Complete(cells uint) bool {
	return uint(len(p.Revealed)+len(p.Flagged)) == cells
}

// NewPuzzle constructs a puzzle from a board, the initially revealed cells
// and the input constraints.  Each constraint is seeded as an inequality
// over its still-hidden cells; initially revealed cells are dropped from the
// group with the count preserved, since they are known safe.
func NewPuzzle(board Board, revealed []uint, constraints []Constraint) (*Puzzle, error) {
	p := &Puzzle{
		board:       board,
		poset:       ineq.NewPoset(),
		revealedSet: make(map[uint]bool),
		flaggedSet:  make(map[uint]bool),
		changedSet:  make(map[uint]bool),
	}
	//
	for _, r := range revealed {
		if r >= uint(len(board)) {
			return nil, fmt.Errorf("revealed cell %d out of range", r)
		}
		//
		p.reveal(r)
	}
	//
	for _, c := range constraints {
		var cells []uint
		//
		for _, id := range c.Cells {
			if id >= uint(len(board)) {
				return nil, fmt.Errorf("constraint cell %d out of range", id)
			} else if !p.revealedSet[id] {
				cells = append(cells, id)
			}
		}
		//
		if len(cells) == 0 {
			continue
		}
		//
		seed, err := ineq.New(ineq.NewCellSet(cells...), c.Count, c.Count)
		if err != nil {
			return nil, err
		}
		//
		if err := p.poset.Add(seed); err != nil {
			return nil, err
		}
	}
	//
	return p, nil
}

// Board returns the board view this puzzle was built over.
func (p *Puzzle) Board() Board {
	return p.board
}

// Poset returns the live inequality poset.
func (p *Puzzle) Poset() *ineq.Poset {
	return p.poset
}

// Revealed reports whether a cell has been decided safe.
func (p *Puzzle) Revealed(cell uint) bool {
	return p.revealedSet[cell]
}

// Flagged reports whether a cell has been decided mined.
func (p *Puzzle) Flagged(cell uint) bool {
	return p.flaggedSet[cell]
}

// Solve runs the propagation loop to its fixed point: seed inequalities
// from newly revealed neighbourhoods, cross the frontier, collect and apply
// the trivial inequalities, reduce, and go again.  The loop ends when the
// poset empties (every seeded group decided) or when an iteration makes no
// progress even after an all-pairs sweep, in which case the unresolved
// inequalities are returned for the caller to inspect.
func (p *Puzzle) Solve() (*Result, error) {
	iteration := 0
	//
	for !p.poset.IsEmpty() {
		iteration++
		//
		if err := p.seedNeighbourhoods(); err != nil {
			return nil, err
		}
		//
		if err := p.poset.CrossIneqs(); err != nil {
			return nil, err
		}
		//
		trivial := p.poset.FindTrivial()
		//
		if len(trivial) == 0 && p.poset.NumAdded() == 0 {
			// The frontier is out of steam.  Cross every remaining pair once
			// before giving up.
			if err := p.poset.CrossAll(); err != nil {
				return nil, err
			}
			//
			trivial = p.poset.FindTrivial()
			//
			if len(trivial) == 0 && p.poset.NumAdded() == 0 {
				log.Debugf("no progress after %d iterations, %d inequalities left", iteration, p.poset.Len())
				break
			}
		}
		//
		p.apply(trivial)
		//
		if err := p.poset.Reduce(trivial); err != nil {
			return nil, err
		}
		//
		log.Debugf("iteration %d: %d trivial, %d revealed, %d flagged, %d live",
			iteration, len(trivial), len(p.revealed), len(p.flagged), p.poset.Len())
	}
	//
	return &Result{p.revealed, p.flagged, p.poset.SortedValues()}, nil
}

// seedNeighbourhoods converts the neighbourhood of every recently revealed
// numeric cell into a seed inequality over its undecided neighbours, then
// clears the queue.
func (p *Puzzle) seedNeighbourhoods() error {
	for _, c := range p.changed {
		cell := p.board[c]
		//
		if !cell.Content.Numeric() {
			continue
		}
		//
		var (
			cells []uint
			count uint
		)
		//
		for _, n := range cell.Neighbours {
			if p.revealedSet[n] || p.flaggedSet[n] {
				continue
			}
			//
			cells = append(cells, n)
			// For SAFE cells the count comes from the board's ground truth;
			// COUNT cells carry it explicitly, discounted below.
			if p.board[n].Content.Kind == MINE {
				count++
			}
		}
		//
		if cell.Content.Kind == COUNT {
			count = discount(uint(cell.Content.Count), cell.Neighbours, p.flaggedSet)
		}
		//
		if len(cells) == 0 {
			continue
		}
		//
		seed, err := ineq.New(ineq.NewCellSet(cells...), count, count)
		if err != nil {
			return err
		}
		//
		if err := p.poset.Add(seed); err != nil {
			return err
		}
	}
	//
	p.changed = nil
	p.changedSet = make(map[uint]bool)
	//
	return nil
}

// discount subtracts the already-flagged neighbours from an explicit
// neighbour mine count.
func discount(count uint, neighbours []uint, flagged map[uint]bool) uint {
	for _, n := range neighbours {
		if flagged[n] && count > 0 {
			count--
		}
	}
	//
	return count
}

// apply marks the cells decided by a set of trivial inequalities: empty
// trivials reveal their cells (queueing them for seeding), full trivials
// flag theirs.  Cells within each trivial are taken in ascending order, so
// the decision order is deterministic.
func (p *Puzzle) apply(trivial []*ineq.Inequality) {
	for _, ith := range trivial {
		if ith.Lo() == 0 {
			for _, cell := range ith.Cells().Cells() {
				p.reveal(cell)
			}
		} else {
			for _, cell := range ith.Cells().Cells() {
				p.flag(cell)
			}
		}
	}
}

// reveal marks a cell safe and queues it for neighbourhood seeding.
func (p *Puzzle) reveal(cell uint) {
	if !p.revealedSet[cell] {
		p.revealedSet[cell] = true
		p.revealed = append(p.revealed, cell)
	}
	//
	if !p.changedSet[cell] {
		p.changedSet[cell] = true
		p.changed = append(p.changed, cell)
	}
}

// flag marks a cell mined.
func (p *Puzzle) flag(cell uint) {
	if !p.flaggedSet[cell] {
		p.flaggedSet[cell] = true
		p.flagged = append(p.flagged, cell)
	}
}
