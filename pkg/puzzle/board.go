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
)

// Kind distinguishes what a cell turns out to hold once revealed.
type Kind uint8

const (
	// SAFE cells hold no mine; their neighbour mine count is derived from
	// the board itself.
	SAFE Kind = iota
	// MINE cells are fatal to reveal and only ever flagged.
	MINE
	// UNKNOWN cells are safe but carry no usable neighbour count (shown as
	// '?'), hence never seed inequalities.
	UNKNOWN
	// COUNT cells carry an explicit neighbour mine count, independent of the
	// board's ground truth.
	COUNT
)

// Content is the ground truth of a single cell: what kind it is and, for
// COUNT cells, the neighbour mine count it displays.
type Content struct {
	Kind  Kind
	Count uint8
}

// Numeric checks whether a revealed cell of this content yields a usable
// neighbour mine count.
func (p Content) Numeric() bool {
	return p.Kind == SAFE || p.Kind == COUNT
}

// Rune renders this content in the compact board notation.
func (p Content) Rune() rune {
	switch p.Kind {
	case SAFE:
		return '.'
	case MINE:
		return '*'
	case UNKNOWN:
		return '?'
	default:
		return rune('0' + p.Count)
	}
}

// ParseContent parses one character of the compact board notation, where '.'
// is a safe cell, '*' a mine, '?' a safe cell with unknown count and a digit
// a safe cell with an explicit count.
func ParseContent(c rune) (Content, error) {
	switch {
	case c == '.':
		return Content{SAFE, 0}, nil
	case c == '*':
		return Content{MINE, 0}, nil
	case c == '?':
		return Content{UNKNOWN, 0}, nil
	case c >= '0' && c <= '9':
		return Content{COUNT, uint8(c - '0')}, nil
	default:
		return Content{}, fmt.Errorf("unknown cell state '%c'", c)
	}
}

// Cell is one location on the board, identified by its index into the board.
type Cell struct {
	ID         uint
	Content    Content
	Neighbours []uint
}

// Board is a flattened view of a puzzle: a sequence of cells indexed by
// identifier, each carrying its ground truth and neighbour list.  The
// geometry behind the neighbour lists is irrelevant to the solver.
type Board []Cell

// NewBoard constructs a board from parallel state / neighbour data, checking
// that every neighbour reference is in range.
func NewBoard(states string, neighbours [][]uint) (Board, error) {
	if len(states) != len(neighbours) {
		return nil, fmt.Errorf("board has %d states but %d neighbour lists", len(states), len(neighbours))
	}
	//
	board := make(Board, len(states))
	//
	for i, c := range states {
		content, err := ParseContent(c)
		if err != nil {
			return nil, err
		}
		//
		for _, n := range neighbours[i] {
			if n >= uint(len(states)) {
				return nil, fmt.Errorf("cell %d has out-of-range neighbour %d", i, n)
			}
		}
		//
		board[i] = Cell{uint(i), content, neighbours[i]}
	}
	//
	return board, nil
}

// NewGrid constructs a width x height board from a compressed state string
// in row-major order, wiring up 8-neighbour adjacency.
func NewGrid(width uint, height uint, states string) (Board, error) {
	if uint(len(states)) != width*height {
		return nil, fmt.Errorf("expected %d cell states, got %d", width*height, len(states))
	}
	//
	neighbours := make([][]uint, width*height)
	//
	for i := uint(0); i < width*height; i++ {
		x, y := int(i%width), int(i/width)
		//
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				nx, ny := x+dx, y+dy
				//
				if (dx == 0 && dy == 0) || nx < 0 || nx >= int(width) || ny < 0 || ny >= int(height) {
					continue
				}
				//
				neighbours[i] = append(neighbours[i], uint(nx)+width*uint(ny))
			}
		}
	}
	//
	return NewBoard(states, neighbours)
}

// Mines returns the identifiers of all mined cells, in ascending order.
func (p Board) Mines() []uint {
	var mines []uint
	//
	for _, cell := range p {
		if cell.Content.Kind == MINE {
			mines = append(mines, cell.ID)
		}
	}
	//
	return mines
}

// TotalHint builds the whole-board mine count constraint.
func (p Board) TotalHint() Constraint {
	cells := make([]uint, len(p))
	//
	for i := range p {
		cells[i] = uint(i)
	}
	//
	return Constraint{uint(len(p.Mines())), cells}
}

// RowHints builds one mine count constraint per row of a width x height
// grid board.
func (p Board) RowHints(width uint, height uint) []Constraint {
	hints := make([]Constraint, height)
	//
	for y := uint(0); y < height; y++ {
		var (
			cells []uint
			count uint
		)
		//
		for x := uint(0); x < width; x++ {
			id := x + y*width
			cells = append(cells, id)
			//
			if p[id].Content.Kind == MINE {
				count++
			}
		}
		//
		hints[y] = Constraint{count, cells}
	}
	//
	return hints
}

// ColumnHints builds one mine count constraint per column of a width x
// height grid board.
func (p Board) ColumnHints(width uint, height uint) []Constraint {
	hints := make([]Constraint, width)
	//
	for x := uint(0); x < width; x++ {
		var (
			cells []uint
			count uint
		)
		//
		for y := uint(0); y < height; y++ {
			id := x + y*width
			cells = append(cells, id)
			//
			if p[id].Content.Kind == MINE {
				count++
			}
		}
		//
		hints[x] = Constraint{count, cells}
	}
	//
	return hints
}
