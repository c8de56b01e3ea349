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
	"sort"
)

// Demo is a named built-in puzzle, ready to solve.
type Demo struct {
	Name        string
	Board       Board
	Revealed    []uint
	Constraints []Constraint
}

// NewDemo looks up a built-in puzzle by name.
func NewDemo(name string) (*Demo, error) {
	switch name {
	case "simple":
		return simpleDemo()
	case "lock1":
		return lockDemo(name, 6, 6, ".*.?...*.?..*.***?**.?..*?*.*....*.?")
	case "lock2":
		return lockDemo(name, 6, 6, ".***.*..*****.*..*.?.....*..*?.*.***")
	case "lock6":
		return lockDemo(name, 10, 10,
			"**?....**.*...*.*......*......*.*.?**.*.**?.*??....**.?*.??.....*.***"+
				"...........*?**.*...**.*?..**?.")
	case "squared-square":
		return squaredSquareDemo()
	default:
		return nil, fmt.Errorf("unknown demo puzzle \"%s\"", name)
	}
}

// DemoNames returns the names of all built-in puzzles, sorted.
func DemoNames() []string {
	names := []string{"simple", "lock1", "lock2", "lock6", "squared-square"}
	sort.Strings(names)
	//
	return names
}

// simpleDemo is a 4x2 board with two mines, three cells revealed up front
// and a single whole-board count.
//
//	. * . *
//	? . . ?
func simpleDemo() (*Demo, error) {
	board, err := NewBoard(".*.*?..?", [][]uint{
		{1, 4, 5},
		{0, 2, 4, 5, 6},
		{1, 3, 5, 6, 7},
		{2, 6, 7},
		{0, 1, 5},
		{0, 1, 2, 4, 6},
		{1, 2, 3, 5, 7},
		{2, 3, 6},
	})
	//
	if err != nil {
		return nil, err
	}
	//
	return &Demo{
		Name:        "simple",
		Board:       board,
		Revealed:    []uint{0, 5, 7},
		Constraints: []Constraint{board.TotalHint()},
	}, nil
}

// lockDemo builds one of the "Combination Lock" grids: nothing revealed,
// with whole-board, per-row and per-column mine counts.
func lockDemo(name string, width uint, height uint, states string) (*Demo, error) {
	board, err := NewGrid(width, height, states)
	if err != nil {
		return nil, err
	}
	//
	constraints := []Constraint{board.TotalHint()}
	constraints = append(constraints, board.ColumnHints(width, height)...)
	constraints = append(constraints, board.RowHints(width, height)...)
	//
	return &Demo{name, board, nil, constraints}, nil
}

// squaredSquareDemo is the "Squared Square" puzzle: an irregular board whose
// hints are colour groups rather than rows and columns.
func squaredSquareDemo() (*Demo, error) {
	board, err := NewBoard("???*..?...?.**??.", [][]uint{
		{1, 3, 5, 6},
		{0, 2, 3, 4},
		{1, 4, 7, 8},
		{0, 1, 2, 4, 6, 7, 9, 10},
		{1, 2, 3, 7},
		{0, 6, 9, 13},
		{0, 3, 5, 9},
		{2, 3, 4, 8, 10, 11, 12},
		{2, 7, 12, 15},
		{3, 5, 6, 10, 11, 13, 14},
		{3, 7, 9, 11},
		{7, 9, 10, 12, 14, 15, 16},
		{7, 8, 11, 15},
		{5, 9, 14, 16},
		{9, 11, 13, 16},
		{8, 11, 12, 16},
		{11, 13, 14, 15},
	})
	//
	if err != nil {
		return nil, err
	}
	//
	constraints := []Constraint{
		{1, []uint{0, 2, 13, 15}},     // pink
		{0, []uint{1, 5, 8, 16}},      // red
		{1, []uint{3, 7, 9, 11}},      // orange
		{1, []uint{4, 6, 10, 12, 14}}, // yellow
		board.TotalHint(),
	}
	//
	return &Demo{
		Name:        "squared-square",
		Board:       board,
		Revealed:    []uint{10, 11, 16},
		Constraints: constraints,
	}, nil
}
