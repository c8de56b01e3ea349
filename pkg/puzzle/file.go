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
	"encoding/json"
	"fmt"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// File is the on-disk puzzle format, readable from YAML or JSON.  A puzzle
// is either a width x height grid given by a compressed board string, or an
// irregular board given by explicit per-cell neighbour lists.  Hints name
// which constraint families to derive from the board's ground truth;
// explicit constraints are taken as given.
type File struct {
	Width  uint   `json:"width" yaml:"width"`
	Height uint   `json:"height" yaml:"height"`
	Board  string `json:"board" yaml:"board"`
	// Explicit neighbour lists; empty for grid puzzles.
	Neighbours [][]uint `json:"neighbours,omitempty" yaml:"neighbours,omitempty"`
	// Cells revealed before solving starts.
	Revealed []uint `json:"revealed,omitempty" yaml:"revealed,omitempty"`
	// Constraint families derived from the board: "total", "rows", "columns".
	Hints []string `json:"hints,omitempty" yaml:"hints,omitempty"`
	// Explicit (count, cells) constraints, e.g. colour groups.
	Constraints []FileConstraint `json:"constraints,omitempty" yaml:"constraints,omitempty"`
}

// FileConstraint is the on-disk form of a Constraint.
type FileConstraint struct {
	Count uint   `json:"count" yaml:"count"`
	Cells []uint `json:"cells" yaml:"cells"`
}

// ReadFile reads a puzzle file, choosing the decoder by file extension
// (.json for JSON, anything else for YAML).
func ReadFile(filename string) (*Puzzle, error) {
	var file File
	//
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	//
	if path.Ext(filename) == ".json" {
		err = json.Unmarshal(bytes, &file)
	} else {
		err = yaml.Unmarshal(bytes, &file)
	}
	//
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	//
	return file.Build()
}

// Build assembles the puzzle a file describes.
func (p *File) Build() (*Puzzle, error) {
	var (
		board Board
		err   error
	)
	//
	if len(p.Neighbours) > 0 {
		board, err = NewBoard(p.Board, p.Neighbours)
	} else {
		board, err = NewGrid(p.Width, p.Height, p.Board)
	}
	//
	if err != nil {
		return nil, err
	}
	//
	var constraints []Constraint
	//
	for _, hint := range p.Hints {
		if hint != "total" && p.Width*p.Height != uint(len(board)) {
			return nil, fmt.Errorf("hint family \"%s\" requires a %dx%d grid board", hint, p.Width, p.Height)
		}
		//
		switch hint {
		case "total":
			constraints = append(constraints, board.TotalHint())
		case "rows":
			constraints = append(constraints, board.RowHints(p.Width, p.Height)...)
		case "columns":
			constraints = append(constraints, board.ColumnHints(p.Width, p.Height)...)
		default:
			return nil, fmt.Errorf("unknown hint family \"%s\"", hint)
		}
	}
	//
	for _, c := range p.Constraints {
		constraints = append(constraints, Constraint{c.Count, c.Cells})
	}
	//
	return NewPuzzle(board, p.Revealed, constraints)
}
