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
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tametsi/go-tametsi/pkg/puzzle"
)

// GetFlag gets an expected flag, or prints the error and exits if one arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer, or prints the error and exits if
// one arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(4)
	}

	return r
}

// GetString gets an expected string, or prints the error and exits if one
// arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(4)
	}

	return r
}

// loadPuzzle resolves a puzzle argument: either the name of a built-in demo
// puzzle, or the filename of a puzzle file.  The demo's grid width (when
// known) is returned for rendering.
func loadPuzzle(arg string) (*puzzle.Puzzle, uint, error) {
	if strings.ContainsAny(arg, "./\\") {
		p, err := puzzle.ReadFile(arg)
		if err != nil {
			return nil, 0, err
		}
		//
		return p, gridWidth(p), nil
	}
	//
	demo, err := puzzle.NewDemo(arg)
	if err != nil {
		return nil, 0, fmt.Errorf("%s (known puzzles: %s)", err, strings.Join(puzzle.DemoNames(), ", "))
	}
	//
	p, err := puzzle.NewPuzzle(demo.Board, demo.Revealed, demo.Constraints)
	if err != nil {
		return nil, 0, err
	}
	//
	return p, gridWidth(p), nil
}

// gridWidth guesses a rendering width for a board.  On a grid the largest
// neighbour of cell 0 is the cell diagonally below it (width + 1), which
// pins the width down; irregular boards just render with whatever this
// yields.
func gridWidth(p *puzzle.Puzzle) uint {
	var (
		n       = uint(len(p.Board()))
		largest = uint(0)
	)
	//
	for _, m := range p.Board()[0].Neighbours {
		if m > largest {
			largest = m
		}
	}
	//
	if largest < 3 {
		// Single row (or no neighbours at all).
		return n
	}
	//
	return largest - 1
}
