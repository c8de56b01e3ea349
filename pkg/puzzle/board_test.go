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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseContent(t *testing.T) {
	for _, c := range []struct {
		char    rune
		kind    Kind
		count   uint8
		numeric bool
	}{
		{'.', SAFE, 0, true},
		{'*', MINE, 0, false},
		{'?', UNKNOWN, 0, false},
		{'0', COUNT, 0, true},
		{'3', COUNT, 3, true},
		{'9', COUNT, 9, true},
	} {
		content, err := ParseContent(c.char)
		assert.NoError(t, err)
		assert.Equal(t, Content{c.kind, c.count}, content)
		assert.Equal(t, c.numeric, content.Numeric())
		assert.Equal(t, c.char, content.Rune())
	}
	//
	_, err := ParseContent('x')
	assert.Error(t, err)
}

func TestNewGrid_Neighbours(t *testing.T) {
	// 3x2 grid:
	//   0 1 2
	//   3 4 5
	board, err := NewGrid(3, 2, "......")
	assert.NoError(t, err)
	assert.Len(t, board, 6)
	//
	assert.ElementsMatch(t, []uint{1, 3, 4}, board[0].Neighbours)
	assert.ElementsMatch(t, []uint{0, 2, 3, 4, 5}, board[1].Neighbours)
	assert.ElementsMatch(t, []uint{0, 1, 4}, board[3].Neighbours)
	assert.ElementsMatch(t, []uint{0, 1, 2, 3, 5}, board[4].Neighbours)
}

func TestNewGrid_BadInput(t *testing.T) {
	_, err := NewGrid(3, 2, "....")
	assert.Error(t, err)
	//
	_, err = NewGrid(2, 2, "..x.")
	assert.Error(t, err)
}

func TestNewBoard_BadNeighbour(t *testing.T) {
	_, err := NewBoard("..", [][]uint{{1}, {5}})
	assert.Error(t, err)
}

func TestBoard_Hints(t *testing.T) {
	// * . .
	// . . *
	board, err := NewGrid(3, 2, "*....*")
	assert.NoError(t, err)
	//
	assert.Equal(t, []uint{0, 5}, board.Mines())
	//
	total := board.TotalHint()
	assert.Equal(t, uint(2), total.Count)
	assert.Len(t, total.Cells, 6)
	//
	rows := board.RowHints(3, 2)
	assert.Len(t, rows, 2)
	assert.Equal(t, Constraint{1, []uint{0, 1, 2}}, rows[0])
	assert.Equal(t, Constraint{1, []uint{3, 4, 5}}, rows[1])
	//
	columns := board.ColumnHints(3, 2)
	assert.Len(t, columns, 3)
	assert.Equal(t, Constraint{1, []uint{0, 3}}, columns[0])
	assert.Equal(t, Constraint{0, []uint{1, 4}}, columns[1])
	assert.Equal(t, Constraint{1, []uint{2, 5}}, columns[2])
}

func TestDemos(t *testing.T) {
	for _, name := range DemoNames() {
		demo, err := NewDemo(name)
		assert.NoError(t, err, name)
		assert.NotEmpty(t, demo.Board, name)
		assert.NotEmpty(t, demo.Constraints, name)
	}
	//
	_, err := NewDemo("no-such-puzzle")
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	demo, err := NewDemo("simple")
	assert.NoError(t, err)
	//
	p, err := NewPuzzle(demo.Board, demo.Revealed, demo.Constraints)
	assert.NoError(t, err)
	//
	assert.Equal(t, ".*.*\n?..?\n", p.RenderTruth(4))
	// Only the initial reveals are decided before solving.
	assert.Equal(t, ".###\n#.#.\n", p.Render(4, false))
	//
	_, err = p.Solve()
	assert.NoError(t, err)
	//
	assert.Equal(t, ".F.F\n....\n", p.Render(4, false))
}
