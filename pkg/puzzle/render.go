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
	"strings"

	"github.com/tametsi/go-tametsi/pkg/util/termio"
)

// Render pretty-prints the solve state of a grid puzzle, one row per line:
// '.' for cells decided safe, 'F' for cells decided mined and '#' for cells
// still undecided.  When ansi is given, decided cells are coloured (green
// for safe, red for mines).
func (p *Puzzle) Render(width uint, ansi bool) string {
	var builder strings.Builder
	//
	for i := uint(0); i < uint(len(p.board)); i++ {
		if i > 0 && i%width == 0 {
			builder.WriteString("\n")
		}
		//
		switch {
		case p.revealedSet[i]:
			writeCell(&builder, '.', termio.TERM_GREEN, ansi)
		case p.flaggedSet[i]:
			writeCell(&builder, 'F', termio.TERM_RED, ansi)
		default:
			writeCell(&builder, '#', termio.TERM_WHITE, ansi)
		}
	}
	//
	builder.WriteString("\n")
	//
	return builder.String()
}

// RenderTruth pretty-prints the ground truth of a grid puzzle in the
// compact board notation.
func (p *Puzzle) RenderTruth(width uint) string {
	var builder strings.Builder
	//
	for i, cell := range p.board {
		if i > 0 && uint(i)%width == 0 {
			builder.WriteString("\n")
		}
		//
		builder.WriteRune(cell.Content.Rune())
	}
	//
	builder.WriteString("\n")
	//
	return builder.String()
}

func writeCell(builder *strings.Builder, symbol rune, colour uint, ansi bool) {
	if ansi {
		escape := termio.NewAnsiEscape().FgColour(colour)
		builder.WriteString(escape.Build())
		builder.WriteRune(symbol)
		builder.WriteString(termio.ResetAnsiEscape().Build())
	} else {
		builder.WriteRune(symbol)
	}
}
