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
	"io"
)

// WriteDot dumps the parent / child edges of a poset as a directed graph in
// DOT format, one edge per line, for offline inspection with graphviz.
// Inequalities are visited by descending cell count so the dump is stable
// for a given poset.
func WriteDot(w io.Writer, poset *Poset) error {
	if _, err := io.WriteString(w, "digraph G {\n"); err != nil {
		return err
	}
	//
	for _, parent := range poset.SortedValues() {
		for _, child := range parent.Children().SortedValues() {
			line := fmt.Sprintf("\"%s\" -> \"%s\";\n", parent.Cells(), child.Cells())
			//
			if _, err := io.WriteString(w, line); err != nil {
				return err
			}
		}
	}
	//
	_, err := io.WriteString(w, "}\n")
	//
	return err
}
