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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tametsi/go-tametsi/pkg/ineq"
	"github.com/tametsi/go-tametsi/pkg/util/termio"
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve [flags] puzzle",
	Short: "Deduce the mines of a given puzzle.",
	Long: `Deduce, by logical inference alone, which cells of a given puzzle
	are mines and which are safe.  The puzzle is either the name of a
	built-in demo puzzle, or a puzzle file (YAML or JSON).`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		p, width, err := loadPuzzle(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		result, err := p.Solve()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		fmt.Printf("revealed: %v\n", result.Revealed)
		fmt.Printf("flagged: %v\n", result.Flagged)
		//
		if result.Complete(uint(len(p.Board()))) {
			fmt.Println("solved")
		} else {
			fmt.Printf("stuck with %d unresolved inequalities (guessing required)\n", len(result.Remaining))
		}
		//
		ansi := termio.IsTerminal() && !GetFlag(cmd, "no-ansi-escapes")
		fmt.Println()
		fmt.Print(p.Render(width, ansi))
		// Optionally dump the residual poset for graphviz.
		if graphfile := GetString(cmd, "graph"); graphfile != "" {
			if err := writeGraph(graphfile, p.Poset()); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		}
	},
}

func writeGraph(filename string, poset *ineq.Poset) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	//
	defer file.Close()
	//
	return ineq.WriteDot(file, poset)
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().BoolP("verbose", "v", false, "increase logging verbosity")
	solveCmd.Flags().Bool("no-ansi-escapes", false, "disable ANSI escapes in board rendering")
	solveCmd.Flags().String("graph", "", "dump residual inequality graph to given file (DOT format)")
}
