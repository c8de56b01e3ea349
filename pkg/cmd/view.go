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

	"github.com/spf13/cobra"
)

// viewCmd represents the view command
var viewCmd = &cobra.Command{
	Use:   "view [flags] puzzle",
	Short: "Show the ground truth of a given puzzle.",
	Long: `Show the ground truth of a given puzzle in the compact board
	notation, without solving anything: '.' safe, '*' mine, '?' unknown
	count, digits explicit counts.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		p, width, err := loadPuzzle(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		fmt.Print(p.RenderTruth(width))
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
