// Copyright © 2025 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"laptudirm.com/x/gambit/pkg/common"
)

func Agents() *cobra.Command {
	return &cobra.Command{
		Use:   "agents",
		Short: "Lists the registered agents and their commands",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			if len(common.Agents) == 0 {
				fmt.Println("\x1b[31mNo Agents Registered.\x1b[0m")
				return nil
			}

			fmt.Printf("\u001B[32mRegistered Agents\u001B[0m:\n\n")

			for name, info := range common.Agents {
				label := fmt.Sprintf("\x1b[34m%s\x1b[0m:", name)
				fmt.Printf("- %-30s %s %s\n", label, info.Cmd, info.Arg)
			}

			return nil
		},
	}
}
