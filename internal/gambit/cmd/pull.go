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
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/gambit/pkg/common"
	"laptudirm.com/x/gambit/internal/util"
)

// gambit pull
func Pull() *cobra.Command {
	return &cobra.Command{
		Use:   "pull model",
		Short: "Pull the given ollama model and register it as an agent",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`pull downloads the given model with ollama and adds it
			to gambit's agent registry so that it can be used in play
			and train by name. Models already present in the registry
			keep their existing invocation.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			logrus.Infof("Pulling model %s...", args[0])

			if err := util.Execute("pulling model "+args[0]+" failed", "ollama", "pull", args[0]); err != nil {
				return err
			}

			common.Agents.TryAddAgent(args[0], common.AgentInfo{
				Cmd: "ollama",
				Arg: "run " + args[0],
			})

			logrus.Infof("Registered agent %s.", args[0])
			return nil
		},
	}
}
