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
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/gambit/pkg/agent"
	"laptudirm.com/x/gambit/pkg/arena"
	"laptudirm.com/x/gambit/pkg/common"
	"laptudirm.com/x/gambit/pkg/game"
)

// gambit play
func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play white-agent black-agent",
		Short: "Play the two agents against each other",
		Args:  cobra.ExactArgs(2),
		Long: heredoc.Doc(`play runs one or more games of chess between the two
			given agents, white first. Each turn the agent to move is
			prompted with the position, the move history, and the legal
			move list, and its output is scanned for a legal move.

			An agent which spends its whole attempt budget on a turn
			forfeits that turn to its opponent. Wins are tallied per
			agent across the games of one run.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			timeout, _ := cmd.Flags().GetDuration("timeout")
			retries, _ := cmd.Flags().GetInt("retries")
			pacing, _ := cmd.Flags().GetDuration("pace")
			speed, _ := cmd.Flags().GetDuration("speed")
			fenstr, _ := cmd.Flags().GetString("fen")
			games, _ := cmd.Flags().GetInt("games")

			trail, err := agent.NewTrail(common.AuditFile)
			if err != nil {
				return err
			}
			defer trail.Close()

			session := &arena.Session{
				Config: arena.Config{
					Mode:        arena.Autonomous,
					MoveTimeout: timeout,
					MaxRetries:  retries,
					Pacing:      pacing,
					Speed:       speed,
					StartFEN:    fenstr,
					Progress:    true,
				},

				Oracle: game.NewChessOracle(game.StartFEN),
				Movers: [2]agent.Mover{
					newClient(args[0], timeout, trail),
					newClient(args[1], timeout, trail),
				},

				Tally: arena.NewTally(),
				Trail: trail,
			}

			for number := 1; number <= games; number++ {
				outcome, err := session.Run(cmd.Context())
				if err != nil {
					return err
				}

				logrus.Infof(
					"game #%d: \x1b[33m%s\x1b[0m (%s)",
					number, outcome.Score, outcome.Reason,
				)
			}

			fmt.Println(session.Tally.Summary(args[0], args[1]))
			return nil
		},
	}

	cmd.Flags().Duration("timeout", agent.DefaultTimeout, "wall-clock budget per agent invocation")
	cmd.Flags().Int("retries", agent.DefaultMaxAttempts, "attempt budget per agent per turn")
	cmd.Flags().Duration("pace", agent.DefaultPacing, "delay between failed attempts")
	cmd.Flags().Duration("speed", time.Second, "delay after each applied move")
	cmd.Flags().String("fen", game.StartFEN, "position to start the games from")
	cmd.Flags().Int("games", 1, "number of games to play")

	return cmd
}

func newClient(name string, timeout time.Duration, trail *agent.Trail) *agent.Client {
	info := common.Agents.Resolve(name)
	return agent.NewClient(agent.Config{
		Name: name,
		Cmd:  info.Cmd,
		Arg:  info.Arg,
	}, timeout, trail)
}
