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

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/gambit/pkg/agent"
	"laptudirm.com/x/gambit/pkg/arena"
	"laptudirm.com/x/gambit/pkg/common"
	"laptudirm.com/x/gambit/pkg/game"
)

// gambit train
func Train() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train agent-1 agent-2",
		Short: "Play as white against the two agents sharing black",
		Args:  cobra.ExactArgs(2),
		Long: heredoc.Doc(`train plays you (white) against the two given agents,
			which cooperate on the black side: whichever agent has
			failed less leads the turn, and leadership alternates once
			the leader spends its attempt budget. If both agents spend
			the combined failure budget the turn comes back to you.

			Moves are entered in coordinate notation (e2e4). Type help
			to see the legal moves. Empty, unparseable or illegal input
			ends the game immediately.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			timeout, _ := cmd.Flags().GetDuration("timeout")
			retries, _ := cmd.Flags().GetInt("retries")
			pacing, _ := cmd.Flags().GetDuration("pace")
			failcap, _ := cmd.Flags().GetInt("fail-cap")
			fenstr, _ := cmd.Flags().GetString("fen")

			trail, err := agent.NewTrail(common.AuditFile)
			if err != nil {
				return err
			}
			defer trail.Close()

			intake, err := arena.NewTermIntake()
			if err != nil {
				return err
			}
			defer intake.Close()

			session := &arena.Session{
				Config: arena.Config{
					Mode:        arena.Cooperative,
					MoveTimeout: timeout,
					MaxRetries:  retries,
					Pacing:      pacing,
					FailCap:     failcap,
					StartFEN:    fenstr,
					Progress:    true,
				},

				Oracle: game.NewChessOracle(game.StartFEN),
				Movers: [2]agent.Mover{
					newClient(args[0], timeout, trail),
					newClient(args[1], timeout, trail),
				},

				Trail:  trail,
				Intake: intake,
			}

			outcome, err := session.Run(cmd.Context())
			if err != nil {
				return err
			}

			switch outcome.Score {
			case game.WhiteWins:
				fmt.Println("Checkmate! You win!")
			case game.BlackWins:
				fmt.Println("Checkmate! The models win!")
			default:
				fmt.Printf("%s (%s)\n", outcome.Score, outcome.Reason)
			}

			return nil
		},
	}

	cmd.Flags().Duration("timeout", agent.DefaultTimeout, "wall-clock budget per agent invocation")
	cmd.Flags().Int("retries", agent.DefaultMaxAttempts, "attempt budget per agent per turn")
	cmd.Flags().Duration("pace", agent.DefaultPacing, "delay between failed attempts")
	cmd.Flags().Int("fail-cap", arena.DefaultFailCap, "combined failure budget per episode")
	cmd.Flags().String("fen", game.StartFEN, "position to start the game from")

	return cmd
}
