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

package arena

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/gambit/pkg/agent"
	"laptudirm.com/x/gambit/pkg/game"
)

// coopPenalty is the ledger weight of one failed resolution. It equals
// the default attempt budget, so a full exhaustion and a complete
// timeout cost the same.
const coopPenalty = 5

// cooperative plays the human (white) against both agents, which
// share the black side: each black turn is an episode in which the
// agents take turns leading until one of them produces a move or the
// combined failure budget runs out.
func (session *Session) cooperative(ctx context.Context) (Outcome, error) {
	for session.running && !session.Oracle.IsTerminal() {
		if session.Oracle.SideToMove() == game.White {
			if err := session.humanTurn(); err != nil {
				// Rejected input ends the game, no reprompting.
				logrus.Warn(err)
				session.running = false
				return Outcome{Score: game.Draw, Reason: "the game ended"}, nil
			}

			continue
		}

		if err := session.episode(ctx); err != nil {
			session.running = false
			return Outcome{Score: game.Draw, Reason: "aborted"}, err
		}
	}

	return session.conclude(), nil
}

// episode resolves one non-human turn. Leadership goes to whichever
// agent has accumulated less failure weight, so it alternates once the
// current leader spends its budget.
func (session *Session) episode(ctx context.Context) error {
	var ledger [2]int

	for ledger[0]+ledger[1] < session.Config.FailCap {
		leader := 0
		if ledger[0] > ledger[1] {
			leader = 1
		}
		mover := session.Movers[leader]

		move, _, err := session.resolve(ctx, mover)
		switch {
		case err == nil:
			// The ledger dies with the episode.
			return session.apply(move)

		case errors.Is(err, agent.ErrRetryExhausted), errors.Is(err, ErrNoHandoff):
			ledger[leader] += coopPenalty
			logrus.Warnf(
				"%s gave no usable move, switching to %s",
				mover.Name(), session.Movers[1-leader].Name(),
			)

		case errors.Is(err, agent.ErrGameOver):
			return nil

		default:
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(session.coordinator.Pacing):
		}
	}

	// Combined budget spent: no move this turn, possession goes back
	// to the human. A notice, not a game-ending error.
	logrus.Warnf(
		"agents exceeded %d failed attempts, it's your turn again",
		session.Config.FailCap,
	)
	session.Oracle.SkipTurn()
	return nil
}
