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

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/gambit/pkg/agent"
	"laptudirm.com/x/gambit/pkg/game"
)

// autonomous plays the two agents against each other. Each turn the
// agent bound to the side to move gets a full attempt budget: spending
// it all forfeits the turn to the opponent, while anything short of a
// resolved move or a spent budget stops the game.
func (session *Session) autonomous(ctx context.Context) (Outcome, error) {
	for session.running && !session.Oracle.IsTerminal() {
		mover := session.Movers[session.Oracle.SideToMove()]

		move, fails, err := session.resolve(ctx, mover)
		switch {
		case err == nil:
			if err := session.apply(move); err != nil {
				logrus.Errorf("illegal move by %s: %v", mover.Name(), err)
				return Outcome{Score: game.Draw, Reason: "aborted"}, err
			}

		case errors.Is(err, agent.ErrRetryExhausted):
			// The budget was fully spent: the turn passes to the
			// opponent without a ply being played.
			logrus.Warnf(
				"%s exhausted %d attempts, skipping turn...",
				mover.Name(), fails,
			)
			session.Oracle.SkipTurn()
			session.pause()

		case errors.Is(err, agent.ErrGameOver):
			// Terminal position reached mid-resolution. Fall out of
			// the loop and let the terminal check decide the result.

		default:
			logrus.Errorf("no move from %s: %v", mover.Name(), err)
			session.running = false
			return Outcome{Score: game.Draw, Reason: "aborted"}, err
		}
	}

	return session.conclude(), nil
}
