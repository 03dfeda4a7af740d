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
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/gambit/pkg/agent"
	"laptudirm.com/x/gambit/pkg/game"
)

type Mode uint8

const (
	// Autonomous pits the two agents against each other.
	Autonomous Mode = iota

	// Cooperative pits a human (white) against both agents, which
	// share the black side's moves between them.
	Cooperative
)

// DefaultFailCap is the combined failure budget of a cooperative
// episode, shared between the two agents.
const DefaultFailCap = 10

var (
	// ErrNoHandoff is reported when the resolution worker produced no
	// result at all within the session's wait ceiling.
	ErrNoHandoff = errors.New("arena: no response within the wait ceiling")

	// ErrIllegalCommit is reported when a move which passed the
	// legality check fails final application, which indicates an
	// inconsistency between the oracle and the engine.
	ErrIllegalCommit = errors.New("arena: legal move failed application")

	// ErrHumanInputRejected is reported when the human's move intake
	// receives empty, unparseable or illegal input. It always ends
	// the game.
	ErrHumanInputRejected = errors.New("arena: move rejected")
)

type Config struct {
	Mode Mode

	// MoveTimeout bounds a single agent invocation, MaxRetries bounds
	// the attempts of one agent on one turn, FailCap bounds the
	// combined failures of a cooperative episode, and Pacing spaces
	// out consecutive attempts.
	MoveTimeout time.Duration
	MaxRetries  int
	FailCap     int
	Pacing      time.Duration

	// Speed is a presentation delay imposed after each applied ply.
	Speed time.Duration

	StartFEN string
	Progress bool
}

// Outcome is the final report of one game.
type Outcome struct {
	Score  game.Score
	Reason string
}

// A Session owns one game at a time: the move history, the mode and
// the tally of results across games. All shared state is mutated only
// by the goroutine running the session loop.
type Session struct {
	Config Config
	Oracle game.Oracle

	// Movers[0] plays white and Movers[1] plays black in autonomous
	// mode. In cooperative mode both back the black side.
	Movers [2]agent.Mover

	Tally  *Tally
	Trail  *agent.Trail
	Intake MoveReader

	coordinator agent.Coordinator
	history     []string
	running     bool
}

// Run plays a single game to completion and reports its outcome.
func (session *Session) Run(ctx context.Context) (Outcome, error) {
	if session.Config.StartFEN == "" {
		session.Config.StartFEN = game.StartFEN
	}

	if session.Config.MoveTimeout == 0 {
		session.Config.MoveTimeout = agent.DefaultTimeout
	}

	if session.Config.FailCap == 0 {
		session.Config.FailCap = DefaultFailCap
	}

	session.coordinator = agent.NewCoordinator(session.Config.MaxRetries, session.Config.Pacing)

	session.Oracle.Reset(session.Config.StartFEN)
	session.history = nil
	session.running = true
	session.Trail.NewGame()

	switch session.Config.Mode {
	case Cooperative:
		return session.cooperative(ctx)
	default:
		return session.autonomous(ctx)
	}
}

// History returns the moves applied so far in the current game.
func (session *Session) History() []string {
	return session.history
}

func (session *Session) Running() bool {
	return session.running
}

type handoff struct {
	move  string
	fails int
	err   error
}

// resolve runs one full retry sequence for the given mover on a
// worker goroutine, so that the session loop can enforce an overall
// wait ceiling independent of the worker's internal pacing. At most
// one result is handed back per resolution.
func (session *Session) resolve(ctx context.Context, mover agent.Mover) (string, int, error) {
	results := make(chan handoff, 1)

	go func() {
		move, fails, err := session.coordinator.Resolve(ctx, mover, session.Oracle, session.history)
		results <- handoff{move, fails, err}
	}()

	if session.Config.Progress {
		s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
		s.Suffix = fmt.Sprintf(" %s is thinking...", mover.Name())
		s.Start()
		defer s.Stop()
	}

	select {
	case result := <-results:
		return result.move, result.fails, result.err

	case <-time.After(session.waitCeiling()):
		return "", 0, ErrNoHandoff

	case <-ctx.Done():
		return "", 0, ctx.Err()
	}
}

// waitCeiling is strictly larger than the longest possible resolution,
// timeouts and pacing included, so that a worker which is merely slow
// is never mistaken for a dead one.
func (session *Session) waitCeiling() time.Duration {
	attempts := time.Duration(session.coordinator.MaxAttempts)
	return session.Config.MoveTimeout*attempts +
		session.coordinator.Pacing*attempts +
		10*time.Second
}

// apply commits a validated move to the position and the history.
func (session *Session) apply(mov string) error {
	side := session.Oracle.SideToMove()

	if err := session.Oracle.MakeMove(mov); err != nil {
		session.running = false
		return fmt.Errorf("%w: %s: %v", ErrIllegalCommit, mov, err)
	}

	session.history = append(session.history, mov)
	logrus.Infof("%s plays %s", side, mov)

	session.pause()
	return nil
}

func (session *Session) pause() {
	if session.Config.Speed > 0 {
		time.Sleep(session.Config.Speed)
	}
}

// conclude reports the game's outcome from the final position and
// updates the tally.
func (session *Session) conclude() Outcome {
	session.running = false

	reason := session.Oracle.TerminalReason()
	switch reason {
	case game.Checkmate:
		loser := session.Oracle.SideToMove()
		score := game.GameWonAgainst[loser]

		// The human side has no tally entry in cooperative mode.
		if session.Config.Mode == Autonomous && session.Tally != nil {
			session.Tally.RecordWin(session.Movers[loser.Other()].Name())
		}

		return Outcome{Score: score, Reason: reason.String()}

	case game.Stalemate, game.InsufficientMaterial, game.ClaimableDraw:
		if session.Config.Mode == Autonomous && session.Tally != nil {
			session.Tally.RecordDraw()
		}

		return Outcome{Score: game.Draw, Reason: reason.String()}

	default:
		return Outcome{Score: game.Draw, Reason: "the game ended"}
	}
}
