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

package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/gambit/pkg/game"
)

// A Mover produces a candidate move for the current position. It is
// implemented by Client and by stubs in tests.
type Mover interface {
	Name() string
	RequestMove(ctx context.Context, oracle game.Oracle, history []string) (string, error)
}

const (
	// DefaultMaxAttempts is the per-agent-per-turn attempt budget.
	DefaultMaxAttempts = 5

	// DefaultPacing is the delay imposed between failed attempts so
	// the agent process isn't hammered back to back.
	DefaultPacing = 1 * time.Second
)

// A Coordinator drives a bounded retry loop for a single agent
// resolving a single turn.
type Coordinator struct {
	MaxAttempts int
	Pacing      time.Duration
}

// NewCoordinator creates a Coordinator with the default budget for
// any unset knob.
func NewCoordinator(maxAttempts int, pacing time.Duration) Coordinator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	if pacing <= 0 {
		pacing = DefaultPacing
	}

	return Coordinator{MaxAttempts: maxAttempts, Pacing: pacing}
}

// Resolve tries up to MaxAttempts times to get a legal move for the
// current turn from the given mover. It returns the move along with
// the number of failed attempts which preceded it. Every candidate is
// re-checked against the live position before being accepted.
//
// Timeouts, malformed output and illegal candidates each consume one
// attempt and are never surfaced individually: a fully spent budget
// reports ErrRetryExhausted with fails == MaxAttempts. Resolution
// stops early with ErrGameOver if the position turns terminal, and
// unrecoverable mover errors pass through unchanged.
func (coordinator Coordinator) Resolve(ctx context.Context, mover Mover, oracle game.Oracle, history []string) (string, int, error) {
	fails := 0

	for attempt := 0; attempt < coordinator.MaxAttempts; attempt++ {
		if oracle.IsTerminal() {
			return "", fails, ErrGameOver
		}

		candidate, err := mover.RequestMove(ctx, oracle, history)
		if err == nil && !oracle.IsLegal(candidate) {
			// The candidate went stale between extraction and the
			// final legality check.
			err = fmt.Errorf("%w: %s", ErrIllegalMove, candidate)
		}

		switch {
		case err == nil:
			return candidate, fails, nil

		case IsAttemptFailure(err):
			logrus.Warnf(
				"%s: attempt %d/%d: %v",
				mover.Name(), attempt+1, coordinator.MaxAttempts, err,
			)
			fails++

		default:
			return "", fails, err
		}

		if attempt < coordinator.MaxAttempts-1 {
			logrus.Infof("%s: retrying move (%d/%d)...", mover.Name(), attempt+1, coordinator.MaxAttempts)

			select {
			case <-ctx.Done():
				return "", fails, ctx.Err()
			case <-time.After(coordinator.Pacing):
			}
		}
	}

	return "", fails, ErrRetryExhausted
}
