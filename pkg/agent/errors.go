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

import "errors"

var (
	// ErrTimeout is reported when the agent process overran its
	// wall-clock budget before producing any usable output.
	ErrTimeout = errors.New("agent: move request timed out")

	// ErrMalformedOutput is reported when the agent's output contained
	// no token which is a legal move in the current position.
	ErrMalformedOutput = errors.New("agent: no legal move found in output")

	// ErrIllegalMove is reported when a candidate move fails the final
	// legality check against the live position.
	ErrIllegalMove = errors.New("agent: candidate move is illegal")

	// ErrRetryExhausted is reported by the Coordinator once an agent
	// has consumed its entire attempt budget for one turn.
	ErrRetryExhausted = errors.New("agent: attempt budget exhausted")

	// ErrGameOver is reported when a turn resolution is requested for
	// a position which is already terminal.
	ErrGameOver = errors.New("agent: position is already terminal")
)

// IsAttemptFailure reports whether err is absorbed by the retry loop
// as a single failed attempt. Anything else is fatal for the session.
func IsAttemptFailure(err error) bool {
	return errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrMalformedOutput) ||
		errors.Is(err, ErrIllegalMove)
}
