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
	"fmt"

	"laptudirm.com/x/gambit/pkg/stats"
)

// A Tally counts confirmed wins per agent identity for the lifetime
// of the process. Counters are only ever incremented.
type Tally struct {
	wins  map[string]int
	draws int
	games int
}

func NewTally() *Tally {
	return &Tally{wins: make(map[string]int)}
}

func (tally *Tally) RecordWin(name string) {
	tally.wins[name]++
	tally.games++
}

func (tally *Tally) RecordDraw() {
	tally.draws++
	tally.games++
}

func (tally *Tally) Wins(name string) int {
	return tally.wins[name]
}

func (tally *Tally) Draws() int {
	return tally.draws
}

func (tally *Tally) Games() int {
	return tally.games
}

// Summary renders the win counts of the given pairing, along with an
// elo estimate of the first player once enough games are in.
func (tally *Tally) Summary(name1, name2 string) string {
	summary := fmt.Sprintf(
		"%s: %d wins\n%s: %d wins\ndraws: %d",
		name1, tally.wins[name1],
		name2, tally.wins[name2],
		tally.draws,
	)

	if tally.games > 0 {
		muMin, mu, muMax := stats.Elo(tally.wins[name1], tally.draws, tally.wins[name2])
		summary += fmt.Sprintf("\n%s elo: %.1f [%.1f, %.1f]", name1, mu, muMin, muMax)
	}

	return summary
}
