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
	"regexp"
	"strings"

	"github.com/chzyer/readline"
)

// A MoveReader collects one raw move string from the human player.
type MoveReader interface {
	ReadMove() (string, error)
}

// TermIntake reads human moves from the terminal.
type TermIntake struct {
	rl *readline.Instance
}

func NewTermIntake() (*TermIntake, error) {
	rl, err := readline.New("your move (white)> ")
	if err != nil {
		return nil, err
	}

	return &TermIntake{rl: rl}, nil
}

func (intake *TermIntake) ReadMove() (string, error) {
	line, err := intake.rl.Readline()
	if err != nil {
		return "", err
	}

	return strings.ToLower(strings.TrimSpace(line)), nil
}

func (intake *TermIntake) Close() error {
	return intake.rl.Close()
}

var coordMove = regexp.MustCompile(`^[a-h][1-8][a-h][1-8][qrbn]?$`)

// humanTurn collects and applies the human's move. Any rejected input
// is an error, which the caller turns into an immediate game end.
func (session *Session) humanTurn() error {
	input, err := session.Intake.ReadMove()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrHumanInputRejected, err)
	}

	switch {
	case input == "":
		return fmt.Errorf("%w: no move provided", ErrHumanInputRejected)

	case input == "help", input == "?":
		fmt.Println("available moves:", strings.Join(session.Oracle.LegalMoves(), ", "))
		return fmt.Errorf("%w: requested the move list", ErrHumanInputRejected)

	case !coordMove.MatchString(input):
		return fmt.Errorf("%w: %s is not valid syntax", ErrHumanInputRejected, input)

	case !session.Oracle.IsLegal(input):
		return fmt.Errorf("%w: %s is not a legal move", ErrHumanInputRejected, input)
	}

	return session.apply(input)
}
