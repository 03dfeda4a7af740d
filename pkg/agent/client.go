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
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/gambit/pkg/game"
)

type Config struct {
	Name string `yaml:"name"`
	Cmd  string `yaml:"cmd"`
	Arg  string `yaml:"arg"`
}

// DefaultTimeout is the wall-clock budget for one agent invocation.
const DefaultTimeout = 30 * time.Second

// NewClient creates a Client which acquires moves from the external
// command described by config. A zero timeout selects DefaultTimeout.
// The trail may be nil, in which case invocations go unrecorded.
func NewClient(config Config, timeout time.Duration, trail *Trail) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{config: config, timeout: timeout, trail: trail}
}

// A Client queries one named external agent process for moves. Each
// request spawns a fresh process with the prompt as its entire stdin
// and scavenges a move from whatever text the process emits.
type Client struct {
	config  Config
	timeout time.Duration
	trail   *Trail
}

func (client *Client) Name() string {
	return client.config.Name
}

// movePattern matches a coordinate-notation move with an optional
// promotion piece, like e2e4 or a7a8q.
var movePattern = regexp.MustCompile(`\b[a-h][1-8][a-h][1-8][qrbnQRBN]?\b`)

var promptFormat = heredoc.Doc(`
	Chess state: %s
	Move history: %s
	Legal moves: %s

	IMPORTANT INSTRUCTIONS:
	Output ONLY one line containing exactly one valid UCI move from the list above.
	Do NOT provide any commentary, text, or explanation.
	Example: e2e4

	Please provide your UCI move now:`)

// BuildPrompt assembles the deterministic prompt for the current
// position: the FEN, the move history, and the full legal move list.
func BuildPrompt(oracle game.Oracle, history []string) string {
	return fmt.Sprintf(
		promptFormat,
		oracle.FEN(),
		strings.Join(history, " "),
		strings.Join(oracle.LegalMoves(), ", "),
	)
}

// RequestMove asks the agent for a move in the oracle's current
// position. It returns the first legal move token found in the
// process's output, ErrTimeout/ErrMalformedOutput for recoverable
// per-attempt failures, or the raw error for unrecoverable spawn
// failures like a missing command.
func (client *Client) RequestMove(ctx context.Context, oracle game.Oracle, history []string) (string, error) {
	prompt := BuildPrompt(oracle, history)

	ctx, cancel := context.WithTimeout(ctx, client.timeout)
	defer cancel()

	process := exec.CommandContext(ctx, client.config.Cmd, strings.Fields(client.config.Arg)...)
	process.Stdin = strings.NewReader(prompt)

	var stdout, stderr bytes.Buffer
	process.Stdout = &stdout
	process.Stderr = &stderr

	logrus.Debugf("info: (%s)< %s\n", client.config.Name, prompt)

	startTime := time.Now()
	err := process.Run()
	elapsed := time.Since(startTime)

	logrus.Debugf("info: (%s)> %s\n", client.config.Name, stdout.String())
	if stderr.Len() > 0 {
		logrus.Debugf("info: (%s)2> %s\n", client.config.Name, stderr.String())
	}

	invocation := Invocation{
		Agent:   client.config.Name,
		Prompt:  prompt,
		Output:  stdout.String(),
		Elapsed: elapsed,
	}

	switch {
	case ctx.Err() == context.DeadlineExceeded:
		invocation.Status, invocation.Outcome = "timeout", "timeout"
		client.trail.Record(invocation)
		return "", ErrTimeout

	case errors.Is(err, exec.ErrNotFound):
		// The agent command doesn't exist. This is not a per-attempt
		// failure: end the session.
		invocation.Status, invocation.Outcome = err.Error(), "spawn error"
		client.trail.Record(invocation)
		return "", fmt.Errorf("agent %s: %w", client.config.Name, err)

	case err != nil:
		// A nonzero exit or other process error may still have
		// produced usable output, so fall through to the scan.
		invocation.Status = err.Error()

	default:
		invocation.Status = "ok"
	}

	for _, candidate := range movePattern.FindAllString(stdout.String(), -1) {
		if oracle.IsLegal(candidate) {
			invocation.Outcome = "accepted " + candidate
			client.trail.Record(invocation)
			return candidate, nil
		}
	}

	invocation.Outcome = "no legal move"
	client.trail.Record(invocation)
	return "", ErrMalformedOutput
}
