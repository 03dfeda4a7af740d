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
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// A Trail is an append-only record of every agent invocation, kept for
// post-hoc inspection. The core never reads it back.
type Trail struct {
	logger *logrus.Logger
	file   *os.File
	gameID string
}

// NewTrail opens the audit log at path for appending.
func NewTrail(path string) (*Trail, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetOutput(file)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)

	return &Trail{logger: logger, file: file}, nil
}

// NewGame starts a fresh correlation id for the records of one game.
func (trail *Trail) NewGame() string {
	if trail == nil {
		return ""
	}

	trail.gameID = uuid.NewString()
	return trail.gameID
}

// Invocation is the audit record of a single agent call.
type Invocation struct {
	Agent   string
	Prompt  string
	Output  string
	Status  string
	Elapsed time.Duration
	Outcome string
}

func (trail *Trail) Record(invocation Invocation) {
	if trail == nil {
		return
	}

	trail.logger.WithFields(logrus.Fields{
		"game":       trail.gameID,
		"agent":      invocation.Agent,
		"prompt":     invocation.Prompt,
		"output":     invocation.Output,
		"status":     invocation.Status,
		"elapsed_ms": invocation.Elapsed.Milliseconds(),
		"outcome":    invocation.Outcome,
	}).Info("agent invocation")
}

func (trail *Trail) Close() error {
	if trail == nil {
		return nil
	}

	return trail.file.Close()
}
