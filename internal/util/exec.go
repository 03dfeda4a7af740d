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

package util

import (
	"bytes"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// Execute runs the given command behind a progress spinner. The
// command's output is captured and dumped only on failure, unless
// trace logging is enabled, in which case it streams directly.
func Execute(errStr, command string, args ...string) error {
	logrus.Debugf("\x1b[34m%s\x1b[0m %s\n", command, strings.Join(args, " "))
	cmd := exec.Command(command, args...)

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	StartSpinner()
	err := cmd.Run()
	PauseSpinner()

	if err != nil {
		if !logrus.IsLevelEnabled(logrus.TraceLevel) {
			_, _ = io.Copy(os.Stderr, &output)
		}

		if errStr == "" {
			return err
		}

		return errors.New(errStr)
	}

	return nil
}
