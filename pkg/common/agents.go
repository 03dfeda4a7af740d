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

package common

import (
	_ "embed"
	"os"

	"gopkg.in/yaml.v2"
)

//go:embed agents.yaml
var BaseAgentsFile []byte

// AgentInfo describes how to invoke one registered agent. The command
// is run once per move request with the prompt piped to its stdin.
type AgentInfo struct {
	Cmd string `yaml:"cmd"`
	Arg string `yaml:"arg"`
}

type AgentInfoList map[string]AgentInfo

func (list AgentInfoList) TryAddAgent(name string, info AgentInfo) {
	if _, found := list[name]; !found {
		list[name] = info
	}

	list.Dump()
}

func (list AgentInfoList) Dump() {
	file, _ := yaml.Marshal(list)
	_ = os.WriteFile(AgentsFile, file, Permissions)
}

// Resolve returns the invocation details for the named agent. Unknown
// names fall back to running the name as an ollama model.
func (list AgentInfoList) Resolve(name string) AgentInfo {
	if info, found := list[name]; found {
		return info
	}

	return AgentInfo{Cmd: "ollama", Arg: "run " + name}
}

var Agents AgentInfoList

func init() {
	try_mkdir(GambitDirectory)
	try_mkfile(AgentsFile, BaseAgentsFile)

	file, _ := os.ReadFile(AgentsFile)
	_ = yaml.Unmarshal(file, &Agents)

	if Agents == nil {
		Agents = make(AgentInfoList)
	}
}
