// Copyright 2026 The tsbind Authors
// This file is part of the tsbind library.
//
// The tsbind library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The tsbind library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the tsbind library. If not, see <http://www.gnu.org/licenses/>.

package bind

import (
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/ethbind/tsbind/accounts/abi"
	gethabi "github.com/ethereum/go-ethereum/accounts/abi"
)

// displayName strips exactly one leading underscore from a declared name.
func displayName(name string) string {
	return strings.TrimPrefix(name, "_")
}

// explicitNames returns the display names of all named arguments.
func explicitNames(args abi.Arguments) mapset.Set[string] {
	names := mapset.NewThreadUnsafeSet[string]()
	for _, arg := range args {
		if name := displayName(arg.Name); name != "" {
			names.Add(name)
		}
	}
	return names
}

// resolveTaken appends digits to name until it matches neither a named
// sibling nor a name already handed out.
func resolveTaken(name string, explicit, taken mapset.Set[string]) string {
	return gethabi.ResolveNameConflict(name, func(s string) bool {
		return explicit.Contains(s) || taken.Contains(s)
	})
}

// interfaceArgNames resolves the argument names used in interface mode.
// Anonymous arguments are named unnamed{N}, where N is taken from the
// generator-wide counter. The counter is skipped forward past values that
// would collide with a named sibling. Declared names that coincide after the
// underscore strip get a numeric suffix.
// interfaceArgNames 解析接口模式下的参数名称，匿名参数使用生成器范围内的全局计数器命名。
func (g *Generator) interfaceArgNames(args abi.Arguments) []string {
	var (
		explicit = explicitNames(args)
		taken    = mapset.NewThreadUnsafeSet[string]()
		names    = make([]string, len(args))
	)
	for i, arg := range args {
		name := displayName(arg.Name)
		switch {
		case name == "":
			for {
				name = fmt.Sprintf("unnamed%d", g.anonymous)
				g.anonymous++
				if !explicit.Contains(name) && !taken.Contains(name) {
					break
				}
			}
		case taken.Contains(name):
			name = resolveTaken(name, explicit, taken)
		}
		taken.Add(name)
		names[i] = name
	}
	return names
}

// manifestArgNames resolves the argument names used in manifest mode.
// Anonymous arguments are named anonymous_{i}, i being the position of the
// argument within its own input list. Every resolved name is unique within
// the list.
// manifestArgNames 解析清单模式下的参数名称，匿名参数按其在输入列表中的位置命名。
func manifestArgNames(args abi.Arguments) []string {
	var (
		explicit = explicitNames(args)
		taken    = mapset.NewThreadUnsafeSet[string]()
		names    = make([]string, len(args))
	)
	for i, arg := range args {
		name := displayName(arg.Name)
		switch {
		case name == "":
			name = resolveTaken(fmt.Sprintf("anonymous_%d", i), explicit, taken)
		case taken.Contains(name):
			name = resolveTaken(name, explicit, taken)
		}
		taken.Add(name)
		names[i] = name
	}
	return names
}
