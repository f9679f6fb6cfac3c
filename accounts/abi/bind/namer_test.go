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
	"testing"

	"github.com/ethbind/tsbind/accounts/abi"
	"github.com/stretchr/testify/assert"
)

func args(names ...string) abi.Arguments {
	out := make(abi.Arguments, len(names))
	for i, name := range names {
		out[i] = abi.Argument{Name: name, Type: "uint256"}
	}
	return out
}

func TestDisplayName(t *testing.T) {
	tests := map[string]string{
		"_to":    "to",
		"to":     "to",
		"__to":   "_to",
		"_":      "",
		"":       "",
		"to_":    "to_",
		"_value": "value",
	}
	for input, want := range tests {
		assert.Equal(t, want, displayName(input), "input %q", input)
	}
}

func TestInterfaceArgNames(t *testing.T) {
	g := NewGenerator(ModeInterface)

	// First anonymous argument of the run.
	assert.Equal(t, []string{"unnamed0"}, g.interfaceArgNames(args("")))

	// The counter is shared across methods and never reset.
	assert.Equal(t, []string{"to", "unnamed1", "unnamed2"}, g.interfaceArgNames(args("_to", "", "_")))
	assert.Equal(t, []string{"unnamed3", "value"}, g.interfaceArgNames(args("", "value")))

	// Candidates colliding with a named sibling are skipped.
	assert.Equal(t, []string{"unnamed5", "unnamed4"}, g.interfaceArgNames(args("", "unnamed4")))
	assert.Equal(t, 6, g.anonymous)

	// Named arguments leave the counter untouched.
	assert.Equal(t, []string{"a", "b"}, g.interfaceArgNames(args("_a", "b")))
	assert.Equal(t, 6, g.anonymous)

	// Declared names equal after the strip stay distinct.
	assert.Equal(t, []string{"a", "a0", "unnamed6"}, g.interfaceArgNames(args("_a", "a", "")))
	assert.Equal(t, []string{"a", "a1", "a0"}, g.interfaceArgNames(args("a", "_a", "a0")))
	assert.Equal(t, 7, g.anonymous)

	// A fresh generator starts over.
	assert.Equal(t, []string{"unnamed0"}, NewGenerator(ModeInterface).interfaceArgNames(args("")))
}

func TestManifestArgNames(t *testing.T) {
	assert.Equal(t, []string{"anonymous_0"}, manifestArgNames(args("")))
	assert.Equal(t, []string{"to", "anonymous_1", "anonymous_2"}, manifestArgNames(args("_to", "", "_")))

	// Positions restart for every member.
	assert.Equal(t, []string{"anonymous_0", "value"}, manifestArgNames(args("", "value")))

	// Collisions with named siblings get a numeric suffix.
	assert.Equal(t, []string{"anonymous_00", "anonymous_0"}, manifestArgNames(args("", "anonymous_0")))

	// Declared names equal after the strip stay distinct.
	assert.Equal(t, []string{"a", "a0"}, manifestArgNames(args("_a", "a")))
	assert.Equal(t, []string{"a", "a1", "a0"}, manifestArgNames(args("a", "_a", "a0")))
	assert.Equal(t, []string{"value", "anonymous_1", "value0"}, manifestArgNames(args("_value", "", "value")))

	assert.Empty(t, manifestArgNames(nil))
}
