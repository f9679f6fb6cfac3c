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

package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func runSetup(t *testing.T, args ...string) error {
	t.Helper()

	var setupErr error
	app := &cli.App{
		Flags: Flags,
		Action: func(ctx *cli.Context) error {
			setupErr = Setup(ctx)
			return nil
		},
	}
	require.NoError(t, app.Run(append([]string{"tsbind"}, args...)))
	t.Cleanup(Exit)
	return setupErr
}

func TestSetupLogFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "tsbind.log")
	require.NoError(t, runSetup(t, "--log.file", file, "--log.format", "logfmt", "--verbosity", "4"))

	log.Debug("Generated bindings", "contracts", 2)
	Exit()

	blob, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(blob), "Generated bindings"), "log file missing record: %s", blob)
	assert.Contains(t, string(blob), "contracts=2")
}

func TestSetupUnknownFormat(t *testing.T) {
	err := runSetup(t, "--log.format", "xml")
	assert.ErrorContains(t, err, "unknown log format")
}

func TestSetupBadVmodule(t *testing.T) {
	err := runSetup(t, "--log.vmodule", "bind=notalevel")
	assert.Error(t, err)
}
