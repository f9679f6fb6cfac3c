// Copyright 2026 The tsbind Authors
// This file is part of tsbind.
//
// tsbind is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// tsbind is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with tsbind. If not, see <http://www.gnu.org/licenses/>.

// Package utils contains internal helper functions for tsbind commands.
package utils

import (
	"fmt"
	"os"

	"github.com/ethbind/tsbind/common/artifacts"
	"github.com/ethbind/tsbind/internal/flags"
	"github.com/urfave/cli/v2"
)

// These are all the command line flags we support.
// If you add to this list, please remember to include the
// flag in the appropriate command definition.
//
// The flags are defined here so their names and help texts
// are the same for all commands.

var (
	// Artifact source
	ArtifactsFlag = &flags.DirectoryFlag{
		Name:     "artifacts",
		Usage:    "Directory holding the contract build artifacts",
		Value:    flags.DirectoryString(artifacts.DefaultDir),
		EnvVars:  []string{"TSBIND_ARTIFACTS"},
		Category: flags.SourceCategory,
	}
	PatternFlag = &cli.StringFlag{
		Name:     "pattern",
		Usage:    "File pattern matched inside the artifact directory",
		Value:    artifacts.DefaultPattern,
		Category: flags.SourceCategory,
	}
	CombinedJSONFlag = &cli.StringFlag{
		Name:     "combined-json",
		Usage:    "Path to the combined-json file generated by solc (replaces --artifacts)",
		Category: flags.SourceCategory,
	}

	// Output settings
	OutputFlag = &cli.StringFlag{
		Name:     "out",
		Usage:    "Output file for the generated bindings (default = stdout)",
		EnvVars:  []string{"TSBIND_OUT"},
		Category: flags.OutputCategory,
	}
	TruffleFlag = &cli.BoolFlag{
		Name:     "truffle",
		Usage:    "Emit the manifest for truffle artifacts (accepted for compatibility, no effect)",
		Category: flags.OutputCategory,
	}

	// Misc
	ConfigFileFlag = &cli.StringFlag{
		Name:     "config",
		Usage:    "TOML configuration file",
		Category: flags.MiscCategory,
	}
)

// SourceFlags are the flags selecting the artifact source, shared by every
// generating command.
var SourceFlags = []cli.Flag{
	ArtifactsFlag,
	PatternFlag,
	CombinedJSONFlag,
}

// Fatalf formats a message to standard error and exits the program.
// Standard output is left alone, it may carry a partially consumed document
// pipe.
func Fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Fatal: "+format+"\n", args...)
	os.Exit(1)
}
