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

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/ethbind/tsbind/cmd/utils"
	"github.com/ethbind/tsbind/common/artifacts"
	"github.com/ethbind/tsbind/internal/flags"
	"github.com/naoina/toml"
	"github.com/urfave/cli/v2"
)

var (
	dumpConfigCommand = &cli.Command{
		Action:      dumpConfig,
		Name:        "dumpconfig",
		Usage:       "Export configuration values in a TOML format",
		ArgsUsage:   "<dumpfile (optional)>",
		Flags:       flags.Merge(generateFlags, []cli.Flag{utils.TruffleFlag}),
		Description: `Export configuration values in TOML format (to stdout by default).`,
	}
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

// sourceConfig selects where contract artifacts are read from. CombinedJSON
// takes precedence over the artifact directory when set.
type sourceConfig struct {
	Artifacts    string
	Pattern      string
	CombinedJSON string `toml:",omitempty"`
}

type outputConfig struct {
	File    string `toml:",omitempty"`
	Truffle bool   `toml:",omitempty"`
}

type tsbindConfig struct {
	Source sourceConfig
	Output outputConfig
}

func defaultConfig() tsbindConfig {
	return tsbindConfig{
		Source: sourceConfig{
			Artifacts: artifacts.DefaultDir,
			Pattern:   artifacts.DefaultPattern,
		},
	}
}

func loadConfig(file string, cfg *tsbindConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// loadBaseConfig loads the tsbindConfig based on the given command line
// parameters and config file.
func loadBaseConfig(ctx *cli.Context) (tsbindConfig, error) {
	// Load defaults.
	cfg := defaultConfig()

	if err := flags.CheckExclusive(ctx, utils.ArtifactsFlag, utils.CombinedJSONFlag); err != nil {
		return cfg, err
	}
	// Load config file.
	if file := ctx.String(utils.ConfigFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return cfg, err
		}
	}
	// Apply flags.
	setSourceConfig(ctx, &cfg.Source)
	setOutputConfig(ctx, &cfg.Output)
	return cfg, nil
}

// setSourceConfig applies the artifact source flags. An explicit --artifacts
// overrides a combined-json source coming from the config file.
func setSourceConfig(ctx *cli.Context, cfg *sourceConfig) {
	if ctx.IsSet(utils.ArtifactsFlag.Name) {
		cfg.Artifacts = ctx.String(utils.ArtifactsFlag.Name)
		cfg.CombinedJSON = ""
	}
	if ctx.IsSet(utils.PatternFlag.Name) {
		cfg.Pattern = ctx.String(utils.PatternFlag.Name)
	}
	if ctx.IsSet(utils.CombinedJSONFlag.Name) {
		cfg.CombinedJSON = ctx.String(utils.CombinedJSONFlag.Name)
	}
}

func setOutputConfig(ctx *cli.Context, cfg *outputConfig) {
	if ctx.IsSet(utils.OutputFlag.Name) {
		cfg.File = ctx.String(utils.OutputFlag.Name)
	}
	if ctx.IsSet(utils.TruffleFlag.Name) {
		cfg.Truffle = ctx.Bool(utils.TruffleFlag.Name)
	}
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}

	dump := ctx.App.Writer
	if ctx.NArg() > 0 {
		file, err := os.OpenFile(ctx.Args().Get(0), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer file.Close()
		dump = file
	}
	_, err = dump.Write(out)
	return err
}
