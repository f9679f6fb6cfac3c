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

// tsbind generates TypeScript bindings for Ethereum contracts from their
// build artifacts.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/ethbind/tsbind/accounts/abi"
	"github.com/ethbind/tsbind/accounts/abi/bind"
	"github.com/ethbind/tsbind/cmd/utils"
	"github.com/ethbind/tsbind/common/artifacts"
	"github.com/ethbind/tsbind/internal/debug"
	"github.com/ethbind/tsbind/internal/flags"
	"github.com/ethbind/tsbind/internal/version"
	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
)

const (
	clientIdentifier = "tsbind" // Client identifier used in version output
)

var (
	// Flags of every command that generates a document.
	generateFlags = flags.Merge(utils.SourceFlags, []cli.Flag{
		utils.OutputFlag,
		utils.ConfigFileFlag,
	})

	interfacesCommand = &cli.Command{
		Action: generateInterfaces,
		Name:   "interfaces",
		Usage:  "Generate typed call interfaces (default)",
		Flags:  generateFlags,
		Description: `
The interfaces command emits one TypeScript interface per contract. Every
function member becomes a property callable as a transaction or, through its
nested call method, as a read-only call.`,
	}
	manifestCommand = &cli.Command{
		Action: generateManifest,
		Name:   "manifest",
		Usage:  "Generate the reflective method manifest",
		Flags:  flags.Merge(generateFlags, []cli.Flag{utils.TruffleFlag}),
		Description: `
The manifest command emits, per contract, the ordered argument names and the
raw ABI type of every function input, plus an enum of all contract names.`,
	}
	versionCommand = &cli.Command{
		Action:    printVersion,
		Name:      "version",
		Usage:     "Print version numbers",
		ArgsUsage: " ",
	}
)

var app = newApp()

func newApp() *cli.App {
	app := flags.NewApp("TypeScript bindings generator for Ethereum contracts")
	app.Name = clientIdentifier
	app.Action = generateInterfaces
	app.Commands = []*cli.Command{
		interfacesCommand,
		manifestCommand,
		dumpConfigCommand,
		versionCommand,
	}
	app.Flags = flags.Merge(generateFlags, debug.Flags)

	app.Before = func(ctx *cli.Context) error {
		return debug.Setup(ctx)
	}
	app.After = func(ctx *cli.Context) error {
		debug.Exit()
		return nil
	}
	return app
}

func main() {
	if err := app.Run(os.Args); err != nil {
		utils.Fatalf("%v", err)
	}
}

func generateInterfaces(ctx *cli.Context) error {
	return generate(ctx, bind.ModeInterface)
}

func generateManifest(ctx *cli.Context) error {
	return generate(ctx, bind.ModeManifest)
}

// generate loads every artifact of the configured source, binds them in the
// requested mode and writes the resulting document. Nothing is written if any
// artifact fails to load or bind.
func generate(ctx *cli.Context, mode bind.Mode) error {
	if args := ctx.Args().Slice(); len(args) > 0 {
		return fmt.Errorf("invalid command: %s", args[0])
	}
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	if mode == bind.ModeManifest && cfg.Output.Truffle {
		log.Debug("Truffle artifacts requested, manifest layout is unchanged")
	}
	contracts, err := loadArtifacts(&cfg.Source)
	if err != nil {
		return err
	}
	code, err := bind.NewGenerator(mode).Bind(contracts)
	if err != nil {
		return err
	}
	if err := writeOutput(ctx.Context, ctx.App.Writer, cfg.Output.File, code); err != nil {
		return err
	}
	log.Info("Generated bindings", "mode", mode, "contracts", len(contracts), "out", outputName(cfg.Output.File))
	return nil
}

// loadArtifacts reads the contracts of the configured source.
func loadArtifacts(cfg *sourceConfig) ([]*abi.Artifact, error) {
	if cfg.CombinedJSON != "" {
		return artifacts.FromCombinedJSON(cfg.CombinedJSON)
	}
	contracts, err := artifacts.LoadDir(cfg.Artifacts, cfg.Pattern)
	if err != nil {
		return nil, err
	}
	if len(contracts) == 0 {
		log.Warn("No contract artifacts found", "dir", cfg.Artifacts, "pattern", cfg.Pattern)
	}
	return contracts, nil
}

func outputName(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}

func printVersion(ctx *cli.Context) error {
	git, _ := version.VCS()
	w := ctx.App.Writer

	fmt.Fprintln(w, version.Info(clientIdentifier))
	if git.Commit != "" {
		fmt.Fprintln(w, "Git Commit:", git.Commit)
	}
	if git.Date != "" {
		fmt.Fprintln(w, "Git Commit Date:", git.Date)
	}
	fmt.Fprintln(w, "Architecture:", runtime.GOARCH)
	fmt.Fprintln(w, "Go Version:", runtime.Version())
	fmt.Fprintln(w, "Operating System:", runtime.GOOS)
	return nil
}
