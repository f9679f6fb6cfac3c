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
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethbind/tsbind/accounts/abi/bind"
	"github.com/ethbind/tsbind/cmd/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	tokenArtifact = `{"contractName":"Token","abi":[
		{"type":"function","name":"transfer","inputs":[{"name":"_to","type":"address"},{"name":"_value","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
		{"type":"event","name":"Transfer","inputs":[{"name":"from","type":"address","indexed":true}],"anonymous":false}
	]}`
	ownedArtifact  = `{"contractName":"Owned","abi":[{"type":"function","name":"owner","inputs":[],"outputs":[{"name":"","type":"address"}]}]}`
	brokenArtifact = `{"contractName":"Signed","abi":[{"type":"function","name":"delta","inputs":[],"outputs":[{"name":"","type":"int256"}]}]}`
)

// artifactDir creates a temporary artifact directory holding the given files.
func artifactDir(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

// runTsbind runs the command line app with the given arguments and returns
// what it wrote to its standard output.
func runTsbind(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = io.Discard

	err := app.Run(append([]string{clientIdentifier, "--verbosity", "0"}, args...))
	return out.String(), err
}

func TestGenerateInterfacesDefault(t *testing.T) {
	dir := artifactDir(t, map[string]string{"Token.json": tokenArtifact, "Owned.json": ownedArtifact})

	out, err := runTsbind(t, "--artifacts", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "export type Address = string;")
	assert.Contains(t, out, "(to: Address, value: UInt, options?: TransactionOptions): Promise<boolean>;")
	assert.Contains(t, out, "call(options?: TransactionOptions): Promise<Address>;")
	// Contracts follow the lexical order of their files.
	assert.Less(t, strings.Index(out, "export interface Owned {"), strings.Index(out, "export interface Token {"))
}

func TestGenerateInterfacesPattern(t *testing.T) {
	dir := artifactDir(t, map[string]string{"Token.json": tokenArtifact, "Owned.json": ownedArtifact})

	out, err := runTsbind(t, "interfaces", "--artifacts", dir, "--pattern", "Tok*.json")
	require.NoError(t, err)
	assert.Contains(t, out, "export interface Token {")
	assert.NotContains(t, out, "export interface Owned {")
}

func TestGenerateManifestToFile(t *testing.T) {
	dir := artifactDir(t, map[string]string{"Token.json": tokenArtifact, "Owned.json": ownedArtifact})
	path := filepath.Join(t.TempDir(), "manifest.ts")

	out, err := runTsbind(t, "manifest", "--truffle", "--artifacts", dir, "--out", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `args_arr: ["to", "value"],`)
	assert.Contains(t, string(content), "export type ContractName = Contracts.Owned | Contracts.Token;\n")
}

func TestGenerateOutputFromEnv(t *testing.T) {
	dir := artifactDir(t, map[string]string{"Owned.json": ownedArtifact})
	path := filepath.Join(t.TempDir(), "bindings.ts")
	t.Setenv("TSBIND_OUT", path)
	// Environment values are stored on the shared flag.
	t.Cleanup(func() {
		utils.OutputFlag.Value, utils.OutputFlag.HasBeenSet = "", false
	})

	out, err := runTsbind(t, "interfaces", "--artifacts", dir)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.FileExists(t, path)
}

func TestGenerateCombinedJSON(t *testing.T) {
	dir := artifactDir(t, map[string]string{"combined.json": `{"contracts":{
		"Owned.sol:Owned":{"abi":[{"type":"function","name":"owner","inputs":[],"outputs":[{"name":"","type":"address"}]}],"bin":"60"}
	},"version":"0.8.19"}`})

	out, err := runTsbind(t, "manifest", "--combined-json", filepath.Join(dir, "combined.json"))
	require.NoError(t, err)
	assert.Contains(t, out, "export const Owned: ContractManifest = {")
	assert.Contains(t, out, "  Owned = \"Owned\",\n")
}

func TestGenerateAbortsWithoutOutput(t *testing.T) {
	dir := artifactDir(t, map[string]string{"Token.json": tokenArtifact, "Signed.json": brokenArtifact})
	path := filepath.Join(t.TempDir(), "bindings.ts")

	_, err := runTsbind(t, "interfaces", "--artifacts", dir, "--out", path)
	assert.ErrorIs(t, err, bind.ErrUnsupportedType)
	assert.NoFileExists(t, path)

	out, err := runTsbind(t, "interfaces", "--artifacts", dir)
	assert.ErrorIs(t, err, bind.ErrUnsupportedType)
	assert.Empty(t, out)
}

func TestGenerateFlagErrors(t *testing.T) {
	dir := artifactDir(t, map[string]string{"Owned.json": ownedArtifact})

	_, err := runTsbind(t, "interfaces", "--artifacts", dir, "--combined-json", filepath.Join(dir, "c.json"))
	assert.ErrorContains(t, err, "can't be used at the same time")

	_, err = runTsbind(t, "manifest", "--artifacts", dir, "extra")
	assert.ErrorContains(t, err, "invalid command: extra")
}

func TestDumpConfig(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "tsbind.toml")
	require.NoError(t, os.WriteFile(file, []byte("[Source]\nPattern = \"*.abi\"\n\n[Output]\nFile = \"a.ts\"\n"), 0644))

	out, err := runTsbind(t, "dumpconfig", "--config", file, "--out", "b.ts")
	require.NoError(t, err)

	var cfg tsbindConfig
	require.NoError(t, tomlSettings.NewDecoder(strings.NewReader(out)).Decode(&cfg))
	assert.Equal(t, "*.abi", cfg.Source.Pattern)
	assert.Equal(t, "b.ts", cfg.Output.File)
}

func TestPrintVersion(t *testing.T) {
	out, err := runTsbind(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "tsbind version "), out)
	assert.Contains(t, out, "Go Version:")
}
