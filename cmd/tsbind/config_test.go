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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "tsbind.toml")
	require.NoError(t, os.WriteFile(file, []byte(`
[Source]
Artifacts = "out/abi"
Pattern = "*.abi.json"

[Output]
File = "src/contracts.ts"
`), 0644))

	cfg := defaultConfig()
	require.NoError(t, loadConfig(file, &cfg))
	assert.Equal(t, sourceConfig{Artifacts: "out/abi", Pattern: "*.abi.json"}, cfg.Source)
	assert.Equal(t, outputConfig{File: "src/contracts.ts"}, cfg.Output)
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "tsbind.toml")
	require.NoError(t, os.WriteFile(file, []byte("[Output]\nTruffle = true\n"), 0644))

	cfg := defaultConfig()
	require.NoError(t, loadConfig(file, &cfg))
	assert.Equal(t, defaultConfig().Source, cfg.Source)
	assert.True(t, cfg.Output.Truffle)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	cfg := defaultConfig()
	assert.Error(t, loadConfig(filepath.Join(dir, "missing.toml"), &cfg))

	file := filepath.Join(dir, "unknown.toml")
	require.NoError(t, os.WriteFile(file, []byte("[Source]\nDirectory = \"x\"\n"), 0644))
	err := loadConfig(file, &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field 'Directory' is not defined")
}

func TestDumpConfigRoundTrip(t *testing.T) {
	cfg := defaultConfig()
	cfg.Source.CombinedJSON = "build/combined.json"
	cfg.Output.File = "bindings.ts"

	out, err := tomlSettings.Marshal(&cfg)
	require.NoError(t, err)

	var decoded tsbindConfig
	require.NoError(t, tomlSettings.NewDecoder(bytes.NewReader(out)).Decode(&decoded))
	assert.Equal(t, cfg, decoded)
}
