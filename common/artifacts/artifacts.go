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

// Package artifacts discovers and loads the contract build artifacts bindings
// are generated from.
//
// Two sources are supported: a directory of per-contract JSON artifacts as
// written by truffle-style build pipelines, and a single solc --combined-json
// output file.
// artifacts 包负责发现并加载用于生成绑定的合约构建产物。
package artifacts

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ethbind/tsbind/accounts/abi"
	"github.com/ethereum/go-ethereum/common/compiler"
	"github.com/ethereum/go-ethereum/log"
)

// ErrDiscovery is returned when the artifact source cannot be resolved or read.
var ErrDiscovery = errors.New("artifacts: discovery failed")

const (
	DefaultDir     = "build/contracts" // Artifact directory of truffle-style pipelines
	DefaultPattern = "*.json"          // File pattern matched inside an artifact directory
)

// Discover resolves the pattern inside dir to the list of matching files in
// lexical order. A missing or unreadable directory is an error; a directory
// without matches is not.
func Discover(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDiscovery, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDiscovery, dir)
	}
	paths, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("%w: pattern %q: %v", ErrDiscovery, pattern, err)
	}
	// Glob already sorts, keep the guarantee explicit.
	sort.Strings(paths)

	log.Debug("Discovered artifacts", "dir", dir, "pattern", pattern, "files", len(paths))
	return paths, nil
}

// Load reads and parses the artifacts at the given paths, preserving order.
func Load(paths []string) ([]*abi.Artifact, error) {
	artifacts := make([]*abi.Artifact, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDiscovery, err)
		}
		artifact, err := abi.ParseArtifact(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		log.Trace("Loaded artifact", "path", path, "contract", artifact.ContractName, "members", len(artifact.ABI))
		artifacts = append(artifacts, artifact)
	}
	return artifacts, nil
}

// LoadDir discovers and loads all artifacts matching pattern inside dir.
// LoadDir 发现并加载目录中所有匹配模式的构建产物。
func LoadDir(dir, pattern string) ([]*abi.Artifact, error) {
	paths, err := Discover(dir, pattern)
	if err != nil {
		return nil, err
	}
	return Load(paths)
}

// FromCombinedJSON loads the contracts of a solc --combined-json output file.
// Contracts are ordered by their fully qualified name and the source path
// prefix of each name is dropped.
// FromCombinedJSON 从 solc --combined-json 输出文件加载合约。
func FromCombinedJSON(path string) ([]*abi.Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDiscovery, err)
	}
	contracts, err := compiler.ParseCombinedJSON(data, "", "", "", "")
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, abi.ErrMalformedArtifact, err)
	}
	names := make([]string, 0, len(contracts))
	for name := range contracts {
		names = append(names, name)
	}
	sort.Strings(names)

	artifacts := make([]*abi.Artifact, 0, len(names))
	for _, name := range names {
		definition := contracts[name].Info.AbiDefinition
		if definition == nil {
			return nil, fmt.Errorf("%s: contract %s: %w: missing abi", path, name, abi.ErrMalformedArtifact)
		}
		blob, err := json.Marshal(definition)
		if err != nil {
			return nil, fmt.Errorf("%s: contract %s: %w: %v", path, name, abi.ErrMalformedArtifact, err)
		}
		var parsed abi.ABI
		if err := json.Unmarshal(blob, &parsed); err != nil {
			return nil, fmt.Errorf("%s: contract %s: %w", path, name, err)
		}
		artifacts = append(artifacts, &abi.Artifact{ContractName: contractName(name), ABI: parsed})
	}
	log.Debug("Loaded combined-json", "path", path, "contracts", len(artifacts))
	return artifacts, nil
}

// contractName drops the "path/to/Source.sol:" prefix solc puts on names.
func contractName(qualified string) string {
	if i := strings.LastIndex(qualified, ":"); i >= 0 {
		return qualified[i+1:]
	}
	return qualified
}
