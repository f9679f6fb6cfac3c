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

// Package bind generates TypeScript bindings for Ethereum contracts.
//
// Two documents can be produced from the same set of build artifacts: typed
// call interfaces (ModeInterface) and a reflective method manifest
// (ModeManifest) used by generic invocation code that maps named arguments
// back to positional ones at runtime.
// bind 包为以太坊合约生成 TypeScript 绑定：类型化调用接口或反射式方法清单。
package bind

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"text/template"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/ethbind/tsbind/accounts/abi"
	"github.com/ethereum/go-ethereum/log"
)

// Mode selects the kind of document a Generator emits.
// Mode 是用于选择生成文档类型的选择器。
type Mode int

const (
	ModeInterface Mode = iota // typed call interfaces
	ModeManifest              // reflective method manifest
)

func (m Mode) String() string {
	switch m {
	case ModeInterface:
		return "interface"
	case ModeManifest:
		return "manifest"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Generator holds the state of a single generation run. The anonymous
// argument counter used in interface mode lives here: it is shared by every
// contract and method bound by the generator and is never reset, so the names
// it hands out depend on the order artifacts are passed in.
// Generator 保存一次生成运行的状态，包括在整个运行期间从不重置的匿名参数计数器。
type Generator struct {
	mode      Mode
	anonymous int
}

// NewGenerator creates a generator for the given mode.
func NewGenerator(mode Mode) *Generator {
	return &Generator{mode: mode}
}

// Bind renders the bindings of all artifacts into a single document. Contract
// blocks follow the order of the artifacts slice. The document is assembled
// in memory; on error nothing is returned.
// Bind 将所有构建产物的绑定渲染为一个文档，合约块的顺序与输入顺序一致。
func (g *Generator) Bind(artifacts []*abi.Artifact) (string, error) {
	source, ok := tmplSource[g.mode]
	if !ok {
		return "", fmt.Errorf("unsupported binding mode %v", g.mode)
	}
	var (
		data = &tmplData{Contracts: make([]*tmplContract, 0, len(artifacts))}
		seen = mapset.NewThreadUnsafeSet[string]()
	)
	for _, artifact := range artifacts {
		// Both modes declare one top-level symbol per contract.
		if !seen.Add(artifact.ContractName) {
			return "", fmt.Errorf("%w: duplicate contract name %s", abi.ErrMalformedArtifact, artifact.ContractName)
		}
		contract, err := g.bindContract(artifact)
		if err != nil {
			return "", fmt.Errorf("contract %s: %w", artifact.ContractName, err)
		}
		data.Contracts = append(data.Contracts, contract)
	}
	buffer := new(bytes.Buffer)

	funcs := map[string]interface{}{
		"tskey": tsKey,
		"quote": strconv.Quote,
	}
	tmpl := template.Must(template.New("").Funcs(funcs).Parse(source))
	if err := tmpl.Execute(buffer, data); err != nil {
		return "", err
	}
	return buffer.String(), nil
}

// bindContract collects the function members of one contract. Constructors,
// events and fallbacks are not exposed through the bindings.
func (g *Generator) bindContract(artifact *abi.Artifact) (*tmplContract, error) {
	var (
		contract = &tmplContract{Type: artifact.ContractName}
		position = make(map[string]int)
	)
	for i, member := range artifact.ABI {
		switch member := member.(type) {
		case *abi.Function:
			method, err := g.bindMethod(member)
			if err != nil {
				return nil, fmt.Errorf("method %s: %w", member.Name, err)
			}
			// Overloaded functions share a name. They are not disambiguated,
			// the last declaration wins.
			if pos, ok := position[member.Name]; ok {
				log.Warn("Overloaded function overwrites earlier declaration", "contract", artifact.ContractName, "method", member.Name)
				contract.Methods[pos] = method
				continue
			}
			position[member.Name] = len(contract.Methods)
			contract.Methods = append(contract.Methods, method)

		case *abi.Constructor, *abi.Event, *abi.Fallback:

		default:
			return nil, fmt.Errorf("%w %T at member %d", abi.ErrUnknownMember, member, i)
		}
	}
	log.Debug("Bound contract", "contract", artifact.ContractName, "mode", g.mode, "members", len(artifact.ABI), "methods", len(contract.Methods))
	return contract, nil
}

// bindMethod dispatches to the method builder of the generator's mode.
func (g *Generator) bindMethod(fn *abi.Function) (*tmplMethod, error) {
	switch g.mode {
	case ModeInterface:
		return g.bindSignature(fn)
	case ModeManifest:
		return bindManifest(fn), nil
	default:
		return nil, fmt.Errorf("unsupported binding mode %v", g.mode)
	}
}

// bindSignature builds the call-shape of a function: translated arguments and
// the promised return shape.
// bindSignature 构建函数的调用形态：转换后的参数和返回形态。
func (g *Generator) bindSignature(fn *abi.Function) (*tmplMethod, error) {
	names := g.interfaceArgNames(fn.Inputs)

	args := make([]*tmplArg, len(fn.Inputs))
	for i, input := range fn.Inputs {
		kind, err := bindTypeTS(input.Type, dirInput)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		args[i] = &tmplArg{Name: names[i], Type: kind}
	}
	returns, err := bindReturnTS(fn.Outputs)
	if err != nil {
		return nil, err
	}
	log.Trace("Bound method signature", "method", fn.Name, "constant", fn.IsConstant(), "payable", fn.IsPayable())
	return &tmplMethod{Original: fn, Name: fn.Name, Args: args, Returns: returns}, nil
}

// bindManifest builds the reflective name/index/type record of a function.
// Argument types are passed through as raw ABI atoms.
// bindManifest 构建函数的反射式名称/索引/类型记录。
func bindManifest(fn *abi.Function) *tmplMethod {
	names := manifestArgNames(fn.Inputs)

	args := make([]*tmplArg, len(fn.Inputs))
	for i, input := range fn.Inputs {
		args[i] = &tmplArg{Name: names[i], Type: input.Type, Index: i}
	}
	return &tmplMethod{Original: fn, Name: fn.Name, Args: args}
}

var identifierRegex = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// tsKey renders a property key, quoting it when it is not a plain identifier.
func tsKey(name string) string {
	if identifierRegex.MatchString(name) {
		return name
	}
	return strconv.Quote(name)
}
