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

package abi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ABI is the ordered member list of a contract. Declaration order is kept as
// it is observable in the generated bindings.
// ABI 是合约的有序成员列表，保持声明顺序。
type ABI []Member

// JSON returns a parsed ABI and error if it failed.
func JSON(reader io.Reader) (ABI, error) {
	dec := json.NewDecoder(reader)

	var abi ABI
	if err := dec.Decode(&abi); err != nil {
		return nil, err
	}
	return abi, nil
}

// UnmarshalJSON implements json.Unmarshaler interface.
// UnmarshalJSON 实现 json.Unmarshaler 接口，按 type 标签分派到具体成员类型。
func (abi *ABI) UnmarshalJSON(data []byte) error {
	var fields []struct {
		Type    string
		Name    string
		Inputs  Arguments
		Outputs Arguments

		// Status indicator which can be: "pure", "view",
		// "nonpayable" or "payable".
		StateMutability string

		// Deprecated status indicators, removed in v0.6.0.
		Constant bool
		Payable  bool

		// Event relevant indicator represents the event is
		// declared as anonymous.
		Anonymous bool
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedArtifact, err)
	}
	members := make(ABI, 0, len(fields))
	for i, field := range fields {
		switch field.Type {
		case "constructor":
			members = append(members, &Constructor{
				Inputs:          field.Inputs,
				Payable:         field.Payable,
				StateMutability: field.StateMutability,
			})
		case "function":
			members = append(members, &Function{
				Name:            field.Name,
				Inputs:          field.Inputs,
				Outputs:         field.Outputs,
				StateMutability: field.StateMutability,
				Constant:        field.Constant,
				Payable:         field.Payable,
			})
		case "event":
			members = append(members, &Event{
				Name:      field.Name,
				Inputs:    field.Inputs,
				Anonymous: field.Anonymous,
			})
		case "fallback":
			members = append(members, &Fallback{
				Payable:         field.Payable,
				StateMutability: field.StateMutability,
			})
		default:
			return fmt.Errorf("%w %q of member %d %q", ErrUnknownMember, field.Type, i, field.Name)
		}
	}
	*abi = members
	return nil
}

// Functions returns the function members in declaration order.
func (abi ABI) Functions() []*Function {
	var funcs []*Function
	for _, member := range abi {
		if fn, ok := member.(*Function); ok {
			funcs = append(funcs, fn)
		}
	}
	return funcs
}

// Artifact is a build output file bundling a contract name and its ABI. All
// other fields (bytecode, source maps, ...) are ignored.
// Artifact 是构建产物文件，包含合约名称及其 ABI，其余字段被忽略。
type Artifact struct {
	ContractName string
	ABI          ABI
}

// UnmarshalJSON implements json.Unmarshaler interface. The contract name is
// read from either "contractName" or "contract_name".
func (a *Artifact) UnmarshalJSON(data []byte) error {
	var raw struct {
		ContractName      string          `json:"contractName"`
		ContractNameSnake string          `json:"contract_name"`
		ABI               json.RawMessage `json:"abi"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedArtifact, err)
	}
	name := raw.ContractName
	if name == "" {
		name = raw.ContractNameSnake
	}
	if name == "" {
		return fmt.Errorf("%w: missing contract name", ErrMalformedArtifact)
	}
	if len(raw.ABI) == 0 || bytes.Equal(bytes.TrimSpace(raw.ABI), []byte("null")) {
		return fmt.Errorf("%w: contract %s has no abi", ErrMalformedArtifact, name)
	}
	var abi ABI
	if err := json.Unmarshal(raw.ABI, &abi); err != nil {
		return fmt.Errorf("contract %s: %w", name, err)
	}
	a.ContractName = name
	a.ABI = abi
	return nil
}

// ParseArtifact decodes a single artifact file.
func ParseArtifact(data []byte) (*Artifact, error) {
	var artifact Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		// Errors from nested UnmarshalJSON calls are passed through untouched,
		// syntax errors of the outer document are not.
		if !errors.Is(err, ErrMalformedArtifact) && !errors.Is(err, ErrUnknownMember) {
			err = fmt.Errorf("%w: %v", ErrMalformedArtifact, err)
		}
		return nil, err
	}
	return &artifact, nil
}
