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

// Argument holds the name of an ABI parameter and its raw type atom. The atom
// is kept verbatim; translating it is left to the binding generator.
// Argument 保存 ABI 参数的名称及其原始类型。
type Argument struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Indexed bool   `json:"indexed,omitempty"` // indexed is only used by events
}

// Arguments is an ordered parameter list, inputs or outputs of a member.
type Arguments []Argument
