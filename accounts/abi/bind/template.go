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

package bind

import (
	_ "embed"

	"github.com/ethbind/tsbind/accounts/abi"
)

// tmplData is the data structure required to fill the binding template.
// tmplData 是填充绑定模板所需的数据结构。
type tmplData struct {
	Contracts []*tmplContract // Contracts to generate into this document, in discovery order
}

// tmplContract contains the data needed to generate an individual contract binding.
type tmplContract struct {
	Type    string        // Type name of the contract binding
	Methods []*tmplMethod // Function members, first-declaration order
}

// tmplMethod is a wrapper around an abi.Function that contains a few
// preprocessed and cached data fields.
// tmplMethod 是 abi.Function 的包装器，包含一些预处理的数据字段。
type tmplMethod struct {
	Original *abi.Function // Original function as parsed by the abi package
	Name     string        // Property name of the method
	Args     []*tmplArg    // Arguments with resolved display names
	Returns  string        // Promised return shape, interface mode only
}

// tmplArg is a single argument of a bound method. Type holds the TypeScript
// type in interface mode and the raw ABI atom in manifest mode.
type tmplArg struct {
	Name  string
	Type  string
	Index int
}

// tmplSource is mode to template mapping containing all the supported
// documents the package can generate.
var tmplSource = map[Mode]string{
	ModeInterface: tmplSourceInterface,
	ModeManifest:  tmplSourceManifest,
}

// tmplSourceInterface is the TypeScript template of the typed call interfaces.
//
//go:embed source.ts.tpl
var tmplSourceInterface string

// tmplSourceManifest is the TypeScript template of the method manifest.
//
//go:embed manifest.ts.tpl
var tmplSourceManifest string
