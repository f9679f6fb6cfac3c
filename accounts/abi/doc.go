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

// Package abi models the contract build artifacts consumed by the binding
// generator: a contract name and the ordered list of ABI members.
//
// Members are decoded into a closed set of variants (constructor, function,
// event and fallback). Any other member type is rejected while decoding, so
// the generator never sees an ABI it does not understand.
// abi 包为绑定生成器使用的合约构建产物建模：合约名称和有序的 ABI 成员列表。
package abi
