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

import "errors"

var (
	// ErrUnknownMember is returned when an ABI member carries a type tag other
	// than constructor, function, event or fallback.
	// ErrUnknownMember 表示 ABI 成员的类型标签无法识别。
	ErrUnknownMember = errors.New("abi: unrecognized member type")

	// ErrMalformedArtifact is returned when an artifact is not valid JSON or
	// misses one of its required fields.
	// ErrMalformedArtifact 表示构建产物不是合法 JSON 或缺少必填字段。
	ErrMalformedArtifact = errors.New("abi: malformed artifact")
)
