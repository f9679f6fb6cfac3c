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

package flags

import "github.com/urfave/cli/v2"

const (
	// SourceCategory groups the flags selecting where contract artifacts are read from.
	// SourceCategory 是与合约构建产物来源相关的标志类别。
	SourceCategory = "ARTIFACT SOURCE"
	// OutputCategory groups the flags controlling the generated document.
	// OutputCategory 是与生成文档输出相关的标志类别。
	OutputCategory = "OUTPUT"
	// LoggingCategory is the category for logging and debugging flags.
	LoggingCategory = "LOGGING AND DEBUGGING"
	// MiscCategory is the category for everything else.
	MiscCategory = "MISC"
)

func init() {
	cli.HelpFlag.(*cli.BoolFlag).Category = MiscCategory
	cli.VersionFlag.(*cli.BoolFlag).Category = MiscCategory
}
