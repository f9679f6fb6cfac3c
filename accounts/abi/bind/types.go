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
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ethbind/tsbind/accounts/abi"
	gethabi "github.com/ethereum/go-ethereum/accounts/abi"
)

// ErrUnsupportedType is returned when an ABI type atom has no TypeScript
// mapping. The set of supported atoms is closed: address, address[], bool,
// bytes, bytes32, string, uint8, uint16, uint64, uint256 and uint256[].
// ErrUnsupportedType 表示 ABI 类型没有对应的 TypeScript 映射。
var ErrUnsupportedType = errors.New("bind: unsupported type")

// direction tells whether a type is bound as a call argument or as a decoded
// return value.
type direction int

const (
	dirInput direction = iota
	dirOutput
)

const (
	addressTS    = "Address"           // alias of string, declared in the header
	numericTS    = "UInt"              // number | BigNumber, declared in the header
	bigNumberTS  = "BigNumber"         // arbitrary precision decimal from bignumber.js
	zeroResultTS = "TransactionResult" // promised by functions without outputs
)

var atomRegex = regexp.MustCompile(`^[a-z]+[0-9]*(\[\])?$`)

// bindTypeTS converts a solidity type atom to a TypeScript type. Unsigned
// integers accept either a native number or a BigNumber as input, but are
// always decoded to a BigNumber regardless of their declared width.
// bindTypeTS 将 Solidity 类型转换为 TypeScript 类型。无符号整数作为输出时总是 BigNumber。
func bindTypeTS(atom string, dir direction) (string, error) {
	// The abi parser tolerates trailing qualifiers ("address payable",
	// "uint256[] memory"), atoms must be bare.
	if !atomRegex.MatchString(atom) {
		return "", fmt.Errorf("%w %q", ErrUnsupportedType, atom)
	}
	kind, err := gethabi.NewType(atom, "", nil)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrUnsupportedType, atom, err)
	}
	if kind.String() != atom {
		return "", fmt.Errorf("%w %q: parsed as %s", ErrUnsupportedType, atom, kind.String())
	}
	bound, ok := bindKindTS(kind, dir)
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnsupportedType, atom)
	}
	return bound, nil
}

// bindKindTS is the translation table over parsed types.
func bindKindTS(kind gethabi.Type, dir direction) (string, bool) {
	switch kind.T {
	case gethabi.StringTy:
		return "string", true
	case gethabi.AddressTy:
		return addressTS, true
	case gethabi.BoolTy:
		return "boolean", true
	case gethabi.BytesTy:
		// hex encoded
		return "string", true
	case gethabi.FixedBytesTy:
		if kind.Size == 32 {
			return "string", true
		}
	case gethabi.UintTy:
		switch kind.Size {
		case 8, 16, 64, 256:
			if dir == dirOutput {
				return bigNumberTS, true
			}
			return numericTS, true
		}
	case gethabi.SliceTy:
		elem := *kind.Elem
		if elem.T == gethabi.AddressTy || (elem.T == gethabi.UintTy && elem.Size == 256) {
			inner, _ := bindKindTS(elem, dir)
			return inner + "[]", true
		}
	}
	return "", false
}

// bindReturnTS converts the outputs of a function into the type its promise
// resolves to: the zero-result marker, a single type or an ordered tuple.
func bindReturnTS(outputs abi.Arguments) (string, error) {
	switch len(outputs) {
	case 0:
		return zeroResultTS, nil
	case 1:
		kind, err := bindTypeTS(outputs[0].Type, dirOutput)
		if err != nil {
			return "", fmt.Errorf("output 0: %w", err)
		}
		return kind, nil
	default:
		kinds := make([]string, len(outputs))
		for i, output := range outputs {
			kind, err := bindTypeTS(output.Type, dirOutput)
			if err != nil {
				return "", fmt.Errorf("output %d: %w", i, err)
			}
			kinds[i] = kind
		}
		return "[" + strings.Join(kinds, ", ") + "]", nil
	}
}
