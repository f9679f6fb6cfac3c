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

// Kind enumerates the member variants understood by the generator.
// Kind 枚举生成器能够识别的 ABI 成员类型。
type Kind int

const (
	KindConstructor Kind = iota
	KindFunction
	KindEvent
	KindFallback
)

func (k Kind) String() string {
	switch k {
	case KindConstructor:
		return "constructor"
	case KindFunction:
		return "function"
	case KindEvent:
		return "event"
	case KindFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Member is one entry of a contract ABI. The set of implementations is closed:
// *Constructor, *Function, *Event and *Fallback.
// Member 是合约 ABI 中的一个条目，其实现集合是封闭的。
type Member interface {
	Kind() Kind
	member()
}

// Constructor describes the contract constructor.
type Constructor struct {
	Inputs          Arguments
	Payable         bool
	StateMutability string
}

// Function describes a callable contract function.
type Function struct {
	Name    string
	Inputs  Arguments
	Outputs Arguments

	// Status indicator which can be: "pure", "view", "nonpayable" or "payable".
	StateMutability string

	// Deprecated status indicators, removed from the ABI in solidity v0.6.0
	// but still emitted by older truffle builds.
	Constant bool
	Payable  bool
}

// Event describes a contract event.
type Event struct {
	Name      string
	Inputs    Arguments
	Anonymous bool
}

// Fallback describes the unnamed default function.
type Fallback struct {
	Payable         bool
	StateMutability string
}

func (*Constructor) Kind() Kind { return KindConstructor }
func (*Function) Kind() Kind    { return KindFunction }
func (*Event) Kind() Kind       { return KindEvent }
func (*Fallback) Kind() Kind    { return KindFallback }

func (*Constructor) member() {}
func (*Function) member()    {}
func (*Event) member()       {}
func (*Fallback) member()    {}

// IsConstant returns whether the function is declared as not modifying state,
// either through the legacy constant flag or through its state mutability.
// IsConstant 返回该函数是否不修改状态。
func (f *Function) IsConstant() bool {
	return f.Constant || f.StateMutability == "view" || f.StateMutability == "pure"
}

// IsPayable returns whether the function accepts ether.
func (f *Function) IsPayable() bool {
	return f.Payable || f.StateMutability == "payable"
}
