// This file originates from Docker/Moby,
// https://github.com/moby/moby/blob/master/pkg/reexec/reexec.go
// Licensed under Apache License 2.0: https://github.com/moby/moby/blob/master/LICENSE
// Copyright 2013-2018 Docker, Inc.
//
// Package reexec lets a test binary re-execute itself under a registered name,
// so command line entry points can be run as real child processes with their
// own exit status, stdout and stderr.
// reexec 包允许测试二进制文件以注册名称重新执行自身，从而将命令行入口作为真实子进程运行。

package reexec

import (
	"fmt"
	"os"
	"os/exec"
)

var registeredInitializers = make(map[string]func())

// Register adds an initialization func under the specified name.
func Register(name string, initializer func()) {
	if _, exists := registeredInitializers[name]; exists {
		panic(fmt.Sprintf("reexec func already registered under name %q", name))
	}
	registeredInitializers[name] = initializer
}

// Init is called as the first part of the exec process and returns true if an
// initialization function was called.
func Init() bool {
	if initializer, ok := registeredInitializers[os.Args[0]]; ok {
		initializer()
		return true
	}
	return false
}

// Command returns a command running the current binary with argv[0] set to
// name, which makes Init dispatch to the initializer registered under it.
// Command 返回一个以 name 作为 argv[0] 运行当前二进制文件的命令。
func Command(name string, args ...string) *exec.Cmd {
	return &exec.Cmd{
		Path: Self(),
		Args: append([]string{name}, args...),
	}
}
