// Copyright 2026 The tsbind Authors
// This file is part of tsbind.
//
// tsbind is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// tsbind is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with tsbind. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/gofrs/flock"
)

var (
	lockTimeout    = 30 * time.Second       // Maximum wait for a concurrent writer of the same output
	lockRetryDelay = 100 * time.Millisecond // Delay between two lock attempts
)

// writeOutput writes the generated document to w, or, if a path is given,
// atomically replaces the file at path.
func writeOutput(ctx context.Context, w io.Writer, path string, code string) error {
	if path == "" {
		_, err := io.WriteString(w, code)
		return err
	}
	return writeFileLocked(ctx, path, []byte(code))
}

// writeFileLocked replaces the target file with content while holding an
// advisory lock on <path>.lock. Readers of the target never observe a
// partially written document.
// writeFileLocked 在持有 <path>.lock 建议锁的情况下原子地替换目标文件。
func writeFileLocked(ctx context.Context, path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()

	lock := flock.New(path + ".lock")
	if locked, err := lock.TryLockContext(ctx, lockRetryDelay); err != nil {
		return fmt.Errorf("failed to lock %s: %w", path, err)
	} else if !locked {
		return fmt.Errorf("failed to lock %s", path)
	}
	defer lock.Unlock()

	// Atomic write: create a temporary hidden file first
	// then move it into place. TempFile assigns mode 0600.
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp")
	if err != nil {
		return err
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		os.Remove(f.Name())
		return err
	}
	if err := f.Chmod(0644); err != nil {
		f.Close()
		os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return err
	}
	if err := os.Rename(f.Name(), path); err != nil {
		os.Remove(f.Name())
		return err
	}
	log.Debug("Wrote bindings", "path", path, "size", len(content))
	return nil
}
