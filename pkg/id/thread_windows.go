//go:build windows

package id

import "golang.org/x/sys/windows"

// threadID returns the id of the OS thread running the caller.
func threadID() uint64 { return uint64(windows.GetCurrentThreadId()) }
