//go:build !linux && !windows

package id

import "os"

// threadID falls back to the process id where no portable thread id exists.
func threadID() uint64 { return uint64(os.Getpid()) }
