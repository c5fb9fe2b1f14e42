// Released under an MIT license. See LICENSE.

//go:build unix

// Package process reports details of the running interpreter process.
package process

import (
	"golang.org/x/sys/unix"
)

// Platform names the family of operating systems this build targets.
const Platform = "unix"

// ID returns the process ID for the current process.
func ID() int {
	return unix.Getpid()
}

// Parent returns the process ID of the current process's parent.
func Parent() int {
	return unix.Getppid()
}
