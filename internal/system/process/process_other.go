// Released under an MIT license. See LICENSE.

//go:build !unix

// Package process reports details of the running interpreter process.
package process

import (
	"os"
)

// Platform names the family of operating systems this build targets.
const Platform = "other"

// ID returns the process ID for the current process.
func ID() int {
	return os.Getpid()
}

// Parent returns the process ID of the current process's parent.
func Parent() int {
	return os.Getppid()
}
