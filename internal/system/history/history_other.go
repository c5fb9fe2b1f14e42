// Released under an MIT license. See LICENSE.

//go:build !unix

package history

import (
	"os"
	"path/filepath"
)

func file(op func(string) (*os.File, error)) (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return op(filepath.Join(home, ".draca_history"))
}
