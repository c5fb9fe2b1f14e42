// Released under an MIT license. See LICENSE.

// Package cache remembers directory listings for file name completion.
package cache

import (
	"os"
	"strings"
)

// Extension marks Draca source files.
const Extension = ".dr"

// Populate fills the cache for each of dirnames.
func Populate(dirnames ...string) {
	for _, dirname := range dirnames {
		stat, err := os.Stat(read(dirname))
		if err != nil || !stat.IsDir() {
			continue
		}

		refresh(dirname)
	}
}

// Sources returns the directories and Draca source files in dirname. A
// cached listing is returned immediately and refreshed in the background.
func Sources(dirname string) []string {
	if s := lookup(dirname); s != nil {
		go refresh(dirname)

		return s
	}

	refresh(dirname)

	return lookup(dirname)
}

//nolint:gochecknoglobals
var (
	pathSeparator = string(os.PathSeparator)
	requestq      chan func()
	sources       = map[string][]string{}
)

func init() { //nolint:gochecknoinits
	requestq = make(chan func(), 1)

	go service()
}

func lookup(dirname string) []string {
	resultq := make(chan []string)

	requestq <- func() {
		resultq <- sources[dirname]
		close(resultq)
	}

	return <-resultq
}

func read(dirname string) string {
	if dirname == "" {
		return "."
	}

	return dirname
}

// Directories end with a path separator. Each entry is prefixed with
// dirname as given, so "" lists the current directory with bare names.
func refresh(dirname string) {
	entries, err := os.ReadDir(read(dirname))
	if err != nil {
		entries = nil
	}

	s := []string{}

	for _, e := range entries {
		p := dirname + e.Name()

		switch {
		case e.IsDir():
			s = append(s, p+pathSeparator)
		case strings.HasSuffix(p, Extension):
			s = append(s, p)
		}
	}

	done := make(chan struct{})

	requestq <- func() {
		sources[dirname] = s
		close(done)
	}

	<-done
}

func service() {
	for {
		(<-requestq)()
	}
}
