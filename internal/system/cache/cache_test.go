// Released under an MIT license. See LICENSE.

package cache

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSources(t *testing.T) {
	dir := t.TempDir() + string(os.PathSeparator)

	for _, name := range []string{"a.dr", "b.txt"} {
		if err := os.WriteFile(dir+name, nil, 0o600); err != nil {
			t.Fatal(err)
		}
	}

	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o700); err != nil {
		t.Fatal(err)
	}

	Populate(dir)

	s := Sources(dir)
	if len(s) != 2 || s[0] != dir+"a.dr" || s[1] != dir+"sub"+string(os.PathSeparator) {
		t.Fatalf("unexpected sources %v", s)
	}

	if s := Sources(dir + "missing" + string(os.PathSeparator)); len(s) != 0 {
		t.Fatalf("expected no sources, got %v", s)
	}
}
